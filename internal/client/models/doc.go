// Package models defines client-side data models used by the SellHub client:
// the signed-in user, transient credential forms and the in-memory session.
package models
