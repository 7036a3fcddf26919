// Package client talks to the SellHub REST API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) consumed by
//     the session manager: Register, Login, GetUser and Ping.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient) that tags every
//     request with an X-Request-ID and turns failures into *Error values.
//
// # Error Handling
//
// Every failure crossing this boundary is an *Error with an explicit Kind:
// KindNetwork when no HTTP response was obtained (Status is 0) and KindHTTP
// for a non-success response (Status and the extracted server Message).
// Callers can also match the sentinels with errors.Is: ErrUnavailable for
// network failures and ErrUnauthorized for 401/403 responses.
//
// No retries or timeouts are applied here; the caller's context is the only
// cancellation mechanism.
package client
