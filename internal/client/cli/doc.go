// Package cli provides the interactive SellHub terminal client.
//
// It wires configuration, local storage, the SellHub API client and the
// session manager behind a small REPL. The client behaves like the browser
// application it replaces: "open <path>" is a full page load (the session is
// re-initialised from storage and the page rendered), "back" and "forward"
// walk the history without reloading, and login/register are prompt-driven
// forms whose failures are shown as one human-readable sentence.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and the view renderers in views.go for details.
package cli
