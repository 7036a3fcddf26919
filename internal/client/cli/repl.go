package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Open(ctx context.Context, path string) error
	Back(ctx context.Context) error
	Forward(ctx context.Context) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) error
	SignIn(ctx context.Context) error
	ToggleTheme(ctx context.Context) error
	Health(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the SellHub client.
//
// It reads a line from in, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, on ctx cancellation, or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
//	Always:
//	  - help           show available commands
//	  - open <path>    load a page (/, /login, /register, /dashboard)
//	  - back, forward  walk the page history
//	  - theme          toggle light/dark theme
//	  - health         check the API is reachable
//	  - exit | quit    leave the program
//
//	Not logged in:
//	  - register       create an account
//	  - login          authenticate
//	  - signin         resume a stored session or go to the login page
//
//	Logged in:
//	  - refresh        re-fetch the user profile
//	  - logout         sign out
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("sellhub %s> ", statusFn()))

		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: open <path>, back, forward, refresh, logout, theme, health, exit")
			} else {
				printlnFn("Available commands: open <path>, back, forward, register, login, signin, theme, health, exit")
			}

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <path>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "back":
			_ = a.Back(ctx)

		case "forward":
			_ = a.Forward(ctx)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "signin":
			_ = a.SignIn(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "theme":
			_ = a.ToggleTheme(ctx)

		case "health":
			_ = a.Health(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
