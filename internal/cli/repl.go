package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Articles(ctx context.Context) error
	Article(ctx context.Context, id string) error
	Search(ctx context.Context, keyword string) error
	Write(ctx context.Context) error
	Publish(ctx context.Context, id string) error
	Bookmarks(ctx context.Context) error
	Notifications(ctx context.Context) error
	Read(ctx context.Context, id string) error
	ReadAll(ctx context.Context) error
}

// runREPL starts a read-eval-print loop. It reads a line from the scanner,
// parses the first token as the command, and dispatches to methods on 'a'.
// Unknown commands are reported back to the user. The loop exits on scanner
// EOF, context cancellation, or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		printlnFn(fmt.Sprintf("blog> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: articles, article <id>, search <keyword>, write, publish <id>, bookmarks, notifications, read <id>, read-all, whoami, logout, exit")
			} else {
				printlnFn("Available commands: articles, article <id>, search <keyword>, login, register, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "articles":
			_ = a.Articles(ctx)

		case "article":
			_ = a.Article(ctx, arg)

		case "search":
			_ = a.Search(ctx, strings.TrimSpace(strings.TrimPrefix(line, "search")))

		case "write":
			_ = a.Write(ctx)

		case "publish":
			_ = a.Publish(ctx, arg)

		case "bookmarks":
			_ = a.Bookmarks(ctx)

		case "notifications":
			_ = a.Notifications(ctx)

		case "read":
			_ = a.Read(ctx, arg)

		case "read-all":
			_ = a.ReadAll(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
