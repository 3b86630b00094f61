package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL dispatches to. The
// real App satisfies it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	List(ctx context.Context) error
	Report(ctx context.Context) error
	Show(ctx context.Context) error
	Status(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Comments(ctx context.Context) error
	Comment(ctx context.Context) error
	Uncomment(ctx context.Context) error
	Attach(ctx context.Context) error
	Image(ctx context.Context) error
}

// runREPL reads a line, takes the first token as the command, and
// dispatches to a. Unknown commands are reported back. The loop exits on
// EOF or "exit"/"quit". Handler errors are ignored here; handlers print
// their own failures so the loop stays focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cw> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, report, show, status, edit, delete, comments, comment, uncomment, attach, image, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, (l)ist, show, comments, comment, image, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "report":
			_ = a.Report(ctx)

		case "show":
			_ = a.Show(ctx)

		case "status":
			_ = a.Status(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "comments":
			_ = a.Comments(ctx)

		case "comment":
			_ = a.Comment(ctx)

		case "uncomment":
			_ = a.Uncomment(ctx)

		case "attach":
			_ = a.Attach(ctx)

		case "image":
			_ = a.Image(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", parts[0])
		}
	}
}
