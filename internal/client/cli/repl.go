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
	List(ctx context.Context) error
	Refresh(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Add(ctx context.Context) error
	Delete(ctx context.Context, arg string) error
	DeleteLocal(ctx context.Context, arg string) error
	Import(ctx context.Context) error
	Promote(ctx context.Context, arg string) error
}

const helpText = "Available commands: (l)ist, refresh, search [term], add, delete <id>, dellocal <id>, import, promote <n>, exit"

// runREPL reads commands from scanner and dispatches them to a until EOF or
// "exit"/"quit". promptFn supplies the prompt; an empty prompt is not
// printed. Handler errors are ignored here: handlers report to the user
// themselves.
func runREPL(ctx context.Context, a execIface, promptFn func() string, scanner *bufio.Scanner) {
	for {
		if p := promptFn(); p != "" {
			printlnFn(p)
		}
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "add":
			_ = a.Add(ctx)

		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "dellocal":
			if len(args) != 1 {
				printlnFn("Usage: dellocal <id>")
				continue
			}
			_ = a.DeleteLocal(ctx, args[0])

		case "import":
			_ = a.Import(ctx)

		case "promote":
			if len(args) != 1 {
				printlnFn("Usage: promote <n>")
				continue
			}
			_ = a.Promote(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
