package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printfFn are test seams for user-facing output.
var (
	printlnFn = fmt.Println
	printfFn  = fmt.Printf
)

// execIface defines the command surface the REPL needs. The real App type
// satisfies it; tests can provide a lightweight stub.
type execIface interface {
	Lend(ctx context.Context) error
	Owe(ctx context.Context) error
	Find(ctx context.Context) error
	Confirm(ctx context.Context) error
	Return(ctx context.Context) error
	Active(ctx context.Context) error
	History(ctx context.Context) error
	Remind(ctx context.Context) error
	Trust(ctx context.Context) error
	Export(ctx context.Context) error
	Settings(ctx context.Context) error
	Reset(ctx context.Context) error
}

// runREPL reads one command per line and dispatches to a. Unknown commands
// are reported back to the user. The loop exits on EOF or "exit"/"quit".
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	printHelp()

	for {
		printfFn("borrowsafe> ")
		if !scanner.Scan() {
			return
		}

		cmd := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if cmd == "" {
			continue
		}

		var err error
		switch cmd {
		case "help":
			printHelp()
		case "lend":
			err = a.Lend(ctx)
		case "owe":
			err = a.Owe(ctx)
		case "find":
			err = a.Find(ctx)
		case "confirm":
			err = a.Confirm(ctx)
		case "return":
			err = a.Return(ctx)
		case "active":
			err = a.Active(ctx)
		case "history":
			err = a.History(ctx)
		case "remind":
			err = a.Remind(ctx)
		case "trust":
			err = a.Trust(ctx)
		case "export":
			err = a.Export(ctx)
		case "settings":
			err = a.Settings(ctx)
		case "reset":
			err = a.Reset(ctx)
		case "exit", "quit":
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}

func printHelp() {
	printlnFn(`Commands:
  lend      — record an item you lent out
  owe       — record money you lent out
  find      — look up a loan by its code
  confirm   — confirm a borrow by code (borrower side)
  return    — mark a loan returned
  active    — list loans still out
  history   — list returned loans
  remind    — generate due-date reminders
  trust     — borrower reliability ranking
  export    — dump all data as JSON
  settings  — show or change preferences
  reset     — wipe everything back to defaults
  exit      — leave`)
}
