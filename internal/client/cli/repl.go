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
	Users(ctx context.Context) error
	Login(ctx context.Context, args []string) error
	Resume(ctx context.Context) error
	Logout(ctx context.Context) error
	Sync(ctx context.Context) error
	Version(ctx context.Context) error
	ListBodyWeight(ctx context.Context) error
	ListBodyFat(ctx context.Context) error
	ListPeriod(ctx context.Context) error
	ListExercises(ctx context.Context) error
	ListRoutines(ctx context.Context) error
	ListTrainingSessions(ctx context.Context) error
	AddBodyWeight(ctx context.Context, args []string) error
	DeleteBodyWeight(ctx context.Context, args []string) error
	AddPeriod(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("valens> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: sync, bw, bf, period, exercises, routines, workouts, add-bw, del-bw, add-period, version, logout, exit")
			} else {
				printlnFn("Available commands: users, login <user-id>, resume, version, exit")
			}

		case "users":
			_ = a.Users(ctx)

		case "login":
			_ = a.Login(ctx, args)

		case "resume":
			_ = a.Resume(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "sync":
			_ = a.Sync(ctx)

		case "version":
			_ = a.Version(ctx)

		case "bw":
			_ = a.ListBodyWeight(ctx)

		case "bf":
			_ = a.ListBodyFat(ctx)

		case "period":
			_ = a.ListPeriod(ctx)

		case "exercises":
			_ = a.ListExercises(ctx)

		case "routines":
			_ = a.ListRoutines(ctx)

		case "workouts":
			_ = a.ListTrainingSessions(ctx)

		case "add-bw":
			_ = a.AddBodyWeight(ctx, args)

		case "del-bw":
			_ = a.DeleteBodyWeight(ctx, args)

		case "add-period":
			_ = a.AddPeriod(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
