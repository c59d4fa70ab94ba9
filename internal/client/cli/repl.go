package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/freshify/internal/client/client"
)

// printFn and printlnFn are test seams for user-facing output.
var (
	printFn   = fmt.Print
	printlnFn = fmt.Println
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Scan(ctx context.Context, image, receipt string) error
	Complete(ctx context.Context, id int64) error
	Waste(ctx context.Context, id int64) error
	SetQuantity(ctx context.Context, id int64, arg string) error
	UpdateExpiry(ctx context.Context, id int64, days int) error
	Impact(ctx context.Context) error
	Recipe(ctx context.Context, focus string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: (l)ist, scan <image> [receipt], complete <id>, waste <id>, " +
		"qty <id> <n|->, expiry <id> <days>, impact, recipe <focus>, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
// Handler errors are reported to the user and never end the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printFn(fmt.Sprintf("fk %s> ", statusFn()))
		line, err := reader.ReadString('\n')
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
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "register":
			report(a.Register(ctx))
			continue
		case "login":
			report(a.Login(ctx))
			continue
		}

		if !isKnown(cmd) {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if !a.isLoggedIn() {
			printlnFn("Please log in first")
			continue
		}

		switch cmd {
		case "logout":
			report(a.Logout(ctx))
		case "l", "list":
			report(a.List(ctx))
		case "impact":
			report(a.Impact(ctx))
		case "scan":
			if len(args) < 1 || len(args) > 2 {
				printlnFn("Usage: scan <image> [receipt-image]")
				continue
			}
			receipt := ""
			if len(args) == 2 {
				receipt = args[1]
			}
			report(a.Scan(ctx, args[0], receipt))
		case "complete", "waste":
			id, ok := parseID(args, 1)
			if !ok {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			if cmd == "complete" {
				report(a.Complete(ctx, id))
			} else {
				report(a.Waste(ctx, id))
			}
		case "qty":
			id, ok := parseID(args, 2)
			if !ok {
				printlnFn("Usage: qty <id> <n|->")
				continue
			}
			report(a.SetQuantity(ctx, id, args[1]))
		case "expiry":
			id, ok := parseID(args, 2)
			var days int
			if ok {
				var err error
				days, err = strconv.Atoi(args[1])
				ok = err == nil
			}
			if !ok {
				printlnFn("Usage: expiry <id> <days>")
				continue
			}
			report(a.UpdateExpiry(ctx, id, days))
		case "recipe":
			if len(args) == 0 {
				printlnFn("Usage: recipe <focus ingredient>")
				continue
			}
			report(a.Recipe(ctx, strings.Join(args, " ")))
		}
	}
}

func isKnown(cmd string) bool {
	switch cmd {
	case "logout", "l", "list", "impact", "scan", "complete", "waste", "qty", "expiry", "recipe":
		return true
	}
	return false
}

// parseID reads a positive item id from args[0] and checks the arg count.
func parseID(args []string, want int) (int64, bool) {
	if len(args) != want {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func report(err error) {
	if err != nil {
		printlnFn("Error:", errorMessage(err))
	}
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, client.ErrLocalDataNotAvailable):
		return "server unavailable and nothing cached yet"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, client.ErrUnauthorized):
		return "not authorized, please log in"
	case errors.Is(err, client.ErrForbidden):
		return "that item belongs to another user"
	case errors.Is(err, client.ErrNotFound):
		return "item not found"
	default:
		return err.Error()
	}
}
