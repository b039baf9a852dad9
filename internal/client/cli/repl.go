package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests use a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Members(ctx context.Context, args []string) error
	Member(ctx context.Context, args []string) error
	AddUser(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Payments(ctx context.Context, args []string) error
	Payouts(ctx context.Context, args []string) error
	Outstanding(ctx context.Context, args []string) error
	Dead(ctx context.Context) error
	Upload(ctx context.Context, args []string) error
	Metrics(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: login, help, exit"
	helpSignedIn  = "Available commands: whoami, members [query], member <id>, adduser, dashboard, " +
		"payments [from] [to], payouts [limit] [page], outstanding [<op> <amount>], dead, upload <path>, metrics, logout, help, exit"
)

// runREPL reads commands until EOF, "exit" or "quit". Command errors are
// printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "md %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(out, "Bye!")
			return
		}
		if cmdErr := dispatch(ctx, a, cmd, args, out); cmdErr != nil {
			fmt.Fprintf(out, "error: %v\n", cmdErr)
		}
		if err != nil {
			return
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string, out io.Writer) error {
	if cmd == "help" {
		if a.isLoggedIn() {
			fmt.Fprintln(out, helpSignedIn)
		} else {
			fmt.Fprintln(out, helpAnonymous)
		}
		return nil
	}

	if !a.isLoggedIn() {
		if cmd == "login" {
			return a.Login(ctx)
		}
		fmt.Fprintln(out, "Unknown command:", cmd)
		return nil
	}

	switch cmd {
	case "login":
		fmt.Fprintln(out, "Already logged in; use logout first.")
		return nil
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.WhoAmI(ctx)
	case "members", "m":
		return a.Members(ctx, args)
	case "member":
		return a.Member(ctx, args)
	case "adduser":
		return a.AddUser(ctx)
	case "dashboard":
		return a.Dashboard(ctx)
	case "payments":
		return a.Payments(ctx, args)
	case "payouts":
		return a.Payouts(ctx, args)
	case "outstanding":
		return a.Outstanding(ctx, args)
	case "dead":
		return a.Dead(ctx)
	case "upload":
		return a.Upload(ctx, args)
	case "metrics":
		return a.Metrics(ctx)
	default:
		fmt.Fprintln(out, "Unknown command:", cmd)
		return nil
	}
}
