package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is replaceable in tests to capture user-facing output.
var printlnFn = fmt.Println

// executor is the command surface the loop dispatches to.
type executor interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Passwd(ctx context.Context) error
	Tickets(ctx context.Context) error
	Show(ctx context.Context, id string) error
	NewTicket(ctx context.Context) error
}

func printHelp(loggedIn bool) {
	if !loggedIn {
		printlnFn("Available commands: login, help, exit")
		return
	}
	printlnFn("Commands:")
	printlnFn("  logout        log out and forget the saved session")
	printlnFn("  profile       show your profile")
	printlnFn("  passwd        change your password")
	printlnFn("  tickets       list your tickets")
	printlnFn("  ticket <id>   show one ticket with its history")
	printlnFn("  new           open a new ticket")
	printlnFn("  exit          quit")
}

func runREPL(ctx context.Context, a executor, status func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("helpdesk%s> ", status()))
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
			printHelp(a.isLoggedIn())
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "passwd":
			_ = a.Passwd(ctx)
		case "tickets":
			_ = a.Tickets(ctx)
		case "ticket":
			if len(args) != 1 {
				printlnFn("Usage: ticket <id>")
				continue
			}
			_ = a.Show(ctx, args[0])
		case "new":
			_ = a.NewTicket(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
