package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

var errUnknownCommand = errors.New("unknown command")

// execIface is the command surface the dispatcher drives. App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Version(ctx context.Context, args []string) error
	Register(ctx context.Context, args []string) error
	Verify(ctx context.Context, args []string) error
	Resend(ctx context.Context, args []string) error
	Forgot(ctx context.Context, args []string) error
	Reset(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Me(ctx context.Context, args []string) error
	Sessions(ctx context.Context, args []string) error
	Kill(ctx context.Context, args []string) error
	KillAll(ctx context.Context, args []string) error
}

const (
	anonymousHelp = `Available commands:
  register [email]        create an account
  verify [token]          redeem an email verification token
  resend [email]          mail the verification token again
  forgot [email]          request a password reset token
  reset [token]           set a new password with a reset token
  login [email]           sign in
  version                 show the server version
  exit | quit`
	signedInHelp = `Available commands:
  me                      show the signed-in account
  sessions                list your sessions (* marks this one)
  kill [session-id]       revoke one session
  killall                 revoke every session, this one included
  logout                  revoke this session and forget it locally
  version                 show the server version
  exit | quit`
)

// runCommand dispatches a single command.
func runCommand(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(signedInHelp)
		} else {
			printlnFn(anonymousHelp)
		}
		return nil
	case "version":
		return a.Version(ctx, args)
	case "register":
		return a.Register(ctx, args)
	case "verify":
		return a.Verify(ctx, args)
	case "resend":
		return a.Resend(ctx, args)
	case "forgot":
		return a.Forgot(ctx, args)
	case "reset":
		return a.Reset(ctx, args)
	case "login":
		return a.Login(ctx, args)
	case "logout":
		return a.Logout(ctx, args)
	case "me":
		return a.Me(ctx, args)
	case "sessions":
		return a.Sessions(ctx, args)
	case "kill":
		return a.Kill(ctx, args)
	case "killall":
		return a.KillAll(ctx, args)
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}
}

// runREPL reads commands from reader until EOF, "exit" or "quit". Prompts
// issued by commands read from the same reader. Command errors are printed
// and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("accounts %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if err := runCommand(ctx, a, parts[0], parts[1:]); err != nil {
			printlnFn("Error:", err)
		}
	}
}
