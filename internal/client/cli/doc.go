// Package cli is the accountctl command-line client.
//
// Given a command on the command line (accountctl login alice@x.com) it runs
// that command and exits; otherwise it starts an interactive prompt. Missing
// arguments are asked for, passwords without echo. The token pair is kept
// in a local SQLite file, so a login survives between runs, and is replaced
// whenever the client refreshes it.
package cli
