// Package client talks to the account service on behalf of the CLI.
//
// GRPCClient holds the current token pair, attaches the access token to
// every call and, when the server reports it expired, refreshes the pair
// once and retries. Status codes map to ErrUnauthorized, ErrUnavailable or
// a RemoteError carrying the server's message.
//
// InitDatabase opens the SQLite file that keeps the CLI signed in between
// runs and applies the embedded goose migrations.
package client
