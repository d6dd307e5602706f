// Package cli provides the interactive products command-line client.
//
// It wires configuration, the HTTP API client and a small REPL. Typical
// flow: ping the server, register or log in, then manage products.
//
// Commands:
//   - register, login, logout
//   - add, list, show [id], update [id], delete [id]
//   - help, exit | quit
//
// The session token lives only in memory; a 401 from the server clears it.
// See App and runREPL for details.
package cli
