// Package cli provides the interactive diary command-line client.
//
// It wires configuration, the HTTP API client and the client services into a
// REPL. A background watcher pings the server and the prompt shows the
// current user and connectivity.
//
// Commands:
//   - register / login / logout
//   - list [page] [pageSize], show <id>
//   - add, edit <id>, delete <id>
//   - export
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
