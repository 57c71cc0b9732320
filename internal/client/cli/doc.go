// Package cli provides the interactive employeehub command-line client.
//
// It wires configuration, the REST API client and a small REPL. The session
// token returned by login lives only in memory and is dropped on logout or
// exit.
//
// Commands:
//   - signup / login / logout / whoami
//   - list, show <id>, add, delete <id>
//   - help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
