// Package cli provides the interactive directory command-line client.
//
// It wires configuration, the API client, the demo data source and the view
// state, then runs a REPL. A background watcher keeps the connection mode
// (online/offline) current.
//
// Commands:
//   - list | l         show local, server and imported users
//   - refresh          re-fetch the server list
//   - search [term]    filter the server list (no term clears the filter)
//   - add              fill the add-user form, then save, keep locally, or cancel
//   - delete <id>      delete a server user
//   - dellocal <id>    drop a locally-only user
//   - import           fetch demo candidates
//   - promote <n>      save imported candidate n to the server
//   - exit | quit      leave the program
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
