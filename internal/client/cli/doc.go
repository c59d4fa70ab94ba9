// Package cli provides the interactive Freshify command-line client.
//
// It wires configuration, the local sqlite cache, API services and a REPL
// that keeps working while the server is unreachable. Typical flow: restore
// the previous session, start a background connectivity watcher and execute
// user commands.
//
// Key features:
//   - Register / Login / Logout
//   - Scan a fridge photo, optionally with a receipt, and save the result
//   - List the inventory split into "Expiring soon" and "Other"
//   - Mark items used or wasted, adjust quantity and expiry
//   - Show impact counters and suggest a recipe
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
