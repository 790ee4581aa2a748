// Package cli provides the interactive Fruitie terminal client.
//
// It wires configuration, the HTTP API client and a chat session into a
// line-based REPL. The chat session keeps its own state; the REPL only
// forwards actions (open, close, say) and the session's render callback
// prints new messages as they arrive.
//
// Account commands (register, login, profile) talk to the same server.
// The login token lives only in memory for the lifetime of the process.
package cli
