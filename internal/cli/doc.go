// Package cli implements the interactive terminal client: a small REPL
// over the session, problem, comment, and image stores.
package cli
