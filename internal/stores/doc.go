// Package stores holds the in-memory application state for the civicwatch
// client: session identity, problems, comments, and stored images. Each
// store exclusively owns its collection, mutates it in memory, and makes
// the change durable through the storage layer before returning. Stores are
// explicit instances wired by the caller; none of them is safe for
// concurrent use because the client runs in a single execution context.
package stores
