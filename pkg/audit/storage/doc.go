// Package storage provides audit storage backends.
//
// Two implementations are available:
//
//   - SQLiteStorage: durable file-backed storage with WAL mode, the
//     production default
//   - MemoryStorage: process-local storage for tests and ephemeral runs
//
// Both satisfy the audit.Storage interface and are safe for concurrent
// use.
package storage
