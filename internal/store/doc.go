// Package store defines the persistence port used by the history and quiz
// result logs. A RecordStore holds named records, each an opaque JSON
// document, so that a backend (in-memory, badger, Postgres or Redis) only
// needs get, put and delete by key.
package store
