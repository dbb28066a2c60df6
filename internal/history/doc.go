// Package history keeps the bounded, newest-first log of past generations.
//
// The Store is a write-through cache over a single store.RecordStore record
// holding a JSON array of domain.HistoryItem. Persistence is best effort:
// read and write failures are logged and the in-memory list stays
// authoritative for the life of the process.
package history
