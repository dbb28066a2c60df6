package domain

import "time"

// HistoryTimestampLayout is the ISO-8601 layout used for HistoryItem timestamps
// (UTC, millisecond precision, "Z" suffix).
const HistoryTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// HistoryItem is a past generation that can be replayed through the renderer.
type HistoryItem struct {
	ID        string      `json:"id"`
	Topic     string      `json:"topic"`
	Type      ContentType `json:"type"`
	Content   string      `json:"content"`
	Timestamp string      `json:"timestamp"`
}

// NewHistoryEntry is a HistoryItem before the store assigns its id and timestamp.
type NewHistoryEntry struct {
	Topic   string
	Type    ContentType
	Content string
}

// FormatHistoryTimestamp renders t in HistoryTimestampLayout.
func FormatHistoryTimestamp(t time.Time) string {
	return t.UTC().Format(HistoryTimestampLayout)
}
