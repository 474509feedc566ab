package models

import "time"

// CashEntry is the single cash figure recorded for one calendar day.
type CashEntry struct {
	Date   time.Time
	Amount float64
}

// LogEntry records one operator action, append-only.
type LogEntry struct {
	ID        int64
	Action    string
	Timestamp time.Time
}
