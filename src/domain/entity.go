package domain

import (
	"time"
)

// Suggestion represents a suggestion domain entity
type Suggestion struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Status      Status    `json:"status"`
	Likes       int       `json:"likes"`
}

// Status represents suggestion status
type Status string

const (
	StatusAccepted Status = "acceptee"
	StatusRefused  Status = "refusee"
	StatusPending  Status = "en_attente"
)

// statusLabels 表示用ラベル
var statusLabels = map[Status]string{
	StatusAccepted: "Acceptée",
	StatusRefused:  "Refusée",
	StatusPending:  "En attente",
}

// IsValid validates if the status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusAccepted, StatusRefused, StatusPending:
		return true
	default:
		return false
	}
}

// String returns string representation of Status
func (s Status) String() string {
	return string(s)
}

// Label returns the display label of the status.
// 未知の値はそのまま返す
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// StatusLabel maps a raw status value to its display label
func StatusLabel(raw string) string {
	return Status(raw).Label()
}
