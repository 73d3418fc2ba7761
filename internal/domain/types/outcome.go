package types

import "time"

// OutcomeError is the transport form of a calculation error.
type OutcomeError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Outcome is the result of running one tool. Exactly one of Value and Error
// is set.
type Outcome struct {
	Tool    string        `json:"tool"`
	Value   any           `json:"value,omitempty"`
	Display string        `json:"display,omitempty"`
	Error   *OutcomeError `json:"error,omitempty"`
}

// OK reports whether the calculation produced a value.
func (o Outcome) OK() bool { return o.Error == nil }

// HistoryEntry is one recorded tool run.
type HistoryEntry struct {
	ID        string            `json:"id"`
	Tool      string            `json:"tool"`
	Args      map[string]string `json:"args"`
	Display   string            `json:"display,omitempty"`
	ErrorKind string            `json:"error_kind,omitempty"`
	Message   string            `json:"message,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Preferences are the persisted user choices.
type Preferences struct {
	Category Category `json:"category,omitempty"`
	Locale   string   `json:"locale,omitempty"`
}
