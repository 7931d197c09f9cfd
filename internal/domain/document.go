package domain

import (
	"fmt"
	"strings"
	"time"
)

// Identity is what a store assigns to a draft when it is created.
type Identity struct {
	ID        string
	Sequence  int
	CreatedAt time.Time
	Status    Status
}

// Document is the contract every lifecycle-tracked record satisfies.
// Methods return modified copies; documents are values.
type Document[T any] interface {
	DocumentID() string
	DocumentStatus() Status
	// SearchFields are matched case-insensitively by list filters.
	SearchFields() []string
	Validate() error
	Assign(id Identity) T
	// Transition moves the document to target and applies its side effects.
	// Guards are checked by the caller.
	Transition(target Status, at time.Time) T
}

// Transition is one recorded status change. From is empty for creations.
type Transition struct {
	Resource   Resource
	DocumentID string
	From       Status
	To         Status
	At         time.Time
}

func documentNumber(prefix string, at time.Time, seq int) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, at.Year(), seq)
}

// MatchesSearch reports whether any field contains term, ignoring case.
func MatchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// MatchesStatus treats an empty filter and "all" as a wildcard.
func MatchesStatus(filter string, s Status) bool {
	filter = strings.TrimSpace(filter)
	return filter == "" || filter == StatusAll || Status(filter) == s
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
