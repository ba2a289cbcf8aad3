package pricing

import (
	"bytes"

	"github.com/google/uuid"
)

func compareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

// Precedence sorts winners first: higher priority, then the more recent
// valid_from, then the lower id. It is a total order over distinct rules.
func Precedence(a, b Rule) int {
	if a.Priority() != b.Priority() {
		if a.Priority() > b.Priority() {
			return -1
		}
		return 1
	}
	if c := b.Window().From().Compare(a.Window().From()); c != 0 {
		return c
	}
	return compareIDs(a.ID(), b.ID())
}

// ApplicationOrder sorts discounts in the order they are applied:
// ascending priority, then valid_from, then id.
func ApplicationOrder(a, b Rule) int {
	if a.Priority() != b.Priority() {
		if a.Priority() < b.Priority() {
			return -1
		}
		return 1
	}
	if c := a.Window().From().Compare(b.Window().From()); c != 0 {
		return c
	}
	return compareIDs(a.ID(), b.ID())
}
