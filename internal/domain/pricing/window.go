package pricing

import (
	"errors"
	"time"
)

var ErrInvalidWindow = errors.New("invalid validity window")

// Window is the half-open interval [from, until). A nil until is open-ended.
type Window struct {
	from  time.Time
	until *time.Time
}

func NewWindow(from time.Time, until *time.Time) (Window, error) {
	if from.IsZero() {
		return Window{}, ErrInvalidWindow
	}
	w := Window{from: from.UTC()}
	if until != nil {
		if !from.Before(*until) {
			return Window{}, ErrInvalidWindow
		}
		u := until.UTC()
		w.until = &u
	}
	return w, nil
}

// AlwaysFrom is an open-ended window starting at from.
func AlwaysFrom(from time.Time) Window {
	return Window{from: from.UTC()}
}

func (w Window) Contains(t time.Time) bool {
	if t.Before(w.from) {
		return false
	}
	return w.until == nil || t.Before(*w.until)
}

// ClosedBefore reports whether the window ended at or before t.
func (w Window) ClosedBefore(t time.Time) bool {
	return w.until != nil && !w.until.After(t)
}

func (w Window) From() time.Time { return w.from }

func (w Window) Until() *time.Time {
	if w.until == nil {
		return nil
	}
	u := *w.until
	return &u
}
