package reservation

type Status string

const (
	StatusHeld      Status = "held"
	StatusCommitted Status = "committed"
	StatusReleased  Status = "released"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusHeld, StatusCommitted, StatusReleased, StatusExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition can change stock.
func (s Status) IsTerminal() bool {
	return s == StatusCommitted || s == StatusReleased
}

// ReleaseEffect tells the ledger what a Release did to stock.
type ReleaseEffect int

const (
	ReleaseNoop ReleaseEffect = iota
	// held -> released: reserved must drop by the quantity
	ReleaseReturnsStock
	// expired -> released: the sweep already returned the stock
	ReleaseBookkeeping
)
