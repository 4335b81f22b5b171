package entities

// StoreStatus is whether a guild is accepting orders.
type StoreStatus string

const (
	StoreStatusOpen   StoreStatus = "Open"
	StoreStatusPaused StoreStatus = "Paused"
	StoreStatusClosed StoreStatus = "Closed"
)

// IsValid reports whether s is a known status.
func (s StoreStatus) IsValid() bool {
	switch s {
	case StoreStatusOpen, StoreStatusPaused, StoreStatusClosed:
		return true
	}
	return false
}

// AcceptsOrders reports whether new tickets may be opened.
func (s StoreStatus) AcceptsOrders() bool {
	return s == StoreStatusOpen
}

// String implements the fmt.Stringer interface.
func (s StoreStatus) String() string {
	return string(s)
}
