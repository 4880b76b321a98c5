package models

// OrderStatus represents the lifecycle state of an order.
// The zero value is Pending, the state every new order starts in.
type OrderStatus int

const (
	StatusPending OrderStatus = iota
	StatusApproved
	StatusInProgress
	StatusCompleted
	StatusCancelled
)

// orderStatusLabels maps each status to its display label.
// Kept as an explicit table so labels never depend on reflection or tags.
var orderStatusLabels = map[OrderStatus]string{
	StatusPending:    "Pending",
	StatusApproved:   "Approved",
	StatusInProgress: "InProgress",
	StatusCompleted:  "Completed",
	StatusCancelled:  "Cancelled",
}

// IsValid reports whether s is one of the defined status values.
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusLabels[s]
	return ok
}

// IsTerminal reports whether s admits no further transitions.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// String returns the display label for the status.
func (s OrderStatus) String() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}
	return "Unknown"
}
