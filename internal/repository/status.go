package repository

// Wire-level item/claim status values.
//
// EXPIRING_SOON is a notification-only label computed by the expiration
// sweep; it is never persisted as an item status.
const (
	StatusUnclaimed       = "UNCLAIMED"
	StatusPendingApproval = "PENDING_APPROVAL"
	StatusPendingPickup   = "PENDING_PICKUP"
	StatusClaimed         = "CLAIMED"
	StatusRejected        = "REJECTED"
	StatusArchived        = "ARCHIVED"
	StatusExpiringSoon    = "EXPIRING_SOON"
)

var knownStatuses = map[string]struct{}{
	StatusUnclaimed:       {},
	StatusPendingApproval: {},
	StatusPendingPickup:   {},
	StatusClaimed:         {},
	StatusRejected:        {},
	StatusArchived:        {},
	StatusExpiringSoon:    {},
}

func ValidStatus(s string) bool {
	_, ok := knownStatuses[s]
	return ok
}

// TerminalStatus reports whether a claim request in this status accepts no
// further transitions.
func TerminalStatus(s string) bool {
	return s == StatusClaimed || s == StatusRejected || s == StatusArchived
}
