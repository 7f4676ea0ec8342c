package model

// KV is one inline keyboard button: K is the label, V the callback payload.
type KV struct {
	K string
	V string
}

// PendingAction is what the admin console is waiting for from a user.
// At most one per user; a later panel press overwrites an earlier one.
type PendingAction int

const (
	PendingNone PendingAction = iota
	PendingBroadcast
	PendingAddAdmin
	PendingRemoveAdmin
)

func (p PendingAction) String() string {
	switch p {
	case PendingBroadcast:
		return "broadcast"
	case PendingAddAdmin:
		return "add_admin"
	case PendingRemoveAdmin:
		return "remove_admin"
	}
	return "none"
}

// Provenance describes where an audited message came from.
type Provenance struct {
	SenderID   int
	SenderName string
	Handle     string
	ChatTitle  string
	Private    bool
	Link       string
}
