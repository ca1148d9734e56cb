package types

const (
	// ModuleName defines the module name
	ModuleName = "relaunch"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Status is the relaunch state machine. Exactly one transition is allowed:
// StatusPending -> StatusCompleted.
type Status byte

const (
	// StatusPending means the relaunch has not run yet.
	StatusPending Status = 0

	// StatusCompleted means the relaunch ran to completion. Terminal.
	StatusCompleted Status = 1
)

// String implements fmt.Stringer
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}
