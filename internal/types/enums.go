package types

type ModuleKind string

const (
	ModuleKindOverlay ModuleKind = "overlay"
	ModuleKindStats   ModuleKind = "stats"
)

// SessionState tracks where a reconciliation pass currently is.
type SessionState string

const (
	SessionStateIdle         SessionState = "idle"
	SessionStateMutating     SessionState = "mutating"
	SessionStateResyncing    SessionState = "resyncing"
	SessionStateRegenerating SessionState = "regenerating"
	SessionStateVerifying    SessionState = "verifying"
	SessionStateClosed       SessionState = "closed"
)

// NoneSentinel is the persisted value for "no names".
const NoneSentinel = "None"

// ListSeparator joins names in persisted lines.
const ListSeparator = ','
