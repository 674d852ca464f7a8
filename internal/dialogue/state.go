package dialogue

import "reposicion-assistant/internal/catalog"

// #region enums
// RepositionType distinguishes a single-item reposition from a process one.
type RepositionType string

const (
	TypeDirect  RepositionType = "directo"
	TypeProcess RepositionType = "proceso"
)

// Scope is the reach of a process reposition.
type Scope string

const (
	ScopeFullGroup     Scope = "full_group"
	ScopeSingleCircuit Scope = "single_circuit"
)

// #endregion enums

// #region conversation-state
// ConversationState is the transient context of the active session. It is
// reset at session start, selectively cleared when control returns to a code
// entry step, and fully cleared once a transaction completes.
type ConversationState struct {
	Step           Step
	Type           RepositionType
	CodeSearched   string
	FoundItem      *catalog.Record
	ProcessCode    string
	Representative string
	Group          []catalog.Record
	Scope          Scope
}

// resetEntry drops all transaction context except the chosen type, used when
// control returns to "enter a code" so nothing stale leaks across attempts.
func (c *ConversationState) resetEntry(step Step) {
	*c = ConversationState{Step: step, Type: c.Type}
}

// clear drops everything, used after a completed transaction.
func (c *ConversationState) clear(step Step) {
	*c = ConversationState{Step: step}
}

// #endregion conversation-state
