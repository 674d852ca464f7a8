package dialogue

import "reposicion-assistant/internal/catalog"

// #region completed-reposition
// CompletedReposition is an immutable snapshot of a finished transaction,
// deep-copied at capture time. Once appended it is never mutated.
type CompletedReposition struct {
	Type           RepositionType
	CodeSearched   string
	FoundItem      *catalog.Record
	ProcessCode    string
	Representative string
	Group          []catalog.Record
	Scope          Scope
	Quantity       int
}

// Label is the identifier shown for this transaction in messages: the code
// the user searched, the representative, or the matched item.
func (c CompletedReposition) Label() string {
	if c.CodeSearched != "" {
		return c.CodeSearched
	}
	if c.Representative != "" {
		return c.Representative
	}
	if c.FoundItem != nil {
		return c.FoundItem.NumeroSencillo
	}
	return "Ítem/Proceso"
}

// #endregion completed-reposition

// #region accumulator
// Accumulator collects completed transactions in insertion order. It never
// deduplicates: repeated repositionings of the same code are distinct line
// items. It only shrinks on an explicit fresh start.
type Accumulator struct {
	items []CompletedReposition
}

// Append adds one snapshot. O(1), order-preserving.
func (a *Accumulator) Append(c CompletedReposition) {
	a.items = append(a.items, c)
}

// Len returns the number of collected transactions.
func (a *Accumulator) Len() int {
	return len(a.items)
}

// IsEmpty gates the print prompt.
func (a *Accumulator) IsEmpty() bool {
	return len(a.items) == 0
}

// Clear empties the accumulator. Only called on explicit restart.
func (a *Accumulator) Clear() {
	a.items = nil
}

// Snapshot returns a copy of the collected transactions.
func (a *Accumulator) Snapshot() []CompletedReposition {
	out := make([]CompletedReposition, len(a.items))
	copy(out, a.items)
	return out
}

// #endregion accumulator
