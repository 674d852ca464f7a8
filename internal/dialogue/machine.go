package dialogue

import (
	"go.uber.org/zap"

	"reposicion-assistant/internal/catalog"
)

// #region reply
// Reply is the machine's answer to one input line.
type Reply struct {
	Messages []string
	// Done marks the terminal state; the session ends after this reply.
	Done bool
	// PrintRequested asks the caller to run the report generator. The
	// accumulator stays intact so a failed sink can be retried.
	PrintRequested bool
}

func reply(msgs ...string) Reply {
	return Reply{Messages: msgs}
}

// #endregion reply

// #region machine
// Machine drives the repositioning dialogue: one normalized input line in,
// one message plus one transition out. Invalid input re-prompts and stays on
// the same step without touching partially collected state.
type Machine struct {
	engine *catalog.Engine
	acc    Accumulator
	state  ConversationState
	log    *zap.Logger
}

// NewMachine creates a machine over the given lookup engine. A nil logger is
// replaced with a no-op one.
func NewMachine(engine *catalog.Engine, logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Machine{engine: engine, log: logger}
}

// Start clears conversation state and the accumulator and returns the
// greeting. Used at session start and on explicit fresh restart.
func (m *Machine) Start() Reply {
	m.acc.Clear()
	m.state = ConversationState{Step: StepAskReposition}
	return reply(msgGreeting)
}

// State returns a copy of the current conversation state.
func (m *Machine) State() ConversationState {
	return m.state
}

// Completed returns the accumulated transaction snapshots.
func (m *Machine) Completed() []CompletedReposition {
	return m.acc.Snapshot()
}

// SetEngine swaps the lookup engine after a dataset reload. In-flight
// snapshots keep referencing rows from the previous load; the returned
// message warns that resumed matches may differ.
func (m *Machine) SetEngine(engine *catalog.Engine) Reply {
	m.engine = engine
	return reply(msgReloaded)
}

// RetryPrint re-enters the print prompt after a sink failure, keeping the
// accumulator intact.
func (m *Machine) RetryPrint() Reply {
	m.state.Step = StepAskPrint
	return reply(msgAskPrint)
}

// #endregion machine

// #region handle

// Handle consumes one line of user input and advances the dialogue.
func (m *Machine) Handle(input string) Reply {
	r := normalizeInput(input)
	m.log.Debug("turn", zap.String("step", m.state.Step.String()), zap.String("input", r))

	switch m.state.Step {
	case StepAskReposition:
		return m.handleAskReposition(r)
	case StepAskType:
		return m.handleAskType(r)
	case StepGetDirectCode:
		return m.handleGetDirectCode(r)
	case StepConfirmDirectItem:
		return m.handleConfirmDirectItem(r)
	case StepGetQuantityDirect:
		return m.handleQuantity(r, StepGetQuantityDirect)
	case StepGetProcessCode:
		return m.handleGetProcessCode(r)
	case StepConfirmProcessItems:
		return m.handleConfirmProcessItems(r)
	case StepAskGroupOrSpecific:
		return m.handleAskGroupOrSpecific(r)
	case StepAskSpecificCircuitCode:
		return m.handleAskSpecificCircuitCode(r)
	case StepConfirmSpecificItem:
		return m.handleConfirmSpecificItem(r)
	case StepGetTotalGroupQuantity:
		return m.handleQuantity(r, StepGetTotalGroupQuantity)
	case StepGetSingleCircuitQuantity:
		return m.handleQuantity(r, StepGetSingleCircuitQuantity)
	case StepAskAnotherReposition:
		return m.handleAskAnotherReposition(r)
	case StepAskPrint:
		return m.handleAskPrint(r)
	case StepDone:
		return Reply{Messages: []string{msgFarewell}, Done: true}
	}

	m.log.Warn("unknown step, restarting", zap.Int("step", int(m.state.Step)))
	return m.Start()
}

// #endregion handle

// #region entry-steps

func (m *Machine) handleAskReposition(r string) Reply {
	switch {
	case isYes(r):
		m.state.Step = StepAskType
		return reply(msgAskType)
	case isNo(r):
		return m.finishOrAskPrint()
	default:
		return reply(msgYesNo)
	}
}

func (m *Machine) handleAskType(r string) Reply {
	switch r {
	case tokenDirect:
		m.state.resetEntry(StepGetDirectCode)
		m.state.Type = TypeDirect
		return reply(msgEnterDirectCode)
	case tokenProcess:
		m.state.resetEntry(StepGetProcessCode)
		m.state.Type = TypeProcess
		return reply(msgEnterProcessCode)
	default:
		return reply(msgDirectOrProcess)
	}
}

// #endregion entry-steps

// #region direct-flow

func (m *Machine) handleGetDirectCode(r string) Reply {
	matches := m.engine.FindDirect(r)
	if len(matches) == 0 {
		m.state.resetEntry(StepGetDirectCode)
		return reply(msgDirectMiss(r))
	}

	item := matches[0]
	m.state.Step = StepConfirmDirectItem
	m.state.FoundItem = &item
	m.state.CodeSearched = catalog.NormalizeTerm(r)
	return reply(msgDirectFound(item))
}

func (m *Machine) handleConfirmDirectItem(r string) Reply {
	switch {
	case isYes(r):
		m.state.Step = StepGetQuantityDirect
		return reply(msgAskQuantity)
	case isNo(r):
		m.state.resetEntry(StepGetDirectCode)
		return reply(msgRetryDirectCode)
	default:
		return reply(msgYesNo)
	}
}

// #endregion direct-flow

// #region process-flow

func (m *Machine) handleGetProcessCode(r string) Reply {
	proc, rep, group := m.engine.FindProcess(r)
	if proc == "" || rep == "" || len(group) == 0 {
		m.state.resetEntry(StepGetProcessCode)
		return reply(msgProcessMiss(r))
	}

	m.state.Step = StepConfirmProcessItems
	m.state.ProcessCode = proc
	m.state.Representative = rep
	m.state.Group = group
	m.state.CodeSearched = catalog.NormalizeTerm(r)
	return reply(msgProcessFound(proc, rep, group[0]))
}

func (m *Machine) handleConfirmProcessItems(r string) Reply {
	switch {
	case isYes(r):
		m.state.Step = StepAskGroupOrSpecific
		return reply(msgGroupOrSpecific)
	case isNo(r):
		m.state.resetEntry(StepGetProcessCode)
		return reply(msgRetryProcessCode)
	default:
		return reply(msgYesNo)
	}
}

func (m *Machine) handleAskGroupOrSpecific(r string) Reply {
	switch r {
	case tokenGroup:
		m.state.Step = StepGetTotalGroupQuantity
		m.state.Scope = ScopeFullGroup
		return reply(msgAskGroupQty)
	case tokenSpecific, tokenSpecificAccent:
		m.state.Step = StepAskSpecificCircuitCode
		m.state.Scope = ScopeSingleCircuit
		return reply(msgEnterCircuit)
	default:
		return reply(msgGroupOrSpecErr)
	}
}

func (m *Machine) handleAskSpecificCircuitCode(r string) Reply {
	if len(m.state.Group) == 0 {
		m.log.Warn("representative group missing, restarting session")
		restart := m.Start()
		restart.Messages = append([]string{msgGroupLost}, restart.Messages...)
		return restart
	}

	item, ok := m.engine.FindInProcess(m.state.Group, r)
	if !ok {
		return reply(msgCircuitMiss(r))
	}

	m.state.Step = StepConfirmSpecificItem
	m.state.FoundItem = &item
	return reply(msgCircuitFound(item))
}

func (m *Machine) handleConfirmSpecificItem(r string) Reply {
	switch {
	case isYes(r):
		m.state.Step = StepGetSingleCircuitQuantity
		return reply(msgAskCircuitQty)
	case isNo(r):
		m.state.Step = StepAskSpecificCircuitCode
		m.state.FoundItem = nil
		return reply(msgRetryCircuitCode)
	default:
		return reply(msgYesNo)
	}
}

// #endregion process-flow

// #region quantity

// handleQuantity validates the quantity, snapshots the transaction, and moves
// on to "another reposition?". Invalid input self-loops on the quantity step.
func (m *Machine) handleQuantity(r string, selfStep Step) Reply {
	qty, ok := parseQuantity(r)
	if !ok {
		m.state.Step = selfStep
		return reply(msgInvalidQuantity)
	}

	snap := m.snapshot(qty)
	m.acc.Append(snap)
	m.log.Info("reposition captured",
		zap.String("type", string(snap.Type)),
		zap.String("label", snap.Label()),
		zap.Int("quantity", qty),
		zap.Int("accumulated", m.acc.Len()),
	)

	m.state.clear(StepAskAnotherReposition)
	return reply(msgAdded(snap.Label(), qty), msgAskAnother)
}

// snapshot deep-copies the transaction context. Records hold only strings, so
// copying the struct and the group slice is a full deep copy.
func (m *Machine) snapshot(qty int) CompletedReposition {
	snap := CompletedReposition{
		Type:           m.state.Type,
		CodeSearched:   m.state.CodeSearched,
		ProcessCode:    m.state.ProcessCode,
		Representative: m.state.Representative,
		Scope:          m.state.Scope,
		Quantity:       qty,
	}
	if m.state.FoundItem != nil {
		item := *m.state.FoundItem
		snap.FoundItem = &item
	}
	if len(m.state.Group) > 0 {
		snap.Group = make([]catalog.Record, len(m.state.Group))
		copy(snap.Group, m.state.Group)
	}
	return snap
}

// #endregion quantity

// #region closing-steps

func (m *Machine) handleAskAnotherReposition(r string) Reply {
	switch {
	case isYes(r):
		m.state.Step = StepAskType
		return reply(msgAskTypeNext)
	case isNo(r):
		return m.finishOrAskPrint()
	default:
		return reply(msgYesNo)
	}
}

// finishOrAskPrint ends the session directly when nothing was accumulated,
// otherwise offers the report.
func (m *Machine) finishOrAskPrint() Reply {
	if m.acc.IsEmpty() {
		m.state.Step = StepDone
		return Reply{Messages: []string{msgFarewell}, Done: true}
	}
	m.state.Step = StepAskPrint
	return reply(msgAskPrint)
}

func (m *Machine) handleAskPrint(r string) Reply {
	if m.acc.IsEmpty() {
		m.state.Step = StepDone
		return Reply{Messages: []string{msgNothingToPrint}, Done: true}
	}
	switch {
	case isYes(r):
		m.state.Step = StepDone
		return Reply{Messages: []string{msgPrinting}, Done: true, PrintRequested: true}
	case isNo(r):
		m.state.Step = StepDone
		return Reply{Messages: []string{msgNoPrint}, Done: true}
	default:
		return reply(msgYesNo)
	}
}

// #endregion closing-steps
