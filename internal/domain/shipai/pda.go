// Package shipai implements each owned ship's pushdown-automaton behavior:
// a small stack of ShipAiState variants (Collect, Deliver, GoHome,
// BuildDropoff) with push/pop/override transitions (§4.3, §9 "stacked
// ship states").
package shipai

import (
	"github.com/MyForking/halite3-bot-1/internal/domain/fields"
	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/solver"
	"github.com/MyForking/halite3-bot-1/internal/domain/threat"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

// OpKind is one of the four stack transition operations.
type OpKind int

const (
	OpNone OpKind = iota
	OpDone
	OpPush
	OpOverride
)

// Op is the result of a single State.Step call.
type Op struct {
	Kind  OpKind
	State State
}

func NoneOp() Op                { return Op{Kind: OpNone} }
func DoneOp() Op                { return Op{Kind: OpDone} }
func PushOp(s State) Op         { return Op{Kind: OpPush, State: s} }
func OverrideOp(s State) Op     { return Op{Kind: OpOverride, State: s} }

// State is one ShipAiState variant.
type State interface {
	// Step runs one decision cycle for ship id, reading world/derived-field
	// state through ctx and writing its proposal into ctx.Solver (or
	// ctx.Solver.ForceMove). Returns the stack transition to apply.
	Step(ctx *Context, id world.ShipID) Op

	// IsBuilder reports whether this state is a BuildDropoff in progress;
	// the strategic controller consults this to avoid double-assigning a
	// build task (§4.6's "no agent is already in BuildDropoff").
	IsBuilder() bool
}

// Stack is a ship agent's LIFO state stack.
type Stack struct {
	states []State
}

func (s *Stack) Empty() bool { return len(s.states) == 0 }

func (s *Stack) Top() State {
	if s.Empty() {
		return nil
	}
	return s.states[len(s.states)-1]
}

func (s *Stack) Push(state State) {
	s.states = append(s.states, state)
}

// Transition applies op to the stack.
func (s *Stack) Transition(op Op) {
	switch op.Kind {
	case OpNone:
	case OpDone:
		if !s.Empty() {
			s.states = s.states[:len(s.states)-1]
		}
	case OpPush:
		s.states = append(s.states, op.State)
	case OpOverride:
		s.states = s.states[:0]
		s.states = append(s.states, op.State)
	}
}

// Commander is the subset of StrategicController behavior a ship state
// needs: assigning a default task when its stack runs dry, reporting a
// completed delivery for the avg_return_length EWMA, reporting a
// completed drop-off build, and judging whether a BuildDropoff target is
// still a valid expansion location. Declared here (not imported from
// package strategy) so shipai has no dependency on the strategy package;
// *strategy.Controller satisfies this interface structurally.
type Commander interface {
	RequestTask(id world.ShipID, w *world.World) State
	NotifyReturn(turnsTaken int)
	NotifyDropoffBuilt()
	NotifyBuildFailed(id world.ShipID)
	IsValidExpansionLocation(w *world.World, pos grid.Position) bool
}

// Params bundles the "navigation" and "ships" configuration groups that
// ship behavior reads.
type Params struct {
	ReturnStepCost     int
	GoHomeSafetyFactor int
	ReturnDistance     int
	GreedyHarvestLimit int
	CarefulnessLimit   int
}

// Context is the read-mostly bundle of per-turn collaborators passed to
// every State.Step call.
type Context struct {
	World      *world.World
	Fields     *fields.DerivedFields
	FieldLayer *fields.FieldLayer
	Threats    *threat.ThreatMap
	Solver     *solver.MoveSolver
	Commander  Commander
	Params     Params
}

// Agent owns one ship's state stack and drives it through a full think
// cycle each turn.
type Agent struct {
	ID    world.ShipID
	stack Stack
}

// NewAgent creates an agent with an empty stack; the first Think call
// populates it via ctx.Commander.RequestTask.
func NewAgent(id world.ShipID) *Agent {
	return &Agent{ID: id}
}

// Think runs the agent's stack until its top state proposes a move (i.e.
// returns OpNone), per §4.3: "push the task ... then repeatedly execute
// the top state's step until it returns None; each non-None op
// transitions the stack."
func (a *Agent) Think(ctx *Context) {
	if a.stack.Empty() {
		a.stack.Push(ctx.Commander.RequestTask(a.ID, ctx.World))
	}
	for {
		top := a.stack.Top()
		if top == nil {
			a.stack.Push(ctx.Commander.RequestTask(a.ID, ctx.World))
			top = a.stack.Top()
		}
		op := top.Step(ctx, a.ID)
		if op.Kind == OpNone {
			return
		}
		a.stack.Transition(op)
	}
}

// IsBuilding reports whether the agent's current top state is a
// BuildDropoff in progress.
func (a *Agent) IsBuilding() bool {
	if a.stack.Empty() {
		return false
	}
	return a.stack.Top().IsBuilder()
}
