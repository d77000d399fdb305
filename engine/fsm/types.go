package fsm

import (
	"time"

	"github.com/lixenwraith/fruit-fighter/event"
)

// StateID identifies a node; ids are assigned at load in sorted name order
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Machine is a hierarchical state machine over context T
// The graph is fixed after LoadConfig; only the active leaf and its timer change at runtime
type Machine[T any] struct {
	nodes          map[StateID]*Node[T]
	InitialStateID StateID

	activeStateID StateID
	activePath    []StateID // Root first, active leaf last
	timeInState   time.Duration

	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node is one state; events not handled here bubble to the parent
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID
	Path     []StateID // Root to this node, filled by CompilePaths

	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Evaluated in declaration order, first match wins
	Transitions []Transition[T]
}

// Transition moves to TargetID when Event arrives and Guard passes
// event.EventTick marks an automatic transition checked on every Update
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType
	Guard    GuardFunc[T] // nil passes
}

// Action is a registered side effect bound to its config argument
type Action[T any] struct {
	Func ActionFunc[T]
	Args any
}

// GuardFunc decides a transition; timeInState is measured on the active leaf
type GuardFunc[T any] func(ctx T, timeInState time.Duration) bool

// ActionFunc runs a side effect with its bound argument
type ActionFunc[T any] func(ctx T, args any)
