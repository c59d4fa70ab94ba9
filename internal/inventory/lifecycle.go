package inventory

import "fmt"

// State of an inventory item. Only Active items exist as rows; the terminal
// states describe what happened to a row that is gone (or, for Completed
// with retention enabled, is about to be hidden).
type State int

const (
	Active State = iota
	Completed
	Wasted
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Completed:
		return "completed"
	case Wasted:
		return "wasted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func (s State) Terminal() bool {
	return s == Completed || s == Wasted
}

// Transition names a state change requested by the owner.
type Transition string

const (
	Complete       Transition = "complete"
	Waste          Transition = "waste"
	UpdateQuantity Transition = "update_quantity"
	UpdateExpiry   Transition = "update_expiry"
)

// SavingsMaxDays is the cutoff for crediting a completed item as rescued:
// finishing food with three days or less left counts toward money and meals
// saved.
const SavingsMaxDays = 3

// ErrIllegalTransition is returned by Next for moves out of a terminal state.
type ErrIllegalTransition struct {
	From State
	Via  Transition
}

func (e *ErrIllegalTransition) Error() string {
	return fmt.Sprintf("illegal transition %s from %s", e.Via, e.From)
}

// Next returns the state reached from s through t.
func Next(s State, t Transition) (State, error) {
	if s.Terminal() {
		return s, &ErrIllegalTransition{From: s, Via: t}
	}
	switch t {
	case Complete:
		return Completed, nil
	case Waste:
		return Wasted, nil
	case UpdateQuantity, UpdateExpiry:
		return Active, nil
	default:
		return s, &ErrIllegalTransition{From: s, Via: t}
	}
}

// CompletionDeltas is the counter effect of completing item.
func CompletionDeltas(item *Item) Deltas {
	if item.Expiry > SavingsMaxDays {
		return Deltas{}
	}
	return Deltas{Money: item.Price, Meals: 1}
}

// WasteDeltas is the counter effect of wasting item.
func WasteDeltas(item *Item) Deltas {
	return Deltas{Waste: int64(item.Quantity)}
}
