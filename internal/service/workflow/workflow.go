package workflow

import (
	"fmt"
	"time"

	"github.com/you-humble/repair-workshop/internal/model"
)

type transition struct {
	to      model.RepairStatus
	onEnter func(r *model.Repair, now time.Time)
}

// Every status has at most one successor; archived has none.
var transitions = map[model.RepairStatus]transition{
	model.StatusPending: {
		to: model.StatusInProgress,
	},
	model.StatusInProgress: {
		to: model.StatusCompleted,
		onEnter: func(r *model.Repair, now time.Time) {
			completedAt := now
			r.CompletedAt = &completedAt
		},
	},
	model.StatusCompleted: {
		to: model.StatusArchived,
	},
}

const InitialStatus = model.StatusPending

func CanTransition(current, requested model.RepairStatus) bool {
	t, ok := transitions[current]
	return ok && t.to == requested
}

func Check(current, requested model.RepairStatus) error {
	if !CanTransition(current, requested) {
		return fmt.Errorf("%s -> %s: %w", current, requested, model.ErrIllegalTransition)
	}

	return nil
}

// Next returns the only status reachable from current.
func Next(current model.RepairStatus) (model.RepairStatus, bool) {
	t, ok := transitions[current]
	return t.to, ok
}

func IsTerminal(s model.RepairStatus) bool {
	_, ok := transitions[s]
	return s.Valid() && !ok
}

// Apply moves r to requested and runs the entry side effects of the transition.
// r is left untouched when the transition is illegal.
func Apply(r *model.Repair, requested model.RepairStatus, now time.Time) error {
	if err := Check(r.Status, requested); err != nil {
		return err
	}

	t := transitions[r.Status]
	r.Status = requested
	r.UpdatedAt = now
	if t.onEnter != nil {
		t.onEnter(r, now)
	}

	return nil
}
