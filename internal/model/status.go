package model

type RepairStatus string

const (
	StatusPending    RepairStatus = "pending"
	StatusInProgress RepairStatus = "in_progress"
	StatusCompleted  RepairStatus = "completed"
	StatusArchived   RepairStatus = "archived"
)

var RepairStatuses = []RepairStatus{
	StatusPending,
	StatusInProgress,
	StatusCompleted,
	StatusArchived,
}

func (s RepairStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusArchived:
		return true
	default:
		return false
	}
}

func (s RepairStatus) String() string { return string(s) }
