package schema

import "time"

// RunStatus is the lifecycle state of a collection run
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// CollectionRun represents the collection_runs table - an audit row per
// collector execution, whether scheduled or manually triggered
type CollectionRun struct {
	// ID is a ULID, sortable by start time
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Job is the collector name (e.g. "portfolio", "genres", "partner_financials")
	Job string `gorm:"column:job;not null;type:text;index:idx_collection_runs_job_started,priority:1"`
	// StartedAt and FinishedAt bound the run; FinishedAt is nil while running
	StartedAt  time.Time  `gorm:"column:started_at;not null;index:idx_collection_runs_job_started,priority:2,sort:desc"`
	FinishedAt *time.Time `gorm:"column:finished_at"`
	// Status tracks the run lifecycle
	Status RunStatus `gorm:"column:status;not null;type:text;default:'running'"`
	// ItemsProcessed counts the units of work the collector reported
	ItemsProcessed int `gorm:"column:items_processed;not null;default:0"`
	// Error holds the failure message when Status is failed
	Error string `gorm:"column:error;type:text"`
}

// TableName specifies the table name for the CollectionRun model
func (CollectionRun) TableName() string {
	return "collection_runs"
}
