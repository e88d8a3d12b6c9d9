package model

import (
	"time"

	"github.com/google/uuid"
)

// Run statuses.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// Per-entity actions recorded for each processed order.
const (
	ActionCreated = "created"
	ActionReused  = "reused"
	ActionSkipped = "skipped"
	ActionFailed  = "failed"
)

// SyncRun records one execution of the order sync batch.
type SyncRun struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Status          string     `gorm:"size:20;not null" json:"status"`
	StartedAt       time.Time  `gorm:"not null" json:"started_at"`
	FinishedAt      *time.Time `json:"finished_at,omitempty"`
	OrdersAttempted int        `gorm:"not null;default:0" json:"orders_attempted"`
	OrdersFailed    int        `gorm:"not null;default:0" json:"orders_failed"`
	ContactsCreated int        `gorm:"not null;default:0" json:"contacts_created"`
	ContactsReused  int        `gorm:"not null;default:0" json:"contacts_reused"`
	DealsCreated    int        `gorm:"not null;default:0" json:"deals_created"`
	DealsSkipped    int        `gorm:"not null;default:0" json:"deals_skipped"`
	ErrorMessage    string     `json:"error_message,omitempty"`

	// Relations
	Results []OrderSyncResult `gorm:"foreignKey:SyncRunID" json:"results,omitempty"`
}

// TableName specifies the table name for GORM
func (SyncRun) TableName() string {
	return "sync_runs"
}

// OrderSyncResult records the outcome of one order within a run.
type OrderSyncResult struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SyncRunID     uuid.UUID `gorm:"type:uuid;not null;index" json:"sync_run_id"`
	OrderID       int64     `gorm:"not null" json:"order_id"`
	ContactAction string    `gorm:"size:20" json:"contact_action"`
	ContactID     string    `gorm:"size:100" json:"contact_id,omitempty"`
	DealAction    string    `gorm:"size:20" json:"deal_action"`
	DealName      string    `gorm:"size:500" json:"deal_name,omitempty"`
	ErrorMessage  string    `json:"error_message,omitempty"`
	CreatedAt     time.Time `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for GORM
func (OrderSyncResult) TableName() string {
	return "order_sync_results"
}

// Failed reports whether the order's processing ended in an error.
func (r *OrderSyncResult) Failed() bool {
	return r.ErrorMessage != ""
}
