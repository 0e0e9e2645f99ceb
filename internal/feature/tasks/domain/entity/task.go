// Package entity defines the domain entities for the tasks feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authentity "task_backend/internal/feature/auth/domain/entity"
)

// Status enumerates the lifecycle states of a task.
type Status string

const (
	// StatusPending is the initial state of every task.
	StatusPending Status = "PENDING"

	// StatusCompleted marks a finished task.
	StatusCompleted Status = "COMPLETED"
)

// Task represents a unit of work owned by exactly one user.
// The composite unique index on (user_id, title) guarantees a user never has
// two tasks with the same title, even under concurrent creates.
type Task struct {
	// ID is the unique identifier for the task, assigned at creation.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	// Title is the task headline. Non-empty after trimming, unique per owner.
	Title string `gorm:"size:255;not null;uniqueIndex:idx_tasks_owner_title"`

	// Description is optional free-form detail.
	Description string `gorm:"size:2000"`

	// Status is the current lifecycle state.
	Status Status `gorm:"size:16;not null;default:PENDING"`

	// CreatedAt is the timestamp when the task was created.
	CreatedAt time.Time

	// UserID is the owning user's identifier.
	UserID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_tasks_owner_title"`

	// Owner backs the foreign key so that deleting a user removes their
	// tasks at the storage layer. No task may outlive its owner.
	Owner authentity.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate assigns a random UUID and the default status when unset.
func (t *Task) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
	return nil
}
