// Package usecase implements the business logic for the tasks feature.
package usecase

import "errors"

var (
	// ErrTaskNotFound is returned when a task does not exist for the
	// requesting owner. A task belonging to another user produces the same
	// error as a nonexistent one.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskAlreadyExists is returned when the owner already has a task with
	// the same title.
	ErrTaskAlreadyExists = errors.New("task already exists")

	// ErrEmptyTitle is returned when a title is empty after trimming whitespace.
	ErrEmptyTitle = errors.New("title must not be empty")
)
