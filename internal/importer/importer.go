// Package importer is the batch-import engine behind the paste boxes on the
// dashboard. Each reconciler takes raw spreadsheet text plus a snapshot of
// the current entities and returns the writes needed to absorb it, without
// touching the database itself. The caller applies the mutations in order;
// in-batch visibility (a classroom created by line 3, matched by line 7)
// comes from the engine's own working copy of the snapshot.
package importer

import (
	"github.com/google/uuid"

	"github.com/sinansouth/EnglishNet/internal/models"
)

// Op distinguishes mutation kinds.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
)

// Mutation is one pending write, in application order. Exactly one of the
// entity pointers is set, and each points at a private copy rather than into
// the caller's snapshot.
type Mutation struct {
	Op        Op
	Classroom *models.Classroom
	Student   *models.Student
	Result    *models.ExamResult
}

// Summary reports what one reconciliation pass decided. The same shape
// serves all three importers; fields that do not apply stay zero and drop
// out of the JSON.
type Summary struct {
	Added           int      `json:"added"`
	Updated         int      `json:"updated"`
	Skipped         int      `json:"skipped"`
	AutoAbsent      int      `json:"autoAbsent,omitempty"`
	NotFound        int      `json:"notFound,omitempty"`
	UnresolvedExams []string `json:"unresolvedExams,omitempty"`
	NewClassrooms   []string `json:"newClassrooms,omitempty"`
}

// Engine reconciles pasted text against entity snapshots. The zero value is
// not usable; construct with NewEngine.
type Engine struct {
	// NewID mints ids for entities created mid-batch, so rows later in the
	// same paste can reference them before anything is persisted. Tests
	// swap it for a deterministic sequence.
	NewID func() uuid.UUID
}

func NewEngine() *Engine {
	return &Engine{NewID: uuid.New}
}
