// Package services holds the workflows behind the HTTP handlers.
package services

import (
	"fmt"

	"github.com/sinansouth/EnglishNet/internal/importer"
	"github.com/sinansouth/EnglishNet/internal/metrics"
	"github.com/sinansouth/EnglishNet/internal/models"
)

// EntityStore is the slice of the store the import workflow needs.
type EntityStore interface {
	LoadAll() (models.Snapshot, error)
	CreateClassroom(*models.Classroom) error
	CreateStudent(*models.Student) error
	UpdateStudent(*models.Student) error
	CreateExamResult(*models.ExamResult) error
	UpdateExamResult(*models.ExamResult) error
}

// ImportService loads a snapshot, runs one reconciler over the pasted text
// and applies the resulting mutations strictly in order. A failed write
// aborts the remainder but leaves earlier writes in place; there is no
// rollback, matching the row-at-a-time semantics of the paste flow.
type ImportService struct {
	store  EntityStore
	engine *importer.Engine
}

func NewImportService(store EntityStore) *ImportService {
	return &ImportService{store: store, engine: importer.NewEngine()}
}

func (s *ImportService) ImportRoster(text string) (importer.Summary, error) {
	return s.run("roster", func(snap models.Snapshot) ([]importer.Mutation, importer.Summary) {
		return s.engine.ReconcileRoster(text, snap)
	})
}

func (s *ImportService) ImportResults(text string) (importer.Summary, error) {
	return s.run("results", func(snap models.Snapshot) ([]importer.Mutation, importer.Summary) {
		return s.engine.ReconcileResults(text, snap)
	})
}

func (s *ImportService) ImportClassChanges(text string) (importer.Summary, error) {
	return s.run("class_changes", func(snap models.Snapshot) ([]importer.Mutation, importer.Summary) {
		return s.engine.ReconcileClassChanges(text, snap)
	})
}

func (s *ImportService) run(kind string, reconcile func(models.Snapshot) ([]importer.Mutation, importer.Summary)) (importer.Summary, error) {
	snap, err := s.store.LoadAll()
	if err != nil {
		metrics.ImportBatches.WithLabelValues(kind, "error").Inc()
		return importer.Summary{}, fmt.Errorf("loading snapshot: %w", err)
	}

	muts, sum := reconcile(snap)
	if err := s.apply(muts); err != nil {
		metrics.ImportBatches.WithLabelValues(kind, "error").Inc()
		return sum, err
	}

	observeRows(kind, sum)
	metrics.ImportBatches.WithLabelValues(kind, "ok").Inc()
	return sum, nil
}

func (s *ImportService) apply(muts []importer.Mutation) error {
	for i, m := range muts {
		var err error
		switch {
		case m.Classroom != nil && m.Op == importer.OpCreate:
			err = s.store.CreateClassroom(m.Classroom)
		case m.Student != nil && m.Op == importer.OpCreate:
			err = s.store.CreateStudent(m.Student)
		case m.Student != nil && m.Op == importer.OpUpdate:
			err = s.store.UpdateStudent(m.Student)
		case m.Result != nil && m.Op == importer.OpCreate:
			err = s.store.CreateExamResult(m.Result)
		case m.Result != nil && m.Op == importer.OpUpdate:
			err = s.store.UpdateExamResult(m.Result)
		default:
			err = fmt.Errorf("unsupported mutation %+v", m)
		}
		if err != nil {
			// earlier writes stay applied
			return fmt.Errorf("import aborted at write %d of %d: %w", i+1, len(muts), err)
		}
	}
	return nil
}

func observeRows(kind string, sum importer.Summary) {
	add := func(result string, n int) {
		if n > 0 {
			metrics.ImportRows.WithLabelValues(kind, result).Add(float64(n))
		}
	}
	add("added", sum.Added)
	add("updated", sum.Updated)
	add("skipped", sum.Skipped)
	add("auto_absent", sum.AutoAbsent)
	add("not_found", sum.NotFound)
}
