package importer

import (
	"github.com/sinansouth/EnglishNet/internal/models"
	"github.com/sinansouth/EnglishNet/internal/textnorm"
)

// ReconcileRoster absorbs pasted "Name Surname ClassName" lines. Classrooms
// are resolved by normalized name and created when missing; students are
// matched on the normalized (name, surname) pair, created on first sight and
// moved when their classroom changed. Re-pasting the same roster is a no-op.
func (e *Engine) ReconcileRoster(text string, snap models.Snapshot) ([]Mutation, Summary) {
	b := newBatch(snap)
	var muts []Mutation
	var sum Summary

	for _, line := range splitLines(text) {
		row, ok := parseNameRow(line)
		if !ok {
			sum.Skipped++
			continue
		}

		ci := e.ensureClassroom(b, row.Class, &muts, &sum)
		classID := b.classrooms[ci].ID

		si := b.studentIndexByPair(textnorm.Normalize(row.Name), textnorm.Normalize(row.Surname))
		switch {
		case si < 0:
			st := models.Student{
				BaseModel:     models.BaseModel{ID: e.NewID()},
				Name:          row.Name,
				Surname:       row.Surname,
				ClassroomID:   classID,
				TargetCorrect: models.DefaultTargetCorrect,
			}
			b.addStudent(st)
			muts = append(muts, Mutation{Op: OpCreate, Student: &st})
			sum.Added++
		case b.students[si].ClassroomID != classID:
			b.students[si].ClassroomID = classID
			moved := b.students[si]
			muts = append(muts, Mutation{Op: OpUpdate, Student: &moved})
			sum.Updated++
		default:
			sum.Skipped++
		}
	}
	return muts, sum
}

// ensureClassroom resolves a classroom label against the working copy,
// creating a classroom named exactly as typed when nothing matches. Returns
// the working-copy index.
func (e *Engine) ensureClassroom(b *batch, label string, muts *[]Mutation, sum *Summary) int {
	if ci := b.classroomIndex(textnorm.Normalize(label)); ci >= 0 {
		return ci
	}
	c := models.Classroom{
		BaseModel: models.BaseModel{ID: e.NewID()},
		Name:      label,
	}
	ci := b.addClassroom(c)
	*muts = append(*muts, Mutation{Op: OpCreate, Classroom: &c})
	sum.NewClassrooms = append(sum.NewClassrooms, c.Name)
	return ci
}
