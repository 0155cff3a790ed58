package importer

import (
	"github.com/sinansouth/EnglishNet/internal/models"
	"github.com/sinansouth/EnglishNet/internal/textnorm"
)

// ReconcileClassChanges moves already-enrolled students between classrooms.
// Classrooms are resolved or created exactly as in roster import, but
// unknown students are only counted, never created, so a typo cannot mint a
// phantom student. Rows whose student already sits in the target classroom
// are no-ops.
func (e *Engine) ReconcileClassChanges(text string, snap models.Snapshot) ([]Mutation, Summary) {
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
		if si < 0 {
			sum.NotFound++
			continue
		}
		if b.students[si].ClassroomID == classID {
			continue
		}
		b.students[si].ClassroomID = classID
		moved := b.students[si]
		muts = append(muts, Mutation{Op: OpUpdate, Student: &moved})
		sum.Updated++
	}
	return muts, sum
}
