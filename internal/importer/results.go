package importer

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/sinansouth/EnglishNet/internal/models"
	"github.com/sinansouth/EnglishNet/internal/scoring"
	"github.com/sinansouth/EnglishNet/internal/textnorm"
)

// prefixExam is an exam definition prepared for merged-field matching.
type prefixExam struct {
	norm string
	idx  int
}

// ReconcileResults absorbs pasted score lines. Exam definitions are matched
// strictly and never created here; rows naming an unknown exam are skipped
// and their name collected for the operator. Students are matched by full
// name in either word order. Once all rows are in, every student of a
// classroom that took part in an exam but has no row for it gets a MISSING
// placeholder so absences show up without hand entry.
func (e *Engine) ReconcileResults(text string, snap models.Snapshot) ([]Mutation, Summary) {
	b := newBatch(snap)
	var muts []Mutation
	var sum Summary

	// longest names first, so "LGS Deneme 10" beats "LGS Deneme 1" when a
	// merged field starts with both
	prefixes := make([]prefixExam, len(b.exams))
	for i, key := range b.examKeys {
		prefixes[i] = prefixExam{norm: key, idx: i}
	}
	sort.SliceStable(prefixes, func(i, j int) bool {
		return len(prefixes[i].norm) > len(prefixes[j].norm)
	})

	unresolvedSeen := make(map[string]bool)
	recordUnresolved := func(name string) {
		sum.Skipped++
		if !unresolvedSeen[name] {
			unresolvedSeen[name] = true
			sum.UnresolvedExams = append(sum.UnresolvedExams, name)
		}
	}

	// involved classrooms per exam, touched exams in first-seen order
	involved := make(map[uuid.UUID]map[uuid.UUID]bool)
	var touched []int

	for _, line := range splitLines(text) {
		row, ok := parseResultRow(line)
		if !ok {
			sum.Skipped++
			continue
		}

		correct, errC := strconv.Atoi(row.Correct)
		incorrect, errI := strconv.Atoi(row.Incorrect)
		if errC != nil || errI != nil || correct < 0 || incorrect < 0 ||
			correct+incorrect > scoring.QuestionsPerExam {
			sum.Skipped++
			continue
		}

		var ei int
		var studentName string
		if row.Merged != "" {
			var rest string
			ei, rest = matchMergedExam(prefixes, row.Merged)
			if ei < 0 {
				recordUnresolved(row.Merged)
				continue
			}
			studentName = rest
		} else {
			ei = b.examIndexByName(textnorm.Normalize(row.Exam))
			if ei < 0 {
				recordUnresolved(row.Exam)
				continue
			}
			studentName = row.Student
		}
		exam := b.exams[ei]

		si := b.studentIndexByFullName(textnorm.Normalize(studentName))
		if si < 0 {
			sum.Skipped++
			continue
		}
		student := b.students[si]

		if involved[exam.ID] == nil {
			involved[exam.ID] = make(map[uuid.UUID]bool)
			touched = append(touched, ei)
		}
		involved[exam.ID][student.ClassroomID] = true

		if ri := b.resultIndex(student.ID, exam.ID); ri >= 0 {
			r := &b.results[ri]
			r.ExamName = exam.Name
			r.Date = exam.Date
			r.Correct = correct
			r.Incorrect = incorrect
			r.Empty = scoring.Empty(correct, incorrect)
			r.Net = scoring.Net(correct, incorrect)
			r.Status = models.StatusAttended
			updated := *r
			muts = append(muts, Mutation{Op: OpUpdate, Result: &updated})
			sum.Updated++
		} else {
			examID := exam.ID
			r := models.ExamResult{
				BaseModel: models.BaseModel{ID: e.NewID()},
				StudentID: student.ID,
				ExamID:    &examID,
				ExamName:  exam.Name,
				Date:      exam.Date,
				Correct:   correct,
				Incorrect: incorrect,
				Empty:     scoring.Empty(correct, incorrect),
				Net:       scoring.Net(correct, incorrect),
				Status:    models.StatusAttended,
			}
			b.addResult(r)
			muts = append(muts, Mutation{Op: OpCreate, Result: &r})
			sum.Added++
		}
	}

	// back-fill MISSING rows for classmates the paste never mentioned
	for _, ei := range touched {
		exam := b.exams[ei]
		classes := involved[exam.ID]
		for si := range b.students {
			student := b.students[si]
			if !classes[student.ClassroomID] {
				continue
			}
			if b.resultIndex(student.ID, exam.ID) >= 0 {
				continue
			}
			examID := exam.ID
			r := models.ExamResult{
				BaseModel: models.BaseModel{ID: e.NewID()},
				StudentID: student.ID,
				ExamID:    &examID,
				ExamName:  exam.Name,
				Date:      exam.Date,
				Status:    models.StatusMissing,
			}
			b.addResult(r)
			muts = append(muts, Mutation{Op: OpCreate, Result: &r})
			sum.AutoAbsent++
		}
	}

	return muts, sum
}

// matchMergedExam finds the exam whose normalized name is the longest prefix
// of the merged exam+student field and returns its index plus the leftover
// student-name part. When two definitions of equal name length both match,
// the field stays unresolved rather than guessing between them.
func matchMergedExam(prefixes []prefixExam, merged string) (int, string) {
	q := textnorm.Normalize(merged)
	for i := 0; i < len(prefixes); i++ {
		name := prefixes[i].norm
		if name == "" || !strings.HasPrefix(q, name) {
			continue
		}
		for j := i + 1; j < len(prefixes) && len(prefixes[j].norm) == len(name); j++ {
			if prefixes[j].idx != prefixes[i].idx && strings.HasPrefix(q, prefixes[j].norm) {
				return -1, ""
			}
		}
		return prefixes[i].idx, strings.TrimSpace(strings.TrimPrefix(q, name))
	}
	return -1, ""
}
