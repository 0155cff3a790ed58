package importer

import (
	"github.com/google/uuid"

	"github.com/sinansouth/EnglishNet/internal/models"
	"github.com/sinansouth/EnglishNet/internal/textnorm"
)

// studentKey caches the normalized forms a student can be matched by.
type studentKey struct {
	name     string
	surname  string
	full     string
	reversed string
}

// resultKey identifies the one row a (student, exam) pair may have.
type resultKey struct {
	studentID uuid.UUID
	examID    uuid.UUID
}

// batch is the engine's working copy of the snapshot. Reconcilers update it
// alongside every emitted mutation so later lines in the same paste observe
// earlier ones. The caller's snapshot is never modified.
type batch struct {
	classrooms []models.Classroom
	students   []models.Student
	exams      []models.ExamDefinition
	results    []models.ExamResult

	classroomKeys []string
	studentKeys   []studentKey
	examKeys      []string
	resultIdx     map[resultKey]int
}

func newBatch(snap models.Snapshot) *batch {
	b := &batch{
		classrooms: append([]models.Classroom(nil), snap.Classrooms...),
		students:   append([]models.Student(nil), snap.Students...),
		exams:      append([]models.ExamDefinition(nil), snap.ExamDefinitions...),
		results:    append([]models.ExamResult(nil), snap.ExamResults...),
		resultIdx:  make(map[resultKey]int, len(snap.ExamResults)),
	}
	b.classroomKeys = make([]string, len(b.classrooms))
	for i, c := range b.classrooms {
		b.classroomKeys[i] = textnorm.Normalize(c.Name)
	}
	b.studentKeys = make([]studentKey, len(b.students))
	for i, s := range b.students {
		b.studentKeys[i] = makeStudentKey(s)
	}
	b.examKeys = make([]string, len(b.exams))
	for i, ex := range b.exams {
		b.examKeys[i] = textnorm.Normalize(ex.Name)
	}
	for i, r := range b.results {
		if r.ExamID == nil {
			continue
		}
		k := resultKey{r.StudentID, *r.ExamID}
		if _, dup := b.resultIdx[k]; !dup {
			// keep the first row when concurrent writers left duplicates
			b.resultIdx[k] = i
		}
	}
	return b
}

func makeStudentKey(s models.Student) studentKey {
	return studentKey{
		name:     textnorm.Normalize(s.Name),
		surname:  textnorm.Normalize(s.Surname),
		full:     textnorm.Normalize(s.Name + " " + s.Surname),
		reversed: textnorm.Normalize(s.Surname + " " + s.Name),
	}
}

func (b *batch) addClassroom(c models.Classroom) int {
	b.classrooms = append(b.classrooms, c)
	b.classroomKeys = append(b.classroomKeys, textnorm.Normalize(c.Name))
	return len(b.classrooms) - 1
}

func (b *batch) addStudent(s models.Student) int {
	b.students = append(b.students, s)
	b.studentKeys = append(b.studentKeys, makeStudentKey(s))
	return len(b.students) - 1
}

func (b *batch) addResult(r models.ExamResult) int {
	b.results = append(b.results, r)
	if r.ExamID != nil {
		b.resultIdx[resultKey{r.StudentID, *r.ExamID}] = len(b.results) - 1
	}
	return len(b.results) - 1
}

// classroomIndex returns the first classroom whose normalized name equals
// key, or -1.
func (b *batch) classroomIndex(key string) int {
	for i, k := range b.classroomKeys {
		if k == key {
			return i
		}
	}
	return -1
}

// studentIndexByPair matches on the (name, surname) identity used by roster
// and class-change rows. First match wins.
func (b *batch) studentIndexByPair(name, surname string) int {
	for i, k := range b.studentKeys {
		if k.name == name && k.surname == surname {
			return i
		}
	}
	return -1
}

// studentIndexByFullName matches a normalized "name surname" string in
// either word order. First match wins; result rows do not distinguish which
// of several same-named students was meant.
func (b *batch) studentIndexByFullName(full string) int {
	if full == "" {
		return -1
	}
	for i, k := range b.studentKeys {
		if k.full == full || k.reversed == full {
			return i
		}
	}
	return -1
}

// examIndexByName matches an exam definition by normalized name equality.
func (b *batch) examIndexByName(key string) int {
	for i, k := range b.examKeys {
		if k == key {
			return i
		}
	}
	return -1
}

// resultIndex returns the working-copy row for a (student, exam) pair, or -1.
func (b *batch) resultIndex(studentID, examID uuid.UUID) int {
	if i, ok := b.resultIdx[resultKey{studentID, examID}]; ok {
		return i
	}
	return -1
}
