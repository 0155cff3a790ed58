package importer

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/sinansouth/EnglishNet/internal/models"
)

// testEngine mints sequential ids so failures print something readable.
func testEngine() *Engine {
	var n int
	return &Engine{NewID: func() uuid.UUID {
		n++
		return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
	}}
}

// seedID builds ids for pre-existing entities, distinct from engine-minted ones.
func seedID(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("11111111-0000-0000-0000-%012d", n))
}

func mkClassroom(id int, name string) models.Classroom {
	return models.Classroom{BaseModel: models.BaseModel{ID: seedID(id)}, Name: name}
}

func mkStudent(id int, name, surname string, classroomID uuid.UUID) models.Student {
	return models.Student{
		BaseModel:     models.BaseModel{ID: seedID(id)},
		Name:          name,
		Surname:       surname,
		ClassroomID:   classroomID,
		TargetCorrect: models.DefaultTargetCorrect,
	}
}

func mkExam(id int, name, date string) models.ExamDefinition {
	return models.ExamDefinition{BaseModel: models.BaseModel{ID: seedID(id)}, Name: name, Date: date}
}

// applyAll plays mutations back onto a snapshot the way the service does,
// so tests can re-reconcile against the post-import state.
func applyAll(snap models.Snapshot, muts []Mutation) models.Snapshot {
	for _, m := range muts {
		switch {
		case m.Classroom != nil:
			if m.Op == OpCreate {
				snap.Classrooms = append(snap.Classrooms, *m.Classroom)
			} else {
				for i := range snap.Classrooms {
					if snap.Classrooms[i].ID == m.Classroom.ID {
						snap.Classrooms[i] = *m.Classroom
					}
				}
			}
		case m.Student != nil:
			if m.Op == OpCreate {
				snap.Students = append(snap.Students, *m.Student)
			} else {
				for i := range snap.Students {
					if snap.Students[i].ID == m.Student.ID {
						snap.Students[i] = *m.Student
					}
				}
			}
		case m.Result != nil:
			if m.Op == OpCreate {
				snap.ExamResults = append(snap.ExamResults, *m.Result)
			} else {
				for i := range snap.ExamResults {
					if snap.ExamResults[i].ID == m.Result.ID {
						snap.ExamResults[i] = *m.Result
					}
				}
			}
		}
	}
	return snap
}
