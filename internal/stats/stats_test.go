package stats

import (
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/sinansouth/EnglishNet/internal/models"
)

func id(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("22222222-0000-0000-0000-%012d", n))
}

func attended(student, exam int, name, date string, correct, incorrect int, net float64) models.ExamResult {
	examID := id(exam)
	return models.ExamResult{
		BaseModel: models.BaseModel{ID: uuid.New()},
		StudentID: id(student),
		ExamID:    &examID,
		ExamName:  name,
		Date:      date,
		Correct:   correct,
		Incorrect: incorrect,
		Empty:     10 - correct - incorrect,
		Net:       net,
		Status:    models.StatusAttended,
	}
}

func missing(student, exam int, name, date string) models.ExamResult {
	examID := id(exam)
	return models.ExamResult{
		BaseModel: models.BaseModel{ID: uuid.New()},
		StudentID: id(student),
		ExamID:    &examID,
		ExamName:  name,
		Date:      date,
		Status:    models.StatusMissing,
	}
}

func fixtureSnapshot() models.Snapshot {
	return models.Snapshot{
		Classrooms: []models.Classroom{
			{BaseModel: models.BaseModel{ID: id(1)}, Name: "8/A"},
			{BaseModel: models.BaseModel{ID: id(2)}, Name: "8/B"},
		},
		Students: []models.Student{
			{BaseModel: models.BaseModel{ID: id(10)}, Name: "Ahmet", Surname: "Yılmaz", ClassroomID: id(1), TargetCorrect: 6},
			{BaseModel: models.BaseModel{ID: id(11)}, Name: "Ayşe", Surname: "Demir", ClassroomID: id(2), TargetCorrect: 6},
			{BaseModel: models.BaseModel{ID: id(12)}, Name: "Mehmet", Surname: "Can", ClassroomID: id(1), TargetCorrect: 6},
		},
		ExamDefinitions: []models.ExamDefinition{
			{BaseModel: models.BaseModel{ID: id(20)}, Name: "LGS Deneme 1", Date: "2026-03-14"},
			{BaseModel: models.BaseModel{ID: id(21)}, Name: "LGS Deneme 2", Date: "2026-04-18"},
			{BaseModel: models.BaseModel{ID: id(22)}, Name: "LGS Deneme 3", Date: "2026-05-09"},
		},
	}
}

func TestForStudentExcludesMissing(t *testing.T) {
	snap := fixtureSnapshot()
	snap.ExamResults = []models.ExamResult{
		attended(10, 21, "LGS Deneme 2", "2026-04-18", 10, 0, 10),
		attended(10, 20, "LGS Deneme 1", "2026-03-14", 8, 2, 7.34),
		missing(10, 22, "LGS Deneme 3", "2026-05-09"),
	}

	rep, ok := ForStudent(snap, id(10))
	if !ok {
		t.Fatal("student not found")
	}
	if rep.Attended != 2 || rep.Missed != 1 {
		t.Fatalf("attended/missed = %d/%d, expected 2/1", rep.Attended, rep.Missed)
	}
	if rep.AvgNet != 8.67 {
		t.Errorf("avg net = %v, expected 8.67 (MISSING row excluded)", rep.AvgNet)
	}
	if rep.AvgCorrect != 9 {
		t.Errorf("avg correct = %v, expected 9", rep.AvgCorrect)
	}
	if rep.BestNet != 10 {
		t.Errorf("best net = %v, expected 10", rep.BestNet)
	}
	if rep.TargetHits != 2 {
		t.Errorf("target hits = %d, expected 2 with target 6", rep.TargetHits)
	}
	if len(rep.Trend) != 3 {
		t.Fatalf("trend has %d points, expected every row", len(rep.Trend))
	}
	if rep.Trend[0].Date != "2026-03-14" {
		t.Errorf("trend starts at %s, expected chronological order", rep.Trend[0].Date)
	}
	if rep.ClassroomName != "8/A" {
		t.Errorf("classroom name = %q, expected 8/A", rep.ClassroomName)
	}
}

func TestForStudentUnknown(t *testing.T) {
	if _, ok := ForStudent(fixtureSnapshot(), uuid.New()); ok {
		t.Error("expected ok=false for an unknown student")
	}
}

func TestForExamBreakdown(t *testing.T) {
	snap := fixtureSnapshot()
	snap.ExamResults = []models.ExamResult{
		attended(10, 20, "LGS Deneme 1", "2026-03-14", 8, 2, 7.34),
		attended(11, 20, "LGS Deneme 1", "2026-03-14", 10, 0, 10),
		missing(12, 20, "LGS Deneme 1", "2026-03-14"),
	}

	rep, ok := ForExam(snap, id(20))
	if !ok {
		t.Fatal("exam not found")
	}
	if rep.Attended != 2 || rep.Missed != 1 {
		t.Fatalf("attended/missed = %d/%d, expected 2/1", rep.Attended, rep.Missed)
	}
	if rep.AvgNet != 8.67 || rep.TopNet != 10 {
		t.Errorf("avg/top net = %v/%v, expected 8.67/10", rep.AvgNet, rep.TopNet)
	}
	if len(rep.Classrooms) != 2 {
		t.Fatalf("classroom breakdown has %d entries, expected 2", len(rep.Classrooms))
	}
	if rep.Classrooms[0].Name != "8/B" || rep.Classrooms[0].AvgNet != 10 {
		t.Errorf("top classroom = %+v, expected 8/B at 10", rep.Classrooms[0])
	}
	if rep.Classrooms[1].Name != "8/A" || rep.Classrooms[1].Attended != 1 {
		t.Errorf("second classroom = %+v, expected 8/A with one attendee", rep.Classrooms[1])
	}
}

func TestRankings(t *testing.T) {
	snap := fixtureSnapshot()
	snap.ExamResults = []models.ExamResult{
		attended(10, 20, "LGS Deneme 1", "2026-03-14", 8, 2, 7.34),
		attended(11, 20, "LGS Deneme 1", "2026-03-14", 9, 1, 8.67),
		missing(12, 20, "LGS Deneme 1", "2026-03-14"),
	}

	entries := Rankings(snap)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, expected students who never attended to be left out", len(entries))
	}
	if entries[0].StudentID != id(11) || entries[0].Rank != 1 {
		t.Errorf("first entry = %+v, expected Ayşe ranked 1", entries[0])
	}
	if entries[1].StudentID != id(10) || entries[1].Rank != 2 {
		t.Errorf("second entry = %+v, expected Ahmet ranked 2", entries[1])
	}
}

func TestBuildOverview(t *testing.T) {
	snap := fixtureSnapshot()
	snap.ExamResults = []models.ExamResult{
		attended(10, 20, "LGS Deneme 1", "2026-03-14", 8, 2, 7.34),
		attended(11, 20, "LGS Deneme 1", "2026-03-14", 10, 0, 10),
		missing(12, 20, "LGS Deneme 1", "2026-03-14"),
	}

	ov := BuildOverview(snap)
	if ov.ClassroomCount != 2 || ov.StudentCount != 3 || ov.ExamCount != 3 || ov.ResultCount != 3 {
		t.Errorf("counts = %+v, expected 2/3/3/3", ov)
	}
	if ov.AvgNet != 8.67 {
		t.Errorf("overall avg net = %v, expected MISSING rows excluded", ov.AvgNet)
	}
	if len(ov.Leaderboard) != 2 || ov.Leaderboard[0].Name != "8/B" {
		t.Errorf("leaderboard = %+v, expected 8/B on top", ov.Leaderboard)
	}
}
