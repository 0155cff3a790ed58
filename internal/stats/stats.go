// Package stats derives the dashboard numbers from an entity snapshot.
// Rows with status MISSING count as absences and stay out of every average.
package stats

import (
	"sort"

	"github.com/google/uuid"

	"github.com/sinansouth/EnglishNet/internal/models"
	"github.com/sinansouth/EnglishNet/internal/scoring"
)

// TrendPoint is one exam on a student's timeline.
type TrendPoint struct {
	ExamID    *uuid.UUID          `json:"exam_id"`
	ExamName  string              `json:"exam_name"`
	Date      string              `json:"date"`
	Correct   int                 `json:"correct"`
	Incorrect int                 `json:"incorrect"`
	Empty     int                 `json:"empty"`
	Net       float64             `json:"net"`
	Status    models.ResultStatus `json:"status"`
}

// StudentReport aggregates one student's results.
type StudentReport struct {
	StudentID     uuid.UUID    `json:"student_id"`
	Name          string       `json:"name"`
	Surname       string       `json:"surname"`
	ClassroomID   uuid.UUID    `json:"classroom_id"`
	ClassroomName string       `json:"classroom_name,omitempty"`
	TargetCorrect int          `json:"target_correct"`
	Attended      int          `json:"attended"`
	Missed        int          `json:"missed"`
	AvgNet        float64      `json:"avg_net"`
	AvgCorrect    float64      `json:"avg_correct"`
	BestNet       float64      `json:"best_net"`
	TargetHits    int          `json:"target_hits"`
	Trend         []TrendPoint `json:"trend"`
}

// ClassroomAverage is one classroom's share of an exam or of the overall
// leaderboard.
type ClassroomAverage struct {
	ClassroomID uuid.UUID `json:"classroom_id"`
	Name        string    `json:"name"`
	Attended    int       `json:"attended"`
	AvgNet      float64   `json:"avg_net"`
}

// ExamReport aggregates one exam across all participants.
type ExamReport struct {
	ExamID       uuid.UUID          `json:"exam_id"`
	Name         string             `json:"name"`
	Date         string             `json:"date"`
	Attended     int                `json:"attended"`
	Missed       int                `json:"missed"`
	AvgNet       float64            `json:"avg_net"`
	AvgCorrect   float64            `json:"avg_correct"`
	AvgIncorrect float64            `json:"avg_incorrect"`
	TopNet       float64            `json:"top_net"`
	Classrooms   []ClassroomAverage `json:"classrooms"`
}

// RankingEntry is one row of the center-wide leaderboard.
type RankingEntry struct {
	Rank          int       `json:"rank"`
	StudentID     uuid.UUID `json:"student_id"`
	Name          string    `json:"name"`
	Surname       string    `json:"surname"`
	ClassroomName string    `json:"classroom_name,omitempty"`
	Attended      int       `json:"attended"`
	AvgNet        float64   `json:"avg_net"`
}

// Overview is the landing-page card set.
type Overview struct {
	ClassroomCount int                `json:"classroom_count"`
	StudentCount   int                `json:"student_count"`
	ExamCount      int                `json:"exam_count"`
	ResultCount    int                `json:"result_count"`
	AvgNet         float64            `json:"avg_net"`
	Leaderboard    []ClassroomAverage `json:"leaderboard"`
}

func classroomNames(snap models.Snapshot) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(snap.Classrooms))
	for _, c := range snap.Classrooms {
		names[c.ID] = c.Name
	}
	return names
}

func round2Avg(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return scoring.Round2(sum / float64(n))
}

// ForStudent builds the per-student report. The second return value is false
// when the student does not exist.
func ForStudent(snap models.Snapshot, studentID uuid.UUID) (StudentReport, bool) {
	var student *models.Student
	for i := range snap.Students {
		if snap.Students[i].ID == studentID {
			student = &snap.Students[i]
			break
		}
	}
	if student == nil {
		return StudentReport{}, false
	}

	rep := StudentReport{
		StudentID:     student.ID,
		Name:          student.Name,
		Surname:       student.Surname,
		ClassroomID:   student.ClassroomID,
		ClassroomName: classroomNames(snap)[student.ClassroomID],
		TargetCorrect: student.TargetCorrect,
	}

	var netSum, correctSum float64
	for _, r := range snap.ExamResults {
		if r.StudentID != studentID {
			continue
		}
		rep.Trend = append(rep.Trend, TrendPoint{
			ExamID:    r.ExamID,
			ExamName:  r.ExamName,
			Date:      r.Date,
			Correct:   r.Correct,
			Incorrect: r.Incorrect,
			Empty:     r.Empty,
			Net:       r.Net,
			Status:    r.Status,
		})
		if r.Status == models.StatusMissing {
			rep.Missed++
			continue
		}
		rep.Attended++
		netSum += r.Net
		correctSum += float64(r.Correct)
		if rep.Attended == 1 || r.Net > rep.BestNet {
			rep.BestNet = r.Net
		}
		if r.Correct >= student.TargetCorrect {
			rep.TargetHits++
		}
	}
	rep.AvgNet = round2Avg(netSum, rep.Attended)
	rep.AvgCorrect = round2Avg(correctSum, rep.Attended)

	// ISO dates sort lexicographically
	sort.SliceStable(rep.Trend, func(i, j int) bool { return rep.Trend[i].Date < rep.Trend[j].Date })
	return rep, true
}

// ForExam builds the per-exam report with a per-classroom breakdown. The
// second return value is false when the exam does not exist.
func ForExam(snap models.Snapshot, examID uuid.UUID) (ExamReport, bool) {
	var exam *models.ExamDefinition
	for i := range snap.ExamDefinitions {
		if snap.ExamDefinitions[i].ID == examID {
			exam = &snap.ExamDefinitions[i]
			break
		}
	}
	if exam == nil {
		return ExamReport{}, false
	}

	rep := ExamReport{ExamID: exam.ID, Name: exam.Name, Date: exam.Date}

	classOf := make(map[uuid.UUID]uuid.UUID, len(snap.Students))
	for _, st := range snap.Students {
		classOf[st.ID] = st.ClassroomID
	}
	names := classroomNames(snap)

	var netSum, correctSum, incorrectSum float64
	perClass := make(map[uuid.UUID]*ClassroomAverage)
	classSums := make(map[uuid.UUID]float64)

	for _, r := range snap.ExamResults {
		if r.ExamID == nil || *r.ExamID != examID {
			continue
		}
		if r.Status == models.StatusMissing {
			rep.Missed++
			continue
		}
		rep.Attended++
		netSum += r.Net
		correctSum += float64(r.Correct)
		incorrectSum += float64(r.Incorrect)
		if rep.Attended == 1 || r.Net > rep.TopNet {
			rep.TopNet = r.Net
		}

		classID, ok := classOf[r.StudentID]
		if !ok {
			continue // row left behind by a deleted student
		}
		agg := perClass[classID]
		if agg == nil {
			agg = &ClassroomAverage{ClassroomID: classID, Name: names[classID]}
			perClass[classID] = agg
		}
		agg.Attended++
		classSums[classID] += r.Net
	}

	rep.AvgNet = round2Avg(netSum, rep.Attended)
	rep.AvgCorrect = round2Avg(correctSum, rep.Attended)
	rep.AvgIncorrect = round2Avg(incorrectSum, rep.Attended)

	for id, agg := range perClass {
		agg.AvgNet = round2Avg(classSums[id], agg.Attended)
		rep.Classrooms = append(rep.Classrooms, *agg)
	}
	sortClassroomAverages(rep.Classrooms)

	return rep, true
}

func sortClassroomAverages(list []ClassroomAverage) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].AvgNet != list[j].AvgNet {
			return list[i].AvgNet > list[j].AvgNet
		}
		return list[i].Name < list[j].Name
	})
}

// Rankings orders students by average net over their attended exams.
// Students who never attended one stay off the board.
func Rankings(snap models.Snapshot) []RankingEntry {
	type acc struct {
		attended int
		netSum   float64
	}
	byStudent := make(map[uuid.UUID]*acc)
	for _, r := range snap.ExamResults {
		if r.Status == models.StatusMissing {
			continue
		}
		a := byStudent[r.StudentID]
		if a == nil {
			a = &acc{}
			byStudent[r.StudentID] = a
		}
		a.attended++
		a.netSum += r.Net
	}

	names := classroomNames(snap)
	entries := make([]RankingEntry, 0, len(byStudent))
	for _, st := range snap.Students {
		a := byStudent[st.ID]
		if a == nil {
			continue
		}
		entries = append(entries, RankingEntry{
			StudentID:     st.ID,
			Name:          st.Name,
			Surname:       st.Surname,
			ClassroomName: names[st.ClassroomID],
			Attended:      a.attended,
			AvgNet:        round2Avg(a.netSum, a.attended),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].AvgNet != entries[j].AvgNet {
			return entries[i].AvgNet > entries[j].AvgNet
		}
		if entries[i].Attended != entries[j].Attended {
			return entries[i].Attended > entries[j].Attended
		}
		return entries[i].Surname < entries[j].Surname
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// BuildOverview summarizes the whole center.
func BuildOverview(snap models.Snapshot) Overview {
	ov := Overview{
		ClassroomCount: len(snap.Classrooms),
		StudentCount:   len(snap.Students),
		ExamCount:      len(snap.ExamDefinitions),
		ResultCount:    len(snap.ExamResults),
	}

	classOf := make(map[uuid.UUID]uuid.UUID, len(snap.Students))
	for _, st := range snap.Students {
		classOf[st.ID] = st.ClassroomID
	}

	var netSum float64
	var attended int
	perClass := make(map[uuid.UUID]*ClassroomAverage)
	classSums := make(map[uuid.UUID]float64)
	names := classroomNames(snap)

	for _, r := range snap.ExamResults {
		if r.Status == models.StatusMissing {
			continue
		}
		attended++
		netSum += r.Net

		classID, ok := classOf[r.StudentID]
		if !ok {
			continue
		}
		agg := perClass[classID]
		if agg == nil {
			agg = &ClassroomAverage{ClassroomID: classID, Name: names[classID]}
			perClass[classID] = agg
		}
		agg.Attended++
		classSums[classID] += r.Net
	}

	ov.AvgNet = round2Avg(netSum, attended)
	for id, agg := range perClass {
		agg.AvgNet = round2Avg(classSums[id], agg.Attended)
		ov.Leaderboard = append(ov.Leaderboard, *agg)
	}
	sortClassroomAverages(ov.Leaderboard)
	return ov
}
