package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultTargetCorrect is assigned to students created without an explicit
// per-exam correct-answer goal.
const DefaultTargetCorrect = 6

// ResultStatus marks whether a student sat an exam.
type ResultStatus string

const (
	StatusAttended ResultStatus = "ATTENDED"
	StatusMissing  ResultStatus = "MISSING"
)

// Base model with UUID
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:char(36);primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Classroom represents a class group such as "8/A"
type Classroom struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null" json:"name"`
}

// Student represents an enrolled student
type Student struct {
	BaseModel
	Name    string `gorm:"type:varchar(100);not null" json:"name"`
	Surname string `gorm:"type:varchar(100)" json:"surname"`
	// ClassroomID may reference a deleted classroom; references are not
	// enforced and a dangling id reads as "no resolvable class".
	ClassroomID   uuid.UUID `gorm:"type:char(36);index" json:"classroom_id"`
	TargetCorrect int       `gorm:"default:6" json:"target_correct"`
}

// ExamDefinition represents one scheduled practice exam
type ExamDefinition struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null" json:"name"`
	Date string `gorm:"type:varchar(10);not null" json:"date"`
}

// ExamResult represents one student's outcome for one exam. Rows with
// status MISSING keep every numeric field at zero and never enter averages.
type ExamResult struct {
	BaseModel
	StudentID uuid.UUID    `gorm:"type:char(36);not null;index:idx_result_student_exam" json:"student_id"`
	ExamID    *uuid.UUID   `gorm:"type:char(36);index:idx_result_student_exam" json:"exam_id"`
	ExamName  string       `gorm:"type:varchar(255);not null" json:"exam_name"`
	Date      string       `gorm:"type:varchar(10)" json:"date"`
	Correct   int          `json:"correct"`
	Incorrect int          `json:"incorrect"`
	Empty     int          `json:"empty"`
	Net       float64      `gorm:"type:decimal(5,2)" json:"net"`
	Status    ResultStatus `gorm:"type:varchar(10);not null;default:'ATTENDED'" json:"status"`
}

// Snapshot is the full in-memory copy of every collection, loaded once per
// import batch or statistics request. Slices are ordered by creation time so
// name matching resolves ties the same way on every run.
type Snapshot struct {
	Classrooms      []Classroom      `json:"classrooms"`
	Students        []Student        `json:"students"`
	ExamDefinitions []ExamDefinition `json:"exam_definitions"`
	ExamResults     []ExamResult     `json:"exam_results"`
}
