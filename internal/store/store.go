// Package store persists entities with gorm and assembles the snapshot the
// importer and the statistics views run on.
package store

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sinansouth/EnglishNet/internal/models"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// LoadAll reads every collection ordered by creation time. Matching during
// imports resolves duplicate names by first match, so the order has to be
// the same on every load.
func (s *Store) LoadAll() (models.Snapshot, error) {
	var snap models.Snapshot
	if err := s.db.Order("created_at, id").Find(&snap.Classrooms).Error; err != nil {
		return models.Snapshot{}, fmt.Errorf("loading classrooms: %w", err)
	}
	if err := s.db.Order("created_at, id").Find(&snap.Students).Error; err != nil {
		return models.Snapshot{}, fmt.Errorf("loading students: %w", err)
	}
	if err := s.db.Order("created_at, id").Find(&snap.ExamDefinitions).Error; err != nil {
		return models.Snapshot{}, fmt.Errorf("loading exam definitions: %w", err)
	}
	if err := s.db.Order("created_at, id").Find(&snap.ExamResults).Error; err != nil {
		return models.Snapshot{}, fmt.Errorf("loading exam results: %w", err)
	}
	return snap, nil
}

func (s *Store) CreateClassroom(c *models.Classroom) error {
	return s.db.Create(c).Error
}

func (s *Store) UpdateClassroom(c *models.Classroom) error {
	return s.db.Save(c).Error
}

func (s *Store) ListClassrooms() ([]models.Classroom, error) {
	var classrooms []models.Classroom
	err := s.db.Order("name").Find(&classrooms).Error
	return classrooms, err
}

func (s *Store) GetClassroom(id uuid.UUID) (models.Classroom, error) {
	var c models.Classroom
	err := s.db.First(&c, "id = ?", id).Error
	return c, err
}

func (s *Store) CreateStudent(st *models.Student) error {
	return s.db.Create(st).Error
}

func (s *Store) UpdateStudent(st *models.Student) error {
	return s.db.Save(st).Error
}

func (s *Store) DeleteStudent(id uuid.UUID) error {
	return s.db.Delete(&models.Student{}, "id = ?", id).Error
}

func (s *Store) DeleteStudents(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.Delete(&models.Student{}, "id IN ?", ids).Error
}

// ListStudents returns all students, or one classroom's when classroomID is
// set.
func (s *Store) ListStudents(classroomID *uuid.UUID) ([]models.Student, error) {
	var students []models.Student
	q := s.db.Order("surname, name")
	if classroomID != nil {
		q = q.Where("classroom_id = ?", *classroomID)
	}
	err := q.Find(&students).Error
	return students, err
}

func (s *Store) GetStudent(id uuid.UUID) (models.Student, error) {
	var st models.Student
	err := s.db.First(&st, "id = ?", id).Error
	return st, err
}

func (s *Store) CreateExamDefinition(ex *models.ExamDefinition) error {
	return s.db.Create(ex).Error
}

func (s *Store) UpdateExamDefinition(ex *models.ExamDefinition) error {
	return s.db.Save(ex).Error
}

func (s *Store) DeleteExamDefinition(id uuid.UUID) error {
	return s.db.Delete(&models.ExamDefinition{}, "id = ?", id).Error
}

func (s *Store) ListExamDefinitions() ([]models.ExamDefinition, error) {
	var exams []models.ExamDefinition
	err := s.db.Order("date, created_at").Find(&exams).Error
	return exams, err
}

func (s *Store) GetExamDefinition(id uuid.UUID) (models.ExamDefinition, error) {
	var ex models.ExamDefinition
	err := s.db.First(&ex, "id = ?", id).Error
	return ex, err
}

func (s *Store) CreateExamResult(r *models.ExamResult) error {
	return s.db.Create(r).Error
}

func (s *Store) UpdateExamResult(r *models.ExamResult) error {
	return s.db.Save(r).Error
}

func (s *Store) DeleteExamResult(id uuid.UUID) error {
	return s.db.Delete(&models.ExamResult{}, "id = ?", id).Error
}

func (s *Store) GetExamResult(id uuid.UUID) (models.ExamResult, error) {
	var r models.ExamResult
	err := s.db.First(&r, "id = ?", id).Error
	return r, err
}

// FindResultByStudentAndExam backs the manual-entry upsert.
func (s *Store) FindResultByStudentAndExam(studentID, examID uuid.UUID) (models.ExamResult, error) {
	var r models.ExamResult
	err := s.db.First(&r, "student_id = ? AND exam_id = ?", studentID, examID).Error
	return r, err
}

func (s *Store) ListResultsByStudent(studentID uuid.UUID) ([]models.ExamResult, error) {
	var results []models.ExamResult
	err := s.db.Where("student_id = ?", studentID).Order("date, created_at").Find(&results).Error
	return results, err
}

func (s *Store) ListResultsByExam(examID uuid.UUID) ([]models.ExamResult, error) {
	var results []models.ExamResult
	err := s.db.Where("exam_id = ?", examID).Order("net desc").Find(&results).Error
	return results, err
}

// DeleteResultsByStudent is the cleanup step a student delete issues; rows
// are not removed by the database itself.
func (s *Store) DeleteResultsByStudent(studentID uuid.UUID) error {
	return s.db.Delete(&models.ExamResult{}, "student_id = ?", studentID).Error
}

func (s *Store) DeleteResultsByStudents(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.Delete(&models.ExamResult{}, "student_id IN ?", ids).Error
}

// DeleteResultsByExam is the matching cleanup for exam-definition deletes.
func (s *Store) DeleteResultsByExam(examID uuid.UUID) error {
	return s.db.Delete(&models.ExamResult{}, "exam_id = ?", examID).Error
}
