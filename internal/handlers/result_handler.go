package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sinansouth/EnglishNet/internal/models"
	"github.com/sinansouth/EnglishNet/internal/scoring"
	"github.com/sinansouth/EnglishNet/internal/store"
)

type ResultHandler struct {
	store *store.Store
}

func NewResultHandler(s *store.Store) *ResultHandler {
	return &ResultHandler{store: s}
}

// CreateOrUpdate is the manual-entry path: one row per student and exam,
// updated in place when it already exists.
func (h *ResultHandler) CreateOrUpdate(c *gin.Context) {
	var req struct {
		StudentID string `json:"student_id" binding:"required"`
		ExamID    string `json:"exam_id" binding:"required"`
		Status    string `json:"status"`
		Correct   int    `json:"correct"`
		Incorrect int    `json:"incorrect"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student ID"})
		return
	}
	examID, err := uuid.Parse(req.ExamID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exam ID"})
		return
	}

	status := models.ResultStatus(req.Status)
	if status == "" {
		status = models.StatusAttended
	}
	if status != models.StatusAttended && status != models.StatusMissing {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be ATTENDED or MISSING"})
		return
	}
	if status == models.StatusAttended {
		if req.Correct < 0 || req.Incorrect < 0 || req.Correct+req.Incorrect > scoring.QuestionsPerExam {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Correct and incorrect must be non-negative and sum to at most 10"})
			return
		}
	}

	student, err := h.store.GetStudent(studentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	exam, err := h.store.GetExamDefinition(examID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exam not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Check if a row already exists for this student and exam
	result, err := h.store.FindResultByStudentAndExam(student.ID, exam.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	created := errors.Is(err, gorm.ErrRecordNotFound)
	if created {
		id := exam.ID
		result = models.ExamResult{StudentID: student.ID, ExamID: &id}
	}

	result.ExamName = exam.Name
	result.Date = exam.Date
	result.Status = status
	if status == models.StatusMissing {
		result.Correct = 0
		result.Incorrect = 0
		result.Empty = 0
		result.Net = 0
	} else {
		result.Correct = req.Correct
		result.Incorrect = req.Incorrect
		result.Empty = scoring.Empty(req.Correct, req.Incorrect)
		result.Net = scoring.Net(req.Correct, req.Incorrect)
	}

	if created {
		if err := h.store.CreateExamResult(&result); err != nil {
			log.Printf("Error creating result: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, result)
		return
	}
	if err := h.store.UpdateExamResult(&result); err != nil {
		log.Printf("Error saving result: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ResultHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid result ID"})
		return
	}
	if _, err := h.store.GetExamResult(id); errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Result not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.DeleteExamResult(id); err != nil {
		log.Printf("Error deleting result: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Result deleted"})
}
