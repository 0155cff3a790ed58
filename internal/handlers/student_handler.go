package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sinansouth/EnglishNet/internal/models"
	"github.com/sinansouth/EnglishNet/internal/store"
)

type StudentHandler struct {
	store *store.Store
}

func NewStudentHandler(s *store.Store) *StudentHandler {
	return &StudentHandler{store: s}
}

func (h *StudentHandler) List(c *gin.Context) {
	var classroomID *uuid.UUID
	if raw := c.Query("classroom_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid classroom ID"})
			return
		}
		classroomID = &id
	}

	students, err := h.store.ListStudents(classroomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, students)
}

func (h *StudentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student ID"})
		return
	}

	student, err := h.store.GetStudent(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, student)
}

func (h *StudentHandler) Create(c *gin.Context) {
	var req struct {
		Name          string `json:"name" binding:"required"`
		Surname       string `json:"surname"`
		ClassroomID   string `json:"classroom_id"`
		TargetCorrect int    `json:"target_correct"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student := models.Student{
		Name:          req.Name,
		Surname:       req.Surname,
		TargetCorrect: req.TargetCorrect,
	}
	if student.TargetCorrect == 0 {
		student.TargetCorrect = models.DefaultTargetCorrect
	}
	if req.ClassroomID != "" {
		classroomID, err := uuid.Parse(req.ClassroomID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid classroom ID"})
			return
		}
		student.ClassroomID = classroomID
	}

	if err := h.store.CreateStudent(&student); err != nil {
		log.Printf("Error creating student: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, student)
}

func (h *StudentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student ID"})
		return
	}

	var req struct {
		Name          *string `json:"name"`
		Surname       *string `json:"surname"`
		ClassroomID   *string `json:"classroom_id"`
		TargetCorrect *int    `json:"target_correct"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student, err := h.store.GetStudent(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Surname != nil {
		student.Surname = *req.Surname
	}
	if req.ClassroomID != nil {
		classroomID, err := uuid.Parse(*req.ClassroomID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid classroom ID"})
			return
		}
		student.ClassroomID = classroomID
	}
	if req.TargetCorrect != nil {
		student.TargetCorrect = *req.TargetCorrect
	}

	if err := h.store.UpdateStudent(&student); err != nil {
		log.Printf("Error updating student: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, student)
}

func (h *StudentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student ID"})
		return
	}

	if err := h.store.DeleteStudent(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// result rows do not cascade in the schema; remove them explicitly
	if err := h.store.DeleteResultsByStudent(id); err != nil {
		log.Printf("Error deleting results for student %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted"})
}

func (h *StudentHandler) BulkDelete(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student ID: " + raw})
			return
		}
		ids = append(ids, id)
	}

	if err := h.store.DeleteStudents(ids); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.DeleteResultsByStudents(ids); err != nil {
		log.Printf("Error deleting results for %d students: %v", len(ids), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Students deleted", "count": len(ids)})
}

func (h *StudentHandler) Results(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student ID"})
		return
	}

	if _, err := h.store.GetStudent(id); errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results, err := h.store.ListResultsByStudent(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}
