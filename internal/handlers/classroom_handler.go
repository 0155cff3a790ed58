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

type ClassroomHandler struct {
	store *store.Store
}

func NewClassroomHandler(s *store.Store) *ClassroomHandler {
	return &ClassroomHandler{store: s}
}

func (h *ClassroomHandler) List(c *gin.Context) {
	classrooms, err := h.store.ListClassrooms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, classrooms)
}

func (h *ClassroomHandler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	classroom := models.Classroom{Name: req.Name}
	if err := h.store.CreateClassroom(&classroom); err != nil {
		log.Printf("Error creating classroom: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, classroom)
}

func (h *ClassroomHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid classroom ID"})
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	classroom, err := h.store.GetClassroom(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Classroom not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	classroom.Name = req.Name
	if err := h.store.UpdateClassroom(&classroom); err != nil {
		log.Printf("Error updating classroom: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, classroom)
}
