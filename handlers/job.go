package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	jobRepo "probook/database/repository/job"
	"probook/models"
	"probook/utils"
)

// JobHandler serves the legacy job records that feed the unified dashboard.
type JobHandler struct {
	Repo jobRepo.JobRepository
}

// NewJobHandler constructs a JobHandler.
func NewJobHandler(repo jobRepo.JobRepository) *JobHandler {
	return &JobHandler{Repo: repo}
}

// List handles GET /api/jobs.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.Repo.ListByOwner(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// Create handles POST /api/jobs.
func (h *JobHandler) Create(c *gin.Context) {
	var input models.Job
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if input.Client == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "client is required")
		return
	}
	if input.Status == "" {
		input.Status = models.JobPending
	}

	now := time.Now()
	input.ID = uuid.New().String()
	input.UserID = c.GetString("userID")
	input.CreatedAt = now
	input.UpdatedAt = now

	if err := h.Repo.Create(c.Request.Context(), &input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, input)
}

// Update handles PUT /api/jobs/:id.
func (h *JobHandler) Update(c *gin.Context) {
	var input models.Job
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	input.ID = c.Param("id")

	if err := h.Repo.Update(c.Request.Context(), c.GetString("userID"), &input); err != nil {
		if errors.Is(err, jobRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Job not found", input.ID)
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, input)
}
