package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"realartist-backend/internal/assets"
	"realartist-backend/internal/models"
	"realartist-backend/internal/storage"
)

const (
	ActionProjectCreated = "project_created"
	ActionProjectDeleted = "project_deleted"

	fingerprintHeader = "X-Device-Fingerprint"
)

type ProjectsHandler struct {
	store  storage.Storage
	assets assets.Store
	logger *zap.SugaredLogger
}

func NewProjectsHandler(store storage.Storage, assetStore assets.Store, logger *zap.SugaredLogger) *ProjectsHandler {
	return &ProjectsHandler{
		store:  store,
		assets: assetStore,
		logger: logger,
	}
}

// ListProjects godoc
// @Summary     List projects
// @Description Returns the acting user's projects, newest first
// @Tags        projects
// @Produce     json
// @Success     200 {array}  models.Project
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/projects [get]
func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	projects, err := h.store.GetProjectsByUserID(c.Request.Context(), userID)
	if err != nil {
		respondInternal(c, h.logger, err, "Failed to fetch projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject godoc
// @Summary     Get project
// @Tags        projects
// @Produce     json
// @Param       id path int true "Project ID"
// @Success     200 {object} models.Project
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/projects/{id} [get]
func (h *ProjectsHandler) GetProject(c *gin.Context) {
	project, ok := h.ownedProject(c, "Failed to fetch project")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateProject godoc
// @Summary     Create project
// @Description Creates a draft project at workflow step 1 for the acting user
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       body body models.InsertProject true "Project"
// @Success     201 {object} models.Project
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     429 {object} map[string]interface{}
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/projects [post]
func (h *ProjectsHandler) CreateProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.InsertProject
	if !bindJSON(c, &req, "Invalid project data") {
		return
	}
	req.UserID = userID

	project, err := h.store.CreateProject(c.Request.Context(), req)
	if errors.Is(err, storage.ErrUnknownUser) {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		respondInternal(c, h.logger, err, "Failed to create project")
		return
	}

	h.audit(c, userID, ActionProjectCreated, project)
	c.JSON(http.StatusCreated, project)
}

// UpdateProject godoc
// @Summary     Update project
// @Description Partially updates a project. Any status or step may follow any other.
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       id   path int                 true "Project ID"
// @Param       body body models.ProjectPatch true "Fields to change"
// @Success     200 {object} models.Project
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     429 {object} map[string]interface{}
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/projects/{id} [patch]
func (h *ProjectsHandler) UpdateProject(c *gin.Context) {
	existing, ok := h.ownedProject(c, "Failed to update project")
	if !ok {
		return
	}

	var patch models.ProjectPatch
	if !bindJSON(c, &patch, "Invalid project data") {
		return
	}

	project, err := h.store.UpdateProject(c.Request.Context(), existing.ID, patch)
	if err != nil {
		respondStoreError(c, h.logger, err, "Project not found", "Failed to update project")
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary     Delete project
// @Description Deletes a project and, best effort, its stored assets
// @Tags        projects
// @Param       id path int true "Project ID"
// @Success     204
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     429 {object} map[string]interface{}
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/projects/{id} [delete]
func (h *ProjectsHandler) DeleteProject(c *gin.Context) {
	project, ok := h.ownedProject(c, "Failed to delete project")
	if !ok {
		return
	}

	deleted, err := h.store.DeleteProject(c.Request.Context(), project.ID)
	if err != nil {
		respondInternal(c, h.logger, err, "Failed to delete project")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "Project not found")
		return
	}

	if err := h.assets.DeleteProjectAssets(c.Request.Context(), project.UserID, project.ID); err != nil {
		h.logger.Warnw("failed to delete project assets",
			"project_id", project.ID,
			"user_id", project.UserID,
			"error", err,
		)
	}

	h.audit(c, project.UserID, ActionProjectDeleted, project)
	c.Status(http.StatusNoContent)
}

// GetProjectRoyalties godoc
// @Summary     Project royalties
// @Description Returns the per-platform royalty rows of a project, most recent first
// @Tags        analytics
// @Produce     json
// @Param       id path int true "Project ID"
// @Success     200 {array}  models.RoyaltyTracking
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/projects/{id}/royalties [get]
func (h *ProjectsHandler) GetProjectRoyalties(c *gin.Context) {
	project, ok := h.ownedProject(c, "Failed to fetch royalties")
	if !ok {
		return
	}

	rows, err := h.store.GetRoyaltyTracking(c.Request.Context(), project.ID)
	if err != nil {
		respondInternal(c, h.logger, err, "Failed to fetch royalties")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ownedProject loads the :id project of the acting user. Projects of other users are
// reported as not found.
func (h *ProjectsHandler) ownedProject(c *gin.Context, failMessage string) (*models.Project, bool) {
	userID, ok := currentUser(c)
	if !ok {
		return nil, false
	}
	id, ok := pathID(c, "id", "project")
	if !ok {
		return nil, false
	}

	project, err := h.store.GetProject(c.Request.Context(), id)
	if err == nil && project.UserID != userID {
		err = storage.ErrNotFound
	}
	if err != nil {
		respondStoreError(c, h.logger, err, "Project not found", failMessage)
		return nil, false
	}
	return project, true
}

// audit appends a security log row. Failures are logged and otherwise ignored.
func (h *ProjectsHandler) audit(c *gin.Context, userID int64, action string, project *models.Project) {
	meta := models.Metadata{models.MetaProjectTitle: project.Title}
	if project.ArtistVoice != nil {
		meta[models.MetaAiArtist] = *project.ArtistVoice
	}

	err := h.store.LogSecurityEvent(c.Request.Context(), models.InsertSecurityLog{
		UserID:            userID,
		Action:            action,
		IPAddress:         c.ClientIP(),
		UserAgent:         c.Request.UserAgent(),
		DeviceFingerprint: c.GetHeader(fingerprintHeader),
		Metadata:          meta,
	})
	if err != nil {
		h.logger.Warnw("failed to write security log",
			"action", action,
			"project_id", project.ID,
			"error", err,
		)
	}
}
