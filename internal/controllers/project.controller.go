package controllers

import (
	"errors"
	"net/http"
	"strings"

	"portfolio/internal/metrics"
	"portfolio/internal/models"
	"portfolio/internal/query"
	"portfolio/internal/repository"

	"github.com/gin-gonic/gin"
)

const defaultProjectLimit = 9

type ProjectController struct {
	repo repository.ProjectRepository
}

func NewProjectController(repo repository.ProjectRepository) *ProjectController {
	return &ProjectController{repo: repo}
}

type ProjectRequest struct {
	TitleZh       string   `json:"title_zh" example:"作品集"`
	TitleEn       string   `json:"title_en" example:"Portfolio"`
	Slug          string   `json:"slug" binding:"omitempty,slug" example:"portfolio"`
	DescriptionZh string   `json:"description_zh"`
	DescriptionEn string   `json:"description_en"`
	CoverImage    string   `json:"cover_image"`
	TechStack     []string `json:"tech_stack"`
	DemoURL       string   `json:"demo_url" binding:"omitempty,url"`
	GithubURL     string   `json:"github_url" binding:"omitempty,url"`
	Featured      bool     `json:"featured"`
	Status        string   `json:"status" example:"published"`
}

func (r *ProjectRequest) normalize() string {
	r.TitleZh = strings.TrimSpace(r.TitleZh)
	r.Slug = strings.TrimSpace(r.Slug)
	if r.TitleZh == "" || r.Slug == "" {
		return "title_zh and slug are required"
	}
	if r.Status == "" {
		r.Status = models.StatusDraft
	}
	if !models.ValidProjectStatus(r.Status) {
		return "status must be one of draft, published"
	}
	if r.TechStack == nil {
		r.TechStack = []string{}
	}
	return ""
}

func (r *ProjectRequest) applyTo(p *models.Project) {
	p.TitleZh = r.TitleZh
	p.TitleEn = r.TitleEn
	p.Slug = r.Slug
	p.DescriptionZh = r.DescriptionZh
	p.DescriptionEn = r.DescriptionEn
	p.CoverImage = r.CoverImage
	p.TechStack = r.TechStack
	p.DemoURL = r.DemoURL
	p.GithubURL = r.GithubURL
	p.Featured = r.Featured
	p.Status = r.Status
}

// ListProjects godoc
// @Summary List projects
// @Description Featured projects first, then newest first
// @Tags project
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(9)
// @Param status query string false "Status" Enums(draft, published)
// @Param featured query string false "Featured flag" Enums(true, false)
// @Param search query string false "Case-insensitive title substring"
// @Success 200 {object} map[string]interface{} "Projects and pagination"
// @Failure 500 {object} map[string]interface{} "Failed to fetch projects"
// @Router /api/projects [get]
func (pc *ProjectController) ListProjects(c *gin.Context) {
	page := query.ParsePage(c.Query("page"), c.Query("limit"), defaultProjectLimit)
	filter := repository.ProjectFilter{
		Status:   c.Query("status"),
		Featured: query.ParseBool(c.Query("featured")),
		Search:   c.Query("search"),
	}

	projects, total, err := pc.repo.List(c.Request.Context(), filter, page)
	if err != nil {
		respondServerError(c, "Failed to fetch projects", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"data":       projects,
		"pagination": page.Paginate(total),
	})
}

// GetProject godoc
// @Summary Get a project by slug
// @Tags project
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} map[string]interface{} "Project retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /api/projects/{slug} [get]
func (pc *ProjectController) GetProject(c *gin.Context) {
	project, err := pc.repo.FindBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, repository.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondServerError(c, "Failed to fetch project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// CreateProject godoc
// @Summary Create a new project
// @Description Requires an admin session. title_zh and slug are required; slug must be unique.
// @Tags project
// @Accept json
// @Produce json
// @Param project body ProjectRequest true "Project data"
// @Success 201 {object} map[string]interface{} "Project created successfully"
// @Failure 400 {object} map[string]interface{} "Missing fields or duplicate slug"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to create project"
// @Router /api/projects [post]
func (pc *ProjectController) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}
	if msg := req.normalize(); msg != "" {
		respondError(c, http.StatusBadRequest, msg)
		return
	}

	ctx := c.Request.Context()
	exists, err := pc.repo.SlugExists(ctx, req.Slug, 0)
	if err != nil {
		respondServerError(c, "Failed to create project", err)
		return
	}
	if exists {
		metrics.RecordMutation("project", "create", "duplicate")
		respondError(c, http.StatusBadRequest, "Slug already exists")
		return
	}

	var project models.Project
	req.applyTo(&project)

	if err := pc.repo.Create(ctx, &project); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			metrics.RecordMutation("project", "create", "duplicate")
			respondError(c, http.StatusBadRequest, "Slug already exists")
			return
		}
		metrics.RecordMutation("project", "create", "error")
		respondServerError(c, "Failed to create project", err)
		return
	}

	metrics.RecordMutation("project", "create", "ok")
	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Project created successfully",
		"data":    project,
	})
}

// UpdateProject godoc
// @Summary Update a project
// @Tags project
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param project body ProjectRequest true "Project data"
// @Success 200 {object} map[string]interface{} "Project updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /api/projects/{id} [put]
func (pc *ProjectController) UpdateProject(c *gin.Context) {
	id, ok := parseID(c, "project")
	if !ok {
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}
	if msg := req.normalize(); msg != "" {
		respondError(c, http.StatusBadRequest, msg)
		return
	}

	ctx := c.Request.Context()
	project, err := pc.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondServerError(c, "Failed to update project", err)
		return
	}

	if req.Slug != project.Slug {
		exists, err := pc.repo.SlugExists(ctx, req.Slug, id)
		if err != nil {
			respondServerError(c, "Failed to update project", err)
			return
		}
		if exists {
			respondError(c, http.StatusBadRequest, "Slug already exists")
			return
		}
	}

	req.applyTo(project)
	if err := pc.repo.Update(ctx, project); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateSlug):
			respondError(c, http.StatusBadRequest, "Slug already exists")
		case errors.Is(err, repository.ErrNotFound):
			respondError(c, http.StatusNotFound, "Project not found")
		default:
			metrics.RecordMutation("project", "update", "error")
			respondServerError(c, "Failed to update project", err)
		}
		return
	}

	metrics.RecordMutation("project", "update", "ok")
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project updated successfully",
		"data":    project,
	})
}

// DeleteProject godoc
// @Summary Delete a project
// @Tags project
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]interface{} "Project deleted successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /api/projects/{id} [delete]
func (pc *ProjectController) DeleteProject(c *gin.Context) {
	id, ok := parseID(c, "project")
	if !ok {
		return
	}

	err := pc.repo.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		metrics.RecordMutation("project", "delete", "error")
		respondServerError(c, "Failed to delete project", err)
		return
	}

	metrics.RecordMutation("project", "delete", "ok")
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
		"data":    nil,
	})
}
