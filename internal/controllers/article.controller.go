package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"portfolio/internal/cache"
	"portfolio/internal/metrics"
	"portfolio/internal/models"
	"portfolio/internal/query"
	"portfolio/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultArticleLimit = 10

type ArticleController struct {
	repo  repository.ArticleRepository
	views cache.ViewDeduper
	now   func() time.Time
}

func NewArticleController(repo repository.ArticleRepository, views cache.ViewDeduper) *ArticleController {
	if views == nil {
		views = cache.NoopViewDeduper{}
	}
	return &ArticleController{repo: repo, views: views, now: time.Now}
}

// ArticleRequest is the writable subset of an article.
type ArticleRequest struct {
	TitleZh    string   `json:"title_zh" example:"你好，世界"`
	TitleEn    string   `json:"title_en" example:"Hello, world"`
	Slug       string   `json:"slug" binding:"omitempty,slug" example:"hello-world"`
	ContentZh  string   `json:"content_zh"`
	ContentEn  string   `json:"content_en"`
	ExcerptZh  string   `json:"excerpt_zh"`
	ExcerptEn  string   `json:"excerpt_en"`
	CoverImage string   `json:"cover_image"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	Status     string   `json:"status" example:"draft"`
	Author     string   `json:"author"`
}

// normalize trims the identifying fields and fills defaults. It returns a
// validation message, or "" when the request is acceptable.
func (r *ArticleRequest) normalize() string {
	r.TitleZh = strings.TrimSpace(r.TitleZh)
	r.Slug = strings.TrimSpace(r.Slug)
	if r.TitleZh == "" || r.Slug == "" {
		return "title_zh and slug are required"
	}
	if r.Status == "" {
		r.Status = models.StatusDraft
	}
	if !models.ValidArticleStatus(r.Status) {
		return "status must be one of draft, published, archived"
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	return ""
}

func (r *ArticleRequest) applyTo(a *models.Article) {
	a.TitleZh = r.TitleZh
	a.TitleEn = r.TitleEn
	a.Slug = r.Slug
	a.ContentZh = r.ContentZh
	a.ContentEn = r.ContentEn
	a.ExcerptZh = r.ExcerptZh
	a.ExcerptEn = r.ExcerptEn
	a.CoverImage = r.CoverImage
	a.Category = r.Category
	a.Tags = r.Tags
	a.Status = r.Status
	a.Author = r.Author
}

// ListArticles godoc
// @Summary List articles
// @Description Paginated article list filtered by category, status and title search
// @Tags article
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param category query string false "Category"
// @Param status query string false "Status" Enums(draft, published, archived)
// @Param search query string false "Case-insensitive title substring"
// @Success 200 {object} map[string]interface{} "Articles and pagination"
// @Failure 500 {object} map[string]interface{} "Failed to fetch articles"
// @Router /api/articles [get]
func (ac *ArticleController) ListArticles(c *gin.Context) {
	page := query.ParsePage(c.Query("page"), c.Query("limit"), defaultArticleLimit)
	filter := repository.ArticleFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	}

	articles, total, err := ac.repo.List(c.Request.Context(), filter, page)
	if err != nil {
		respondServerError(c, "Failed to fetch articles", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"data":       articles,
		"pagination": page.Paginate(total),
	})
}

// GetArticle godoc
// @Summary Get an article by slug
// @Tags article
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} map[string]interface{} "Article retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /api/articles/{slug} [get]
func (ac *ArticleController) GetArticle(c *gin.Context) {
	article, err := ac.repo.FindBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, repository.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Article not found")
		return
	}
	if err != nil {
		respondServerError(c, "Failed to fetch article", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   article,
	})
}

// CreateArticle godoc
// @Summary Create a new article
// @Description Requires an admin session. title_zh and slug are required; slug must be unique.
// @Tags article
// @Accept json
// @Produce json
// @Param article body ArticleRequest true "Article data"
// @Success 201 {object} map[string]interface{} "Article created successfully"
// @Failure 400 {object} map[string]interface{} "Missing fields or duplicate slug"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to create article"
// @Router /api/articles [post]
func (ac *ArticleController) CreateArticle(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}
	if msg := req.normalize(); msg != "" {
		respondError(c, http.StatusBadRequest, msg)
		return
	}

	ctx := c.Request.Context()
	// Early exit only; the unique index has the final word.
	exists, err := ac.repo.SlugExists(ctx, req.Slug, 0)
	if err != nil {
		respondServerError(c, "Failed to create article", err)
		return
	}
	if exists {
		metrics.RecordMutation("article", "create", "duplicate")
		respondError(c, http.StatusBadRequest, "Slug already exists")
		return
	}

	var article models.Article
	req.applyTo(&article)
	article.MarkPublished(ac.now())

	if err := ac.repo.Create(ctx, &article); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			metrics.RecordMutation("article", "create", "duplicate")
			respondError(c, http.StatusBadRequest, "Slug already exists")
			return
		}
		metrics.RecordMutation("article", "create", "error")
		respondServerError(c, "Failed to create article", err)
		return
	}

	metrics.RecordMutation("article", "create", "ok")
	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Article created successfully",
		"data":    article,
	})
}

// UpdateArticle godoc
// @Summary Update an article
// @Description Requires an admin session. published_at is stamped on the first transition to published and never moved afterwards.
// @Tags article
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param article body ArticleRequest true "Article data"
// @Success 200 {object} map[string]interface{} "Article updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Failure 500 {object} map[string]interface{} "Failed to update article"
// @Router /api/articles/{id} [put]
func (ac *ArticleController) UpdateArticle(c *gin.Context) {
	id, ok := parseID(c, "article")
	if !ok {
		return
	}

	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}
	if msg := req.normalize(); msg != "" {
		respondError(c, http.StatusBadRequest, msg)
		return
	}

	ctx := c.Request.Context()
	article, err := ac.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Article not found")
		return
	}
	if err != nil {
		respondServerError(c, "Failed to update article", err)
		return
	}

	if req.Slug != article.Slug {
		exists, err := ac.repo.SlugExists(ctx, req.Slug, id)
		if err != nil {
			respondServerError(c, "Failed to update article", err)
			return
		}
		if exists {
			respondError(c, http.StatusBadRequest, "Slug already exists")
			return
		}
	}

	req.applyTo(article)
	article.MarkPublished(ac.now())

	if err := ac.repo.Update(ctx, article); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateSlug):
			respondError(c, http.StatusBadRequest, "Slug already exists")
		case errors.Is(err, repository.ErrNotFound):
			respondError(c, http.StatusNotFound, "Article not found")
		default:
			metrics.RecordMutation("article", "update", "error")
			respondServerError(c, "Failed to update article", err)
		}
		return
	}

	metrics.RecordMutation("article", "update", "ok")
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article updated successfully",
		"data":    article,
	})
}

// DeleteArticle godoc
// @Summary Delete an article
// @Tags article
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Article deleted successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /api/articles/{id} [delete]
func (ac *ArticleController) DeleteArticle(c *gin.Context) {
	id, ok := parseID(c, "article")
	if !ok {
		return
	}

	err := ac.repo.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Article not found")
		return
	}
	if err != nil {
		metrics.RecordMutation("article", "delete", "error")
		respondServerError(c, "Failed to delete article", err)
		return
	}

	metrics.RecordMutation("article", "delete", "ok")
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article deleted successfully",
		"data":    nil,
	})
}

// RecordView godoc
// @Summary Count a page view
// @Description Public. Repeat views from the same client inside the de-duplication window are not counted.
// @Tags article
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} map[string]interface{} "View recorded"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /api/articles/{slug}/view [post]
func (ac *ArticleController) RecordView(c *gin.Context) {
	slug := c.Param("slug")
	ctx := c.Request.Context()

	first, err := ac.views.FirstView(ctx, "article:"+slug, c.ClientIP())
	if err != nil {
		// Fail open: the view is counted.
		zap.L().Warn("view de-duplication unavailable", zap.Error(err))
		first = true
	}
	if !first {
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   gin.H{"counted": false},
		})
		return
	}

	count, err := ac.repo.IncrementViews(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Article not found")
		return
	}
	if err != nil {
		respondServerError(c, "Failed to record view", err)
		return
	}

	metrics.ArticleViews.Inc()
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"counted": true, "view_count": count},
	})
}
