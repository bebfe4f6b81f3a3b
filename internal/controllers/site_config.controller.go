package controllers

import (
	"encoding/json"
	"net/http"

	"portfolio/internal/metrics"
	"portfolio/internal/repository"

	"github.com/gin-gonic/gin"
)

type SiteConfigController struct {
	repo repository.SiteSettingRepository
}

func NewSiteConfigController(repo repository.SiteSettingRepository) *SiteConfigController {
	return &SiteConfigController{repo: repo}
}

// GetSiteConfig godoc
// @Summary Get site configuration
// @Tags site-config
// @Produce json
// @Success 200 {object} map[string]interface{} "Key/value configuration"
// @Router /api/site-config [get]
func (sc *SiteConfigController) GetSiteConfig(c *gin.Context) {
	settings, err := sc.repo.All(c.Request.Context())
	if err != nil {
		respondServerError(c, "Failed to fetch site configuration", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   settings,
	})
}

// UpdateSiteConfig godoc
// @Summary Upsert site configuration keys
// @Description Every top-level key of the body is stored; absent keys are left untouched.
// @Tags site-config
// @Accept json
// @Produce json
// @Param config body object true "Configuration keys"
// @Success 200 {object} map[string]interface{} "Site configuration updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /api/site-config [put]
func (sc *SiteConfigController) UpdateSiteConfig(c *gin.Context) {
	var values map[string]json.RawMessage
	if err := c.ShouldBindJSON(&values); err != nil {
		respondInvalidBody(c, err)
		return
	}
	if len(values) == 0 {
		respondError(c, http.StatusBadRequest, "at least one key is required")
		return
	}
	for key := range values {
		if key == "" || len(key) > 100 {
			respondError(c, http.StatusBadRequest, "keys must be 1-100 characters")
			return
		}
	}

	ctx := c.Request.Context()
	if err := sc.repo.Upsert(ctx, values); err != nil {
		metrics.RecordMutation("site_config", "update", "error")
		respondServerError(c, "Failed to update site configuration", err)
		return
	}

	settings, err := sc.repo.All(ctx)
	if err != nil {
		respondServerError(c, "Failed to fetch site configuration", err)
		return
	}

	metrics.RecordMutation("site_config", "update", "ok")
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Site configuration updated successfully",
		"data":    settings,
	})
}
