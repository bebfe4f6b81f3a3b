package controllers

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// slugPattern accepts the URL path characters that never need escaping.
var slugPattern = regexp.MustCompile(`^[A-Za-z0-9._~-]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})
	}
}

func respondError(c *gin.Context, status int, message string) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, gin.H{
		"status": "error",
		"error":  message,
	})
}

func respondInvalidBody(c *gin.Context, err error) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"error":   "Invalid request data",
		"details": err.Error(),
	})
}

// respondServerError reports a persistence failure. The raw driver text goes
// out as details; this API is consumed by the admin panel only.
func respondServerError(c *gin.Context, message string, err error) {
	zap.L().Error(message,
		zap.Error(err),
		zap.String("request_id", c.GetString("request_id")),
		zap.String("path", c.Request.URL.Path),
	)
	_ = c.Error(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"error":   message,
		"details": err.Error(),
	})
}

func parseID(c *gin.Context, resource string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "Invalid "+resource+" ID")
		return 0, false
	}
	return uint(id), true
}
