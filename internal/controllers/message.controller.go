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

const defaultMessageLimit = 20

type MessageController struct {
	repo repository.MessageRepository
}

func NewMessageController(repo repository.MessageRepository) *MessageController {
	return &MessageController{repo: repo}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=100" example:"Ada"`
	Email   string `json:"email" binding:"required,email,max=254" example:"ada@example.com"`
	Subject string `json:"subject" binding:"max=200"`
	Content string `json:"content" binding:"required,max=5000"`
}

// SubmitMessage godoc
// @Summary Send a contact message
// @Tags message
// @Accept json
// @Produce json
// @Param message body ContactRequest true "Contact form"
// @Success 201 {object} map[string]interface{} "Message sent successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /api/messages [post]
func (mc *MessageController) SubmitMessage(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	message := models.Message{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Content: strings.TrimSpace(req.Content),
	}
	if message.Name == "" || message.Content == "" {
		respondError(c, http.StatusBadRequest, "name, email and content are required")
		return
	}

	if err := mc.repo.Create(c.Request.Context(), &message); err != nil {
		metrics.RecordMutation("message", "create", "error")
		respondServerError(c, "Failed to send message", err)
		return
	}

	metrics.RecordMutation("message", "create", "ok")
	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Message sent successfully",
		"data":    gin.H{"id": message.ID},
	})
}

// ListMessages godoc
// @Summary List contact messages
// @Tags message
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param read query string false "Read flag" Enums(true, false)
// @Success 200 {object} map[string]interface{} "Messages and pagination"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /api/messages [get]
func (mc *MessageController) ListMessages(c *gin.Context) {
	page := query.ParsePage(c.Query("page"), c.Query("limit"), defaultMessageLimit)
	filter := repository.MessageFilter{Read: query.ParseBool(c.Query("read"))}

	messages, total, err := mc.repo.List(c.Request.Context(), filter, page)
	if err != nil {
		respondServerError(c, "Failed to fetch messages", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"data":       messages,
		"pagination": page.Paginate(total),
	})
}

// MarkMessageRead godoc
// @Summary Mark a message read or unread
// @Tags message
// @Accept json
// @Produce json
// @Param id path int true "Message ID"
// @Param body body object false "{\"read\": true}"
// @Success 200 {object} map[string]interface{} "Message updated successfully"
// @Failure 404 {object} map[string]interface{} "Message not found"
// @Router /api/messages/{id}/read [patch]
func (mc *MessageController) MarkMessageRead(c *gin.Context) {
	id, ok := parseID(c, "message")
	if !ok {
		return
	}

	body := struct {
		Read *bool `json:"read"`
	}{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			respondInvalidBody(c, err)
			return
		}
	}
	read := true
	if body.Read != nil {
		read = *body.Read
	}

	err := mc.repo.MarkRead(c.Request.Context(), id, read)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Message not found")
		return
	}
	if err != nil {
		respondServerError(c, "Failed to update message", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Message updated successfully",
		"data":    gin.H{"id": id, "read": read},
	})
}

// DeleteMessage godoc
// @Summary Delete a message
// @Tags message
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} map[string]interface{} "Message deleted successfully"
// @Failure 404 {object} map[string]interface{} "Message not found"
// @Router /api/messages/{id} [delete]
func (mc *MessageController) DeleteMessage(c *gin.Context) {
	id, ok := parseID(c, "message")
	if !ok {
		return
	}

	err := mc.repo.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Message not found")
		return
	}
	if err != nil {
		respondServerError(c, "Failed to delete message", err)
		return
	}

	metrics.RecordMutation("message", "delete", "ok")
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Message deleted successfully",
		"data":    nil,
	})
}
