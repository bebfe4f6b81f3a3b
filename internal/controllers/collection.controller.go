package controllers

import (
	"errors"
	"net/http"

	"portfolio/internal/metrics"
	"portfolio/internal/repository"

	"github.com/gin-gonic/gin"
)

// Identifiable is satisfied by pointers to the collection models.
type Identifiable[T any] interface {
	*T
	SetID(id uint)
}

// CollectionController exposes list/create/update/delete for one of the
// ordered admin collections (nav, skills, experience, education, timeline).
type CollectionController[T any, PT Identifiable[T]] struct {
	name    string
	repo    repository.CollectionRepository[T]
	filters []string
}

// NewCollectionController names the resource for messages and metrics. The
// filters are the query parameters forwarded to the repository.
func NewCollectionController[T any, PT Identifiable[T]](name string, repo repository.CollectionRepository[T], filters ...string) *CollectionController[T, PT] {
	return &CollectionController[T, PT]{name: name, repo: repo, filters: filters}
}

func (cc *CollectionController[T, PT]) List(c *gin.Context) {
	filters := make(map[string]string, len(cc.filters))
	for _, f := range cc.filters {
		filters[f] = c.Query(f)
	}

	items, err := cc.repo.List(c.Request.Context(), filters)
	if err != nil {
		respondServerError(c, "Failed to fetch "+cc.name+" items", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   items,
	})
}

func (cc *CollectionController[T, PT]) Create(c *gin.Context) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		respondInvalidBody(c, err)
		return
	}
	PT(&item).SetID(0)

	if err := cc.repo.Create(c.Request.Context(), &item); err != nil {
		metrics.RecordMutation(cc.name, "create", "error")
		respondServerError(c, "Failed to create "+cc.name, err)
		return
	}

	metrics.RecordMutation(cc.name, "create", "ok")
	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Created " + cc.name + " successfully",
		"data":    item,
	})
}

func (cc *CollectionController[T, PT]) Update(c *gin.Context) {
	id, ok := parseID(c, cc.name)
	if !ok {
		return
	}

	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		respondInvalidBody(c, err)
		return
	}
	PT(&item).SetID(id)

	err := cc.repo.Update(c.Request.Context(), &item)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(c, http.StatusNotFound, "No "+cc.name+" exists with the provided ID")
		return
	}
	if err != nil {
		metrics.RecordMutation(cc.name, "update", "error")
		respondServerError(c, "Failed to update "+cc.name, err)
		return
	}

	metrics.RecordMutation(cc.name, "update", "ok")
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Updated " + cc.name + " successfully",
		"data":    item,
	})
}

func (cc *CollectionController[T, PT]) Delete(c *gin.Context) {
	id, ok := parseID(c, cc.name)
	if !ok {
		return
	}

	err := cc.repo.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(c, http.StatusNotFound, "No "+cc.name+" exists with the provided ID")
		return
	}
	if err != nil {
		metrics.RecordMutation(cc.name, "delete", "error")
		respondServerError(c, "Failed to delete "+cc.name, err)
		return
	}

	metrics.RecordMutation(cc.name, "delete", "ok")
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Deleted " + cc.name + " successfully",
		"data":    nil,
	})
}
