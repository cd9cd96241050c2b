package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/repository"
	"taskboard/models"
)

type CategoryController struct {
	Categories *repository.CategoryRepository
	Tasks      *repository.TaskRepository
}

type categoryBody struct {
	Name *string `json:"name" binding:"required"`
}

func (h CategoryController) List(c *gin.Context) {
	categories, err := h.Categories.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, msgInternal, err)
		return
	}
	list(c, categories)
}

func (h CategoryController) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	category, err := h.Categories.GetByID(c.Request.Context(), id)
	if err != nil {
		h.lookupFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// ListTasks returns the tasks that belong to one category.
func (h CategoryController) ListTasks(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.Categories.GetByID(ctx, id); err != nil {
		h.lookupFailed(c, err)
		return
	}
	tasks, err := h.Tasks.ListByCategory(ctx, id)
	if err != nil {
		fail(c, http.StatusInternalServerError, msgInternal, err)
		return
	}
	list(c, tasks)
}

func (h CategoryController) Create(c *gin.Context) {
	var body categoryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		message(c, http.StatusBadRequest, msgMissing)
		return
	}

	category := &models.Category{Name: *body.Name}
	if !category.IsValid() {
		message(c, http.StatusInternalServerError, "Error saving category")
		return
	}
	if err := h.Categories.Create(c.Request.Context(), category); err != nil {
		h.writeFailed(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h CategoryController) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	category, err := h.Categories.GetByID(ctx, id)
	if err != nil {
		h.lookupFailed(c, err)
		return
	}

	var body categoryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		message(c, http.StatusBadRequest, msgMissing)
		return
	}

	category.Name = *body.Name
	if !category.IsValid() {
		message(c, http.StatusInternalServerError, "Error updating category")
		return
	}
	if err := h.Categories.Save(ctx, category); err != nil {
		h.writeFailed(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h CategoryController) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	category, err := h.Categories.GetByID(ctx, id)
	if err != nil {
		h.lookupFailed(c, err)
		return
	}
	if err := h.Categories.Delete(ctx, category); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			message(c, http.StatusNotFound, msgNotFound)
			return
		}
		fail(c, http.StatusInternalServerError, msgInternal, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h CategoryController) lookupFailed(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		message(c, http.StatusNotFound, msgNotFound)
		return
	}
	fail(c, http.StatusInternalServerError, msgInternal, err)
}

func (h CategoryController) writeFailed(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		message(c, http.StatusNotFound, msgNotFound)
		return
	}
	if errors.Is(err, repository.ErrDuplicate) {
		fail(c, http.StatusInternalServerError, msgDuplicate, err)
		return
	}
	fail(c, http.StatusInternalServerError, msgInternal, err)
}
