package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/repository"
	"taskboard/models"
)

type TaskController struct {
	Tasks      *repository.TaskRepository
	Categories *repository.CategoryRepository
}

type createTaskBody struct {
	Name       *string `json:"name" binding:"required"`
	CategoryID *uint   `json:"category_id" binding:"required"`
	Status     *bool   `json:"status"`
}

type updateTaskBody struct {
	Name       *string `json:"name"`
	Status     *bool   `json:"status"`
	CategoryID *uint   `json:"category_id"`
}

func (h TaskController) List(c *gin.Context) {
	tasks, err := h.Tasks.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, msgInternal, err)
		return
	}
	list(c, tasks)
}

func (h TaskController) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	task, err := h.Tasks.GetByID(c.Request.Context(), id)
	if err != nil {
		h.lookupFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Create stores a new task. An unknown category_id is not rejected up front:
// the task is built without a category and fails validation instead.
func (h TaskController) Create(c *gin.Context) {
	var body createTaskBody
	if err := c.ShouldBindJSON(&body); err != nil {
		message(c, http.StatusBadRequest, msgMissing)
		return
	}
	ctx := c.Request.Context()

	category, err := h.Categories.Lookup(ctx, *body.CategoryID)
	if err != nil {
		fail(c, http.StatusInternalServerError, msgInternal, err)
		return
	}

	status := false
	if body.Status != nil {
		status = *body.Status
	}
	task := models.NewTask(*body.Name, category, status)
	if !task.IsValid() {
		message(c, http.StatusInternalServerError, "Error saving task")
		return
	}
	if err := h.Tasks.Create(ctx, task); err != nil {
		h.writeFailed(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// Update applies only the fields present in the body and keeps the rest.
func (h TaskController) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var body updateTaskBody
	if err := c.ShouldBindJSON(&body); err != nil {
		message(c, http.StatusBadRequest, msgMissing)
		return
	}
	ctx := c.Request.Context()

	task, err := h.Tasks.GetByID(ctx, id)
	if err != nil {
		h.lookupFailed(c, err)
		return
	}

	if body.Name != nil {
		task.Name = *body.Name
	}
	if body.Status != nil {
		task.Status = *body.Status
	}
	if body.CategoryID != nil {
		category, err := h.Categories.Lookup(ctx, *body.CategoryID)
		if err != nil {
			fail(c, http.StatusInternalServerError, msgInternal, err)
			return
		}
		if category != nil {
			task.SetCategory(category)
		}
	}

	if !task.IsValid() {
		message(c, http.StatusInternalServerError, "Error updating task")
		return
	}
	if err := h.Tasks.Save(ctx, task); err != nil {
		h.writeFailed(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h TaskController) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	task, err := h.Tasks.GetByID(ctx, id)
	if err != nil {
		h.lookupFailed(c, err)
		return
	}
	if err := h.Tasks.Delete(ctx, task); err != nil {
		h.lookupFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h TaskController) DeleteAll(c *gin.Context) {
	deleted, err := h.Tasks.DeleteAll(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, msgInternal, err)
		return
	}
	list(c, deleted)
}

func (h TaskController) lookupFailed(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		message(c, http.StatusNotFound, msgNotFound)
		return
	}
	fail(c, http.StatusInternalServerError, msgInternal, err)
}

func (h TaskController) writeFailed(c *gin.Context, err error) {
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
