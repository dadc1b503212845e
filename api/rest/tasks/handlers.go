package tasks

import (
	"net/http"

	"codeberg.org/taskboard/server/internal/auth"
	"codeberg.org/taskboard/server/internal/errors"
	"codeberg.org/taskboard/server/taskboard/tasks"
	"github.com/gin-gonic/gin"
)

// Tasks inherit their project's authorization: every operation requires
// the caller to own or belong to the task's project. Callers outside
// the project get 404, so task existence is never disclosed.

// ListTasks returns the tasks of projects the caller belongs to
func ListTasks(store TaskStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		list, err := store.ListForUser(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to list tasks", err)
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

// CreateTask creates a task in a project the caller belongs to,
// defaulting status to TODO and priority to MEDIUM
func CreateTask(store TaskStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		var req tasks.CreateTaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		member, err := store.MemberOfProject(c.Request.Context(), req.ProjectID, userID)
		if err != nil {
			errors.InternalError(c, "failed to check project membership", err)
			return
		}

		if !member {
			errors.NotFound(c, "project")
			return
		}

		task, err := store.Create(c.Request.Context(), userID, req)
		if err != nil {
			errors.StorageError(c, "task", err)
			return
		}

		c.JSON(http.StatusCreated, task)
	}
}

// GetTask returns a single task by id
func GetTask(store TaskStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		task, ok := authorizedTask(c, store, userID)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, task)
	}
}

// UpdateTask applies a partial update; non-nil assignee/tag lists
// replace the stored sets
func UpdateTask(store TaskStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		var req tasks.UpdateTaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		task, ok := authorizedTask(c, store, userID)
		if !ok {
			return
		}

		updated, err := store.Update(c.Request.Context(), task.ID, req)
		if err != nil {
			errors.StorageError(c, "task", err)
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

// DeleteTask removes a task
func DeleteTask(store TaskStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		task, ok := authorizedTask(c, store, userID)
		if !ok {
			return
		}

		if err := store.Delete(c.Request.Context(), task.ID); err != nil {
			errors.StorageError(c, "task", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
	}
}

// loads the task from the path id and enforces project-level access;
// writes the error response and returns ok=false when the caller may
// not proceed
func authorizedTask(c *gin.Context, store TaskStore, userID string) (*tasks.Task, bool) {
	taskID := c.Param("id")

	task, err := store.FindByID(c.Request.Context(), taskID)
	if err != nil {
		if errors.IsNotFound(err) {
			errors.NotFound(c, "task")
			return nil, false
		}

		errors.InternalError(c, "failed to fetch task", err)
		return nil, false
	}

	member, err := store.MemberOfProject(c.Request.Context(), task.ProjectID, userID)
	if err != nil {
		errors.InternalError(c, "failed to check project membership", err)
		return nil, false
	}

	if !member {
		errors.NotFound(c, "task")
		return nil, false
	}

	return task, true
}
