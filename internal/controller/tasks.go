package controller

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"taskledger/internal/config"
	"taskledger/internal/eventlog"
	"taskledger/internal/models"
	"taskledger/internal/projection"
	"taskledger/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Controller holds the HTTP handlers and their dependencies. Writes append
// exactly one event to the log; reads replay the full log into a fresh
// projection.
type Controller struct {
	store   *eventlog.Store
	cfg     *config.Config
	started time.Time
	group   singleflight.Group
}

// New wires the controller with its event log store and configuration.
func New(store *eventlog.Store, cfg *config.Config) *Controller {
	return &Controller{
		store:   store,
		cfg:     cfg,
		started: time.Now(),
	}
}

// GetTasks replays the log and returns the current task set. Concurrent
// identical reads share one replay; each flight is still a full rebuild, so
// nothing is cached across requests.
func (ct *Controller) GetTasks(c *gin.Context) {
	ctx := c.Request.Context()
	v, err, _ := ct.group.Do("tasks", func() (interface{}, error) {
		// the flight's result is shared, so it must not die with one caller
		return projection.Tasks(context.Background(), ct.store)
	})
	if err != nil {
		logger.Error(ctx, "GetTasks replay failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to load tasks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "tasks": v.([]models.Task)})
}

// CreateTask validates the body and appends one create event.
func (ct *Controller) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()
	var body struct {
		Name        string `json:"name"`
		Date        string `json:"date"`
		Time        string `json:"time"`
		Description string `json:"description"`
		Priority    bool   `json:"priority"`
	}
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request body."})
		return
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Name is required."})
		return
	}
	task := models.Task{
		ID:          uuid.New().String(),
		Name:        name,
		Date:        body.Date,
		Time:        body.Time,
		Description: body.Description,
		Priority:    body.Priority,
	}
	// Priority tasks are exempt from scheduling and never carry a date/time.
	if task.Priority {
		task.Date = ""
		task.Time = ""
	}
	if err := ct.store.Append(ctx, models.NewCreateEvent(task)); err != nil {
		if errors.Is(err, eventlog.ErrEventTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Task is too large."})
			return
		}
		logger.Error(ctx, "CreateTask append failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to save task"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": task.ID})
}

// DeleteTask appends one delete event. Deleting an unknown id is a success:
// the projection simply ignores the event. A request with no id in the path
// never reaches this handler; the router answers it with the API 404.
func (ct *Controller) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if err := ct.store.Append(ctx, models.NewDeleteEvent(id)); err != nil {
		logger.Error(ctx, "DeleteTask append failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to delete task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
