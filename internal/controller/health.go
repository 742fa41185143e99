package controller

import (
	"net/http"
	"time"

	"taskledger/internal/projection"
	"taskledger/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Health reports process liveness. Used by load balancers and probes.
func (ct *Controller) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "OK",
		"uptime":      time.Since(ct.started).Seconds(),
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"version":     ct.cfg.Version,
		"environment": ct.cfg.Environment,
	})
}

// Metrics computes task counters from a fresh replay of the log.
func (ct *Controller) Metrics(c *gin.Context) {
	ctx := c.Request.Context()
	tasks, err := projection.Tasks(ctx, ct.store)
	if err != nil {
		logger.Error(ctx, "Metrics replay failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute metrics"})
		return
	}
	var priority, withDates, withDescriptions int
	for _, t := range tasks {
		if t.Priority {
			priority++
		}
		if t.Date != "" {
			withDates++
		}
		if t.Description != "" {
			withDescriptions++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"total_tasks":             len(tasks),
		"priority_tasks":          priority,
		"regular_tasks":           len(tasks) - priority,
		"tasks_with_dates":        withDates,
		"tasks_with_descriptions": withDescriptions,
		"server_timestamp":        time.Now().UTC().Format(time.RFC3339),
		"server_uptime":           time.Since(ct.started).Seconds(),
	})
}
