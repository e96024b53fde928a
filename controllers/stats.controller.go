package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports the database connection status.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	dbStatus := "connected"
	if ctrl.DB == nil || ctrl.DB.Client().Ping(ctx, nil) != nil {
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"timestamp": time.Now().Unix(),
	})
}

// GetStats returns the dashboard counters (admin only).
func (ctrl *Controller) GetStats(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	stats, err := ctrl.Stats.Collect(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
