package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect-dev/campusconnect/db"
)

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":    "ok",
		"message":   "CampusConnect is running",
		"cloud":     db.IsRemote,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
