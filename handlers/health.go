package handlers

import (
	"net/http"

	"dinebot/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest health snapshot of Mongo and Redis.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
