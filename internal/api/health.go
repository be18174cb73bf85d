package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports liveness. It does not check the upstream API.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
