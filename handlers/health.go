package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"probook/utils"
)

// Health reports the latest stored backend health snapshot.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
