package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoot answers GET / so clients can check the API is up.
func RegisterRoot(rg *gin.RouterGroup) {
	rg.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "hello"})
	})
}
