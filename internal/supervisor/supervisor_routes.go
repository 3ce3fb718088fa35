package supervisor

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	links := r.Group("/supervisor-links")
	{
		links.POST("", handler.CreateLink)
		links.DELETE("/:id", handler.DeleteLink)
	}

	r.GET("/employees/:id/supervisors", handler.ChainForEmployee)
}
