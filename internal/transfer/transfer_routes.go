package transfer

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/employees/:id/leave-transfers", handler.ListForEmployee)
}
