package adjustment

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	adjustments := r.Group("/attendance-adjustments")
	{
		adjustments.POST("", handler.Create)
		adjustments.GET("/:id", handler.Get)
	}

	r.POST("/adjustment-approvals/:id/decision", handler.SubmitApproval)
	r.GET("/employees/:id/attendance-adjustments", handler.ListByEmployee)
	r.GET("/supervisors/:id/pending-adjustment-approvals", handler.PendingApprovalsBySupervisor)
}
