package leave

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	requests := r.Group("/leave-requests")
	{
		requests.GET("", handler.ListRequests)
		requests.POST("", handler.CreateRequest)
		requests.GET("/:id", handler.GetRequest)
		requests.GET("/:id/approvals", handler.ListApprovals)
	}

	r.POST("/leave-approvals/:id/decision", handler.SubmitApproval)
	r.GET("/employees/:id/leave-requests", handler.ListRequestsByEmployee)
	r.GET("/supervisors/:id/pending-approvals", handler.PendingApprovalsBySupervisor)
}
