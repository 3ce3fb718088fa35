package policy

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	groups := r.Group("/leave-groups")
	{
		groups.POST("", handler.CreateGroup)
	}

	policies := r.Group("/leave-policies")
	{
		policies.GET("", handler.ListPolicies)
		policies.GET("/:id", handler.GetPolicy)
		policies.POST("", handler.CreatePolicy)
		policies.POST("/allowed-types", handler.AllowNextType)
	}
}
