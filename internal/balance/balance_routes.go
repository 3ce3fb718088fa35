package balance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/employees/:id/balance", handler.GetEmployeeBalance)
	r.GET("/supervisors/:id/team-balance", handler.GetTeamBalance)
	r.GET("/balances", handler.GetAllBalances)
}
