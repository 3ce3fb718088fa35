package calendar

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	holidays := r.Group("/holidays")
	{
		holidays.GET("", handler.ListHolidays)
		holidays.POST("", handler.CreateHoliday)
		holidays.DELETE("/:id", handler.DeleteHoliday)
	}

	config := r.Group("/config")
	{
		config.PUT("/leave-reset", handler.SetLeaveReset)
		config.GET("/cutoff", handler.GetCutOff)
		config.PUT("/cutoff", handler.SetCutOff)
	}
}
