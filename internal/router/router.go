package router

import (
	"subfuse/internal/handler"

	"github.com/gin-gonic/gin"
)

func SetupRouter(r *gin.Engine) {
	api := r.Group("/api")

	hdl := handler.NewHandler()
	{
		api.POST("/capability/captionTask", hdl.StartCaptionTask)
		api.GET("/capability/captionTask", hdl.GetCaptionTask)
		api.GET("/capability/captionTask/progress", hdl.CaptionTaskProgressWS)
		api.POST("/file", hdl.UploadFile)
		api.GET("/file/*filepath", hdl.DownloadFile)
	}
}
