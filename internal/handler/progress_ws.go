package handler

import (
	"net/http"
	"time"

	"subfuse/internal/storage"
	"subfuse/internal/types"
	"subfuse/log"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CaptionTaskProgressWS 建立websocket连接，周期性推送任务进度，
// 任务结束（成功或失败）时推送最终状态后关闭
func (h Handler) CaptionTaskProgressWS(c *gin.Context) {
	taskId := c.Query("taskId")
	if _, ok := storage.GetCaptionTask(taskId); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": -1, "msg": "task not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.GetLogger().Error("CaptionTaskProgressWS upgrade err", zap.String("taskId", taskId), zap.Error(err))
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		task, ok := storage.GetCaptionTask(taskId)
		if !ok {
			return
		}
		if err = conn.WriteJSON(taskStatusData(task)); err != nil {
			log.GetLogger().Debug("CaptionTaskProgressWS write err, client gone",
				zap.String("taskId", taskId), zap.Error(err))
			return
		}
		if task.Status != types.CaptionTaskStatusProcessing {
			return
		}
	}
}
