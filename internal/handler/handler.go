package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"subfuse/config"
	"subfuse/internal/dto"
	"subfuse/internal/service"
	"subfuse/internal/storage"
	"subfuse/internal/types"
	"subfuse/log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Service *service.Service
}

func NewHandler() *Handler {
	return &Handler{
		Service: service.NewService(),
	}
}

func (h Handler) StartCaptionTask(c *gin.Context) {
	var req dto.StartCaptionTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.StartCaptionTaskRes{
			Error: -1,
			Msg:   "invalid request: " + err.Error(),
		})
		return
	}

	taskId, err := h.Service.StartCaptionTask(req)
	if err != nil {
		log.GetLogger().Error("StartCaptionTask err", zap.Any("req", req), zap.Error(err))
		c.JSON(http.StatusOK, dto.StartCaptionTaskRes{
			Error: -1,
			Msg:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.StartCaptionTaskRes{
		Error: 0,
		Msg:   "ok",
		Data:  &dto.StartCaptionTaskResData{TaskId: taskId},
	})
}

func (h Handler) GetCaptionTask(c *gin.Context) {
	var req dto.GetCaptionTaskReq
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.GetCaptionTaskRes{
			Error: -1,
			Msg:   "invalid request: " + err.Error(),
		})
		return
	}

	task, ok := storage.GetCaptionTask(req.TaskId)
	if !ok {
		c.JSON(http.StatusNotFound, dto.GetCaptionTaskRes{
			Error: -1,
			Msg:   "task not found",
		})
		return
	}

	c.JSON(http.StatusOK, dto.GetCaptionTaskRes{
		Error: 0,
		Msg:   "ok",
		Data:  taskStatusData(task),
	})
}

func (h Handler) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.UploadFileRes{
			Error: -1,
			Msg:   "missing file: " + err.Error(),
		})
		return
	}

	// 随机前缀避免不同用户上传同名文件互相覆盖
	savedName := fmt.Sprintf("%s_%s", strings.ReplaceAll(uuid.New().String(), "-", "")[:8], filepath.Base(file.Filename))
	savedPath := filepath.Join(config.Conf.App.UploadsDir, savedName)
	if err = c.SaveUploadedFile(file, savedPath); err != nil {
		log.GetLogger().Error("UploadFile save err", zap.String("file", file.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.UploadFileRes{
			Error: -1,
			Msg:   "save file err: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.UploadFileRes{
		Error: 0,
		Msg:   "ok",
		Data:  &dto.UploadFileResData{FilePath: savedPath},
	})
}

func (h Handler) DownloadFile(c *gin.Context) {
	requestPath := c.Param("filepath")
	cleaned := filepath.Clean(strings.TrimPrefix(requestPath, "/"))
	if !isServablePath(cleaned) {
		c.JSON(http.StatusForbidden, gin.H{"error": -1, "msg": "path not allowed"})
		return
	}
	c.FileAttachment(cleaned, filepath.Base(cleaned))
}

// isServablePath 只放行上传目录和产物目录下的文件，配置等其它文件一律拒绝
func isServablePath(cleaned string) bool {
	if cleaned == "" || filepath.IsAbs(cleaned) || strings.Contains(cleaned, "..") {
		return false
	}
	for _, dir := range []string{config.Conf.App.UploadsDir, config.Conf.App.OutputDir} {
		if dir == "" {
			continue
		}
		prefix := filepath.Clean(dir) + string(filepath.Separator)
		if strings.HasPrefix(cleaned, prefix) {
			return true
		}
	}
	return false
}

func taskStatusData(task types.CaptionTask) *dto.GetCaptionTaskResData {
	return &dto.GetCaptionTaskResData{
		TaskId:         task.TaskId,
		Status:         statusText(task.Status),
		ProcessPercent: task.ProcessPct,
		Message:        task.Message,
		DownloadUrl:    task.DownloadUrl,
	}
}

func statusText(status types.CaptionTaskStatus) string {
	switch status {
	case types.CaptionTaskStatusProcessing:
		return "processing"
	case types.CaptionTaskStatusSuccess:
		return "success"
	case types.CaptionTaskStatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}
