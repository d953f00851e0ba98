package service

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"subfuse/config"
	"subfuse/internal/dto"
	"subfuse/internal/storage"
	"subfuse/internal/types"
	"subfuse/log"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartCaptionTask 校验请求、登记任务并异步执行处理流程
func (s Service) StartCaptionTask(req dto.StartCaptionTaskReq) (string, error) {
	if _, err := os.Stat(req.VideoPath); err != nil {
		return "", fmt.Errorf("StartCaptionTask video file err: %w", err)
	}
	originLanguage := types.StandardLanguageCode(req.OriginLanguage)
	targetLanguage := types.StandardLanguageCode(req.TargetLang)
	if !types.IsSupportedLanguage(originLanguage) {
		return "", fmt.Errorf("StartCaptionTask unsupported origin language: %s", req.OriginLanguage)
	}
	if !types.IsSupportedLanguage(targetLanguage) {
		return "", fmt.Errorf("StartCaptionTask unsupported target language: %s", req.TargetLang)
	}

	style := styleFromRequest(req)
	if err := style.Validate(); err != nil {
		return "", fmt.Errorf("StartCaptionTask style err: %w", err)
	}

	taskId := strings.ReplaceAll(uuid.New().String(), "-", "")
	storage.SaveCaptionTask(types.CaptionTask{
		TaskId:         taskId,
		VideoPath:      req.VideoPath,
		OriginLanguage: originLanguage,
		TargetLanguage: targetLanguage,
		Status:         types.CaptionTaskStatusProcessing,
	})

	stepParam := &types.CaptionTaskStepParam{
		TaskId:         taskId,
		VideoPath:      req.VideoPath,
		OriginLanguage: originLanguage,
		TargetLanguage: targetLanguage,
		Style:          style,
	}

	// 烧录可能持续数分钟，放后台goroutine执行，请求立刻返回任务号
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.GetLogger().Error("processCaptionTask panic recovered",
					zap.Any("panic", r), zap.String("stack", string(debug.Stack())))
				failCaptionTask(taskId, fmt.Sprintf("internal error: %v", r))
			}
		}()
		if err := s.processCaptionTask(context.Background(), stepParam); err != nil {
			failCaptionTask(taskId, err.Error())
		}
	}()

	return taskId, nil
}

func (s Service) processCaptionTask(ctx context.Context, stepParam *types.CaptionTaskStepParam) error {
	log.GetLogger().Info("processCaptionTask start", zap.String("taskId", stepParam.TaskId))

	setCaptionTaskProgress(stepParam.TaskId, 10)
	segments, err := s.Transcriber.Transcription(ctx, stepParam.VideoPath, stepParam.OriginLanguage)
	if err != nil {
		log.GetLogger().Error("processCaptionTask transcription err", zap.String("taskId", stepParam.TaskId), zap.Error(err))
		return fmt.Errorf("processCaptionTask transcription err: %w", err)
	}
	if len(segments) == 0 {
		return fmt.Errorf("processCaptionTask no segments produced for %s", stepParam.VideoPath)
	}
	stepParam.Segments = segments
	setCaptionTaskProgress(stepParam.TaskId, 30)

	if err = s.translateSegments(ctx, stepParam); err != nil {
		return fmt.Errorf("processCaptionTask translate err: %w", err)
	}
	setCaptionTaskProgress(stepParam.TaskId, 70)

	result := s.Pipeline.Run(ctx, stepParam.VideoPath, stepParam.Segments, stepParam.Style)
	if !result.Success {
		log.GetLogger().Error("processCaptionTask burn pipeline failed",
			zap.String("taskId", stepParam.TaskId), zap.String("message", result.Message))
		return fmt.Errorf("processCaptionTask burn err: %s", result.Message)
	}
	stepParam.ResultFilePath = result.OutputPath

	// 发布下载链接，产物归调用方所有
	storage.UpdateCaptionTask(stepParam.TaskId, func(task *types.CaptionTask) {
		task.DownloadUrl = "/api/file/" + result.OutputPath
		task.Status = types.CaptionTaskStatusSuccess
		task.ProcessPct = 100
	})

	log.GetLogger().Info("processCaptionTask end",
		zap.String("taskId", stepParam.TaskId), zap.String("output", result.OutputPath))
	return nil
}

func setCaptionTaskProgress(taskId string, pct uint8) {
	storage.UpdateCaptionTask(taskId, func(task *types.CaptionTask) {
		task.ProcessPct = pct
	})
}

func failCaptionTask(taskId, message string) {
	storage.UpdateCaptionTask(taskId, func(task *types.CaptionTask) {
		task.Status = types.CaptionTaskStatusFailed
		task.Message = message
	})
}

// styleFromRequest 请求里给了就覆盖，否则用配置的默认样式
func styleFromRequest(req dto.StartCaptionTaskReq) types.StyleOptions {
	style := types.StyleOptions{
		FontName:        config.Conf.Style.FontName,
		FontSize:        config.Conf.Style.FontSize,
		FontColor:       config.Conf.Style.FontColor,
		BackgroundColor: config.Conf.Style.BackgroundColor,
		BorderWidth:     config.Conf.Style.BorderWidth,
		BorderColor:     config.Conf.Style.BorderColor,
		MarginVertical:  config.Conf.Style.MarginVertical,
	}
	if req.FontName != "" {
		style.FontName = req.FontName
	}
	if req.FontSize > 0 {
		style.FontSize = req.FontSize
	}
	if req.FontColor != "" {
		style.FontColor = req.FontColor
	}
	if req.BackgroundColor != "" {
		style.BackgroundColor = req.BackgroundColor
	}
	if req.BorderWidth != nil {
		style.BorderWidth = *req.BorderWidth
	}
	if req.BorderColor != "" {
		style.BorderColor = req.BorderColor
	}
	if req.MarginVertical != nil {
		style.MarginVertical = *req.MarginVertical
	}
	return style
}
