package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"subfuse/internal/types"
	"subfuse/log"
	"subfuse/pkg/ffmpeg"
	"subfuse/pkg/subtitle"

	"go.uber.org/zap"
)

// BurnPipeline 字幕烧录流水线：片段 → SRT临时文件 → ffmpeg烧录 → 产物校验
// 无共享可变状态，多次调用可并发执行；每一步最多执行一次，不内部重试
type BurnPipeline struct {
	builder *subtitle.Builder
	invoker *ffmpeg.Invoker
}

func NewBurnPipeline(builder *subtitle.Builder, invoker *ffmpeg.Invoker) *BurnPipeline {
	return &BurnPipeline{
		builder: builder,
		invoker: invoker,
	}
}

// Run 同步执行整个烧录流程，任何结果都以结构化RenderResult返回
// SRT临时文件无论成败都会在返回前删除
func (p *BurnPipeline) Run(ctx context.Context, videoPath string, segments []types.Segment, style types.StyleOptions) types.RenderResult {
	srtPath, err := p.builder.Build(segments)
	if err != nil {
		return failure(classify(err), err)
	}
	defer func() {
		// 清理失败只记日志，不覆盖原始错误
		if removeErr := os.Remove(srtPath); removeErr != nil {
			log.GetLogger().Warn("burn pipeline cleanup srt file failed",
				zap.String("path", srtPath), zap.Error(removeErr))
		}
	}()

	outputPath := p.invoker.DeriveOutputPath(videoPath)
	if err = p.invoker.Burn(ctx, videoPath, srtPath, outputPath, style); err != nil {
		return failure(classify(err), err)
	}

	return types.RenderResult{
		Success:    true,
		Message:    "ok",
		OutputPath: outputPath,
	}
}

func failure(kind string, err error) types.RenderResult {
	return types.RenderResult{
		Success: false,
		Message: fmt.Sprintf("%s: %v", kind, err),
	}
}

// classify 按错误分类打标，方便调用方直接展示给用户
func classify(err error) string {
	switch {
	case errors.Is(err, ffmpeg.ErrToolNotFound):
		return "tool not found"
	case errors.Is(err, types.ErrInvalidSegment),
		errors.Is(err, ffmpeg.ErrUnsafePath),
		errors.Is(err, subtitle.ErrEmptySegments):
		return "validation error"
	case errors.Is(err, ffmpeg.ErrRenderFailed):
		return "render failure"
	default:
		return "io error"
	}
}
