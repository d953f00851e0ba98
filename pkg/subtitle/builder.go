package subtitle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"subfuse/internal/types"
	"subfuse/log"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrEmptySegments = errors.New("subtitle builder requires at least one segment")

// Builder 把有序的字幕片段序列化成SRT临时文件
// TempDir和NewID可注入，测试时不依赖进程全局目录和墙上时钟随机性
type Builder struct {
	TempDir string
	NewID   func() string
}

func NewBuilder(tempDir string) *Builder {
	return &Builder{
		TempDir: tempDir,
		NewID: func() string {
			return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
		},
	}
}

// Build 校验全部片段后写出SRT文件，返回文件路径
// 任一片段非法时直接报错，不落盘
func (b *Builder) Build(segments []types.Segment) (string, error) {
	if len(segments) == 0 {
		return "", ErrEmptySegments
	}
	for i, seg := range segments {
		if err := seg.Validate(); err != nil {
			return "", fmt.Errorf("subtitle Build segment %d: %w", i+1, err)
		}
	}

	if err := os.MkdirAll(b.TempDir, 0755); err != nil {
		return "", fmt.Errorf("subtitle Build create temp dir err: %w", err)
	}

	var sb strings.Builder
	for i, seg := range segments {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n", FormatTime(seg.Start), FormatTime(seg.End)))
		sb.WriteString(seg.Text)
		sb.WriteString("\n\n")
	}

	// 时间戳+随机后缀，并发请求下不会撞名
	fileName := fmt.Sprintf("captions_%s_%s.srt", time.Now().Format("20060102150405"), b.NewID())
	filePath := filepath.Join(b.TempDir, fileName)
	if err := os.WriteFile(filePath, []byte(sb.String()), 0644); err != nil {
		return "", fmt.Errorf("subtitle Build write srt file err: %w", err)
	}

	log.GetLogger().Debug("subtitle Build wrote srt file",
		zap.String("path", filePath), zap.Int("cues", len(segments)))
	return filePath, nil
}
