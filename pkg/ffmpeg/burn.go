package ffmpeg

import (
	"context"
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

var (
	ErrRenderFailed = errors.New("render produced no valid output")
	ErrUnsafePath   = errors.New("path contains quote or control characters")
)

// Invoker 驱动ffmpeg把字幕烧录进视频
// 进程退出码为0不代表成功，以产物存在且非空为准
type Invoker struct {
	runner    *Runner
	preset    string
	crf       int
	outputDir string
	newID     func() string
}

type InvokerOption func(*Invoker)

func WithPreset(preset string) InvokerOption {
	return func(iv *Invoker) {
		if preset != "" {
			iv.preset = preset
		}
	}
}

func WithCrf(crf int) InvokerOption {
	return func(iv *Invoker) {
		if crf > 0 {
			iv.crf = crf
		}
	}
}

// WithOutputDir 指定产物目录，不指定时产物落在源视频旁边
func WithOutputDir(dir string) InvokerOption {
	return func(iv *Invoker) {
		if dir != "" {
			iv.outputDir = dir
		}
	}
}

func WithIDGenerator(newID func() string) InvokerOption {
	return func(iv *Invoker) {
		if newID != nil {
			iv.newID = newID
		}
	}
}

func NewInvoker(runner *Runner, opts ...InvokerOption) *Invoker {
	iv := &Invoker{
		runner: runner,
		preset: "medium",
		crf:    23,
		newID: func() string {
			return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
		},
	}
	for _, opt := range opts {
		opt(iv)
	}
	return iv
}

// DeriveOutputPath 在扩展名前插入固定后缀+时间戳+随机token，
// 保证与源文件和并发调用互不冲突。配置了产物目录时落到产物目录，
// 否则落在源视频旁边
func (iv *Invoker) DeriveOutputPath(videoPath string) string {
	ext := filepath.Ext(videoPath)
	base := strings.TrimSuffix(filepath.Base(videoPath), ext)
	name := fmt.Sprintf("%s_sub_%s_%s%s", base, time.Now().Format("20060102150405"), iv.newID(), ext)
	dir := iv.outputDir
	if dir == "" {
		dir = filepath.Dir(videoPath)
	}
	return filepath.Join(dir, name)
}

// Burn 执行烧录：探测二进制可用后构建单条ffmpeg命令并同步执行，
// 音频流直接copy，视频流按固定质量参数重编码，覆盖已存在的输出文件
func (iv *Invoker) Burn(ctx context.Context, videoPath, srtPath, outputPath string, style types.StyleOptions) error {
	for _, p := range []string{videoPath, srtPath, outputPath} {
		if err := validatePath(p); err != nil {
			return err
		}
	}
	if err := validateStyleValue(style.FontName); err != nil {
		return fmt.Errorf("font name: %w", err)
	}
	if err := style.Validate(); err != nil {
		return err
	}

	if err := iv.runner.Check(ctx); err != nil {
		return err
	}

	forceStyle, err := buildForceStyle(style)
	if err != nil {
		return err
	}
	filter := fmt.Sprintf("subtitles='%s':force_style='%s'", escapeFilterPath(srtPath), forceStyle)

	stdout, stderr, err := iv.runner.Run(ctx,
		"-y",
		"-i", videoPath,
		"-vf", filter,
		"-c:a", "copy",
		"-c:v", "libx264",
		"-preset", iv.preset,
		"-crf", fmt.Sprintf("%d", iv.crf),
		outputPath,
	)
	if err != nil {
		log.GetLogger().Error("ffmpeg Burn run err",
			zap.String("video", videoPath), zap.String("stderr", tail(stderr, 2048)), zap.Error(err))
		return fmt.Errorf("%w: %v, stderr: %s", ErrRenderFailed, err, tail(stderr, 2048))
	}

	info, statErr := os.Stat(outputPath)
	if statErr != nil || info.Size() == 0 {
		log.GetLogger().Error("ffmpeg Burn output missing or empty",
			zap.String("output", outputPath), zap.String("stdout", tail(stdout, 512)), zap.String("stderr", tail(stderr, 2048)))
		return fmt.Errorf("%w: output %s missing or empty, stderr: %s", ErrRenderFailed, outputPath, tail(stderr, 2048))
	}
	return nil
}

// buildForceStyle 组装libass的force_style键值串，颜色转为BGR序
func buildForceStyle(style types.StyleOptions) (string, error) {
	primary, err := ToASSColor(style.FontColor)
	if err != nil {
		return "", fmt.Errorf("font color: %w", err)
	}
	back, err := ToASSColor(style.BackgroundColor)
	if err != nil {
		return "", fmt.Errorf("background color: %w", err)
	}
	outline, err := ToASSColor(style.BorderColor)
	if err != nil {
		return "", fmt.Errorf("border color: %w", err)
	}
	return fmt.Sprintf("FontName=%s,FontSize=%d,PrimaryColour=%s,BackColour=%s,BorderWidth=%d,OutlineColour=%s,MarginV=%d",
		style.FontName, style.FontSize, primary, back, style.BorderWidth, outline, style.MarginVertical), nil
}

// validatePath 路径里出现引号或控制字符时直接拒绝，
// 不做尽力而为的转义
func validatePath(p string) error {
	if p == "" {
		return fmt.Errorf("%w: empty path", ErrUnsafePath)
	}
	for _, c := range p {
		if c == '\'' || c == '"' || c == '`' || c < 0x20 {
			return fmt.Errorf("%w: %q", ErrUnsafePath, p)
		}
	}
	return nil
}

func validateStyleValue(v string) error {
	for _, c := range v {
		if c == '\'' || c == '"' || c == ',' || c < 0x20 {
			return fmt.Errorf("%w: %q", ErrUnsafePath, v)
		}
	}
	return nil
}

// escapeFilterPath 转义ffmpeg滤镜语法里的特殊字符
// 引号已由validatePath挡掉，这里只处理分隔符
func escapeFilterPath(p string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`:`, `\:`,
		`,`, `\,`,
		`[`, `\[`,
		`]`, `\]`,
	)
	return replacer.Replace(p)
}

func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
