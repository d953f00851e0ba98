package deps

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"subfuse/config"
	"subfuse/internal/storage"
	"subfuse/log"
	"subfuse/pkg/ffmpeg"

	"go.uber.org/zap"
)

// CheckDependency 解析ffmpeg/ffprobe路径并用-version探测可用性，
// 结果写入storage供后续步骤使用
func CheckDependency() error {
	ffmpegPath, err := resolve("ffmpeg", config.Conf.Ffmpeg.FfmpegPath)
	if err != nil {
		return err
	}
	ffprobePath, err := resolve("ffprobe", config.Conf.Ffmpeg.FfprobePath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = ffmpeg.NewRunner(ffmpegPath).Check(ctx); err != nil {
		return fmt.Errorf("deps CheckDependency ffmpeg err: %w", err)
	}
	if err = ffmpeg.NewRunner(ffprobePath).Check(ctx); err != nil {
		return fmt.Errorf("deps CheckDependency ffprobe err: %w", err)
	}

	storage.FfmpegPath = ffmpegPath
	storage.FfprobePath = ffprobePath
	log.GetLogger().Info("deps CheckDependency ok",
		zap.String("ffmpeg", ffmpegPath), zap.String("ffprobe", ffprobePath))
	return nil
}

func resolve(name, configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s not in PATH", ffmpeg.ErrToolNotFound, name)
	}
	return path, nil
}
