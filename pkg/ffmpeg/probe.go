package ffmpeg

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// GetMediaDuration 用ffprobe读取媒体时长（秒）
func GetMediaDuration(ctx context.Context, ffprobe *Runner, mediaFile string) (float64, error) {
	if err := validatePath(mediaFile); err != nil {
		return 0, err
	}
	stdout, stderr, err := ffprobe.Run(ctx,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		mediaFile,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration err: %w, stderr: %s", err, strings.TrimSpace(stderr))
	}
	duration, err := strconv.ParseFloat(strings.TrimSpace(stdout), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration parse %q err: %w", strings.TrimSpace(stdout), err)
	}
	return duration, nil
}
