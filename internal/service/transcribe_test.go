package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"subfuse/internal/types"
	"subfuse/pkg/ffmpeg"
)

// 假的ffprobe，固定输出12.5秒时长
const stubProbe = `#!/bin/sh
echo 12.5
`

func stubProbeRunner(t *testing.T) *ffmpeg.Runner {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-ffprobe")
	if err := os.WriteFile(path, []byte(stubProbe), 0755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return ffmpeg.NewRunner(path)
}

func Test_SimulatedTranscription(t *testing.T) {
	transcriber := NewSimulatedTranscriber(stubProbeRunner(t), 4, 0.5)

	segments, err := transcriber.Transcription(context.Background(), "/tmp/clip.mp4", types.LanguageCodeEnglish)
	if err != nil {
		t.Fatalf("Transcription() error = %v", err)
	}
	// 12.5秒、每条4秒、间隔0.5秒 => [0,4] [4.5,8.5] [9,12.5]
	if len(segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(segments))
	}

	lastStart := -1.0
	for i, seg := range segments {
		if seg.End <= seg.Start {
			t.Errorf("segment %d has end %.3f <= start %.3f", i, seg.End, seg.Start)
		}
		if seg.Start < lastStart {
			t.Errorf("segment %d start %.3f not monotonic", i, seg.Start)
		}
		if seg.Text == "" {
			t.Errorf("segment %d has empty text", i)
		}
		lastStart = seg.Start
	}
	if last := segments[len(segments)-1]; last.End > 12.5 {
		t.Errorf("last segment end %.3f exceeds media duration", last.End)
	}
}

func Test_SimulatedTranscription_ProbeFailure(t *testing.T) {
	transcriber := NewSimulatedTranscriber(ffmpeg.NewRunner(filepath.Join(t.TempDir(), "no-such-ffprobe")), 4, 0.5)
	if _, err := transcriber.Transcription(context.Background(), "/tmp/clip.mp4", types.LanguageCodeEnglish); err == nil {
		t.Fatal("Transcription() expected error when ffprobe is unavailable")
	}
}
