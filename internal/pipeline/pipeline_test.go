package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"subfuse/internal/types"
	"subfuse/pkg/ffmpeg"
	"subfuse/pkg/subtitle"
)

const stubRenderOk = `#!/bin/sh
if [ "$1" = "-version" ]; then exit 0; fi
for last; do :; done
printf 'rendered' > "$last"
`

const stubRenderNoOutput = `#!/bin/sh
exit 0
`

func writeStub(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-ffmpeg")
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func newTestPipeline(t *testing.T, rendererScript string) (*BurnPipeline, string) {
	t.Helper()
	tempDir := t.TempDir()
	builder := subtitle.NewBuilder(tempDir)
	invoker := ffmpeg.NewInvoker(ffmpeg.NewRunner(writeStub(t, rendererScript)))
	return NewBurnPipeline(builder, invoker), tempDir
}

func testSegments() []types.Segment {
	return []types.Segment{
		{Start: 0, End: 2, Text: "hello"},
		{Start: 2, End: 4.5, Text: "world"},
	}
}

func testStyle() types.StyleOptions {
	return types.StyleOptions{
		FontName:        "Arial",
		FontSize:        18,
		FontColor:       "#FFFFFF",
		BackgroundColor: "#000000",
		BorderWidth:     1,
		BorderColor:     "#000000",
		MarginVertical:  16,
	}
}

func assertTempDirEmpty(t *testing.T, tempDir string) {
	t.Helper()
	entries, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("read temp dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("srt temp file survived pipeline return: %d entries", len(entries))
	}
}

func Test_Run_Success(t *testing.T) {
	p, tempDir := newTestPipeline(t, stubRenderOk)
	video := filepath.Join(t.TempDir(), "clip.mp4")

	result := p.Run(context.Background(), video, testSegments(), testStyle())
	if !result.Success {
		t.Fatalf("Run() failed: %s", result.Message)
	}
	info, err := os.Stat(result.OutputPath)
	if err != nil || info.Size() == 0 {
		t.Fatalf("output artifact missing or empty: %v", err)
	}
	if !strings.Contains(result.OutputPath, "_sub_") {
		t.Errorf("output path %s missing derivation suffix", result.OutputPath)
	}
	assertTempDirEmpty(t, tempDir)
}

func Test_Run_RenderProducedNothing(t *testing.T) {
	p, tempDir := newTestPipeline(t, stubRenderNoOutput)
	video := filepath.Join(t.TempDir(), "clip.mp4")

	result := p.Run(context.Background(), video, testSegments(), testStyle())
	if result.Success {
		t.Fatal("Run() reported success although renderer produced no output")
	}
	if !strings.HasPrefix(result.Message, "render failure") {
		t.Errorf("message = %q, want render failure classification", result.Message)
	}
	if result.OutputPath != "" {
		t.Errorf("OutputPath = %q, want empty on failure", result.OutputPath)
	}
	assertTempDirEmpty(t, tempDir)
}

func Test_Run_InvalidSegments(t *testing.T) {
	p, tempDir := newTestPipeline(t, stubRenderOk)

	result := p.Run(context.Background(), "/tmp/clip.mp4", []types.Segment{
		{Start: 3, End: 1, Text: "backwards"},
	}, testStyle())
	if result.Success {
		t.Fatal("Run() reported success for invalid segment timing")
	}
	if !strings.HasPrefix(result.Message, "validation error") {
		t.Errorf("message = %q, want validation error classification", result.Message)
	}
	assertTempDirEmpty(t, tempDir)
}

func Test_Run_ToolNotFound(t *testing.T) {
	tempDir := t.TempDir()
	builder := subtitle.NewBuilder(tempDir)
	invoker := ffmpeg.NewInvoker(ffmpeg.NewRunner(filepath.Join(t.TempDir(), "no-such-ffmpeg")))
	p := NewBurnPipeline(builder, invoker)

	result := p.Run(context.Background(), "/tmp/clip.mp4", testSegments(), testStyle())
	if result.Success {
		t.Fatal("Run() reported success although renderer binary is missing")
	}
	if !strings.HasPrefix(result.Message, "tool not found") {
		t.Errorf("message = %q, want tool not found classification", result.Message)
	}
	assertTempDirEmpty(t, tempDir)
}

func Test_Run_ConcurrentInvocations(t *testing.T) {
	p, tempDir := newTestPipeline(t, stubRenderOk)
	videoDir := t.TempDir()

	const n = 4
	results := make([]types.RenderResult, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			video := filepath.Join(videoDir, "clip"+string(rune('a'+i))+".mp4")
			results[i] = p.Run(context.Background(), video, testSegments(), testStyle())
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for i, result := range results {
		if !result.Success {
			t.Errorf("invocation %d failed: %s", i, result.Message)
			continue
		}
		if seen[result.OutputPath] {
			t.Errorf("output path collision: %s", result.OutputPath)
		}
		seen[result.OutputPath] = true
	}
	assertTempDirEmpty(t, tempDir)
}
