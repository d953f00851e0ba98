package subtitle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"subfuse/internal/types"
)

func Test_FormatTime(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00,000"},
		{59.999, "00:00:59,999"},
		{65.5, "00:01:05,500"},
		{3600, "01:00:00,000"},
		{3661.001, "01:01:01,001"},
		{7322.25, "02:02:02,250"},
	}
	for _, c := range cases {
		if got := FormatTime(c.seconds); got != c.want {
			t.Errorf("FormatTime(%v) = %s, want %s", c.seconds, got, c.want)
		}
	}
}

func Test_Build(t *testing.T) {
	builder := NewBuilder(t.TempDir())
	segments := []types.Segment{
		{Start: 0, End: 2.5, Text: "first line"},
		{Start: 2.5, End: 5, Text: "second line"},
		{Start: 65, End: 65.5, Text: "third line"},
	}

	path, err := builder.Build(segments)
	if err != nil {
		t.Fatalf("Build() error = %v, want nil", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read built file: %v", err)
	}

	blocks := strings.Split(strings.TrimRight(string(content), "\n"), "\n\n")
	if len(blocks) != len(segments) {
		t.Fatalf("got %d cues, want %d", len(blocks), len(segments))
	}
	for i, block := range blocks {
		lines := strings.Split(block, "\n")
		if lines[0] != fmt.Sprintf("%d", i+1) {
			t.Errorf("cue %d index line = %q", i, lines[0])
		}
		if !strings.Contains(lines[1], " --> ") {
			t.Errorf("cue %d missing time range: %q", i, lines[1])
		}
		if lines[2] != segments[i].Text {
			t.Errorf("cue %d text = %q, want %q", i, lines[2], segments[i].Text)
		}
	}
	if !strings.Contains(string(content), "00:01:05,000 --> 00:01:05,500") {
		t.Errorf("time range formatting wrong:\n%s", content)
	}
}

func Test_Build_InvalidSegment(t *testing.T) {
	dir := t.TempDir()
	builder := NewBuilder(dir)

	_, err := builder.Build([]types.Segment{
		{Start: 0, End: 1, Text: "ok"},
		{Start: 5, End: 5, Text: "zero duration"},
	})
	if !errors.Is(err, types.ErrInvalidSegment) {
		t.Fatalf("Build() error = %v, want ErrInvalidSegment", err)
	}

	// 校验失败不能留下半截文件
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("temp dir not empty after validation failure: %d entries", len(entries))
	}

	if _, err = builder.Build(nil); !errors.Is(err, ErrEmptySegments) {
		t.Errorf("Build(nil) error = %v, want ErrEmptySegments", err)
	}
}

func Test_Build_ConcurrentUniqueNames(t *testing.T) {
	dir := t.TempDir()
	builder := NewBuilder(dir)
	segments := []types.Segment{{Start: 0, End: 1, Text: "x"}}

	const n = 8
	paths := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := builder.Build(segments)
			if err != nil {
				t.Errorf("Build() error = %v", err)
				return
			}
			paths[i] = p
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, p := range paths {
		if p == "" {
			continue
		}
		if seen[p] {
			t.Errorf("duplicate file path %s", p)
		}
		seen[p] = true
		if filepath.Dir(p) != dir {
			t.Errorf("file %s outside temp dir %s", p, dir)
		}
	}
}

func Test_Build_InjectedIDGenerator(t *testing.T) {
	builder := NewBuilder(t.TempDir())
	builder.NewID = func() string { return "fixed123" }

	path, err := builder.Build([]types.Segment{{Start: 0, End: 1, Text: "x"}})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !strings.HasSuffix(path, "_fixed123.srt") {
		t.Errorf("path %s does not use injected id generator", path)
	}
}
