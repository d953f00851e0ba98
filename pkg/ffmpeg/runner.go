package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// ErrToolNotFound 外部渲染器无法调用时的快速失败错误
var ErrToolNotFound = errors.New("ffmpeg tool not found")

// Runner 外部进程封装：启动、捕获stdout/stderr、带超时等待、超时强杀
type Runner struct {
	binary  string
	timeout time.Duration
}

type RunnerOption func(*Runner)

// WithTimeout 单次调用的最长执行时间，0表示不限制
func WithTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.timeout = d
	}
}

func NewRunner(binary string, opts ...RunnerOption) *Runner {
	r := &Runner{binary: binary}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Check 用-version探测二进制是否可调用
func (r *Runner) Check(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, r.binary, "-version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrToolNotFound, r.binary, err)
	}
	return nil
}

// Run 同步执行到结束，返回两路输出。ffmpeg在成功时也会往stderr写
// 进度信息，调用方不能把stderr非空当作失败
func (r *Runner) Run(ctx context.Context, args ...string) (string, string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		// CommandContext 已经kill了子进程
		return stdout.String(), stderr.String(), fmt.Errorf("%s run aborted: %w", r.binary, ctx.Err())
	}
	if err != nil {
		return stdout.String(), stderr.String(), fmt.Errorf("%s run err: %w", r.binary, err)
	}
	return stdout.String(), stderr.String(), nil
}
