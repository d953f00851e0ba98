package types

import (
	"errors"
	"fmt"
)

// Segment 一条带时间戳的字幕内容，时间单位为秒
type Segment struct {
	Start float64
	End   float64
	Text  string
}

var ErrInvalidSegment = errors.New("invalid segment timing")

// Validate 校验时间戳合法性，防止生成负时长的字幕块
func (s Segment) Validate() error {
	if s.Start < 0 {
		return fmt.Errorf("%w: start %.3f < 0", ErrInvalidSegment, s.Start)
	}
	if s.End <= s.Start {
		return fmt.Errorf("%w: end %.3f <= start %.3f", ErrInvalidSegment, s.End, s.Start)
	}
	return nil
}

// StyleOptions 烧录字幕时的样式，颜色为RGB十六进制（可带alpha）
type StyleOptions struct {
	FontName        string
	FontSize        int
	FontColor       string
	BackgroundColor string
	BorderWidth     int
	BorderColor     string
	MarginVertical  int
}

func (o StyleOptions) Validate() error {
	if o.FontSize <= 0 {
		return fmt.Errorf("style font size must be positive, got %d", o.FontSize)
	}
	if o.BorderWidth < 0 {
		return fmt.Errorf("style border width must be non-negative, got %d", o.BorderWidth)
	}
	if o.MarginVertical < 0 {
		return fmt.Errorf("style vertical margin must be non-negative, got %d", o.MarginVertical)
	}
	return nil
}

// RenderResult 单次烧录的结果，OutputPath仅在成功时有值
type RenderResult struct {
	Success    bool
	Message    string
	OutputPath string
}
