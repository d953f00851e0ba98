package types

import "context"

// Transcriber 把一个视频/音频文件转成带时间戳的字幕片段
// 当前实现为模拟转录（根据时长推算），接口与真实后端保持一致以便替换
type Transcriber interface {
	Transcription(ctx context.Context, mediaFile string, language StandardLanguageCode) ([]Segment, error)
}
