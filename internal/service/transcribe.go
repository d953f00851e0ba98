package service

import (
	"context"
	"fmt"

	"subfuse/internal/types"
	"subfuse/log"
	"subfuse/pkg/ffmpeg"

	"go.uber.org/zap"
)

// SimulatedTranscriber 模拟转录器：只用ffprobe拿到真实时长，
// 再按固定节奏铺设字幕片段，文本取自内置语料。不做任何音频分析，
// 仅作为真实语音识别后端接入前的占位实现
type SimulatedTranscriber struct {
	ffprobe       *ffmpeg.Runner
	secondsPerCue float64
	cueGapSeconds float64
	corpus        []string
}

func NewSimulatedTranscriber(ffprobe *ffmpeg.Runner, secondsPerCue, cueGapSeconds float64) *SimulatedTranscriber {
	if secondsPerCue <= 0 {
		secondsPerCue = 4
	}
	if cueGapSeconds < 0 {
		cueGapSeconds = 0
	}
	return &SimulatedTranscriber{
		ffprobe:       ffprobe,
		secondsPerCue: secondsPerCue,
		cueGapSeconds: cueGapSeconds,
		corpus:        simulatedCorpus,
	}
}

func (t *SimulatedTranscriber) Transcription(ctx context.Context, mediaFile string, language types.StandardLanguageCode) ([]types.Segment, error) {
	duration, err := ffmpeg.GetMediaDuration(ctx, t.ffprobe, mediaFile)
	if err != nil {
		return nil, fmt.Errorf("simulated transcription probe err: %w", err)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("simulated transcription media duration %.3f invalid", duration)
	}

	segments := make([]types.Segment, 0, int(duration/t.secondsPerCue)+1)
	cursor := 0.0
	for i := 0; cursor < duration; i++ {
		end := cursor + t.secondsPerCue
		if end > duration {
			end = duration
		}
		// 尾部碎片太短就不出字幕了
		if end-cursor < 0.25 {
			break
		}
		segments = append(segments, types.Segment{
			Start: cursor,
			End:   end,
			Text:  t.corpus[i%len(t.corpus)],
		})
		cursor = end + t.cueGapSeconds
	}

	log.GetLogger().Info("simulated transcription generated segments",
		zap.String("file", mediaFile), zap.Float64("duration", duration),
		zap.Int("segments", len(segments)), zap.String("language", string(language)))
	return segments, nil
}

// 模拟字幕文本语料
var simulatedCorpus = []string{
	"Welcome back to the channel.",
	"Today we are looking at something special.",
	"Let's jump right into it.",
	"As you can see here, the results speak for themselves.",
	"This part is really important, so pay attention.",
	"There are a few things worth mentioning.",
	"First of all, the setup is straightforward.",
	"Next, we move on to the interesting part.",
	"You might be wondering how this works.",
	"The answer is simpler than you think.",
	"Let me show you a quick example.",
	"Notice how everything fits together.",
	"That was not what I expected at all.",
	"Anyway, let's keep going.",
	"Here is where it gets tricky.",
	"Take a moment to look at this.",
	"We are almost at the end now.",
	"To summarize what we covered today.",
	"Thank you so much for watching.",
	"See you in the next one.",
}
