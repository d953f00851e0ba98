package service

import (
	"time"

	"subfuse/config"
	"subfuse/internal/pipeline"
	"subfuse/internal/storage"
	"subfuse/internal/types"
	"subfuse/log"
	"subfuse/pkg/ffmpeg"
	"subfuse/pkg/subtitle"
	"subfuse/pkg/translator"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Service struct {
	Transcriber types.Transcriber
	Translator  translator.Translator
	Pipeline    *pipeline.BurnPipeline
}

func NewService() *Service {
	ffprobeRunner := ffmpeg.NewRunner(storage.FfprobePath)

	var ffmpegOpts []ffmpeg.RunnerOption
	if config.Conf.Ffmpeg.TimeoutSecond > 0 {
		ffmpegOpts = append(ffmpegOpts, ffmpeg.WithTimeout(time.Duration(config.Conf.Ffmpeg.TimeoutSecond)*time.Second))
	}
	ffmpegRunner := ffmpeg.NewRunner(storage.FfmpegPath, ffmpegOpts...)

	invoker := ffmpeg.NewInvoker(ffmpegRunner,
		ffmpeg.WithPreset(config.Conf.Ffmpeg.Preset),
		ffmpeg.WithCrf(config.Conf.Ffmpeg.Crf),
		ffmpeg.WithOutputDir(config.Conf.App.OutputDir),
	)
	builder := subtitle.NewBuilder(config.Conf.App.TempDir)

	providers := lo.FilterMap(config.Conf.Translate.Providers, func(name string, _ int) (translator.Translator, bool) {
		switch name {
		case "llm":
			if config.Conf.Llm.ApiKey == "" {
				log.GetLogger().Info("llm translator skipped, no api key configured")
				return nil, false
			}
			return translator.NewLLMTranslator(config.Conf.Llm.BaseUrl, config.Conf.Llm.ApiKey, config.Conf.Llm.Model, config.Conf.App.Proxy), true
		case "google":
			return translator.NewGoogleTranslator(config.Conf.Translate.GoogleEndpoint, config.Conf.App.Proxy), true
		case "dictionary":
			return translator.NewDictionaryTranslator(), true
		default:
			log.GetLogger().Warn("unknown translate provider in config", zap.String("provider", name))
			return nil, false
		}
	})
	log.GetLogger().Info("translator chain assembled",
		zap.Strings("providers", lo.Map(providers, func(p translator.Translator, _ int) string { return p.Name() })))

	return &Service{
		Transcriber: NewSimulatedTranscriber(ffprobeRunner, config.Conf.Transcribe.SecondsPerCue, config.Conf.Transcribe.CueGapSeconds),
		Translator:  translator.NewChain(providers...),
		Pipeline:    pipeline.NewBurnPipeline(builder, invoker),
	}
}
