package service

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"subfuse/config"
	"subfuse/internal/types"
	"subfuse/log"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// translateSegments 并发翻译全部字幕片段，并发度由配置控制
// 单条翻译失败时保留原文（字幕缺一条比整个任务失败更糟）
func (s Service) translateSegments(ctx context.Context, stepParam *types.CaptionTaskStepParam) error {
	if stepParam.OriginLanguage == stepParam.TargetLanguage {
		log.GetLogger().Info("translateSegments skipped, same language",
			zap.String("taskId", stepParam.TaskId), zap.String("language", string(stepParam.TargetLanguage)))
		return nil
	}

	log.GetLogger().Info("translateSegments start",
		zap.String("taskId", stepParam.TaskId), zap.Int("segments", len(stepParam.Segments)))

	var (
		eg, egCtx           = errgroup.WithContext(ctx)
		parallelControlChan = make(chan struct{}, config.Conf.App.TranslateParallelNum)
		doneNum             int
		doneNumMu           sync.Mutex
	)

	for i := range stepParam.Segments {
		index := i
		parallelControlChan <- struct{}{}
		eg.Go(func() (err error) {
			defer func() {
				<-parallelControlChan
				if r := recover(); r != nil {
					log.GetLogger().Error("translateSegments panic recovered",
						zap.Any("panic", r), zap.String("stack", string(debug.Stack())))
					err = fmt.Errorf("translateSegments panic: %v", r)
				}
			}()
			select {
			case <-egCtx.Done():
				return egCtx.Err()
			default:
			}

			segment := &stepParam.Segments[index]
			translated, translateErr := s.Translator.Translate(egCtx, segment.Text, stepParam.OriginLanguage, stepParam.TargetLanguage)
			if translateErr != nil {
				log.GetLogger().Warn("translateSegments provider chain failed, keeping origin text",
					zap.String("taskId", stepParam.TaskId), zap.Int("segment", index), zap.Error(translateErr))
			} else {
				segment.Text = translated
			}

			// 翻译阶段占30%~70%的进度区间，进度写入放在锁内保证只增不减
			doneNumMu.Lock()
			doneNum++
			setCaptionTaskProgress(stepParam.TaskId, uint8(30+40*doneNum/len(stepParam.Segments)))
			doneNumMu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		log.GetLogger().Error("translateSegments eg.Wait err", zap.String("taskId", stepParam.TaskId), zap.Error(err))
		return fmt.Errorf("translateSegments eg.Wait err: %w", err)
	}

	log.GetLogger().Info("translateSegments end", zap.String("taskId", stepParam.TaskId))
	return nil
}
