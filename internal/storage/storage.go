package storage

import (
	"sync"

	"subfuse/internal/types"
)

// 由deps.CheckDependency解析后写入，之后只读
var (
	FfmpegPath  = "ffmpeg"
	FfprobePath = "ffprobe"
)

var (
	captionTasksMu sync.RWMutex
	captionTasks   = make(map[string]*types.CaptionTask)
)

// SaveCaptionTask 登记任务。存入的是副本，调用方手里的值之后怎么改
// 都不影响存储状态
func SaveCaptionTask(task types.CaptionTask) {
	captionTasksMu.Lock()
	defer captionTasksMu.Unlock()
	stored := task
	captionTasks[task.TaskId] = &stored
}

// GetCaptionTask 返回任务状态的副本，读取方不会看到写了一半的字段
func GetCaptionTask(taskId string) (types.CaptionTask, bool) {
	captionTasksMu.RLock()
	defer captionTasksMu.RUnlock()
	task, ok := captionTasks[taskId]
	if !ok {
		return types.CaptionTask{}, false
	}
	return *task, true
}

// UpdateCaptionTask 在锁内修改任务字段，后台流水线的所有状态和
// 进度更新都必须走这里
func UpdateCaptionTask(taskId string, update func(*types.CaptionTask)) {
	captionTasksMu.Lock()
	defer captionTasksMu.Unlock()
	if task, ok := captionTasks[taskId]; ok {
		update(task)
	}
}
