package storage

import (
	"sync"
	"testing"

	"subfuse/internal/types"
)

func Test_CaptionTask_CopySemantics(t *testing.T) {
	task := types.CaptionTask{TaskId: "copy-1", Status: types.CaptionTaskStatusProcessing}
	SaveCaptionTask(task)

	// 登记后改调用方手里的值，不影响存储状态
	task.Status = types.CaptionTaskStatusFailed
	got, ok := GetCaptionTask("copy-1")
	if !ok {
		t.Fatal("GetCaptionTask() task missing")
	}
	if got.Status != types.CaptionTaskStatusProcessing {
		t.Errorf("stored status = %d, want %d", got.Status, types.CaptionTaskStatusProcessing)
	}

	// 改读出来的副本也不影响存储状态
	got.ProcessPct = 50
	again, _ := GetCaptionTask("copy-1")
	if again.ProcessPct != 0 {
		t.Errorf("stored pct = %d, want 0", again.ProcessPct)
	}
}

func Test_UpdateCaptionTask(t *testing.T) {
	SaveCaptionTask(types.CaptionTask{TaskId: "upd-1", Status: types.CaptionTaskStatusProcessing})

	UpdateCaptionTask("upd-1", func(task *types.CaptionTask) {
		task.Status = types.CaptionTaskStatusSuccess
		task.ProcessPct = 100
		task.DownloadUrl = "/api/file/tasks/output/a.mp4"
	})

	got, ok := GetCaptionTask("upd-1")
	if !ok {
		t.Fatal("GetCaptionTask() task missing")
	}
	if got.Status != types.CaptionTaskStatusSuccess || got.ProcessPct != 100 || got.DownloadUrl == "" {
		t.Errorf("got %+v, update not applied", got)
	}

	// 未知任务号静默忽略
	UpdateCaptionTask("upd-nope", func(task *types.CaptionTask) {
		task.Status = types.CaptionTaskStatusFailed
	})
}

// 后台流水线写进度、前台轮询读状态是常态，两边必须能随意并发
func Test_CaptionTask_ConcurrentUpdateAndGet(t *testing.T) {
	SaveCaptionTask(types.CaptionTask{TaskId: "conc-1", Status: types.CaptionTaskStatusProcessing})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for pct := 0; pct <= 100; pct++ {
			p := uint8(pct)
			UpdateCaptionTask("conc-1", func(task *types.CaptionTask) {
				task.ProcessPct = p
				task.Message = "working"
			})
		}
		UpdateCaptionTask("conc-1", func(task *types.CaptionTask) {
			task.Status = types.CaptionTaskStatusSuccess
		})
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			task, ok := GetCaptionTask("conc-1")
			if !ok {
				t.Error("GetCaptionTask() task missing during polling")
				return
			}
			if task.ProcessPct > 100 {
				t.Errorf("pct out of range: %d", task.ProcessPct)
				return
			}
		}
	}()
	wg.Wait()

	got, _ := GetCaptionTask("conc-1")
	if got.Status != types.CaptionTaskStatusSuccess || got.ProcessPct != 100 {
		t.Errorf("final state = %+v, want success at 100%%", got)
	}
}
