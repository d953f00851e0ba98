package types

type CaptionTaskStatus uint8

const (
	CaptionTaskStatusProcessing CaptionTaskStatus = 1
	CaptionTaskStatusSuccess    CaptionTaskStatus = 2
	CaptionTaskStatusFailed     CaptionTaskStatus = 3
)

// CaptionTask 内存中的任务状态，由storage持有，读写都经过storage的锁
type CaptionTask struct {
	TaskId         string
	VideoPath      string
	OriginLanguage StandardLanguageCode
	TargetLanguage StandardLanguageCode
	Status         CaptionTaskStatus
	ProcessPct     uint8
	Message        string
	DownloadUrl    string
}

// CaptionTaskStepParam 各处理步骤间传递的参数
type CaptionTaskStepParam struct {
	TaskId         string
	VideoPath      string
	OriginLanguage StandardLanguageCode
	TargetLanguage StandardLanguageCode
	Style          StyleOptions
	Segments       []Segment
	ResultFilePath string
}
