package dto

type StartCaptionTaskReq struct {
	VideoPath      string `json:"video_path"`
	OriginLanguage string `json:"origin_lang"`
	TargetLang     string `json:"target_lang"`

	// 样式覆盖项，零值表示使用配置默认
	FontName        string `json:"font_name"`
	FontSize        int    `json:"font_size"`
	FontColor       string `json:"font_color"`
	BackgroundColor string `json:"background_color"`
	BorderWidth     *int   `json:"border_width"`
	BorderColor     string `json:"border_color"`
	MarginVertical  *int   `json:"margin_vertical"`
}

type StartCaptionTaskResData struct {
	TaskId string `json:"task_id"`
}

type StartCaptionTaskRes struct {
	Error int32                    `json:"error"`
	Msg   string                   `json:"msg"`
	Data  *StartCaptionTaskResData `json:"data"`
}

type GetCaptionTaskReq struct {
	TaskId string `form:"taskId"`
}

type GetCaptionTaskResData struct {
	TaskId         string `json:"task_id"`
	Status         string `json:"status"`
	ProcessPercent uint8  `json:"process_percent"`
	Message        string `json:"message,omitempty"`
	DownloadUrl    string `json:"download_url,omitempty"`
}

type GetCaptionTaskRes struct {
	Error int32                  `json:"error"`
	Msg   string                 `json:"msg"`
	Data  *GetCaptionTaskResData `json:"data"`
}

type UploadFileResData struct {
	FilePath string `json:"file_path"`
}

type UploadFileRes struct {
	Error int32              `json:"error"`
	Msg   string             `json:"msg"`
	Data  *UploadFileResData `json:"data"`
}
