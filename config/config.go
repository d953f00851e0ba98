package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/BurntSushi/toml"
)

type App struct {
	TempDir              string `toml:"temp_dir"`
	UploadsDir           string `toml:"uploads_dir"`
	OutputDir            string `toml:"output_dir"`
	TranslateParallelNum int    `toml:"translate_parallel_num"`
	Proxy                string `toml:"proxy"`
}

type Server struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type Llm struct {
	BaseUrl string `toml:"base_url"`
	ApiKey  string `toml:"api_key"`
	Model   string `toml:"model"`
}

type Translate struct {
	// Providers 按顺序尝试，第一个成功的结果生效
	Providers      []string `toml:"providers"`
	GoogleEndpoint string   `toml:"google_endpoint"`
}

type Ffmpeg struct {
	FfmpegPath    string `toml:"ffmpeg_path"`
	FfprobePath   string `toml:"ffprobe_path"`
	TimeoutSecond int    `toml:"timeout_second"`
	Preset        string `toml:"preset"`
	Crf           int    `toml:"crf"`
}

type Transcribe struct {
	SecondsPerCue float64 `toml:"seconds_per_cue"`
	CueGapSeconds float64 `toml:"cue_gap_seconds"`
}

type Style struct {
	FontName        string `toml:"font_name"`
	FontSize        int    `toml:"font_size"`
	FontColor       string `toml:"font_color"`
	BackgroundColor string `toml:"background_color"`
	BorderWidth     int    `toml:"border_width"`
	BorderColor     string `toml:"border_color"`
	MarginVertical  int    `toml:"margin_vertical"`
}

type Config struct {
	App        App        `toml:"app"`
	Server     Server     `toml:"server"`
	Llm        Llm        `toml:"llm"`
	Translate  Translate  `toml:"translate"`
	Ffmpeg     Ffmpeg     `toml:"ffmpeg"`
	Transcribe Transcribe `toml:"transcribe"`
	Style      Style      `toml:"style"`
}

var Conf = defaultConfig()

func defaultConfig() Config {
	return Config{
		App: App{
			TempDir:              "./tasks/temp",
			UploadsDir:           "./uploads",
			OutputDir:            "./tasks/output",
			TranslateParallelNum: 4,
		},
		Server: Server{
			Host: "127.0.0.1",
			Port: 8888,
		},
		Translate: Translate{
			Providers:      []string{"llm", "google", "dictionary"},
			GoogleEndpoint: "https://translate.googleapis.com",
		},
		Ffmpeg: Ffmpeg{
			Preset: "medium",
			Crf:    23,
		},
		Transcribe: Transcribe{
			SecondsPerCue: 4,
			CueGapSeconds: 0.5,
		},
		Style: Style{
			FontName:        "Arial",
			FontSize:        18,
			FontColor:       "#FFFFFF",
			BackgroundColor: "#000000",
			BorderWidth:     1,
			BorderColor:     "#000000",
			MarginVertical:  16,
		},
	}
}

// LoadConfig 从toml文件加载配置，文件不存在时使用默认配置
func LoadConfig(configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return validateConfig()
	}
	if _, err := toml.DecodeFile(configPath, &Conf); err != nil {
		return fmt.Errorf("config LoadConfig decode file err: %w", err)
	}
	return validateConfig()
}

func validateConfig() error {
	if Conf.App.Proxy != "" {
		// 代理地址各翻译客户端自行使用，这里只做格式校验
		if _, err := url.Parse(Conf.App.Proxy); err != nil {
			return fmt.Errorf("config validateConfig parse proxy err: %w", err)
		}
	}
	if Conf.App.TranslateParallelNum <= 0 {
		Conf.App.TranslateParallelNum = 1
	}
	if Conf.Transcribe.SecondsPerCue <= 0 {
		Conf.Transcribe.SecondsPerCue = 4
	}
	if len(Conf.Translate.Providers) == 0 {
		Conf.Translate.Providers = []string{"dictionary"}
	}
	return nil
}
