package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// InitLogger 初始化全局logger
func InitLogger() {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig = encoderCfg
	cfg.OutputPaths = []string{"stdout", "./app.log"}
	cfg.ErrorOutputPaths = []string{"stderr", "./app.log"}

	var err error
	logger, err = cfg.Build(zap.AddCaller())
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
}

func GetLogger() *zap.Logger {
	if logger == nil {
		// 未显式初始化时（如单元测试）退回到开发配置
		logger, _ = zap.NewDevelopment()
	}
	return logger
}
