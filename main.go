package main

import (
	"fmt"
	"os"

	"subfuse/config"
	"subfuse/internal/deps"
	"subfuse/internal/router"
	"subfuse/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := config.LoadConfig("./config/config.toml"); err != nil {
		fmt.Printf("load config err: %v\n", err)
		os.Exit(1)
	}
	log.InitLogger()
	defer log.GetLogger().Sync()

	if err := deps.CheckDependency(); err != nil {
		log.GetLogger().Error("dependency check failed", zap.Error(err))
		os.Exit(1)
	}

	for _, dir := range []string{config.Conf.App.TempDir, config.Conf.App.UploadsDir, config.Conf.App.OutputDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.GetLogger().Error("create dir failed", zap.String("dir", dir), zap.Error(err))
			os.Exit(1)
		}
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.Default()
	router.SetupRouter(engine)

	addr := fmt.Sprintf("%s:%d", config.Conf.Server.Host, config.Conf.Server.Port)
	log.GetLogger().Info("server starting", zap.String("addr", addr))
	if err := engine.Run(addr); err != nil {
		log.GetLogger().Error("server run err", zap.Error(err))
		os.Exit(1)
	}
}
