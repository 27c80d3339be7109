// @title 学习路径看板 API
// @version 1.0
// @description CSE 学习路径追踪器的后端服务：课程进度、周学习时长与学习助手。

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"learning_path_backend/internal/app"
	"learning_path_backend/internal/config"
	"learning_path_backend/pkg/configwatcher"
	"learning_path_backend/pkg/logger"
	"log"
)

func main() {
	// 命令行参数
	seedOnly := flag.Bool("seed-only", false, "写入默认种子快照后退出")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.SeedOnly = *seedOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *seedOnly {
		log.Println("种子快照写入完成，退出程序")
		return
	}

	// 配置热更新
	go configwatcher.WatchConfig("configs/config.yaml", application.Reload)

	application.Run()
}
