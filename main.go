package main

import (
	"log"

	"go.uber.org/zap"

	"go-soilhealth/config"
	"go-soilhealth/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Logging.Level, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// 初始化数据库连接
	db, err := config.OpenDB(cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// 设置路由
	r := routes.SetupRouter(db, cfg, logger)

	// 启动服务器
	logger.Info("server starting", zap.String("addr", cfg.Server.Addr))
	if err := r.Run(cfg.Server.Addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
