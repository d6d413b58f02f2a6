package main

import (
	"flag"
	"log/slog"
	"os"

	"timebank/internal/config"
	"timebank/internal/handler"
	"timebank/internal/logger"
	"timebank/internal/middleware"
	"timebank/internal/model"
	"timebank/internal/service"
	"timebank/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	middleware.SetSecret(cfg.Server.JWTSecret)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Period{}, &model.WorkConfig{}); err != nil {
		slog.Error("migrate failed", "err", err)
		os.Exit(1)
	}

	periods := store.NewPeriodStore(db)
	configs := store.NewConfigStore(db)

	authSvc := service.NewAuthService(db)
	clockSvc := service.NewClockService(periods)
	periodSvc := service.NewPeriodService(periods)
	bankSvc := service.NewBankService(periods, configs)

	authH := handler.NewAuthHandler(authSvc)
	clockH := handler.NewClockHandler(clockSvc)
	periodH := handler.NewPeriodHandler(periodSvc)
	bankH := handler.NewBankHandler(bankSvc)
	configH := handler.NewConfigHandler(configs)
	exportH := handler.NewExportHandler(periodSvc, bankSvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/register", authH.Register)
	r.POST("/api/login", authH.Login)

	api := r.Group("/api", middleware.JWTAuth())
	api.GET("/clock/next", clockH.Next)
	api.POST("/clock", clockH.Punch)
	api.POST("/periods/day", periodH.SaveDay)
	api.GET("/periods", periodH.List)
	api.PUT("/periods/:id", periodH.Update)
	api.DELETE("/periods/:id", periodH.Delete)
	api.GET("/bank", bankH.Snapshot)
	api.GET("/config", configH.Get)
	api.PUT("/config", configH.Put)
	api.GET("/export", exportH.Export)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
