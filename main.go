package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"promohub/api"
	"promohub/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("error loading config: %v", err))
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Errorf("error building logger: %v", err))
	}
	defer logger.Sync()

	app := api.NewApp(cfg, logger)
	if err := app.Auth.Bootstrap(
		cfg.Auth.BootstrapAdminName,
		cfg.Auth.BootstrapAdminMail,
		cfg.Auth.BootstrapAdminPass,
	); err != nil {
		logger.Fatal("failed to seed bootstrap admin", zap.Error(err))
	}

	r := gin.Default()
	api.InitRoutes(r, app)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := srv.ListenAndServe(); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}
