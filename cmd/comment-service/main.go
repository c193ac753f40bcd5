package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/shopfleet/shopfleet/internal/clients"
	commenthttp "github.com/shopfleet/shopfleet/internal/comment/http"
	mongorepo "github.com/shopfleet/shopfleet/internal/comment/repository/mongo"
	"github.com/shopfleet/shopfleet/internal/comment/service"
	"github.com/shopfleet/shopfleet/internal/config"
	"github.com/shopfleet/shopfleet/internal/logging"
)

func main() {
	godotenv.Load()
	cfg := config.Load("comment-service", "8086")
	logging.Setup(cfg.ServiceName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongorepo.Connect(ctx, cfg.MongoURI)
	cancel()
	if err != nil {
		slog.Error("mongo connect failed", "error", err)
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())

	userClient := clients.NewUserClient(cfg.UserServiceURL, cfg.ServiceName, 5*time.Second)

	comments := service.NewCommentService(
		mongorepo.NewCommentRepository(client, cfg.MongoDB),
		userClient,
	)
	handler := commenthttp.NewHandler(comments)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	handler.RegisterRoutes(r, userClient)

	slog.Info("starting", "addr", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
