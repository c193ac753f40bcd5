package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/shopfleet/shopfleet/internal/auth"
	"github.com/shopfleet/shopfleet/internal/config"
	"github.com/shopfleet/shopfleet/internal/infra/mysql"
	"github.com/shopfleet/shopfleet/internal/logging"
	"github.com/shopfleet/shopfleet/internal/user/domain"
	userhttp "github.com/shopfleet/shopfleet/internal/user/http"
	mysqlrepo "github.com/shopfleet/shopfleet/internal/user/repository/mysql"
	"github.com/shopfleet/shopfleet/internal/user/service"
)

func main() {
	godotenv.Load()
	cfg := config.Load("user-service", "8081")
	logging.Setup(cfg.ServiceName)

	db, err := mysql.Open(cfg.MySQLDSN,
		&domain.Name{},
		&domain.Role{},
		&domain.City{},
		&domain.District{},
		&domain.Ward{},
		&domain.Address{},
		&domain.User{},
	)
	if err != nil {
		slog.Error("db connect failed", "error", err)
		os.Exit(1)
	}

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, 24*time.Hour)
	users := service.NewUserService(mysqlrepo.NewUserRepository(db), issuer)
	addresses := service.NewAddressService(mysqlrepo.NewAddressRepository(db))

	handler := userhttp.NewHandler(users, addresses, issuer)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	handler.RegisterRoutes(r)

	slog.Info("starting", "addr", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
