package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/shopfleet/shopfleet/internal/config"
	"github.com/shopfleet/shopfleet/internal/infra/mysql"
	"github.com/shopfleet/shopfleet/internal/logging"
	"github.com/shopfleet/shopfleet/internal/payment/domain"
	paymenthttp "github.com/shopfleet/shopfleet/internal/payment/http"
	mysqlrepo "github.com/shopfleet/shopfleet/internal/payment/repository/mysql"
	"github.com/shopfleet/shopfleet/internal/payment/service"
)

func main() {
	godotenv.Load()
	cfg := config.Load("payment-service", "8085")
	logging.Setup(cfg.ServiceName)

	db, err := mysql.Open(cfg.MySQLDSN,
		&domain.PaymentState{},
		&domain.PaymentMethod{},
		&domain.Payment{},
	)
	if err != nil {
		slog.Error("db connect failed", "error", err)
		os.Exit(1)
	}
	if err := mysqlrepo.SeedLookups(db); err != nil {
		slog.Error("lookup seed failed", "error", err)
		os.Exit(1)
	}

	payments := service.NewPaymentService(mysqlrepo.NewPaymentRepository(db))
	handler := paymenthttp.NewHandler(payments)

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
