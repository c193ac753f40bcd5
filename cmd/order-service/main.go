package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/shopfleet/shopfleet/internal/clients"
	"github.com/shopfleet/shopfleet/internal/config"
	"github.com/shopfleet/shopfleet/internal/events"
	"github.com/shopfleet/shopfleet/internal/infra/mysql"
	"github.com/shopfleet/shopfleet/internal/logging"
	"github.com/shopfleet/shopfleet/internal/order/domain"
	orderhttp "github.com/shopfleet/shopfleet/internal/order/http"
	mysqlrepo "github.com/shopfleet/shopfleet/internal/order/repository/mysql"
	"github.com/shopfleet/shopfleet/internal/order/service"
)

func main() {
	godotenv.Load()
	cfg := config.Load("order-service", "8084")
	logging.Setup(cfg.ServiceName)

	db, err := mysql.Open(cfg.MySQLDSN,
		&domain.OrderState{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.OrderStateHistory{},
	)
	if err != nil {
		slog.Error("db connect failed", "error", err)
		os.Exit(1)
	}
	if err := mysqlrepo.SeedStates(db); err != nil {
		slog.Error("state seed failed", "error", err)
		os.Exit(1)
	}

	userClient := clients.NewUserClient(cfg.UserServiceURL, cfg.ServiceName, 5*time.Second)
	productClient := clients.NewProductClient(cfg.ProductServiceURL, cfg.ServiceName, 5*time.Second)
	paymentClient := clients.NewPaymentClient(cfg.PaymentServiceURL, cfg.ServiceName, 5*time.Second)

	// Events are fire-and-forget; a missing broker degrades to no events
	// rather than refusing to start.
	var publisher events.PublisherInterface
	if pub, err := events.NewPublisher(cfg.RabbitMQURL, "order.exchange"); err != nil {
		slog.Warn("rabbitmq unavailable, events disabled", "error", err)
	} else {
		publisher = pub
		defer pub.Close()
	}

	orders := service.NewOrderService(
		mysqlrepo.NewOrderRepository(db),
		productClient,
		paymentClient,
		userClient,
		publisher,
	)

	handler := orderhttp.NewHandler(orders)

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
