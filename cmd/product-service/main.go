package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/shopfleet/shopfleet/internal/clients"
	"github.com/shopfleet/shopfleet/internal/config"
	"github.com/shopfleet/shopfleet/internal/infra/mysql"
	"github.com/shopfleet/shopfleet/internal/logging"
	"github.com/shopfleet/shopfleet/internal/product/domain"
	producthttp "github.com/shopfleet/shopfleet/internal/product/http"
	mysqlrepo "github.com/shopfleet/shopfleet/internal/product/repository/mysql"
	"github.com/shopfleet/shopfleet/internal/product/service"
)

func main() {
	godotenv.Load()
	cfg := config.Load("product-service", "8082")
	logging.Setup(cfg.ServiceName)

	db, err := mysql.Open(cfg.MySQLDSN,
		&domain.Category{},
		&domain.Product{},
		&domain.ProductImage{},
	)
	if err != nil {
		slog.Error("db connect failed", "error", err)
		os.Exit(1)
	}

	products := service.NewProductService(
		mysqlrepo.NewProductRepository(db),
		mysqlrepo.NewCategoryRepository(db),
	)
	userClient := clients.NewUserClient(cfg.UserServiceURL, cfg.ServiceName, 5*time.Second)

	handler := producthttp.NewHandler(products)

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
