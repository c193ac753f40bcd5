package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/shopfleet/shopfleet/internal/cart/domain"
	carthttp "github.com/shopfleet/shopfleet/internal/cart/http"
	mysqlrepo "github.com/shopfleet/shopfleet/internal/cart/repository/mysql"
	"github.com/shopfleet/shopfleet/internal/cart/service"
	"github.com/shopfleet/shopfleet/internal/clients"
	"github.com/shopfleet/shopfleet/internal/config"
	"github.com/shopfleet/shopfleet/internal/infra/mysql"
	"github.com/shopfleet/shopfleet/internal/logging"
)

func main() {
	godotenv.Load()
	cfg := config.Load("cart-service", "8083")
	logging.Setup(cfg.ServiceName)

	db, err := mysql.Open(cfg.MySQLDSN,
		&domain.Cart{},
		&domain.CartItem{},
	)
	if err != nil {
		slog.Error("db connect failed", "error", err)
		os.Exit(1)
	}

	userClient := clients.NewUserClient(cfg.UserServiceURL, cfg.ServiceName, 5*time.Second)
	productClient := clients.NewProductClient(cfg.ProductServiceURL, cfg.ServiceName, 5*time.Second)
	orderClient := clients.NewOrderClient(cfg.OrderServiceURL, cfg.ServiceName, 5*time.Second)

	carts := service.NewCartService(mysqlrepo.NewCartRepository(db), productClient, orderClient)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		PoolSize:     100,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
	carts.SetRedisClient(redisClient)

	handler := carthttp.NewHandler(carts)

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
