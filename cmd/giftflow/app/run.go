package app

import (
	"context"
	"strings"
	"time"

	"github.com/Calebyte11/Boqbox-landing/configs"
	"github.com/Calebyte11/Boqbox-landing/internal/adapter/cache"
	"github.com/Calebyte11/Boqbox-landing/internal/adapter/gateway"
	httpadapter "github.com/Calebyte11/Boqbox-landing/internal/adapter/http"
	"github.com/Calebyte11/Boqbox-landing/internal/logging"
	"github.com/Calebyte11/Boqbox-landing/internal/notify"
	"github.com/Calebyte11/Boqbox-landing/internal/security"
	"github.com/Calebyte11/Boqbox-landing/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logging.Init(cfg.App.Name, cfg.App.LogLevel, "./logs/app.log")

	// init redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err := rdb.Ping(ctx).Err()
	cancel()
	if err != nil {
		return nil, nil, err
	}

	// infra
	store := cache.NewRedisSessionStore(rdb, cfg.Session.TTL)
	gw := gateway.NewClient(cfg)
	state := security.NewStateTokenCodec(cfg.Security.StateSecret, cfg.Security.StateTTL)
	notes := notify.NewCenter(cfg.Flow.NotificationTTL)

	publicBase := strings.TrimRight(cfg.App.PublicBaseURL, "/")
	callbackURL := publicBase + "/v1/payment/callback"

	// usecases
	flow := usecase.NewFlow(store)
	checkout := usecase.NewCheckout(store, gw, state, callbackURL)
	reconciler := usecase.NewReconciler(store, gw, state, notes, cfg.Flow.DisplayDelay)

	// handlers + router
	fh := httpadapter.NewFlowHandler(flow, notes)
	ph := httpadapter.NewPaymentHandler(checkout, reconciler, publicBase+"/")
	ch := httpadapter.NewCatalogHandler(gw, cfg.Flow.PageLimit)
	router := httpadapter.NewRouter(fh, ph, ch)

	cleanup := func() {
		notes.Close()
		_ = rdb.Close()
	}

	return &App{Router: router}, cleanup, nil
}
