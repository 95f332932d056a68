package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"

	"github.com/iliyamo/school-admin/internal/config"
	"github.com/iliyamo/school-admin/internal/handler"
	"github.com/iliyamo/school-admin/internal/metrics"
	"github.com/iliyamo/school-admin/internal/middleware"
	"github.com/iliyamo/school-admin/internal/repository"
	"github.com/iliyamo/school-admin/internal/router"
	"github.com/iliyamo/school-admin/internal/seed"
	"github.com/iliyamo/school-admin/internal/service"
	"github.com/iliyamo/school-admin/internal/validation"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("load .env: %v", err)
	}
	cfg := config.Load()

	rdb, err := config.NewRedisClient(config.LoadRedisConfig())
	if err != nil {
		log.Warnf("redis unavailable, running without cache and rate limit: %v", err)
	}
	cacheCfg := config.LoadCacheConfig()

	m := metrics.New()
	pub := service.NewPublisher(cfg.Queue)
	defer pub.Close()
	changes := service.NewChanges(pub, m)
	defer changes.Close()

	accounts, err := repository.NewAccountRepo(seed.Accounts(), cfg.BcryptCost)
	if err != nil {
		log.Fatal(errors.Wrap(err, "hash demo passwords"))
	}
	events := repository.NewEventRepo(seed.Events())
	achievements := repository.NewAchievementRepo(seed.Achievements())
	blogs := repository.NewBlogRepo(seed.Blogs())
	gallery := repository.NewGalleryRepo(seed.Gallery())
	admissions := repository.NewAdmissionRepo(seed.Admissions())
	staff := repository.NewStaffRepo(seed.Staff())
	hero := repository.NewHeroRepo(seed.Hero())

	if n, err := blogs.PublishedCount(context.Background()); err == nil {
		changes.PublishedPosts(n)
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Validator = validation.EchoValidator{}
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			c.Logger().Infof("%s %s status=%d latency=%s request_id=%s", v.Method, v.URI, v.Status, v.Latency, v.RequestID)
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(m.Middleware())

	router.RegisterRoutes(e, m)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, accounts), cfg.JWTSecret,
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	router.RegisterPublic(e, &handler.PublicHandler{
		Events:       events,
		Achievements: achievements,
		Blogs:        blogs,
		Gallery:      gallery,
		Staff:        staff,
		Hero:         hero,
	},
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewRedisCache(cacheCfg, rdb),
	)
	router.RegisterAdmin(e,
		handler.NewAdminHandler(events, achievements, blogs, gallery, admissions, staff, hero, changes),
		handler.NewShellHandler(cfg),
		cfg.JWTSecret,
		middleware.InvalidateOnWrite(cacheCfg, rdb),
	)

	addr := ":" + cfg.Port
	go func() {
		log.Infof("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	log.Info("server stopped")
}
