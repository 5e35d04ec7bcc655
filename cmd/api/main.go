package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/justsurfingit/internhunt/internal/auth"
	"github.com/justsurfingit/internhunt/internal/config"
	"github.com/justsurfingit/internhunt/internal/database"
	"github.com/justsurfingit/internhunt/internal/events"
	"github.com/justsurfingit/internhunt/internal/handlers"
	"github.com/justsurfingit/internhunt/internal/services"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type upstreamClients struct {
	fx.Out

	SerpAPI  *resty.Client `name:"serpapi"`
	Razorpay *resty.Client `name:"razorpay"`
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDev() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newDatabase(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg.DatabaseURL, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return database.Close(db)
		},
	})
	return db, nil
}

func newPublisher(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (events.Publisher, error) {
	var publisher events.Publisher = events.NewNopPublisher(logger)
	if cfg.NATSURL != "" {
		nc, err := events.NewNATSPublisher(cfg.NATSURL, logger)
		if err != nil {
			return nil, err
		}
		publisher = nc
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}

// newSearchCache returns a nil cache when Redis is not configured.
func newSearchCache(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) services.SearchCache {
	if cfg.RedisAddr == "" {
		logger.Info("Search cache disabled")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return services.NewRedisSearchCache(client, cfg.SearchCacheTTL, logger)
}

func newHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.UpstreamTimeout}
}

func newUpstreamClients(cfg *config.Config) upstreamClients {
	return upstreamClients{
		SerpAPI: resty.New().
			SetBaseURL(cfg.SerpAPIBaseURL).
			SetTimeout(cfg.UpstreamTimeout),
		Razorpay: resty.New().
			SetBaseURL(cfg.RazorpayBaseURL).
			SetTimeout(cfg.UpstreamTimeout).
			SetHeader("Content-Type", "application/json"),
	}
}

func newLLMService(cfg *config.Config, httpClient *http.Client, logger *zap.Logger) (*services.LLMService, error) {
	models, err := services.NewGenerationModels(context.Background(), cfg, httpClient, logger,
		services.NewLogBuilder(logger), services.MetricsBuilder{})
	if err != nil {
		return nil, err
	}
	return services.NewLLMService(models, logger), nil
}

type serviceParams struct {
	fx.In

	Config    *config.Config
	Logger    *zap.Logger
	DB        *gorm.DB
	Publisher events.Publisher
	Cache     services.SearchCache
	LLM       *services.LLMService
	SerpAPI   *resty.Client `name:"serpapi"`
	Razorpay  *resty.Client `name:"razorpay"`
}

func newHandlers(p serviceParams) handlers.Handlers {
	profiles := services.NewProfileService(p.DB)
	// a shared assist call may walk every model in the fallback chain
	assistTimeout := p.Config.UpstreamTimeout * time.Duration(max(1, len(p.Config.GeminiModels)))

	return handlers.Handlers{
		Jobs: handlers.NewJobHandler(
			services.NewJobSearchService(p.SerpAPI, p.Config.SerpAPIKey, p.Cache, p.Logger),
			p.LLM,
			services.NewResumeService(p.LLM, nil),
			services.NewAssistService(p.LLM, profiles, assistTimeout),
			p.Logger,
		),
		Profiles: handlers.NewProfileHandler(profiles, services.NewMatcherService(profiles), p.Logger),
		SavedJobs: handlers.NewSavedJobHandler(
			services.NewSavedJobService(p.DB),
			services.NewDeadlineNotifier(p.Publisher, p.Logger),
			p.Logger,
		),
		Payments: handlers.NewPaymentHandler(
			services.NewPaymentService(p.Razorpay, p.Config.RazorpayKeyID, p.Config.RazorpayKeySecret),
			services.NewWebhookService(p.Config.RazorpayWebhookSecret, profiles, p.DB, p.Publisher, p.Logger),
			p.Logger,
		),
	}
}

func newRouter(cfg *config.Config, logger *zap.Logger, h handlers.Handlers) *gin.Engine {
	if cfg.SessionSecret == "" {
		logger.Warn("SESSION_JWT_SECRET not set, per-user routes will reject every request")
	}
	return handlers.NewRouter(cfg, logger, auth.NewSessionVerifier(cfg.SessionSecret).Middleware(), h)
}

func runServer(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger, router *gin.Engine) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("Server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("Server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Server shutting down")
			return srv.Shutdown(ctx)
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.Load,
			newLogger,
			newDatabase,
			newPublisher,
			newSearchCache,
			newHTTPClient,
			newUpstreamClients,
			newLLMService,
			newHandlers,
			newRouter,
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Invoke(runServer),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		log.Fatal(err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	stopCtx, cancelStop := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		log.Fatal(err)
	}
}
