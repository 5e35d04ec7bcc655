package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/internhunt/internal/config"
	"github.com/justsurfingit/internhunt/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handlers struct {
	Jobs      *JobHandler
	Profiles  *ProfileHandler
	SavedJobs *SavedJobHandler
	Payments  *PaymentHandler
}

// NewRouter wires every route. requireSession guards the per-user routes.
func NewRouter(cfg *config.Config, logger *zap.Logger, requireSession gin.HandlerFunc, h Handlers) *gin.Engine {
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// client IPs key the AI limiter, so forwarded headers count only from
	// configured proxies
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Error("Invalid TRUSTED_PROXIES, trusting none", zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery(), RequestLogger(logger), metrics.Middleware())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.ExposeHeaders = []string{requestIDHeader, urgentHeader}
	r.Use(cors.New(corsConfig))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	aiLimit := NewRateLimiter(cfg.AIRatePerMinute, logger).Middleware()

	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck)

		api.GET("/internships", h.Jobs.Internships)
		api.POST("/gemini", aiLimit, h.Jobs.Generate)
		api.POST("/ai/score-resume", aiLimit, h.Jobs.ScoreResume)

		api.POST("/webhooks/razorpay", h.Payments.Webhook)
	}

	user := api.Group("", requireSession)
	{
		user.POST("/ai/assist", aiLimit, h.Jobs.Assist)

		user.GET("/user/profile", h.Profiles.GetProfile)
		user.POST("/user/profile", h.Profiles.SaveProfile)
		user.POST("/user/match", h.Profiles.Match)

		user.GET("/user/saved-jobs", h.SavedJobs.List)
		user.POST("/user/saved-jobs", h.SavedJobs.Toggle)
		user.DELETE("/user/saved-jobs", h.SavedJobs.Delete)
		user.PATCH("/user/saved-jobs/status", h.SavedJobs.UpdateStatus)
		user.GET("/user/saved-jobs/urgent", h.SavedJobs.Urgent)

		user.POST("/checkout/create-order", h.Payments.CreateOrder)
	}

	return r
}
