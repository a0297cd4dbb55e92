package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/cbtengine/config"
	"github.com/lshigami/cbtengine/database"
	_ "github.com/lshigami/cbtengine/docs"
	"github.com/lshigami/cbtengine/internal/clearance"
	guardianctrl "github.com/lshigami/cbtengine/internal/controller/guardian"
	staffctrl "github.com/lshigami/cbtengine/internal/controller/staff"
	studentctrl "github.com/lshigami/cbtengine/internal/controller/student"
	"github.com/lshigami/cbtengine/internal/middleware"
	"github.com/lshigami/cbtengine/internal/repository"
	"github.com/lshigami/cbtengine/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

var serverModule = fx.Options(
	fx.Provide(
		database.NewDatabase,
		NewRedisClient,
		NewGinEngine,
	),

	fx.Provide(
		repository.NewQuestionRepository,
		repository.NewExamRepository,
		repository.NewExamResultRepository,
		repository.NewScoreRepository,
		repository.NewEnrollmentRepository,
		repository.NewClearanceRepository,
		repository.NewGuardianRepository,
	),

	fx.Provide(
		NewClearanceLookup,
		service.NewEligibilityGate,
		service.NewQuestionService,
		service.NewExamPaperService,
		service.NewExamSessionService,
		service.NewScoreIngestionService,
		service.NewBroadsheetService,
		service.NewRosterService,
		service.NewGuardianService,
	),

	fx.Provide(
		studentctrl.NewExamController,
		staffctrl.NewQuestionController,
		staffctrl.NewExamController,
		staffctrl.NewScoreController,
		staffctrl.NewRosterController,
		guardianctrl.NewResultController,
	),

	fx.Invoke(database.Migrate),
	fx.Invoke(RegisterRoutesAndStartServer),
)

// NewRedisClient returns nil when REDIS_ADDR is unset; clearance is then read
// straight from the database.
func NewRedisClient(lc fx.Lifecycle, cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("Redis not configured, clearance cache disabled")
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis ping failed, clearance reads will fall back to the database")
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}

// NewClearanceLookup puts the Redis cache in front of the clearance table when Redis is available.
func NewClearanceLookup(cfg *config.Config, rdb *redis.Client, repo repository.ClearanceRepository) (clearance.Lookup, service.ClearanceInvalidator) {
	if rdb == nil {
		return repo, nil
	}
	cache := clearance.NewCache(rdb, repo, cfg.Redis.ClearanceTTL)
	return cache, cache
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	origins := cfg.Server.CORSAllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: len(origins) > 0 && origins[0] != "*",
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(ctx *gin.Context) { ctx.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	return r
}

// RegisterRoutesAndStartServer mounts the API and ties the HTTP server to the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	studentExamCtrl *studentctrl.ExamController,
	questionCtrl *staffctrl.QuestionController,
	staffExamCtrl *staffctrl.ExamController,
	scoreCtrl *staffctrl.ScoreController,
	rosterCtrl *staffctrl.RosterController,
	guardianResultCtrl *guardianctrl.ResultController,
) {
	api := router.Group("/api/v1", middleware.Identity(cfg))

	studentAPI := api.Group("", middleware.RequireRole(middleware.RoleStudent))
	studentExamCtrl.RegisterRoutes(studentAPI)

	staffAPI := api.Group("/staff", middleware.RequireRole(middleware.RoleTeacher, middleware.RoleAdmin))
	questionCtrl.RegisterRoutes(staffAPI)
	staffExamCtrl.RegisterRoutes(staffAPI)
	scoreCtrl.RegisterRoutes(staffAPI)

	adminAPI := api.Group("/staff", middleware.RequireRole(middleware.RoleAdmin))
	rosterCtrl.RegisterRoutes(adminAPI)

	guardianAPI := api.Group("/guardian", middleware.RequireRole(middleware.RoleGuardian))
	guardianResultCtrl.RegisterRoutes(guardianAPI)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("CBT engine starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
