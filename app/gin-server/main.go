package main

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/mtorelli/linknest/config"
	"github.com/mtorelli/linknest/internal/api/handlers"
	"github.com/mtorelli/linknest/internal/api/middleware"
	"github.com/mtorelli/linknest/internal/api/routes"
	"github.com/mtorelli/linknest/internal/logger"
	"github.com/mtorelli/linknest/internal/messaging"
	"github.com/mtorelli/linknest/internal/providers/directory"
	"github.com/mtorelli/linknest/internal/providers/llm"
	"github.com/mtorelli/linknest/internal/scoring"
	"github.com/mtorelli/linknest/internal/services"
	"github.com/mtorelli/linknest/internal/store"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("config load failed")
	}

	ctx := context.Background()

	// Session store: Redis when configured, in-memory otherwise. A Redis that
	// is configured but unreachable falls back to memory with a warning so the
	// app still comes up.
	var sessions store.SessionStore = store.NewMemoryStore()
	if cfg.RedisAddr != "" {
		rdb, err := config.NewRedis(ctx, cfg.RedisAddr)
		if err != nil {
			log.WithError(err).Warn("redis unreachable, using in-memory sessions")
		} else {
			sessions = store.NewRedisStore(rdb, cfg.SessionTTL)
			log.Info("redis session store connected")
		}
	}

	// LLM provider is optional; without one every AI surface degrades to its
	// template or default-analysis fallback.
	var provider llm.Provider
	if cfg.GoogleProjectID != "" {
		p, err := llm.NewVertexGemini(ctx, cfg.GoogleProjectID, cfg.GoogleLocation, cfg.GeminiModel)
		if err != nil {
			log.WithError(err).Warn("vertex client init failed, running without AI provider")
		} else {
			provider = p
			defer p.Close()
		}
	} else {
		log.Info("no GOOGLE_PROJECT_ID set, running without AI provider")
	}

	var dir directory.Client
	if cfg.DirectoryArchiveDir != "" {
		dir = directory.NewArchiveClient(cfg.DirectoryArchiveDir)
	}

	scorer := scoring.NewScorer(nil)
	drafter := messaging.NewDrafter(nil)

	recSvc := services.NewRecommendationService(scorer)
	profileSvc := services.NewProfileService(recSvc)
	contactSvc := services.NewContactService(recSvc, dir)
	messageSvc := services.NewMessageService(provider, drafter, log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		SessionSecret:  cfg.SessionSecret,
		Session:        handlers.NewSessionHandler(sessions, recSvc, cfg.SessionSecret, cfg.SessionTTL),
		Profile:        handlers.NewProfileHandler(sessions, profileSvc),
		Contact:        handlers.NewContactHandler(sessions, contactSvc),
		Recommendation: handlers.NewRecommendationHandler(sessions, recSvc),
		Message:        handlers.NewMessageHandler(sessions, messageSvc),
	})

	log.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
