package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careerhub-backend/internal/config"
	"careerhub-backend/internal/handlers"
	"careerhub-backend/internal/middleware"
	"careerhub-backend/internal/repository"
	"careerhub-backend/internal/services"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	// Initialize repositories (all state is process-local and in-memory)
	userRepo := repository.NewUserRepository()
	settingsRepo := repository.NewSettingsRepository()
	postRepo := repository.NewPostRepository()
	likeRepo := repository.NewLikeRecordRepository(cfg.Engagement.DailyLikeLimit)
	favoriteRepo := repository.NewFavoriteRepository()
	tagRepo := repository.NewTagHistoryRepository()
	achievementRepo := repository.NewAchievementRepository()
	notificationRepo := repository.NewNotificationRepository(cfg.Engagement.NotificationCap)
	messageRepo := repository.NewMessageRepository()
	companyRepo := repository.NewCompanyRepository()
	offerRepo := repository.NewOfferRepository()
	companyVoteRepo := repository.NewCompanyVoteRepository()

	// Initialize services
	moderator := services.NewModerator(cfg.Moderation.ProhibitedWords)
	userService := services.NewUserService(userRepo, settingsRepo, cfg.JWT.Secret)
	notificationService := services.NewNotificationService(notificationRepo)
	achievementService := services.NewAchievementService(achievementRepo, userRepo)
	postService := services.NewPostService(
		postRepo,
		likeRepo,
		favoriteRepo,
		tagRepo,
		userRepo,
		moderator,
		notificationService,
		cfg.Engagement.ReplyMaxLength,
	)
	messageService := services.NewMessageService(
		messageRepo,
		userRepo,
		settingsRepo,
		moderator,
		notificationService,
		cfg.Engagement.MessageMaxLength,
	)
	dreamJobService := services.NewDreamJobService(
		companyRepo,
		offerRepo,
		companyVoteRepo,
		userRepo,
		moderator,
		achievementService,
	)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	postHandler := handlers.NewPostHandler(postService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	messageHandler := handlers.NewMessageHandler(messageService)
	dreamJobHandler := handlers.NewDreamJobHandler(dreamJobService, achievementService)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware)

	// Routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Get("/posts", postHandler.List)
		r.Get("/dream-jobs/posts", postHandler.ListDream)
		r.Get("/dream-jobs/companies", dreamJobHandler.Companies)
		r.Get("/dream-jobs/offers", dreamJobHandler.Offers)
		r.Get("/dream-jobs/leaderboard", dreamJobHandler.Leaderboard)
		r.Get("/dream-jobs/stats", dreamJobHandler.Stats)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(userService))

			r.Get("/profile", authHandler.GetProfile)
			r.Post("/profile", authHandler.SaveProfile)
			r.Post("/verification", authHandler.SubmitVerification)
			r.Get("/verification/status", authHandler.VerificationStatus)
			r.Get("/settings", authHandler.GetSettings)
			r.Post("/settings", authHandler.UpdateSettings)

			r.Post("/posts", postHandler.Create)
			r.Post("/posts/{post_id}/like", postHandler.Like)
			r.Post("/posts/{post_id}/vote", postHandler.VoteDream)
			r.Post("/posts/{post_id}/comments", postHandler.AddComment)
			r.Post("/posts/{post_id}/comments/{comment_id}/replies", postHandler.AddReply)
			r.Delete("/posts/{post_id}", postHandler.Delete)
			r.Post("/posts/{post_id}/favorite", postHandler.ToggleFavorite)
			r.Get("/favorites", postHandler.Favorites)
			r.Get("/tags/history", postHandler.TagHistory)

			r.Get("/notifications", notificationHandler.List)
			r.Post("/notifications/read", notificationHandler.MarkRead)

			r.Get("/messages/conversations", messageHandler.Conversations)
			r.Get("/messages/unread-count", messageHandler.UnreadCount)
			r.Get("/messages/{user_id}", messageHandler.Fetch)
			r.Post("/messages/{user_id}", messageHandler.Send)

			r.Post("/dream-jobs/companies/{company_id}/vote", dreamJobHandler.VoteCompany)
			r.Post("/dream-jobs/offers", dreamJobHandler.SubmitOffer)
			r.Post("/dream-jobs/offers/{offer_id}/like", dreamJobHandler.LikeOffer)
			r.Get("/dream-jobs/achievements", dreamJobHandler.Achievements)
		})
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
