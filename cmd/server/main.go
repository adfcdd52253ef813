package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"playtube/internal/blob"
	"playtube/internal/config"
	"playtube/internal/db"
	"playtube/internal/handler"
	"playtube/internal/middleware"
	"playtube/internal/repository"
	"playtube/internal/router"
	"playtube/internal/service"
	"playtube/pkg/token"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "playtube-api")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	blobs, err := blob.New(ctx, blob.Options{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		UseSSL:    cfg.MinioUseSSL,
		Bucket:    cfg.MinioBucket,
	})
	if err != nil {
		log.Fatalf("failed to connect to blob store: %v", err)
	}

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	handler.InitMetrics(pool)

	tokens := token.NewManager(
		cfg.AccessTokenSecret, cfg.AccessTokenTTL,
		cfg.RefreshTokenSecret, cfg.RefreshTokenTTL,
	)

	// Repositories
	userRepo := repository.NewUserRepo(pool)
	videoRepo := repository.NewVideoRepo(pool)
	commentRepo := repository.NewCommentRepo(pool)
	replyRepo := repository.NewReplyRepo(pool)
	tweetRepo := repository.NewTweetRepo(pool)
	likeRepo := repository.NewLikeRepo(pool)
	subRepo := repository.NewSubscriptionRepo(pool)
	playlistRepo := repository.NewPlaylistRepo(pool)

	// Services
	authSvc := service.NewAuthService(userRepo, tokens, blobs)
	userSvc := service.NewUserService(userRepo, blobs, cache)
	videoSvc := service.NewVideoService(videoRepo, userRepo, likeRepo, blobs)
	commentSvc := service.NewCommentService(commentRepo, videoRepo, tweetRepo)
	replySvc := service.NewReplyService(replyRepo, commentRepo)
	tweetSvc := service.NewTweetService(tweetRepo, userRepo)
	likeSvc := service.NewLikeService(likeRepo, videoRepo, commentRepo, tweetRepo, replyRepo)
	subSvc := service.NewSubscriptionService(subRepo, userRepo, cache)
	playlistSvc := service.NewPlaylistService(playlistRepo, videoRepo, userRepo)
	dashboardSvc := service.NewDashboardService(videoRepo, subRepo, likeRepo)

	cookies := handler.CookieConfig{
		Secure:     cfg.Environment == "production",
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
	}

	handlers := &router.Handlers{
		User:         handler.NewUserHandler(authSvc, userSvc, cookies),
		Video:        handler.NewVideoHandler(videoSvc),
		Comment:      handler.NewCommentHandler(commentSvc),
		Reply:        handler.NewReplyHandler(replySvc),
		Tweet:        handler.NewTweetHandler(tweetSvc),
		Like:         handler.NewLikeHandler(likeSvc),
		Subscription: handler.NewSubscriptionHandler(subSvc),
		Playlist:     handler.NewPlaylistHandler(playlistSvc),
		Dashboard:    handler.NewDashboardHandler(dashboardSvc),
		Health:       handler.NewHealthHandler(pool, cache.Client()),
	}

	auth := middleware.NewAuth(tokens, userRepo)

	app := fiber.New(fiber.Config{
		AppName:      "PlayTube API",
		ServerHeader: "PlayTube",
		BodyLimit:    200 * 1024 * 1024, // video uploads
	})

	router.Setup(app, handlers, auth, router.Options{
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
	})

	middleware.Logger.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Environment).
		Msg("playtube backend starting")
	log.Fatal(app.Listen(":" + cfg.Port))
}
