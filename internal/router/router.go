package router

import (
	"time"

	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"playtube/internal/handler"
	"playtube/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	User         *handler.UserHandler
	Video        *handler.VideoHandler
	Comment      *handler.CommentHandler
	Reply        *handler.ReplyHandler
	Tweet        *handler.TweetHandler
	Like         *handler.LikeHandler
	Subscription *handler.SubscriptionHandler
	Playlist     *handler.PlaylistHandler
	Dashboard    *handler.DashboardHandler
	Health       *handler.HealthHandler
}

// Options carries router-level configuration.
type Options struct {
	CORSOrigins    string
	RequestTimeout time.Duration
}

// Setup configures the middleware stack and all API routes on the given
// Fiber app. Middleware order matters: recover first, then logging, CORS,
// metrics, the request deadline and finally the per-group rate limiters.
func Setup(app *fiber.App, h *Handlers, auth *middleware.Auth, opts Options) {
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(opts.CORSOrigins))
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.WithTimeout(opts.RequestTimeout))

	authLimit := middleware.NewAuthRateLimiter().Handler()
	uploadLimit := middleware.NewUploadRateLimiter().Handler()
	toggleLimit := middleware.NewToggleRateLimiter().Handler()
	apiLimit := middleware.NewAPIRateLimiter().Handler()

	app.Get("/metrics", handler.MetricsHandler())

	api := app.Group("/api/v1", apiLimit)

	// Healthcheck
	api.Get("/healthcheck", h.Health.Live)
	api.Get("/healthcheck/ready", h.Health.Ready)

	// Users
	users := api.Group("/users")
	users.Post("/register", h.User.Register, authLimit)
	users.Post("/login", h.User.Login, authLimit)
	users.Post("/refresh-token", h.User.Refresh, authLimit)
	users.Post("/logout", h.User.Logout, auth.Require())
	users.Post("/change-password", h.User.ChangePassword, auth.Require())
	users.Get("/current-user", h.User.CurrentUser, auth.Require())
	users.Get("/c/:username", h.User.Channel, auth.Optional())
	users.Get("/history", h.User.History, auth.Require())
	users.Patch("/update-acc", h.User.UpdateAccount, auth.Require())
	users.Patch("/avatar", h.User.UpdateAvatar, auth.Require(), uploadLimit)
	users.Patch("/cover-image", h.User.UpdateCoverImage, auth.Require(), uploadLimit)
	users.Delete("/channel/delete", h.User.DeleteChannel, auth.Require())

	// Videos
	videos := api.Group("/videos")
	videos.Post("/publish", h.Video.Publish, auth.Require(), uploadLimit)
	videos.Get("/c/:videoId", h.Video.Get, auth.Optional())
	videos.Get("/getall/:userId", h.Video.ListByChannel)
	videos.Patch("/update/:videoId", h.Video.Update, auth.Require(), uploadLimit)
	videos.Patch("/toggle/publish/:videoId", h.Video.TogglePublish, auth.Require())
	videos.Delete("/delete/:videoId", h.Video.Delete, auth.Require())

	// Comments
	comments := api.Group("/comments")
	comments.Post("/add/:videoId", h.Comment.AddToVideo, auth.Require())
	comments.Post("/tweet/:tweetId", h.Comment.AddToTweet, auth.Require())
	comments.Patch("/update/:commentId", h.Comment.Update, auth.Require())
	comments.Delete("/delete/:commentId", h.Comment.Delete, auth.Require())
	comments.Get("/get/:videoId", h.Comment.ListForVideo)
	comments.Get("/getall/:tweetId", h.Comment.ListForTweet)

	// Replies
	replies := api.Group("/replies", auth.Require())
	replies.Post("/comment/:commentId", h.Reply.Create)
	replies.Patch("/update/:replyId", h.Reply.Update)
	replies.Delete("/delete/:replyId", h.Reply.Delete)
	replies.Get("/get/:commentId", h.Reply.ListForComment)

	// Tweets
	tweets := api.Group("/tweets")
	tweets.Post("/create", h.Tweet.Create, auth.Require())
	tweets.Get("/get/:userId", h.Tweet.ListForUser)
	tweets.Patch("/update/:tweetId", h.Tweet.Update, auth.Require())
	tweets.Delete("/delete/:tweetId", h.Tweet.Delete, auth.Require())

	// Likes
	likes := api.Group("/likes", auth.Require())
	likes.Post("/video/:videoId", h.Like.ToggleVideo, toggleLimit)
	likes.Post("/comment/:commentId", h.Like.ToggleComment, toggleLimit)
	likes.Post("/tweet/:tweetId", h.Like.ToggleTweet, toggleLimit)
	likes.Post("/reply/:replyId", h.Like.ToggleReply, toggleLimit)
	likes.Get("/getall/liked", h.Like.LikedVideos)

	// Subscriptions
	subs := api.Group("/subscriptions", auth.Require())
	subs.Post("/:channelId", h.Subscription.Toggle, toggleLimit)
	subs.Get("/channels/subscribed-channels", h.Subscription.SubscribedChannels)
	subs.Get("/:channelId", h.Subscription.Subscribers)

	// Playlists
	playlists := api.Group("/playlists", auth.Require())
	playlists.Post("/create", h.Playlist.Create)
	playlists.Get("/get/:playlistId", h.Playlist.Get)
	playlists.Get("/:userId", h.Playlist.ListForUser)
	playlists.Patch("/add/:videoId/:playlistId", h.Playlist.AddVideo)
	playlists.Patch("/remove/:videoId/:playlistId", h.Playlist.RemoveVideo)
	playlists.Patch("/update/:playlistId", h.Playlist.Update)
	playlists.Patch("/toggle/:playlistId", h.Playlist.TogglePublish)
	playlists.Delete("/delete/:playlistId", h.Playlist.Delete)

	// Dashboard
	dashboard := api.Group("/dashboard", auth.Require())
	dashboard.Get("/stats", h.Dashboard.Stats)
	dashboard.Get("/videos", h.Dashboard.Videos)
}
