package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
	"vidtube/internal/wire"
)

func setupRouter(app *wire.Application) *mux.Router {
	router := mux.NewRouter()
	router.Use(common.RequestLogger(app.Logger))
	router.Use(common.CORS(app.Config.Server.CORSOrigin))
	router.Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	app.Media.Register(router)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/healthcheck", app.Health.Healthcheck).Methods(http.MethodGet)

	auth := common.AuthMiddleware(app.Tokens, app.Accounts)
	limited := common.RateLimit(app.AuthLimiter, app.Proxies)

	public := api.PathPrefix("/users").Subrouter()
	public.Handle("/register", limited(http.HandlerFunc(app.Users.Register))).Methods(http.MethodPost)
	public.Handle("/login", limited(http.HandlerFunc(app.Users.Login))).Methods(http.MethodPost)
	public.Handle("/refresh-token", limited(http.HandlerFunc(app.Users.RefreshToken))).Methods(http.MethodPost)

	secured := api.NewRoute().Subrouter()
	secured.Use(auth)

	users := secured.PathPrefix("/users").Subrouter()
	users.HandleFunc("/logout", app.Users.Logout).Methods(http.MethodPost)
	users.HandleFunc("/change-password", app.Users.ChangePassword).Methods(http.MethodPost)
	users.HandleFunc("/current-user", app.Users.CurrentUser).Methods(http.MethodGet)
	users.HandleFunc("/update-account", app.Users.UpdateAccount).Methods(http.MethodPatch)
	users.HandleFunc("/avatar", app.Users.UpdateAvatar).Methods(http.MethodPatch)
	users.HandleFunc("/cover-image", app.Users.UpdateCoverImage).Methods(http.MethodPatch)
	users.HandleFunc("/c/{username}", app.Users.ChannelProfile).Methods(http.MethodGet)
	users.HandleFunc("/history", app.Users.WatchHistory).Methods(http.MethodGet)
	users.HandleFunc("/details/{userId}", app.Users.AccountOverview).Methods(http.MethodGet)

	videos := secured.PathPrefix("/videos").Subrouter()
	videos.HandleFunc("", app.Videos.ListVideos).Methods(http.MethodGet)
	videos.HandleFunc("/", app.Videos.ListVideos).Methods(http.MethodGet)
	videos.HandleFunc("", app.Videos.PublishVideo).Methods(http.MethodPost)
	videos.HandleFunc("/", app.Videos.PublishVideo).Methods(http.MethodPost)
	videos.HandleFunc("/toggle/publish/{videoId}", app.Videos.TogglePublish).Methods(http.MethodPatch)
	videos.HandleFunc("/{videoId}", app.Videos.GetVideo).Methods(http.MethodGet)
	videos.HandleFunc("/{videoId}", app.Videos.UpdateVideo).Methods(http.MethodPatch)
	videos.HandleFunc("/{videoId}", app.Videos.DeleteVideo).Methods(http.MethodDelete)

	comments := secured.PathPrefix("/comments").Subrouter()
	comments.HandleFunc("/c/{commentId}", app.Comments.UpdateComment).Methods(http.MethodPatch)
	comments.HandleFunc("/c/{commentId}", app.Comments.DeleteComment).Methods(http.MethodDelete)
	comments.HandleFunc("/{videoId}", app.Comments.ListComments).Methods(http.MethodGet)
	comments.HandleFunc("/{videoId}", app.Comments.AddComment).Methods(http.MethodPost)

	likes := secured.PathPrefix("/likes").Subrouter()
	likes.HandleFunc("/toggle/v/{videoId}", app.Likes.ToggleVideoLike).Methods(http.MethodPost)
	likes.HandleFunc("/toggle/c/{commentId}", app.Likes.ToggleCommentLike).Methods(http.MethodPost)
	likes.HandleFunc("/toggle/t/{tweetId}", app.Likes.ToggleTweetLike).Methods(http.MethodPost)
	likes.HandleFunc("/videos", app.Likes.LikedVideos).Methods(http.MethodGet)
	likes.HandleFunc("/comments", app.Likes.LikedComments).Methods(http.MethodGet)
	likes.HandleFunc("/tweets", app.Likes.LikedTweets).Methods(http.MethodGet)

	tweets := secured.PathPrefix("/tweets").Subrouter()
	tweets.HandleFunc("", app.Tweets.CreateTweet).Methods(http.MethodPost)
	tweets.HandleFunc("/", app.Tweets.CreateTweet).Methods(http.MethodPost)
	tweets.HandleFunc("/user/{userId}", app.Tweets.UserTweets).Methods(http.MethodGet)
	tweets.HandleFunc("/{tweetId}", app.Tweets.UpdateTweet).Methods(http.MethodPatch)
	tweets.HandleFunc("/{tweetId}", app.Tweets.DeleteTweet).Methods(http.MethodDelete)

	playlists := secured.PathPrefix("/playlist").Subrouter()
	playlists.HandleFunc("", app.Playlists.CreatePlaylist).Methods(http.MethodPost)
	playlists.HandleFunc("/", app.Playlists.CreatePlaylist).Methods(http.MethodPost)
	playlists.HandleFunc("/user/{userId}", app.Playlists.UserPlaylists).Methods(http.MethodGet)
	playlists.HandleFunc("/add/{videoId}/{playlistId}", app.Playlists.AddVideo).Methods(http.MethodPatch)
	playlists.HandleFunc("/remove/{videoId}/{playlistId}", app.Playlists.RemoveVideo).Methods(http.MethodPatch)
	playlists.HandleFunc("/{playlistId}", app.Playlists.GetPlaylist).Methods(http.MethodGet)
	playlists.HandleFunc("/{playlistId}", app.Playlists.UpdatePlaylist).Methods(http.MethodPatch)
	playlists.HandleFunc("/{playlistId}", app.Playlists.DeletePlaylist).Methods(http.MethodDelete)

	subscriptions := secured.PathPrefix("/subscriptions").Subrouter()
	subscriptions.HandleFunc("/c/{channelId}", app.Subscriptions.ToggleSubscription).Methods(http.MethodPost)
	subscriptions.HandleFunc("/channel/{channelId}", app.Subscriptions.ChannelSubscribers).Methods(http.MethodGet)
	subscriptions.HandleFunc("/user", app.Subscriptions.SubscribedChannels).Methods(http.MethodGet)
	subscriptions.HandleFunc("/user/{userId}", app.Subscriptions.SubscribedChannels).Methods(http.MethodGet)
	subscriptions.HandleFunc("/info", app.Subscriptions.SubscribedChannels).Methods(http.MethodGet)
	subscriptions.HandleFunc("/my-subscribers", app.Subscriptions.MySubscribers).Methods(http.MethodGet)

	dashboard := secured.PathPrefix("/dashboard").Subrouter()
	dashboard.HandleFunc("/{channelId}/stats", app.Dashboard.ChannelStats).Methods(http.MethodGet)
	dashboard.HandleFunc("/{channelId}/videos", app.Dashboard.ChannelVideos).Methods(http.MethodGet)

	return router
}
