package wire

import (
	"context"
	"fmt"
	"time"

	"github.com/google/wire"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"vidtube/internal/comment"
	"vidtube/internal/common"
	"vidtube/internal/config"
	"vidtube/internal/dashboard"
	"vidtube/internal/dbmongo"
	"vidtube/internal/health"
	"vidtube/internal/like"
	"vidtube/internal/logging"
	"vidtube/internal/media"
	"vidtube/internal/playlist"
	"vidtube/internal/storage"
	"vidtube/internal/subscription"
	"vidtube/internal/tweet"
	"vidtube/internal/user"
	"vidtube/internal/video"
)

const (
	rateLimiterIdleTTL  = 10 * time.Minute
	storeHealthInterval = 15 * time.Second
)

// Application holds everything the HTTP and gRPC servers are built from.
type Application struct {
	Config        *config.Config
	Logger        *logrus.Logger
	Mongo         *dbmongo.MongoClient
	Tokens        *common.TokenIssuer
	Accounts      common.AccountLookup
	AuthLimiter   common.RateLimiter
	Proxies       *common.TrustedProxies
	Users         *user.Handler
	Videos        *video.Handler
	Comments      *comment.Handler
	Likes         *like.Handler
	Tweets        *tweet.Handler
	Playlists     *playlist.Handler
	Subscriptions *subscription.Handler
	Dashboard     *dashboard.Handler
	Media         *media.HTTPServer
	Health        *health.Handler
	Monitor       *health.Monitor
}

var infraSet = wire.NewSet(
	ProvideConfig,
	ProvideLogger,
	ProvideMongo,
	ProvideDatabase,
	ProvideMediaStorage,
	ProvideAssetGateway,
	ProvideTokenIssuer,
	ProvideAuthLimiter,
	ProvideTrustedProxies,
	ProvideMonitor,
	health.NewHandler,
	media.NewHTTPServer,
	wire.Bind(new(media.FileSource), new(*dbmongo.MediaStorage)),
)

var featureSet = wire.NewSet(
	user.NewUserRepository,
	user.NewUserService,
	ProvideUserHandler,
	ProvideAccountLookup,
	ProvideWatchRecorder,
	video.NewVideoRepository,
	video.NewVideoService,
	ProvideVideoHandler,
	ProvideVideoLister,
	comment.NewCommentRepository,
	comment.NewCommentService,
	comment.NewHandler,
	like.NewLikeRepository,
	like.NewLikeService,
	like.NewHandler,
	tweet.NewTweetRepository,
	tweet.NewTweetService,
	tweet.NewHandler,
	playlist.NewPlaylistRepository,
	playlist.NewPlaylistService,
	playlist.NewHandler,
	subscription.NewSubscriptionRepository,
	subscription.NewSubscriptionService,
	subscription.NewHandler,
	dashboard.NewStatsRepository,
	dashboard.NewDashboardService,
	dashboard.NewHandler,
)

func ProvideConfig() (*config.Config, error) {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func ProvideLogger(cfg *config.Config) *logrus.Logger {
	return logging.New(cfg.Logging)
}

// ProvideMongo connects and makes sure the indexes the repositories rely on
// exist before any request is served.
func ProvideMongo(cfg *config.Config, log *logrus.Logger) (*dbmongo.MongoClient, func(), error) {
	client, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Close(ctx); err != nil {
			log.WithError(err).Warn("failed to disconnect from MongoDB")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := client.EnsureIndexes(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	log.WithField("database", cfg.MongoDB.Database).Info("connected to MongoDB")
	return client, cleanup, nil
}

func ProvideDatabase(client *dbmongo.MongoClient) *mongo.Database {
	return client.Database
}

func ProvideMediaStorage(client *dbmongo.MongoClient, cfg *config.Config) *dbmongo.MediaStorage {
	return dbmongo.NewMediaStorage(client, cfg.Server.MediaBaseURL)
}

// ProvideAssetGateway picks the media backend. GridFS files are still served
// from /media either way.
func ProvideAssetGateway(cfg *config.Config, gridFS *dbmongo.MediaStorage, log *logrus.Logger) (common.AssetGateway, error) {
	if cfg.Storage.Backend != "s3" {
		return gridFS, nil
	}
	gw, err := storage.NewS3Gateway(context.Background(), cfg.Storage)
	if err != nil {
		return nil, err
	}
	log.WithField("bucket", cfg.Storage.Bucket).Info("storing media in S3")
	return gw, nil
}

func ProvideTokenIssuer(cfg *config.Config) *common.TokenIssuer {
	return common.NewTokenIssuer(cfg.Auth)
}

func ProvideAuthLimiter(cfg *config.Config) common.RateLimiter {
	return common.NewIPRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, rateLimiterIdleTTL)
}

func ProvideTrustedProxies(cfg *config.Config) (*common.TrustedProxies, error) {
	return common.NewTrustedProxies(cfg.Server.TrustedProxies)
}

func ProvideMonitor(client *dbmongo.MongoClient, log *logrus.Logger) *health.Monitor {
	return health.NewMonitor(client, storeHealthInterval, log)
}

func ProvideUserHandler(svc user.UserService, tokens *common.TokenIssuer, cfg *config.Config) *user.Handler {
	return user.NewHandler(svc, tokens, cfg.Auth.SecureCookies, maxUploadBytes(cfg))
}

func ProvideVideoHandler(svc video.VideoService, cfg *config.Config) *video.Handler {
	return video.NewHandler(svc, maxUploadBytes(cfg))
}

func ProvideAccountLookup(repo user.UserRepository) common.AccountLookup {
	return repo
}

func ProvideWatchRecorder(svc user.UserService) video.WatchRecorder {
	return svc
}

func ProvideVideoLister(repo video.VideoRepository) dashboard.VideoLister {
	return repo
}

func maxUploadBytes(cfg *config.Config) int64 {
	return int64(cfg.Storage.MaxUploadMB) << 20
}
