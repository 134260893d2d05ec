package dashboard

import (
	"context"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
	"vidtube/internal/video"
)

const recentViewsWindow = 7 * 24 * time.Hour

// Stats summarises a channel.
type Stats struct {
	TotalVideos      int64     `json:"totalVideos"`
	TotalViews       int64     `json:"totalViews"`
	TotalSubscribers int64     `json:"totalSubscribers"`
	TotalLikes       int64     `json:"totalLikes"`
	TotalComments    int64     `json:"totalComments"`
	Last7DaysViews   int64     `json:"last7DaysViews"`
	TopVideo         *TopVideo `json:"topVideo"`
	AvgViewsPerVideo int64     `json:"avgViewsPerVideo"`
	TotalWatchTime   float64   `json:"totalWatchTime"`
}

type ChannelVideos struct {
	Videos     []dbmongo.VideoWithOwner `json:"videos"`
	Pagination common.PageInfo          `json:"pagination"`
}

// VideoLister pages through videos.
type VideoLister interface {
	List(ctx context.Context, filter video.ListFilter) ([]dbmongo.VideoWithOwner, int64, error)
}

//go:generate mockgen -source=dashboard_service.go -destination=mock_dashboard_service_test.go -package=dashboard

type DashboardService interface {
	ChannelStats(ctx context.Context, channelID string) (*Stats, error)
	ChannelVideos(ctx context.Context, caller primitive.ObjectID, channelID string, page common.Page) (*ChannelVideos, error)
}

type dashboardService struct {
	statsRepo StatsRepository
	videos    VideoLister
	now       func() time.Time
}

func NewDashboardService(statsRepo StatsRepository, videos VideoLister) DashboardService {
	return &dashboardService{statsRepo: statsRepo, videos: videos, now: time.Now}
}

// ChannelStats runs the independent sub-queries concurrently. Likes and
// comments are counted over the channel's video ids once those are known.
func (s *dashboardService) ChannelStats(ctx context.Context, channelID string) (*Stats, error) {
	channel, err := common.ParseID(channelID, "channel id")
	if err != nil {
		return nil, err
	}

	var stats Stats
	var totals VideoTotals
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totals, err = s.statsRepo.VideoTotals(gctx, channel)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalSubscribers, err = s.statsRepo.SubscriberCount(gctx, channel)
		return err
	})
	g.Go(func() error {
		var err error
		stats.Last7DaysViews, err = s.statsRepo.ViewsSince(gctx, channel, s.now().Add(-recentViewsWindow))
		return err
	})
	g.Go(func() error {
		var err error
		stats.TopVideo, err = s.statsRepo.TopVideo(gctx, channel)
		return err
	})
	g.Go(func() error {
		ids, err := s.statsRepo.VideoIDs(gctx, channel)
		if err != nil {
			return err
		}
		inner, ictx := errgroup.WithContext(gctx)
		inner.Go(func() error {
			var err error
			stats.TotalLikes, err = s.statsRepo.LikeCount(ictx, ids)
			return err
		})
		inner.Go(func() error {
			var err error
			stats.TotalComments, err = s.statsRepo.CommentCount(ictx, ids)
			return err
		})
		return inner.Wait()
	})

	if err := g.Wait(); err != nil {
		return nil, common.Internal(ctx, err, "failed to fetch channel stats")
	}

	stats.TotalVideos = totals.Videos
	stats.TotalViews = totals.Views
	stats.TotalWatchTime = totals.WatchTime
	stats.AvgViewsPerVideo = averageViews(totals.Views, totals.Videos)
	return &stats, nil
}

// ChannelVideos pages through a channel's videos, newest first. Drafts are
// included only for the channel's owner.
func (s *dashboardService) ChannelVideos(ctx context.Context, caller primitive.ObjectID, channelID string, page common.Page) (*ChannelVideos, error) {
	channel, err := common.ParseID(channelID, "channel id")
	if err != nil {
		return nil, err
	}
	videos, total, err := s.videos.List(ctx, video.ListFilter{
		Owner:         &channel,
		PublishedOnly: channel != caller,
		SortBy:        "createdAt",
		Page:          page,
	})
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to fetch channel videos")
	}
	return &ChannelVideos{Videos: videos, Pagination: common.NewPageInfo(page, total)}, nil
}

func averageViews(views, videos int64) int64 {
	if videos == 0 {
		return 0
	}
	return int64(math.Round(float64(views) / float64(videos)))
}
