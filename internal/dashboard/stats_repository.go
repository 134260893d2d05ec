package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

// VideoTotals sums over every video a channel owns.
type VideoTotals struct {
	Videos    int64   `bson:"videos"`
	Views     int64   `bson:"views"`
	WatchTime float64 `bson:"watchTime"`
}

// TopVideo is the channel's most viewed video.
type TopVideo struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Title     string             `bson:"title" json:"title"`
	Views     int64              `bson:"views" json:"views"`
	Thumbnail *common.Asset      `bson:"thumbnail,omitempty" json:"thumbnail"`
}

type StatsRepository interface {
	VideoTotals(ctx context.Context, channel primitive.ObjectID) (VideoTotals, error)
	VideoIDs(ctx context.Context, channel primitive.ObjectID) ([]primitive.ObjectID, error)
	SubscriberCount(ctx context.Context, channel primitive.ObjectID) (int64, error)
	LikeCount(ctx context.Context, videoIDs []primitive.ObjectID) (int64, error)
	CommentCount(ctx context.Context, videoIDs []primitive.ObjectID) (int64, error)
	ViewsSince(ctx context.Context, channel primitive.ObjectID, since time.Time) (int64, error)
	TopVideo(ctx context.Context, channel primitive.ObjectID) (*TopVideo, error)
}

type statsRepository struct {
	videos        *mongo.Collection
	likes         *mongo.Collection
	comments      *mongo.Collection
	subscriptions *mongo.Collection
}

func NewStatsRepository(db *mongo.Database) StatsRepository {
	return &statsRepository{
		videos:        db.Collection(dbmongo.VideosCollection),
		likes:         db.Collection(dbmongo.LikesCollection),
		comments:      db.Collection(dbmongo.CommentsCollection),
		subscriptions: db.Collection(dbmongo.SubscriptionsCollection),
	}
}

func (r *statsRepository) VideoTotals(ctx context.Context, channel primitive.ObjectID) (VideoTotals, error) {
	var totals VideoTotals
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "owner", Value: channel}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "videos", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "views", Value: bson.D{{Key: "$sum", Value: "$views"}}},
			{Key: "watchTime", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$multiply", Value: bson.A{"$duration", "$views"}},
			}}}},
		}}},
	}
	found, err := r.aggregateOne(ctx, r.videos, pipeline, &totals)
	if err != nil || !found {
		return VideoTotals{}, err
	}
	return totals, nil
}

func (r *statsRepository) VideoIDs(ctx context.Context, channel primitive.ObjectID) ([]primitive.ObjectID, error) {
	ids, err := r.videos.Distinct(ctx, "_id", bson.D{{Key: "owner", Value: channel}})
	if err != nil {
		return nil, fmt.Errorf("failed to list channel videos: %w", err)
	}
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, ok := id.(primitive.ObjectID); ok {
			out = append(out, oid)
		}
	}
	return out, nil
}

func (r *statsRepository) SubscriberCount(ctx context.Context, channel primitive.ObjectID) (int64, error) {
	n, err := r.subscriptions.CountDocuments(ctx, bson.D{{Key: "channel", Value: channel}})
	if err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return n, nil
}

func (r *statsRepository) LikeCount(ctx context.Context, videoIDs []primitive.ObjectID) (int64, error) {
	if len(videoIDs) == 0 {
		return 0, nil
	}
	n, err := r.likes.CountDocuments(ctx, bson.D{
		{Key: "target.kind", Value: dbmongo.LikeKindVideo},
		{Key: "target.id", Value: bson.D{{Key: "$in", Value: videoIDs}}},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return n, nil
}

func (r *statsRepository) CommentCount(ctx context.Context, videoIDs []primitive.ObjectID) (int64, error) {
	if len(videoIDs) == 0 {
		return 0, nil
	}
	n, err := r.comments.CountDocuments(ctx, bson.D{{Key: "video", Value: bson.D{{Key: "$in", Value: videoIDs}}}})
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return n, nil
}

// ViewsSince sums the daily view buckets dated at or after since.
func (r *statsRepository) ViewsSince(ctx context.Context, channel primitive.ObjectID, since time.Time) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "owner", Value: channel}}}},
		{{Key: "$unwind", Value: "$dailyViews"}},
		{{Key: "$match", Value: bson.D{{Key: "dailyViews.date", Value: bson.D{{Key: "$gte", Value: since}}}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "views", Value: bson.D{{Key: "$sum", Value: "$dailyViews.count"}}},
		}}},
	}
	var out struct {
		Views int64 `bson:"views"`
	}
	if _, err := r.aggregateOne(ctx, r.videos, pipeline, &out); err != nil {
		return 0, err
	}
	return out.Views, nil
}

// TopVideo returns the most viewed video, the lowest id winning ties, or
// nil when the channel has none.
func (r *statsRepository) TopVideo(ctx context.Context, channel primitive.ObjectID) (*TopVideo, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "views", Value: -1}, {Key: "_id", Value: 1}}).
		SetProjection(bson.D{{Key: "title", Value: 1}, {Key: "views", Value: 1}, {Key: "thumbnail", Value: 1}})

	var top TopVideo
	err := r.videos.FindOne(ctx, bson.D{{Key: "owner", Value: channel}}, opts).Decode(&top)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find top video: %w", err)
	}
	return &top, nil
}

func (r *statsRepository) aggregateOne(ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline, out any) (bool, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return false, fmt.Errorf("failed to aggregate %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return false, cursor.Err()
	}
	if err := cursor.Decode(out); err != nil {
		return false, fmt.Errorf("failed to decode %s aggregate: %w", coll.Name(), err)
	}
	return true, nil
}
