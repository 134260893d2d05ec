package video

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

var ErrVideoNotFound = errors.New("video not found")

// ListFilter selects a page of videos.
type ListFilter struct {
	Query         string
	Owner         *primitive.ObjectID
	PublishedOnly bool
	SortBy        string
	Ascending     bool
	Page          common.Page
}

// VideoUpdate holds the fields to change; nil fields are left alone.
type VideoUpdate struct {
	Title       *string
	Description *string
	Thumbnail   *common.Asset
}

//go:generate mockgen -source=video_repository.go -destination=mock_video_repository_test.go -package=video

type VideoRepository interface {
	Create(ctx context.Context, video *dbmongo.Video) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.Video, error)
	GetWithOwner(ctx context.Context, id primitive.ObjectID) (*dbmongo.VideoWithOwner, error)
	List(ctx context.Context, filter ListFilter) ([]dbmongo.VideoWithOwner, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, update VideoUpdate) (*dbmongo.Video, error)
	SetPublished(ctx context.Context, id primitive.ObjectID, published bool) (*dbmongo.Video, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	RecordView(ctx context.Context, id primitive.ObjectID, now time.Time) (bool, error)
}

type videoRepository struct {
	videos *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) VideoRepository {
	return &videoRepository{videos: db.Collection(dbmongo.VideosCollection)}
}

func (r *videoRepository) Create(ctx context.Context, video *dbmongo.Video) error {
	now := time.Now().UTC()
	video.CreatedAt, video.UpdatedAt = now, now
	if video.DailyViews == nil {
		video.DailyViews = []dbmongo.DailyView{}
	}

	res, err := r.videos.InsertOne(ctx, video)
	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	video.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *videoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.Video, error) {
	var video dbmongo.Video
	if err := r.videos.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&video); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to load video: %w", err)
	}
	return &video, nil
}

func (r *videoRepository) GetWithOwner(ctx context.Context, id primitive.ObjectID) (*dbmongo.VideoWithOwner, error) {
	pipeline := dbmongo.Stages(
		bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		ownerLookup(),
	)
	cursor, err := r.videos.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to load video: %w", err)
	}
	var videos []dbmongo.VideoWithOwner
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, fmt.Errorf("failed to decode video: %w", err)
	}
	if len(videos) == 0 {
		return nil, ErrVideoNotFound
	}
	return &videos[0], nil
}

func (r *videoRepository) List(ctx context.Context, filter ListFilter) ([]dbmongo.VideoWithOwner, int64, error) {
	match := bson.D{}
	if filter.Query != "" {
		match = append(match, bson.E{Key: "title", Value: primitive.Regex{Pattern: regexp.QuoteMeta(filter.Query), Options: "i"}})
	}
	if filter.Owner != nil {
		match = append(match, bson.E{Key: "owner", Value: *filter.Owner})
	}
	if filter.PublishedOnly {
		match = append(match, bson.E{Key: "isPublished", Value: true})
	}

	total, err := r.videos.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count videos: %w", err)
	}

	direction := -1
	if filter.Ascending {
		direction = 1
	}
	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}

	pipeline := dbmongo.Stages(
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: sortBy, Value: direction}, {Key: "_id", Value: direction}}}},
		bson.D{{Key: "$skip", Value: filter.Page.Skip()}},
		bson.D{{Key: "$limit", Value: filter.Page.Limit}},
		ownerLookup(),
		bson.D{{Key: "$project", Value: bson.D{{Key: "dailyViews", Value: 0}}}},
	)
	cursor, err := r.videos.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list videos: %w", err)
	}
	videos := []dbmongo.VideoWithOwner{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, 0, fmt.Errorf("failed to decode videos: %w", err)
	}
	return videos, total, nil
}

func (r *videoRepository) Update(ctx context.Context, id primitive.ObjectID, update VideoUpdate) (*dbmongo.Video, error) {
	set := bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}
	if update.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *update.Title})
	}
	if update.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *update.Description})
	}
	if update.Thumbnail != nil {
		set = append(set, bson.E{Key: "thumbnail", Value: *update.Thumbnail})
	}
	return r.findAndSet(ctx, id, set)
}

func (r *videoRepository) SetPublished(ctx context.Context, id primitive.ObjectID, published bool) (*dbmongo.Video, error) {
	return r.findAndSet(ctx, id, bson.D{
		{Key: "isPublished", Value: published},
		{Key: "updatedAt", Value: time.Now().UTC()},
	})
}

func (r *videoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.videos.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrVideoNotFound
	}
	return nil
}

// RecordView counts one view against the video and the bucket of the UTC
// day containing now. The two conditional updates are mutually exclusive on
// the stored document, so concurrent first views of a day still produce one
// bucket. It reports false when the video does not exist.
func (r *videoRepository) RecordView(ctx context.Context, id primitive.ObjectID, now time.Time) (bool, error) {
	day := ViewDay(now)

	bumped, err := r.bumpBucket(ctx, id, day)
	if err != nil || bumped {
		return bumped, err
	}

	res, err := r.videos.UpdateOne(ctx,
		bson.D{
			{Key: "_id", Value: id},
			{Key: "dailyViews.date", Value: bson.D{{Key: "$ne", Value: day}}},
		},
		bson.D{
			{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}},
			{Key: "$push", Value: bson.D{{Key: "dailyViews", Value: dbmongo.DailyView{Date: day, Count: 1}}}},
		},
	)
	if err != nil {
		return false, fmt.Errorf("failed to open view bucket: %w", err)
	}
	if res.MatchedCount == 1 {
		return true, nil
	}

	// another request opened today's bucket between the two updates
	return r.bumpBucket(ctx, id, day)
}

func (r *videoRepository) bumpBucket(ctx context.Context, id primitive.ObjectID, day time.Time) (bool, error) {
	res, err := r.videos.UpdateOne(ctx,
		bson.D{
			{Key: "_id", Value: id},
			{Key: "dailyViews.date", Value: day},
		},
		bson.D{{Key: "$inc", Value: bson.D{
			{Key: "views", Value: 1},
			{Key: "dailyViews.$.count", Value: 1},
		}}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to record view: %w", err)
	}
	return res.MatchedCount == 1, nil
}

func (r *videoRepository) findAndSet(ctx context.Context, id primitive.ObjectID, set bson.D) (*dbmongo.Video, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var video dbmongo.Video
	err := r.videos.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrVideoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update video: %w", err)
	}
	return &video, nil
}

func ownerLookup() mongo.Pipeline {
	return dbmongo.LookupUser("owner", "ownerDetails", "username", "fullName", "avatar")
}

// ViewDay truncates t to midnight UTC, the key of a daily view bucket.
func ViewDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
