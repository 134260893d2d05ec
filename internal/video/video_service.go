package video

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
	"vidtube/internal/logging"
)

var sortFields = map[string]bool{
	"createdAt": true,
	"views":     true,
	"duration":  true,
	"title":     true,
}

// WatchRecorder adds a played video to the viewer's watch history.
type WatchRecorder interface {
	RecordWatch(ctx context.Context, userID, videoID primitive.ObjectID) error
}

type ListQuery struct {
	Query    string
	SortBy   string
	SortType string
	UserID   string
	Page     common.Page
}

type VideoPage struct {
	Videos     []dbmongo.VideoWithOwner `json:"videos"`
	Pagination common.PageInfo          `json:"pagination"`
}

type PublishInput struct {
	Title       string
	Description string
	Duration    float64
	VideoFile   *common.FileUpload
	Thumbnail   *common.FileUpload
}

type UpdateInput struct {
	Title       *string
	Description *string
	Thumbnail   *common.FileUpload
}

//go:generate mockgen -source=video_service.go -destination=mock_video_service_test.go -package=video

type VideoService interface {
	ListVideos(ctx context.Context, caller primitive.ObjectID, q ListQuery) (*VideoPage, error)
	PublishVideo(ctx context.Context, owner primitive.ObjectID, in PublishInput) (*dbmongo.Video, error)
	GetVideo(ctx context.Context, caller primitive.ObjectID, videoID string) (*dbmongo.VideoWithOwner, error)
	UpdateVideo(ctx context.Context, caller primitive.ObjectID, videoID string, in UpdateInput) (*dbmongo.Video, error)
	DeleteVideo(ctx context.Context, caller primitive.ObjectID, videoID string) error
	TogglePublish(ctx context.Context, caller primitive.ObjectID, videoID string) (*dbmongo.Video, error)
}

type videoService struct {
	videoRepo VideoRepository
	assets    common.AssetGateway
	watches   WatchRecorder
	now       func() time.Time
}

func NewVideoService(videoRepo VideoRepository, assets common.AssetGateway, watches WatchRecorder) VideoService {
	return &videoService{videoRepo: videoRepo, assets: assets, watches: watches, now: time.Now}
}

func (s *videoService) ListVideos(ctx context.Context, caller primitive.ObjectID, q ListQuery) (*VideoPage, error) {
	filter := ListFilter{
		Query:         strings.TrimSpace(q.Query),
		PublishedOnly: true,
		Page:          q.Page,
	}

	if q.SortBy != "" {
		if !sortFields[q.SortBy] {
			return nil, common.InvalidArgument("cannot sort by %q", q.SortBy)
		}
		filter.SortBy = q.SortBy
	}
	switch strings.ToLower(q.SortType) {
	case "", "desc":
	case "asc":
		filter.Ascending = true
	default:
		return nil, common.InvalidArgument("sortType must be asc or desc")
	}

	if q.UserID != "" {
		owner, err := common.ParseID(q.UserID, "user id")
		if err != nil {
			return nil, err
		}
		filter.Owner = &owner
		// owners see their own drafts
		filter.PublishedOnly = owner != caller
	}

	videos, total, err := s.videoRepo.List(ctx, filter)
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to fetch videos")
	}
	return &VideoPage{Videos: videos, Pagination: common.NewPageInfo(q.Page, total)}, nil
}

func (s *videoService) PublishVideo(ctx context.Context, owner primitive.ObjectID, in PublishInput) (*dbmongo.Video, error) {
	title, err := common.RequireText("title", in.Title)
	if err != nil {
		return nil, err
	}
	description, err := common.RequireText("description", in.Description)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(in.Duration) || math.IsInf(in.Duration, 0) {
		return nil, common.InvalidArgument("duration must be a finite number of seconds")
	}
	if in.Duration < 0 {
		return nil, common.InvalidArgument("duration must not be negative")
	}
	if in.VideoFile == nil {
		return nil, common.InvalidArgument("video file is required")
	}

	videoFile, err := s.upload(ctx, in.VideoFile, common.MediaFileTypeVideo, "video file")
	if err != nil {
		return nil, err
	}
	var thumbnail *common.Asset
	if in.Thumbnail != nil {
		if thumbnail, err = s.upload(ctx, in.Thumbnail, common.MediaFileTypeImage, "thumbnail"); err != nil {
			return nil, err
		}
	}

	video := &dbmongo.Video{
		VideoFile:   *videoFile,
		Thumbnail:   thumbnail,
		Title:       title,
		Description: description,
		Owner:       owner,
		Duration:    in.Duration,
		IsPublished: true,
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, common.Internal(ctx, err, "failed to publish video")
	}
	return video, nil
}

// GetVideo loads a video for playback: it counts the view and moves the
// video to the front of the caller's watch history. Unpublished videos are
// visible to their owner only.
func (s *videoService) GetVideo(ctx context.Context, caller primitive.ObjectID, videoID string) (*dbmongo.VideoWithOwner, error) {
	id, err := common.ParseID(videoID, "video id")
	if err != nil {
		return nil, err
	}

	video, err := s.videoRepo.GetWithOwner(ctx, id)
	if err != nil {
		return nil, s.mapVideoErr(ctx, err, "failed to fetch video")
	}
	if !video.IsPublished && video.Owner != caller {
		return nil, common.NotFound("video not found")
	}

	found, err := s.videoRepo.RecordView(ctx, id, s.now())
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to record view")
	}
	if !found {
		return nil, common.NotFound("video not found")
	}
	video.Views++

	if err := s.watches.RecordWatch(ctx, caller, id); err != nil {
		logging.FromContext(ctx).WithError(err).WithField("video_id", videoID).Warn("failed to update watch history")
	}
	return video, nil
}

func (s *videoService) UpdateVideo(ctx context.Context, caller primitive.ObjectID, videoID string, in UpdateInput) (*dbmongo.Video, error) {
	video, err := s.ownedVideo(ctx, caller, videoID, "update this video")
	if err != nil {
		return nil, err
	}

	var update VideoUpdate
	if in.Title != nil {
		title, err := common.RequireText("title", *in.Title)
		if err != nil {
			return nil, err
		}
		update.Title = &title
	}
	if in.Description != nil {
		description, err := common.RequireText("description", *in.Description)
		if err != nil {
			return nil, err
		}
		update.Description = &description
	}
	if update.Title == nil && update.Description == nil && in.Thumbnail == nil {
		return nil, common.InvalidArgument("nothing to update")
	}
	if in.Thumbnail != nil {
		if update.Thumbnail, err = s.upload(ctx, in.Thumbnail, common.MediaFileTypeImage, "thumbnail"); err != nil {
			return nil, err
		}
	}

	updated, err := s.videoRepo.Update(ctx, video.ID, update)
	if err != nil {
		return nil, s.mapVideoErr(ctx, err, "failed to update video")
	}
	if update.Thumbnail != nil && !video.Thumbnail.IsZero() {
		if err := s.assets.Delete(ctx, video.Thumbnail.PublicID, common.MediaFileTypeImage); err != nil {
			logging.FromContext(ctx).WithError(err).WithField("public_id", video.Thumbnail.PublicID).Warn("failed to delete replaced thumbnail")
		}
	}
	return updated, nil
}

// DeleteVideo removes the stored media first, then the document. A gateway
// failure leaves the document in place so the delete can be retried.
func (s *videoService) DeleteVideo(ctx context.Context, caller primitive.ObjectID, videoID string) error {
	video, err := s.ownedVideo(ctx, caller, videoID, "delete this video")
	if err != nil {
		return err
	}

	if !video.VideoFile.IsZero() {
		if err := s.assets.Delete(ctx, video.VideoFile.PublicID, common.MediaFileTypeVideo); err != nil {
			return common.Internal(ctx, err, "failed to delete video file")
		}
	}
	if !video.Thumbnail.IsZero() {
		if err := s.assets.Delete(ctx, video.Thumbnail.PublicID, common.MediaFileTypeImage); err != nil {
			return common.Internal(ctx, err, "failed to delete thumbnail")
		}
	}

	if err := s.videoRepo.Delete(ctx, video.ID); err != nil {
		return s.mapVideoErr(ctx, err, "failed to delete video")
	}
	return nil
}

func (s *videoService) TogglePublish(ctx context.Context, caller primitive.ObjectID, videoID string) (*dbmongo.Video, error) {
	video, err := s.ownedVideo(ctx, caller, videoID, "change the publish status of this video")
	if err != nil {
		return nil, err
	}
	updated, err := s.videoRepo.SetPublished(ctx, video.ID, !video.IsPublished)
	if err != nil {
		return nil, s.mapVideoErr(ctx, err, "failed to toggle publish status")
	}
	return updated, nil
}

func (s *videoService) ownedVideo(ctx context.Context, caller primitive.ObjectID, videoID, action string) (*dbmongo.Video, error) {
	id, err := common.ParseID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapVideoErr(ctx, err, "failed to fetch video")
	}
	if err := common.RequireOwner(video.Owner, caller, action); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *videoService) upload(ctx context.Context, file *common.FileUpload, want common.MediaFileType, what string) (*common.Asset, error) {
	defer file.Close()
	if kind, ok := file.Kind(); !ok || kind != want {
		return nil, common.InvalidArgument("%s must be a%s %s file", what, article(want), want)
	}
	asset, err := s.assets.Upload(ctx, file.Filename, file.ContentType, file.Content)
	if err != nil {
		return nil, common.Internal(ctx, err, "error while uploading "+what)
	}
	return asset, nil
}

func (s *videoService) mapVideoErr(ctx context.Context, err error, msg string) error {
	if errors.Is(err, ErrVideoNotFound) {
		return common.NotFound("video not found")
	}
	return common.Internal(ctx, err, msg)
}

func article(kind common.MediaFileType) string {
	if kind == common.MediaFileTypeImage {
		return "n"
	}
	return ""
}
