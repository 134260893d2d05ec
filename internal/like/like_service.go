package like

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

//go:generate mockgen -source=like_service.go -destination=mock_like_service_test.go -package=like

type LikeService interface {
	ToggleLike(ctx context.Context, caller primitive.ObjectID, kind dbmongo.LikeKind, targetID string) (bool, error)
	LikedVideos(ctx context.Context, caller primitive.ObjectID) ([]dbmongo.VideoWithOwner, error)
	LikedComments(ctx context.Context, caller primitive.ObjectID) ([]dbmongo.CommentWithOwner, error)
	LikedTweets(ctx context.Context, caller primitive.ObjectID) ([]dbmongo.TweetWithOwner, error)
}

type likeService struct {
	likeRepo LikeRepository
}

func NewLikeService(likeRepo LikeRepository) LikeService {
	return &likeService{likeRepo: likeRepo}
}

// ToggleLike flips the caller's like on a video, comment or tweet and
// reports whether it is now liked.
func (s *likeService) ToggleLike(ctx context.Context, caller primitive.ObjectID, kind dbmongo.LikeKind, targetID string) (bool, error) {
	if !kind.IsValid() {
		return false, common.InvalidArgument("cannot like a %q", kind)
	}
	id, err := common.ParseID(targetID, string(kind)+" id")
	if err != nil {
		return false, err
	}
	liked, err := s.likeRepo.Toggle(ctx, caller, dbmongo.LikeTarget{Kind: kind, ID: id})
	if err != nil {
		return false, common.Internal(ctx, err, "failed to toggle like")
	}
	return liked, nil
}

func (s *likeService) LikedVideos(ctx context.Context, caller primitive.ObjectID) ([]dbmongo.VideoWithOwner, error) {
	videos, err := s.likeRepo.LikedVideos(ctx, caller)
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to fetch liked videos")
	}
	return videos, nil
}

func (s *likeService) LikedComments(ctx context.Context, caller primitive.ObjectID) ([]dbmongo.CommentWithOwner, error) {
	comments, err := s.likeRepo.LikedComments(ctx, caller)
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to fetch liked comments")
	}
	return comments, nil
}

func (s *likeService) LikedTweets(ctx context.Context, caller primitive.ObjectID) ([]dbmongo.TweetWithOwner, error) {
	tweets, err := s.likeRepo.LikedTweets(ctx, caller)
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to fetch liked tweets")
	}
	return tweets, nil
}
