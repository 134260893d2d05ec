package like

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"vidtube/internal/dbmongo"
)

//go:generate mockgen -source=like_repository.go -destination=mock_like_repository_test.go -package=like

type LikeRepository interface {
	Toggle(ctx context.Context, likedBy primitive.ObjectID, target dbmongo.LikeTarget) (bool, error)
	LikedVideos(ctx context.Context, likedBy primitive.ObjectID) ([]dbmongo.VideoWithOwner, error)
	LikedComments(ctx context.Context, likedBy primitive.ObjectID) ([]dbmongo.CommentWithOwner, error)
	LikedTweets(ctx context.Context, likedBy primitive.ObjectID) ([]dbmongo.TweetWithOwner, error)
}

type likeRepository struct {
	likes *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) LikeRepository {
	return &likeRepository{likes: db.Collection(dbmongo.LikesCollection)}
}

// Toggle removes the caller's like on target if there is one, otherwise
// records it, and reports whether the target is now liked. The unique
// (likedBy, target.kind, target.id) index keeps concurrent toggles from
// storing a second like.
func (r *likeRepository) Toggle(ctx context.Context, likedBy primitive.ObjectID, target dbmongo.LikeTarget) (bool, error) {
	filter := bson.D{
		{Key: "likedBy", Value: likedBy},
		{Key: "target.kind", Value: target.Kind},
		{Key: "target.id", Value: target.ID},
	}
	res, err := r.likes.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to remove like: %w", err)
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	_, err = r.likes.InsertOne(ctx, dbmongo.Like{LikedBy: likedBy, Target: target, CreatedAt: time.Now().UTC()})
	if mongo.IsDuplicateKeyError(err) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to add like: %w", err)
	}
	return true, nil
}

func (r *likeRepository) LikedVideos(ctx context.Context, likedBy primitive.ObjectID) ([]dbmongo.VideoWithOwner, error) {
	return listLiked[dbmongo.VideoWithOwner](ctx, r.likes, likedBy, dbmongo.LikeKindVideo,
		bson.D{{Key: "$project", Value: bson.D{{Key: "dailyViews", Value: 0}}}})
}

func (r *likeRepository) LikedComments(ctx context.Context, likedBy primitive.ObjectID) ([]dbmongo.CommentWithOwner, error) {
	return listLiked[dbmongo.CommentWithOwner](ctx, r.likes, likedBy, dbmongo.LikeKindComment)
}

func (r *likeRepository) LikedTweets(ctx context.Context, likedBy primitive.ObjectID) ([]dbmongo.TweetWithOwner, error) {
	return listLiked[dbmongo.TweetWithOwner](ctx, r.likes, likedBy, dbmongo.LikeKindTweet)
}

// listLiked resolves the caller's likes of one kind to the liked documents,
// most recently liked first. Targets deleted since are dropped by the join.
func listLiked[T any](ctx context.Context, likes *mongo.Collection, likedBy primitive.ObjectID, kind dbmongo.LikeKind, extra ...bson.D) ([]T, error) {
	parts := []any{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "likedBy", Value: likedBy},
			{Key: "target.kind", Value: kind},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: kind.Collection()},
			{Key: "localField", Value: "target.id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "target"},
		}}},
		bson.D{{Key: "$unwind", Value: "$target"}},
		bson.D{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$target"}}}},
		dbmongo.LookupUser("owner", "ownerDetails", "username", "fullName", "avatar"),
	}
	for _, stage := range extra {
		parts = append(parts, stage)
	}

	cursor, err := likes.Aggregate(ctx, dbmongo.Stages(parts...))
	if err != nil {
		return nil, fmt.Errorf("failed to list liked %ss: %w", kind, err)
	}
	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode liked %ss: %w", kind, err)
	}
	return out, nil
}
