package comment

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

var ErrCommentNotFound = errors.New("comment not found")

//go:generate mockgen -source=comment_repository.go -destination=mock_comment_repository_test.go -package=comment

type CommentRepository interface {
	Create(ctx context.Context, comment *dbmongo.Comment) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.Comment, error)
	ListByVideo(ctx context.Context, videoID primitive.ObjectID, page common.Page) ([]dbmongo.CommentWithOwner, int64, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*dbmongo.Comment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	VideoExists(ctx context.Context, videoID primitive.ObjectID) (bool, error)
}

type commentRepository struct {
	comments *mongo.Collection
	videos   *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) CommentRepository {
	return &commentRepository{
		comments: db.Collection(dbmongo.CommentsCollection),
		videos:   db.Collection(dbmongo.VideosCollection),
	}
}

func (r *commentRepository) Create(ctx context.Context, comment *dbmongo.Comment) error {
	now := time.Now().UTC()
	comment.CreatedAt, comment.UpdatedAt = now, now

	res, err := r.comments.InsertOne(ctx, comment)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	comment.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.Comment, error) {
	var comment dbmongo.Comment
	if err := r.comments.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&comment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to load comment: %w", err)
	}
	return &comment, nil
}

// ListByVideo returns a page of a video's comments, newest first.
func (r *commentRepository) ListByVideo(ctx context.Context, videoID primitive.ObjectID, page common.Page) ([]dbmongo.CommentWithOwner, int64, error) {
	match := bson.D{{Key: "video", Value: videoID}}
	total, err := r.comments.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	pipeline := dbmongo.Stages(
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
		bson.D{{Key: "$skip", Value: page.Skip()}},
		bson.D{{Key: "$limit", Value: page.Limit}},
		dbmongo.LookupUser("owner", "ownerDetails", "username", "email", "avatar"),
	)
	cursor, err := r.comments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	comments := []dbmongo.CommentWithOwner{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, 0, fmt.Errorf("failed to decode comments: %w", err)
	}
	return comments, total, nil
}

func (r *commentRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*dbmongo.Comment, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}

	var comment dbmongo.Comment
	err := r.comments.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return &comment, nil
}

func (r *commentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.comments.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (r *commentRepository) VideoExists(ctx context.Context, videoID primitive.ObjectID) (bool, error) {
	n, err := r.videos.CountDocuments(ctx, bson.D{{Key: "_id", Value: videoID}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check video: %w", err)
	}
	return n > 0, nil
}
