package tweet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vidtube/internal/dbmongo"
)

var ErrTweetNotFound = errors.New("tweet not found")

//go:generate mockgen -source=tweet_repository.go -destination=mock_tweet_repository_test.go -package=tweet

type TweetRepository interface {
	Create(ctx context.Context, tweet *dbmongo.Tweet) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.Tweet, error)
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]dbmongo.TweetWithOwner, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*dbmongo.Tweet, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type tweetRepository struct {
	tweets *mongo.Collection
}

func NewTweetRepository(db *mongo.Database) TweetRepository {
	return &tweetRepository{tweets: db.Collection(dbmongo.TweetsCollection)}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *dbmongo.Tweet) error {
	now := time.Now().UTC()
	tweet.CreatedAt, tweet.UpdatedAt = now, now

	res, err := r.tweets.InsertOne(ctx, tweet)
	if err != nil {
		return fmt.Errorf("failed to create tweet: %w", err)
	}
	tweet.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *tweetRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.Tweet, error) {
	var tweet dbmongo.Tweet
	if err := r.tweets.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&tweet); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTweetNotFound
		}
		return nil, fmt.Errorf("failed to load tweet: %w", err)
	}
	return &tweet, nil
}

func (r *tweetRepository) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]dbmongo.TweetWithOwner, error) {
	pipeline := dbmongo.Stages(
		bson.D{{Key: "$match", Value: bson.D{{Key: "owner", Value: owner}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
		dbmongo.LookupUser("owner", "ownerDetails", "username", "fullName", "avatar"),
	)
	cursor, err := r.tweets.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}
	tweets := []dbmongo.TweetWithOwner{}
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, fmt.Errorf("failed to decode tweets: %w", err)
	}
	return tweets, nil
}

func (r *tweetRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*dbmongo.Tweet, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}

	var tweet dbmongo.Tweet
	err := r.tweets.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&tweet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrTweetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update tweet: %w", err)
	}
	return &tweet, nil
}

func (r *tweetRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.tweets.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete tweet: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrTweetNotFound
	}
	return nil
}
