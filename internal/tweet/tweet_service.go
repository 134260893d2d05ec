package tweet

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

//go:generate mockgen -source=tweet_service.go -destination=mock_tweet_service_test.go -package=tweet

type TweetService interface {
	CreateTweet(ctx context.Context, owner primitive.ObjectID, content string) (*dbmongo.Tweet, error)
	UserTweets(ctx context.Context, userID string) ([]dbmongo.TweetWithOwner, error)
	UpdateTweet(ctx context.Context, caller primitive.ObjectID, tweetID, content string) (*dbmongo.Tweet, error)
	DeleteTweet(ctx context.Context, caller primitive.ObjectID, tweetID string) error
}

type tweetService struct {
	tweetRepo TweetRepository
}

func NewTweetService(tweetRepo TweetRepository) TweetService {
	return &tweetService{tweetRepo: tweetRepo}
}

func (s *tweetService) CreateTweet(ctx context.Context, owner primitive.ObjectID, content string) (*dbmongo.Tweet, error) {
	content, err := common.RequireText("content", content)
	if err != nil {
		return nil, err
	}
	tweet := &dbmongo.Tweet{Content: content, Owner: owner}
	if err := s.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, common.Internal(ctx, err, "failed to create tweet")
	}
	return tweet, nil
}

func (s *tweetService) UserTweets(ctx context.Context, userID string) ([]dbmongo.TweetWithOwner, error) {
	owner, err := common.ParseID(userID, "user id")
	if err != nil {
		return nil, err
	}
	tweets, err := s.tweetRepo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to fetch tweets")
	}
	return tweets, nil
}

func (s *tweetService) UpdateTweet(ctx context.Context, caller primitive.ObjectID, tweetID, content string) (*dbmongo.Tweet, error) {
	tweet, err := s.ownedTweet(ctx, caller, tweetID, "edit this tweet")
	if err != nil {
		return nil, err
	}
	content, err = common.RequireText("content", content)
	if err != nil {
		return nil, err
	}
	updated, err := s.tweetRepo.UpdateContent(ctx, tweet.ID, content)
	if err != nil {
		return nil, mapTweetErr(ctx, err, "failed to update tweet")
	}
	return updated, nil
}

func (s *tweetService) DeleteTweet(ctx context.Context, caller primitive.ObjectID, tweetID string) error {
	tweet, err := s.ownedTweet(ctx, caller, tweetID, "delete this tweet")
	if err != nil {
		return err
	}
	if err := s.tweetRepo.Delete(ctx, tweet.ID); err != nil {
		return mapTweetErr(ctx, err, "failed to delete tweet")
	}
	return nil
}

func (s *tweetService) ownedTweet(ctx context.Context, caller primitive.ObjectID, tweetID, action string) (*dbmongo.Tweet, error) {
	id, err := common.ParseID(tweetID, "tweet id")
	if err != nil {
		return nil, err
	}
	tweet, err := s.tweetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapTweetErr(ctx, err, "failed to fetch tweet")
	}
	if err := common.RequireOwner(tweet.Owner, caller, action); err != nil {
		return nil, err
	}
	return tweet, nil
}

func mapTweetErr(ctx context.Context, err error, msg string) error {
	if errors.Is(err, ErrTweetNotFound) {
		return common.NotFound("tweet not found")
	}
	return common.Internal(ctx, err, msg)
}
