package subscription

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vidtube/internal/dbmongo"
)

// Subscriber is one account subscribed to a channel.
type Subscriber struct {
	ID           primitive.ObjectID   `bson:"_id" json:"_id"`
	Subscriber   *dbmongo.UserSummary `bson:"subscriber" json:"subscriber"`
	SubscribedAt time.Time            `bson:"createdAt" json:"subscribedAt"`
}

// Channel is one channel an account is subscribed to.
type Channel struct {
	ID           primitive.ObjectID   `bson:"_id" json:"_id"`
	Channel      *dbmongo.UserSummary `bson:"channel" json:"channel"`
	SubscribedAt time.Time            `bson:"createdAt" json:"subscribedAt"`
}

//go:generate mockgen -source=subscription_repository.go -destination=mock_subscription_repository_test.go -package=subscription

type SubscriptionRepository interface {
	Toggle(ctx context.Context, subscriber, channel primitive.ObjectID) (bool, error)
	ChannelExists(ctx context.Context, channel primitive.ObjectID) (bool, error)
	Subscribers(ctx context.Context, channel primitive.ObjectID) ([]Subscriber, error)
	SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID) ([]Channel, error)
}

type subscriptionRepository struct {
	subscriptions *mongo.Collection
	users         *mongo.Collection
}

func NewSubscriptionRepository(db *mongo.Database) SubscriptionRepository {
	return &subscriptionRepository{
		subscriptions: db.Collection(dbmongo.SubscriptionsCollection),
		users:         db.Collection(dbmongo.UsersCollection),
	}
}

// Toggle unsubscribes when the pair exists and subscribes otherwise,
// reporting whether subscriber now follows channel.
func (r *subscriptionRepository) Toggle(ctx context.Context, subscriber, channel primitive.ObjectID) (bool, error) {
	pair := bson.D{{Key: "subscriber", Value: subscriber}, {Key: "channel", Value: channel}}
	res, err := r.subscriptions.DeleteOne(ctx, pair)
	if err != nil {
		return false, fmt.Errorf("failed to unsubscribe: %w", err)
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	_, err = r.subscriptions.InsertOne(ctx, dbmongo.Subscription{
		Subscriber: subscriber,
		Channel:    channel,
		CreatedAt:  time.Now().UTC(),
	})
	if mongo.IsDuplicateKeyError(err) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to subscribe: %w", err)
	}
	return true, nil
}

func (r *subscriptionRepository) ChannelExists(ctx context.Context, channel primitive.ObjectID) (bool, error) {
	n, err := r.users.CountDocuments(ctx, bson.D{{Key: "_id", Value: channel}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check channel: %w", err)
	}
	return n > 0, nil
}

func (r *subscriptionRepository) Subscribers(ctx context.Context, channel primitive.ObjectID) ([]Subscriber, error) {
	out := []Subscriber{}
	err := r.list(ctx, bson.D{{Key: "channel", Value: channel}}, "subscriber", &out)
	return out, err
}

func (r *subscriptionRepository) SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID) ([]Channel, error) {
	out := []Channel{}
	err := r.list(ctx, bson.D{{Key: "subscriber", Value: subscriber}}, "channel", &out)
	return out, err
}

// list resolves the account on the other side of each matched pair,
// newest subscription first. Pairs whose account is gone are dropped.
func (r *subscriptionRepository) list(ctx context.Context, match bson.D, side string, out any) error {
	pipeline := dbmongo.Stages(
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
		dbmongo.LookupUser(side, side, "username", "email", "avatar"),
		bson.D{{Key: "$match", Value: bson.D{{Key: side + "._id", Value: bson.D{{Key: "$exists", Value: true}}}}}},
	)
	cursor, err := r.subscriptions.Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("failed to list subscriptions: %w", err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode subscriptions: %w", err)
	}
	return nil
}
