package subscription

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
)

//go:generate mockgen -source=subscription_service.go -destination=mock_subscription_service_test.go -package=subscription

type SubscriptionService interface {
	ToggleSubscription(ctx context.Context, caller primitive.ObjectID, channelID string) (bool, error)
	ChannelSubscribers(ctx context.Context, channelID string) ([]Subscriber, error)
	SubscribedChannels(ctx context.Context, subscriberID string) ([]Channel, error)
}

type subscriptionService struct {
	subscriptionRepo SubscriptionRepository
}

func NewSubscriptionService(subscriptionRepo SubscriptionRepository) SubscriptionService {
	return &subscriptionService{subscriptionRepo: subscriptionRepo}
}

func (s *subscriptionService) ToggleSubscription(ctx context.Context, caller primitive.ObjectID, channelID string) (bool, error) {
	channel, err := common.ParseID(channelID, "channel id")
	if err != nil {
		return false, err
	}
	if channel == caller {
		return false, common.InvalidArgument("you cannot subscribe to your own channel")
	}

	exists, err := s.subscriptionRepo.ChannelExists(ctx, channel)
	if err != nil {
		return false, common.Internal(ctx, err, "failed to toggle subscription")
	}
	if !exists {
		return false, common.NotFound("channel not found")
	}

	subscribed, err := s.subscriptionRepo.Toggle(ctx, caller, channel)
	if err != nil {
		return false, common.Internal(ctx, err, "failed to toggle subscription")
	}
	return subscribed, nil
}

func (s *subscriptionService) ChannelSubscribers(ctx context.Context, channelID string) ([]Subscriber, error) {
	channel, err := common.ParseID(channelID, "channel id")
	if err != nil {
		return nil, err
	}
	subscribers, err := s.subscriptionRepo.Subscribers(ctx, channel)
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to fetch subscribers")
	}
	return subscribers, nil
}

func (s *subscriptionService) SubscribedChannels(ctx context.Context, subscriberID string) ([]Channel, error) {
	subscriber, err := common.ParseID(subscriberID, "user id")
	if err != nil {
		return nil, err
	}
	channels, err := s.subscriptionRepo.SubscribedChannels(ctx, subscriber)
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to fetch subscribed channels")
	}
	return channels, nil
}
