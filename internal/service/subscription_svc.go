package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"playtube/internal/apperr"
	"playtube/internal/model"
	"playtube/internal/repository"
)

// SubscriptionService flips channel subscriptions and serves the two
// subscription listings.
type SubscriptionService struct {
	subs  *repository.SubscriptionRepo
	users *repository.UserRepo
	cache *CacheService
}

func NewSubscriptionService(subs *repository.SubscriptionRepo, users *repository.UserRepo, cache *CacheService) *SubscriptionService {
	return &SubscriptionService{subs: subs, users: users, cache: cache}
}

// Toggle flips the caller's subscription to a channel and returns the
// channel's live subscriber count. Subscribing to your own channel is
// rejected before any store access.
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberID, channelID string) (*model.SubscribeToggleResponse, error) {
	if subscriberID == channelID {
		return nil, apperr.BadRequest("you cannot subscribe to your own channel")
	}

	channel, err := s.users.FindByID(ctx, channelID)
	if err != nil {
		return nil, apperr.FromStore(err, "channel not found")
	}

	state, err := s.subs.Toggle(ctx, subscriberID, channelID, uuid.NewString())
	if err != nil {
		return nil, apperr.FromStore(err, "channel not found")
	}
	total, err := s.subs.CountForChannel(ctx, channelID)
	if err != nil {
		return nil, apperr.FromStore(err, "channel not found")
	}

	if err := s.cache.InvalidateChannel(ctx, channel.Username); err != nil {
		log.Warn().Err(err).Str("channel", channel.Username).Msg("cache invalidation failed")
	}
	return &model.SubscribeToggleResponse{State: state, TotalSubscribers: total}, nil
}

// Subscribers lists a channel's subscribers. Only the channel owner may see
// their own subscriber list.
func (s *SubscriptionService) Subscribers(ctx context.Context, callerID, channelID string) (*model.SubscriberListResponse, error) {
	if _, err := s.users.FindByID(ctx, channelID); err != nil {
		return nil, apperr.FromStore(err, "channel not found")
	}
	if err := requireOwner(channelID, callerID, "channel"); err != nil {
		return nil, err
	}

	subscribers, err := s.subs.ListSubscribers(ctx, channelID)
	if err != nil {
		return nil, apperr.FromStore(err, "channel not found")
	}
	if subscribers == nil {
		subscribers = []model.SubscriberEntry{}
	}
	return &model.SubscriberListResponse{Subscribers: subscribers, TotalSubscribers: len(subscribers)}, nil
}

// SubscribedChannels lists the channels the caller follows.
func (s *SubscriptionService) SubscribedChannels(ctx context.Context, userID string) (*model.SubscribedChannelsResponse, error) {
	channels, err := s.subs.ListSubscribedChannels(ctx, userID)
	if err != nil {
		return nil, apperr.FromStore(err, "user not found")
	}
	if channels == nil {
		channels = []model.SubscribedChannelEntry{}
	}
	return &model.SubscribedChannelsResponse{Channels: channels, TotalChannels: len(channels)}, nil
}
