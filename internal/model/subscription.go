package model

import "time"

// Subscription records that one user follows another user's channel.
// At most one row per (subscriber, channel); self-subscriptions are invalid.
type Subscription struct {
	ID           string    `json:"id"`
	SubscriberID string    `json:"subscriberId"`
	ChannelID    string    `json:"channelId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SubscribeToggleResponse reports the flip plus the channel's subscriber
// count (not the caller's subscription total).
type SubscribeToggleResponse struct {
	State            ToggleState `json:"state"`
	TotalSubscribers int         `json:"totalSubscribers"`
}

// SubscriberEntry is one subscriber of a channel, newest first.
type SubscriberEntry struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	AvatarURL    string    `json:"avatar"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

type SubscriberListResponse struct {
	Subscribers      []SubscriberEntry `json:"subscribers"`
	TotalSubscribers int               `json:"totalSubscribers"`
}

// SubscribedChannelEntry is one channel the caller follows.
type SubscribedChannelEntry struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	AvatarURL    string    `json:"avatar"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

type SubscribedChannelsResponse struct {
	Channels      []SubscribedChannelEntry `json:"subscribedChannels"`
	TotalChannels int                      `json:"totalSubscribedChannels"`
}
