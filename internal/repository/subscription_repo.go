package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"playtube/internal/model"
)

type SubscriptionRepo struct {
	pool *pgxpool.Pool
}

func NewSubscriptionRepo(pool *pgxpool.Pool) *SubscriptionRepo {
	return &SubscriptionRepo{pool: pool}
}

// Toggle flips a subscription with the same single-statement pattern as
// like toggles; the unique (subscriber_id, channel_id) constraint absorbs
// the concurrent-insert race. Self-subscription never reaches this method.
func (r *SubscriptionRepo) Toggle(ctx context.Context, subscriberID, channelID, newID string) (model.ToggleState, error) {
	var inserted, deleted int
	err := r.pool.QueryRow(ctx, `
		WITH existing AS (
			SELECT id FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2
		), del AS (
			DELETE FROM subscriptions WHERE id IN (SELECT id FROM existing) RETURNING id
		), ins AS (
			INSERT INTO subscriptions (id, subscriber_id, channel_id)
			SELECT $3, $1, $2
			WHERE NOT EXISTS (SELECT 1 FROM existing)
			ON CONFLICT DO NOTHING
			RETURNING id
		)
		SELECT (SELECT COUNT(*) FROM ins), (SELECT COUNT(*) FROM del)`,
		subscriberID, channelID, newID).Scan(&inserted, &deleted)
	if err != nil {
		return "", err
	}
	return model.ResolveToggle(inserted, deleted), nil
}

// CountForChannel returns how many users follow a channel.
func (r *SubscriptionRepo) CountForChannel(ctx context.Context, channelID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1`, channelID).Scan(&n)
	return n, err
}

// ListSubscribers returns a channel's subscribers, newest first.
func (r *SubscriptionRepo) ListSubscribers(ctx context.Context, channelID string) ([]model.SubscriberEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.id, u.username, u.avatar_url, s.created_at
		FROM subscriptions s JOIN users u ON u.id = s.subscriber_id
		WHERE s.channel_id = $1
		ORDER BY s.created_at DESC, s.id`, channelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []model.SubscriberEntry
	for rows.Next() {
		var e model.SubscriberEntry
		if err := rows.Scan(&e.ID, &e.Username, &e.AvatarURL, &e.SubscribedAt); err != nil {
			return nil, err
		}
		subs = append(subs, e)
	}
	return subs, rows.Err()
}

// ListSubscribedChannels returns the channels a user follows, newest first.
func (r *SubscriptionRepo) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]model.SubscribedChannelEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.id, u.username, u.avatar_url, s.created_at
		FROM subscriptions s JOIN users u ON u.id = s.channel_id
		WHERE s.subscriber_id = $1
		ORDER BY s.created_at DESC, s.id`, subscriberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var channels []model.SubscribedChannelEntry
	for rows.Next() {
		var e model.SubscribedChannelEntry
		if err := rows.Scan(&e.ID, &e.Username, &e.AvatarURL, &e.SubscribedAt); err != nil {
			return nil, err
		}
		channels = append(channels, e)
	}
	return channels, rows.Err()
}
