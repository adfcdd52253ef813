package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema holds the full DDL. Statements are idempotent so EnsureSchema can run
// on every startup.
//
// The partial unique indexes on likes and the unique index on subscriptions are
// load-bearing: the toggle statements rely on them to guarantee at most one
// relation row per (subject, target) pair under concurrent requests.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id              UUID PRIMARY KEY,
	username        TEXT NOT NULL UNIQUE,
	email           TEXT NOT NULL UNIQUE,
	full_name       TEXT NOT NULL,
	avatar_url      TEXT NOT NULL,
	cover_image_url TEXT,
	password_hash   TEXT NOT NULL,
	refresh_token   TEXT,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS videos (
	id            UUID PRIMARY KEY,
	video_url     TEXT NOT NULL,
	thumbnail_url TEXT,
	title         TEXT NOT NULL,
	description   TEXT NOT NULL,
	duration      DOUBLE PRECISION NOT NULL DEFAULT 0,
	views         BIGINT NOT NULL DEFAULT 0 CHECK (views >= 0),
	is_published  BOOLEAN NOT NULL DEFAULT TRUE,
	owner_id      UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_videos_owner ON videos(owner_id);

CREATE TABLE IF NOT EXISTS tweets (
	id         UUID PRIMARY KEY,
	content    TEXT NOT NULL CHECK (content <> ''),
	owner_id   UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_tweets_owner ON tweets(owner_id);

CREATE TABLE IF NOT EXISTS comments (
	id         UUID PRIMARY KEY,
	content    TEXT NOT NULL CHECK (content <> ''),
	owner_id   UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	video_id   UUID REFERENCES videos(id) ON DELETE CASCADE,
	tweet_id   UUID REFERENCES tweets(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CHECK ((video_id IS NULL) <> (tweet_id IS NULL))
);
CREATE INDEX IF NOT EXISTS idx_comments_video ON comments(video_id);
CREATE INDEX IF NOT EXISTS idx_comments_tweet ON comments(tweet_id);

CREATE TABLE IF NOT EXISTS replies (
	id         UUID PRIMARY KEY,
	content    TEXT NOT NULL CHECK (content <> ''),
	owner_id   UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	comment_id UUID NOT NULL REFERENCES comments(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_replies_comment ON replies(comment_id);

CREATE TABLE IF NOT EXISTS likes (
	id         UUID PRIMARY KEY,
	liked_by   UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	video_id   UUID REFERENCES videos(id) ON DELETE CASCADE,
	comment_id UUID REFERENCES comments(id) ON DELETE CASCADE,
	tweet_id   UUID REFERENCES tweets(id) ON DELETE CASCADE,
	reply_id   UUID REFERENCES replies(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CHECK (num_nonnulls(video_id, comment_id, tweet_id, reply_id) = 1)
);
CREATE UNIQUE INDEX IF NOT EXISTS uq_likes_video   ON likes(video_id, liked_by)   WHERE video_id   IS NOT NULL;
CREATE UNIQUE INDEX IF NOT EXISTS uq_likes_comment ON likes(comment_id, liked_by) WHERE comment_id IS NOT NULL;
CREATE UNIQUE INDEX IF NOT EXISTS uq_likes_tweet   ON likes(tweet_id, liked_by)   WHERE tweet_id   IS NOT NULL;
CREATE UNIQUE INDEX IF NOT EXISTS uq_likes_reply   ON likes(reply_id, liked_by)   WHERE reply_id   IS NOT NULL;
CREATE INDEX IF NOT EXISTS idx_likes_liked_by ON likes(liked_by);

CREATE TABLE IF NOT EXISTS subscriptions (
	id            UUID PRIMARY KEY,
	subscriber_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	channel_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (subscriber_id, channel_id),
	CHECK (subscriber_id <> channel_id)
);
CREATE INDEX IF NOT EXISTS idx_subscriptions_channel ON subscriptions(channel_id);

CREATE TABLE IF NOT EXISTS playlists (
	id           UUID PRIMARY KEY,
	name         TEXT NOT NULL CHECK (name <> ''),
	description  TEXT NOT NULL DEFAULT '',
	owner_id     UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	is_published BOOLEAN NOT NULL DEFAULT TRUE,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (owner_id, name)
);

CREATE TABLE IF NOT EXISTS playlist_videos (
	playlist_id UUID NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
	video_id    UUID NOT NULL REFERENCES videos(id) ON DELETE CASCADE,
	position    BIGSERIAL,
	added_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (playlist_id, video_id)
);

CREATE TABLE IF NOT EXISTS watch_history (
	seq        BIGSERIAL PRIMARY KEY,
	user_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	video_id   UUID NOT NULL REFERENCES videos(id) ON DELETE CASCADE,
	watched_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_watch_history_user ON watch_history(user_id, seq DESC);
`

// EnsureSchema creates all tables and indexes if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
