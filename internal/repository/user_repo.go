package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"playtube/internal/model"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, username, email, full_name, avatar_url, cover_image_url,
	password_hash, refresh_token, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.FullName, &u.AvatarURL, &u.CoverImageURL,
		&u.PasswordHash, &u.RefreshToken, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. Username and email are stored lowercased; the
// unique constraints surface duplicates as a Conflict upstream.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, username, email, full_name, avatar_url, cover_image_url, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, strings.ToLower(u.Username), strings.ToLower(u.Email),
		u.FullName, u.AvatarURL, u.CoverImageURL, u.PasswordHash)
	return err
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// FindByUsernameOrEmail matches either credential, case-insensitively.
func (r *UserRepo) FindByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1 OR email = $2`,
		strings.ToLower(username), strings.ToLower(email)))
}

// ExistsByUsernameOrEmail reports whether either identifier is taken.
func (r *UserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)`,
		strings.ToLower(username), strings.ToLower(email)).Scan(&exists)
	return exists, err
}

func (r *UserRepo) UpdateAccount(ctx context.Context, id, fullName, email string) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		UPDATE users
		SET full_name = COALESCE(NULLIF($2, ''), full_name),
		    email     = COALESCE(NULLIF($3, ''), email),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns,
		id, fullName, strings.ToLower(email)))
}

func (r *UserRepo) UpdateAvatar(ctx context.Context, id, avatarURL string) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		UPDATE users SET avatar_url = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns, id, avatarURL))
}

func (r *UserRepo) UpdateCoverImage(ctx context.Context, id, coverURL string) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		UPDATE users SET cover_image_url = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns, id, coverURL))
}

// UpdatePassword stores the new hash and clears the refresh token so every
// session has to log in again.
func (r *UserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users SET password_hash = $2, refresh_token = NULL, updated_at = NOW()
		WHERE id = $1`, id, passwordHash)
	return err
}

func (r *UserRepo) SetRefreshToken(ctx context.Context, id, refreshToken string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users SET refresh_token = $2, updated_at = NOW() WHERE id = $1`,
		id, refreshToken)
	return err
}

func (r *UserRepo) ClearRefreshToken(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users SET refresh_token = NULL, updated_at = NOW() WHERE id = $1`, id)
	return err
}

// ChannelProfile builds the channel projection for a username: profile
// fields plus live subscription aggregates. callerID may be nil for
// anonymous lookups, in which case isSubscribed is always false.
func (r *UserRepo) ChannelProfile(ctx context.Context, username string, callerID *string) (*model.ChannelProfile, error) {
	var p model.ChannelProfile
	err := r.pool.QueryRow(ctx, `
		SELECT u.id, u.username, u.email, u.full_name, u.avatar_url, u.cover_image_url,
		       (SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.id)    AS subscribers_count,
		       (SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_id = u.id) AS subscribed_to_count,
		       EXISTS (SELECT 1 FROM subscriptions s
		               WHERE s.channel_id = u.id AND s.subscriber_id = $2::uuid)   AS is_subscribed
		FROM users u
		WHERE u.username = $1`,
		strings.ToLower(username), callerID).Scan(
		&p.ID, &p.Username, &p.Email, &p.FullName, &p.AvatarURL, &p.CoverImageURL,
		&p.SubscribersCount, &p.ChannelsSubscribedToCount, &p.IsSubscribed,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// AppendWatchHistory records one view at the tail of the user's history.
func (r *UserRepo) AppendWatchHistory(ctx context.Context, userID, videoID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO watch_history (user_id, video_id) VALUES ($1, $2)`,
		userID, videoID)
	return err
}

// WatchHistory returns the user's watched videos, most recent first, each
// enriched with its owner.
func (r *UserRepo) WatchHistory(ctx context.Context, userID string) ([]model.WatchHistoryEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT v.id, v.video_url, v.thumbnail_url, v.title, v.description, v.duration,
		       v.views, v.is_published, v.owner_id, v.created_at, v.updated_at,
		       u.id, u.username, u.avatar_url,
		       w.watched_at
		FROM watch_history w
		JOIN videos v ON v.id = w.video_id
		JOIN users u  ON u.id = v.owner_id
		WHERE w.user_id = $1
		ORDER BY w.seq DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []model.WatchHistoryEntry
	for rows.Next() {
		var e model.WatchHistoryEntry
		err := rows.Scan(
			&e.Video.ID, &e.Video.VideoURL, &e.Video.ThumbnailURL, &e.Video.Title,
			&e.Video.Description, &e.Video.Duration, &e.Video.Views, &e.Video.IsPublished,
			&e.Video.OwnerID, &e.Video.CreatedAt, &e.Video.UpdatedAt,
			&e.Video.Owner.ID, &e.Video.Owner.Username, &e.Video.Owner.AvatarURL,
			&e.WatchedAt,
		)
		if err != nil {
			return nil, err
		}
		history = append(history, e)
	}
	return history, rows.Err()
}

// MediaURLs returns the blob references owned directly or transitively by a
// user: avatar, cover image, and every owned video file and thumbnail. Used
// to clean the blob store after a channel delete.
func (r *UserRepo) MediaURLs(ctx context.Context, userID string) ([]string, error) {
	var urls []string

	var avatar string
	var cover *string
	err := r.pool.QueryRow(ctx,
		`SELECT avatar_url, cover_image_url FROM users WHERE id = $1`, userID).
		Scan(&avatar, &cover)
	if err != nil {
		return nil, err
	}
	urls = append(urls, avatar)
	if cover != nil && *cover != "" {
		urls = append(urls, *cover)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT video_url, thumbnail_url FROM videos WHERE owner_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var videoURL string
		var thumbURL *string
		if err := rows.Scan(&videoURL, &thumbURL); err != nil {
			return nil, err
		}
		urls = append(urls, videoURL)
		if thumbURL != nil && *thumbURL != "" {
			urls = append(urls, *thumbURL)
		}
	}
	return urls, rows.Err()
}

// Delete removes the user row. Videos, tweets, comments, replies, likes,
// subscriptions, playlists and watch history all cascade at the schema
// level, so the whole channel disappears in one atomic statement.
func (r *UserRepo) Delete(ctx context.Context, userID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
