package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"playtube/internal/model"
)

type VideoRepo struct {
	pool *pgxpool.Pool
}

func NewVideoRepo(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pool: pool}
}

const videoOwnerColumns = `v.id, v.video_url, v.thumbnail_url, v.title, v.description,
	v.duration, v.views, v.is_published, v.owner_id, v.created_at, v.updated_at,
	u.id, u.username, u.avatar_url`

func scanVideoWithOwner(row pgx.Row) (*model.VideoWithOwner, error) {
	var v model.VideoWithOwner
	err := row.Scan(
		&v.ID, &v.VideoURL, &v.ThumbnailURL, &v.Title, &v.Description,
		&v.Duration, &v.Views, &v.IsPublished, &v.OwnerID, &v.CreatedAt, &v.UpdatedAt,
		&v.Owner.ID, &v.Owner.Username, &v.Owner.AvatarURL,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VideoRepo) Create(ctx context.Context, v *model.Video) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO videos (id, video_url, thumbnail_url, title, description, duration, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		v.ID, v.VideoURL, v.ThumbnailURL, v.Title, v.Description, v.Duration, v.OwnerID)
	return err
}

func (r *VideoRepo) FindByID(ctx context.Context, id string) (*model.Video, error) {
	var v model.Video
	err := r.pool.QueryRow(ctx, `
		SELECT id, video_url, thumbnail_url, title, description, duration, views,
		       is_published, owner_id, created_at, updated_at
		FROM videos WHERE id = $1`, id).Scan(
		&v.ID, &v.VideoURL, &v.ThumbnailURL, &v.Title, &v.Description, &v.Duration,
		&v.Views, &v.IsPublished, &v.OwnerID, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// FindByIDWithOwner returns the owner-enriched projection for one video.
func (r *VideoRepo) FindByIDWithOwner(ctx context.Context, id string) (*model.VideoWithOwner, error) {
	return scanVideoWithOwner(r.pool.QueryRow(ctx, `
		SELECT `+videoOwnerColumns+`
		FROM videos v JOIN users u ON u.id = v.owner_id
		WHERE v.id = $1`, id))
}

// ListByOwner returns one page of a channel's videos, newest first.
func (r *VideoRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]model.VideoWithOwner, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+videoOwnerColumns+`
		FROM videos v JOIN users u ON u.id = v.owner_id
		WHERE v.owner_id = $1
		ORDER BY v.created_at DESC, v.id
		LIMIT $2 OFFSET $3`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []model.VideoWithOwner
	for rows.Next() {
		v, err := scanVideoWithOwner(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, *v)
	}
	return videos, rows.Err()
}

func (r *VideoRepo) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM videos WHERE owner_id = $1`, ownerID).Scan(&n)
	return n, err
}

// SumViewsByOwner totals the view counters across a channel's videos.
func (r *VideoRepo) SumViewsByOwner(ctx context.Context, ownerID string) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(views), 0) FROM videos WHERE owner_id = $1`, ownerID).Scan(&total)
	return total, err
}

// UpdateDetails applies a partial field set; empty strings leave the stored
// values untouched.
func (r *VideoRepo) UpdateDetails(ctx context.Context, id, title, description string, thumbnailURL *string) (*model.VideoWithOwner, error) {
	return scanVideoWithOwner(r.pool.QueryRow(ctx, `
		WITH updated AS (
			UPDATE videos
			SET title         = COALESCE(NULLIF($2, ''), title),
			    description   = COALESCE(NULLIF($3, ''), description),
			    thumbnail_url = COALESCE($4, thumbnail_url),
			    updated_at    = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT `+videoOwnerColumns+`
		FROM updated v JOIN users u ON u.id = v.owner_id`,
		id, title, description, thumbnailURL))
}

// TogglePublish flips is_published atomically and returns the new value.
func (r *VideoRepo) TogglePublish(ctx context.Context, id string) (*model.VideoWithOwner, error) {
	return scanVideoWithOwner(r.pool.QueryRow(ctx, `
		WITH updated AS (
			UPDATE videos
			SET is_published = NOT is_published, updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT `+videoOwnerColumns+`
		FROM updated v JOIN users u ON u.id = v.owner_id`, id))
}

// IncrementViews bumps the view counter by one.
func (r *VideoRepo) IncrementViews(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE videos SET views = views + 1 WHERE id = $1`, id)
	return err
}

// Delete removes the video row. Comments (and their replies and likes),
// likes on the video itself, playlist membership and watch history rows all
// cascade via foreign keys, so no orphaned references survive the delete.
func (r *VideoRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
