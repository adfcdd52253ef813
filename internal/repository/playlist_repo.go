package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"playtube/internal/model"
)

type PlaylistRepo struct {
	pool *pgxpool.Pool
}

func NewPlaylistRepo(pool *pgxpool.Pool) *PlaylistRepo {
	return &PlaylistRepo{pool: pool}
}

const playlistOwnerColumns = `p.id, p.name, p.description, p.owner_id, p.is_published,
	p.created_at, p.updated_at, u.id, u.username, u.avatar_url,
	(SELECT COUNT(*) FROM playlist_videos pv WHERE pv.playlist_id = p.id)`

func scanPlaylistWithOwner(row pgx.Row) (*model.PlaylistWithOwner, error) {
	var p model.PlaylistWithOwner
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.OwnerID, &p.IsPublished,
		&p.CreatedAt, &p.UpdatedAt,
		&p.Owner.ID, &p.Owner.Username, &p.Owner.AvatarURL,
		&p.TotalVideos,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a playlist. The (owner_id, name) unique constraint rejects
// duplicate names per owner; callers translate that to a conflict error.
func (r *PlaylistRepo) Create(ctx context.Context, p *model.Playlist) (*model.PlaylistWithOwner, error) {
	return scanPlaylistWithOwner(r.pool.QueryRow(ctx, `
		WITH inserted AS (
			INSERT INTO playlists (id, name, description, owner_id)
			VALUES ($1, $2, $3, $4)
			RETURNING *
		)
		SELECT `+playlistOwnerColumns+`
		FROM inserted p JOIN users u ON u.id = p.owner_id`,
		p.ID, p.Name, p.Description, p.OwnerID))
}

func (r *PlaylistRepo) FindByID(ctx context.Context, id string) (*model.Playlist, error) {
	var p model.Playlist
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, description, owner_id, is_published, created_at, updated_at
		FROM playlists WHERE id = $1`, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.OwnerID, &p.IsPublished, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByIDWithOwner returns the owner-enriched projection with the computed
// video count.
func (r *PlaylistRepo) FindByIDWithOwner(ctx context.Context, id string) (*model.PlaylistWithOwner, error) {
	return scanPlaylistWithOwner(r.pool.QueryRow(ctx, `
		SELECT `+playlistOwnerColumns+`
		FROM playlists p JOIN users u ON u.id = p.owner_id
		WHERE p.id = $1`, id))
}

// Update applies the provided name and description, keeping current values
// for blank fields.
func (r *PlaylistRepo) Update(ctx context.Context, id, name, description string) (*model.PlaylistWithOwner, error) {
	return scanPlaylistWithOwner(r.pool.QueryRow(ctx, `
		WITH updated AS (
			UPDATE playlists SET
				name        = COALESCE(NULLIF($2, ''), name),
				description = COALESCE(NULLIF($3, ''), description),
				updated_at  = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT `+playlistOwnerColumns+`
		FROM updated p JOIN users u ON u.id = p.owner_id`, id, name, description))
}

// TogglePublish flips is_published atomically and returns the new value.
func (r *PlaylistRepo) TogglePublish(ctx context.Context, id string) (*model.PlaylistWithOwner, error) {
	return scanPlaylistWithOwner(r.pool.QueryRow(ctx, `
		WITH updated AS (
			UPDATE playlists
			SET is_published = NOT is_published, updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT `+playlistOwnerColumns+`
		FROM updated p JOIN users u ON u.id = p.owner_id`, id))
}

// Delete removes the playlist; membership rows cascade, videos are untouched.
func (r *PlaylistRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListByOwner returns a user's playlists with owners and counts, newest first.
func (r *PlaylistRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.PlaylistWithOwner, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+playlistOwnerColumns+`
		FROM playlists p JOIN users u ON u.id = p.owner_id
		WHERE p.owner_id = $1
		ORDER BY p.created_at DESC, p.id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var playlists []model.PlaylistWithOwner
	for rows.Next() {
		p, err := scanPlaylistWithOwner(rows)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, *p)
	}
	return playlists, rows.Err()
}

// AddVideo links a video into a playlist. Returns false when the video was
// already a member; the unique (playlist_id, video_id) constraint makes the
// check race-free.
func (r *PlaylistRepo) AddVideo(ctx context.Context, playlistID, videoID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO playlist_videos (playlist_id, video_id)
		VALUES ($1, $2)
		ON CONFLICT (playlist_id, video_id) DO NOTHING`, playlistID, videoID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// RemoveVideo unlinks a video from a playlist. Returns false when the video
// was not a member.
func (r *PlaylistRepo) RemoveVideo(ctx context.Context, playlistID, videoID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM playlist_videos WHERE playlist_id = $1 AND video_id = $2`,
		playlistID, videoID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListVideos returns a playlist's videos in insertion order.
func (r *PlaylistRepo) ListVideos(ctx context.Context, playlistID string) ([]model.VideoWithOwner, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+videoOwnerColumns+`
		FROM playlist_videos pv
		JOIN videos v ON v.id = pv.video_id
		JOIN users u  ON u.id = v.owner_id
		WHERE pv.playlist_id = $1
		ORDER BY pv.position`, playlistID)
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
