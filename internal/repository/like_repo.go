package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"playtube/internal/model"
)

type LikeRepo struct {
	pool *pgxpool.Pool
}

func NewLikeRepo(pool *pgxpool.Pool) *LikeRepo {
	return &LikeRepo{pool: pool}
}

// validTargets whitelists the column names that may be interpolated into
// the toggle statements. Anything else is a programming error.
var validTargets = map[model.LikeTarget]bool{
	model.LikeVideo:   true,
	model.LikeComment: true,
	model.LikeTweet:   true,
	model.LikeReply:   true,
}

// Toggle flips a like on a target in a single statement. The CTE deletes
// the row when it exists at statement start and inserts otherwise; the
// partial unique index absorbs the insert race, so two concurrent toggles
// on a fresh pair can never double-insert. When this call neither inserted
// nor deleted, a concurrent request inserted first and the like stands, so
// the outcome is still Added.
func (r *LikeRepo) Toggle(ctx context.Context, target model.LikeTarget, targetID, userID, newID string) (model.ToggleState, error) {
	if !validTargets[target] {
		return "", fmt.Errorf("invalid like target: %s", target)
	}

	query := fmt.Sprintf(`
		WITH existing AS (
			SELECT id FROM likes WHERE %[1]s = $1 AND liked_by = $2
		), del AS (
			DELETE FROM likes WHERE id IN (SELECT id FROM existing) RETURNING id
		), ins AS (
			INSERT INTO likes (id, %[1]s, liked_by)
			SELECT $3, $1, $2
			WHERE NOT EXISTS (SELECT 1 FROM existing)
			ON CONFLICT DO NOTHING
			RETURNING id
		)
		SELECT (SELECT COUNT(*) FROM ins), (SELECT COUNT(*) FROM del)`, target)

	var inserted, deleted int
	if err := r.pool.QueryRow(ctx, query, targetID, userID, newID).Scan(&inserted, &deleted); err != nil {
		return "", err
	}
	return model.ResolveToggle(inserted, deleted), nil
}

// Count returns the live like count for a target, computed at read time.
func (r *LikeRepo) Count(ctx context.Context, target model.LikeTarget, targetID string) (int, error) {
	if !validTargets[target] {
		return 0, fmt.Errorf("invalid like target: %s", target)
	}
	var n int
	err := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM likes WHERE %s = $1`, target), targetID).Scan(&n)
	return n, err
}

// CountForOwnerVideos totals the likes across every video a channel owns.
func (r *LikeRepo) CountForOwnerVideos(ctx context.Context, ownerID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM likes l JOIN videos v ON v.id = l.video_id
		WHERE v.owner_id = $1`, ownerID).Scan(&n)
	return n, err
}

// LikedVideos returns one page of the videos a user has liked, newest like
// first, each enriched with its owner.
func (r *LikeRepo) LikedVideos(ctx context.Context, userID string, limit, offset int) ([]model.VideoWithOwner, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+videoOwnerColumns+`
		FROM likes l
		JOIN videos v ON v.id = l.video_id
		JOIN users u  ON u.id = v.owner_id
		WHERE l.liked_by = $1 AND l.video_id IS NOT NULL
		ORDER BY l.created_at DESC, l.id
		LIMIT $2 OFFSET $3`, userID, limit, offset)
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

// CountLikedVideos returns the total number of video likes for a user.
func (r *LikeRepo) CountLikedVideos(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM likes WHERE liked_by = $1 AND video_id IS NOT NULL`,
		userID).Scan(&n)
	return n, err
}
