package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"playtube/internal/model"
)

type TweetRepo struct {
	pool *pgxpool.Pool
}

func NewTweetRepo(pool *pgxpool.Pool) *TweetRepo {
	return &TweetRepo{pool: pool}
}

const tweetOwnerColumns = `t.id, t.content, t.owner_id, t.created_at, t.updated_at,
	u.id, u.username, u.avatar_url`

func scanTweetWithOwner(row pgx.Row) (*model.TweetWithOwner, error) {
	var tw model.TweetWithOwner
	err := row.Scan(
		&tw.ID, &tw.Content, &tw.OwnerID, &tw.CreatedAt, &tw.UpdatedAt,
		&tw.Owner.ID, &tw.Owner.Username, &tw.Owner.AvatarURL,
	)
	if err != nil {
		return nil, err
	}
	return &tw, nil
}

func (r *TweetRepo) Create(ctx context.Context, t *model.Tweet) (*model.TweetWithOwner, error) {
	return scanTweetWithOwner(r.pool.QueryRow(ctx, `
		WITH inserted AS (
			INSERT INTO tweets (id, content, owner_id)
			VALUES ($1, $2, $3)
			RETURNING *
		)
		SELECT `+tweetOwnerColumns+`
		FROM inserted t JOIN users u ON u.id = t.owner_id`,
		t.ID, t.Content, t.OwnerID))
}

func (r *TweetRepo) FindByID(ctx context.Context, id string) (*model.Tweet, error) {
	var t model.Tweet
	err := r.pool.QueryRow(ctx, `
		SELECT id, content, owner_id, created_at, updated_at
		FROM tweets WHERE id = $1`, id).Scan(
		&t.ID, &t.Content, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TweetRepo) Update(ctx context.Context, id, content string) (*model.TweetWithOwner, error) {
	return scanTweetWithOwner(r.pool.QueryRow(ctx, `
		WITH updated AS (
			UPDATE tweets SET content = $2, updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT `+tweetOwnerColumns+`
		FROM updated t JOIN users u ON u.id = t.owner_id`, id, content))
}

// Delete removes the tweet; its comments, their replies and all related
// likes cascade.
func (r *TweetRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tweets WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListByOwner returns a user's tweets with owner details, newest first.
func (r *TweetRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.TweetWithOwner, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+tweetOwnerColumns+`
		FROM tweets t JOIN users u ON u.id = t.owner_id
		WHERE t.owner_id = $1
		ORDER BY t.created_at DESC, t.id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tweets []model.TweetWithOwner
	for rows.Next() {
		t, err := scanTweetWithOwner(rows)
		if err != nil {
			return nil, err
		}
		tweets = append(tweets, *t)
	}
	return tweets, rows.Err()
}
