package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"playtube/internal/model"
)

type CommentRepo struct {
	pool *pgxpool.Pool
}

func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

const commentOwnerColumns = `c.id, c.content, c.owner_id, c.video_id, c.tweet_id,
	c.created_at, c.updated_at, u.id, u.username, u.avatar_url`

func scanCommentWithOwner(row pgx.Row) (*model.CommentWithOwner, error) {
	var c model.CommentWithOwner
	err := row.Scan(
		&c.ID, &c.Content, &c.OwnerID, &c.VideoID, &c.TweetID,
		&c.CreatedAt, &c.UpdatedAt,
		&c.Owner.ID, &c.Owner.Username, &c.Owner.AvatarURL,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a comment under exactly one parent (video or tweet) and
// returns the owner-enriched projection.
func (r *CommentRepo) Create(ctx context.Context, c *model.Comment) (*model.CommentWithOwner, error) {
	return scanCommentWithOwner(r.pool.QueryRow(ctx, `
		WITH inserted AS (
			INSERT INTO comments (id, content, owner_id, video_id, tweet_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING *
		)
		SELECT `+commentOwnerColumns+`
		FROM inserted c JOIN users u ON u.id = c.owner_id`,
		c.ID, c.Content, c.OwnerID, c.VideoID, c.TweetID))
}

func (r *CommentRepo) FindByID(ctx context.Context, id string) (*model.Comment, error) {
	var c model.Comment
	err := r.pool.QueryRow(ctx, `
		SELECT id, content, owner_id, video_id, tweet_id, created_at, updated_at
		FROM comments WHERE id = $1`, id).Scan(
		&c.ID, &c.Content, &c.OwnerID, &c.VideoID, &c.TweetID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepo) Update(ctx context.Context, id, content string) (*model.CommentWithOwner, error) {
	return scanCommentWithOwner(r.pool.QueryRow(ctx, `
		WITH updated AS (
			UPDATE comments SET content = $2, updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT `+commentOwnerColumns+`
		FROM updated c JOIN users u ON u.id = c.owner_id`, id, content))
}

// Delete removes the comment; replies and likes referencing it cascade at
// the schema level.
func (r *CommentRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListByVideo returns a video's comments with owners, newest first.
func (r *CommentRepo) ListByVideo(ctx context.Context, videoID string) ([]model.CommentWithOwner, error) {
	return r.list(ctx, `c.video_id = $1`, videoID)
}

// ListByTweet returns a tweet's comments with owners, newest first.
func (r *CommentRepo) ListByTweet(ctx context.Context, tweetID string) ([]model.CommentWithOwner, error) {
	return r.list(ctx, `c.tweet_id = $1`, tweetID)
}

func (r *CommentRepo) list(ctx context.Context, where, parentID string) ([]model.CommentWithOwner, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+commentOwnerColumns+`
		FROM comments c JOIN users u ON u.id = c.owner_id
		WHERE `+where+`
		ORDER BY c.created_at DESC, c.id`, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []model.CommentWithOwner
	for rows.Next() {
		c, err := scanCommentWithOwner(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}
	return comments, rows.Err()
}
