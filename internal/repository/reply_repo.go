package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"playtube/internal/model"
)

type ReplyRepo struct {
	pool *pgxpool.Pool
}

func NewReplyRepo(pool *pgxpool.Pool) *ReplyRepo {
	return &ReplyRepo{pool: pool}
}

const replyOwnerColumns = `r.id, r.content, r.owner_id, r.comment_id,
	r.created_at, r.updated_at, u.id, u.username, u.avatar_url`

func scanReplyWithOwner(row pgx.Row) (*model.ReplyWithOwner, error) {
	var rp model.ReplyWithOwner
	err := row.Scan(
		&rp.ID, &rp.Content, &rp.OwnerID, &rp.CommentID,
		&rp.CreatedAt, &rp.UpdatedAt,
		&rp.Owner.ID, &rp.Owner.Username, &rp.Owner.AvatarURL,
	)
	if err != nil {
		return nil, err
	}
	return &rp, nil
}

func (r *ReplyRepo) Create(ctx context.Context, reply *model.Reply) (*model.ReplyWithOwner, error) {
	return scanReplyWithOwner(r.pool.QueryRow(ctx, `
		WITH inserted AS (
			INSERT INTO replies (id, content, owner_id, comment_id)
			VALUES ($1, $2, $3, $4)
			RETURNING *
		)
		SELECT `+replyOwnerColumns+`
		FROM inserted r JOIN users u ON u.id = r.owner_id`,
		reply.ID, reply.Content, reply.OwnerID, reply.CommentID))
}

func (r *ReplyRepo) FindByID(ctx context.Context, id string) (*model.Reply, error) {
	var rp model.Reply
	err := r.pool.QueryRow(ctx, `
		SELECT id, content, owner_id, comment_id, created_at, updated_at
		FROM replies WHERE id = $1`, id).Scan(
		&rp.ID, &rp.Content, &rp.OwnerID, &rp.CommentID, &rp.CreatedAt, &rp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rp, nil
}

func (r *ReplyRepo) Update(ctx context.Context, id, content string) (*model.ReplyWithOwner, error) {
	return scanReplyWithOwner(r.pool.QueryRow(ctx, `
		WITH updated AS (
			UPDATE replies SET content = $2, updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT `+replyOwnerColumns+`
		FROM updated r JOIN users u ON u.id = r.owner_id`, id, content))
}

// Delete removes the reply; likes referencing it cascade.
func (r *ReplyRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM replies WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListByComment returns a comment's replies with owners, newest first.
func (r *ReplyRepo) ListByComment(ctx context.Context, commentID string) ([]model.ReplyWithOwner, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+replyOwnerColumns+`
		FROM replies r JOIN users u ON u.id = r.owner_id
		WHERE r.comment_id = $1
		ORDER BY r.created_at DESC, r.id`, commentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var replies []model.ReplyWithOwner
	for rows.Next() {
		rp, err := scanReplyWithOwner(rows)
		if err != nil {
			return nil, err
		}
		replies = append(replies, *rp)
	}
	return replies, rows.Err()
}
