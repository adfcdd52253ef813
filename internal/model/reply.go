package model

import "time"

// Reply is a second-level comment; its parent is always a Comment.
type Reply struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	OwnerID   string    `json:"-"`
	CommentID string    `json:"commentId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ReplyWithOwner struct {
	Reply
	Owner OwnerRef `json:"owner"`
}

type ReplyRequest struct {
	Content string `json:"content"`
}
