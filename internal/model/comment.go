package model

import "time"

// Comment is attached to exactly one parent: a video or a tweet.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	OwnerID   string    `json:"-"`
	VideoID   *string   `json:"videoId,omitempty"`
	TweetID   *string   `json:"tweetId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CommentWithOwner struct {
	Comment
	Owner OwnerRef `json:"owner"`
}

type CommentListResponse struct {
	Comments      []CommentWithOwner `json:"comments"`
	TotalComments int                `json:"totalComments"`
}

type CommentRequest struct {
	Content string `json:"content"`
}
