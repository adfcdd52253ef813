package model

import "time"

// Tweet is a short text post, the platform's secondary social feature.
type Tweet struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	OwnerID   string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TweetWithOwner struct {
	Tweet
	Owner OwnerRef `json:"owner"`
}

type TweetRequest struct {
	Content string `json:"content"`
}
