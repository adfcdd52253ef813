package model

import "time"

// Video is an uploaded video owned by exactly one user.
type Video struct {
	ID           string    `json:"id"`
	VideoURL     string    `json:"videoFile"`
	ThumbnailURL *string   `json:"thumbnail,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	IsPublished  bool      `json:"isPublished"`
	OwnerID      string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// VideoWithOwner is the owner-enriched video projection.
type VideoWithOwner struct {
	Video
	Owner OwnerRef `json:"owner"`
}

// VideoDetailResponse adds the live like count to a single-video lookup.
type VideoDetailResponse struct {
	Video      VideoWithOwner `json:"video"`
	TotalLikes int            `json:"totalLikes"`
}

// VideoListResponse is a page of a channel's videos.
type VideoListResponse struct {
	Videos      []VideoWithOwner `json:"videos"`
	TotalVideos int              `json:"totalVideos"`
	Page        int              `json:"page"`
	Limit       int              `json:"limit"`
}

type PublishVideoRequest struct {
	Title       string  `form:"title"`
	Description string  `form:"description"`
	Duration    float64 `form:"duration"`
}

type UpdateVideoRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

// WatchHistoryEntry is one watched video, enriched with its owner, ordered
// most-recent-first.
type WatchHistoryEntry struct {
	Video     VideoWithOwner `json:"video"`
	WatchedAt time.Time      `json:"watchedAt"`
}
