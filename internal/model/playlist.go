package model

import "time"

// Playlist is an ordered set of video references; duplicates are disallowed.
type Playlist struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     string    `json:"-"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlaylistWithOwner is the owner-enriched playlist projection with the
// computed video count.
type PlaylistWithOwner struct {
	Playlist
	Owner       OwnerRef `json:"owner"`
	TotalVideos int      `json:"totalVideos"`
}

// PlaylistDetail additionally embeds the member videos in playlist order.
type PlaylistDetail struct {
	PlaylistWithOwner
	Videos []VideoWithOwner `json:"videos"`
}

type PlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
