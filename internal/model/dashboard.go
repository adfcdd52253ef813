package model

// ChannelStats is the dashboard fan-out aggregate for one channel: live
// counts over subscriptions, videos and likes.
type ChannelStats struct {
	TotalSubscribers int   `json:"totalSubscribers"`
	TotalVideos      int   `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalLikes       int   `json:"totalLikes"`
}
