package service

import (
	"context"

	"playtube/internal/apperr"
	"playtube/internal/model"
	"playtube/internal/repository"
)

// DashboardService aggregates a channel's stats from live counts; nothing is
// precomputed or stored.
type DashboardService struct {
	videos *repository.VideoRepo
	subs   *repository.SubscriptionRepo
	likes  *repository.LikeRepo
}

func NewDashboardService(videos *repository.VideoRepo, subs *repository.SubscriptionRepo, likes *repository.LikeRepo) *DashboardService {
	return &DashboardService{videos: videos, subs: subs, likes: likes}
}

// Stats fans out over subscriptions, videos and likes for one channel.
func (s *DashboardService) Stats(ctx context.Context, channelID string) (*model.ChannelStats, error) {
	subscribers, err := s.subs.CountForChannel(ctx, channelID)
	if err != nil {
		return nil, apperr.FromStore(err, "channel not found")
	}
	videoCount, err := s.videos.CountByOwner(ctx, channelID)
	if err != nil {
		return nil, apperr.FromStore(err, "channel not found")
	}
	views, err := s.videos.SumViewsByOwner(ctx, channelID)
	if err != nil {
		return nil, apperr.FromStore(err, "channel not found")
	}
	likes, err := s.likes.CountForOwnerVideos(ctx, channelID)
	if err != nil {
		return nil, apperr.FromStore(err, "channel not found")
	}

	return &model.ChannelStats{
		TotalSubscribers: subscribers,
		TotalVideos:      videoCount,
		TotalViews:       views,
		TotalLikes:       likes,
	}, nil
}

// Videos returns one page of the channel's own uploads, newest first.
func (s *DashboardService) Videos(ctx context.Context, channelID string, page, limit int) (*model.VideoListResponse, error) {
	page, limit = normalizePage(page, limit)
	videos, err := s.videos.ListByOwner(ctx, channelID, limit, (page-1)*limit)
	if err != nil {
		return nil, apperr.FromStore(err, "channel not found")
	}
	total, err := s.videos.CountByOwner(ctx, channelID)
	if err != nil {
		return nil, apperr.FromStore(err, "channel not found")
	}
	if videos == nil {
		videos = []model.VideoWithOwner{}
	}
	return &model.VideoListResponse{Videos: videos, TotalVideos: total, Page: page, Limit: limit}, nil
}
