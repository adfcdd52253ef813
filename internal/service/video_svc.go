package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"playtube/internal/apperr"
	"playtube/internal/blob"
	"playtube/internal/model"
	"playtube/internal/repository"
)

// VideoService owns the video lifecycle: publish, lookup with view counting,
// partial updates, publish toggling and cascading deletion.
type VideoService struct {
	videos *repository.VideoRepo
	users  *repository.UserRepo
	likes  *repository.LikeRepo
	blobs  *blob.Store
}

func NewVideoService(videos *repository.VideoRepo, users *repository.UserRepo, likes *repository.LikeRepo, blobs *blob.Store) *VideoService {
	return &VideoService{videos: videos, users: users, likes: likes, blobs: blobs}
}

// Publish stores the video file and thumbnail, then inserts the video row.
// Stored objects are removed again when a later step fails.
func (s *VideoService) Publish(ctx context.Context, ownerID string, req model.PublishVideoRequest, videoFile, thumbnail Upload) (*model.VideoWithOwner, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" {
		return nil, apperr.BadRequest("title is required")
	}
	if description == "" {
		return nil, apperr.BadRequest("description is required")
	}
	if err := requireVideo(videoFile, "video"); err != nil {
		return nil, err
	}
	if err := requireImage(thumbnail, "thumbnail"); err != nil {
		return nil, err
	}

	videoID := uuid.NewString()

	videoURL, err := s.storeMedia(ctx, "videos", videoFile)
	if err != nil {
		return nil, err
	}
	thumbURL, err := s.storeMedia(ctx, "thumbnails", thumbnail)
	if err != nil {
		s.removeBlob(ctx, videoURL)
		return nil, err
	}

	video := &model.Video{
		ID:           videoID,
		VideoURL:     videoURL,
		ThumbnailURL: &thumbURL,
		Title:        title,
		Description:  description,
		Duration:     req.Duration,
		OwnerID:      ownerID,
	}
	if err := s.videos.Create(ctx, video); err != nil {
		s.removeBlob(ctx, videoURL)
		s.removeBlob(ctx, thumbURL)
		return nil, apperr.FromStore(err, "owner not found")
	}

	created, err := s.videos.FindByIDWithOwner(ctx, videoID)
	if err != nil {
		return nil, apperr.FromStore(err, "video not found")
	}
	return created, nil
}

// Get returns one video with its owner and live like count. Authenticated
// callers get a view bump and a watch history entry; failures there are
// logged but never fail the read.
func (s *VideoService) Get(ctx context.Context, videoID string, callerID *string) (*model.VideoDetailResponse, error) {
	video, err := s.videos.FindByIDWithOwner(ctx, videoID)
	if err != nil {
		return nil, apperr.FromStore(err, "video not found")
	}

	if callerID != nil {
		if err := s.videos.IncrementViews(ctx, videoID); err != nil {
			log.Warn().Err(err).Str("video", videoID).Msg("view bump failed")
		} else {
			video.Views++
		}
		if err := s.users.AppendWatchHistory(ctx, *callerID, videoID); err != nil {
			log.Warn().Err(err).Str("video", videoID).Msg("watch history append failed")
		}
	}

	totalLikes, err := s.likes.Count(ctx, model.LikeVideo, videoID)
	if err != nil {
		return nil, apperr.FromStore(err, "video not found")
	}
	return &model.VideoDetailResponse{Video: *video, TotalLikes: totalLikes}, nil
}

// Update applies title, description and an optional new thumbnail. The new
// thumbnail is stored before the old one is removed.
func (s *VideoService) Update(ctx context.Context, videoID, callerID string, req model.UpdateVideoRequest, thumbnail *Upload) (*model.VideoWithOwner, error) {
	if req.Title == "" && req.Description == "" && thumbnail == nil {
		return nil, apperr.BadRequest("nothing to update")
	}

	video, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		return nil, apperr.FromStore(err, "video not found")
	}
	if err := requireOwner(video.OwnerID, callerID, "video"); err != nil {
		return nil, err
	}

	var thumbURL *string
	if thumbnail != nil {
		if err := requireImage(*thumbnail, "thumbnail"); err != nil {
			return nil, err
		}
		u, err := s.storeMedia(ctx, "thumbnails", *thumbnail)
		if err != nil {
			return nil, err
		}
		thumbURL = &u
	}

	updated, err := s.videos.UpdateDetails(ctx, videoID, req.Title, req.Description, thumbURL)
	if err != nil {
		if thumbURL != nil {
			s.removeBlob(ctx, *thumbURL)
		}
		return nil, apperr.FromStore(err, "video not found")
	}
	if thumbURL != nil && video.ThumbnailURL != nil {
		s.removeBlob(ctx, *video.ThumbnailURL)
	}
	return updated, nil
}

// TogglePublish flips the video's visibility.
func (s *VideoService) TogglePublish(ctx context.Context, videoID, callerID string) (*model.VideoWithOwner, error) {
	video, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		return nil, apperr.FromStore(err, "video not found")
	}
	if err := requireOwner(video.OwnerID, callerID, "video"); err != nil {
		return nil, err
	}
	updated, err := s.videos.TogglePublish(ctx, videoID)
	if err != nil {
		return nil, apperr.FromStore(err, "video not found")
	}
	return updated, nil
}

// Delete removes the video. Comments, replies, likes, playlist membership
// and watch history rows cascade with the row delete; blobs are cleaned
// afterwards with logged compensation.
func (s *VideoService) Delete(ctx context.Context, videoID, callerID string) error {
	video, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		return apperr.FromStore(err, "video not found")
	}
	if err := requireOwner(video.OwnerID, callerID, "video"); err != nil {
		return err
	}

	deleted, err := s.videos.Delete(ctx, videoID)
	if err != nil {
		return apperr.FromStore(err, "video not found")
	}
	if !deleted {
		return apperr.NotFound("video not found")
	}

	s.removeBlob(ctx, video.VideoURL)
	if video.ThumbnailURL != nil {
		s.removeBlob(ctx, *video.ThumbnailURL)
	}
	return nil
}

// ListByChannel returns one page of a channel's videos, newest first.
func (s *VideoService) ListByChannel(ctx context.Context, channelID string, page, limit int) (*model.VideoListResponse, error) {
	if _, err := s.users.FindByID(ctx, channelID); err != nil {
		return nil, apperr.FromStore(err, "channel not found")
	}

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

func (s *VideoService) storeMedia(ctx context.Context, prefix string, up Upload) (string, error) {
	ext, err := blob.ExtensionFor(up.ContentType)
	if err != nil {
		return "", apperr.BadRequest(err.Error())
	}
	url, err := s.blobs.Put(ctx, blob.Key(prefix, uuid.NewString(), ext), up.Reader, up.Size, up.ContentType)
	if err != nil {
		return "", apperr.Internal("store media", err)
	}
	return url, nil
}

func (s *VideoService) removeBlob(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := s.blobs.Remove(ctx, url); err != nil {
		log.Warn().Err(err).Str("object", url).Msg("blob cleanup failed")
	}
}
