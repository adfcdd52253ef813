package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"playtube/internal/apperr"
	"playtube/internal/model"
	"playtube/internal/repository"
)

// PlaylistService owns playlist curation: creation, membership and updates.
type PlaylistService struct {
	playlists *repository.PlaylistRepo
	videos    *repository.VideoRepo
	users     *repository.UserRepo
}

func NewPlaylistService(playlists *repository.PlaylistRepo, videos *repository.VideoRepo, users *repository.UserRepo) *PlaylistService {
	return &PlaylistService{playlists: playlists, videos: videos, users: users}
}

// Create makes an empty playlist. Names are unique per owner.
func (s *PlaylistService) Create(ctx context.Context, ownerID string, req model.PlaylistRequest) (*model.PlaylistWithOwner, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.BadRequest("name is required")
	}

	playlist, err := s.playlists.Create(ctx, &model.Playlist{
		ID:          uuid.NewString(),
		Name:        name,
		Description: req.Description,
		OwnerID:     ownerID,
	})
	if err != nil {
		return nil, apperr.ConflictMessage(
			apperr.FromStore(err, "owner not found"),
			"a playlist with this name already exists")
	}
	return playlist, nil
}

// ListForUser returns a user's playlists with video counts, newest first.
func (s *PlaylistService) ListForUser(ctx context.Context, userID string) ([]model.PlaylistWithOwner, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, apperr.FromStore(err, "user not found")
	}
	playlists, err := s.playlists.ListByOwner(ctx, userID)
	if err != nil {
		return nil, apperr.FromStore(err, "user not found")
	}
	if playlists == nil {
		playlists = []model.PlaylistWithOwner{}
	}
	return playlists, nil
}

// Get returns one playlist with its member videos in playlist order.
func (s *PlaylistService) Get(ctx context.Context, playlistID string) (*model.PlaylistDetail, error) {
	playlist, err := s.playlists.FindByIDWithOwner(ctx, playlistID)
	if err != nil {
		return nil, apperr.FromStore(err, "playlist not found")
	}
	videos, err := s.playlists.ListVideos(ctx, playlistID)
	if err != nil {
		return nil, apperr.FromStore(err, "playlist not found")
	}
	if videos == nil {
		videos = []model.VideoWithOwner{}
	}
	return &model.PlaylistDetail{PlaylistWithOwner: *playlist, Videos: videos}, nil
}

// AddVideo links a video into the caller's playlist. Duplicates are rejected.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID, callerID string) (*model.PlaylistWithOwner, error) {
	playlist, err := s.playlists.FindByID(ctx, playlistID)
	if err != nil {
		return nil, apperr.FromStore(err, "playlist not found")
	}
	if err := requireOwner(playlist.OwnerID, callerID, "playlist"); err != nil {
		return nil, err
	}
	if _, err := s.videos.FindByID(ctx, videoID); err != nil {
		return nil, apperr.FromStore(err, "video not found")
	}

	added, err := s.playlists.AddVideo(ctx, playlistID, videoID)
	if err != nil {
		return nil, apperr.FromStore(err, "playlist not found")
	}
	if !added {
		return nil, apperr.Conflict("video is already in the playlist")
	}
	return s.withOwner(ctx, playlistID)
}

// RemoveVideo unlinks a video from the caller's playlist.
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, callerID string) (*model.PlaylistWithOwner, error) {
	playlist, err := s.playlists.FindByID(ctx, playlistID)
	if err != nil {
		return nil, apperr.FromStore(err, "playlist not found")
	}
	if err := requireOwner(playlist.OwnerID, callerID, "playlist"); err != nil {
		return nil, err
	}
	if _, err := s.videos.FindByID(ctx, videoID); err != nil {
		return nil, apperr.FromStore(err, "video not found")
	}

	removed, err := s.playlists.RemoveVideo(ctx, playlistID, videoID)
	if err != nil {
		return nil, apperr.FromStore(err, "playlist not found")
	}
	if !removed {
		return nil, apperr.NotFound("video is not in the playlist")
	}
	return s.withOwner(ctx, playlistID)
}

// Update renames a playlist or rewrites its description.
func (s *PlaylistService) Update(ctx context.Context, playlistID, callerID string, req model.PlaylistRequest) (*model.PlaylistWithOwner, error) {
	if strings.TrimSpace(req.Name) == "" && req.Description == "" {
		return nil, apperr.BadRequest("nothing to update")
	}

	playlist, err := s.playlists.FindByID(ctx, playlistID)
	if err != nil {
		return nil, apperr.FromStore(err, "playlist not found")
	}
	if err := requireOwner(playlist.OwnerID, callerID, "playlist"); err != nil {
		return nil, err
	}

	updated, err := s.playlists.Update(ctx, playlistID, strings.TrimSpace(req.Name), req.Description)
	if err != nil {
		return nil, apperr.ConflictMessage(
			apperr.FromStore(err, "playlist not found"),
			"a playlist with this name already exists")
	}
	return updated, nil
}

// TogglePublish flips the playlist's visibility.
func (s *PlaylistService) TogglePublish(ctx context.Context, playlistID, callerID string) (*model.PlaylistWithOwner, error) {
	playlist, err := s.playlists.FindByID(ctx, playlistID)
	if err != nil {
		return nil, apperr.FromStore(err, "playlist not found")
	}
	if err := requireOwner(playlist.OwnerID, callerID, "playlist"); err != nil {
		return nil, err
	}
	updated, err := s.playlists.TogglePublish(ctx, playlistID)
	if err != nil {
		return nil, apperr.FromStore(err, "playlist not found")
	}
	return updated, nil
}

// Delete removes a playlist; membership rows cascade and videos survive.
func (s *PlaylistService) Delete(ctx context.Context, playlistID, callerID string) error {
	playlist, err := s.playlists.FindByID(ctx, playlistID)
	if err != nil {
		return apperr.FromStore(err, "playlist not found")
	}
	if err := requireOwner(playlist.OwnerID, callerID, "playlist"); err != nil {
		return err
	}

	deleted, err := s.playlists.Delete(ctx, playlistID)
	if err != nil {
		return apperr.FromStore(err, "playlist not found")
	}
	if !deleted {
		return apperr.NotFound("playlist not found")
	}
	return nil
}

func (s *PlaylistService) withOwner(ctx context.Context, playlistID string) (*model.PlaylistWithOwner, error) {
	playlist, err := s.playlists.FindByIDWithOwner(ctx, playlistID)
	if err != nil {
		return nil, apperr.FromStore(err, "playlist not found")
	}
	return playlist, nil
}
