package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"playtube/internal/apperr"
	"playtube/internal/blob"
	"playtube/internal/model"
	"playtube/internal/repository"
)

// UserService owns the channel-facing side of an account: profile reads,
// account and media updates, watch history and channel deletion.
type UserService struct {
	users *repository.UserRepo
	blobs *blob.Store
	cache *CacheService
}

func NewUserService(users *repository.UserRepo, blobs *blob.Store, cache *CacheService) *UserService {
	return &UserService{users: users, blobs: blobs, cache: cache}
}

func (s *UserService) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.FromStore(err, "user not found")
	}
	return user, nil
}

// UpdateAccount applies a partial update of full name and email.
func (s *UserService) UpdateAccount(ctx context.Context, userID string, req model.UpdateAccountRequest) (*model.User, error) {
	if req.FullName == "" && req.Email == "" {
		return nil, apperr.BadRequest("at least one of fullname or email is required")
	}
	user, err := s.users.UpdateAccount(ctx, userID, req.FullName, req.Email)
	if err != nil {
		return nil, apperr.ConflictMessage(
			apperr.FromStore(err, "user not found"), "email already exists")
	}
	s.invalidateChannel(ctx, user.Username)
	return user, nil
}

// UpdateAvatar stores the new image before the old one is removed, so a
// failed upload never leaves the account without an avatar.
func (s *UserService) UpdateAvatar(ctx context.Context, userID string, up Upload) (*model.User, error) {
	if err := requireImage(up, "avatar"); err != nil {
		return nil, err
	}
	current, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.FromStore(err, "user not found")
	}

	url, err := s.storeImage(ctx, "avatars", up)
	if err != nil {
		return nil, err
	}
	user, err := s.users.UpdateAvatar(ctx, userID, url)
	if err != nil {
		s.removeBlob(ctx, url)
		return nil, apperr.FromStore(err, "user not found")
	}
	s.removeBlob(ctx, current.AvatarURL)
	s.invalidateChannel(ctx, user.Username)
	return user, nil
}

// UpdateCoverImage replaces the cover image with the same store-then-remove
// ordering as UpdateAvatar.
func (s *UserService) UpdateCoverImage(ctx context.Context, userID string, up Upload) (*model.User, error) {
	if err := requireImage(up, "cover image"); err != nil {
		return nil, err
	}
	current, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.FromStore(err, "user not found")
	}

	url, err := s.storeImage(ctx, "covers", up)
	if err != nil {
		return nil, err
	}
	user, err := s.users.UpdateCoverImage(ctx, userID, url)
	if err != nil {
		s.removeBlob(ctx, url)
		return nil, apperr.FromStore(err, "user not found")
	}
	if current.CoverImageURL != nil && *current.CoverImageURL != "" {
		s.removeBlob(ctx, *current.CoverImageURL)
	}
	s.invalidateChannel(ctx, user.Username)
	return user, nil
}

// ChannelProfile returns the channel projection for a username. Anonymous
// lookups go through the cache; authenticated ones bypass it because
// isSubscribed depends on the caller.
func (s *UserService) ChannelProfile(ctx context.Context, username string, callerID *string) (*model.ChannelProfile, error) {
	if username == "" {
		return nil, apperr.BadRequest("username is required")
	}

	if callerID == nil {
		if cached, err := s.cache.GetChannel(ctx, username); err == nil && cached != nil {
			var p model.ChannelProfile
			if err := json.Unmarshal(cached, &p); err == nil {
				return &p, nil
			}
		}
	}

	profile, err := s.users.ChannelProfile(ctx, username, callerID)
	if err != nil {
		return nil, apperr.FromStore(err, "channel not found")
	}

	if callerID == nil {
		if err := s.cache.SetChannel(ctx, username, profile); err != nil {
			log.Warn().Err(err).Str("channel", username).Msg("cache channel profile failed")
		}
	}
	return profile, nil
}

// WatchHistory returns the caller's watched videos, most recent first.
func (s *UserService) WatchHistory(ctx context.Context, userID string) ([]model.WatchHistoryEntry, error) {
	history, err := s.users.WatchHistory(ctx, userID)
	if err != nil {
		return nil, apperr.FromStore(err, "user not found")
	}
	if history == nil {
		history = []model.WatchHistoryEntry{}
	}
	return history, nil
}

// DeleteChannel removes the account and everything hanging off it. The row
// delete cascades through videos, comments, replies, likes, subscriptions,
// playlists and watch history in one statement; blobs are cleaned afterwards
// with logged compensation since the store delete already committed.
func (s *UserService) DeleteChannel(ctx context.Context, userID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return apperr.FromStore(err, "user not found")
	}
	urls, err := s.users.MediaURLs(ctx, userID)
	if err != nil {
		return apperr.FromStore(err, "user not found")
	}

	deleted, err := s.users.Delete(ctx, userID)
	if err != nil {
		return apperr.FromStore(err, "user not found")
	}
	if !deleted {
		return apperr.NotFound("user not found")
	}

	for _, url := range urls {
		s.removeBlob(ctx, url)
	}
	s.invalidateChannel(ctx, user.Username)
	return nil
}

func (s *UserService) storeImage(ctx context.Context, prefix string, up Upload) (string, error) {
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

func (s *UserService) removeBlob(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := s.blobs.Remove(ctx, url); err != nil {
		log.Warn().Err(err).Str("object", url).Msg("blob cleanup failed")
	}
}

func (s *UserService) invalidateChannel(ctx context.Context, username string) {
	if err := s.cache.InvalidateChannel(ctx, username); err != nil {
		log.Warn().Err(err).Str("channel", username).Msg("cache invalidation failed")
	}
}
