package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"playtube/internal/apperr"
	"playtube/internal/model"
	"playtube/internal/repository"
)

// TweetService owns the short-post feature.
type TweetService struct {
	tweets *repository.TweetRepo
	users  *repository.UserRepo
}

func NewTweetService(tweets *repository.TweetRepo, users *repository.UserRepo) *TweetService {
	return &TweetService{tweets: tweets, users: users}
}

func (s *TweetService) Create(ctx context.Context, ownerID, content string) (*model.TweetWithOwner, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.BadRequest("content is required")
	}

	tweet, err := s.tweets.Create(ctx, &model.Tweet{
		ID:      uuid.NewString(),
		Content: content,
		OwnerID: ownerID,
	})
	if err != nil {
		return nil, apperr.FromStore(err, "user not found")
	}
	return tweet, nil
}

// ListForUser returns a user's tweets, newest first.
func (s *TweetService) ListForUser(ctx context.Context, userID string) ([]model.TweetWithOwner, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, apperr.FromStore(err, "user not found")
	}
	tweets, err := s.tweets.ListByOwner(ctx, userID)
	if err != nil {
		return nil, apperr.FromStore(err, "user not found")
	}
	if tweets == nil {
		tweets = []model.TweetWithOwner{}
	}
	return tweets, nil
}

// Update rewrites a tweet's content. Only the author may update.
func (s *TweetService) Update(ctx context.Context, tweetID, callerID, content string) (*model.TweetWithOwner, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.BadRequest("content is required")
	}

	tweet, err := s.tweets.FindByID(ctx, tweetID)
	if err != nil {
		return nil, apperr.FromStore(err, "tweet not found")
	}
	if err := requireOwner(tweet.OwnerID, callerID, "tweet"); err != nil {
		return nil, err
	}

	updated, err := s.tweets.Update(ctx, tweetID, content)
	if err != nil {
		return nil, apperr.FromStore(err, "tweet not found")
	}
	return updated, nil
}

// Delete removes a tweet; its comments, their replies and all related likes
// cascade.
func (s *TweetService) Delete(ctx context.Context, tweetID, callerID string) error {
	tweet, err := s.tweets.FindByID(ctx, tweetID)
	if err != nil {
		return apperr.FromStore(err, "tweet not found")
	}
	if err := requireOwner(tweet.OwnerID, callerID, "tweet"); err != nil {
		return err
	}

	deleted, err := s.tweets.Delete(ctx, tweetID)
	if err != nil {
		return apperr.FromStore(err, "tweet not found")
	}
	if !deleted {
		return apperr.NotFound("tweet not found")
	}
	return nil
}
