package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"playtube/internal/apperr"
	"playtube/internal/model"
	"playtube/internal/repository"
)

// CommentService owns comments on videos and tweets.
type CommentService struct {
	comments *repository.CommentRepo
	videos   *repository.VideoRepo
	tweets   *repository.TweetRepo
}

func NewCommentService(comments *repository.CommentRepo, videos *repository.VideoRepo, tweets *repository.TweetRepo) *CommentService {
	return &CommentService{comments: comments, videos: videos, tweets: tweets}
}

// AddToVideo attaches a comment to a video.
func (s *CommentService) AddToVideo(ctx context.Context, videoID, ownerID, content string) (*model.CommentWithOwner, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.BadRequest("content is required")
	}
	if _, err := s.videos.FindByID(ctx, videoID); err != nil {
		return nil, apperr.FromStore(err, "video not found")
	}

	comment, err := s.comments.Create(ctx, &model.Comment{
		ID:      uuid.NewString(),
		Content: content,
		OwnerID: ownerID,
		VideoID: &videoID,
	})
	if err != nil {
		return nil, apperr.FromStore(err, "video not found")
	}
	return comment, nil
}

// AddToTweet attaches a comment to a tweet.
func (s *CommentService) AddToTweet(ctx context.Context, tweetID, ownerID, content string) (*model.CommentWithOwner, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.BadRequest("content is required")
	}
	if _, err := s.tweets.FindByID(ctx, tweetID); err != nil {
		return nil, apperr.FromStore(err, "tweet not found")
	}

	comment, err := s.comments.Create(ctx, &model.Comment{
		ID:      uuid.NewString(),
		Content: content,
		OwnerID: ownerID,
		TweetID: &tweetID,
	})
	if err != nil {
		return nil, apperr.FromStore(err, "tweet not found")
	}
	return comment, nil
}

// Update rewrites a comment's content. Only the author may update.
func (s *CommentService) Update(ctx context.Context, commentID, callerID, content string) (*model.CommentWithOwner, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.BadRequest("content is required")
	}

	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, apperr.FromStore(err, "comment not found")
	}
	if err := requireOwner(comment.OwnerID, callerID, "comment"); err != nil {
		return nil, err
	}

	updated, err := s.comments.Update(ctx, commentID, content)
	if err != nil {
		return nil, apperr.FromStore(err, "comment not found")
	}
	return updated, nil
}

// Delete removes a comment; its replies and all related likes cascade.
func (s *CommentService) Delete(ctx context.Context, commentID, callerID string) error {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return apperr.FromStore(err, "comment not found")
	}
	if err := requireOwner(comment.OwnerID, callerID, "comment"); err != nil {
		return err
	}

	deleted, err := s.comments.Delete(ctx, commentID)
	if err != nil {
		return apperr.FromStore(err, "comment not found")
	}
	if !deleted {
		return apperr.NotFound("comment not found")
	}
	return nil
}

// ListForVideo returns a video's comments with owners, newest first.
func (s *CommentService) ListForVideo(ctx context.Context, videoID string) (*model.CommentListResponse, error) {
	if _, err := s.videos.FindByID(ctx, videoID); err != nil {
		return nil, apperr.FromStore(err, "video not found")
	}
	comments, err := s.comments.ListByVideo(ctx, videoID)
	if err != nil {
		return nil, apperr.FromStore(err, "video not found")
	}
	if comments == nil {
		comments = []model.CommentWithOwner{}
	}
	return &model.CommentListResponse{Comments: comments, TotalComments: len(comments)}, nil
}

// ListForTweet returns a tweet's comments with owners, newest first.
func (s *CommentService) ListForTweet(ctx context.Context, tweetID string) (*model.CommentListResponse, error) {
	if _, err := s.tweets.FindByID(ctx, tweetID); err != nil {
		return nil, apperr.FromStore(err, "tweet not found")
	}
	comments, err := s.comments.ListByTweet(ctx, tweetID)
	if err != nil {
		return nil, apperr.FromStore(err, "tweet not found")
	}
	if comments == nil {
		comments = []model.CommentWithOwner{}
	}
	return &model.CommentListResponse{Comments: comments, TotalComments: len(comments)}, nil
}
