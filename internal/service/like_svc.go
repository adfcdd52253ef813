package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"playtube/internal/apperr"
	"playtube/internal/model"
	"playtube/internal/repository"
)

// LikeService flips likes on videos, comments, tweets and replies. Every
// toggle resolves the target's existence first, then flips in one statement
// and reports the live count.
type LikeService struct {
	likes    *repository.LikeRepo
	videos   *repository.VideoRepo
	comments *repository.CommentRepo
	tweets   *repository.TweetRepo
	replies  *repository.ReplyRepo
}

func NewLikeService(likes *repository.LikeRepo, videos *repository.VideoRepo, comments *repository.CommentRepo, tweets *repository.TweetRepo, replies *repository.ReplyRepo) *LikeService {
	return &LikeService{likes: likes, videos: videos, comments: comments, tweets: tweets, replies: replies}
}

// Toggle flips the caller's like on a target and returns the new state with
// the target's live like count.
func (s *LikeService) Toggle(ctx context.Context, target model.LikeTarget, targetID, userID string) (*model.ToggleResponse, error) {
	if err := s.ensureTargetExists(ctx, target, targetID); err != nil {
		return nil, err
	}

	state, err := s.likes.Toggle(ctx, target, targetID, userID, uuid.NewString())
	if err != nil {
		return nil, apperr.FromStore(err, targetName(target)+" not found")
	}
	total, err := s.likes.Count(ctx, target, targetID)
	if err != nil {
		return nil, apperr.FromStore(err, targetName(target)+" not found")
	}
	return &model.ToggleResponse{State: state, TotalLikes: total}, nil
}

// LikedVideos returns one page of the caller's liked videos, newest like
// first.
func (s *LikeService) LikedVideos(ctx context.Context, userID string, page, limit int) (*model.LikedVideosResponse, error) {
	page, limit = normalizePage(page, limit)
	videos, err := s.likes.LikedVideos(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, apperr.FromStore(err, "user not found")
	}
	total, err := s.likes.CountLikedVideos(ctx, userID)
	if err != nil {
		return nil, apperr.FromStore(err, "user not found")
	}
	if videos == nil {
		videos = []model.VideoWithOwner{}
	}
	return &model.LikedVideosResponse{Videos: videos, TotalLikedVideos: total, Page: page, Limit: limit}, nil
}

func (s *LikeService) ensureTargetExists(ctx context.Context, target model.LikeTarget, targetID string) error {
	var err error
	switch target {
	case model.LikeVideo:
		_, err = s.videos.FindByID(ctx, targetID)
	case model.LikeComment:
		_, err = s.comments.FindByID(ctx, targetID)
	case model.LikeTweet:
		_, err = s.tweets.FindByID(ctx, targetID)
	case model.LikeReply:
		_, err = s.replies.FindByID(ctx, targetID)
	default:
		return apperr.Internal("unknown like target", fmt.Errorf("target %q", target))
	}
	return apperr.FromStore(err, targetName(target)+" not found")
}

func targetName(target model.LikeTarget) string {
	switch target {
	case model.LikeVideo:
		return "video"
	case model.LikeComment:
		return "comment"
	case model.LikeTweet:
		return "tweet"
	case model.LikeReply:
		return "reply"
	}
	return "resource"
}
