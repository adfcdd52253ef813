package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"playtube/internal/apperr"
	"playtube/internal/model"
	"playtube/internal/repository"
)

// ReplyService owns second-level comments.
type ReplyService struct {
	replies  *repository.ReplyRepo
	comments *repository.CommentRepo
}

func NewReplyService(replies *repository.ReplyRepo, comments *repository.CommentRepo) *ReplyService {
	return &ReplyService{replies: replies, comments: comments}
}

// Create attaches a reply to a comment.
func (s *ReplyService) Create(ctx context.Context, commentID, ownerID, content string) (*model.ReplyWithOwner, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.BadRequest("content is required")
	}
	if _, err := s.comments.FindByID(ctx, commentID); err != nil {
		return nil, apperr.FromStore(err, "comment not found")
	}

	reply, err := s.replies.Create(ctx, &model.Reply{
		ID:        uuid.NewString(),
		Content:   content,
		OwnerID:   ownerID,
		CommentID: commentID,
	})
	if err != nil {
		return nil, apperr.FromStore(err, "comment not found")
	}
	return reply, nil
}

// Update rewrites a reply's content. Only the author may update.
func (s *ReplyService) Update(ctx context.Context, replyID, callerID, content string) (*model.ReplyWithOwner, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.BadRequest("content is required")
	}

	reply, err := s.replies.FindByID(ctx, replyID)
	if err != nil {
		return nil, apperr.FromStore(err, "reply not found")
	}
	if err := requireOwner(reply.OwnerID, callerID, "reply"); err != nil {
		return nil, err
	}

	updated, err := s.replies.Update(ctx, replyID, content)
	if err != nil {
		return nil, apperr.FromStore(err, "reply not found")
	}
	return updated, nil
}

// Delete removes a reply; likes on it cascade.
func (s *ReplyService) Delete(ctx context.Context, replyID, callerID string) error {
	reply, err := s.replies.FindByID(ctx, replyID)
	if err != nil {
		return apperr.FromStore(err, "reply not found")
	}
	if err := requireOwner(reply.OwnerID, callerID, "reply"); err != nil {
		return err
	}

	deleted, err := s.replies.Delete(ctx, replyID)
	if err != nil {
		return apperr.FromStore(err, "reply not found")
	}
	if !deleted {
		return apperr.NotFound("reply not found")
	}
	return nil
}

// ListForComment returns a comment's replies with owners, newest first.
func (s *ReplyService) ListForComment(ctx context.Context, commentID string) ([]model.ReplyWithOwner, error) {
	if _, err := s.comments.FindByID(ctx, commentID); err != nil {
		return nil, apperr.FromStore(err, "comment not found")
	}
	replies, err := s.replies.ListByComment(ctx, commentID)
	if err != nil {
		return nil, apperr.FromStore(err, "comment not found")
	}
	if replies == nil {
		replies = []model.ReplyWithOwner{}
	}
	return replies, nil
}
