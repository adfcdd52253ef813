package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v3"

	"playtube/internal/apperr"
	"playtube/internal/model"
)

// Publish validates its inputs before touching any store, so the rejection
// paths are testable on a zero-value service.
func TestVideoPublish_InputValidation(t *testing.T) {
	svc := NewVideoService(nil, nil, nil, nil)
	videoFile := Upload{ContentType: "video/mp4"}
	thumbnail := Upload{ContentType: "image/png"}

	tests := []struct {
		name      string
		req       model.PublishVideoRequest
		video     Upload
		thumbnail Upload
		wantMsg   string
	}{
		{"missing title", model.PublishVideoRequest{Description: "a description"}, videoFile, thumbnail, "title is required"},
		{"blank title", model.PublishVideoRequest{Title: "   ", Description: "a description"}, videoFile, thumbnail, "title is required"},
		{"missing description", model.PublishVideoRequest{Title: "a title"}, videoFile, thumbnail, "description is required"},
		{"blank description", model.PublishVideoRequest{Title: "a title", Description: "   "}, videoFile, thumbnail, "description is required"},
		{"image as video file", model.PublishVideoRequest{Title: "a title", Description: "a description"}, Upload{ContentType: "image/png"}, thumbnail, "video must be a video file"},
		{"video as thumbnail", model.PublishVideoRequest{Title: "a title", Description: "a description"}, videoFile, Upload{ContentType: "video/mp4"}, "thumbnail must be an image"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			video, err := svc.Publish(context.Background(), "user-1", tt.req, tt.video, tt.thumbnail)
			if video != nil {
				t.Error("no video should be returned")
			}
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if got := apperr.Status(err); got != fiber.StatusBadRequest {
				t.Errorf("Status = %d, want %d", got, fiber.StatusBadRequest)
			}
			if got := apperr.Message(err); got != tt.wantMsg {
				t.Errorf("Message = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}
