package service

import (
	"testing"

	"github.com/gofiber/fiber/v3"

	"playtube/internal/apperr"
)

func TestRequireImage(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		wantErr     bool
	}{
		{"jpeg", "image/jpeg", false},
		{"png", "image/png", false},
		{"webp", "image/webp", false},
		{"video rejected", "video/mp4", true},
		{"pdf rejected", "application/pdf", true},
		{"empty rejected", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requireImage(Upload{ContentType: tt.contentType}, "avatar")
			if (err != nil) != tt.wantErr {
				t.Errorf("requireImage(%q) error = %v, wantErr %v", tt.contentType, err, tt.wantErr)
			}
			if err != nil && apperr.Status(err) != fiber.StatusBadRequest {
				t.Errorf("Status = %d, want %d", apperr.Status(err), fiber.StatusBadRequest)
			}
		})
	}
}

func TestRequireVideo(t *testing.T) {
	if err := requireVideo(Upload{ContentType: "video/webm"}, "videoFile"); err != nil {
		t.Errorf("video/webm should pass, got %v", err)
	}
	if err := requireVideo(Upload{ContentType: "image/png"}, "videoFile"); err == nil {
		t.Error("image content should be rejected for a video field")
	}
}
