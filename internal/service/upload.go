package service

import (
	"io"
	"strings"

	"playtube/internal/apperr"
)

// Upload is one received media file, ready to stream into the blob store.
type Upload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

func requireImage(up Upload, field string) error {
	if !strings.HasPrefix(up.ContentType, "image/") {
		return apperr.BadRequest(field + " must be an image")
	}
	return nil
}

func requireVideo(up Upload, field string) error {
	if !strings.HasPrefix(up.ContentType, "video/") {
		return apperr.BadRequest(field + " must be a video file")
	}
	return nil
}
