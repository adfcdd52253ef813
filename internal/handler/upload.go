package handler

import (
	"mime/multipart"

	"playtube/internal/apperr"
	"playtube/internal/service"
)

// openUpload turns a received multipart file into a service upload. The
// returned closer must run after the service call.
func openUpload(fh *multipart.FileHeader) (service.Upload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return service.Upload{}, nil, apperr.BadRequest("could not read uploaded file")
	}
	up := service.Upload{
		Reader:      f,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
	}
	return up, func() { f.Close() }, nil
}
