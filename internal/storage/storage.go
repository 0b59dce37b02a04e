package storage

import "errors"

var (
	ErrNotFound   = errors.New("record not found")
	ErrNoSuchKey  = errors.New("no such key")
	ErrBadField   = errors.New("field is not allowed for update")
	ErrBadPayload = errors.New("invalid payload")
)

var (
	ErrFileTooLarge    = errors.New("file size exceeds limit")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileNotFound    = errors.New("file not found")
)
