package notification

import "errors"

var (
	ErrEmptyMessage = errors.New("message is required")
	ErrNotFound     = errors.New("notification not found")
)
