package messaging

import "errors"

var ErrInvalidPhone = errors.New("invalid phone number format")
