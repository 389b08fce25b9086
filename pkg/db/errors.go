package db

import "github.com/Knoblauchpilze/backend-toolkit/pkg/errors"

const (
	NotConnected         errors.ErrorCode = 700
	ConnectionFailed     errors.ErrorCode = 701
	QueryFailed          errors.ErrorCode = 702
	NoMatchingRows       errors.ErrorCode = 703
	InvalidConfiguration errors.ErrorCode = 704
)
