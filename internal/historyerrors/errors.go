package historyerrors

import "errors"

// Store-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrUserNotFound    = errors.New("user not found in directory")
	ErrInvalidCursor   = errors.New("invalid pagination cursor")
)

// business logic errors
var (
	ErrInvalidQuery = errors.New("invalid history query")
)
