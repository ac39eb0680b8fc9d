package apperror

import "errors"

var (
	ErrConfig        = errors.New("invalid game configuration")
	ErrInvalidCell   = errors.New("invalid cell index")
	ErrInvalidPlayer = errors.New("invalid player")
)
