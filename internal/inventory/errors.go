package inventory

import "errors"

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrInvalidSortOrder = errors.New("invalid sort order")
)
