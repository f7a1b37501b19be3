package feedback

import (
	"errors"
	"strings"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 1000
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrEmptyComment   = errors.New("comment cannot be empty")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")
)

type Rating struct {
	value int
}

func NewRating(value int) (Rating, error) {
	if value < MinRating || value > MaxRating {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: value}, nil
}

func (r Rating) Value() int {
	return r.value
}

type Comment struct {
	value string
}

func NewComment(value string) (Comment, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Comment{}, ErrEmptyComment
	}
	if len(trimmed) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{value: trimmed}, nil
}

func (c Comment) String() string {
	return c.value
}
