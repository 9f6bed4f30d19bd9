package topic

import "errors"

var (
	ErrLabelRequired = errors.New("tematica label is required")
	ErrTopicExists   = errors.New("tematica already exists in this chapter")
)
