package chapter

import "errors"

var (
	ErrChapterNotFound = errors.New("chapter not found")
	ErrRefMissing      = errors.New("chapterId or chapterSlug is required")
)
