package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	chapterdomain "chapter-app-go/internal/domain/chapter"
)

const (
	defaultTake = 50
	defaultSkip = 0
)

func chapterRefFromQuery(query url.Values) chapterdomain.Ref {
	return chapterRef(query.Get("chapterId"), query.Get("chapterSlug"))
}

func chapterRef(id, slug string) chapterdomain.Ref {
	ref := chapterdomain.Ref{Slug: strings.TrimSpace(slug)}
	if parsed, err := strconv.ParseUint(strings.TrimSpace(id), 10, 32); err == nil {
		ref.ID = uint(parsed)
	}
	return ref
}

// parseDateRequired and parseDateParam accept plain dates and full
// timestamps, the two shapes clients historically sent.
func parseDateRequired(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	return parseDate(value)
}

func parseDateParam(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}

// parseIntOrDefault mirrors the original take/skip handling: anything that
// does not parse as a non-negative integer silently falls back.
func parseIntOrDefault(value string, fallback int) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}

func parseIDParam(value string) (uint, error) {
	parsed, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id")
	}
	return uint(parsed), nil
}

// stringList normalizes a JSON array that may mix strings and numbers
// (legacy clients sent DNIs as bare numbers).
func stringList(values []interface{}) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		switch item := v.(type) {
		case string:
			result = append(result, item)
		case float64:
			result = append(result, strconv.FormatFloat(item, 'f', -1, 64))
		}
	}
	return result
}
