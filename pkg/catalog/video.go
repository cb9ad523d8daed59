// Package catalog defines the video catalog value types and the loader
// contract implemented by remote and on-disk fetchers.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"
)

var (
	// ErrVideoIDRequired is returned when a video has no identifier.
	ErrVideoIDRequired = errors.New("video id is required")
	// ErrVideoTitleRequired is returned when a video has no title.
	ErrVideoTitleRequired = errors.New("video title is required")
	// ErrStreamURLRequired is returned when a video has no stream URL.
	ErrStreamURLRequired = errors.New("video stream URL is required")
	// ErrDurationNegative is returned when a video duration is negative.
	ErrDurationNegative = errors.New("video duration must not be negative")
)

// Video is an immutable catalog entry describing one streamable item.
type Video struct {
	ID           string
	Title        string
	Description  string
	StreamURL    string
	ThumbnailURL string
	Duration     time.Duration
	PublishedAt  time.Time
}

// Validate checks that the entry carries the fields playback requires.
func (v Video) Validate() error {
	if v.ID == "" {
		return ErrVideoIDRequired
	}

	if v.Title == "" {
		return ErrVideoTitleRequired
	}

	if v.StreamURL == "" {
		return ErrStreamURLRequired
	}

	if _, err := url.Parse(v.StreamURL); err != nil {
		return fmt.Errorf("invalid stream URL: %w", err)
	}

	if v.ThumbnailURL != "" {
		if _, err := url.Parse(v.ThumbnailURL); err != nil {
			return fmt.Errorf("invalid thumbnail URL: %w", err)
		}
	}

	if v.Duration < 0 {
		return ErrDurationNegative
	}

	return nil
}

// Loader fetches the full catalog from its backing source. Remote HTTP and
// database-backed loaders live outside this module and conform to this
// contract.
type Loader interface {
	Load(ctx context.Context) ([]Video, error)
}
