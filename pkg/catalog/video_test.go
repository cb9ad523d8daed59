package catalog

import (
	"errors"
	"testing"
	"time"
)

func validVideo() Video {
	return Video{
		ID:           "vid-1",
		Title:        "Big Buck Bunny",
		Description:  "An open movie",
		StreamURL:    "https://example.com/stream/vid-1.m3u8",
		ThumbnailURL: "https://example.com/thumb/vid-1.jpg",
		Duration:     9*time.Minute + 56*time.Second,
		PublishedAt:  time.Date(2008, 5, 30, 0, 0, 0, 0, time.UTC),
	}
}

func TestVideoValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Video)
		wantErr error
	}{
		{"valid", func(*Video) {}, nil},
		{"missing id", func(v *Video) { v.ID = "" }, ErrVideoIDRequired},
		{"missing title", func(v *Video) { v.Title = "" }, ErrVideoTitleRequired},
		{"missing stream URL", func(v *Video) { v.StreamURL = "" }, ErrStreamURLRequired},
		{"negative duration", func(v *Video) { v.Duration = -time.Second }, ErrDurationNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			video := validVideo()
			tt.mutate(&video)

			err := video.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestVideoValidateOptionalThumbnail(t *testing.T) {
	video := validVideo()
	video.ThumbnailURL = ""

	if err := video.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil for missing thumbnail", err)
	}
}
