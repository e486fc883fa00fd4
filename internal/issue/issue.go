package issue

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEmptyText is returned when a report has no description.
	ErrEmptyText = errors.New("issue text is required")
	// ErrUnsupportedAttachment is returned for attachments that are not images.
	ErrUnsupportedAttachment = errors.New("attachment must be an image")
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".heic": true,
}

// Report is a field issue with an optional image.
type Report struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	Attachment string    `json:"attachment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// New validates the input and stamps a new report.
func New(text, attachment string, now time.Time) (Report, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Report{}, ErrEmptyText
	}

	attachment = strings.TrimSpace(attachment)
	if attachment != "" {
		if !imageExtensions[strings.ToLower(filepath.Ext(attachment))] {
			return Report{}, fmt.Errorf("%w: %s", ErrUnsupportedAttachment, filepath.Base(attachment))
		}
		info, err := os.Stat(attachment)
		if err != nil {
			return Report{}, fmt.Errorf("attachment: %w", err)
		}
		if info.IsDir() {
			return Report{}, fmt.Errorf("%w: %s is a directory", ErrUnsupportedAttachment, attachment)
		}
	}

	return Report{
		ID:         uuid.New(),
		Text:       text,
		Attachment: attachment,
		CreatedAt:  now.UTC(),
	}, nil
}

// HasAttachment reports whether an image was attached.
func (r Report) HasAttachment() bool {
	return r.Attachment != ""
}
