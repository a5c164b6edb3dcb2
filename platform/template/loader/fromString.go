package loader

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/tavener/go-hamlet/internal/helpers"
)

// FromString serves template source held in memory. Unlike a script loader
// it must not trim the content: leading whitespace is structurally
// significant in an indentation-based template.
type FromString struct {
	content   string
	sourceURL *url.URL
}

func NewFromString(content string) (*FromString, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is empty", ErrTemplateNotAvailable)
	}

	// A unique URL derived from the content hash
	u, err := url.Parse("string://inline/" + helpers.SHA256(content)[:8])
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromString{
		content:   content,
		sourceURL: u,
	}, nil
}

func (l *FromString) String() string {
	return fmt.Sprintf("loader.FromString{Chars: %d}", len(l.content))
}

func (l *FromString) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(l.content)), nil
}

// GetSourceURL returns the source URL of the template.
func (l *FromString) GetSourceURL() *url.URL {
	return l.sourceURL
}
