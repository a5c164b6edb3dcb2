package loader

import (
	"bytes"
	"fmt"
	"io"
	"net/url"

	"github.com/tavener/go-hamlet/internal/helpers"
)

// FromIoReader buffers template source from an arbitrary reader so the unit
// can re-read it any number of times.
type FromIoReader struct {
	content   []byte
	sourceURL *url.URL
}

func NewFromIoReader(r io.Reader) (*FromIoReader, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: reader is nil", ErrInputEmpty)
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: reader returned no content", ErrInputEmpty)
	}

	if closer, ok := r.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return nil, fmt.Errorf("failed to close reader: %w", err)
		}
	}

	u, err := url.Parse("reader://inline/" + helpers.SHA256(string(content))[:8])
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromIoReader{
		content:   content,
		sourceURL: u,
	}, nil
}

func (l *FromIoReader) String() string {
	return fmt.Sprintf("loader.FromIoReader{Bytes: %d}", len(l.content))
}

func (l *FromIoReader) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(l.content)), nil
}

// GetSourceURL returns the source URL of the template.
func (l *FromIoReader) GetSourceURL() *url.URL {
	return l.sourceURL
}
