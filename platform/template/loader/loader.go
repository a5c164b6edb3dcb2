// Package loader abstracts where template source comes from: a string, a
// file on disk, or any io.Reader.
package loader

import (
	"io"
	"net/url"
)

// Loader provides template source as a reader plus a URL identifying where
// the source came from.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}
