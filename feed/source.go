// Package feed supplies the raw IMF rate feed to a listener, once at startup and then periodically.
package feed

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// Version identifies one revision of the feed content
type Version struct {
	ModTime time.Time
	Size    int64
}

// Same reports whether both versions describe the same content
func (v Version) Same(o Version) bool {
	return v.ModTime.Equal(o.ModTime) && v.Size == o.Size
}

// Source opens the current feed content. The caller closes the returned reader.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, Version, error)
}

// fileSource reads the feed from a local file, typically kept fresh by an external downloader
type fileSource struct {
	path string
}

// NewFileSource constructs a Source reading path
func NewFileSource(path string) Source {
	return &fileSource{
		path: path,
	}
}

func (s *fileSource) Open(ctx context.Context) (io.ReadCloser, Version, error) {
	if err := ctx.Err(); err != nil {
		return nil, Version{}, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, Version{}, fmt.Errorf("opening feed [%v]: %w", s.path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, Version{}, fmt.Errorf("stat feed [%v]: %w", s.path, err)
	}
	return f, Version{ModTime: info.ModTime(), Size: info.Size()}, nil
}
