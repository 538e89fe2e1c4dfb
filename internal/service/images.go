package service

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/rjcampbel/DisneyMagic/internal/domain"
	"github.com/rjcampbel/DisneyMagic/internal/imaging"
)

// ImageLoader fetches and decodes tile artwork. Payloads go through the byte
// cache so artwork shared by several rows is downloaded once; URLs that
// failed are remembered for the rest of the run and not retried.
type ImageLoader struct {
	fetcher domain.Fetcher
	cache   domain.ByteCache
	logger  *slog.Logger

	failed map[string]error
}

// NewImageLoader creates a loader. cache may be nil.
func NewImageLoader(fetcher domain.Fetcher, cache domain.ByteCache, logger *slog.Logger) *ImageLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImageLoader{
		fetcher: fetcher,
		cache:   cache,
		logger:  logger,
		failed:  make(map[string]error),
	}
}

// Load returns the decoded image behind url
func (l *ImageLoader) Load(ctx context.Context, url string) (image.Image, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: no image url", domain.ErrNoVisual)
	}
	if err, ok := l.failed[url]; ok {
		return nil, err
	}

	if l.cache != nil {
		if data, ok := l.cache.Get(url); ok {
			l.logger.Debug("cache hit", "url", url)
			if img, err := imaging.Decode(data); err == nil {
				return img, nil
			}
			// corrupt entry: fall through and refetch
		}
	}

	data, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		l.failed[url] = err
		return nil, err
	}

	img, err := imaging.Decode(data)
	if err != nil {
		l.failed[url] = err
		return nil, err
	}

	if l.cache != nil {
		if err := l.cache.Put(url, data); err != nil {
			l.logger.Warn("failed to cache image", "url", url, "error", err)
		}
	}
	return img, nil
}
