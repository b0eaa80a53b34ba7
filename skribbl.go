/*
Package skribbl is a library for drawing images on skribbl.io by driving the
mouse pointer.

An image is converted to the 22 color skribbl palette, split into queues of
per-pixel draw instructions and then drawn by selecting each color on the
color picker and clicking every pixel of that color on the canvas. Drawing
stops early, without error, when the session is cancelled or times out.
*/
package skribbl

import (
	"crypto/sha1"
	"fmt"
	"image"
	"io"

	"github.com/bodgit/skribbl/picture"
	"github.com/sirupsen/logrus"
)

// Bot converts and draws images. The cache is optional.
type Bot struct {
	cache  *Cache
	logger logrus.FieldLogger
}

// New returns a Bot using cache, which may be nil, and logger.
func New(cache *Cache, logger logrus.FieldLogger) *Bot {
	return &Bot{
		cache:  cache,
		logger: logger,
	}
}

// Source is a decoded image along with the SHA-1 of its encoded form.
type Source struct {
	Image image.Image
	SHA1  string
}

// Load decodes an image in any registered format from r.
func Load(r io.Reader) (Source, error) {
	h := sha1.New()
	m, _, err := image.Decode(io.TeeReader(r, h))
	if err != nil {
		return Source{}, err
	}
	return Source{
		Image: m,
		SHA1:  fmt.Sprintf("%X", h.Sum(nil)),
	}, nil
}

// Convert converts src to a palette picture, consulting the cache first.
func (b *Bot) Convert(src Source, o picture.Options) (*image.Paletted, error) {
	key := o.String()
	logger := b.logger.WithFields(logrus.Fields{"sha1": src.SHA1, "options": key})

	if b.cache != nil && src.SHA1 != "" {
		m, err := b.cache.FindPicture(src.SHA1, key)
		if err != nil {
			return nil, err
		}
		if m != nil {
			logger.Debug("using cached picture")
			return m, nil
		}
	}

	m := picture.Convert(src.Image, o)
	logger.WithField("size", m.Bounds().Size()).Debug("converted picture")

	if b.cache != nil && src.SHA1 != "" {
		if err := b.cache.AddPicture(src.SHA1, key, m); err != nil {
			return nil, err
		}
	}

	return m, nil
}
