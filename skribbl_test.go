package skribbl

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/bodgit/skribbl/palette"
	"github.com/bodgit/skribbl/pointer"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a Pointer that remembers every position it was moved to and
// can set a flag after a given number of clicks.
type recorder struct {
	moves  []image.Point
	clicks int

	stopAfter int
	stop      *Flag
	err       error
}

func (r *recorder) Move(x, y int) error {
	r.moves = append(r.moves, image.Point{x, y})
	return r.err
}

func (r *recorder) Click(c pointer.Click) error {
	r.clicks++
	if r.stop != nil && r.clicks == r.stopAfter {
		r.stop.Cancel()
	}
	return nil
}

func solid(w, h int, c color.Color) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, c)
		}
	}
	return m
}

func encodePNG(t *testing.T, m image.Image) []byte {
	t.Helper()
	b := new(bytes.Buffer)
	require.NoError(t, png.Encode(b, m))
	return b.Bytes()
}

func newCache(t *testing.T) *Cache {
	t.Helper()
	c, err := NewCache(filepath.Join(t.TempDir(), "skribbl.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func newBot(cache *Cache) (*Bot, *test.Hook) {
	logger, hook := test.NewNullLogger()
	return New(cache, logger), hook
}

func TestLoad(t *testing.T) {
	b := encodePNG(t, solid(3, 2, palette.LightRed))

	src, err := Load(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), src.Image.Bounds())
	assert.Len(t, src.SHA1, 40)

	again, err := Load(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, src.SHA1, again.SHA1)

	_, err = Load(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestConvertCached(t *testing.T) {
	cache := newCache(t)
	bot, _ := newBot(cache)

	src, err := Load(bytes.NewReader(encodePNG(t, solid(4, 4, palette.LightBlue))))
	require.NoError(t, err)

	o := DefaultConfig().Picture()

	m, err := cache.FindPicture(src.SHA1, o.String())
	require.NoError(t, err)
	assert.Nil(t, m)

	first, err := bot.Convert(src, o)
	require.NoError(t, err)

	m, err = cache.FindPicture(src.SHA1, o.String())
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, first.Pix, m.Pix)

	// A different source image under the same hash proves the cache is used
	src.Image = solid(4, 4, palette.LightGreen)
	second, err := bot.Convert(src, o)
	require.NoError(t, err)
	assert.Equal(t, first.Pix, second.Pix)
	assert.Equal(t, palette.LightBlue, second.At(0, 0))
}

func TestConvertWithoutCache(t *testing.T) {
	bot, _ := newBot(nil)

	m, err := bot.Convert(Source{Image: solid(2, 2, palette.LightYellow)}, DefaultConfig().Picture())
	require.NoError(t, err)
	assert.Equal(t, palette.LightYellow, m.At(1, 1))
}
