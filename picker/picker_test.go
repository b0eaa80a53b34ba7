package picker

import (
	"image"
	"testing"

	"github.com/bodgit/skribbl/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	m, err := Build(Box{X: 0, Y: 0, Width: 10, Height: 10})
	require.NoError(t, err)
	require.Len(t, m, palette.Size)

	assert.Equal(t, image.Pt(5, 5), m[palette.White])
	assert.Equal(t, image.Pt(25, 5), m[palette.LightRed])
	assert.Equal(t, image.Pt(5, 15), m[palette.Black])
	assert.Equal(t, image.Pt(105, 15), m[palette.DarkBrown])
}

func TestBuildOffset(t *testing.T) {
	m, err := Build(Box{X: 600, Y: 700, Width: 24, Height: 24})
	require.NoError(t, err)

	p, err := m.Lookup(palette.DarkCyan)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(600+12+6*24, 700+12+24), p)
}

func TestBuildCoversPalette(t *testing.T) {
	m, err := Build(Box{Width: 1, Height: 1})
	require.NoError(t, err)

	seen := make(map[image.Point]bool)
	for _, c := range palette.Colors {
		p, err := m.Lookup(c)
		require.NoError(t, err)
		assert.False(t, seen[p])
		seen[p] = true
	}
}

func TestBuildEmpty(t *testing.T) {
	_, err := Build(Box{Width: 10})
	assert.ErrorIs(t, err, ErrEmptyBox)
	_, err = Build(Box{Height: 10, Width: -1})
	assert.ErrorIs(t, err, ErrEmptyBox)
}

func TestLookupUnknown(t *testing.T) {
	m, err := Build(Box{Width: 10, Height: 10})
	require.NoError(t, err)
	_, err = m.Lookup(palette.Color{R: 1, G: 2, B: 3})
	assert.ErrorIs(t, err, ErrUnknownColor)
}

func TestParseBox(t *testing.T) {
	b, err := ParseBox("x10y200w814h611")
	require.NoError(t, err)
	assert.Equal(t, Box{X: 10, Y: 200, Width: 814, Height: 611}, b)
	assert.Equal(t, "x10y200w814h611", b.String())

	for _, s := range []string{"", "x1y2w3", "y1x2w3h4", "x1y2w3h4z", "xay2w3h4", "x1 y2w3h4", "x-1y2w3h4"} {
		_, err := ParseBox(s)
		assert.Error(t, err, s)
	}
}

func TestCanvas(t *testing.T) {
	c := Canvas{Box: Box{X: 100, Y: 50, Width: 814, Height: 611}, Cell: 3}
	require.NoError(t, c.Validate())

	w, h := c.Size()
	assert.Equal(t, 271, w)
	assert.Equal(t, 203, h)

	assert.Equal(t, image.Pt(101, 51), c.Point(0, 0))
	assert.Equal(t, image.Pt(100+3*7+1, 50+3*2+1), c.Point(7, 2))

	assert.Error(t, Canvas{Box: c.Box}.Validate())
	assert.ErrorIs(t, Canvas{Cell: 3}.Validate(), ErrEmptyBox)
	assert.Error(t, Canvas{Box: Box{Width: 2, Height: 10}, Cell: 3}.Validate())
}
