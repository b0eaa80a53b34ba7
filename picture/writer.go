package picture

import (
	"encoding/binary"
	"errors"
	"image"
	"io"

	"github.com/bodgit/skribbl/palette"
)

var errTooBig = errors.New("picture: image is too big")

type encoder struct {
	w io.Writer
}

func (e *encoder) encode(m image.Image) error {
	b := m.Bounds()

	var header [headerSize]byte
	copy(header[:], magic)
	binary.LittleEndian.PutUint16(header[len(magic):], uint16(b.Dx()))
	binary.LittleEndian.PutUint16(header[len(magic)+2:], uint16(b.Dy()))
	if _, err := e.w.Write(header[:]); err != nil {
		return err
	}

	row := make([]byte, b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			// Anything not already in the palette is mapped to its
			// nearest color
			i, _ := palette.Index(palette.Nearest(palette.FromColor(m.At(x, y))))
			row[x-b.Min.X] = byte(i)
		}
		if _, err := e.w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// Encode writes the Image m to w as a skribbl picture.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() > maxSide || b.Dy() > maxSide {
		return errTooBig
	}

	e := encoder{w: w}

	return e.encode(m)
}
