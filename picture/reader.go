package picture

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"io"

	"github.com/bodgit/skribbl/palette"
)

var (
	errBadMagic   = errors.New("picture: not a skribbl picture")
	errNotEnough  = errors.New("picture: not enough image data")
	errTooMuch    = errors.New("picture: too much image data")
	errBadPalette = errors.New("picture: invalid palette index")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	width, height int

	image *image.Paletted

	tmp [headerSize]byte
}

func (d *decoder) readHeader() error {
	if err := readFull(d.r, d.tmp[:]); err != nil {
		return err
	}
	if string(d.tmp[:len(magic)]) != magic {
		return errBadMagic
	}
	d.width = int(binary.LittleEndian.Uint16(d.tmp[len(magic):]))
	d.height = int(binary.LittleEndian.Uint16(d.tmp[len(magic)+2:]))
	return nil
}

// readPixels grows the pixel buffer as data arrives so a header claiming a
// huge picture costs no more memory than the data that follows it.
func (d *decoder) readPixels() error {
	buf := new(bytes.Buffer)
	if _, err := io.CopyN(buf, d.r, int64(d.width)*int64(d.height)); err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}

	pix := buf.Bytes()
	for _, b := range pix {
		if int(b) >= palette.Size {
			return errBadPalette
		}
	}

	d.image = &image.Paletted{
		Pix:     pix,
		Stride:  d.width,
		Rect:    image.Rect(0, 0, d.width, d.height),
		Palette: palette.Palette(),
	}
	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = r

	if err := d.readHeader(); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	if configOnly {
		return nil
	}

	if err := d.readPixels(); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	if n, err := r.Read(d.tmp[:1]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil {
			return err
		}
		return errTooMuch
	}

	return nil
}

// Decode reads a skribbl picture from r and returns it as an image.Image.
// The concrete type is *image.Paletted using palette.Palette.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of a skribbl picture
// without decoding the entire picture.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: palette.Palette(),
		Width:      d.width,
		Height:     d.height,
	}, nil
}
