package render

import (
	"fmt"

	"dcmedit/dcm"
	"dcmedit/dcm/dtag"
)

type (
	// ErrUnsupportedEncoding reports pixel data whose byte length does not
	// match the length implied by the declared image dimensions, which is
	// what a compressed transfer syntax looks like to this tool. The caller
	// shows a "not supported" state; the data set itself stays usable.
	ErrUnsupportedEncoding struct {
		Declared int
		Expected int
	}
)

func (e ErrUnsupportedEncoding) Error() string {
	return fmt.Sprintf(
		"unsupported pixel encoding: pixel data is %d bytes, dimensions imply %d",
		e.Declared, e.Expected,
	)
}

// CheckImageSupport reports whether the file's pixel data can be handed to
// the raster pipeline: all the image-critical tags present and the pixel
// data length matching the uncompressed size they imply.
func CheckImageSupport(file *dcm.File) error {
	pixel, ok := file.Data.Get(dtag.PixelData)
	if !ok {
		return ErrUnsupportedEncoding{Declared: 0, Expected: -1}
	}

	rows, ok := readUShort(file, dtag.Rows)
	if !ok {
		return ErrUnsupportedEncoding{Declared: len(pixel.Value), Expected: -1}
	}
	columns, ok := readUShort(file, dtag.Columns)
	if !ok {
		return ErrUnsupportedEncoding{Declared: len(pixel.Value), Expected: -1}
	}
	samples, ok := readUShort(file, dtag.SamplesPerPixel)
	if !ok {
		samples = 1
	}
	bitsAllocated, ok := readUShort(file, dtag.BitsAllocated)
	if !ok {
		return ErrUnsupportedEncoding{Declared: len(pixel.Value), Expected: -1}
	}

	expected := int(rows) * int(columns) * int(samples) * int(bitsAllocated) / 8
	declared := len(pixel.Value)
	// a single trailing pad byte is fine
	if declared != expected && declared != expected+expected%2 {
		return ErrUnsupportedEncoding{Declared: declared, Expected: expected}
	}
	return nil
}

func readUShort(file *dcm.File, tag dtag.Tag) (uint16, bool) {
	element, ok := file.Data.Get(tag)
	if !ok || len(element.Value) < 2 {
		return 0, false
	}
	return file.Syntax.ByteOrder.Uint16(element.Value), true
}
