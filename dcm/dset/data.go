// Package dset holds the in-memory DICOM data set model: tag-keyed elements,
// with sequences owning nested data sets.
package dset

import (
	"strings"
	"unicode/utf8"

	"dcmedit/dcm/dtag"
	"dcmedit/dcm/dvr"
)

type (
	// Element is one entry in a data set. Scalar elements carry raw value
	// bytes; sequence elements (VR SQ) carry Items instead, each item being
	// a nested data set.
	Element struct {
		Tag   dtag.Tag
		VR    string
		Value []byte
		Items []*Dataset
	}

	// Dataset maps tags to elements while preserving first-insertion order,
	// which is the file order for decoded data sets.
	Dataset struct {
		order    []dtag.Tag
		elements map[dtag.Tag]*Element
	}
)

func (e *Element) IsSequence() bool {
	return dvr.Normalize(e.VR) == dvr.SQ
}

// Text decodes the value bytes as a padded DICOM string. ok is false when the
// bytes are not displayable text.
func (e *Element) Text() (string, bool) {
	trimmed := strings.TrimRight(string(e.Value), "\x00 ")
	if !utf8.ValidString(trimmed) {
		return "", false
	}
	for _, r := range trimmed {
		if r < 0x20 && r != '\t' {
			return "", false
		}
	}
	return trimmed, true
}
