// Package lbytes holds the byte-level reading and writing primitives that the
// DICOM codec is built on.
package lbytes

import (
	"bytes"
)

type (
	Reader struct {
		bytes.Reader
	}
)
