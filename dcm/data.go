// Package dcm decodes and encodes the DICOM file format: a 128-byte preamble,
// the "DICM" signature, an explicit-VR little endian meta group, and a data
// set in the transfer syntax the meta group declares.
package dcm

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"dcmedit/dcm/dset"
)

type (
	// File is a decoded DICOM file: the group-0002 meta header, the data set
	// proper, and the transfer syntax the data set was encoded in.
	File struct {
		Meta   *dset.Dataset
		Data   *dset.Dataset
		Syntax Syntax
	}

	// Syntax is a transfer syntax: whether VRs are written explicitly and in
	// which byte order values are encoded.
	Syntax struct {
		Implicit  bool
		ByteOrder binary.ByteOrder
	}

	// ErrMalformedStream reports input bytes that cannot be parsed as DICOM.
	// Decode never returns a partial data set alongside it.
	ErrMalformedStream struct {
		Reason string
	}
)

func (e ErrMalformedStream) Error() string {
	return fmt.Sprintf("malformed DICOM stream: %s", e.Reason)
}

const (
	// UndefinedLength marks delimited sequences, items, and encapsulated
	// pixel data.
	UndefinedLength = 0xFFFFFFFF

	preambleSize = 128
	magicWord    = "DICM"

	// transfer syntax UIDs
	ImplicitVRLittleEndianUID = "1.2.840.10008.1.2"
	ExplicitVRLittleEndianUID = "1.2.840.10008.1.2.1"
	ExplicitVRBigEndianUID    = "1.2.840.10008.1.2.2"
)

var (
	ExplicitVRLittleEndian = Syntax{Implicit: false, ByteOrder: binary.LittleEndian}
	ImplicitVRLittleEndian = Syntax{Implicit: true, ByteOrder: binary.LittleEndian}
	ExplicitVRBigEndian    = Syntax{Implicit: false, ByteOrder: binary.BigEndian}
)

// LookupSyntax maps a transfer syntax UID to its syntax. Unrecognized UIDs
// default to explicit VR little endian, which also covers the encapsulated
// (compressed) syntaxes whose data sets use that encoding.
func LookupSyntax(uid string) Syntax {
	switch uid {
	case ImplicitVRLittleEndianUID:
		return ImplicitVRLittleEndian
	case ExplicitVRBigEndianUID:
		return ExplicitVRBigEndian
	default:
		return ExplicitVRLittleEndian
	}
}

// IsDICOMFile reports whether bs carries the DICOM preamble and signature.
func IsDICOMFile(bs []byte) bool {
	if len(bs) < preambleSize+len(magicWord) {
		return false
	}
	return bytes.Equal(bs[preambleSize:preambleSize+len(magicWord)], []byte(magicWord))
}
