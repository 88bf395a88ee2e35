package dvr

import (
	"strings"
)

// Normalize maps any VR string to a member of the valid VR set. Valid codes
// pass through unchanged, known aliases are remapped, and everything else
// falls back to UN. It never fails.
func Normalize(vr string) string {
	upper := strings.ToUpper(vr)
	if _, ok := validSet[upper]; ok {
		return upper
	}
	if remapped, ok := remapTable[upper]; ok {
		return remapped
	}
	return UN
}

// IsValid reports whether vr is a member of the valid VR set as-is.
func IsValid(vr string) bool {
	_, ok := validSet[vr]
	return ok
}

// IsBinary reports whether a normalized VR holds opaque binary data with no
// safe text representation.
func IsBinary(vr string) bool {
	switch vr {
	case OB, OW, OF, OD:
		return true
	}
	return false
}

// HasLongLength reports whether an explicit-VR element of this VR uses the
// 12-byte header form: 2 reserved bytes followed by a 32-bit length.
func HasLongLength(vr string) bool {
	switch vr {
	case OB, OD, OF, OW, SQ, UN, UT:
		return true
	}
	return false
}

// UsesSpacePadding reports whether odd-length values of this VR are padded to
// even length with a trailing space. UI and the binary VRs pad with NUL.
func UsesSpacePadding(vr string) bool {
	switch vr {
	case UI, OB, OW, OF, OD, UN, AT, SQ:
		return false
	}
	return true
}
