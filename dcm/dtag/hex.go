package dtag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Hex returns the display form of a tag: a leading "x" marker followed by
// 8 lowercase hex digits, e.g. "x7fe00010". This is the addressing key used
// at the UI boundary.
func (t Tag) Hex() string {
	return fmt.Sprintf("x%08x", uint32(t))
}

func (t Tag) String() string {
	return fmt.Sprintf("(%04x,%04x)", t.Group(), t.Element())
}

// Parse reads a tag from its display form. The leading "x" marker is optional
// and hex digit case is ignored.
func Parse(s string) (Tag, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "x"), "X")
	if len(trimmed) != 8 {
		return 0, errors.Errorf(`Parse error: tag "%s" is not 8 hex digits`, s)
	}
	value, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, `Parse error: tag "%s"`, s)
	}
	return Tag(value), nil
}
