package edit

import (
	"fmt"

	"dcmedit/dcm/dtag"
)

type (
	// Address names one editable slot: a top-level element, or an element
	// inside one item of a top-level sequence. Nesting stops at one level;
	// deeper sequences are browsable but not addressable.
	Address struct {
		InSequence  bool
		Tag         dtag.Tag // top-level element, when InSequence is false
		SequenceTag dtag.Tag
		ItemIndex   int
		ElementTag  dtag.Tag
	}
)

// TopLevel addresses a top-level element.
func TopLevel(tag dtag.Tag) Address {
	return Address{Tag: tag}
}

// InItem addresses an element inside item index of a top-level sequence.
func InItem(sequence dtag.Tag, index int, element dtag.Tag) Address {
	return Address{
		InSequence:  true,
		SequenceTag: sequence,
		ItemIndex:   index,
		ElementTag:  element,
	}
}

// Key is the canonical string form, used to key the pending change set:
// "x00100010" for a top-level element, "x0040a730:1:x00080100" for a nested
// one. Two addresses naming the same slot always produce the same key.
func (a Address) Key() string {
	if !a.InSequence {
		return a.Tag.Hex()
	}
	return fmt.Sprintf("%s:%d:%s", a.SequenceTag.Hex(), a.ItemIndex, a.ElementTag.Hex())
}

func (a Address) String() string {
	return a.Key()
}
