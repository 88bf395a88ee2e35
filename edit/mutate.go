package edit

import (
	"fmt"

	"dcmedit/dcm"
	"dcmedit/dcm/dset"
)

type (
	// ErrAddressNotFound reports a change whose address cannot be resolved
	// in the current data set: the sequence is absent, not a sequence, or
	// the item index is out of range. It fails that one change, never the
	// commit around it.
	ErrAddressNotFound struct {
		Address Address
	}
)

func (e ErrAddressNotFound) Error() string {
	return fmt.Sprintf("address %s not found", e.Address.Key())
}

// applyEdit upserts the edited element. A top-level edit inserts or replaces
// in place; a nested edit requires the sequence and item to exist, but the
// element itself may be new.
func applyEdit(file *dcm.File, edit Edit) error {
	if !edit.Address.InSequence {
		file.Data.Put(&dset.Element{
			Tag:   edit.Address.Tag,
			VR:    edit.VR,
			Value: []byte(edit.Value),
		})
		return nil
	}

	item, ok := resolveItem(file.Data, edit.Address)
	if !ok {
		return ErrAddressNotFound{Address: edit.Address}
	}
	item.Put(&dset.Element{
		Tag:   edit.Address.ElementTag,
		VR:    edit.VR,
		Value: []byte(edit.Value),
	})
	return nil
}

// applyRemoval deletes the addressed element. Removing an element that is
// already absent from a resolvable slot is a no-op; a nested removal whose
// sequence or item no longer resolves reports the address instead.
func applyRemoval(file *dcm.File, removal Removal) error {
	if !removal.Address.InSequence {
		file.Data.Delete(removal.Address.Tag)
		return nil
	}

	item, ok := resolveItem(file.Data, removal.Address)
	if !ok {
		return ErrAddressNotFound{Address: removal.Address}
	}
	item.Delete(removal.Address.ElementTag)
	return nil
}

func resolveItem(ds *dset.Dataset, address Address) (*dset.Dataset, bool) {
	sequence, ok := ds.Get(address.SequenceTag)
	if !ok || !sequence.IsSequence() {
		return nil, false
	}
	if address.ItemIndex < 0 || address.ItemIndex >= len(sequence.Items) {
		return nil, false
	}
	return sequence.Items[address.ItemIndex], true
}
