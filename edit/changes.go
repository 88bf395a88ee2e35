package edit

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"dcmedit/dcm/dvr"
)

type (
	// Edit is one staged value change. Value is held as entered, except DA
	// values, whose display separators are stripped at staging time.
	Edit struct {
		Address Address
		VR      string
		Value   string
	}

	Removal struct {
		Address Address
	}

	// ChangeSet holds pending edits and removals keyed by address. Nothing
	// here touches a data set; Session.Commit applies the set to a fresh
	// decode. Last write wins per address, and a removal staged for an
	// address wins over an edit staged for the same address.
	ChangeSet struct {
		edits    map[string]Edit
		removals map[string]Removal
	}
)

func NewChangeSet() *ChangeSet {
	return &ChangeSet{
		edits:    map[string]Edit{},
		removals: map[string]Removal{},
	}
}

// StageEdit records a value change for an address, replacing any earlier
// edit at the same address. DA values are stored bare: "2023/06/15" and
// "20230615" stage the same bytes.
func (c *ChangeSet) StageEdit(address Address, vr string, value string) {
	vr = dvr.Normalize(vr)
	if vr == dvr.DA {
		value = strings.ReplaceAll(value, "/", "")
	}
	c.edits[address.Key()] = Edit{Address: address, VR: vr, Value: value}
}

// StageRemoval records a removal for an address, replacing any earlier
// removal at the same address.
func (c *ChangeSet) StageRemoval(address Address) {
	c.removals[address.Key()] = Removal{Address: address}
}

// Discard drops every pending change. Discarding an empty set is a no-op.
func (c *ChangeSet) Discard() {
	c.edits = map[string]Edit{}
	c.removals = map[string]Removal{}
}

func (c *ChangeSet) Len() int {
	return len(c.edits) + len(c.removals)
}

func (c *ChangeSet) Empty() bool {
	return c.Len() == 0
}

// Edits returns the staged edits in key order, so a commit applies and
// reports them deterministically.
func (c *ChangeSet) Edits() []Edit {
	keys := lo.Keys(c.edits)
	sort.Strings(keys)
	return lo.Map(keys, func(key string, _ int) Edit {
		return c.edits[key]
	})
}

// Removals returns the staged removals in key order.
func (c *ChangeSet) Removals() []Removal {
	keys := lo.Keys(c.removals)
	sort.Strings(keys)
	return lo.Map(keys, func(key string, _ int) Removal {
		return c.removals[key]
	})
}
