package dset

import (
	"dcmedit/dcm/dtag"
)

func NewDataset() *Dataset {
	return &Dataset{
		order:    make([]dtag.Tag, 0),
		elements: make(map[dtag.Tag]*Element),
	}
}

// Put upserts an element. A tag already present keeps its position; a new tag
// is appended.
func (d *Dataset) Put(e *Element) {
	if _, ok := d.elements[e.Tag]; !ok {
		d.order = append(d.order, e.Tag)
	}
	d.elements[e.Tag] = e
}

func (d *Dataset) Get(t dtag.Tag) (*Element, bool) {
	e, ok := d.elements[t]
	return e, ok
}

// Delete removes a tag. Deleting an absent tag is a no-op.
func (d *Dataset) Delete(t dtag.Tag) {
	if _, ok := d.elements[t]; !ok {
		return
	}
	delete(d.elements, t)
	for i, tag := range d.order {
		if tag == t {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Tags returns the tags in insertion order. The returned slice is a copy.
func (d *Dataset) Tags() []dtag.Tag {
	tags := make([]dtag.Tag, len(d.order))
	copy(tags, d.order)
	return tags
}

func (d *Dataset) Len() int {
	return len(d.order)
}
