// Package render projects a decoded data set into flat display rows for a
// host UI, and into an ordered JSON-friendly map for the dump command.
package render

import (
	"fmt"

	"dcmedit/dcm/dset"
	"dcmedit/dcm/dtag"
	"dcmedit/dcm/dvr"
)

type (
	RowKind int

	// Row is a read-only projection of one element. Tag and Parent carry the
	// addressing keys a host UI needs to build an edit or removal address;
	// mutating a Row has no effect on the data set.
	Row struct {
		Tag    string
		Name   string
		VR     string
		Value  string
		Kind   RowKind
		Parent string
	}
)

const (
	RowNormal RowKind = iota
	RowSequenceHeader
	RowSequenceItemHeader
	RowSequenceElement
)

const (
	EmptyPlaceholder         = "[Empty]"
	BinaryPlaceholder        = "[Binary Data]"
	SequencePlaceholder      = "[Sequence]"
	CannotDisplayPlaceholder = "[Cannot Display]"
)

// Flatten walks a data set in stored order and produces one row per element,
// expanding sequences recursively. It never mutates the input.
func Flatten(ds *dset.Dataset) []Row {
	return flatten(ds, "")
}

func flatten(ds *dset.Dataset, parent string) []Row {
	rows := make([]Row, 0, ds.Len())
	for _, tag := range ds.Tags() {
		element, _ := ds.Get(tag)

		if element.IsSequence() && len(element.Items) > 0 {
			rows = append(rows, Row{
				Tag:    tag.Hex(),
				Name:   dtag.Name(tag),
				VR:     dvr.SQ,
				Value:  fmt.Sprintf("%d items", len(element.Items)),
				Kind:   RowSequenceHeader,
				Parent: parent,
			})
			for index, item := range element.Items {
				itemKey := ItemKey(tag, index)
				rows = append(rows, Row{
					Tag:    itemKey,
					Name:   fmt.Sprintf("Item %d", index),
					VR:     dvr.SQ,
					Value:  fmt.Sprintf("%d elements", item.Len()),
					Kind:   RowSequenceItemHeader,
					Parent: tag.Hex(),
				})
				rows = append(rows, flatten(item, itemKey)...)
			}
			continue
		}

		kind := RowNormal
		if parent != "" {
			kind = RowSequenceElement
		}
		rows = append(rows, Row{
			Tag:    tag.Hex(),
			Name:   dtag.Name(tag),
			VR:     dvr.Normalize(element.VR),
			Value:  FormatValue(element),
			Kind:   kind,
			Parent: parent,
		})
	}
	return rows
}

// FormatValue renders an element's value for display.
func FormatValue(element *dset.Element) string {
	vr := dvr.Normalize(element.VR)
	switch {
	case element.IsSequence():
		return SequencePlaceholder
	case dvr.IsBinary(vr) || element.Tag == dtag.PixelData:
		return BinaryPlaceholder
	}

	text, ok := element.Text()
	if !ok {
		return CannotDisplayPlaceholder
	}
	if text == "" {
		return EmptyPlaceholder
	}
	if vr == dvr.DA {
		return FormatDate(text)
	}
	return text
}

// FormatDate reformats an 8-digit DA value YYYYMMDD as YYYY/MM/DD. Anything
// else passes through unchanged.
func FormatDate(value string) string {
	if len(value) != 8 {
		return value
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return value
		}
	}
	return value[0:4] + "/" + value[4:6] + "/" + value[6:8]
}
