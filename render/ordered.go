package render

import (
	"github.com/iancoleman/orderedmap"

	"dcmedit/dcm/dset"
	"dcmedit/dcm/dtag"
	"dcmedit/dcm/dvr"
)

// ToOrderedMap projects a data set into an ordered map for JSON output,
// preserving file order. Sequence elements become arrays of nested maps.
func ToOrderedMap(ds *dset.Dataset) *orderedmap.OrderedMap {
	result := orderedmap.New()
	for _, tag := range ds.Tags() {
		element, _ := ds.Get(tag)
		if element.IsSequence() {
			items := make([]*orderedmap.OrderedMap, 0, len(element.Items))
			for _, item := range element.Items {
				items = append(items, ToOrderedMap(item))
			}
			result.Set(tag.Hex(), items)
			continue
		}

		entry := orderedmap.New()
		entry.Set("name", dtag.Name(tag))
		entry.Set("vr", dvr.Normalize(element.VR))
		entry.Set("value", FormatValue(element))
		result.Set(tag.Hex(), entry)
	}
	return result
}
