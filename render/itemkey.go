package render

import (
	"fmt"
	"strconv"
	"strings"

	"dcmedit/dcm/dtag"
)

// ItemKey builds the addressing key of one sequence item, e.g.
// "x0040a730_item_1". Rows nested inside that item carry it as their Parent.
func ItemKey(sequence dtag.Tag, index int) string {
	return fmt.Sprintf("%s_item_%d", sequence.Hex(), index)
}

// ParseItemKey splits an item addressing key back into its sequence tag and
// item index. ok is false for keys that are not item keys, such as a plain
// tag or an empty parent.
func ParseItemKey(key string) (sequence dtag.Tag, index int, ok bool) {
	marker := strings.LastIndex(key, "_item_")
	if marker < 0 {
		return 0, 0, false
	}
	sequence, err := dtag.Parse(key[:marker])
	if err != nil {
		return 0, 0, false
	}
	index, err = strconv.Atoi(key[marker+len("_item_"):])
	if err != nil || index < 0 {
		return 0, 0, false
	}
	return sequence, index, true
}
