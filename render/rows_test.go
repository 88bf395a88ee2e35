package render

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dcmedit/dcm/dset"
	"dcmedit/dcm/dtag"
)

func sampleDataset() *dset.Dataset {
	grandchild := dset.NewDataset()
	grandchild.Put(&dset.Element{Tag: dtag.New(0x0008, 0x0104), VR: "LO", Value: []byte("Meaning")})

	item0 := dset.NewDataset()
	item0.Put(&dset.Element{Tag: dtag.New(0x0008, 0x0100), VR: "SH", Value: []byte("CODE")})
	item0.Put(&dset.Element{Tag: dtag.New(0x0040, 0xA730), VR: "SQ", Items: []*dset.Dataset{grandchild}})

	item1 := dset.NewDataset()
	item1.Put(&dset.Element{Tag: dtag.New(0x0008, 0x0100), VR: "SH", Value: []byte("OTHER")})

	ds := dset.NewDataset()
	ds.Put(&dset.Element{Tag: dtag.PatientName, VR: "PN", Value: []byte("DOE^JOHN")})
	ds.Put(&dset.Element{Tag: dtag.StudyDate, VR: "DA", Value: []byte("20200101")})
	ds.Put(&dset.Element{Tag: dtag.New(0x0008, 0x1110), VR: "SQ", Items: []*dset.Dataset{item0, item1}})
	ds.Put(&dset.Element{Tag: dtag.PixelData, VR: "OW", Value: []byte{1, 2, 3, 4}})
	return ds
}

func TestFlattenOrderAndKinds(t *testing.T) {
	rows := Flatten(sampleDataset())

	tags := lo.Map(rows, func(r Row, _ int) string { return r.Tag })
	assert.Equal(t, []string{
		"x00100010",
		"x00080020",
		"x00081110",
		"x00081110_item_0",
		"x00080100",
		"x0040a730",
		"x0040a730_item_0",
		"x00080104",
		"x00081110_item_1",
		"x00080100",
		"x7fe00010",
	}, tags)

	kinds := lo.Map(rows, func(r Row, _ int) RowKind { return r.Kind })
	assert.Equal(t, []RowKind{
		RowNormal,
		RowNormal,
		RowSequenceHeader,
		RowSequenceItemHeader,
		RowSequenceElement,
		RowSequenceHeader,
		RowSequenceItemHeader,
		RowSequenceElement,
		RowSequenceItemHeader,
		RowSequenceElement,
		RowNormal,
	}, kinds)
}

func TestFlattenParentKeys(t *testing.T) {
	rows := Flatten(sampleDataset())
	byIndex := map[int]string{
		4: "x00081110_item_0", // CODE inside item 0
		7: "x0040a730_item_0", // grandchild carries the nested item key
		9: "x00081110_item_1", // OTHER inside item 1
	}
	for index, parent := range byIndex {
		assert.Equal(t, parent, rows[index].Parent, "row %d", index)
	}
	// item headers point at their sequence
	assert.Equal(t, "x00081110", rows[3].Parent)
	assert.Equal(t, "x0040a730", rows[6].Parent)
}

func TestFlattenValues(t *testing.T) {
	rows := Flatten(sampleDataset())
	assert.Equal(t, "DOE^JOHN", rows[0].Value)
	assert.Equal(t, "2020/01/01", rows[1].Value)
	assert.Equal(t, "2 items", rows[2].Value)
	assert.Equal(t, BinaryPlaceholder, rows[10].Value)
	assert.Equal(t, "PatientName", rows[0].Name)
}

func TestFlattenDoesNotMutate(t *testing.T) {
	ds := sampleDataset()
	first := Flatten(ds)
	second := Flatten(ds)
	assert.Equal(t, first, second)
	assert.Equal(t, 4, ds.Len())
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2023/06/15", FormatDate("20230615"))
	assert.Equal(t, "1999", FormatDate("1999"))
	assert.Equal(t, "2023-06-15", FormatDate("2023-06-15"))
	assert.Equal(t, "", FormatDate(""))
}

func TestFormatValuePlaceholders(t *testing.T) {
	empty := &dset.Element{Tag: dtag.PatientName, VR: "PN", Value: []byte("")}
	assert.Equal(t, EmptyPlaceholder, FormatValue(empty))

	binary := &dset.Element{Tag: dtag.New(0x0009, 0x0001), VR: "OB", Value: []byte{0, 1}}
	assert.Equal(t, BinaryPlaceholder, FormatValue(binary))

	undecodable := &dset.Element{Tag: dtag.New(0x0009, 0x0002), VR: "LO", Value: []byte{0xFF, 0x01}}
	assert.Equal(t, CannotDisplayPlaceholder, FormatValue(undecodable))

	sequence := &dset.Element{Tag: dtag.New(0x0008, 0x1110), VR: "SQ"}
	assert.Equal(t, SequencePlaceholder, FormatValue(sequence))
}

func TestItemKeyRoundTrip(t *testing.T) {
	key := ItemKey(dtag.New(0x0040, 0xA730), 3)
	assert.Equal(t, "x0040a730_item_3", key)

	sequence, index, ok := ParseItemKey(key)
	require.True(t, ok)
	assert.Equal(t, dtag.New(0x0040, 0xA730), sequence)
	assert.Equal(t, 3, index)

	_, _, ok = ParseItemKey("x00100010")
	assert.False(t, ok)
	_, _, ok = ParseItemKey("")
	assert.False(t, ok)
	_, _, ok = ParseItemKey("bogus_item_x")
	assert.False(t, ok)
}
