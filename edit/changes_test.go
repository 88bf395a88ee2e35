package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dcmedit/dcm/dtag"
)

func TestAddressKeys(t *testing.T) {
	assert.Equal(t, "x00100010", TopLevel(dtag.PatientName).Key())
	assert.Equal(t, "x0040a730:1:x00080100",
		InItem(dtag.New(0x0040, 0xA730), 1, dtag.New(0x0008, 0x0100)).Key())

	// same slot, same key
	a := InItem(dtag.New(0x0040, 0xA730), 0, dtag.New(0x0008, 0x0100))
	b := InItem(dtag.New(0x0040, 0xA730), 0, dtag.New(0x0008, 0x0100))
	assert.Equal(t, a.Key(), b.Key())
}

func TestStageEditLastWriteWins(t *testing.T) {
	changes := NewChangeSet()
	address := TopLevel(dtag.PatientName)
	changes.StageEdit(address, "PN", "FIRST")
	changes.StageEdit(address, "PN", "SECOND")

	edits := changes.Edits()
	require.Len(t, edits, 1)
	assert.Equal(t, "SECOND", edits[0].Value)
	assert.Equal(t, 1, changes.Len())
}

func TestStageEditStripsDateSeparators(t *testing.T) {
	changes := NewChangeSet()
	changes.StageEdit(TopLevel(dtag.StudyDate), "DA", "2023/06/15")
	changes.StageEdit(TopLevel(dtag.PatientBirthDate), "da", "19800101")

	edits := changes.Edits()
	require.Len(t, edits, 2)
	assert.Equal(t, "20230615", edits[0].Value)
	assert.Equal(t, "19800101", edits[1].Value)
	assert.Equal(t, "DA", edits[0].VR)
}

func TestStageEditDoesNotStripOtherVRs(t *testing.T) {
	changes := NewChangeSet()
	changes.StageEdit(TopLevel(dtag.New(0x0008, 0x1030)), "LO", "a/b/c")

	edits := changes.Edits()
	require.Len(t, edits, 1)
	assert.Equal(t, "a/b/c", edits[0].Value)
}

func TestDiscardIsIdempotent(t *testing.T) {
	changes := NewChangeSet()
	changes.StageEdit(TopLevel(dtag.PatientName), "PN", "X")
	changes.StageRemoval(TopLevel(dtag.StudyDate))
	require.Equal(t, 2, changes.Len())

	changes.Discard()
	assert.True(t, changes.Empty())
	changes.Discard()
	assert.True(t, changes.Empty())

	// the set stays usable after a discard
	changes.StageEdit(TopLevel(dtag.PatientName), "PN", "Y")
	assert.Equal(t, 1, changes.Len())
}

func TestChangeOrderIsDeterministic(t *testing.T) {
	changes := NewChangeSet()
	changes.StageEdit(TopLevel(dtag.PatientID), "LO", "1")
	changes.StageEdit(TopLevel(dtag.StudyDate), "DA", "20200101")
	changes.StageEdit(InItem(dtag.New(0x0040, 0xA730), 0, dtag.New(0x0008, 0x0100)), "SH", "C")

	keys := []string{}
	for _, edit := range changes.Edits() {
		keys = append(keys, edit.Address.Key())
	}
	assert.Equal(t, []string{"x0040a730:0:x00080100", "x00080020", "x00100020"}, keys)
}
