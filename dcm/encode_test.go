package dcm

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dcmedit/dcm/dset"
	"dcmedit/dcm/dtag"
	"dcmedit/dcm/lbytes"
)

func requireDatasetEqual(t *testing.T, expected, actual *dset.Dataset) {
	t.Helper()
	require.Equal(t, expected.Tags(), actual.Tags())
	for _, tag := range expected.Tags() {
		expectedElement, _ := expected.Get(tag)
		actualElement, ok := actual.Get(tag)
		require.True(t, ok, "tag %s missing", tag)
		assert.Equalf(t, expectedElement.VR, actualElement.VR, "VR of %s", tag)
		assert.Equalf(t, expectedElement.Value, actualElement.Value, "value of %s", tag)
		require.Equalf(t, len(expectedElement.Items), len(actualElement.Items), "item count of %s", tag)
		for i := range expectedElement.Items {
			requireDatasetEqual(t, expectedElement.Items[i], actualElement.Items[i])
		}
	}
}

func sampleFile(syntax Syntax, uid string) *File {
	meta := dset.NewDataset()
	meta.Put(&dset.Element{Tag: dtag.MediaStorageSOPClassUID, VR: "UI", Value: []byte("1.2.840.10008.5.1.4.1.1.2\x00")})
	meta.Put(&dset.Element{Tag: dtag.TransferSyntaxUID, VR: "UI", Value: []byte(uid)})

	item0 := dset.NewDataset()
	item0.Put(&dset.Element{Tag: dtag.New(0x0008, 0x0100), VR: "SH", Value: []byte("AB")})
	item1 := dset.NewDataset()
	item1.Put(&dset.Element{Tag: dtag.New(0x0008, 0x0100), VR: "SH", Value: []byte("CD")})

	data := dset.NewDataset()
	data.Put(&dset.Element{Tag: dtag.PatientName, VR: "PN", Value: []byte("DOE^JOHN")})
	data.Put(&dset.Element{Tag: dtag.StudyDate, VR: "DA", Value: []byte("20200101")})
	data.Put(&dset.Element{Tag: dtag.New(0x0040, 0xA730), VR: "SQ", Items: []*dset.Dataset{item0, item1}})
	data.Put(&dset.Element{Tag: dtag.Rows, VR: "US", Value: lbytes.EncodeUInt16(syntax.ByteOrder, 2)})
	data.Put(&dset.Element{Tag: dtag.PixelData, VR: "OW", Value: []byte{0x01, 0x02, 0x03, 0x04}})

	return &File{Meta: meta, Data: data, Syntax: syntax}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := map[string]struct {
		syntax Syntax
		uid    string
	}{
		"explicit little endian": {ExplicitVRLittleEndian, ExplicitVRLittleEndianUID},
		"implicit little endian": {ImplicitVRLittleEndian, ImplicitVRLittleEndianUID},
		"explicit big endian":    {ExplicitVRBigEndian, ExplicitVRBigEndianUID},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			file := sampleFile(c.syntax, c.uid)
			decoded, err := Decode(Encode(file))
			require.NoError(t, err)

			assert.Equal(t, c.syntax, decoded.Syntax)
			requireDatasetEqual(t, file.Data, decoded.Data)

			// decode(encode(decode(bs))) must equal decode(bs)
			again, err := Decode(Encode(decoded))
			require.NoError(t, err)
			requireDatasetEqual(t, decoded.Data, again.Data)
			requireDatasetEqual(t, decoded.Meta, again.Meta)
		})
	}
}

func TestEncodeRegeneratesMetaGroupLength(t *testing.T) {
	file := sampleFile(ExplicitVRLittleEndian, ExplicitVRLittleEndianUID)
	decoded, err := Decode(Encode(file))
	require.NoError(t, err)

	groupLength, ok := decoded.Meta.Get(dtag.FileMetaInformationGroupLength)
	require.True(t, ok)
	require.Len(t, groupLength.Value, 4)
	declared := binary.LittleEndian.Uint32(groupLength.Value)

	// sum of the encoded sizes of the remaining meta elements
	size := uint32(0)
	for _, tag := range decoded.Meta.Tags() {
		if tag == dtag.FileMetaInformationGroupLength {
			continue
		}
		element, _ := decoded.Meta.Get(tag)
		size += uint32(8 + len(element.Value) + len(element.Value)%2)
	}
	assert.Equal(t, size, declared)
}

func TestEncodePadsOddValues(t *testing.T) {
	data := dset.NewDataset()
	data.Put(&dset.Element{Tag: dtag.Modality, VR: "CS", Value: []byte("X")})
	data.Put(&dset.Element{Tag: dtag.SOPInstanceUID, VR: "UI", Value: []byte("1.2.3")})
	meta := dset.NewDataset()
	meta.Put(&dset.Element{Tag: dtag.TransferSyntaxUID, VR: "UI", Value: []byte(ExplicitVRLittleEndianUID)})
	file := &File{Meta: meta, Data: data, Syntax: ExplicitVRLittleEndian}

	decoded, err := Decode(Encode(file))
	require.NoError(t, err)

	modality, _ := decoded.Data.Get(dtag.Modality)
	assert.Equal(t, []byte("X "), modality.Value)
	uid, _ := decoded.Data.Get(dtag.SOPInstanceUID)
	assert.Equal(t, []byte("1.2.3\x00"), uid.Value)
}
