package dcm

import (
	"dcmedit/dcm/dset"
	"dcmedit/dcm/dtag"
	"dcmedit/dcm/dvr"
	"dcmedit/dcm/lbytes"
)

// Encode serializes a File back into DICOM bytes. The meta group is written
// explicit VR little endian with a recalculated group length; the data set is
// written in the file's transfer syntax in stored element order. Sequences
// are written with undefined lengths and delimitation items, so the output is
// not byte-identical to the input, but decodes to an equal data set.
func Encode(file *File) []byte {
	bs := make([]byte, 0, 1024)
	bs = append(bs, lbytes.CreateZeroBytes(preambleSize)...)
	bs = append(bs, []byte(magicWord)...)
	bs = append(bs, encodeMetaGroup(file.Meta)...)
	bs = append(bs, encodeDataset(file.Data, file.Syntax)...)
	return bs
}

// encodeMetaGroup writes the group-0002 elements, regenerating the
// FileMetaInformationGroupLength element so it reflects the bytes actually
// written after it.
func encodeMetaGroup(meta *dset.Dataset) []byte {
	body := make([]byte, 0)
	for _, tag := range meta.Tags() {
		if tag == dtag.FileMetaInformationGroupLength {
			continue
		}
		element, _ := meta.Get(tag)
		body = append(body, encodeElement(element, ExplicitVRLittleEndian)...)
	}

	groupLength := &dset.Element{
		Tag:   dtag.FileMetaInformationGroupLength,
		VR:    dvr.UL,
		Value: lbytes.EncodeUInt32(ExplicitVRLittleEndian.ByteOrder, uint32(len(body))),
	}
	bs := encodeElement(groupLength, ExplicitVRLittleEndian)
	return append(bs, body...)
}

func encodeDataset(ds *dset.Dataset, syntax Syntax) []byte {
	bs := make([]byte, 0)
	for _, tag := range ds.Tags() {
		element, _ := ds.Get(tag)
		bs = append(bs, encodeElement(element, syntax)...)
	}
	return bs
}

func encodeElement(element *dset.Element, syntax Syntax) []byte {
	bs := encodeTag(element.Tag, syntax)
	vr := dvr.Normalize(element.VR)

	if element.IsSequence() {
		bs = append(bs, encodeVRAndLength(dvr.SQ, UndefinedLength, syntax)...)
		for _, item := range element.Items {
			bs = append(bs, encodeTag(dtag.Item, syntax)...)
			bs = append(bs, lbytes.EncodeUInt32(syntax.ByteOrder, UndefinedLength)...)
			bs = append(bs, encodeDataset(item, syntax)...)
			bs = append(bs, encodeTag(dtag.ItemDelimitationItem, syntax)...)
			bs = append(bs, lbytes.EncodeUInt32(syntax.ByteOrder, 0)...)
		}
		bs = append(bs, encodeTag(dtag.SequenceDelimitationItem, syntax)...)
		bs = append(bs, lbytes.EncodeUInt32(syntax.ByteOrder, 0)...)
		return bs
	}

	value := padValue(element.Value, vr)
	bs = append(bs, encodeVRAndLength(vr, uint32(len(value)), syntax)...)
	return append(bs, value...)
}

func encodeTag(tag dtag.Tag, syntax Syntax) []byte {
	bs := lbytes.EncodeUInt16(syntax.ByteOrder, tag.Group())
	return append(bs, lbytes.EncodeUInt16(syntax.ByteOrder, tag.Element())...)
}

func encodeVRAndLength(vr string, length uint32, syntax Syntax) []byte {
	if syntax.Implicit {
		return lbytes.EncodeUInt32(syntax.ByteOrder, length)
	}
	bs := []byte(vr)
	if dvr.HasLongLength(vr) {
		bs = append(bs, lbytes.EncodeUInt16(syntax.ByteOrder, 0)...)
		return append(bs, lbytes.EncodeUInt32(syntax.ByteOrder, length)...)
	}
	return append(bs, lbytes.EncodeUInt16(syntax.ByteOrder, uint16(length))...)
}

// padValue pads odd-length values to even length, with a space for text VRs
// and a NUL byte for UI and the binary VRs.
func padValue(value []byte, vr string) []byte {
	if len(value)%2 == 0 {
		return value
	}
	padding := byte(0x00)
	if dvr.UsesSpacePadding(vr) {
		padding = ' '
	}
	return append(append([]byte{}, value...), padding)
}
