package dcm

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"dcmedit/dcm/dset"
	"dcmedit/dcm/dtag"
	"dcmedit/dcm/dvr"
	"dcmedit/dcm/lbytes"
)

// Decode parses raw bytes into a File. It fails with ErrMalformedStream when
// the bytes cannot be parsed as DICOM at all; no partial data set is returned.
func Decode(bs []byte) (*File, error) {
	if !IsDICOMFile(bs) {
		return nil, ErrMalformedStream{Reason: "missing DICM signature"}
	}
	reader := lbytes.NewBytesReader(bs[preambleSize+len(magicWord):])

	meta, err := decodeMetaGroup(reader)
	if err != nil {
		return nil, ErrMalformedStream{Reason: errors.Wrap(err, "meta group").Error()}
	}

	syntax := ExplicitVRLittleEndian
	if e, ok := meta.Get(dtag.TransferSyntaxUID); ok {
		if uid, ok := e.Text(); ok {
			syntax = LookupSyntax(uid)
		}
	}

	data, err := decodeDataset(reader, syntax, false)
	if err != nil {
		return nil, ErrMalformedStream{Reason: errors.Wrap(err, "data set").Error()}
	}

	return &File{Meta: meta, Data: data, Syntax: syntax}, nil
}

// decodeMetaGroup reads the group-0002 elements, which are always encoded as
// explicit VR little endian regardless of the data set syntax.
func decodeMetaGroup(reader *lbytes.Reader) (*dset.Dataset, error) {
	meta := dset.NewDataset()
	for reader.Len() > 0 {
		group, err := reader.ReadUInt16(binary.LittleEndian)
		if err != nil {
			return nil, errors.Wrap(err, "decodeMetaGroup error: read group")
		}
		if err := reader.Rewind(2); err != nil {
			return nil, errors.Wrap(err, "decodeMetaGroup error: rewind")
		}
		if group != 0x0002 {
			break
		}
		element, err := decodeElement(reader, ExplicitVRLittleEndian)
		if err != nil {
			return nil, errors.Wrap(err, "decodeMetaGroup error")
		}
		meta.Put(element)
	}
	return meta, nil
}

// decodeDataset reads elements until the reader is exhausted, or until an
// item delimitation item when delimited is true (the undefined-length item
// case).
func decodeDataset(reader *lbytes.Reader, syntax Syntax, delimited bool) (*dset.Dataset, error) {
	ds := dset.NewDataset()
	for reader.Len() > 0 {
		if delimited {
			stop, err := consumeDelimiter(reader, syntax, dtag.ItemDelimitationItem)
			if err != nil {
				return nil, err
			}
			if stop {
				return ds, nil
			}
		}
		element, err := decodeElement(reader, syntax)
		if err != nil {
			return nil, errors.Wrap(err, "decodeDataset error")
		}
		ds.Put(element)
	}
	if delimited {
		return nil, errors.New("decodeDataset error: missing item delimitation item")
	}
	return ds, nil
}

// consumeDelimiter peeks the next tag and, when it matches the wanted
// delimiter, consumes the tag and its zero length.
func consumeDelimiter(reader *lbytes.Reader, syntax Syntax, want dtag.Tag) (bool, error) {
	tag, err := readTag(reader, syntax.ByteOrder)
	if err != nil {
		return false, errors.Wrap(err, "consumeDelimiter error: read tag")
	}
	if tag != want {
		if err := reader.Rewind(4); err != nil {
			return false, errors.Wrap(err, "consumeDelimiter error: rewind")
		}
		return false, nil
	}
	if _, err := reader.ReadUInt32(syntax.ByteOrder); err != nil {
		return false, errors.Wrap(err, "consumeDelimiter error: read length")
	}
	return true, nil
}

func readTag(reader *lbytes.Reader, order binary.ByteOrder) (dtag.Tag, error) {
	group, err := reader.ReadUInt16(order)
	if err != nil {
		return 0, err
	}
	element, err := reader.ReadUInt16(order)
	if err != nil {
		return 0, err
	}
	return dtag.New(group, element), nil
}

func decodeElement(reader *lbytes.Reader, syntax Syntax) (*dset.Element, error) {
	tag, err := readTag(reader, syntax.ByteOrder)
	if err != nil {
		return nil, errors.Wrap(err, "decodeElement error: read tag")
	}

	vr, length, err := readVRAndLength(reader, syntax, tag)
	if err != nil {
		return nil, errors.Wrapf(err, "decodeElement error: tag %s", tag)
	}

	if vr == dvr.SQ {
		items, err := decodeItems(reader, syntax, length)
		if err != nil {
			return nil, errors.Wrapf(err, "decodeElement error: sequence %s", tag)
		}
		return &dset.Element{Tag: tag, VR: vr, Items: items}, nil
	}

	if length == UndefinedLength {
		// undefined length outside SQ is the encapsulated pixel data layout:
		// a fragment list delimited like a sequence
		value, err := decodeFragments(reader, syntax)
		if err != nil {
			return nil, errors.Wrapf(err, "decodeElement error: fragments of %s", tag)
		}
		return &dset.Element{Tag: tag, VR: vr, Value: value}, nil
	}

	value, err := reader.ReadBytes(int(length))
	if err != nil {
		return nil, errors.Wrapf(err, "decodeElement error: value of %s (%d bytes)", tag, length)
	}
	return &dset.Element{Tag: tag, VR: vr, Value: value}, nil
}

func readVRAndLength(reader *lbytes.Reader, syntax Syntax, tag dtag.Tag) (string, uint32, error) {
	if syntax.Implicit {
		length, err := reader.ReadUInt32(syntax.ByteOrder)
		if err != nil {
			return "", 0, errors.Wrap(err, "read implicit length")
		}
		vr := dtag.DictionaryVR(tag)
		if length == UndefinedLength && vr != dvr.SQ && tag != dtag.PixelData {
			// an undefined length on an unknown implicit tag can only be a
			// sequence
			vr = dvr.SQ
		}
		return vr, length, nil
	}

	raw, err := reader.ReadString(2)
	if err != nil {
		return "", 0, errors.Wrap(err, "read VR")
	}
	vr := dvr.Normalize(raw)
	if dvr.HasLongLength(vr) {
		if _, err := reader.ReadUInt16(syntax.ByteOrder); err != nil {
			return "", 0, errors.Wrap(err, "read reserved bytes")
		}
		length, err := reader.ReadUInt32(syntax.ByteOrder)
		if err != nil {
			return "", 0, errors.Wrap(err, "read 32-bit length")
		}
		return vr, length, nil
	}
	length, err := reader.ReadUInt16(syntax.ByteOrder)
	if err != nil {
		return "", 0, errors.Wrap(err, "read 16-bit length")
	}
	return vr, uint32(length), nil
}

// decodeItems reads the items of a sequence. A defined length bounds the item
// stream by byte count; an undefined length runs until the sequence
// delimitation item.
func decodeItems(reader *lbytes.Reader, syntax Syntax, length uint32) ([]*dset.Dataset, error) {
	itemReader := reader
	if length != UndefinedLength {
		bs, err := reader.ReadBytes(int(length))
		if err != nil {
			return nil, errors.Wrap(err, "decodeItems error: read sequence bytes")
		}
		itemReader = lbytes.NewBytesReader(bs)
	}

	items := make([]*dset.Dataset, 0)
	for itemReader.Len() > 0 {
		if length == UndefinedLength {
			stop, err := consumeDelimiter(itemReader, syntax, dtag.SequenceDelimitationItem)
			if err != nil {
				return nil, err
			}
			if stop {
				return items, nil
			}
		}
		item, err := decodeItem(itemReader, syntax)
		if err != nil {
			return nil, errors.Wrapf(err, "decodeItems error: item %d", len(items))
		}
		items = append(items, item)
	}
	if length == UndefinedLength {
		return nil, errors.New("decodeItems error: missing sequence delimitation item")
	}
	return items, nil
}

func decodeItem(reader *lbytes.Reader, syntax Syntax) (*dset.Dataset, error) {
	tag, err := readTag(reader, syntax.ByteOrder)
	if err != nil {
		return nil, errors.Wrap(err, "decodeItem error: read item tag")
	}
	if tag != dtag.Item {
		return nil, errors.Errorf("decodeItem error: expected item tag, got %s", tag)
	}
	length, err := reader.ReadUInt32(syntax.ByteOrder)
	if err != nil {
		return nil, errors.Wrap(err, "decodeItem error: read item length")
	}

	if length == UndefinedLength {
		return decodeDataset(reader, syntax, true)
	}

	bs, err := reader.ReadBytes(int(length))
	if err != nil {
		return nil, errors.Wrap(err, "decodeItem error: read item bytes")
	}
	return decodeDataset(lbytes.NewBytesReader(bs), syntax, false)
}

// decodeFragments concatenates the fragment items of an encapsulated value.
// The fragment boundaries are not preserved; the renderer reports such pixel
// data as unsupported for display.
func decodeFragments(reader *lbytes.Reader, syntax Syntax) ([]byte, error) {
	value := make([]byte, 0)
	for {
		tag, err := readTag(reader, syntax.ByteOrder)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errors.New("decodeFragments error: missing sequence delimitation item")
		}
		if err != nil {
			return nil, errors.Wrap(err, "decodeFragments error: read tag")
		}
		length, err := reader.ReadUInt32(syntax.ByteOrder)
		if err != nil {
			return nil, errors.Wrap(err, "decodeFragments error: read length")
		}
		if tag == dtag.SequenceDelimitationItem {
			return value, nil
		}
		if tag != dtag.Item {
			return nil, errors.Errorf("decodeFragments error: expected fragment item, got %s", tag)
		}
		fragment, err := reader.ReadBytes(int(length))
		if err != nil {
			return nil, errors.Wrap(err, "decodeFragments error: read fragment")
		}
		value = append(value, fragment...)
	}
}
