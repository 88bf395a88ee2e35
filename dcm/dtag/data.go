// Package dtag models DICOM data element tags and the built-in tag dictionary.
package dtag

// Tag identifies a data element. The most significant 16 bits hold the group
// number and the least significant 16 bits the element number.
type Tag uint32

func New(group, element uint16) Tag {
	return Tag(uint32(group)<<16 | uint32(element))
}

func (t Tag) Group() uint16 {
	return uint16(t >> 16)
}

func (t Tag) Element() uint16 {
	return uint16(t & 0xFFFF)
}

// IsMeta reports whether the tag belongs to the file meta information group.
func (t Tag) IsMeta() bool {
	return t.Group() == 0x0002
}

// Tags the codec and the editing policy refer to by name.
var (
	FileMetaInformationGroupLength = New(0x0002, 0x0000)
	MediaStorageSOPClassUID        = New(0x0002, 0x0002)
	MediaStorageSOPInstanceUID     = New(0x0002, 0x0003)
	TransferSyntaxUID              = New(0x0002, 0x0010)

	SOPClassUID               = New(0x0008, 0x0016)
	SOPInstanceUID            = New(0x0008, 0x0018)
	StudyDate                 = New(0x0008, 0x0020)
	StudyTime                 = New(0x0008, 0x0030)
	Modality                  = New(0x0008, 0x0060)
	PatientName               = New(0x0010, 0x0010)
	PatientID                 = New(0x0010, 0x0020)
	PatientBirthDate          = New(0x0010, 0x0030)
	PatientSex                = New(0x0010, 0x0040)
	StudyInstanceUID          = New(0x0020, 0x000D)
	SeriesInstanceUID         = New(0x0020, 0x000E)
	StudyID                   = New(0x0020, 0x0010)
	SeriesNumber              = New(0x0020, 0x0011)
	InstanceNumber            = New(0x0020, 0x0013)
	SamplesPerPixel           = New(0x0028, 0x0002)
	PhotometricInterpretation = New(0x0028, 0x0004)
	Rows                      = New(0x0028, 0x0010)
	Columns                   = New(0x0028, 0x0011)
	BitsAllocated             = New(0x0028, 0x0100)
	BitsStored                = New(0x0028, 0x0101)
	HighBit                   = New(0x0028, 0x0102)
	PixelRepresentation       = New(0x0028, 0x0103)
	PixelData                 = New(0x7FE0, 0x0010)

	Item                     = New(0xFFFE, 0xE000)
	ItemDelimitationItem     = New(0xFFFE, 0xE00D)
	SequenceDelimitationItem = New(0xFFFE, 0xE0DD)
)
