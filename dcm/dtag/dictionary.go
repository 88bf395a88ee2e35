package dtag

type (
	// Entry is a tag dictionary entry: the human-readable keyword and the
	// canonical VR for the tag.
	Entry struct {
		Name string
		VR   string
	}
)

// dictionary covers the tags this tool names in its UI and the ones the codec
// needs for implicit-VR decoding. It is a conservative subset of the standard
// data dictionary, not a conformance reference.
var dictionary = map[Tag]Entry{
	FileMetaInformationGroupLength: {"FileMetaInformationGroupLength", "UL"},
	New(0x0002, 0x0001):            {"FileMetaInformationVersion", "OB"},
	MediaStorageSOPClassUID:        {"MediaStorageSOPClassUID", "UI"},
	MediaStorageSOPInstanceUID:     {"MediaStorageSOPInstanceUID", "UI"},
	TransferSyntaxUID:              {"TransferSyntaxUID", "UI"},
	New(0x0002, 0x0012):            {"ImplementationClassUID", "UI"},
	New(0x0002, 0x0013):            {"ImplementationVersionName", "SH"},

	New(0x0008, 0x0005): {"SpecificCharacterSet", "CS"},
	New(0x0008, 0x0008): {"ImageType", "CS"},
	SOPClassUID:         {"SOPClassUID", "UI"},
	SOPInstanceUID:      {"SOPInstanceUID", "UI"},
	StudyDate:           {"StudyDate", "DA"},
	New(0x0008, 0x0021): {"SeriesDate", "DA"},
	New(0x0008, 0x0022): {"AcquisitionDate", "DA"},
	StudyTime:           {"StudyTime", "TM"},
	New(0x0008, 0x0031): {"SeriesTime", "TM"},
	New(0x0008, 0x0050): {"AccessionNumber", "SH"},
	Modality:            {"Modality", "CS"},
	New(0x0008, 0x0070): {"Manufacturer", "LO"},
	New(0x0008, 0x0080): {"InstitutionName", "LO"},
	New(0x0008, 0x0090): {"ReferringPhysicianName", "PN"},
	New(0x0008, 0x0100): {"CodeValue", "SH"},
	New(0x0008, 0x0102): {"CodingSchemeDesignator", "SH"},
	New(0x0008, 0x0104): {"CodeMeaning", "LO"},
	New(0x0008, 0x1030): {"StudyDescription", "LO"},
	New(0x0008, 0x103E): {"SeriesDescription", "LO"},
	New(0x0008, 0x1110): {"ReferencedStudySequence", "SQ"},
	New(0x0008, 0x1115): {"ReferencedSeriesSequence", "SQ"},
	New(0x0008, 0x1140): {"ReferencedImageSequence", "SQ"},

	PatientName:         {"PatientName", "PN"},
	PatientID:           {"PatientID", "LO"},
	PatientBirthDate:    {"PatientBirthDate", "DA"},
	PatientSex:          {"PatientSex", "CS"},
	New(0x0010, 0x1010): {"PatientAge", "AS"},
	New(0x0010, 0x1030): {"PatientWeight", "DS"},

	New(0x0018, 0x0050): {"SliceThickness", "DS"},
	New(0x0018, 0x0060): {"KVP", "DS"},
	New(0x0018, 0x1030): {"ProtocolName", "LO"},

	StudyInstanceUID:    {"StudyInstanceUID", "UI"},
	SeriesInstanceUID:   {"SeriesInstanceUID", "UI"},
	StudyID:             {"StudyID", "SH"},
	SeriesNumber:        {"SeriesNumber", "IS"},
	InstanceNumber:      {"InstanceNumber", "IS"},
	New(0x0020, 0x0032): {"ImagePositionPatient", "DS"},
	New(0x0020, 0x0037): {"ImageOrientationPatient", "DS"},

	SamplesPerPixel:           {"SamplesPerPixel", "US"},
	PhotometricInterpretation: {"PhotometricInterpretation", "CS"},
	Rows:                      {"Rows", "US"},
	Columns:                   {"Columns", "US"},
	New(0x0028, 0x0030):       {"PixelSpacing", "DS"},
	BitsAllocated:             {"BitsAllocated", "US"},
	BitsStored:                {"BitsStored", "US"},
	HighBit:                   {"HighBit", "US"},
	PixelRepresentation:       {"PixelRepresentation", "US"},
	New(0x0028, 0x1050):       {"WindowCenter", "DS"},
	New(0x0028, 0x1051):       {"WindowWidth", "DS"},
	New(0x0028, 0x1052):       {"RescaleIntercept", "DS"},
	New(0x0028, 0x1053):       {"RescaleSlope", "DS"},

	New(0x0040, 0xA730): {"ContentSequence", "SQ"},

	PixelData: {"PixelData", "OW"},
}

// Lookup returns the dictionary entry for a tag. ok is false for tags outside
// the built-in dictionary.
func Lookup(t Tag) (Entry, bool) {
	entry, ok := dictionary[t]
	return entry, ok
}

// Name returns the dictionary keyword for a tag, or "unknown" when the tag is
// not in the dictionary.
func Name(t Tag) string {
	if entry, ok := dictionary[t]; ok {
		return entry.Name
	}
	return "unknown"
}

// DictionaryVR returns the canonical VR for a tag, falling back to UN for
// tags outside the dictionary. Implicit-VR decoding relies on this.
func DictionaryVR(t Tag) string {
	if entry, ok := dictionary[t]; ok {
		return entry.VR
	}
	return "UN"
}
