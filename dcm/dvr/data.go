// Package dvr models DICOM value representations (VR): the fixed set of valid
// two-letter codes, normalization of the malformed codes that show up in real
// files, and the per-VR properties the codec and renderer depend on.
package dvr

const (
	AE = "AE"
	AS = "AS"
	AT = "AT"
	CS = "CS"
	DA = "DA"
	DS = "DS"
	DT = "DT"
	FL = "FL"
	FD = "FD"
	IS = "IS"
	LO = "LO"
	LT = "LT"
	OB = "OB"
	OD = "OD"
	OF = "OF"
	OW = "OW"
	PN = "PN"
	SH = "SH"
	SL = "SL"
	SQ = "SQ"
	SS = "SS"
	ST = "ST"
	TM = "TM"
	UI = "UI"
	UL = "UL"
	UN = "UN"
	US = "US"
	UT = "UT"
)

var validSet = map[string]struct{}{
	AE: {}, AS: {}, AT: {}, CS: {}, DA: {}, DS: {}, DT: {},
	FL: {}, FD: {}, IS: {}, LO: {}, LT: {}, OB: {}, OD: {},
	OF: {}, OW: {}, PN: {}, SH: {}, SL: {}, SQ: {}, SS: {},
	ST: {}, TM: {}, UI: {}, UL: {}, UN: {}, US: {}, UT: {},
}

// remapTable maps the non-standard VR codes seen in the wild to a usable
// standard code. "OX" stands for an unresolved OB-or-OW and "XS" for an
// unresolved US-or-SS in some dictionaries and broken writers.
var remapTable = map[string]string{
	"OX": OW,
	"XS": US,
}
