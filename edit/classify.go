// Package edit holds the mutable side of the tool: tag classification, the
// pending change set, the mutation engine, and the commit session that ties
// them to a file on disk.
package edit

import (
	"dcmedit/dcm/dtag"
	"dcmedit/dcm/dvr"
)

type (
	// Class ranks how risky touching an element is. The core never refuses a
	// change based on it; hosts use it to warn before staging.
	Class int
)

const (
	ClassOK Class = iota
	ClassBinary
	ClassStandardRequired
	ClassImageCritical
)

// imageCriticalTags are the tags a viewer needs to interpret the raster at
// all. Editing or removing one usually leaves the file undisplayable.
var imageCriticalTags = map[dtag.Tag]struct{}{
	dtag.Rows:                      {},
	dtag.Columns:                   {},
	dtag.BitsAllocated:             {},
	dtag.BitsStored:                {},
	dtag.PixelRepresentation:       {},
	dtag.SamplesPerPixel:           {},
	dtag.PhotometricInterpretation: {},
	dtag.PixelData:                 {},
}

// standardRequiredTags are type-1/type-2 tags of the common storage classes.
// Removing one produces a file other tools may reject.
var standardRequiredTags = map[dtag.Tag]struct{}{
	dtag.SOPClassUID:       {},
	dtag.SOPInstanceUID:    {},
	dtag.PatientName:       {},
	dtag.PatientID:         {},
	dtag.PatientBirthDate:  {},
	dtag.PatientSex:        {},
	dtag.StudyID:           {},
	dtag.StudyInstanceUID:  {},
	dtag.SeriesInstanceUID: {},
	dtag.SeriesNumber:      {},
	dtag.InstanceNumber:    {},
	dtag.StudyDate:         {},
	dtag.StudyTime:         {},
	dtag.Modality:          {},
	dtag.HighBit:           {},
}

// Classify ranks a (tag, vr) pair. Image-critical beats standard-required
// beats binary; everything else is ok.
func Classify(tag dtag.Tag, vr string) Class {
	if _, ok := imageCriticalTags[tag]; ok {
		return ClassImageCritical
	}
	if _, ok := standardRequiredTags[tag]; ok {
		return ClassStandardRequired
	}
	if dvr.IsBinary(dvr.Normalize(vr)) {
		return ClassBinary
	}
	return ClassOK
}

func (c Class) String() string {
	switch c {
	case ClassImageCritical:
		return "image-critical"
	case ClassStandardRequired:
		return "required"
	case ClassBinary:
		return "binary"
	default:
		return "ok"
	}
}
