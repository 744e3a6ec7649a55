// Copyright 2024 The go-dicom-values Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dicom

// converterKind selects the decoding strategy applied to a value field
type converterKind int

const (
	// numberConverter is the generic fixed-width numeric unpacker. It is the
	// only kind that carries a numericFormat.
	numberConverter converterKind = iota

	// stringConverter decodes text and splits it on the multi-value delimiter
	stringConverter

	// singleStringConverter decodes text in which the delimiter is data, not a
	// separator. At most one trailing space is removed.
	singleStringConverter

	// trimmedStringConverter strips leading and trailing whitespace (VR: AE)
	trimmedStringConverter

	// rightTrimmedStringConverter strips trailing whitespace only (VR: UR)
	rightTrimmedStringConverter

	// uniqueIdentifierConverter is for VR: UI. It has null padding.
	uniqueIdentifierConverter

	// integerStringConverter and decimalStringConverter are for the
	// numbers-as-text VRs IS and DS
	integerStringConverter
	decimalStringConverter

	// dateConverter, timeConverter and dateTimeConverter are for DA, TM, DT
	dateConverter
	timeConverter
	dateTimeConverter

	// personNameConverter is for VR: PN. It receives the full coding system.
	personNameConverter

	// tagConverter is for VR: AT. Distinct from numberConverter because a tag
	// is a pair of 16-bit fields read as one logical value.
	tagConverter

	// bytesConverter returns the value field unchanged with no interpretation
	bytesConverter

	// sequenceConverter delegates to the nested data set parser (VR: SQ)
	sequenceConverter
)

// numericFormat identifies the element type unpacked by numberConverter
type numericFormat int

const (
	noFormat numericFormat = iota
	formatUInt16
	formatInt16
	formatUInt32
	formatInt32
	formatFloat32
	formatFloat64
)

// size returns the width in bytes of a single value of the format
func (f numericFormat) size() int {
	switch f {
	case formatUInt16, formatInt16:
		return 2
	case formatUInt32, formatInt32, formatFloat32:
		return 4
	case formatFloat64:
		return 8
	}
	return 0
}

// VR models the DICOM Value Representations (VR)
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
type VR struct {
	// Name represents the VR code. Usually 2 characters, but the registry also
	// accepts the ambiguous multi-code forms found in the data dictionary
	// (e.g. "OB/OW").
	Name string

	kind   converterKind
	format numericFormat
}

var vrLookupMap = map[string]*VR{}

func newVR(text string, kind converterKind) *VR {
	vr := &VR{Name: text, kind: kind, format: noFormat}
	vrLookupMap[vr.Name] = vr

	return vr
}

func newNumberVR(text string, format numericFormat) *VR {
	vr := &VR{Name: text, kind: numberConverter, format: format}
	vrLookupMap[vr.Name] = vr

	return vr
}

func lookupVRByName(name string) (*VR, error) {
	r, ok := vrLookupMap[name]
	if !ok {
		return nil, &UnsupportedVRError{Name: name}
	}
	return r, nil
}

// VR list obtained from
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
var (
	// binary numbers
	ULVR = newNumberVR("UL", formatUInt32)
	SLVR = newNumberVR("SL", formatInt32)
	USVR = newNumberVR("US", formatUInt16)
	SSVR = newNumberVR("SS", formatInt16)
	FLVR = newNumberVR("FL", formatFloat32)
	FDVR = newNumberVR("FD", formatFloat64)

	// other float is stored like bulk data but unpacks as float32
	OFVR = newNumberVR("OF", formatFloat32)

	// textual VRs
	CSVR = newVR("CS", stringConverter)
	SHVR = newVR("SH", stringConverter)
	LOVR = newVR("LO", stringConverter)
	STVR = newVR("ST", stringConverter)
	ASVR = newVR("AS", stringConverter)
	UCVR = newVR("UC", stringConverter)

	// long text VRs where backslash is data rather than a separator
	LTVR = newVR("LT", singleStringConverter)
	UTVR = newVR("UT", singleStringConverter)

	// application entity
	AEVR = newVR("AE", trimmedStringConverter)

	// URI/URL
	URVR = newVR("UR", rightTrimmedStringConverter)

	// unique identifier
	UIVR = newVR("UI", uniqueIdentifierConverter)

	// textual numbers
	ISVR = newVR("IS", integerStringConverter)
	DSVR = newVR("DS", decimalStringConverter)

	// dates/time VRs
	DAVR = newVR("DA", dateConverter)
	TMVR = newVR("TM", timeConverter)
	DTVR = newVR("DT", dateTimeConverter)

	// person name
	PNVR = newVR("PN", personNameConverter)

	// attribute tag
	ATVR = newVR("AT", tagConverter)

	// large binary sequences and unknown
	OBVR = newVR("OB", bytesConverter)
	ODVR = newVR("OD", bytesConverter)
	OLVR = newVR("OL", bytesConverter)
	OWVR = newVR("OW", bytesConverter)
	UNVR = newVR("UN", bytesConverter)

	// sequence
	SQVR = newVR("SQ", sequenceConverter)
)

// ambiguousVRAliases are the multi-code forms the data dictionary assigns to
// elements whose true VR depends on other elements, which is context we do not
// have at conversion time. All of them resolve to opaque bytes because
// returning the unswapped payload is the only lossless choice.
var ambiguousVRAliases = []string{
	"OW/OB",
	"OB/OW",
	"OW or OB",
	"OB or OW",
	"US or SS",
	"US or OW",
	"US or SS or OW",
	"US\\US or SS\\US",
}

func init() {
	for _, alias := range ambiguousVRAliases {
		newVR(alias, bytesConverter)
	}
}

// convertRetryVROrder is the fixed fallback chain consulted when a value fails
// to decode with its declared VR and strict validation is off. The failing VR
// is always skipped during its own retry pass.
var convertRetryVROrder = []string{
	"SH", "UL", "SL", "US", "SS", "FL", "FD", "OF", "OB", "UI", "DA", "TM",
	"PN", "IS", "DS", "LT", "SQ", "UN", "AT", "OW", "DT", "UT",
}

// textVRNames is the set of VR codes decoded with the extended (second) slot
// of the coding system. Other textual VRs use the default character
// repertoire.
var textVRNames = map[string]bool{
	"SH": true,
	"LO": true,
	"ST": true,
	"LT": true,
	"UC": true,
	"UT": true,
}
