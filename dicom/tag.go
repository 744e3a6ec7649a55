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

import (
	"encoding/binary"
	"fmt"
)

// DataElementTag is a unique identifier for a Data Element composed of an
// ordered pair of numbers called the group number and the element number as
// specified in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10.
//
// The least significant 16 bits is the element number. The most significant
// 16 bits is the group number.
type DataElementTag uint32

// GroupNumber returns the group number component of the DataElementTag
func (t DataElementTag) GroupNumber() uint16 {
	return uint16(t >> 16)
}

// ElementNumber returns the element number component of the DataElementTag
func (t DataElementTag) ElementNumber() uint16 {
	return uint16(t & 0xFFFF)
}

// String returns the tag in the conventional (gggg,eeee) notation
func (t DataElementTag) String() string {
	return fmt.Sprintf("(%04X,%04X)", t.GroupNumber(), t.ElementNumber())
}

// item structure tags as specified in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
const (
	ItemTag                     = DataElementTag(0xFFFEE000)
	ItemDelimitationItemTag     = DataElementTag(0xFFFEE00D)
	SequenceDelimitationItemTag = DataElementTag(0xFFFEE0DD)
)

// UndefinedLength as specified
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.1
const UndefinedLength = 0xFFFFFFFF

const tagWidth = 4 // two 16-bit fields per tag

func byteOrder(isLittleEndian bool) binary.ByteOrder {
	if isLittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// decodeTag reads the two 16-bit fields of a tag starting at offset
func decodeTag(b []byte, isLittleEndian bool, offset int) DataElementTag {
	order := byteOrder(isLittleEndian)
	group := order.Uint16(b[offset:])
	element := order.Uint16(b[offset+2:])
	return DataElementTag(uint32(group)<<16 | uint32(element))
}
