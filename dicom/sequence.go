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
	"io"
)

// SequenceParser parses the already-isolated payload of a sequence value
// field into its items. It is the only re-entrant interface of this package:
// the built-in implementation converts nested element values back through the
// Converter, and callers holding a data dictionary or file-level state may
// inject their own with WithSequenceParser.
//
// offset is the absolute position of the payload within the original stream,
// used so nested elements can report absolute value offsets.
type SequenceParser func(r io.Reader, isImplicitVR, isLittleEndian bool, length uint32, cs CodingSystem, offset int64) (*Sequence, error)

// Sequence models a DICOM sequence of items (VR: SQ)
type Sequence struct {
	Items []*DataSet
}

func (seq *Sequence) append(dataSet *DataSet) {
	seq.Items = append(seq.Items, dataSet)
}

// DataSet models the nested DICOM data set held by one sequence item
type DataSet struct {
	// Elements is a map of DataElement tags to *DataElement
	Elements map[uint32]*DataElement
}

// DataElement is one converted element of a nested data set
type DataElement struct {
	Tag DataElementTag

	// VR is the value representation code the element was converted with
	VR string

	// ValueField holds the converted value
	ValueField interface{}

	// ValueLength is the length of the encoded value field in bytes
	ValueLength uint32
}

// longLengthVRs use the 4-byte length form with 2 reserved bytes under
// explicit VR encoding
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.2
var longLengthVRs = map[string]bool{
	"OB": true,
	"OD": true,
	"OF": true,
	"OL": true,
	"OW": true,
	"SQ": true,
	"UC": true,
	"UR": true,
	"UT": true,
	"UN": true,
}

// ParseSequence is the built-in SequenceParser. Implicit-VR elements are
// decoded as UN because no data dictionary is in scope here.
func (c *Converter) ParseSequence(r io.Reader, isImplicitVR, isLittleEndian bool, length uint32, cs CodingSystem, offset int64) (*Sequence, error) {
	dr := newDcmReader(r)
	if length != UndefinedLength {
		dr = dr.Limit(int64(length))
	}
	return c.readSequenceBody(dr, isImplicitVR, isLittleEndian, cs, offset, length == UndefinedLength)
}

// readSequenceBody iterates the items of a sequence. A delimited sequence
// ends with a sequence delimitation item; otherwise it ends when the length
// limit of dr is exhausted.
func (c *Converter) readSequenceBody(dr *dcmReader, isImplicitVR, isLittleEndian bool, cs CodingSystem, offset int64, delimited bool) (*Sequence, error) {
	order := byteOrder(isLittleEndian)
	seq := &Sequence{}

	for {
		tag, err := dr.Tag(order)
		if err == io.EOF {
			if delimited {
				return nil, fmt.Errorf("unexpected EOF in undefined length sequence")
			}
			return seq, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading item tag: %v", err)
		}

		if tag == SequenceDelimitationItemTag {
			if !delimited {
				return nil, fmt.Errorf("unexpected sequence delimitation item in explicit length sequence")
			}
			if err := readDelimiterLength(dr, order); err != nil {
				return nil, err
			}
			return seq, nil
		}
		if tag != ItemTag {
			return nil, fmt.Errorf("invalid item tag in sequence, got %v want %v or %v",
				tag, ItemTag, SequenceDelimitationItemTag)
		}

		itemLength, err := dr.UInt32(order)
		if err != nil {
			return nil, fmt.Errorf("reading item length: %v", err)
		}

		var item *DataSet
		if itemLength == UndefinedLength {
			item, err = c.readDataSet(dr, isImplicitVR, isLittleEndian, cs, offset, true)
		} else {
			item, err = c.readDataSet(dr.Limit(int64(itemLength)), isImplicitVR, isLittleEndian, cs, offset, false)
		}
		if err != nil {
			return nil, err
		}
		seq.append(item)
	}
}

// readDataSet reads the elements of one sequence item, converting each value
// through the Converter. A delimited item ends with an item delimitation item.
func (c *Converter) readDataSet(dr *dcmReader, isImplicitVR, isLittleEndian bool, cs CodingSystem, offset int64, delimited bool) (*DataSet, error) {
	order := byteOrder(isLittleEndian)
	ds := &DataSet{Elements: map[uint32]*DataElement{}}

	for {
		tag, err := dr.Tag(order)
		if err == io.EOF {
			if delimited {
				return nil, fmt.Errorf("unexpected EOF in undefined length item")
			}
			return ds, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading element tag: %v", err)
		}

		if tag == ItemDelimitationItemTag {
			if !delimited {
				return nil, fmt.Errorf("unexpected item delimitation item in explicit length item")
			}
			if err := readDelimiterLength(dr, order); err != nil {
				return nil, err
			}
			return ds, nil
		}

		vrName, length, err := readVRAndLength(dr, isImplicitVR, order)
		if err != nil {
			return nil, fmt.Errorf("reading vr and length of %v: %v", tag, err)
		}

		element := &DataElement{Tag: tag, VR: vrName, ValueLength: length}
		if vrName == "SQ" {
			var nested *Sequence
			if length == UndefinedLength {
				nested, err = c.readSequenceBody(dr, isImplicitVR, isLittleEndian, cs, offset, true)
			} else {
				nested, err = c.readSequenceBody(dr.Limit(int64(length)), isImplicitVR, isLittleEndian, cs, offset, false)
			}
			if err != nil {
				return nil, fmt.Errorf("parsing nested sequence of %v: %v", tag, err)
			}
			element.ValueField = nested
		} else {
			if length == UndefinedLength {
				return nil, fmt.Errorf("undefined length on %v with VR %v not supported in nested items", tag, vrName)
			}
			pos := dr.Pos()
			valueBytes, err := dr.Bytes(int64(length))
			if err != nil {
				return nil, fmt.Errorf("reading value field of %v: %v", tag, err)
			}
			raw := RawElement{
				Tag:            tag,
				Value:          valueBytes,
				IsLittleEndian: isLittleEndian,
				IsImplicitVR:   isImplicitVR,
				ValueOffset:    offset + pos,
			}
			value, err := c.Convert(vrName, raw, cs)
			if err != nil {
				return nil, fmt.Errorf("converting value of %v: %w", tag, err)
			}
			element.ValueField = value
		}
		ds.Elements[uint32(tag)] = element
	}
}

func readVRAndLength(dr *dcmReader, isImplicitVR bool, order binary.ByteOrder) (string, uint32, error) {
	if isImplicitVR {
		length, err := dr.UInt32(order)
		return "UN", length, err
	}

	vrName, err := dr.String(2)
	if err != nil {
		return "", 0, err
	}
	if longLengthVRs[vrName] {
		if _, err := dr.UInt16(order); err != nil { // 2 reserved bytes
			return "", 0, err
		}
		length, err := dr.UInt32(order)
		return vrName, length, err
	}
	length, err := dr.UInt16(order)
	return vrName, uint32(length), err
}

func readDelimiterLength(dr *dcmReader, order binary.ByteOrder) error {
	length, err := dr.UInt32(order)
	if err != nil {
		return fmt.Errorf("reading 32 bit length of delimitation item: %v", err)
	}
	if length != 0 {
		return fmt.Errorf("wrong length for delimitation item. got %v, want %v", length, 0)
	}
	return nil
}
