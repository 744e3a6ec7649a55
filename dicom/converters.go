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
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
)

// convertNumbers unpacks a fixed-width numeric value field. A length that is
// not a multiple of the element width is logged and decoded with truncation
// semantics, never failed. Zero values decode to the empty string and exactly
// one value decodes to the bare scalar.
func (c *Converter) convertNumbers(vr *VR, b []byte, isLittleEndian bool) (interface{}, error) {
	width := vr.format.size()
	if len(b)%width != 0 {
		c.logger.Warn().
			Str("vr", vr.Name).
			Int("length", len(b)).
			Int("width", width).
			Msg("value length is not a multiple of the element width")
	}

	n := len(b) / width
	if n == 0 {
		return "", nil
	}
	order := byteOrder(isLittleEndian)

	switch vr.format {
	case formatUInt16:
		values := make([]uint16, n)
		for i := range values {
			values[i] = order.Uint16(b[i*width:])
		}
		return collapseValues(values), nil
	case formatInt16:
		values := make([]int16, n)
		for i := range values {
			values[i] = int16(order.Uint16(b[i*width:]))
		}
		return collapseValues(values), nil
	case formatUInt32:
		values := make([]uint32, n)
		for i := range values {
			values[i] = order.Uint32(b[i*width:])
		}
		return collapseValues(values), nil
	case formatInt32:
		values := make([]int32, n)
		for i := range values {
			values[i] = int32(order.Uint32(b[i*width:]))
		}
		return collapseValues(values), nil
	case formatFloat32:
		values := make([]float32, n)
		for i := range values {
			values[i] = math.Float32frombits(order.Uint32(b[i*width:]))
		}
		return collapseValues(values), nil
	case formatFloat64:
		values := make([]float64, n)
		for i := range values {
			values[i] = math.Float64frombits(order.Uint64(b[i*width:]))
		}
		return collapseValues(values), nil
	}
	return nil, &MalformedValueError{VR: vr.Name, Reason: "no numeric format registered"}
}

// convertTagValue reads AT value fields: one DataElementTag per 4-byte window
// in stream order. A 4-byte field yields a single tag. A length that is not a
// positive multiple of 4 is logged and the trailing partial window dropped.
func (c *Converter) convertTagValue(b []byte, isLittleEndian bool) (interface{}, error) {
	if len(b) == tagWidth {
		return decodeTag(b, isLittleEndian, 0), nil
	}
	if len(b)%tagWidth != 0 {
		c.logger.Warn().
			Int("length", len(b)).
			Msg("expected length to be multiple of 4 for VR AT")
	}

	tags := make([]DataElementTag, 0, len(b)/tagWidth)
	for offset := 0; offset+tagWidth <= len(b); offset += tagWidth {
		tags = append(tags, decodeTag(b, isLittleEndian, offset))
	}
	return tags, nil
}

// convertString decodes a textual value field and applies value multiplicity
func (c *Converter) convertString(vr string, b []byte, enc encoding.Encoding) (interface{}, error) {
	s, err := decodeText(vr, b, enc)
	if err != nil {
		return nil, err
	}
	return splitMultiValue(s, func(part string) (string, error) { return part, nil })
}

// convertSingleString decodes a textual value field in which the backslash is
// data. At most one trailing padding space is removed.
func (c *Converter) convertSingleString(vr string, b []byte, enc encoding.Encoding) (interface{}, error) {
	s, err := decodeText(vr, b, enc)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(s, " ") {
		s = s[:len(s)-1]
	}
	return s, nil
}

// convertAEString decodes an application entity title. Leading and trailing
// spaces are non-significant.
func (c *Converter) convertAEString(b []byte, enc encoding.Encoding) (interface{}, error) {
	s, err := decodeText("AE", b, enc)
	if err != nil {
		return nil, err
	}
	return strings.TrimFunc(s, unicode.IsSpace), nil
}

// convertURString decodes a URI/URL. UR is never multi-valued; trailing
// spaces are ignored and leading spaces are significant.
func (c *Converter) convertURString(b []byte, enc encoding.Encoding) (interface{}, error) {
	s, err := decodeText("UR", b, enc)
	if err != nil {
		return nil, err
	}
	return strings.TrimRightFunc(s, unicode.IsSpace), nil
}

// convertUI decodes unique identifiers, stripping the single null byte used
// to pad to even length before applying value multiplicity.
func (c *Converter) convertUI(b []byte, enc encoding.Encoding) (interface{}, error) {
	s, err := decodeText("UI", b, enc)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(s, "\x00") {
		s = s[:len(s)-1]
	}
	return splitMultiValue(s, func(part string) (UID, error) { return UID(part), nil })
}

// convertIS decodes integer strings into IntegerString values
func (c *Converter) convertIS(b []byte, enc encoding.Encoding) (interface{}, error) {
	s, err := decodeText("IS", b, enc)
	if err != nil {
		return nil, err
	}
	return splitMultiValue(s, NewIntegerString)
}

// convertDS decodes decimal strings into exact decimal values. The whole
// field is stripped so the last component carries no blank padding.
func (c *Converter) convertDS(b []byte, enc encoding.Encoding) (interface{}, error) {
	s, err := decodeText("DS", b, enc)
	if err != nil {
		return nil, err
	}
	return splitMultiValue(strings.TrimSpace(s), NewDecimalString)
}

// convertPersonName applies the PN padding rule, splits on the multi-value
// delimiter at the byte level and decodes each name with the full coding
// system. The padding rule removes exactly one trailing space or null byte,
// never more, regardless of run length.
func (c *Converter) convertPersonName(b []byte, cs CodingSystem) (interface{}, error) {
	if n := len(b); n > 0 && (b[n-1] == ' ' || b[n-1] == 0x00) {
		b = b[:n-1]
	}

	parts := strings.Split(string(b), multiValueDelimiter)
	if len(parts) == 1 {
		return NewPersonName([]byte(parts[0]), cs)
	}

	names := make([]PersonName, 0, len(parts))
	for _, part := range parts {
		pn, err := NewPersonName([]byte(part), cs)
		if err != nil {
			return nil, err
		}
		names = append(names, pn)
	}
	return names, nil
}

// convertDA decodes DA value fields. Without datetime conversion the field is
// returned as plain strings.
func (c *Converter) convertDA(b []byte, enc encoding.Encoding) (interface{}, error) {
	if !c.datetimeConversion {
		return c.convertString("DA", b, enc)
	}
	s, err := decodeText("DA", b, enc)
	if err != nil {
		return nil, err
	}
	return convertSplitDateTime(s, func(part string) (Date, error) {
		return NewDate(part)
	})
}

// convertTM decodes TM value fields. Without datetime conversion the field is
// returned as plain strings.
func (c *Converter) convertTM(b []byte, enc encoding.Encoding) (interface{}, error) {
	if !c.datetimeConversion {
		return c.convertString("TM", b, enc)
	}
	s, err := decodeText("TM", b, enc)
	if err != nil {
		return nil, err
	}
	return convertSplitDateTime(s, func(part string) (Time, error) {
		if n := len(part); (n < 2 || n > 16) && n != 0 {
			c.logger.Warn().Int("length", n).Msg("expected TM length between 2 and 16")
		}
		return NewTime(part)
	})
}

// convertDT decodes DT value fields. Without datetime conversion the field is
// returned as plain strings.
func (c *Converter) convertDT(b []byte, enc encoding.Encoding) (interface{}, error) {
	if !c.datetimeConversion {
		return c.convertString("DT", b, enc)
	}
	s, err := decodeText("DT", b, enc)
	if err != nil {
		return nil, err
	}
	return convertSplitDateTime(s, func(part string) (DateTime, error) {
		if n := len(part); n < 4 || n > 26 {
			c.logger.Warn().Int("length", n).Msg("expected DT length between 4 and 26")
		}
		return NewDateTime(part)
	})
}

// convertSplitDateTime splits a date/time field on the multi-value delimiter
// and constructs each right-stripped component, collapsing a singleton to the
// scalar. An empty field stays the empty string and an empty component inside
// a multi-valued field becomes the zero value of the date/time type.
func convertSplitDateTime[T any](s string, construct func(string) (T, error)) (interface{}, error) {
	parts := strings.Split(s, multiValueDelimiter)
	if len(parts) == 1 {
		part := strings.TrimRightFunc(parts[0], unicode.IsSpace)
		if part == "" {
			return "", nil
		}
		return construct(part)
	}

	values := make([]T, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimRightFunc(part, unicode.IsSpace)
		if part == "" {
			var empty T
			values = append(values, empty)
			continue
		}
		v, err := construct(part)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
