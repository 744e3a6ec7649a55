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
	"bytes"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"
)

// RawElement is the unit of input: the already-isolated byte payload of one
// data element together with the layout flags needed to interpret it. It is
// borrowed for the duration of one conversion call and never mutated.
type RawElement struct {
	// Tag identifies the element; used only for diagnostics
	Tag DataElementTag

	// Value is the raw value field
	Value []byte

	// IsLittleEndian is the byte order of binary numbers within Value
	IsLittleEndian bool

	// IsImplicitVR reports whether nested data sets within Value use the
	// implicit VR layout
	IsImplicitVR bool

	// ValueOffset is the absolute position of Value within the original
	// stream, needed only when Value holds a sequence
	ValueOffset int64
}

// Converter converts raw value fields into typed values. The zero options
// are lenient validation, no datetime conversion and a no-op diagnostic
// logger. A Converter is immutable after construction and safe for concurrent
// use.
type Converter struct {
	strict             bool
	datetimeConversion bool
	fastNumericStrings bool
	logger             zerolog.Logger
	parseSequence      SequenceParser
}

// NewConverter returns a Converter configured by the given options
func NewConverter(opts ...ConvertOption) *Converter {
	c := &Converter{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt.apply(c)
	}
	if c.parseSequence == nil {
		c.parseSequence = c.ParseSequence
	}
	return c
}

var defaultConverter = NewConverter()

// Convert converts the value field of element using the default Converter
func Convert(vr string, element RawElement, cs CodingSystem) (interface{}, error) {
	return defaultConverter.Convert(vr, element, cs)
}

// Convert converts the value field of element as the given VR code.
//
// An unregistered VR code fails with *UnsupportedVRError. When the declared
// VR cannot decode the content, behavior depends on the strict validation
// option: under strict validation the *MalformedValueError propagates
// unchanged; otherwise every VR in the retry order is attempted once
// (skipping the declared VR) and the first success wins. When all of them
// fail, the untouched raw bytes are returned so the element is degraded
// rather than lost.
func (c *Converter) Convert(vr string, element RawElement, cs CodingSystem) (interface{}, error) {
	cs = cs.normalize()

	value, err := c.convertOnce(vr, element, cs)
	if err == nil {
		return value, nil
	}
	var malformed *MalformedValueError
	if !errors.As(err, &malformed) {
		return nil, err
	}
	if c.strict {
		return nil, err
	}

	c.logger.Debug().
		Stringer("tag", element.Tag).
		Str("vr", vr).
		Err(err).
		Msg("unable to convert value with declared VR")

	for _, alternate := range convertRetryVROrder {
		if alternate == vr {
			continue
		}
		value, retryErr := c.convertOnce(alternate, element, cs)
		if retryErr != nil {
			continue
		}
		c.logger.Debug().
			Stringer("tag", element.Tag).
			Str("vr", alternate).
			Msg("converted value with alternate VR")
		return value, nil
	}

	c.logger.Debug().
		Stringer("tag", element.Tag).
		Msg("could not convert value with any VR in the retry order, keeping raw bytes")
	return element.Value, nil
}

// convertOnce performs a single dispatch with no fallback
func (c *Converter) convertOnce(vr string, element RawElement, cs CodingSystem) (interface{}, error) {
	entry, err := lookupVRByName(vr)
	if err != nil {
		return nil, err
	}

	// text VRs are decoded with the extended slot, every other textual VR
	// with the default character repertoire
	var textEncoding encoding.Encoding
	if textVRNames[entry.Name] {
		textEncoding = cs.Extended
	}

	switch entry.kind {
	case numberConverter:
		return c.convertNumbers(entry, element.Value, element.IsLittleEndian)
	case stringConverter:
		return c.convertString(entry.Name, element.Value, textEncoding)
	case singleStringConverter:
		return c.convertSingleString(entry.Name, element.Value, textEncoding)
	case trimmedStringConverter:
		return c.convertAEString(element.Value, nil)
	case rightTrimmedStringConverter:
		return c.convertURString(element.Value, nil)
	case uniqueIdentifierConverter:
		return c.convertUI(element.Value, nil)
	case integerStringConverter:
		if c.fastNumericStrings {
			return c.convertNumericStringFast("IS", element.Value, nil)
		}
		return c.convertIS(element.Value, nil)
	case decimalStringConverter:
		if c.fastNumericStrings {
			return c.convertNumericStringFast("DS", element.Value, nil)
		}
		return c.convertDS(element.Value, nil)
	case dateConverter:
		return c.convertDA(element.Value, nil)
	case timeConverter:
		return c.convertTM(element.Value, nil)
	case dateTimeConverter:
		return c.convertDT(element.Value, nil)
	case personNameConverter:
		return c.convertPersonName(element.Value, cs)
	case tagConverter:
		return c.convertTagValue(element.Value, element.IsLittleEndian)
	case bytesConverter:
		return element.Value, nil
	case sequenceConverter:
		return c.convertSequence(element, cs)
	}
	return nil, &UnsupportedVRError{Name: vr}
}

// convertSequence wraps the payload as a stream and delegates to the
// configured sequence parser, returning its result verbatim. A parse failure
// surfaces as a malformed value so the retry policy applies to it like any
// other content error.
func (c *Converter) convertSequence(element RawElement, cs CodingSystem) (interface{}, error) {
	parse := c.parseSequence
	if parse == nil {
		parse = c.ParseSequence
	}
	seq, err := parse(bytes.NewReader(element.Value), element.IsImplicitVR, element.IsLittleEndian,
		uint32(len(element.Value)), cs, element.ValueOffset)
	if err != nil {
		return nil, &MalformedValueError{VR: "SQ", Reason: "parsing sequence items", Err: err}
	}
	return seq, nil
}
