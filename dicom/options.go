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

import "github.com/rs/zerolog"

// ConvertOption configures the behavior of a Converter
type ConvertOption struct {
	apply func(*Converter)
}

// WithStrictValidation returns a ConvertOption under which malformed values
// fail the conversion instead of engaging the VR retry order.
func WithStrictValidation() ConvertOption {
	return ConvertOption{func(c *Converter) { c.strict = true }}
}

// WithDatetimeConversion returns a ConvertOption under which the DA, TM and
// DT VRs convert to Date, Time and DateTime values instead of plain strings.
func WithDatetimeConversion() ConvertOption {
	return ConvertOption{func(c *Converter) { c.datetimeConversion = true }}
}

// WithNumericStringFastPath returns a ConvertOption that enables the
// single-pass accelerated parser for the IS and DS VRs. Results are plain
// int64/float64 values rather than IntegerString and decimal values.
func WithNumericStringFastPath() ConvertOption {
	return ConvertOption{func(c *Converter) { c.fastNumericStrings = true }}
}

// WithLogger returns a ConvertOption that routes diagnostics (length
// mismatch warnings, retry traces) to the given logger. The default is
// zerolog.Nop().
func WithLogger(logger zerolog.Logger) ConvertOption {
	return ConvertOption{func(c *Converter) { c.logger = logger }}
}

// WithSequenceParser returns a ConvertOption that replaces the built-in
// sequence parser, for callers that resolve implicit VRs against a data
// dictionary or track file-level state.
func WithSequenceParser(parse SequenceParser) ConvertOption {
	return ConvertOption{func(c *Converter) { c.parseSequence = parse }}
}
