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
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
)

// numericStringAllowed reports whether r belongs to the IS repertoire, which
// the DS repertoire extends with the decimal point and exponent markers.
func numericStringAllowed(r rune, decimal bool) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == ' ' || r == '\\' || r == '+' || r == '-':
		return true
	case decimal && (r == '.' || r == 'e' || r == 'E'):
		return true
	}
	return false
}

// convertNumericStringFast is the accelerated path for the IS and DS VRs: one
// validation scan over the whole field followed by a single parsing pass of
// every delimiter-separated number into int64 or float64, collapsing a single
// result to the scalar. Numeric results are value-identical to the
// component-wise converters; failures carry the residue of characters outside
// the repertoire.
func (c *Converter) convertNumericStringFast(vr string, b []byte, enc encoding.Encoding) (interface{}, error) {
	s, err := decodeText(vr, b, enc)
	if err != nil {
		return nil, err
	}

	decimal := vr == "DS"
	var residue strings.Builder
	for _, r := range s {
		if !numericStringAllowed(r, decimal) {
			residue.WriteRune(r)
		}
	}
	if residue.Len() > 0 {
		return nil, &MalformedValueError{VR: vr, Content: residue.String(), Reason: "char(s) not in repertoire"}
	}

	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	parts := strings.Split(s, multiValueDelimiter)

	if decimal {
		values := make([]float64, 0, len(parts))
		for _, part := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return nil, &MalformedValueError{VR: vr, Content: part, Reason: "parsing decimal string", Err: err}
			}
			values = append(values, v)
		}
		return collapseValues(values), nil
	}

	values := make([]int64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, &MalformedValueError{VR: vr, Content: part, Reason: "parsing integer string", Err: err}
		}
		values = append(values, v)
	}
	return collapseValues(values), nil
}
