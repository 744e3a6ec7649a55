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
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// UID is a DICOM unique identifier (VR: UI)
type UID string

// IntegerString is a DICOM integer string (VR: IS). The standard restricts IS
// values to the signed 32-bit range even though the textual form could encode
// more.
type IntegerString int64

// NewIntegerString parses the textual form of an IS value
func NewIntegerString(s string) (IntegerString, error) {
	t := strings.TrimSpace(s)
	v, err := strconv.ParseInt(t, 10, 64)
	if err != nil {
		return 0, &MalformedValueError{VR: "IS", Content: s, Reason: "parsing integer string", Err: err}
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, &MalformedValueError{VR: "IS", Content: s, Reason: "value outside the signed 32-bit range"}
	}
	return IntegerString(v), nil
}

// NewDecimalString parses the textual form of a DS value into an exact
// decimal. Fixed point and exponential notation are both allowed.
func NewDecimalString(s string) (*apd.Decimal, error) {
	t := strings.TrimSpace(s)
	d, _, err := apd.NewFromString(t)
	if err != nil {
		return nil, &MalformedValueError{VR: "DS", Content: s, Reason: "parsing decimal string", Err: err}
	}
	return d, nil
}

// Date is a DICOM date (VR: DA)
type Date struct {
	time.Time
}

// NewDate parses a DA value. The fixed YYYYMMDD form and the pre-1995
// YYYY.MM.DD form are accepted.
func NewDate(s string) (Date, error) {
	layout := "20060102"
	if len(s) == 10 && s[4] == '.' && s[7] == '.' {
		layout = "2006.01.02"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, &MalformedValueError{VR: "DA", Content: s, Reason: "parsing date", Err: err}
	}
	return Date{t}, nil
}

// Time is a DICOM time of day (VR: TM). The date components of the embedded
// time.Time are the zero values of time.Parse.
type Time struct {
	time.Time
}

// NewTime parses a TM value: HH, HHMM or HHMMSS with an optional fractional
// second, plus the pre-1995 colon-separated forms.
func NewTime(s string) (Time, error) {
	var layout string
	switch {
	case strings.Contains(s, ":"):
		switch {
		case len(s) >= 8:
			layout = "15:04:05"
		case len(s) >= 5:
			layout = "15:04"
		default:
			layout = "15"
		}
	case len(s) >= 6:
		layout = "150405"
	case len(s) >= 4:
		layout = "1504"
	default:
		layout = "15"
	}

	// time.Parse accepts a fractional second after the seconds field even
	// when the layout has none
	t, err := time.Parse(layout, s)
	if err != nil {
		return Time{}, &MalformedValueError{VR: "TM", Content: s, Reason: "parsing time", Err: err}
	}
	return Time{t}, nil
}

// DateTime is a DICOM concatenated date-time (VR: DT)
type DateTime struct {
	time.Time
}

// dtLayouts maps the length of the date-time body to its parse layout. Every
// component after the year is optional.
var dtLayouts = map[int]string{
	4:  "2006",
	6:  "200601",
	8:  "20060102",
	10: "2006010215",
	12: "200601021504",
	14: "20060102150405",
}

// NewDateTime parses a DT value of the form YYYY[MM[DD[HH[MM[SS[.F{1,6}]]]]]]
// with an optional +ZZXX or -ZZXX suffix for the offset from UTC.
func NewDateTime(s string) (DateTime, error) {
	body, offset := s, ""
	if i := strings.IndexAny(s, "+-"); i >= 0 {
		body, offset = s[:i], s[i:]
	}

	length := len(body)
	if i := strings.IndexByte(body, '.'); i >= 0 {
		length = i
	}
	layout, ok := dtLayouts[length]
	if !ok {
		return DateTime{}, &MalformedValueError{VR: "DT", Content: s, Reason: "unrecognized date-time length"}
	}
	if offset != "" {
		layout += "-0700"
		body += offset
	}

	t, err := time.Parse(layout, body)
	if err != nil {
		return DateTime{}, &MalformedValueError{VR: "DT", Content: s, Reason: "parsing date-time", Err: err}
	}
	return DateTime{t}, nil
}
