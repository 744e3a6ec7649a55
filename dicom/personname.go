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
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
)

const (
	componentGroupSeparator = "="
	nameComponentSeparator  = "^"
)

// PersonName is a DICOM person name (VR: PN): up to three component groups
// separated by "=" in the order alphabetic, ideographic, phonetic. Each group
// holds up to five "^"-separated components (family, given, middle, prefix,
// suffix).
type PersonName struct {
	Alphabetic  string
	Ideographic string
	Phonetic    string
}

// NewPersonName decodes the byte form of a single person name. The alphabetic
// group is decoded with the default slot of the coding system, the
// ideographic group with the extended slot and the phonetic group with the
// multi-byte slot.
func NewPersonName(b []byte, cs CodingSystem) (PersonName, error) {
	cs = cs.normalize()
	encodings := []encoding.Encoding{cs.Default, cs.Extended, cs.MultiByte}

	groups := bytes.Split(b, []byte(componentGroupSeparator))
	if len(groups) > 3 {
		return PersonName{}, &MalformedValueError{
			VR:      "PN",
			Content: string(b),
			Reason:  fmt.Sprintf("expected at most 3 component groups, got %d", len(groups)),
		}
	}

	decoded := make([]string, 3)
	for i, group := range groups {
		s, err := decodeText("PN", group, encodings[i])
		if err != nil {
			return PersonName{}, err
		}
		decoded[i] = s
	}
	return PersonName{Alphabetic: decoded[0], Ideographic: decoded[1], Phonetic: decoded[2]}, nil
}

// FamilyName returns the family name complex of the alphabetic group
func (pn PersonName) FamilyName() string { return pn.component(0) }

// GivenName returns the given name complex of the alphabetic group
func (pn PersonName) GivenName() string { return pn.component(1) }

// MiddleName returns the middle name of the alphabetic group
func (pn PersonName) MiddleName() string { return pn.component(2) }

// NamePrefix returns the name prefix of the alphabetic group
func (pn PersonName) NamePrefix() string { return pn.component(3) }

// NameSuffix returns the name suffix of the alphabetic group
func (pn PersonName) NameSuffix() string { return pn.component(4) }

func (pn PersonName) component(i int) string {
	parts := strings.Split(pn.Alphabetic, nameComponentSeparator)
	if i >= len(parts) {
		return ""
	}
	return parts[i]
}

// String reassembles the component groups, dropping empty trailing groups
func (pn PersonName) String() string {
	groups := []string{pn.Alphabetic, pn.Ideographic, pn.Phonetic}
	last := len(groups)
	for last > 0 && groups[last-1] == "" {
		last--
	}
	return strings.Join(groups[:last], componentGroupSeparator)
}
