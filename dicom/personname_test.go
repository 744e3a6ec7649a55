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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertPersonNamePadding(t *testing.T) {
	testCases := []struct {
		name       string
		value      string
		alphabetic string
	}{
		{"single trailing space stripped", "Doe^John ", "Doe^John"},
		{"single trailing null stripped", "Doe^John\x00", "Doe^John"},
		{"two trailing spaces keep one", "Doe^John  ", "Doe^John "},
		{"no padding unaffected", "Doe^John", "Doe^John"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := convertValue(t, "PN", []byte(tc.value), true)
			require.IsType(t, PersonName{}, v)
			assert.Equal(t, tc.alphabetic, v.(PersonName).Alphabetic)
		})
	}
}

func TestConvertPersonNameEmptyPayloadNotStripped(t *testing.T) {
	v := convertValue(t, "PN", []byte{}, true)
	assert.Equal(t, PersonName{}, v)
}

func TestConvertPersonNameMultiValue(t *testing.T) {
	v := convertValue(t, "PN", []byte("Doe^John\\Roe^Jane "), true)
	names := v.([]PersonName)
	require.Len(t, names, 2)
	assert.Equal(t, "Doe^John", names[0].Alphabetic)
	assert.Equal(t, "Roe^Jane", names[1].Alphabetic)
}

func TestPersonNameComponents(t *testing.T) {
	pn, err := NewPersonName([]byte("Adams^John Robert Quincy^^Rev.^B.A. M.Div."), CodingSystem{})
	require.NoError(t, err)

	assert.Equal(t, "Adams", pn.FamilyName())
	assert.Equal(t, "John Robert Quincy", pn.GivenName())
	assert.Equal(t, "", pn.MiddleName())
	assert.Equal(t, "Rev.", pn.NamePrefix())
	assert.Equal(t, "B.A. M.Div.", pn.NameSuffix())
}

func TestPersonNameComponentGroups(t *testing.T) {
	cs, err := CodingSystemForTerms("ISO_IR 192")
	require.NoError(t, err)

	pn, err := NewPersonName([]byte("Yamada^Tarou=山田^太郎=やまだ^たろう"), cs)
	require.NoError(t, err)
	assert.Equal(t, "Yamada^Tarou", pn.Alphabetic)
	assert.Equal(t, "山田^太郎", pn.Ideographic)
	assert.Equal(t, "やまだ^たろう", pn.Phonetic)
	assert.Equal(t, "Yamada^Tarou=山田^太郎=やまだ^たろう", pn.String())
}

func TestPersonNameTooManyGroups(t *testing.T) {
	_, err := NewPersonName([]byte("a=b=c=d"), CodingSystem{})
	var malformed *MalformedValueError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "PN", malformed.VR)
}

func TestPersonNameStringDropsEmptyTrailingGroups(t *testing.T) {
	pn, err := NewPersonName([]byte("Doe^John"), CodingSystem{})
	require.NoError(t, err)
	assert.Equal(t, "Doe^John", pn.String())
}
