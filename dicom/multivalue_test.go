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
	"errors"
	"reflect"
	"testing"
)

func identity(s string) (string, error) { return s, nil }

func TestSplitMultiValue(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected interface{}
	}{
		{"singleton collapses to scalar", "A", "A"},
		{"delimited values keep order", `A\B\C`, []string{"A", "B", "C"}},
		{"trailing space padding removed before split", `A\B `, []string{"A", "B"}},
		{"trailing null padding removed before split", "A\x00", "A"},
		{"only one trailing pad byte removed", "A  ", "A "},
		{"space before the null pad is data", "A \x00", "A "},
		{"empty input stays empty string", "", ""},
		{"internal padding preserved", `A \B`, []string{"A ", "B"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := splitMultiValue(tc.input, identity)
			if err != nil {
				t.Fatalf("splitMultiValue(%q, identity) => %v, want nil error", tc.input, err)
			}
			if !reflect.DeepEqual(v, tc.expected) {
				t.Fatalf("splitMultiValue(%q, identity) => %v, want %v", tc.input, v, tc.expected)
			}
		})
	}
}

func TestSplitMultiValueConstructorError(t *testing.T) {
	wantErr := errors.New("bad component")
	construct := func(s string) (string, error) {
		if s == "B" {
			return "", wantErr
		}
		return s, nil
	}

	if _, err := splitMultiValue(`A\B\C`, construct); !errors.Is(err, wantErr) {
		t.Fatalf("splitMultiValue(_, construct) => %v, want %v", err, wantErr)
	}
}

func TestSplitMultiValueEmptySingletonSkipsConstructor(t *testing.T) {
	construct := func(s string) (string, error) {
		t.Fatalf("constructor invoked for empty singleton with %q", s)
		return s, nil
	}

	v, err := splitMultiValue(" ", construct)
	if err != nil {
		t.Fatalf("splitMultiValue(_) => %v, want nil error", err)
	}
	if v != "" {
		t.Fatalf("expected empty string, got %v", v)
	}
}
