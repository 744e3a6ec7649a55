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
	"testing"
)

func TestLookupVRByName(t *testing.T) {
	testCases := []struct {
		name     string
		vrName   string
		expected *VR
	}{
		{"binary number", "US", USVR},
		{"textual number", "DS", DSVR},
		{"sequence", "SQ", SQVR},
		{"person name", "PN", PNVR},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			vr, err := lookupVRByName(tc.vrName)
			if err != nil {
				t.Fatalf("lookupVRByName(%q) => %v, want nil error", tc.vrName, err)
			}
			if vr != tc.expected {
				t.Fatalf("lookupVRByName(%q) => %v, want %v", tc.vrName, vr, tc.expected)
			}
		})
	}
}

func TestLookupVRByName_Unsupported(t *testing.T) {
	_, err := lookupVRByName("ZZ")
	var unsupported *UnsupportedVRError
	if !errors.As(err, &unsupported) {
		t.Fatalf("lookupVRByName(\"ZZ\") => %v, want *UnsupportedVRError", err)
	}
	if unsupported.Name != "ZZ" {
		t.Fatalf("expected error to carry the VR code: got %q, want %q", unsupported.Name, "ZZ")
	}
}

func TestAmbiguousAliasesResolveToBytes(t *testing.T) {
	for _, alias := range ambiguousVRAliases {
		vr, err := lookupVRByName(alias)
		if err != nil {
			t.Fatalf("lookupVRByName(%q) => %v, want nil error", alias, err)
		}
		if vr.kind != bytesConverter {
			t.Fatalf("expected alias %q to resolve to the opaque bytes converter, got kind %v", alias, vr.kind)
		}
	}
}

func TestRegistryFormatInvariant(t *testing.T) {
	// the numeric format is present if and only if the converter is the
	// generic numeric unpacker
	for name, vr := range vrLookupMap {
		hasFormat := vr.format != noFormat
		isNumber := vr.kind == numberConverter
		if hasFormat != isNumber {
			t.Errorf("VR %q: format presence %v does not match numeric kind %v", name, hasFormat, isNumber)
		}
		if isNumber && vr.format.size() == 0 {
			t.Errorf("VR %q: numeric format has no width", name)
		}
	}
}

func TestRetryOrderIsRegistered(t *testing.T) {
	seen := map[string]bool{}
	for _, name := range convertRetryVROrder {
		if seen[name] {
			t.Errorf("retry order lists %q twice", name)
		}
		seen[name] = true
		if _, err := lookupVRByName(name); err != nil {
			t.Errorf("retry order lists unregistered VR %q", name)
		}
	}
}
