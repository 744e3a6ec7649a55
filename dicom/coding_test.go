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

import "testing"

func TestCodingSystemForTerms(t *testing.T) {
	t.Run("no terms fall back to the default repertoire", func(t *testing.T) {
		cs, err := CodingSystemForTerms()
		if err != nil {
			t.Fatalf("CodingSystemForTerms() => %v, want nil error", err)
		}
		if cs.Default != defaultCharacterRepertoire {
			t.Fatalf("expected the default character repertoire in the first slot")
		}
	})

	t.Run("single term is broadcast to all slots", func(t *testing.T) {
		cs, err := CodingSystemForTerms("ISO_IR 192")
		if err != nil {
			t.Fatalf("CodingSystemForTerms(_) => %v, want nil error", err)
		}
		if cs.Default != cs.Extended || cs.Extended != cs.MultiByte {
			t.Fatalf("expected all slots to hold the same encoding: %+v", cs)
		}
	})

	t.Run("two terms fill extended and multi-byte", func(t *testing.T) {
		cs, err := CodingSystemForTerms("ISO 2022 IR 6", "ISO_IR 192")
		if err != nil {
			t.Fatalf("CodingSystemForTerms(_, _) => %v, want nil error", err)
		}
		if cs.Default == cs.Extended {
			t.Fatalf("expected distinct default and extended encodings")
		}
		if cs.Extended != cs.MultiByte {
			t.Fatalf("expected the second term to also fill the multi-byte slot")
		}
	})

	t.Run("unknown term fails", func(t *testing.T) {
		if _, err := CodingSystemForTerms("ISO_IR 999"); err == nil {
			t.Fatal("expected error for unknown defined term, got nil")
		}
	})

	t.Run("more than three terms fail", func(t *testing.T) {
		if _, err := CodingSystemForTerms("ISO_IR 192", "ISO_IR 192", "ISO_IR 192", "ISO_IR 192"); err == nil {
			t.Fatal("expected error for too many defined terms, got nil")
		}
	})
}

func TestCodingSystemNormalize(t *testing.T) {
	cs := CodingSystem{}.normalize()
	if cs.Default != defaultCharacterRepertoire {
		t.Fatalf("expected empty default slot to become the default repertoire")
	}
	if cs.Extended != cs.Default || cs.MultiByte != cs.Default {
		t.Fatalf("expected empty slots to broadcast the default slot")
	}

	utf8, err := lookupEncoding("ISO_IR 192")
	if err != nil {
		t.Fatalf("lookupEncoding(_) => %v, want nil error", err)
	}
	cs = CodingSystem{Default: utf8}.normalize()
	if cs.Extended != utf8 || cs.MultiByte != utf8 {
		t.Fatalf("expected a single supplied encoding to be broadcast to all slots")
	}
}

func TestDecodeTextLatin1(t *testing.T) {
	// the default repertoire maps every byte, so unconfigured decodes never
	// fail on 8-bit content
	s, err := decodeText("LO", []byte{'M', 0xFC, 'l', 'l', 'e', 'r'}, nil)
	if err != nil {
		t.Fatalf("decodeText(_) => %v, want nil error", err)
	}
	if s != "Müller" {
		t.Fatalf("decodeText(_) => %q, want %q", s, "Müller")
	}
}
