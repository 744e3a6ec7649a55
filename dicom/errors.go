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

import "fmt"

// UnsupportedVRError is returned when a VR code is absent from the registry.
// It is never retried.
type UnsupportedVRError struct {
	// Name is the VR code that failed the registry lookup
	Name string
}

func (e *UnsupportedVRError) Error() string {
	return fmt.Sprintf("unknown value representation %q", e.Name)
}

// MalformedValueError is returned when a value field cannot be decoded with
// its declared VR. It is fatal under strict validation; otherwise the
// conversion is reattempted with the VRs in the retry order.
type MalformedValueError struct {
	// VR is the code the value was being decoded as
	VR string

	// Content is the offending input, or the residue of it that failed
	// validation
	Content string

	// Reason describes what was wrong with the content
	Reason string

	// Err is the underlying cause, if any
	Err error
}

func (e *MalformedValueError) Error() string {
	msg := fmt.Sprintf("%s: %s: %q", e.VR, e.Reason, e.Content)
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *MalformedValueError) Unwrap() error {
	return e.Err
}
