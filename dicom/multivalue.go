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

import "strings"

// multiValueDelimiter separates the values of a multi-valued element
const multiValueDelimiter = "\\"

// splitMultiValue removes the single trailing space or null byte used to pad
// the field to even length, splits s on the multi-value delimiter and
// constructs each part independently. Only one byte is ever removed,
// regardless of run length; further padding is data. Exactly one part
// collapses to the constructed scalar, never a one-element slice. An empty
// singleton is returned as the empty string without invoking the constructor.
func splitMultiValue[T any](s string, construct func(string) (T, error)) (interface{}, error) {
	if n := len(s); n > 0 && (s[n-1] == ' ' || s[n-1] == 0x00) {
		s = s[:n-1]
	}

	parts := strings.Split(s, multiValueDelimiter)
	if len(parts) == 1 {
		if parts[0] == "" {
			return "", nil
		}
		return construct(parts[0])
	}

	values := make([]T, 0, len(parts))
	for _, part := range parts {
		v, err := construct(part)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// collapseValues applies the singleton rule to an already-constructed slice
func collapseValues[T any](values []T) interface{} {
	if len(values) == 1 {
		return values[0]
	}
	return values
}
