// Package dicom converts the raw value fields of DICOM data elements into
// typed in-memory values, keyed by the element's Value Representation (VR).
// The package assumes the value field has already been isolated from the file
// stream; locating and slicing payloads, data set assembly and character set
// negotiation belong to the caller.
//
// The single entry point is Convert (or the Convert method of a configured
// Converter), which dispatches the payload to one of roughly 25 per-VR
// decoding strategies: fixed-width numeric unpacking, padded text with
// per-family trim rules, packed tag pairs, person names, nested sequences and
// opaque bytes. Multi-valued fields are split on the backslash delimiter and
// a single value always collapses to the bare scalar, never a one-element
// slice.
//
// Under the default lenient validation, content that fails to decode with its
// declared VR is reattempted with a fixed order of alternate VRs, and the
// untouched raw bytes are returned when every alternate fails, so a damaged
// element degrades instead of failing the caller. WithStrictValidation turns
// such failures into errors.
package dicom
