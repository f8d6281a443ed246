// =============================================================================
// CSV to XLSX Converter - Character Set Candidates
// =============================================================================
//
// This module defines the text encodings a CSV file may be written in and
// decodes raw file bytes strictly: a byte sequence that is not valid in the
// candidate encoding is reported as a *DecodeError instead of being silently
// replaced with U+FFFD.
//
// CANDIDATES (tried in this order):
//   1. utf-8  : Unicode, with an optional leading byte order mark
//   2. euc-kr : Legacy Korean encoding (decoded as its CP949 superset)
//
// =============================================================================

package charset

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
)

// Names of the supported candidates, as reported on the console.
const (
	NameUTF8  = "utf-8"
	NameEUCKR = "euc-kr"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// replacement is U+FFFD encoded as UTF-8. The x/text decoders emit it for
// every byte sequence they cannot map.
var replacement = []byte(string(utf8.RuneError))

// =============================================================================
// DECODE ERROR
// =============================================================================

// DecodeError reports that a byte sequence is invalid in an encoding.
type DecodeError struct {
	// Encoding is the name of the candidate that rejected the input.
	Encoding string

	// Offset is the byte offset of the first invalid sequence.
	Offset int

	// Byte is the value of the byte at Offset.
	Byte byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: cannot decode byte 0x%02x at offset %d", e.Encoding, e.Byte, e.Offset)
}

// IsDecodeError reports whether err is, or wraps, a *DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// =============================================================================
// CANDIDATE
// =============================================================================

// Candidate is one text encoding that a CSV file may be decoded with.
type Candidate struct {
	// Name identifies the encoding in reports and logs.
	Name string

	decode func([]byte) (string, error)
}

// Decode converts raw bytes into a UTF-8 string.
// It returns a *DecodeError if data is not valid in this encoding.
func (c Candidate) Decode(data []byte) (string, error) {
	return c.decode(data)
}

// UTF8 decodes UTF-8 input, dropping a leading byte order mark.
var UTF8 = Candidate{Name: NameUTF8, decode: decodeUTF8}

// EUCKR decodes the legacy Korean two-byte encoding.
var EUCKR = Candidate{Name: NameEUCKR, decode: decodeEUCKR}

// Defaults returns the fixed candidate list: UTF-8 first, EUC-KR second.
func Defaults() []Candidate {
	return []Candidate{UTF8, EUCKR}
}

// =============================================================================
// DECODERS
// =============================================================================

func decodeUTF8(data []byte) (string, error) {
	start := 0
	if bytes.HasPrefix(data, utf8BOM) {
		start = len(utf8BOM)
	}

	body := data[start:]
	if utf8.Valid(body) {
		return string(body), nil
	}

	for i := 0; i < len(body); {
		r, size := utf8.DecodeRune(body[i:])
		if r == utf8.RuneError && size <= 1 {
			return "", &DecodeError{Encoding: NameUTF8, Offset: start + i, Byte: body[i]}
		}
		i += size
	}

	// Unreachable: utf8.Valid returned false, so the loop found the byte.
	return "", &DecodeError{Encoding: NameUTF8}
}

func decodeEUCKR(data []byte) (string, error) {
	out, err := korean.EUCKR.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", NameEUCKR, err)
	}

	// A U+FFFD cannot be encoded in EUC-KR, so any occurrence in the output
	// marks an input sequence the decoder rejected.
	if !bytes.Contains(out, replacement) {
		return string(out), nil
	}

	offset := firstInvalidEUCKR(data)
	return "", &DecodeError{Encoding: NameEUCKR, Offset: offset, Byte: data[offset]}
}

// firstInvalidEUCKR walks the input one character at a time (one byte for
// ASCII, two bytes otherwise) and returns the offset of the first character
// the decoder cannot map.
func firstInvalidEUCKR(data []byte) int {
	for i := 0; i < len(data); {
		if data[i] < utf8.RuneSelf {
			i++
			continue
		}

		end := i + 2
		if end > len(data) {
			end = len(data)
		}

		out, err := korean.EUCKR.NewDecoder().Bytes(data[i:end])
		if err != nil || bytes.Contains(out, replacement) {
			return i
		}
		i = end
	}

	return 0
}
