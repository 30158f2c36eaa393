// Copyright 2026 Inklab
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package pdf

import (
	"strings"
	"unicode/utf8"
)

// scanContentText walks a decoded PDF content stream and collects the string
// operands of the text-showing operators Tj, ', " and TJ. Positioning
// operators Td, TD and T* become line breaks. Strings that do not decode to
// valid UTF-8 (typically CID-encoded fonts) are dropped.
func scanContentText(content []byte) string {
	var builder strings.Builder
	var pending []string

	flush := func() {
		for _, s := range pending {
			if utf8.ValidString(s) {
				builder.WriteString(s)
			}
		}
		pending = pending[:0]
	}

	i := 0
	for i < len(content) {
		ch := content[i]
		switch {
		case ch == '(':
			s, next := readLiteralString(content, i)
			pending = append(pending, s)
			i = next
		case ch == '<' && i+1 < len(content) && content[i+1] != '<':
			s, next := readHexString(content, i)
			pending = append(pending, s)
			i = next
		case ch == '%':
			for i < len(content) && content[i] != '\n' && content[i] != '\r' {
				i++
			}
		case isRegular(ch):
			start := i
			for i < len(content) && isRegular(content[i]) {
				i++
			}
			switch string(content[start:i]) {
			case "Tj", "TJ", "'", "\"":
				flush()
			case "Td", "TD", "T*", "ET":
				pending = pending[:0]
				if builder.Len() > 0 && !strings.HasSuffix(builder.String(), "\n") {
					builder.WriteByte('\n')
				}
			case "BT":
				pending = pending[:0]
			}
		default:
			// Delimiters and whitespace between tokens. Array brackets of a
			// TJ operand need no handling: the strings inside are collected
			// as they are read and flushed when TJ arrives.
			i++
		}
	}

	return strings.TrimSpace(builder.String())
}

// readLiteralString reads a ( ... ) string starting at offset start.
// It handles balanced nested parentheses and backslash escapes, returning
// the decoded string and the offset just past the closing parenthesis.
func readLiteralString(content []byte, start int) (string, int) {
	var builder strings.Builder
	depth := 0
	i := start
	for i < len(content) {
		ch := content[i]
		switch ch {
		case '\\':
			if i+1 >= len(content) {
				return builder.String(), i + 1
			}
			i++
			switch content[i] {
			case 'n':
				builder.WriteByte('\n')
			case 'r':
				builder.WriteByte('\r')
			case 't':
				builder.WriteByte('\t')
			case 'b':
				builder.WriteByte('\b')
			case 'f':
				builder.WriteByte('\f')
			case '(', ')', '\\':
				builder.WriteByte(content[i])
			case '0', '1', '2', '3', '4', '5', '6', '7':
				code := 0
				digits := 0
				for i < len(content) && digits < 3 && content[i] >= '0' && content[i] <= '7' {
					code = code*8 + int(content[i]-'0')
					i++
					digits++
				}
				i--
				builder.WriteByte(byte(code))
			default:
				// A backslash before any other character is dropped.
				builder.WriteByte(content[i])
			}
			i++
		case '(':
			if depth > 0 {
				builder.WriteByte(ch)
			}
			depth++
			i++
		case ')':
			depth--
			if depth == 0 {
				return builder.String(), i + 1
			}
			builder.WriteByte(ch)
			i++
		default:
			builder.WriteByte(ch)
			i++
		}
	}
	return builder.String(), i
}

// readHexString reads a < ... > hex string starting at offset start,
// returning the decoded string and the offset just past the closing bracket.
// An odd trailing digit is padded with zero per the PDF specification.
func readHexString(content []byte, start int) (string, int) {
	var digits []byte
	i := start + 1
	for i < len(content) && content[i] != '>' {
		ch := content[i]
		if isHexDigit(ch) {
			digits = append(digits, ch)
		}
		i++
	}
	if i < len(content) {
		i++
	}

	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	decoded := make([]byte, 0, len(digits)/2)
	for j := 0; j+1 < len(digits); j += 2 {
		decoded = append(decoded, hexValue(digits[j])<<4|hexValue(digits[j+1]))
	}
	return string(decoded), i
}

// isRegular reports whether ch can appear in a PDF operator or name token.
func isRegular(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '\f', 0:
		return false
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return false
	}
	return true
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func hexValue(ch byte) byte {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0'
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10
	default:
		return ch - 'A' + 10
	}
}
