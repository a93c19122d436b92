//
//  Copyright 2006-2019 WebPKI.org (http://webpki.org).
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      https://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

// Package jsoncanonicalizer implements the JSON Canonicalization Scheme
// (JCS, RFC 8785): https://tools.ietf.org/html/rfc8785
package jsoncanonicalizer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Transform returns the JCS-canonical serialization of a JSON document.
// Object member order is sorted by the UTF-16 code units of the member
// name, numbers are rewritten into their ES6 JSON representation, and
// string escaping follows RFC 8785 section 3.2.2.2.
func Transform(input []byte) ([]byte, error) {
	var parsed interface{}

	dec := json.NewDecoder(bytes.NewReader(input))
	dec.UseNumber()
	if err := dec.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON input: %w", err)
	}

	var buf bytes.Buffer
	if err := serialize(&buf, parsed); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func serialize(buf *bytes.Buffer, value interface{}) error {
	switch v := value.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if v {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case json.Number:
		return serializeNumber(buf, v)
	case string:
		serializeString(buf, v)
	case []interface{}:
		return serializeArray(buf, v)
	case map[string]interface{}:
		return serializeObject(buf, v)
	default:
		return fmt.Errorf("unsupported JSON value type: %T", value)
	}
	return nil
}

func serializeNumber(buf *bytes.Buffer, n json.Number) error {
	f64, err := n.Float64()
	if err != nil {
		return fmt.Errorf("invalid JSON number %q: %w", n.String(), err)
	}
	formatted, err := NumberToJSON(f64)
	if err != nil {
		return err
	}
	buf.WriteString(formatted)
	return nil
}

func serializeArray(buf *bytes.Buffer, arr []interface{}) error {
	buf.WriteByte('[')
	for i, elem := range arr {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := serialize(buf, elem); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func serializeObject(buf *bytes.Buffer, obj map[string]interface{}) error {
	names := make([]string, 0, len(obj))
	for name := range obj {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return less16(names[i], names[j])
	})

	buf.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			buf.WriteByte(',')
		}
		serializeString(buf, name)
		buf.WriteByte(':')
		if err := serialize(buf, obj[name]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// less16 compares two strings by the lexicographic order of their UTF-16
// code units, as JCS's member-name ordering requires.
func less16(a, b string) bool {
	ua := utf16Units(a)
	ub := utf16Units(b)
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			return ua[i] < ub[i]
		}
	}
	return len(ua) < len(ub)
}

func utf16Units(s string) []uint16 {
	units := make([]uint16, 0, len(s))
	for _, r := range s {
		if r > 0xFFFF {
			r -= 0x10000
			units = append(units, uint16(0xD800+(r>>10)), uint16(0xDC00+(r&0x3FF)))
		} else {
			units = append(units, uint16(r))
		}
	}
	return units
}

func serializeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				buf.WriteString(`\u`)
				buf.WriteString(fmt.Sprintf("%04x", r))
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}
