package corpus

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// EncodeJSON renders v the way every output file is written: two-space
// indentation, non-ASCII text and <, > and & written literally, and no
// trailing newline.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Normalize re-encodes a JSON value compactly with key order and number
// literals kept and every string written as literal UTF-8, so \uXXXX
// escapes in the input do not leak into exports.
func Normalize(raw []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var out, scratch bytes.Buffer
	str := json.NewEncoder(&scratch)
	str.SetEscapeHTML(false)

	type frame struct {
		object bool
		n      int
	}
	var stack []frame

	separate := func() {
		if len(stack) == 0 {
			return
		}
		f := &stack[len(stack)-1]
		switch {
		case f.object && f.n%2 == 1:
			out.WriteByte(':')
		case f.n > 0:
			out.WriteByte(',')
		}
		f.n++
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{', '[':
				separate()
				out.WriteByte(byte(t))
				stack = append(stack, frame{object: t == '{'})
			default:
				stack = stack[:len(stack)-1]
				out.WriteByte(byte(t))
			}
		case string:
			separate()
			scratch.Reset()
			if err := str.Encode(t); err != nil {
				return nil, err
			}
			out.Write(bytes.TrimSuffix(scratch.Bytes(), []byte("\n")))
		case json.Number:
			separate()
			out.WriteString(t.String())
		case bool:
			separate()
			if t {
				out.WriteString("true")
			} else {
				out.WriteString("false")
			}
		case nil:
			separate()
			out.WriteString("null")
		}
	}
	if len(stack) > 0 {
		return nil, io.ErrUnexpectedEOF
	}
	return out.Bytes(), nil
}
