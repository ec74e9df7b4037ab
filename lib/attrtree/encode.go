package attrtree

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
)

// MarshalJSON encodes the tree as a JSON object in key insertion order.
// Forward slashes and HTML characters are left unescaped, which is what the
// block editor's own serializer produces.
func (t *Tree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JSON returns the JSON encoding of the tree as a string.
func (t *Tree) JSON() (string, error) {
	b, err := t.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MarshalJSON encodes a single value.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (t *Tree) writeJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, k := range t.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(buf, k); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := t.vals[k].writeJSON(buf); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func (v Value) writeJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindString:
		return writeJSONString(buf, v.str)
	case KindNumber:
		if v.integral {
			buf.WriteString(strconv.FormatInt(v.i, 10))
			return nil
		}
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			buf.WriteString("null")
			return nil
		}
		buf.WriteString(strconv.FormatFloat(v.num, 'f', -1, 64))
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindTree:
		return v.tree.writeJSON(buf)
	case KindList:
		buf.WriteByte('[')
		for i, it := range v.list {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := it.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		buf.WriteString("null")
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

var (
	_ msgpack.CustomEncoder = (*Tree)(nil)
	_ msgpack.CustomEncoder = Value{}
)

// EncodeMsgpack encodes the tree as a msgpack map in key insertion order.
func (t *Tree) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(t.Len()); err != nil {
		return err
	}
	for _, k := range t.Keys() {
		if err := enc.EncodeString(k); err != nil {
			return err
		}
		if err := t.vals[k].EncodeMsgpack(enc); err != nil {
			return err
		}
	}
	return nil
}

// EncodeMsgpack encodes a single value.
func (v Value) EncodeMsgpack(enc *msgpack.Encoder) error {
	switch v.kind {
	case KindString:
		return enc.EncodeString(v.str)
	case KindNumber:
		if i, ok := v.exactInt(); ok {
			return enc.EncodeInt(i)
		}
		return enc.EncodeFloat64(v.num)
	case KindBool:
		return enc.EncodeBool(v.b)
	case KindTree:
		return v.tree.EncodeMsgpack(enc)
	case KindList:
		if err := enc.EncodeArrayLen(len(v.list)); err != nil {
			return err
		}
		for _, it := range v.list {
			if err := it.EncodeMsgpack(enc); err != nil {
				return err
			}
		}
		return nil
	}
	return enc.EncodeNil()
}

// exactInt returns v as an integer when it holds one or when its float
// value is a whole number inside the float64 integer range.
func (v Value) exactInt() (int64, bool) {
	if v.integral {
		return v.i, true
	}
	if v.num == math.Trunc(v.num) && math.Abs(v.num) <= 1<<53 {
		return int64(v.num), true
	}
	return 0, false
}
