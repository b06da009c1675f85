// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package tree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
)

// DecodeJSON decodes a single JSON value. Object keys keep their order;
// a repeated key keeps its first position and its last value. Numbers
// that fit an int64 decode as integers, all others as floats. The input
// must be strict JSON: trailing commas and other extensions are rejected.
func DecodeJSON(data []byte) (Value, error) {
	raw, typ, end, err := jsonparser.Get(data)
	if err != nil {
		return Value{}, fmt.Errorf("decoding json: %w", err)
	}
	if rest := bytes.TrimSpace(data[end:]); len(rest) > 0 {
		return Value{}, fmt.Errorf("decoding json: unexpected data after offset %d", end)
	}
	if !json.Valid(data) {
		return Value{}, fmt.Errorf("decoding json: %w", errInvalidJSON)
	}
	return fromJSON(raw, typ, 0)
}

var errInvalidJSON = errors.New("malformed document")

func fromJSON(raw []byte, typ jsonparser.ValueType, depth int) (Value, error) {
	if depth > maxDepth {
		return Value{}, tooDeep()
	}

	switch typ {
	case jsonparser.Null:
		return Null(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return Value{}, fmt.Errorf("decoding json: %w", err)
		}
		return Bool(b), nil
	case jsonparser.Number:
		if i, err := jsonparser.ParseInt(raw); err == nil {
			return Int(i), nil
		}
		f, err := jsonparser.ParseFloat(raw)
		if err != nil {
			return Value{}, fmt.Errorf("decoding json: number %q: %w", raw, err)
		}
		return Float(f), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return Value{}, fmt.Errorf("decoding json: %w", err)
		}
		return String(s), nil
	case jsonparser.Array:
		items := []Value{}
		var itemErr error
		_, err := jsonparser.ArrayEach(raw, func(val []byte, t jsonparser.ValueType, _ int, err error) {
			if itemErr != nil {
				return
			}
			if err != nil {
				itemErr = fmt.Errorf("decoding json: %w", err)
				return
			}
			v, err := fromJSON(val, t, depth+1)
			if err != nil {
				itemErr = err
				return
			}
			items = append(items, v)
		})
		if itemErr != nil {
			return Value{}, itemErr
		}
		if err != nil {
			return Value{}, fmt.Errorf("decoding json: %w", err)
		}
		return List(items...), nil
	case jsonparser.Object:
		m := NewMap()
		err := jsonparser.ObjectEach(raw, func(key, val []byte, t jsonparser.ValueType, _ int) error {
			v, err := fromJSON(val, t, depth+1)
			if err != nil {
				return err
			}
			m.Set(string(key), v)
			return nil
		})
		if err != nil {
			return Value{}, fmt.Errorf("decoding json: %w", err)
		}
		return m, nil
	}
	return Value{}, fmt.Errorf("%w: json value type %s", ErrUnsupportedInput, typ)
}
