// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package tree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jongio/colorfmt/logutil"
)

// Syntax names a document syntax understood by Decode.
type Syntax string

const (
	YAML Syntax = "yaml"
	JSON Syntax = "json"
	TOML Syntax = "toml"
)

// Syntaxes lists every supported syntax.
var Syntaxes = []Syntax{YAML, JSON, TOML}

// maxDepth bounds the nesting of decoded documents, which also stops YAML
// alias cycles.
const maxDepth = 512

// ErrUnsupportedInput is returned for input that decodes but cannot be
// represented as a Value, and for unknown syntaxes.
var ErrUnsupportedInput = errors.New("unsupported input")

// ParseSyntax parses a syntax name, case-insensitively. "yml" is accepted
// for YAML.
func ParseSyntax(name string) (Syntax, error) {
	switch s := Syntax(strings.ToLower(strings.TrimSpace(name))); s {
	case YAML, JSON, TOML:
		return s, nil
	case "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: syntax %q (valid: yaml, json, toml)", ErrUnsupportedInput, name)
}

// Decode decodes data written in syntax.
func Decode(data []byte, syntax Syntax) (Value, error) {
	log := logutil.NewLogger("tree").WithFields("syntax", string(syntax), "bytes", len(data))

	var (
		v   Value
		err error
	)
	switch syntax {
	case YAML:
		v, err = DecodeYAML(data)
	case JSON:
		v, err = DecodeJSON(data)
	case TOML:
		v, err = DecodeTOML(data)
	default:
		return Value{}, fmt.Errorf("%w: syntax %q", ErrUnsupportedInput, syntax)
	}
	if err != nil {
		log.Debug("decode failed", "error", err)
		return Value{}, err
	}

	log.Debug("decoded document", "kind", v.Kind().String(), "entries", v.Len())
	return v, nil
}

func tooDeep() error {
	return fmt.Errorf("%w: nesting deeper than %d levels", ErrUnsupportedInput, maxDepth)
}
