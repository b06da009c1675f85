package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongio/colorfmt/display"
)

func keysOf(t *testing.T, v Value) []string {
	t.Helper()
	require.Equal(t, MapKind, v.Kind())
	var keys []string
	for p := v.Entries().Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

func field(t *testing.T, v Value, key string) Value {
	t.Helper()
	got, ok := v.Get(key)
	require.True(t, ok, "missing key %q", key)
	return got
}

func TestParseSyntax(t *testing.T) {
	tests := []struct {
		in   string
		want Syntax
	}{
		{"yaml", YAML},
		{"YML", YAML},
		{" json ", JSON},
		{"Toml", TOML},
	}
	for _, tt := range tests {
		got, err := ParseSyntax(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseSyntax("xml")
	assert.ErrorIs(t, err, ErrUnsupportedInput)
}

func TestDecode_UnknownSyntax(t *testing.T) {
	_, err := Decode([]byte("a"), Syntax("ini"))
	assert.ErrorIs(t, err, ErrUnsupportedInput)
}

func TestDecode_SameDocumentEverySyntax(t *testing.T) {
	inputs := map[Syntax]string{
		YAML: "name: demo\nports:\n  - 80\n  - 443\ntls:\n  enabled: true\n",
		JSON: `{"name": "demo", "ports": [80, 443], "tls": {"enabled": true}}`,
		TOML: "name = \"demo\"\nports = [80, 443]\n\n[tls]\nenabled = true\n",
	}
	want := "name: \"demo\"\nports:\n    - 80\n    - 443\ntls:\n    enabled: true"

	for syntax, in := range inputs {
		t.Run(string(syntax), func(t *testing.T) {
			v, err := Decode([]byte(in), syntax)
			require.NoError(t, err)
			assert.Equal(t, want, display.Sprint(v, display.Monochrome[Format](0)))
		})
	}
}
