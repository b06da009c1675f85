// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLoggerCreatesWithComponent(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("mycomponent")
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}
	if logger.Component() != "mycomponent" {
		t.Errorf("expected component 'mycomponent', got %q", logger.Component())
	}

	logger.Info("hello")
	output := buf.String()
	if !strings.Contains(output, "component=mycomponent") {
		t.Errorf("expected output to contain component=mycomponent, got: %s", output)
	}
}

func TestWithInputAddsContext(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("comp").WithInput("doc.yaml")
	logger.Info("test")

	output := buf.String()
	if !strings.Contains(output, "component=comp") {
		t.Errorf("expected component=comp in output, got: %s", output)
	}
	if !strings.Contains(output, "input=doc.yaml") {
		t.Errorf("expected input=doc.yaml in output, got: %s", output)
	}
}

func TestWithOperationAddsContext(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("comp").WithOperation("render")
	logger.Info("test")

	output := buf.String()
	if !strings.Contains(output, "component=comp") {
		t.Errorf("expected component=comp in output, got: %s", output)
	}
	if !strings.Contains(output, "operation=render") {
		t.Errorf("expected operation=render in output, got: %s", output)
	}
}

func TestWithFieldsAddsEveryPair(t *testing.T) {
	tests := []struct {
		name   string
		fields []any
		want   map[string]any
	}{
		{
			name:   "decode context",
			fields: []any{"syntax", "yaml", "bytes", 128},
			want:   map[string]any{"syntax": "yaml", "bytes": float64(128)},
		},
		{
			name:   "mixed values",
			fields: []any{"theme", "built-in", "indent", uint16(2), "color", true},
			want:   map[string]any{"theme": "built-in", "indent": float64(2), "color": true},
		},
		{
			name:   "no fields",
			fields: nil,
			want:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetupLoggerWithWriter(&buf, false, true)

			NewLogger("tree").WithFields(tt.fields...).Info("decoded")

			var record map[string]any
			if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
				t.Fatalf("output is not one JSON record: %v (%s)", err, buf.String())
			}
			if record["component"] != "tree" {
				t.Errorf("expected component=tree, got %v", record["component"])
			}
			for k, v := range tt.want {
				if record[k] != v {
					t.Errorf("expected %s=%v, got %v", k, v, record[k])
				}
			}
		})
	}
}

func TestWithFieldsLeavesParentUnchanged(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	parent := NewLogger("tree")
	child := parent.WithFields("syntax", "toml", "bytes", 3)
	child.Info("child")
	parent.Info("parent")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "syntax=toml") || !strings.Contains(lines[0], "bytes=3") {
		t.Errorf("expected child fields in %q", lines[0])
	}
	if strings.Contains(lines[1], "syntax=") || strings.Contains(lines[1], "bytes=") {
		t.Errorf("parent logger picked up child fields: %q", lines[1])
	}
	if child.Component() != "tree" {
		t.Errorf("expected component 'tree', got %q", child.Component())
	}
}

func TestChainingContexts(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("cli").WithInput("-").WithOperation("render")
	logger.Info("chain test")

	output := buf.String()
	if !strings.Contains(output, "component=cli") {
		t.Errorf("expected component=cli, got: %s", output)
	}
	if !strings.Contains(output, "input=-") {
		t.Errorf("expected input=-, got: %s", output)
	}
	if !strings.Contains(output, "operation=render") {
		t.Errorf("expected operation=render, got: %s", output)
	}
	// Component should still be the original
	if logger.Component() != "cli" {
		t.Errorf("expected component 'cli', got %q", logger.Component())
	}
}

func TestComponentReturnsCorrectName(t *testing.T) {
	SetupLogger(false, false)

	logger := NewLogger("test-component")
	if logger.Component() != "test-component" {
		t.Errorf("expected 'test-component', got %q", logger.Component())
	}

	// Chaining should preserve the component name
	chained := logger.WithInput("doc.toml").WithOperation("op")
	if chained.Component() != "test-component" {
		t.Errorf("expected 'test-component' after chaining, got %q", chained.Component())
	}
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(*ComponentLogger, string, ...any)
		level   string
	}{
		{"debug", (*ComponentLogger).Debug, "DEBUG"},
		{"info", (*ComponentLogger).Info, "INFO"},
		{"warn", (*ComponentLogger).Warn, "WARN"},
		{"error", (*ComponentLogger).Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetupLoggerWithWriter(&buf, true, false) // debug=true to capture all levels

			logger := NewLogger("lvl-test")
			tt.logFunc(logger, "level test msg", "k", "v")

			output := buf.String()
			if !strings.Contains(output, tt.level) {
				t.Errorf("expected level %s in output, got: %s", tt.level, output)
			}
			if !strings.Contains(output, "level test msg") {
				t.Errorf("expected message in output, got: %s", output)
			}
		})
	}
}

func TestLogLevelsStructured(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, true, true) // structured JSON

	logger := NewLogger("json-test")
	logger.Info("structured msg", "count", 42)

	output := buf.String()
	if !strings.Contains(output, `"component":"json-test"`) {
		t.Errorf("expected component in JSON output, got: %s", output)
	}
	if !strings.Contains(output, `"msg":"structured msg"`) {
		t.Errorf("expected msg in JSON output, got: %s", output)
	}
	if !strings.Contains(output, `"count":42`) {
		t.Errorf("expected count in JSON output, got: %s", output)
	}
}
