package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetup_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := Setup(Options{Level: "info"}, &buf)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	defer closer.Close()

	logger.Debug("hidden")
	logger.Info("generated statement", "records", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written at info level: %s", out)
	}
	if !strings.Contains(out, "records=3") {
		t.Errorf("expected key/value in output, got: %s", out)
	}
}

func TestSetup_FileTee(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "blogseed.log")

	logger, closer, err := Setup(Options{Level: "debug", File: path}, &buf)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	logger.With("run", "abc").Info("wrote output", "path", "out.sql")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if !strings.Contains(buf.String(), "wrote output") {
		t.Errorf("console missing record: %s", buf.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &rec); err != nil {
		t.Fatalf("log file is not JSON: %v (%s)", err, data)
	}
	if rec["msg"] != "wrote output" || rec["run"] != "abc" || rec["path"] != "out.sql" {
		t.Errorf("unexpected file record: %v", rec)
	}
}

func TestSetup_InvalidLevel(t *testing.T) {
	if _, _, err := Setup(Options{Level: "loud"}, &bytes.Buffer{}); err == nil {
		t.Error("expected error for invalid level")
	}
}
