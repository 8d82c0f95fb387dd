package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"INFO", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"", logrus.InfoLevel},
		{"loud", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := New(tt.level, "json", &bytes.Buffer{})
			if log.GetLevel() != tt.want {
				t.Errorf("Expected level %s, got %s", tt.want, log.GetLevel())
			}
		})
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", "json", &buf)
	log.WithField("team", "CAN").Info("Roster loaded")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "Roster loaded" {
		t.Errorf("Expected msg 'Roster loaded', got %v", entry["msg"])
	}
	if entry["team"] != "CAN" {
		t.Errorf("Expected team CAN, got %v", entry["team"])
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", "text", &buf)
	log.Info("Group stage completed")

	out := buf.String()
	if strings.HasPrefix(out, "{") {
		t.Errorf("Expected text output, got %q", out)
	}
	if !strings.Contains(out, "Group stage completed") {
		t.Errorf("Expected message in output, got %q", out)
	}
}

func TestNew_InvalidLevelWarns(t *testing.T) {
	var buf bytes.Buffer
	New("loud", "json", &buf)
	if !strings.Contains(buf.String(), "invalid_level") {
		t.Errorf("Expected warning about invalid level, got %q", buf.String())
	}
}
