package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{"https://example.com/x", KindLink},
		{"http://example.com", KindLink},
		{"ftp://example.com", KindText},
		{"12345", KindNumber},
		{"3.14", KindNumber},
		{"-40", KindNumber},
		{"2026-08-29", KindNumber},
		{"v1.2.3", KindText},
		{"", KindText},
		{".-", KindText},
		{"line one\nline two", KindMultiline},
		{"https://a.b\nsecond", KindLink}, // link prefix wins
		{"plain words", KindText},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.text), "Classify(%q)", tt.text)
	}
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", Preview("short", 10))
	assert.Equal(t, "a b c", Preview("  a\nb\tc  ", 10))
	assert.Equal(t, "0123…", Preview("0123456789", 5))
	assert.Equal(t, "héllo wö…", Preview("héllo wörld today", 9), "truncation counts runes, not bytes")
	assert.Equal(t, "whole", Preview("whole", 0), "non-positive width disables truncation")
}
