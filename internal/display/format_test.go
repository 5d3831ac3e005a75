package display

import (
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "00:00:00"},
		{"seconds only", 59 * time.Second, "00:00:59"},
		{"minute rollover", 61 * time.Second, "00:01:01"},
		{"hours", 3661 * time.Second, "01:01:01"},
		{"beyond a day", 25 * time.Hour, "25:00:00"},
		{"sub-second truncates", 900 * time.Millisecond, "00:00:00"},
		{"negative clamps", -5 * time.Second, "00:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatClock(tt.d)
			if got != tt.want {
				t.Errorf("FormatClock(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"sub-second", 250 * time.Millisecond, "0.25s"},
		{"seconds", 1234 * time.Millisecond, "1.23s"},
		{"whole", 3 * time.Second, "3.00s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSeconds(tt.d)
			if got != tt.want {
				t.Errorf("FormatSeconds(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"typical output video", 734003200, "700.0 MiB"},
		{"4.7 GiB", 5046586572, "4.7 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
