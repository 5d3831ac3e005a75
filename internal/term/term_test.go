package term

import (
	"testing"

	"github.com/backmassage/scaleup/internal/config"
)

func TestConfigureAlways(t *testing.T) {
	Configure(config.ColorAlways)
	defer Configure(config.ColorNever)

	if !Enabled() {
		t.Error("Enabled() should be true after Configure(always)")
	}
	if Red == "" || Green == "" || NC == "" {
		t.Error("color variables should be set after Configure(always)")
	}
}

func TestConfigureNever(t *testing.T) {
	Configure(config.ColorAlways)
	Configure(config.ColorNever)

	if Enabled() {
		t.Error("Enabled() should be false after Configure(never)")
	}
	for name, v := range map[string]string{
		"Red": Red, "Green": Green, "Yellow": Yellow,
		"Blue": Blue, "Cyan": Cyan, "Magenta": Magenta, "NC": NC,
	} {
		if v != "" {
			t.Errorf("%s = %q, want empty after Configure(never)", name, v)
		}
	}
}

func TestConfigureAuto_NoColorEnv(t *testing.T) {
	// NO_COLOR forces colors off in auto mode even on a TTY; under go test
	// stdout is a pipe anyway, so auto must resolve to off here.
	t.Setenv("NO_COLOR", "1")
	Configure(config.ColorAuto)
	defer Configure(config.ColorNever)

	if Enabled() {
		t.Error("auto mode with NO_COLOR set should disable colors")
	}
}

func TestIsTerminalNil(t *testing.T) {
	if IsTerminal(nil) {
		t.Error("IsTerminal(nil) should be false")
	}
}
