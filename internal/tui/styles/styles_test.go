package styles

import (
	"strings"
	"testing"

	"github.com/Iron-Ham/dialogorithm/internal/event"
)

func TestStageColor(t *testing.T) {
	tests := []struct {
		stage event.Stage
		want  string
	}{
		{event.StageCompose, string(InfoColor)},
		{event.StageRender, string(WarningColor)},
		{event.StageDone, string(SecondaryColor)},
		{event.StageFailed, string(ErrorColor)},
		{"unknown", string(MutedColor)},
	}
	for _, tt := range tests {
		if got := string(StageColor(tt.stage)); got != tt.want {
			t.Errorf("StageColor(%q) = %q, want %q", tt.stage, got, tt.want)
		}
	}
}

func TestStageIcon(t *testing.T) {
	if StageIcon(event.StageDone) != "✓" {
		t.Errorf("done icon = %q", StageIcon(event.StageDone))
	}
	if StageIcon(event.StageFailed) != "✗" {
		t.Errorf("failed icon = %q", StageIcon(event.StageFailed))
	}
}

func TestStage_IncludesName(t *testing.T) {
	out := Stage(event.StageRender)
	if !strings.Contains(out, "render") {
		t.Errorf("Stage output %q missing name", out)
	}
}
