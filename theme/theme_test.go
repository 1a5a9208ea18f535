package theme

import (
	"strings"
	"testing"
)

func TestNilStylesRenderPlainText(t *testing.T) {
	var styles *Styles
	if got := styles.RenderTrigger("q   "); got != "q   " {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if got := styles.RenderDescription("exit"); got != "exit" {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if got := styles.RenderMessage("oops"); got != "oops" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestDefaultStylesKeepText(t *testing.T) {
	styles := Default()
	if styles.Trigger == nil || styles.Description == nil || styles.Message == nil {
		t.Fatalf("expected all default styles populated")
	}
	if got := styles.RenderTrigger("q"); !strings.Contains(got, "q") {
		t.Fatalf("expected styled text to contain original, got %q", got)
	}
}

func TestRenderEmptyStringStaysEmpty(t *testing.T) {
	if got := Default().RenderDescription(""); got != "" {
		t.Fatalf("expected empty passthrough, got %q", got)
	}
}
