package chatclient

import (
	"strings"
	"testing"
)

func TestFormatEscapesBeforeFormatting(t *testing.T) {
	got := Format(`<script>alert(1)</script>`)

	if strings.Contains(got, "<script>") {
		t.Fatalf("markup survived escaping: %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Fatalf("expected escaped markup, got %q", got)
	}
}

func TestFormatBold(t *testing.T) {
	got := Format("We offer **free estimates** on every job.")

	if !strings.Contains(got, "<strong>free estimates</strong>") {
		t.Fatalf("bold span missing: %q", got)
	}
}

func TestFormatLineBreaks(t *testing.T) {
	got := Format("line one\nline two")

	if got != "line one<br>line two" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatPhoneLink(t *testing.T) {
	got := Format("Call us at (408) 427-5318 any time.")

	if !strings.Contains(got, `href="tel:+14084275318"`) {
		t.Fatalf("phone link missing: %q", got)
	}
	if !strings.Contains(got, "(408) 427-5318</a>") {
		t.Fatalf("visible number missing: %q", got)
	}
}

func TestFormatInjectedBoldCannotEscape(t *testing.T) {
	got := Format(`**<img src=x onerror=alert(1)>**`)

	if strings.Contains(got, "<img") {
		t.Fatalf("injection escaped through bold formatting: %q", got)
	}
}
