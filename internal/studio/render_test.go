package studio

import (
	"strings"
	"testing"
)

func TestRenderResult(t *testing.T) {
	out := RenderResult(sampleResult())

	for _, want := range []string{"Ad Copy 1", "Ad Copy 2", "Creative Brief", "A", "B", "C"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if !strings.Contains(out, "Predicted Click-Through Rate (CTR): 12.5%") {
		t.Errorf("output missing CTR line:\n%s", out)
	}

	if got := strings.Count(out, "╭"); got != 3 {
		t.Errorf("bordered cards = %d, want 3", got)
	}

	first := strings.Index(out, "Ad Copy 1")
	second := strings.Index(out, "Ad Copy 2")
	third := strings.Index(out, "Creative Brief")
	if !(first < second && second < third) {
		t.Errorf("cards out of order: %d, %d, %d", first, second, third)
	}
}

func TestRenderResultWholeScore(t *testing.T) {
	res := sampleResult()
	res.PerformanceScore = 80

	out := RenderResult(res)

	if !strings.Contains(out, "Predicted Click-Through Rate (CTR): 80%") {
		t.Errorf("output missing whole-number CTR line:\n%s", out)
	}
	if strings.Contains(out, "80.00") {
		t.Errorf("score rendered with trailing zeros:\n%s", out)
	}
}

func TestRenderError(t *testing.T) {
	tests := []struct {
		name string
		msg  string
	}{
		{name: "transportMessage", msg: "network down"},
		{name: "fixedMessage", msg: "Failed to generate creative."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderError(tt.msg)

			if !strings.Contains(out, tt.msg) {
				t.Errorf("output missing message %q:\n%s", tt.msg, out)
			}
			if strings.Contains(out, "Ad Copy") {
				t.Errorf("error output contains result cards:\n%s", out)
			}
		})
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12.5, "12.5"},
		{80, "80"},
		{67.25, "67.25"},
		{99.99, "99.99"},
	}

	for _, tt := range tests {
		if got := formatScore(tt.in); got != tt.want {
			t.Errorf("formatScore(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
