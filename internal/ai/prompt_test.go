package ai

import (
	"strings"
	"testing"
)

func defaultOptions() GenerationOptions {
	return GenerationOptions{
		Gender:           "Male",
		SuitPrompt:       "a navy blue two-button suit jacket, white shirt, and a classic navy blue tie",
		BackgroundPrompt: "a solid, professional light gray studio background",
		FramingPrompt:    "Crop to a balanced head-and-shoulders portrait (upper chest and up).",
		AnglePrompt:      "Maintain the original angle and pose of the person in the photo.",
		ExpressionPrompt: "Maintain the original facial expression.",
		RetouchingPrompt: "Apply standard professional headshot retouching.",
	}
}

func TestBuildResumePromptDeterministic(t *testing.T) {
	opts := defaultOptions()
	a := BuildResumePrompt(opts)
	b := BuildResumePrompt(opts)
	if a != b {
		t.Fatalf("identical options produced different prompts")
	}
}

func TestBuildResumePromptSections(t *testing.T) {
	opts := defaultOptions()
	got := BuildResumePrompt(opts)
	for _, want := range []string{
		opts.SuitPrompt,
		opts.BackgroundPrompt,
		opts.FramingPrompt,
		opts.AnglePrompt,
		opts.ExpressionPrompt,
		opts.RetouchingPrompt,
		"Gender of Person in Photo:** Male",
		"Generate only the edited image.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildResumePromptSpecialRequest(t *testing.T) {
	tests := []struct {
		name    string
		request string
		want    int
	}{
		{"empty", "", 0},
		{"whitespace only", "   \n\t ", 0},
		{"plain", "remove glasses glare", 1},
		{"padded", "  tidy hair  ", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			opts.SpecialRequest = tt.request
			got := BuildResumePrompt(opts)
			if n := strings.Count(got, "Special Retouching Request"); n != tt.want {
				t.Fatalf("clause count=%d want=%d", n, tt.want)
			}
			if tt.want == 1 && !strings.Contains(got, strings.TrimSpace(tt.request)) {
				t.Fatalf("trimmed request text not inserted")
			}
		})
	}
}
