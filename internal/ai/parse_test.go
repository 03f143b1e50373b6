package ai

import "testing"

func TestParseSuitability(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantScore int
		wantHints int
		wantErr   bool
	}{
		{"strict envelope", "$85$", 85, 0, false},
		{"envelope with hints", "$40$\n조명이 어둡습니다.\n정면을 바라봐 주세요.", 40, 2, false},
		{"fallback bare number", "score: 72\n이마가 가려져 있습니다.", 72, 1, false},
		{"clamped above 100", "$120$", 100, 0, false},
		{"no number", "nothing useful here", 0, 0, true},
		{"hint cap at three", "$10$\na\nb\nc\nd", 10, 3, false},
		{"bullet hints trimmed", "$55$\n- 안경 반사를 제거하세요.", 55, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, hints, err := ParseSuitability(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if score != tt.wantScore {
				t.Fatalf("score=%d want=%d", score, tt.wantScore)
			}
			if len(hints) != tt.wantHints {
				t.Fatalf("hints=%d want=%d (%v)", len(hints), tt.wantHints, hints)
			}
		})
	}
}

func TestParseSuitabilityHintsExcludeScoreLine(t *testing.T) {
	_, hints, err := ParseSuitability("$77$\n머리를 정리해 주세요.")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, h := range hints {
		if h == "$77$" {
			t.Fatalf("score line leaked into hints: %v", hints)
		}
	}
}
