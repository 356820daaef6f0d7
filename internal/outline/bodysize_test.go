package outline

import "testing"

func sized(text string, size float64) Line {
	return Line{
		Text: text,
		Runs: []Run{{Text: text, Size: size, Font: "Times-Roman"}},
		BBox: BBox{72, 100, 400, 100 + size},
		Page: 1,
	}
}

func TestBodySize_MostCommonRoundedSize(t *testing.T) {
	lines := []Line{
		sized("first paragraph", 12.2),
		sized("second paragraph", 11.8),
		sized("a heading", 18),
		sized("third paragraph", 12.4),
	}
	if got := BodySize(lines, DefaultConfig()); got != 12.0 {
		t.Errorf("expected body size 12, got %v", got)
	}
}

func TestBodySize_OnlyFirstRunCounts(t *testing.T) {
	lines := []Line{
		{Text: "mixed", Runs: []Run{{Text: "mixed", Size: 14}, {Text: "tail", Size: 9}}, Page: 1},
		{Text: "plain", Runs: []Run{{Text: "plain", Size: 14}}, Page: 1},
	}
	if got := BodySize(lines, DefaultConfig()); got != 14.0 {
		t.Errorf("expected body size 14, got %v", got)
	}
}

func TestBodySize_TieKeepsFirstToReachCount(t *testing.T) {
	tests := []struct {
		name  string
		sizes []float64
		want  float64
	}{
		{"later value completes first", []float64{10, 14, 14, 10}, 14},
		{"earlier value completes first", []float64{10, 10, 14, 14}, 10},
	}
	for _, tt := range tests {
		var lines []Line
		for _, s := range tt.sizes {
			lines = append(lines, sized("text", s))
		}
		if got := BodySize(lines, DefaultConfig()); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestBodySize_DefaultWhenNoSizes(t *testing.T) {
	if got := BodySize(nil, DefaultConfig()); got != 12.0 {
		t.Errorf("expected default 12, got %v", got)
	}

	runless := []Line{{Text: "no runs", Page: 1}}
	if got := BodySize(runless, DefaultConfig()); got != 12.0 {
		t.Errorf("expected default 12 for runless lines, got %v", got)
	}

	cfg := DefaultConfig()
	cfg.DefaultBodySize = 9.5
	if got := BodySize(nil, cfg); got != 9.5 {
		t.Errorf("expected configured default 9.5, got %v", got)
	}
}
