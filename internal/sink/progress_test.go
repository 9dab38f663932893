package sink

import "testing"

func TestProgressReporter(t *testing.T) {
	p := NewProgressReporter("orders", 250, 100)

	steps := []struct {
		add    int64
		logged bool
	}{
		{50, false},
		{49, false},
		{1, true},
		{120, true},
		{30, false},
	}
	for i, s := range steps {
		if got := p.Update(s.add); got != s.logged {
			t.Errorf("Step %d: expected logged=%v, got %v", i, s.logged, got)
		}
	}
	if p.Rows() != 250 {
		t.Errorf("Expected 250 rows, got %d", p.Rows())
	}
	p.Done()
}

func TestProgressReporterDefaultInterval(t *testing.T) {
	p := NewProgressReporter("orders", 10, 0)
	if p.progressInterval != DefaultBatchConfig().ProgressInterval {
		t.Errorf("Expected default interval, got %d", p.progressInterval)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{512, "512 B"},
		{2048, "2.00 KB"},
		{5 * 1024 * 1024, "5.00 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}
	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d): expected %q, got %q", tt.bytes, tt.want, got)
		}
	}
}
