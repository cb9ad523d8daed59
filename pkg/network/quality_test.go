package network

import "testing"

func TestQualityOrdering(t *testing.T) {
	if !(QualityPoor < QualityModerate && QualityModerate < QualityGood && QualityGood < QualityExcellent) {
		t.Error("quality levels are not ordered poor < moderate < good < excellent")
	}
}

func TestQualityString(t *testing.T) {
	tests := []struct {
		quality Quality
		want    string
	}{
		{QualityPoor, "poor"},
		{QualityModerate, "moderate"},
		{QualityGood, "good"},
		{QualityExcellent, "excellent"},
	}

	for _, tt := range tests {
		if got := tt.quality.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestQualityIsValid(t *testing.T) {
	for q := QualityPoor; q <= QualityExcellent; q++ {
		if !q.IsValid() {
			t.Errorf("%v.IsValid() = false, want true", q)
		}
	}

	if Quality(-1).IsValid() {
		t.Error("Quality(-1).IsValid() = true, want false")
	}
	if Quality(4).IsValid() {
		t.Error("Quality(4).IsValid() = true, want false")
	}
}

func TestParseQuality(t *testing.T) {
	for q := QualityPoor; q <= QualityExcellent; q++ {
		parsed, err := ParseQuality(q.String())
		if err != nil {
			t.Errorf("ParseQuality(%q) error = %v", q.String(), err)
		}
		if parsed != q {
			t.Errorf("ParseQuality(%q) = %v, want %v", q.String(), parsed, q)
		}
	}

	if _, err := ParseQuality("terrible"); err == nil {
		t.Error("ParseQuality(\"terrible\") expected error, got nil")
	}
}
