package buffer

import "testing"

func TestStrategyOrdering(t *testing.T) {
	if !(StrategyMinimal < StrategyConservative &&
		StrategyConservative < StrategyBalanced &&
		StrategyBalanced < StrategyAggressive) {
		t.Error("strategies are not ordered minimal < conservative < balanced < aggressive")
	}
}

func TestStrategyForwardBufferSeconds(t *testing.T) {
	tests := []struct {
		strategy Strategy
		want     float64
	}{
		{StrategyMinimal, 2},
		{StrategyConservative, 5},
		{StrategyBalanced, 10},
		{StrategyAggressive, 30},
	}

	for _, tt := range tests {
		if got := tt.strategy.ForwardBufferSeconds(); got != tt.want {
			t.Errorf("%v.ForwardBufferSeconds() = %g, want %g", tt.strategy, got, tt.want)
		}
	}
}

func TestStrategyString(t *testing.T) {
	tests := []struct {
		strategy Strategy
		want     string
	}{
		{StrategyMinimal, "minimal"},
		{StrategyConservative, "conservative"},
		{StrategyBalanced, "balanced"},
		{StrategyAggressive, "aggressive"},
	}

	for _, tt := range tests {
		if got := tt.strategy.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	for s := StrategyMinimal; s <= StrategyAggressive; s++ {
		parsed, err := ParseStrategy(s.String())
		if err != nil {
			t.Errorf("ParseStrategy(%q) error = %v", s.String(), err)
		}
		if parsed != s {
			t.Errorf("ParseStrategy(%q) = %v, want %v", s.String(), parsed, s)
		}
	}

	if _, err := ParseStrategy("turbo"); err == nil {
		t.Error("ParseStrategy(\"turbo\") expected error, got nil")
	}
}

func TestMinStrategy(t *testing.T) {
	if got := minStrategy(StrategyMinimal, StrategyAggressive); got != StrategyMinimal {
		t.Errorf("minStrategy(minimal, aggressive) = %v, want minimal", got)
	}
	if got := minStrategy(StrategyBalanced, StrategyConservative); got != StrategyConservative {
		t.Errorf("minStrategy(balanced, conservative) = %v, want conservative", got)
	}
	if got := minStrategy(StrategyBalanced, StrategyBalanced); got != StrategyBalanced {
		t.Errorf("minStrategy(balanced, balanced) = %v, want balanced", got)
	}
}
