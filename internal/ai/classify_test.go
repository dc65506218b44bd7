package ai

import "testing"

func TestParseRating_PlainDigit(t *testing.T) {
	if got := ParseRating("4"); got != 4 {
		t.Errorf("ParseRating(%q) = %d, want 4", "4", got)
	}
}

func TestParseRating_DigitInsideProse(t *testing.T) {
	if got := ParseRating("Hodnotím tuto zprávu známkou 5, jde o průlom."); got != 5 {
		t.Errorf("got %d, want 5", got)
	}
}

func TestParseRating_FirstDigitWins(t *testing.T) {
	if got := ParseRating("3 nebo možná 4"); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}

func TestParseRating_NoDigitFallsBackToDefault(t *testing.T) {
	for _, reply := range []string{"n/a", "", "nelze hodnotit", "0 6 7"} {
		if got := ParseRating(reply); got != DefaultRating {
			t.Errorf("ParseRating(%q) = %d, want default %d", reply, got, DefaultRating)
		}
	}
}

func TestDefaultRating_BelowPromotionThreshold(t *testing.T) {
	if DefaultRating >= PromotionThreshold {
		t.Fatalf("default rating %d must stay below promotion threshold %d", DefaultRating, PromotionThreshold)
	}
}
