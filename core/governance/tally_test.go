package governance

import "testing"

func TestDecayedElectorateShrinksOverTime(t *testing.T) {
	cases := []struct {
		daysOpen uint64
		want     uint64
	}{
		{0, 30_000},
		{1, 29_700},
		{2, 29_400},
		{99, 300},
		{100, 300},
		{500, 300},
	}
	for _, c := range cases {
		got := decayedElectorate(30_000, c.daysOpen)
		if got != c.want {
			t.Errorf("decayedElectorate(30000, %d) = %d, want %d", c.daysOpen, got, c.want)
		}
	}
}

func TestDecayedElectorateIsMonotonicallyNonIncreasing(t *testing.T) {
	prev := decayedElectorate(123_456, 0)
	for d := uint64(1); d <= 200; d++ {
		cur := decayedElectorate(123_456, d)
		if cur > prev {
			t.Fatalf("voting power increased from day %d to %d: %d -> %d", d-1, d, prev, cur)
		}
		prev = cur
	}
}

func TestClassifyZeroElectorateSettlesRejectedWithoutPenalty(t *testing.T) {
	got := classify(0, 0, 0, 66, 200)
	if got.status != StatusRejected {
		t.Fatalf("expected Rejected, got %s", got.status)
	}
	if got.nonControversial {
		t.Fatalf("expected controversial (no penalty) on zero tally")
	}
}

func TestClassifyApprovalAndControversyBoundaries(t *testing.T) {
	// Scenario E: majority reject, but controversial (no penalty).
	got := classify(60_000, 80_000, 140_000, 66, 200)
	if got.status != StatusRejected {
		t.Fatalf("expected Rejected, got %s", got.status)
	}
	if got.nonControversial {
		t.Fatalf("expected controversial rejection, got non-controversial")
	}

	// Scenario F: partial rejection, still approved.
	got = classify(100_000, 40_000, 140_000, 66, 200)
	if got.status != StatusExecuted {
		t.Fatalf("expected Executed, got %s", got.status)
	}
}
