package principal

import "testing"

func TestRoundTrip(t *testing.T) {
	raw := make([]byte, 20)
	for i := range raw {
		raw[i] = byte(i + 1)
	}
	p, err := New(UserPrefix, raw)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	text := p.String()

	parsed, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !parsed.Equal(p) {
		t.Fatalf("round trip mismatch: got %x, want %x", parsed.Bytes(), p.Bytes())
	}
	if parsed.Prefix() != UserPrefix {
		t.Fatalf("expected prefix %q, got %q", UserPrefix, parsed.Prefix())
	}
}

func TestNewRejectsWrongLength(t *testing.T) {
	if _, err := New(UserPrefix, []byte{1, 2, 3}); err == nil {
		t.Fatalf("expected error for short identity")
	}
}

func TestParseRejectsMalformedText(t *testing.T) {
	if _, err := Parse("not-a-principal"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestEqualIgnoresPrefix(t *testing.T) {
	raw := make([]byte, 20)
	raw[0] = 7
	a, _ := New(UserPrefix, raw)
	b, _ := New(TreasuryPrefix, raw)
	if !a.Equal(b) {
		t.Fatalf("expected principals with identical bytes to be equal regardless of prefix")
	}
}

func TestIsZero(t *testing.T) {
	var p Principal
	if !p.IsZero() {
		t.Fatalf("expected zero value to report IsZero")
	}
	raw := make([]byte, 20)
	raw[0] = 1
	nonZero, _ := New(UserPrefix, raw)
	if nonZero.IsZero() {
		t.Fatalf("expected non-zero principal to report !IsZero")
	}
}
