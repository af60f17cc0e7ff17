package governance

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestValidateReleaseComputesHash(t *testing.T) {
	r := Release{Commit: "abc123", Binary: []byte("binary-payload")}
	if err := validateRelease(&r); err != nil {
		t.Fatalf("validateRelease: %v", err)
	}
	sum := sha256.Sum256([]byte("binary-payload"))
	if r.Hash != hex.EncodeToString(sum[:]) {
		t.Fatalf("hash mismatch: got %s", r.Hash)
	}
}

func TestValidateReleaseRejectsEmptyFields(t *testing.T) {
	if err := validateRelease(&Release{Binary: []byte{1}}); err != ErrCommitNotSpecified {
		t.Fatalf("expected ErrCommitNotSpecified, got %v", err)
	}
	if err := validateRelease(&Release{Commit: "abc"}); err != ErrBinaryMissing {
		t.Fatalf("expected ErrBinaryMissing, got %v", err)
	}
}

func TestValidateFundRejectsOverCap(t *testing.T) {
	cfg := Config{TokenDecimals: 2, MaxFundingAmount: 100_00}
	receiver := testPrincipal(t, 9)
	f := Fund{Receiver: receiver.String(), Tokens: 200_00}
	if err := validateFund(&f, cfg, 1); err == nil {
		t.Fatalf("expected funding cap error")
	}
}

func TestValidateFundAcceptsWithinCap(t *testing.T) {
	cfg := Config{TokenDecimals: 2, MaxFundingAmount: 100_00}
	receiver := testPrincipal(t, 9)
	f := Fund{Receiver: receiver.String(), Tokens: 50_00}
	if err := validateFund(&f, cfg, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
