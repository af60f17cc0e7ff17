// Package principal implements the canonical textual identity format used
// throughout the platform to address callers, proposers, voters, and fund
// receivers. Principals are 20-byte identities encoded as bech32 text: a
// human-readable prefix, a base32 payload, and a BCH checksum, mirroring the
// hyphen-free but CRC-protected textual addresses other platform subsystems
// already use.
package principal

import (
	"fmt"

	"github.com/btcsuite/btcutil/bech32"
)

// Prefix identifies the namespace a principal belongs to.
type Prefix string

const (
	// UserPrefix addresses a platform user account.
	UserPrefix Prefix = "usr"
	// TreasuryPrefix addresses the platform's minting treasury.
	TreasuryPrefix Prefix = "trs"
)

// Principal is an opaque 20-byte identity with a human-readable namespace
// prefix. The zero value is not a valid principal.
type Principal struct {
	prefix Prefix
	bytes  [20]byte
}

// New constructs a Principal from raw bytes, which must be exactly 20 bytes.
func New(prefix Prefix, b []byte) (Principal, error) {
	if len(b) != 20 {
		return Principal{}, fmt.Errorf("principal: identity must be 20 bytes, got %d", len(b))
	}
	var p Principal
	p.prefix = prefix
	copy(p.bytes[:], b)
	return p, nil
}

// String renders the principal in its canonical bech32 textual form.
func (p Principal) String() string {
	conv, err := bech32.ConvertBits(p.bytes[:], 8, 5, true)
	if err != nil {
		panic(err)
	}
	encoded, err := bech32.Encode(string(p.prefix), conv)
	if err != nil {
		panic(err)
	}
	return encoded
}

// Bytes returns a copy of the principal's raw identity bytes.
func (p Principal) Bytes() []byte {
	out := make([]byte, 20)
	copy(out, p.bytes[:])
	return out
}

// Prefix returns the principal's namespace prefix.
func (p Principal) Prefix() Prefix { return p.prefix }

// IsZero reports whether the principal is the unset zero value.
func (p Principal) IsZero() bool {
	return p.prefix == "" && p.bytes == [20]byte{}
}

// Equal reports whether two principals address the same identity, ignoring
// namespace prefix (a user and an account keyed by the same bytes match).
func (p Principal) Equal(other Principal) bool {
	return p.bytes == other.bytes
}

// Parse decodes a principal's canonical textual form. A parse failure is
// returned as "invalid principal <text>: " followed by the bech32 decoder's
// own error; callers in the governance core pass it on unchanged.
func Parse(text string) (Principal, error) {
	prefix, decoded, err := bech32.Decode(text)
	if err != nil {
		return Principal{}, fmt.Errorf("invalid principal %q: %w", text, err)
	}
	conv, err := bech32.ConvertBits(decoded, 5, 8, false)
	if err != nil {
		return Principal{}, fmt.Errorf("invalid principal %q: %w", text, err)
	}
	return New(Prefix(prefix), conv)
}
