package keys

import (
	"errors"
	"testing"

	"github.com/alvinthemax/hedera-wallet/internal/wallet"
)

// DER-encoded ed25519 private key; parses offline, never funded anywhere.
const testKey = "302e020100300506032b657004220420e5e05f31a3b0ea80c92fe18ed0e01c117bb6f0d9dad18e84502906ff06bf8ee6"

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantKind wallet.Kind
	}{
		{name: "valid ed25519 key", raw: testKey},
		{name: "empty", raw: "", wantKind: wallet.MalformedKey},
		{name: "whitespace only", raw: "   ", wantKind: wallet.MalformedKey},
		{name: "garbage", raw: "not-a-key", wantKind: wallet.MalformedKey},
		{name: "truncated hex", raw: "302e0201", wantKind: wallet.MalformedKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			material, err := Validate(tt.raw)
			if tt.wantKind == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if material.Public.String() == "" {
					t.Error("expected a derived public key")
				}
				return
			}
			var typed *wallet.Error
			if !errors.As(err, &typed) {
				t.Fatalf("expected a typed error, got %v", err)
			}
			if typed.Kind != tt.wantKind {
				t.Errorf("kind = %s, want %s", typed.Kind, tt.wantKind)
			}
		})
	}
}

func TestProvisionalIdentity(t *testing.T) {
	material, err := Validate(testKey)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	id := material.ProvisionalIdentity()
	if id.Shard != 0 || id.Realm != 0 {
		t.Errorf("provisional identity must live in shard 0 realm 0, got %d.%d", id.Shard, id.Realm)
	}
	if !id.Provisional {
		t.Error("derived identity must be flagged provisional")
	}
	if id.AliasKey != material.Public.String() {
		t.Error("alias must be the public key")
	}
	// Deterministic: same key, same identity.
	again, _ := Validate(testKey)
	if again.ProvisionalIdentity() != id {
		t.Error("derivation is not deterministic")
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		visible int
		want    string
	}{
		{name: "long key", raw: "302e020100300506", visible: 4, want: "302e...0506"},
		{name: "exactly double visible", raw: "12345678", visible: 4, want: "12345678"},
		{name: "shorter than double visible", raw: "1234567", visible: 4, want: "1234567"},
		{name: "empty", raw: "", visible: 4, want: ""},
		{name: "zero visible falls back to four", raw: "abcdefghijkl", visible: 0, want: "abcd...ijkl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mask(tt.raw, tt.visible); got != tt.want {
				t.Errorf("Mask(%q, %d) = %q, want %q", tt.raw, tt.visible, got, tt.want)
			}
		})
	}
}
