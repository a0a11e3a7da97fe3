// Package keys validates user-supplied private keys and derives provisional
// account identities from them. Key material only ever lives in a Material
// value on the calling operation's stack.
package keys

import (
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/alvinthemax/hedera-wallet/internal/models"
	"github.com/alvinthemax/hedera-wallet/internal/wallet"
)

// derPrefix is shared by the DER serializations of the supported key family.
const derPrefix = "302"

// Material is a parsed private key and its public counterpart.
type Material struct {
	Private hedera.PrivateKey
	Public  hedera.PublicKey
}

// Validate parses a raw private key string. It reports MalformedKey when the
// string is empty or unparseable and UnsupportedKeyFormat when it parses but
// its serialized form does not carry the expected key-family prefix.
func Validate(raw string) (Material, error) {
	if strings.TrimSpace(raw) == "" {
		return Material{}, wallet.NewError(wallet.MalformedKey)
	}
	pk, err := hedera.PrivateKeyFromString(raw)
	if err != nil {
		return Material{}, wallet.NewError(wallet.MalformedKey).WithDetails(err.Error())
	}
	if !strings.HasPrefix(pk.String(), derPrefix) {
		return Material{}, wallet.NewError(wallet.UnsupportedKeyFormat)
	}
	return Material{Private: pk, Public: pk.PublicKey()}, nil
}

// ProvisionalIdentity derives the placeholder identity for a key that has no
// ledger-confirmed account number yet: shard 0, realm 0, aliased by the
// public key. Callers must treat it as a fallback and prefer an identity
// returned by a successful ledger lookup.
func (m Material) ProvisionalIdentity() models.AccountIdentity {
	return models.AccountIdentity{
		Shard:       0,
		Realm:       0,
		AliasKey:    m.Public.String(),
		Provisional: true,
	}
}

// Mask shortens a key for display: first and last visible characters around
// an ellipsis. Inputs short enough to have nothing to hide pass through
// unchanged. Display only, never a security boundary.
func Mask(raw string, visible int) string {
	if visible <= 0 {
		visible = 4
	}
	if len(raw) <= visible*2 {
		return raw
	}
	return raw[:visible] + "..." + raw[len(raw)-visible:]
}
