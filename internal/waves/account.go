package waves

import (
	"fmt"

	"github.com/wavesplatform/gowaves/pkg/crypto"
	"github.com/wavesplatform/gowaves/pkg/proto"
)

// Account wraps the trading key pair and the address derived from it.
type Account struct {
	Scheme    proto.Scheme
	SecretKey crypto.SecretKey
	PublicKey crypto.PublicKey
	Address   proto.WavesAddress
}

// NewAccount derives the key pair and address from a base58 private key.
func NewAccount(privateKey string, scheme proto.Scheme) (*Account, error) {
	sk, err := crypto.NewSecretKeyFromBase58(privateKey)
	if err != nil {
		return nil, fmt.Errorf("private key: %w", err)
	}
	pk := crypto.GeneratePublicKey(sk)
	addr, err := proto.NewAddressFromPublicKey(scheme, pk)
	if err != nil {
		return nil, fmt.Errorf("derive address: %w", err)
	}
	return &Account{Scheme: scheme, SecretKey: sk, PublicKey: pk, Address: addr}, nil
}
