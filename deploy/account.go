package deploy

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/filecoin-project/go-address"
)

// eamActorID is the Ethereum Address Manager actor that owns f410 addresses.
const eamActorID = 10

// Account is the address controlled by a private key, in both EVM and Filecoin form.
type Account struct {
	Address   common.Address
	Delegated address.Address
}

// DeriveAccount computes the account for a hex private key. It is only used for
// display; callers must not treat an error as a reason to stop.
func DeriveAccount(privateKey string) (*Account, error) {
	privateKeyBytes, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(privateKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid hex format: %w", err)
	}

	if len(privateKeyBytes) != 32 {
		return nil, fmt.Errorf("invalid private key length: got %d bytes, want 32 bytes", len(privateKeyBytes))
	}

	key, err := crypto.ToECDSA(privateKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	addr := crypto.PubkeyToAddress(key.PublicKey)
	delegated, err := address.NewDelegatedAddress(eamActorID, addr.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to create delegated address: %w", err)
	}

	return &Account{Address: addr, Delegated: delegated}, nil
}

// Mask hides all but the edges of a secret.
func Mask(secret string) string {
	if len(secret) <= 10 {
		return strings.Repeat("*", len(secret))
	}
	return secret[:6] + "..." + secret[len(secret)-4:]
}
