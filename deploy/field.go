package deploy

import "strings"

const DefaultRPCURL = "http://localhost:8545"

type Kind int

const (
	KindString Kind = iota
	KindInt
)

// Field describes one deployment parameter and where its value may come from.
type Field struct {
	Key    string
	Env    string
	Prompt string
	// Default is shown in the prompt. It is only applied to an empty answer when
	// FallbackToDefault is set.
	Default           string
	FallbackToDefault bool
	Kind              Kind
	Secret            bool
}

func (f Field) question() string {
	if f.Default != "" {
		return f.Prompt + " (" + f.Default + ") "
	}
	return f.Prompt + " "
}

var (
	PrivateKey = Field{
		Key:    "privateKey",
		Env:    "PRIVATE_KEY",
		Prompt: "Enter deployer private key (0x-prefixed):",
		Secret: true,
	}
	EthereumRPCURL = Field{
		Key:               "ethereumRpcUrl",
		Env:               "ETH_RPC_URL",
		Prompt:            "Enter Ethereum RPC URL:",
		Default:           DefaultRPCURL,
		FallbackToDefault: true,
	}
	EtherscanAPIKey = Field{
		Key:     "ethereumEtherscanApiKey",
		Env:     "ETHERSCAN_API_KEY",
		Prompt:  "Enter Ethereum Etherscan API KEY:",
		Default: "https://etherscan.io/myaccount",
		Secret:  true,
	}
	WorldIDRouterAddress = Field{
		Key:    "worldIDRouterAddress",
		Env:    "WORLD_ID_ROUTER_ADDRESS",
		Prompt: "Enter the WorldIDRouter address:",
	}
	GroupID = Field{
		Key:    "groupId",
		Env:    "GROUP_ID",
		Prompt: "Enter WorldIDRouter group id:",
		Kind:   KindInt,
	}
	ERC20Address = Field{
		Key:    "erc20Address",
		Env:    "ERC20_ADDRESS",
		Prompt: "Enter ERC20 address:",
	}
	HolderAddress = Field{
		Key:    "holderAddress",
		Env:    "HOLDER_ADDRESS",
		Prompt: "Enter Holder Address:",
	}
	SpenderAddress = Field{
		Key:    "spenderAddress",
		Env:    "SPENDER_ADDRESS",
		Prompt: "Enter Spender Address:",
	}
	HolderPrivateKey = Field{
		Key:    "holderPrivateKey",
		Env:    "HOLDER_PRIVATE_KEY",
		Prompt: "Enter your Holder private key:",
		Secret: true,
	}
	ApprovalAmount = Field{
		Key:    "approvalAmount",
		Env:    "APPROVAL_AMOUNT",
		Prompt: "Enter the amount you want to approve:",
		Kind:   KindInt,
	}
	AllowedNullifierHashBlocker = Field{
		Key:    "allowedNullifierHashBlocker",
		Env:    "ALLOWED_NULLIFIER_HASH_BLOCKER",
		Prompt: "Enter the address of the allowed nullifier hash blocker:",
	}
	RecurringGrantDropAddress = Field{
		Key:    "recurringGrantDropAddress",
		Env:    "RECURRING_GRANT_DROP_ADDRESS",
		Prompt: "Enter the address of the recurring grant drop:",
	}
)

// Fields lists every known parameter.
func Fields() []Field {
	return []Field{
		PrivateKey,
		EthereumRPCURL,
		EtherscanAPIKey,
		WorldIDRouterAddress,
		GroupID,
		ERC20Address,
		HolderAddress,
		SpenderAddress,
		HolderPrivateKey,
		ApprovalAmount,
		AllowedNullifierHashBlocker,
		RecurringGrantDropAddress,
	}
}

// IsSecretKey reports whether values stored under key must not be shown in full.
// Keys outside the catalog are matched by their suffix.
func IsSecretKey(key string) bool {
	if f, ok := FieldByKey(key); ok && f.Secret {
		return true
	}
	return IsPrivateKeyKey(key) || strings.HasSuffix(strings.ToLower(key), "apikey")
}

// IsPrivateKeyKey reports whether key holds a private key an account can be
// derived from.
func IsPrivateKeyKey(key string) bool {
	return strings.HasSuffix(strings.ToLower(key), "privatekey")
}

// FieldByKey looks up a known parameter by its record key.
func FieldByKey(key string) (Field, bool) {
	for _, f := range Fields() {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
