package deploy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parthshah1/dropwizard/config"
)

func fieldKeys(c Command) []string {
	var keys []string
	for _, f := range c.Fields() {
		keys = append(keys, f.Key)
	}
	return keys
}

func TestCommandsRequestDocumentedParameters(t *testing.T) {
	grantDrop := []string{
		"worldIDRouterAddress",
		"privateKey",
		"ethereumRpcUrl",
		"ethereumEtherscanApiKey",
		"groupId",
		"erc20Address",
		"holderAddress",
	}

	expected := map[string][]string{
		"deploy-airdrop":                     grantDrop,
		"deploy-airdrop-reservations":        append(append([]string{}, grantDrop...), "recurringGrantDropAddress"),
		"set-allowance-max":                  {"erc20Address", "spenderAddress", "holderPrivateKey"},
		"set-allowance":                      {"erc20Address", "spenderAddress", "holderPrivateKey", "approvalAmount"},
		"add-allowed-nullifier-hash-blocker": {"privateKey", "allowedNullifierHashBlocker", "recurringGrantDropAddress"},
		"deploy-wld-grant-pre-grant-4-new":   {"privateKey"},
	}

	commands := Commands()
	require.Len(t, commands, len(expected))

	for _, c := range commands {
		t.Run(c.Name, func(t *testing.T) {
			want, ok := expected[c.Name]
			require.True(t, ok, "unexpected command %s", c.Name)
			assert.Equal(t, want, fieldKeys(c))
			assert.NotEmpty(t, c.Usage)
			assert.NotEmpty(t, c.Script.Path)
			assert.NotEmpty(t, c.Script.Contract)
		})
	}
}

func TestGrantDropCheckpoints(t *testing.T) {
	c, ok := Lookup("deploy-airdrop")
	require.True(t, ok)

	var saves []int
	for i, step := range c.Steps {
		if step.Save {
			saves = append(saves, i)
		}
	}
	assert.Equal(t, []int{4, 8}, saves)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("deploy-everything")
	assert.False(t, ok)
}

func TestScriptArgs(t *testing.T) {
	verified := Script{Path: "script/RecurringGrantDrop.s.sol", Contract: "DeployRecurringGrantDrop", Verify: true}
	assert.Equal(t, []string{
		"script", "script/RecurringGrantDrop.s.sol:DeployRecurringGrantDrop",
		"--fork-url", "${ethereumRpcUrl}",
		"--etherscan-api-key", "${ethereumEtherscanApiKey}",
		"--broadcast", "--verify", "-vvvv",
	}, verified.Args())

	plain := Script{Path: "script/utils/SetAllowanceERC20.s.sol", Contract: "SetAllowanceERC20"}
	assert.Equal(t, []string{
		"script", "script/utils/SetAllowanceERC20.s.sol:SetAllowanceERC20",
		"--fork-url", "${ethereumRpcUrl}",
		"--broadcast", "-vvvv",
	}, plain.Args())
}

func TestRender(t *testing.T) {
	rec := config.Record{
		"holderAddress": "0xholder",
		"groupId":       int64(1),
	}

	assert.Equal(t, "Allowance set for 0xholder!", Render("Allowance set for ${holderAddress}!", rec))
	assert.Equal(t, "group 1", Render("group ${groupId}", rec))
	assert.Equal(t, "rpc: ", Render("rpc: ${ethereumRpcUrl}", rec))
	assert.Equal(t, "no placeholders", Render("no placeholders", rec))
	assert.Equal(t, []string{"--fork-url", ""}, RenderArgs([]string{"--fork-url", "${ethereumRpcUrl}"}, rec))
}

func TestFieldByKey(t *testing.T) {
	f, ok := FieldByKey("holderPrivateKey")
	require.True(t, ok)
	assert.Equal(t, "HOLDER_PRIVATE_KEY", f.Env)
	assert.True(t, f.Secret)

	_, ok = FieldByKey("staging")
	assert.False(t, ok)
}

func TestIsSecretKey(t *testing.T) {
	tests := []struct {
		key      string
		expected bool
	}{
		{"privateKey", true},
		{"holderPrivateKey", true},
		{"ethereumEtherscanApiKey", true},
		{"fooPrivateKey", true},
		{"legacyApiKey", true},
		{"ethereumRpcUrl", false},
		{"holderAddress", false},
		{"groupId", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSecretKey(tt.key))
		})
	}

	assert.True(t, IsPrivateKeyKey("fooPrivateKey"))
	assert.False(t, IsPrivateKeyKey("legacyApiKey"))
}

func TestExportEnv(t *testing.T) {
	rec := config.Record{
		"privateKey":     "0xkey",
		"groupId":        int64(3),
		"erc20Address":   "",
		"somethingStale": "x",
	}

	assert.Equal(t, map[string]string{
		"PRIVATE_KEY": "0xkey",
		"GROUP_ID":    "3",
	}, ExportEnv(rec))
}
