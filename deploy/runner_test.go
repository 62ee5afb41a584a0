package deploy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parthshah1/dropwizard/config"
	"github.com/parthshah1/dropwizard/forge"
	"github.com/parthshah1/dropwizard/prompt"
)

type fakeExecutor struct {
	calls []forge.Invocation
	// persisted is the config file content at the time of each call.
	persisted []map[string]any
	path      string
	result    forge.Result
	err       error
}

func (f *fakeExecutor) Run(_ context.Context, inv forge.Invocation) (forge.Result, error) {
	f.calls = append(f.calls, inv)
	if f.path != "" {
		f.persisted = append(f.persisted, readPersisted(nil, f.path))
	}
	return f.result, f.err
}

func readPersisted(t *testing.T, path string) map[string]any {
	data, err := os.ReadFile(path)
	if t != nil {
		require.NoError(t, err)
	}
	var out map[string]any
	_ = json.Unmarshal(data, &out)
	return out
}

// clearFieldEnv keeps the developer's environment out of the tests.
func clearFieldEnv(t *testing.T) {
	t.Helper()
	for _, f := range Fields() {
		t.Setenv(f.Env, "")
	}
}

func newTestRunner(t *testing.T, p prompt.Prompter, exec Executor) (*Runner, *config.Store, *bytes.Buffer) {
	t.Helper()
	clearFieldEnv(t)
	store := config.NewStore(filepath.Join(t.TempDir(), "script", ".deploy-config.json"), nil)
	var out bytes.Buffer
	return NewRunner(store, p, exec, &out, nil), store, &out
}

var airdropAnswers = []string{
	"n",
	"0x163b09b4fE21177c455D850BD815B6D583732432",
	"0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
	"https://eth-mainnet.example/v2/key",
	"ETHERSCANKEY",
	"1",
	"0x163f8C2467924be0ae7B5347228CABF260318753",
	"0x86a7e1d0ee0e7a3a5f4f7c0f7b0e4c6b2e7c6d5e",
}

func TestDeployAirdropEndToEnd(t *testing.T) {
	p := &scriptedPrompter{answers: append([]string{}, airdropAnswers...)}
	exec := &fakeExecutor{result: forge.Result{Stdout: "Script ran successfully.\n"}}
	runner, store, out := newTestRunner(t, p, exec)
	exec.path = store.Path()

	cmd, ok := Lookup("deploy-airdrop")
	require.True(t, ok)

	outcome, err := runner.Run(context.Background(), cmd, nil)
	require.NoError(t, err)
	assert.True(t, outcome.Succeeded)
	assert.Contains(t, out.String(), "Script ran successfully.")

	assert.Equal(t, []string{
		"Do you want to load configuration from prior runs? [Y/n]: ",
		"Enter the WorldIDRouter address: ",
		"Enter deployer private key (0x-prefixed): ",
		"Enter Ethereum RPC URL: (http://localhost:8545) ",
		"Enter Ethereum Etherscan API KEY: (https://etherscan.io/myaccount) ",
		"Enter WorldIDRouter group id: ",
		"Enter ERC20 address: ",
		"Enter Holder Address: ",
	}, p.asked)

	expected := map[string]any{
		"worldIDRouterAddress":    airdropAnswers[1],
		"privateKey":              airdropAnswers[2],
		"ethereumRpcUrl":          airdropAnswers[3],
		"ethereumEtherscanApiKey": airdropAnswers[4],
		"groupId":                 float64(1),
		"erc20Address":            airdropAnswers[6],
		"holderAddress":           airdropAnswers[7],
	}
	assert.Equal(t, expected, readPersisted(t, store.Path()))

	require.Len(t, exec.calls, 1)
	assert.Equal(t, []string{
		"script", "script/RecurringGrantDrop.s.sol:DeployRecurringGrantDrop",
		"--fork-url", airdropAnswers[3],
		"--etherscan-api-key", airdropAnswers[4],
		"--broadcast", "--verify", "-vvvv",
	}, exec.calls[0].Args)
	assert.Equal(t, airdropAnswers[2], exec.calls[0].Env["PRIVATE_KEY"])
	assert.Equal(t, "1", exec.calls[0].Env["GROUP_ID"])
	assert.ElementsMatch(t, []string{airdropAnswers[2], airdropAnswers[4]}, exec.calls[0].Secrets)

	// Everything is on disk before forge starts.
	assert.Equal(t, expected, exec.persisted[0])
}

func TestFailedForgeRunIsNotAnError(t *testing.T) {
	p := &scriptedPrompter{answers: append([]string{}, airdropAnswers...)}
	exec := &fakeExecutor{
		result: forge.Result{Stdout: "partial", Stderr: "revert", ExitCode: 1},
		err:    errors.New("forge exited with code 1: revert"),
	}
	runner, store, out := newTestRunner(t, p, exec)
	exec.path = store.Path()

	cmd, _ := Lookup("deploy-airdrop")
	outcome, err := runner.Run(context.Background(), cmd, nil)
	require.NoError(t, err)

	assert.False(t, outcome.Succeeded)
	assert.Error(t, outcome.Err)
	assert.Equal(t, 1, outcome.Result.ExitCode)
	assert.Contains(t, out.String(), "partial")

	assert.Equal(t, exec.persisted[0], readPersisted(t, store.Path()))
}

func TestPersistedValuesAreNotAskedAgain(t *testing.T) {
	p := &scriptedPrompter{answers: []string{"y", "0xspender"}}
	exec := &fakeExecutor{}
	runner, store, _ := newTestRunner(t, p, exec)

	require.NoError(t, store.Save(config.Record{
		"erc20Address":     "0xtoken",
		"holderPrivateKey": "0xholderkey",
		"holderAddress":    "0xholder",
		"ethereumRpcUrl":   "http://node:8545",
		"unrelated":        "kept",
	}))

	cmd, _ := Lookup("set-allowance-max")
	outcome, err := runner.Run(context.Background(), cmd, nil)
	require.NoError(t, err)
	assert.True(t, outcome.Succeeded)

	assert.Equal(t, []string{
		"Do you want to load configuration from prior runs? [Y/n]: ",
		"Enter Spender Address: ",
	}, p.asked)

	require.Len(t, exec.calls, 1)
	assert.Equal(t, []string{
		"script", "script/utils/SetAllowanceERC20_max.s.sol:SetAllowanceERC20Max",
		"--fork-url", "http://node:8545",
		"--broadcast", "-vvvv",
	}, exec.calls[0].Args)

	persisted := readPersisted(t, store.Path())
	assert.Equal(t, "0xspender", persisted["spenderAddress"])
	assert.Equal(t, "kept", persisted["unrelated"])
}

func TestEnvironmentValuesSkipPrompts(t *testing.T) {
	p := &scriptedPrompter{}
	exec := &fakeExecutor{}
	runner, _, _ := newTestRunner(t, p, exec)
	t.Setenv("PRIVATE_KEY", "0xenvkey")

	cmd, _ := Lookup("deploy-wld-grant-pre-grant-4-new")
	use := false
	outcome, err := runner.Run(context.Background(), cmd, &use)
	require.NoError(t, err)
	assert.True(t, outcome.Succeeded)
	assert.Empty(t, p.asked)

	require.Len(t, exec.calls, 1)
	// The RPC URL and Etherscan key were never collected and render empty.
	assert.Equal(t, []string{
		"script", "script/WLDGrantPreGrant4_new.s.sol:DeployWLDGrantPreGrant4_new",
		"--fork-url", "",
		"--etherscan-api-key", "",
		"--broadcast", "--verify", "-vvvv",
	}, exec.calls[0].Args)
}

func TestAbortKeepsLastCheckpoint(t *testing.T) {
	p := &scriptedPrompter{
		answers: airdropAnswers[:5],
		err:     prompt.ErrAborted,
	}
	exec := &fakeExecutor{}
	runner, store, _ := newTestRunner(t, p, exec)

	cmd, _ := Lookup("deploy-airdrop")
	_, err := runner.Run(context.Background(), cmd, nil)
	require.ErrorIs(t, err, prompt.ErrAborted)
	assert.Empty(t, exec.calls)

	assert.Equal(t, map[string]any{
		"worldIDRouterAddress":    airdropAnswers[1],
		"privateKey":              airdropAnswers[2],
		"ethereumRpcUrl":          airdropAnswers[3],
		"ethereumEtherscanApiKey": airdropAnswers[4],
	}, readPersisted(t, store.Path()))
}
