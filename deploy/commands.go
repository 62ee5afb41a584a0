package deploy

// grantDropSteps collects the deployer settings and the RecurringGrantDrop
// constructor parameters.
func grantDropSteps() []Step {
	return []Step{
		Ask(WorldIDRouterAddress),
		Ask(PrivateKey),
		Ask(EthereumRPCURL),
		Ask(EtherscanAPIKey),
		Checkpoint(),
		Ask(GroupID),
		Ask(ERC20Address),
		Ask(HolderAddress),
		Checkpoint(),
	}
}

// Commands returns the command catalog.
func Commands() []Command {
	return []Command{
		{
			Name:  "deploy-airdrop",
			Usage: "Interactively deploys the RecurringGrantDrop contracts.",
			Steps: grantDropSteps(),
			Script: Script{
				Path:     "script/RecurringGrantDrop.s.sol",
				Contract: "DeployRecurringGrantDrop",
				Verify:   true,
			},
			Running: "Deploying RecurringGrantDrop contract...",
			Success: "Deployed RecurringGrantDrop contract successfully!",
			Failure: "Deployment of RecurringGrantDrop has failed.",
		},
		{
			Name:  "deploy-airdrop-reservations",
			Usage: "Interactively deploys the RecurringGrantDropReservations contracts.",
			Steps: append(grantDropSteps(), Ask(RecurringGrantDropAddress)),
			Script: Script{
				Path:     "script/RecurringGrantDropReservations.s.sol",
				Contract: "DeployRecurringGrantDropReservations",
				Verify:   true,
			},
			Running: "Deploying RecurringGrantDropReservations contract...",
			Success: "Deployed RecurringGrantDropReservations contract successfully!",
			Failure: "Deployment of RecurringGrantDropReservations has failed.",
		},
		{
			Name:  "set-allowance-max",
			Usage: "Sets ERC20 token allowance of the holder address to the max amount.",
			Steps: []Step{
				Ask(ERC20Address),
				Ask(SpenderAddress),
				Ask(HolderPrivateKey),
				Checkpoint(),
			},
			Script: Script{
				Path:     "script/utils/SetAllowanceERC20_max.s.sol",
				Contract: "SetAllowanceERC20Max",
			},
			Running: "Setting allowance...",
			Success: "Allowance set for ${holderAddress}!",
			Failure: "Setting allowance for ${holderAddress} failed.",
		},
		{
			Name:  "set-allowance",
			Usage: "Sets ERC20 token allowance of the holder address to the specified amount.",
			Steps: []Step{
				Ask(ERC20Address),
				Ask(SpenderAddress),
				Ask(HolderPrivateKey),
				Ask(ApprovalAmount),
				Checkpoint(),
			},
			Script: Script{
				Path:     "script/utils/SetAllowanceERC20.s.sol",
				Contract: "SetAllowanceERC20",
			},
			Running: "Setting allowance...",
			Success: "Allowance set for ${holderAddress}!",
			Failure: "Setting allowance for ${holderAddress} failed.",
		},
		{
			Name:  "add-allowed-nullifier-hash-blocker",
			Usage: "Adds an allowed nullifier hash blocker to the RecurringGrantDrop contract.",
			Steps: []Step{
				Ask(PrivateKey),
				Ask(AllowedNullifierHashBlocker),
				Ask(RecurringGrantDropAddress),
				Checkpoint(),
			},
			Script: Script{
				Path:     "script/utils/AddAllowedNullifierHashBlocker.s.sol",
				Contract: "AddAllowedNullifierHashBlocker",
			},
			Running: "Adding allowed nullifier hash blocker...",
			Success: "Allowed nullifier hash blocker set for ${recurringGrantDropAddress}!",
			Failure: "Adding allowed nullifier hash blocker for ${recurringGrantDropAddress} failed.",
		},
		{
			Name:  "deploy-wld-grant-pre-grant-4-new",
			Usage: "Deploys the WLDGrantPreGrant4_new contract",
			Steps: []Step{
				Ask(PrivateKey),
			},
			Script: Script{
				Path:     "script/WLDGrantPreGrant4_new.s.sol",
				Contract: "DeployWLDGrantPreGrant4_new",
				Verify:   true,
			},
			Running: "Deploying WLDGrantPreGrant4_new contract...",
			Success: "Deployed WLDGrantPreGrant4_new contract successfully!",
			Failure: "Deployment of WLDGrantPreGrant4_new has failed.",
		},
	}
}

// Lookup finds a command by name.
func Lookup(name string) (Command, bool) {
	for _, c := range Commands() {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}
