package types

// Event types for the relaunch module
const (
	EventTypeRelaunchCompleted = "relaunch_completed"
	EventTypeSuccessorDeployed = "successor_deployed"
	EventTypeClaimFunded       = "claim_funded"

	AttributeKeySuccessorDenom = "successor_denom"
	AttributeKeyLegacyDenom    = "legacy_denom"
	AttributeKeyPoolID         = "pool_id"
	AttributeKeyPoolCreated    = "pool_created"
	AttributeKeyTotalSupply    = "total_supply"
	AttributeKeyAirdropAmount  = "airdrop_amount"
	AttributeKeyPoolTokens     = "pool_tokens"
	AttributeKeyPoolBase       = "pool_base"
	AttributeKeyBurnedShares   = "burned_shares"
)
