package types

// Event types for the claimdrop module
const (
	EventTypeDeposit   = "claimdrop_deposit"
	EventTypeClaimPaid = "claim_paid"

	AttributeKeyFunder      = "funder"
	AttributeKeyClaimant    = "claimant"
	AttributeKeyAmount      = "amount"
	AttributeKeyLegacyDenom = "legacy_denom"
	AttributeKeyRemaining   = "remaining"
)
