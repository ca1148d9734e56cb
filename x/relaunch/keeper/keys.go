package keeper

// Store keys for the relaunch module. The state surface is deliberately
// tiny: one status byte, two set-once records, and the params blob.
var (
	// ParamsKey is the key for the allocation ledger
	ParamsKey = []byte{0x01}

	// StatusKey is the key for the one-shot status flag
	StatusKey = []byte{0x02}

	// SuccessorDenomKey records the deployed successor denom
	SuccessorDenomKey = []byte{0x03}

	// SuccessorAdminKey records who administers the successor denom
	SuccessorAdminKey = []byte{0x04}

	// ClaimFundedKey records the coin actually deposited into the claim fund
	ClaimFundedKey = []byte{0x05}
)
