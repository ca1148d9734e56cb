package types

// Event types for the DEX module
const (
	EventTypePoolCreated     = "dex_pool_created"
	EventTypeAddLiquidity    = "dex_add_liquidity"
	EventTypeRemoveLiquidity = "dex_remove_liquidity"
	EventTypeSharesBurned    = "dex_shares_burned"
	EventTypeSwap            = "dex_swap"

	AttributeKeyPoolID    = "pool_id"
	AttributeKeyTokenA    = "token_a"
	AttributeKeyTokenB    = "token_b"
	AttributeKeyAmountA   = "amount_a"
	AttributeKeyAmountB   = "amount_b"
	AttributeKeyProvider  = "provider"
	AttributeKeyShares    = "shares"
	AttributeKeyTrader    = "trader"
	AttributeKeyTokenIn   = "token_in"
	AttributeKeyTokenOut  = "token_out"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
)
