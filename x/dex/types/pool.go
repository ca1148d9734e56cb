package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Pool is a two-asset constant-product trading venue. Tokens are stored
// lexicographically ordered. BurnedShares counts shares retired forever:
// they back reserves like live shares do but have no owner and no
// withdrawal path.
type Pool struct {
	Id           uint64   `json:"id"`
	TokenA       string   `json:"token_a"`
	TokenB       string   `json:"token_b"`
	ReserveA     math.Int `json:"reserve_a"`
	ReserveB     math.Int `json:"reserve_b"`
	TotalShares  math.Int `json:"total_shares"`
	BurnedShares math.Int `json:"burned_shares"`
}

// NewPool creates an empty pool for the ordered token pair
func NewPool(id uint64, tokenA, tokenB string) *Pool {
	if tokenA > tokenB {
		tokenA, tokenB = tokenB, tokenA
	}
	return &Pool{
		Id:           id,
		TokenA:       tokenA,
		TokenB:       tokenB,
		ReserveA:     math.ZeroInt(),
		ReserveB:     math.ZeroInt(),
		TotalShares:  math.ZeroInt(),
		BurnedShares: math.ZeroInt(),
	}
}

// Validate checks the pool's internal consistency
func (p Pool) Validate() error {
	if p.Id == 0 {
		return ErrInvalidPoolState.Wrap("pool id cannot be zero")
	}
	if p.TokenA == "" || p.TokenB == "" {
		return ErrInvalidTokenDenom.Wrap("token denoms cannot be empty")
	}
	if p.TokenA == p.TokenB {
		return ErrSameToken.Wrapf("token %s", p.TokenA)
	}
	if p.TokenA > p.TokenB {
		return ErrInvalidPoolState.Wrapf("tokens out of order: %s > %s", p.TokenA, p.TokenB)
	}
	for name, amt := range map[string]math.Int{
		"reserve_a":     p.ReserveA,
		"reserve_b":     p.ReserveB,
		"total_shares":  p.TotalShares,
		"burned_shares": p.BurnedShares,
	} {
		if amt.IsNil() {
			return ErrInvalidPoolState.Wrapf("%s is nil", name)
		}
		if amt.IsNegative() {
			return ErrInvalidPoolState.Wrapf("%s is negative: %s", name, amt)
		}
	}
	if p.BurnedShares.GT(p.TotalShares) {
		return ErrInvalidPoolState.Wrapf("burned shares %s exceed total %s", p.BurnedShares, p.TotalShares)
	}
	// A pool with reserves must have shares backing them and vice versa.
	if p.ReserveA.IsZero() != p.ReserveB.IsZero() {
		return ErrInvalidPoolState.Wrap("one-sided reserves")
	}
	if p.ReserveA.IsZero() != p.TotalShares.IsZero() {
		return ErrInvalidPoolState.Wrap("reserves and shares disagree")
	}
	return nil
}

// HasToken reports whether denom is one of the pool's two tokens
func (p Pool) HasToken(denom string) bool {
	return denom == p.TokenA || denom == p.TokenB
}

// String implements fmt.Stringer
func (p Pool) String() string {
	return fmt.Sprintf("Pool{%d %s/%s reserves=%s/%s shares=%s burned=%s}",
		p.Id, p.TokenA, p.TokenB, p.ReserveA, p.ReserveB, p.TotalShares, p.BurnedShares)
}
