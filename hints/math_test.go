package hints

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/starknet-hints/memory"
)

// addrBound is the production Starknet value, 2^251 - 256. With the stark
// prime p = 2^251 + 17·2^192 + 1 it satisfies all four precondition
// relationships.
func addrBound() *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 251), big.NewInt(256))
}

func classifierIds() map[string]Reference {
	return map[string]Reference{
		"addr":     fpRef(0),
		"is_small": fpRef(1),
		"is_250":   fpRef(1),
	}
}

func runIsSmall(t *testing.T, bound, addr *big.Int) (fp.Element, error) {
	t.Helper()
	vm := newTestVM()
	mustWriteFp(t, vm, 0, feltFromBig(addr))
	constants := map[string]fp.Element{addrBoundConstant: feltFromBig(bound)}
	err := NormalizeAddressSetIsSmall(vm, NewExecutionScopes(), classifierIds(), ApTracking{}, constants)
	if err != nil {
		return fp.Element{}, err
	}
	return readFp(t, vm, 1), nil
}

func TestSetIsSmall(t *testing.T) {
	bound := addrBound()
	one := fp.One()

	below := new(big.Int).Sub(bound, big.NewInt(1))
	got, err := runIsSmall(t, bound, below)
	require.NoError(t, err)
	assert.True(t, got.Equal(&one))

	got, err = runIsSmall(t, bound, bound)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestSetIsSmallBadBound(t *testing.T) {
	addr := big.NewInt(1)

	// above 2^251
	tooBig := new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 251), big.NewInt(1))
	_, err := runIsSmall(t, tooBig, addr)
	require.ErrorIs(t, err, ErrAssertionFailed)
	assert.ErrorContains(t, err, "normalize_address() cannot be used with the current constants")

	// in (2^250, 2^251] but below p/2, so 2·ADDR_BOUND < PRIME
	tooSmall := new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 250), big.NewInt(1))
	_, err = runIsSmall(t, tooSmall, addr)
	assert.ErrorIs(t, err, ErrAssertionFailed)

	// 2^250 exactly violates the strict lower bound
	_, err = runIsSmall(t, new(big.Int).Lsh(big.NewInt(1), 250), addr)
	assert.ErrorIs(t, err, ErrAssertionFailed)
}

func TestSetIsSmallMissingConstant(t *testing.T) {
	vm := newTestVM()
	mustWriteFp(t, vm, 0, fp.One())

	err := NormalizeAddressSetIsSmall(vm, NewExecutionScopes(), classifierIds(), ApTracking{}, nil)
	assert.ErrorIs(t, err, ErrMissingConstant)
}

func TestSetIs250(t *testing.T) {
	one := fp.One()
	threshold := new(big.Int).Lsh(big.NewInt(1), 250)

	run := func(addr *big.Int) fp.Element {
		vm := newTestVM()
		mustWriteFp(t, vm, 0, feltFromBig(addr))
		err := NormalizeAddressSetIs250(vm, NewExecutionScopes(), classifierIds(), ApTracking{}, nil)
		require.NoError(t, err)
		return readFp(t, vm, 1)
	}

	got := run(new(big.Int).Sub(threshold, big.NewInt(1)))
	assert.True(t, got.Equal(&one))

	got = run(threshold)
	assert.True(t, got.IsZero())
}

func TestSetIs250MissingAddr(t *testing.T) {
	vm := newTestVM()

	// reference exists but its cell was never written
	err := NormalizeAddressSetIs250(vm, NewExecutionScopes(), classifierIds(), ApTracking{}, nil)
	assert.ErrorIs(t, err, memory.ErrUnknownMemoryCell)

	err = NormalizeAddressSetIs250(vm, NewExecutionScopes(), map[string]Reference{}, ApTracking{}, nil)
	assert.ErrorIs(t, err, ErrUnknownIdentifier)
}
