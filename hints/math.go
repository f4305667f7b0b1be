package hints

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// addrBoundConstant is the fully qualified path of the storage address
// bound in compiled Starknet programs.
const addrBoundConstant = "starkware.starknet.common.storage.ADDR_BOUND"

var (
	pow250 = new(big.Int).Lsh(big.NewInt(1), 250)
	pow251 = new(big.Int).Lsh(big.NewInt(1), 251)
)

// NormalizeAddressSetIsSmall writes is_small = 1 if addr < ADDR_BOUND else
// 0. ADDR_BOUND comes from the program's constants and could have been
// miscompiled, so the relationships that make the classification meaningful
// are re-checked on every call: 2^250 < ADDR_BOUND <= 2^251 and
// 2·2^250 < PRIME < 2·ADDR_BOUND.
func NormalizeAddressSetIsSmall(vm *VirtualMachine, _ *ExecutionScopes, ids map[string]Reference, apTracking ApTracking, constants map[string]fp.Element) error {
	boundFelt, ok := constants[addrBoundConstant]
	if !ok {
		return fmt.Errorf("%w: ADDR_BOUND", ErrMissingConstant)
	}
	var addrBound big.Int
	boundFelt.BigInt(&addrBound)

	addrFelt, err := feltFromVarName("addr", vm, ids, apTracking)
	if err != nil {
		return err
	}
	var addr big.Int
	addrFelt.BigInt(&addr)

	prime := fp.Modulus()
	if !(addrBound.Cmp(pow250) > 0 &&
		addrBound.Cmp(pow251) <= 0 &&
		prime.Cmp(new(big.Int).Lsh(pow250, 1)) > 0 &&
		prime.Cmp(new(big.Int).Lsh(&addrBound, 1)) < 0) {
		return fmt.Errorf("%w: assert (2**250 < %s <= 2**251) and (2 * 2**250 < PRIME) and (%s * 2 > PRIME); "+
			"normalize_address() cannot be used with the current constants.",
			ErrAssertionFailed, addrBound.String(), addrBound.String())
	}

	var isSmall fp.Element
	if addr.Cmp(&addrBound) < 0 {
		isSmall.SetOne()
	}
	return insertFromVarName("is_small", isSmall, vm, ids, apTracking)
}

// NormalizeAddressSetIs250 writes is_250 = 1 if addr < 2^250 else 0. The
// threshold is a fixed invariant of the address encoding, so unlike
// NormalizeAddressSetIsSmall there is nothing to validate.
func NormalizeAddressSetIs250(vm *VirtualMachine, _ *ExecutionScopes, ids map[string]Reference, apTracking ApTracking, _ map[string]fp.Element) error {
	addrFelt, err := feltFromVarName("addr", vm, ids, apTracking)
	if err != nil {
		return err
	}
	var addr big.Int
	addrFelt.BigInt(&addr)

	var is250 fp.Element
	if addr.Cmp(pow250) < 0 {
		is250.SetOne()
	}
	return insertFromVarName("is_250", is250, vm, ids, apTracking)
}
