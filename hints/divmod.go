package hints

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// uint256OffsetedUnsignedDivRem computes quotient, remainder =
// divmod(a, div) over the merged 256-bit operands and writes both results
// back as Uint256 to the "quotient" and "remainder" variables. The divisor
// limbs are read at the caller-given offsets from the resolved "div" base,
// so the same routine serves callers whose divisor is embedded inside a
// larger struct. Both operands merge to non-negative integers, so plain
// Euclidean division applies with no sign handling.
func uint256OffsetedUnsignedDivRem(vm *VirtualMachine, ids map[string]Reference, apTracking ApTracking, divOffsetLow, divOffsetHigh int64) error {
	a, err := uint256FromVarName("a", vm, ids, apTracking)
	if err != nil {
		return err
	}

	divAddr, err := resolve("div", vm, ids, apTracking)
	if err != nil {
		return err
	}
	lowAddr, err := divAddr.Add(divOffsetLow)
	if err != nil {
		return fmt.Errorf("div: %w", err)
	}
	highAddr, err := divAddr.Add(divOffsetHigh)
	if err != nil {
		return fmt.Errorf("div: %w", err)
	}
	var div Uint256
	if div.Low, err = vm.Memory.Read(lowAddr); err != nil {
		return fmt.Errorf("%w: div.low", ErrIdentifierHasNoMember)
	}
	if div.High, err = vm.Memory.Read(highAddr); err != nil {
		return fmt.Errorf("%w: div.high", ErrIdentifierHasNoMember)
	}

	quotient, remainder, err := divMod(a.big(), div.big())
	if err != nil {
		return err
	}

	if err := splitBig(quotient).insertFromVarName("quotient", vm, ids, apTracking); err != nil {
		return err
	}
	return splitBig(remainder).insertFromVarName("remainder", vm, ids, apTracking)
}

// Alon divides two Uint256 variables, reading the divisor limbs at the
// default offsets 0 and 1.
func Alon(vm *VirtualMachine, _ *ExecutionScopes, ids map[string]Reference, apTracking ApTracking, _ map[string]fp.Element) error {
	return uint256OffsetedUnsignedDivRem(vm, ids, apTracking, 0, 1)
}
