package hints

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/holiman/uint256"

	"github.com/consensys/starknet-hints/memory"
)

var mask128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// Uint256 is an unsigned 256-bit integer encoded as two field elements,
// value = Low + High·2^128. Values produced by splitBig and splitFelt have
// both limbs below 2^128; values read from memory are trusted to, since
// producing well-formed operands is the calling program's responsibility.
type Uint256 struct {
	Low  fp.Element
	High fp.Element
}

// uint256FromBaseAddr reads the two limbs at offsets 0 and 1 from addr.
// name is the variable the struct belongs to, used to tag missing-limb
// errors.
func uint256FromBaseAddr(addr memory.Relocatable, name string, vm *VirtualMachine) (Uint256, error) {
	var u Uint256
	var err error
	if u.Low, err = vm.Memory.Read(addr); err != nil {
		return Uint256{}, fmt.Errorf("%w: %s.low", ErrIdentifierHasNoMember, name)
	}
	high, err := addr.Add(1)
	if err != nil {
		return Uint256{}, fmt.Errorf("%s: %w", name, err)
	}
	if u.High, err = vm.Memory.Read(high); err != nil {
		return Uint256{}, fmt.Errorf("%w: %s.high", ErrIdentifierHasNoMember, name)
	}
	return u, nil
}

func uint256FromVarName(name string, vm *VirtualMachine, ids map[string]Reference, apTracking ApTracking) (Uint256, error) {
	addr, err := resolve(name, vm, ids, apTracking)
	if err != nil {
		return Uint256{}, err
	}
	return uint256FromBaseAddr(addr, name, vm)
}

// splitBig encodes an arbitrary-precision unsigned value: low = v mod
// 2^128, high = v >> 128. This is the canonical encoding for every computed
// result.
func splitBig(v *big.Int) Uint256 {
	var lo, hi big.Int
	lo.And(v, mask128)
	hi.Rsh(v, 128)
	var u Uint256
	u.Low.SetBigInt(&lo)
	u.High.SetBigInt(&hi)
	return u
}

// splitFelt applies the same split to a single field element's unsigned
// representation. A felt always fits in 256 bits, so the limbs are lifted
// straight out of the uint256 words.
func splitFelt(v fp.Element) Uint256 {
	var b big.Int
	v.BigInt(&b)
	var n uint256.Int
	n.SetFromBig(&b)
	lo := uint256.Int{n[0], n[1], 0, 0}
	hi := uint256.Int{n[2], n[3], 0, 0}
	var u Uint256
	u.Low.SetBigInt(lo.ToBig())
	u.High.SetBigInt(hi.ToBig())
	return u
}

// big merges the limbs back into High·2^128 + Low.
func (u Uint256) big() *big.Int {
	var lo, hi big.Int
	u.Low.BigInt(&lo)
	u.High.BigInt(&hi)
	return hi.Lsh(&hi, 128).Add(&hi, &lo)
}

// insertFromVarName resolves name and writes Low at offset 0 and High at
// offset 1 of its cell. Write-once violations propagate unchanged.
func (u Uint256) insertFromVarName(name string, vm *VirtualMachine, ids map[string]Reference, apTracking ApTracking) error {
	addr, err := resolve(name, vm, ids, apTracking)
	if err != nil {
		return err
	}
	if err := vm.Memory.Write(addr, u.Low); err != nil {
		return err
	}
	high, err := addr.Add(1)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return vm.Memory.Write(high, u.High)
}

// divMod is the arithmetic primitive behind the divider. A zero divisor is
// a precondition violation of the calling program and surfaces here as
// ErrDivisionByZero; it is never given domain meaning.
func divMod(a, d *big.Int) (q, r *big.Int, err error) {
	if d.Sign() == 0 {
		return nil, nil, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, a)
	}
	q, r = new(big.Int).DivMod(a, d, new(big.Int))
	return q, r, nil
}
