package hints

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"

	"github.com/consensys/starknet-hints/memory"
)

// resolve maps a frame variable name to its concrete memory address. For
// ap-based references the recorded ap tracking is reconciled with the
// hint's: both must belong to the same tracking group, and the base is
// corrected by the ap advances between the reference's recording point and
// the hint location.
func resolve(name string, vm *VirtualMachine, ids map[string]Reference, apTracking ApTracking) (memory.Relocatable, error) {
	ref, ok := ids[name]
	if !ok {
		return memory.Relocatable{}, fmt.Errorf("%w: %s", ErrUnknownIdentifier, name)
	}

	var base memory.Relocatable
	switch ref.Register {
	case FP:
		base = vm.Fp
	case AP:
		if ref.ApTracking.Group != apTracking.Group {
			return memory.Relocatable{}, fmt.Errorf("%w: %s: reference group %d, hint group %d",
				ErrApTrackingMismatch, name, ref.ApTracking.Group, apTracking.Group)
		}
		var err error
		base, err = vm.Ap.Add(int64(ref.ApTracking.Offset) - int64(apTracking.Offset))
		if err != nil {
			return memory.Relocatable{}, fmt.Errorf("%s: %w", name, err)
		}
	default:
		return memory.Relocatable{}, fmt.Errorf("%w: %s: bad base register %d", ErrUnknownIdentifier, name, ref.Register)
	}

	addr, err := base.Add(ref.Offset)
	if err != nil {
		return memory.Relocatable{}, fmt.Errorf("%s: %w", name, err)
	}
	if ref.Dereference {
		target, err := vm.Memory.ReadAddress(addr)
		if err != nil {
			return memory.Relocatable{}, fmt.Errorf("%s: %w", name, err)
		}
		return target, nil
	}
	return addr, nil
}

// feltFromVarName resolves name and reads the field element stored there.
func feltFromVarName(name string, vm *VirtualMachine, ids map[string]Reference, apTracking ApTracking) (fp.Element, error) {
	addr, err := resolve(name, vm, ids, apTracking)
	if err != nil {
		return fp.Element{}, err
	}
	v, err := vm.Memory.Read(addr)
	if err != nil {
		return fp.Element{}, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// insertFromVarName resolves name and writes v to its cell. Write-once
// violations propagate unchanged from the memory.
func insertFromVarName(name string, v fp.Element, vm *VirtualMachine, ids map[string]Reference, apTracking ApTracking) error {
	addr, err := resolve(name, vm, ids, apTracking)
	if err != nil {
		return err
	}
	return vm.Memory.Write(addr, v)
}
