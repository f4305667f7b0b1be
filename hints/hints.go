// Package hints implements the extra hints Starknet registers on top of the
// Cairo VM's builtin hint set: normalize_address range classification and
// 256-bit unsigned division. A hint is a native callback the VM invokes at a
// designated program point; it resolves its operands through the frame's
// variable references, computes off-circuit, and writes the results into the
// VM's write-once memory for the proof system to check later.
package hints

import (
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"

	"github.com/consensys/starknet-hints/memory"
)

// Register is a base register of the VM's run context.
type Register uint8

const (
	// AP is the allocation pointer, past the end of allocated memory.
	AP Register = iota
	// FP is the frame pointer of the current call frame.
	FP
)

// ApTracking locates a reference relative to the allocation pointer: Group
// changes whenever the compiler loses track of ap, and Offset counts the ap
// advances since the group started.
type ApTracking struct {
	Group  int
	Offset int
}

// Reference describes where a frame variable lives: a base register, a cell
// offset from it, and optionally one dereference through the pointer stored
// there. AP-based references carry the ApTracking state they were recorded
// under.
type Reference struct {
	Register    Register
	Offset      int64
	Dereference bool
	ApTracking  ApTracking
}

// VirtualMachine is the slice of VM state a hint borrows for one
// invocation: the memory handle and the current run context registers.
type VirtualMachine struct {
	Memory *memory.Memory
	Ap     memory.Relocatable
	Fp     memory.Relocatable
}

// Func is the signature every hint callback must satisfy, mirroring what
// the VM's hint processor passes through: the machine, the execution scope
// stack, the frame's variable references, the ap tracking state at the hint
// location, and the program's named constants. A non-nil error aborts the
// VM's current step.
type Func func(vm *VirtualMachine, scopes *ExecutionScopes, ids map[string]Reference, apTracking ApTracking, constants map[string]fp.Element) error
