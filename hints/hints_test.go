package hints

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/starknet-hints/memory"
)

// newTestVM builds a machine with a program segment and an execution
// segment, ap and fp both at the start of the execution segment.
func newTestVM() *VirtualMachine {
	mem := memory.New()
	mem.AddSegment()
	exec := mem.AddSegment()
	return &VirtualMachine{Memory: mem, Ap: exec, Fp: exec}
}

func fpRef(off int64) Reference {
	return Reference{Register: FP, Offset: off}
}

func feltFromBig(b *big.Int) fp.Element {
	var e fp.Element
	e.SetBigInt(b)
	return e
}

func feltFromWords(w0, w1 uint64) fp.Element {
	u := uint256.Int{w0, w1, 0, 0}
	return feltFromBig(u.ToBig())
}

func mustWriteFp(t *testing.T, vm *VirtualMachine, off int64, v fp.Element) {
	t.Helper()
	addr, err := vm.Fp.Add(off)
	require.NoError(t, err)
	require.NoError(t, vm.Memory.Write(addr, v))
}

func readFp(t *testing.T, vm *VirtualMachine, off int64) fp.Element {
	t.Helper()
	addr, err := vm.Fp.Add(off)
	require.NoError(t, err)
	v, err := vm.Memory.Read(addr)
	require.NoError(t, err)
	return v
}

func TestExecutionScopes(t *testing.T) {
	s := NewExecutionScopes()

	require.ErrorIs(t, s.ExitScope(), ErrCannotExitMainScope)

	s.Assign("n", 1)
	v, err := s.Get("n")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	s.EnterScope(map[string]any{"n": 2})
	v, err = s.Get("n")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	require.NoError(t, s.ExitScope())
	v, err = s.Get("n")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, ErrVariableNotInScope)
}
