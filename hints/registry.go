package hints

import (
	"sort"

	"github.com/consensys/starknet-hints/logger"
)

// Hint identifier strings, verbatim as they appear in compiled Cairo
// programs: the VM dispatches on the hint's source text.
const (
	NormalizeAddressSetIsSmallID = `# Verify the assumptions on the relationship between 2**250, ADDR_BOUND and PRIME.
ADDR_BOUND = ids.ADDR_BOUND % PRIME
assert (2**250 < ADDR_BOUND <= 2**251) and (2 * 2**250 < PRIME) and (
        ADDR_BOUND * 2 > PRIME), \
    'normalize_address() cannot be used with the current constants.'
ids.is_small = 1 if ids.addr < ADDR_BOUND else 0`

	NormalizeAddressSetIs250ID = `ids.is_250 = 1 if ids.addr < 2**250 else 0`

	AlonID = `a = (ids.a.high << 128) + ids.a.low
div = (ids.div.high << 128) + ids.div.low
quotient, remainder = divmod(a, div)

ids.quotient.low = quotient & ((1 << 128) - 1)
ids.quotient.high = quotient >> 128
ids.remainder.low = remainder & ((1 << 128) - 1)
ids.remainder.high = remainder >> 128`
)

// Registry maps hint identifier strings to their callbacks. It is built by
// ordered insertions over a baseline table; inserting an identifier twice
// shadows the earlier entry, last insert wins.
type Registry struct {
	hints map[string]Func
}

// NewRegistry copies the baseline hint table into a fresh registry. base
// may be nil.
func NewRegistry(base map[string]Func) *Registry {
	r := &Registry{hints: make(map[string]Func, len(base)+3)}
	for id, fn := range base {
		r.hints[id] = fn
	}
	return r
}

func (r *Registry) insert(id string, fn Func) {
	if _, ok := r.hints[id]; ok {
		log := logger.Logger()
		log.Debug().Str("id", id).Msg("hint registered multiple times")
	}
	r.hints[id] = fn
}

// Lookup returns the callback registered under id.
func (r *Registry) Lookup(id string) (Func, bool) {
	fn, ok := r.hints[id]
	return fn, ok
}

// IDs returns the registered identifiers in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.hints))
	for id := range r.hints {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ExtendedRegistry layers this package's hints over the baseline table the
// host already dispatches through.
func ExtendedRegistry(base map[string]Func) *Registry {
	r := NewRegistry(base)
	for _, h := range []struct {
		id string
		fn Func
	}{
		{NormalizeAddressSetIsSmallID, NormalizeAddressSetIsSmall},
		{NormalizeAddressSetIs250ID, NormalizeAddressSetIs250},
		{AlonID, Alon},
	} {
		r.insert(h.id, h.fn)
	}
	return r
}
