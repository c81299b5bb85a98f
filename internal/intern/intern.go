// Package intern provides the content-addressed string table spec.md §3
// calls for: every identifier, string literal, and ABI name in the IR is
// interned so that equality becomes an O(1) integer comparison and every
// distinct spelling is stored exactly once for the life of the
// compilation context.
package intern

// ID is an opaque handle into a Pool. The zero ID is reserved to mean
// "none" per spec.md §4.1, so real entries start at 1.
type ID uint32

// None is the reserved "no identifier" sentinel.
const None ID = 0

// Pool is a context-wide, not thread-safe (see spec.md §5 — contexts are
// not shared across threads) content→ID table.
type Pool struct {
	ids     map[string]ID
	strings []string // index i holds the string for ID(i+1)
}

// NewPool creates an empty Pool.
func NewPool() *Pool {
	return &Pool{ids: make(map[string]ID)}
}

// Intern returns the stable ID for s, assigning a new one on first sight.
// Idempotent: interning the same bytes twice returns the same ID.
func (p *Pool) Intern(s string) ID {
	if id, ok := p.ids[s]; ok {
		return id
	}
	p.strings = append(p.strings, s)
	id := ID(len(p.strings))
	p.ids[s] = id
	return id
}

// Lookup returns the original bytes for id, and whether id was valid.
func (p *Pool) Lookup(id ID) (string, bool) {
	if id == None || int(id) > len(p.strings) {
		return "", false
	}
	return p.strings[id-1], true
}

// MustLookup is Lookup without the ok flag, for call sites that already
// hold an ID known to have come from this Pool.
func (p *Pool) MustLookup(id ID) string {
	s, _ := p.Lookup(id)
	return s
}

// Len reports how many distinct strings have been interned.
func (p *Pool) Len() int { return len(p.strings) }
