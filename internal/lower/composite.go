package lower

import (
	"sort"

	"github.com/nitrate-lang/nitratec/internal/ir"
	"github.com/nitrate-lang/nitratec/internal/token"
)

// fieldAlign returns the IR type's natural alignment in bytes, used to
// size the padding gaps layoutGroupFields inserts between group fields. Only scalar and pointer types have a fixed,
// statically-known alignment here; anything else (a nested struct,
// array, or still-unresolved opaque type) is conservatively aligned to a
// pointer word, since its true alignment is at most that of any scalar
// it contains.
func fieldAlign(t ir.Node) int {
	switch tn := t.(type) {
	case *ir.PrimitiveType:
		bits := tn.Prim.BitSize()
		if bits <= 8 {
			return 1
		}
		return bits / 8
	case *ir.PointerType:
		return 8
	default:
		return 8
	}
}

// layoutGroupFields reorders fields by descending bit-size (stable, so
// equal-size fields keep declaration order; a non-primitive counts as
// fieldSize bytes) and inserts padding members so every field starts at
// an offset that is a multiple of its own alignment (spec.md §4.4.3: a
// `group` minimizes padding by packing wide fields first; testable
// property 8).
func (l *Lowerer) layoutGroupFields(fields []ir.TypeField) []ir.TypeField {
	ordered := make([]ir.TypeField, len(fields))
	copy(ordered, fields)
	bitSize := func(t ir.Node) int {
		if p, ok := t.(*ir.PrimitiveType); ok {
			return p.Prim.BitSize()
		}
		return fieldSize(t) * 8
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return bitSize(ordered[i].Type) > bitSize(ordered[j].Type)
	})

	out := make([]ir.TypeField, 0, len(ordered))
	offset := 0
	padIdx := 0
	for _, f := range ordered {
		align := fieldAlign(f.Type)
		if rem := offset % align; rem != 0 {
			gap := align - rem
			out = append(out, l.padField(padIdx, gap))
			padIdx++
			offset += gap
		}
		out = append(out, f)
		offset += fieldSize(f.Type)
	}
	return out
}

// fieldSize approximates a type's size in bytes for layout purposes,
// matching fieldAlign's scalar/pointer precision.
func fieldSize(t ir.Node) int {
	if p, ok := t.(*ir.PrimitiveType); ok {
		bits := p.Prim.BitSize()
		if bits == 0 {
			return 0
		}
		return (bits + 7) / 8
	}
	return fieldAlign(t)
}

// padField materializes one padding member as a `u8[size]` array field,
// named so it never collides with a source-level field (spec.md's
// mangling grammar reserves no identifier starting with "__").
func (l *Lowerer) padField(idx, size int) ir.TypeField {
	u8 := l.Module.PrimitiveType(token.Span{}, ir.PrimU8)
	return ir.TypeField{Name: padName(idx), Type: l.Module.NewArrayType(token.Span{}, u8, size)}
}

func padName(idx int) string {
	return "__pad" + itoa(idx)
}
