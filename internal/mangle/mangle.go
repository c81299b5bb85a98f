// Package mangle implements the deterministic, self-delimiting symbol
// encoding spec.md §4.4.7 describes: a QUIX scheme (`_Q`-prefixed,
// Itanium-ABI-inspired but not compatible with it) carrying full type
// information, and a weak C-ABI scheme that keeps only the qualified
// name. Grounded on the teacher's stack choice of `tidwall/gjson`/
// `tidwall/sjson` for JSON handling elsewhere in the repo — the teacher
// itself has no mangler (DWScript is interpreted, not linked against a
// C ABI), so the JSON shape of Demangle's output is the only thing
// carried over from it.
package mangle

import (
	"strconv"
	"strings"

	"github.com/nitrate-lang/nitratec/internal/ir"
)

// ABIVersion is the suffix spec.md §4.4.7 calls "the ABI version (0)".
const ABIVersion = "_0"

// Mangle encodes qualifiedName (its "::"-separated components) and t
// under the QUIX scheme: `_Q <ns-size-list> <type-encoding> _0`.
func Mangle(qualifiedName string, t ir.Node) string {
	var b strings.Builder
	b.WriteString("_Q")
	b.WriteString(nsSizeList(splitQualified(qualifiedName)))
	b.WriteString(EncodeType(t))
	b.WriteString(ABIVersion)
	return b.String()
}

// MangleC encodes qualifiedName under the weak C-ABI scheme: every ':'
// replaced with '_', with no type information at all — "weak by design"
// per spec.md §4.4.7.
func MangleC(qualifiedName string) string {
	return strings.ReplaceAll(qualifiedName, ":", "_")
}

func splitQualified(name string) []string {
	parts := strings.Split(name, "::")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// nsSizeList encodes each component as <decimal-length><identifier>,
// e.g. ["x","y","zzz"] -> "1x1y3zzz".
func nsSizeList(parts []string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strconv.Itoa(len(p)))
		b.WriteString(p)
	}
	return b.String()
}

var primCodes = map[ir.PrimKind]string{
	ir.PrimU1: "b", ir.PrimU8: "h", ir.PrimU16: "t", ir.PrimU32: "j", ir.PrimU64: "m", ir.PrimU128: "o",
	ir.PrimI8: "a", ir.PrimI16: "s", ir.PrimI32: "i", ir.PrimI64: "l", ir.PrimI128: "n",
	ir.PrimF16: "Dh", ir.PrimF32: "Df", ir.PrimF64: "Dd", ir.PrimF128: "De",
	ir.PrimVoid: "v",
}

// EncodeType recursively encodes an IR type node per spec.md §4.4.7's
// prefix-coded grammar. An IR node that is not a type (or a type kind
// the scheme has no code for) encodes as an opaque nominal naming its
// Kind, so mangling never fails outright — it degrades to an
// unambiguous, still-self-delimiting placeholder instead.
func EncodeType(t ir.Node) string {
	switch x := t.(type) {
	case *ir.VoidType:
		return "v"
	case *ir.PrimitiveType:
		if code, ok := primCodes[x.Prim]; ok {
			return code
		}
		return "v"
	case *ir.PointerType:
		return "P" + EncodeType(x.Elem)
	case *ir.OpaqueType:
		return "N" + nsSizeList(splitQualified(x.Name)) + "E"
	case *ir.StructType:
		return "c" + encodeFieldTypes(x.Fields) + "E"
	case *ir.UnionType:
		return "u" + encodeFieldTypes(x.Fields) + "E"
	case *ir.ArrayType:
		return "A" + strconv.Itoa(x.Count) + "_" + EncodeType(x.Elem)
	case *ir.FunctionType:
		var b strings.Builder
		b.WriteString("F")
		b.WriteString(EncodeType(x.Return))
		for _, p := range x.Params {
			b.WriteString(EncodeType(p))
		}
		if x.Variadic {
			b.WriteString("_")
		}
		b.WriteString("E")
		return b.String()
	default:
		return "N" + nsSizeList([]string{t.Kind().String()}) + "E"
	}
}

func encodeFieldTypes(fields []ir.TypeField) string {
	var b strings.Builder
	for _, f := range fields {
		b.WriteString(EncodeType(f.Type))
	}
	return b.String()
}
