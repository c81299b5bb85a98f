// Package ir implements the typed IR graph spec.md §3/§4.4 describes: a
// closed tagged-variant node set, a per-module hash-consing factory for
// stateless kinds, and the multi-mode traversal engine every later pass
// builds on.
//
// Grounded on the teacher's ZupIT-horusec-engine-style IR (Value/
// Instruction tagged interfaces, a shared embedded `node` mix-in) and on
// bufbuild-protocompile's arena-backed, hash-consed node storage — the
// teacher itself (a tree-walking interpreter) has no IR layer of its
// own.
package ir

// Kind is the closed tag every IR node carries, spec.md §4.4.4's "kind"
// axis. It fits a 6-bit field (< 64 distinct values); the Design Notes
// §9 "tagged-variant enum plus total-pattern-matching" recommendation is
// realized as a Go type switch over the concrete node pointer types.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Types.
	KindVoidType
	KindPrimitiveType
	KindPointerType
	KindStructType
	KindUnionType
	KindArrayType
	KindFunctionType
	KindOpaqueType

	// Literals.
	KindIntLit
	KindFloatLit
	KindStringBytes

	// Expressions.
	KindIdent
	KindCall
	KindBinExpr
	KindUnaryExpr
	KindPostUnExpr
	KindIf
	KindList
	KindSeq
	KindIndex
	KindBlock
	KindTmp

	// Declarations.
	KindLocal
	KindGlobal
	KindFn
	KindExtern
	KindModule

	// Statement-like control nodes (stateless when zero-ary).
	KindRet
	KindBrk
	KindCont
	KindIgnore
	KindWhile
	KindFor
	KindForm
	KindCase
	KindSwitch
	KindAsm

	kindCount
)

var kindNames = [...]string{
	KindInvalid:       "Invalid",
	KindVoidType:      "VoidType",
	KindPrimitiveType: "PrimitiveType",
	KindPointerType:   "PointerType",
	KindStructType:    "StructType",
	KindUnionType:     "UnionType",
	KindArrayType:     "ArrayType",
	KindFunctionType:  "FunctionType",
	KindOpaqueType:    "OpaqueType",
	KindIntLit:        "IntLit",
	KindFloatLit:      "FloatLit",
	KindStringBytes:   "StringBytes",
	KindIdent:         "Ident",
	KindCall:          "Call",
	KindBinExpr:       "BinExpr",
	KindUnaryExpr:     "UnaryExpr",
	KindPostUnExpr:    "PostUnExpr",
	KindIf:            "If",
	KindList:          "List",
	KindSeq:           "Seq",
	KindIndex:         "Index",
	KindBlock:         "Block",
	KindTmp:           "Tmp",
	KindLocal:         "Local",
	KindGlobal:        "Global",
	KindFn:            "Fn",
	KindExtern:        "Extern",
	KindModule:        "Module",
	KindRet:           "Ret",
	KindBrk:           "Brk",
	KindCont:          "Cont",
	KindIgnore:        "Ignore",
	KindWhile:         "While",
	KindFor:           "For",
	KindForm:          "Form",
	KindCase:          "Case",
	KindSwitch:        "Switch",
	KindAsm:           "Asm",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

func (k Kind) IsType() bool {
	return k >= KindVoidType && k <= KindOpaqueType
}

// PrimKind enumerates the primitive scalar widths spec.md §4.4.7's
// mangling table assigns single-letter codes to.
type PrimKind uint8

const (
	PrimU1 PrimKind = iota
	PrimU8
	PrimU16
	PrimU32
	PrimU64
	PrimU128
	PrimI8
	PrimI16
	PrimI32
	PrimI64
	PrimI128
	PrimF16
	PrimF32
	PrimF64
	PrimF128
	PrimVoid
)

var primBitSize = [...]int{
	PrimU1: 1, PrimU8: 8, PrimU16: 16, PrimU32: 32, PrimU64: 64, PrimU128: 128,
	PrimI8: 8, PrimI16: 16, PrimI32: 32, PrimI64: 64, PrimI128: 128,
	PrimF16: 16, PrimF32: 32, PrimF64: 64, PrimF128: 128,
	PrimVoid: 0,
}

// BitSize returns the width in bits of p, used by the group-composite
// layout pass (spec.md §4.4.3/§4.3) to sort and pad fields.
func (p PrimKind) BitSize() int { return primBitSize[p] }

var primNames = [...]string{
	PrimU1: "u1", PrimU8: "u8", PrimU16: "u16", PrimU32: "u32", PrimU64: "u64", PrimU128: "u128",
	PrimI8: "i8", PrimI16: "i16", PrimI32: "i32", PrimI64: "i64", PrimI128: "i128",
	PrimF16: "f16", PrimF32: "f32", PrimF64: "f64", PrimF128: "f128",
	PrimVoid: "void",
}

func (p PrimKind) String() string {
	if int(p) < len(primNames) {
		return primNames[p]
	}
	return "?"
}

// ABI distinguishes the calling-convention / mangling-scheme tags
// spec.md's glossary calls "ABI tag".
type ABI uint8

const (
	ABIDefault ABI = iota
	ABIQuix
	ABIC
	ABIInternal
)

func (a ABI) String() string {
	switch a {
	case ABIQuix:
		return "q"
	case ABIC:
		return "c"
	case ABIInternal:
		return "internal"
	default:
		return "std"
	}
}
