package ast

// Kind is the closed tag identifying a concrete AST node type, mirroring
// spec.md §4.2's "closed sum of ~90 node kinds grouped into the four
// axes (Stmt, Type, Decl, Expr) plus ~15 concrete type nodes for
// primitives". Primitive widths share a single Go struct (PrimitiveType)
// but still occupy one Kind constant each, so Kind.String and the
// lowerer's dispatch can treat "u8" and "i64" as distinct leaves without
// needing distinct Go types for each.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Expr
	KindIdentifier
	KindIntLiteral
	KindFloatLiteral
	KindBoolLiteral
	KindCharLiteral
	KindStringLiteral
	KindNullLiteral
	KindUndefLiteral
	KindBinaryExpr
	KindUnaryExpr
	KindPostUnaryExpr
	KindTernaryExpr
	KindCallExpr
	KindTemplateCallExpr
	KindListExpr
	KindAssocExpr
	KindFieldAccessExpr
	KindIndexExpr
	KindSliceExpr
	KindFStringExpr
	KindSequenceExpr
	KindStmtExpr
	KindTypeExpr
	KindRangeExpr
	KindLambdaExpr

	// Type
	KindU1
	KindU8
	KindU16
	KindU32
	KindU64
	KindU128
	KindI8
	KindI16
	KindI32
	KindI64
	KindI128
	KindF16
	KindF32
	KindF64
	KindF128
	KindVoidType
	KindPointerType
	KindReferenceType
	KindOpaqueType
	KindStructType
	KindUnionType
	KindGroupType
	KindRegionType
	KindTupleType
	KindArrayType
	KindFunctionType
	KindUnresolvedType
	KindInferredType
	KindTemplatedType

	// Decl
	KindTypedefDecl
	KindFunctionDecl
	KindFunctionDef
	KindParamDecl
	KindStructDecl
	KindRegionDecl
	KindGroupDecl
	KindUnionDecl
	KindCompositeFieldDecl
	KindEnumDecl
	KindEnumItemDecl
	KindVarDecl
	KindLetDecl
	KindConstDecl
	KindSubsystemDecl
	KindExportDecl
	KindAttrSet

	// Stmt
	KindBlockStmt
	KindIfStmt
	KindWhileStmt
	KindForStmt
	KindForeachStmt
	KindParallelFormStmt
	KindBreakStmt
	KindContinueStmt
	KindReturnStmt
	KindRetIfStmt
	KindRetZeroStmt
	KindRetVoidIfStmt
	KindSwitchStmt
	KindCaseStmt
	KindInlineAsmStmt
	KindExprStmt
	KindVolatileStmt

	kindEnd
)

var kindNames = [...]string{
	KindInvalid:          "Invalid",
	KindIdentifier:       "Identifier",
	KindIntLiteral:       "IntLiteral",
	KindFloatLiteral:     "FloatLiteral",
	KindBoolLiteral:      "BoolLiteral",
	KindCharLiteral:      "CharLiteral",
	KindStringLiteral:    "StringLiteral",
	KindNullLiteral:      "NullLiteral",
	KindUndefLiteral:     "UndefLiteral",
	KindBinaryExpr:       "BinaryExpr",
	KindUnaryExpr:        "UnaryExpr",
	KindPostUnaryExpr:    "PostUnaryExpr",
	KindTernaryExpr:      "TernaryExpr",
	KindCallExpr:         "CallExpr",
	KindTemplateCallExpr: "TemplateCallExpr",
	KindListExpr:         "ListExpr",
	KindAssocExpr:        "AssocExpr",
	KindFieldAccessExpr:  "FieldAccessExpr",
	KindIndexExpr:        "IndexExpr",
	KindSliceExpr:        "SliceExpr",
	KindFStringExpr:      "FStringExpr",
	KindSequenceExpr:     "SequenceExpr",
	KindStmtExpr:         "StmtExpr",
	KindTypeExpr:         "TypeExpr",
	KindRangeExpr:        "RangeExpr",
	KindLambdaExpr:       "LambdaExpr",

	KindU1: "u1", KindU8: "u8", KindU16: "u16", KindU32: "u32", KindU64: "u64", KindU128: "u128",
	KindI8: "i8", KindI16: "i16", KindI32: "i32", KindI64: "i64", KindI128: "i128",
	KindF16: "f16", KindF32: "f32", KindF64: "f64", KindF128: "f128",
	KindVoidType:       "VoidType",
	KindPointerType:    "PointerType",
	KindReferenceType:  "ReferenceType",
	KindOpaqueType:     "OpaqueType",
	KindStructType:     "StructType",
	KindUnionType:      "UnionType",
	KindGroupType:      "GroupType",
	KindRegionType:     "RegionType",
	KindTupleType:      "TupleType",
	KindArrayType:      "ArrayType",
	KindFunctionType:   "FunctionType",
	KindUnresolvedType: "UnresolvedType",
	KindInferredType:   "InferredType",
	KindTemplatedType:  "TemplatedType",

	KindTypedefDecl:        "TypedefDecl",
	KindFunctionDecl:       "FunctionDecl",
	KindFunctionDef:        "FunctionDef",
	KindParamDecl:          "ParamDecl",
	KindStructDecl:         "StructDecl",
	KindRegionDecl:         "RegionDecl",
	KindGroupDecl:          "GroupDecl",
	KindUnionDecl:          "UnionDecl",
	KindCompositeFieldDecl: "CompositeFieldDecl",
	KindEnumDecl:           "EnumDecl",
	KindEnumItemDecl:       "EnumItemDecl",
	KindVarDecl:            "VarDecl",
	KindLetDecl:            "LetDecl",
	KindConstDecl:          "ConstDecl",
	KindSubsystemDecl:      "SubsystemDecl",
	KindExportDecl:         "ExportDecl",
	KindAttrSet:            "AttrSet",

	KindBlockStmt:        "BlockStmt",
	KindIfStmt:           "IfStmt",
	KindWhileStmt:        "WhileStmt",
	KindForStmt:          "ForStmt",
	KindForeachStmt:      "ForeachStmt",
	KindParallelFormStmt: "ParallelFormStmt",
	KindBreakStmt:        "BreakStmt",
	KindContinueStmt:     "ContinueStmt",
	KindReturnStmt:       "ReturnStmt",
	KindRetIfStmt:        "RetIfStmt",
	KindRetZeroStmt:      "RetZeroStmt",
	KindRetVoidIfStmt:    "RetVoidIfStmt",
	KindSwitchStmt:       "SwitchStmt",
	KindCaseStmt:         "CaseStmt",
	KindInlineAsmStmt:    "InlineAsmStmt",
	KindExprStmt:         "ExprStmt",
	KindVolatileStmt:     "VolatileStmt",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// IsExpr, IsType, IsDecl, IsStmt classify a Kind by which axis it belongs
// to, mirroring the is_type/stmt/decl/expr predicates of spec.md §4.2.
func (k Kind) IsExpr() bool { return k >= KindIdentifier && k <= KindLambdaExpr }
func (k Kind) IsType() bool { return k >= KindU1 && k <= KindTemplatedType }
func (k Kind) IsDecl() bool { return k >= KindTypedefDecl && k <= KindAttrSet }
func (k Kind) IsStmt() bool { return k >= KindBlockStmt && k <= KindVolatileStmt }
