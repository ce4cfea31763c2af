package ast

import (
	"oneassert/internal/source"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	// ExprIdent represents a bare identifier.
	ExprIdent ExprKind = iota
	// ExprPath represents a multi-segment path such as config::DEBUG.
	ExprPath
	// ExprLit represents a literal expression.
	ExprLit
	// ExprBinary represents a binary expression.
	ExprBinary
	// ExprUnary represents a prefix unary expression.
	ExprUnary
	// ExprCall represents a free function call.
	ExprCall
	// ExprMethodCall represents a method call with a receiver.
	ExprMethodCall
	// ExprField represents field access, including numeric tuple fields.
	ExprField
	// ExprIndex represents container indexing.
	ExprIndex
	// ExprCast represents an `as` conversion.
	ExprCast
	// ExprParen represents a parenthesized expression.
	ExprParen
	ExprTuple
	ExprArray
	ExprRepeat
	ExprRange
	ExprReference
	ExprTry
	ExprAwait
	ExprClosure
	ExprMacroCall
	// ExprBlock represents a braced statement block with an optional tail.
	ExprBlock
	ExprConst
	ExprUnsafe
	ExprIf
	ExprMatch
	ExprLoop
	ExprWhile
	ExprForLoop
	ExprAssign
	ExprReturn
	ExprBreak
	ExprContinue
	ExprLet
	ExprStruct
	ExprAsync
)

// String names an expression kind the way it reads in source, for use in
// diagnostics about unsupported constructs.
func (k ExprKind) String() string {
	switch k {
	case ExprIdent:
		return "identifier"
	case ExprPath:
		return "path"
	case ExprLit:
		return "literal"
	case ExprBinary:
		return "binary expression"
	case ExprUnary:
		return "unary expression"
	case ExprCall:
		return "call"
	case ExprMethodCall:
		return "method call"
	case ExprField:
		return "field access"
	case ExprIndex:
		return "index expression"
	case ExprCast:
		return "cast"
	case ExprParen:
		return "parenthesized expression"
	case ExprTuple:
		return "tuple"
	case ExprArray:
		return "array"
	case ExprRepeat:
		return "array repeat"
	case ExprRange:
		return "range"
	case ExprReference:
		return "reference"
	case ExprTry:
		return "try expression"
	case ExprAwait:
		return "await expression"
	case ExprClosure:
		return "closure"
	case ExprMacroCall:
		return "macro call"
	case ExprBlock:
		return "block"
	case ExprConst:
		return "const block"
	case ExprUnsafe:
		return "unsafe block"
	case ExprIf:
		return "if expression"
	case ExprMatch:
		return "match expression"
	case ExprLoop:
		return "loop"
	case ExprWhile:
		return "while loop"
	case ExprForLoop:
		return "for loop"
	case ExprAssign:
		return "assignment"
	case ExprReturn:
		return "return"
	case ExprBreak:
		return "break"
	case ExprContinue:
		return "continue"
	case ExprLet:
		return "let binding"
	case ExprStruct:
		return "struct literal"
	case ExprAsync:
		return "async block"
	default:
		return "expression"
	}
}

// Expr represents an expression node in the AST.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprBinaryOp enumerates binary operator kinds.
type ExprBinaryOp uint8

const (
	// ExprBinaryAdd represents the addition operator (+).
	ExprBinaryAdd ExprBinaryOp = iota
	ExprBinarySub
	ExprBinaryMul
	ExprBinaryDiv
	ExprBinaryMod

	ExprBinaryBitAnd
	ExprBinaryBitOr
	ExprBinaryBitXor
	ExprBinaryShiftLeft
	ExprBinaryShiftRight

	ExprBinaryLogicalAnd
	ExprBinaryLogicalOr

	// ExprBinaryEq represents the equality operator (==).
	ExprBinaryEq
	ExprBinaryNotEq
	ExprBinaryLess
	ExprBinaryLessEq
	ExprBinaryGreater
	ExprBinaryGreaterEq
)

// String returns the symbol representation of a binary operator.
func (op ExprBinaryOp) String() string {
	switch op {
	case ExprBinaryAdd:
		return "+"
	case ExprBinarySub:
		return "-"
	case ExprBinaryMul:
		return "*"
	case ExprBinaryDiv:
		return "/"
	case ExprBinaryMod:
		return "%"
	case ExprBinaryBitAnd:
		return "&"
	case ExprBinaryBitOr:
		return "|"
	case ExprBinaryBitXor:
		return "^"
	case ExprBinaryShiftLeft:
		return "<<"
	case ExprBinaryShiftRight:
		return ">>"
	case ExprBinaryLogicalAnd:
		return "&&"
	case ExprBinaryLogicalOr:
		return "||"
	case ExprBinaryEq:
		return "=="
	case ExprBinaryNotEq:
		return "!="
	case ExprBinaryLess:
		return "<"
	case ExprBinaryLessEq:
		return "<="
	case ExprBinaryGreater:
		return ">"
	case ExprBinaryGreaterEq:
		return ">="
	default:
		return "?"
	}
}

// ExprUnaryOp enumerates prefix unary operator kinds.
type ExprUnaryOp uint8

const (
	// ExprUnaryNot represents logical negation (!).
	ExprUnaryNot ExprUnaryOp = iota
	// ExprUnaryNeg represents arithmetic negation (-).
	ExprUnaryNeg
	// ExprUnaryDeref represents pointer dereference (*).
	ExprUnaryDeref
)

// String returns the symbol representation of a unary operator.
func (op ExprUnaryOp) String() string {
	switch op {
	case ExprUnaryNot:
		return "!"
	case ExprUnaryNeg:
		return "-"
	case ExprUnaryDeref:
		return "*"
	default:
		return "?"
	}
}

// ExprLitKind enumerates literal kinds.
type ExprLitKind uint8

const (
	ExprLitInt ExprLitKind = iota
	ExprLitFloat
	ExprLitString
	ExprLitChar
	ExprLitBool
)

// ExprAssignOp enumerates assignment operator kinds, all of which are
// statements rather than boolean expressions.
type ExprAssignOp uint8

const (
	ExprAssignPlain ExprAssignOp = iota
	ExprAssignAdd
	ExprAssignSub
	ExprAssignMul
	ExprAssignDiv
	ExprAssignMod
	ExprAssignBitAnd
	ExprAssignBitOr
	ExprAssignBitXor
	ExprAssignShl
	ExprAssignShr
)
