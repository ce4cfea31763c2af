package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexer
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedChar         Code = 1003
	LexUnterminatedBlockComment Code = 1004
	LexBadNumber                Code = 1005

	// Parser
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynExpectExpression Code = 2002
	SynUnclosedParen    Code = 2003
	SynUnclosedBrace    Code = 2004
	SynUnclosedBracket  Code = 2005
	SynExpectIdentifier Code = 2006
	SynExpectFatArrow   Code = 2007
	SynExpectType       Code = 2008
	SynExpectBlock      Code = 2009
	SynTrailingTokens   Code = 2010

	// Assert argument parsing
	MacInfo                     Code = 3000
	MacMissingCondition         Code = 3001
	MacIncompleteCondition      Code = 3002
	MacExpectCommaBeforeMessage Code = 3003

	// Classification and rewriting
	ExpInfo                  Code = 4000
	ExpUnsupportedExpression Code = 4001

	// I/O
	IoInfo        Code = 5000
	IoReadFailed  Code = 5001
	IoWriteFailed Code = 5002

	// Project manifest
	PrjInfo        Code = 6000
	PrjBadManifest Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexInfo:                     "lexer info",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedChar:         "unterminated character literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed numeric literal",

	SynInfo:             "parser info",
	SynUnexpectedToken:  "unexpected token",
	SynExpectExpression: "expected an expression",
	SynUnclosedParen:    "unclosed parenthesis",
	SynUnclosedBrace:    "unclosed brace",
	SynUnclosedBracket:  "unclosed bracket",
	SynExpectIdentifier: "expected an identifier",
	SynExpectFatArrow:   "expected =>",
	SynExpectType:       "expected a type",
	SynExpectBlock:      "expected a block",
	SynTrailingTokens:   "trailing tokens after expression",

	MacInfo:                     "assert argument info",
	MacMissingCondition:         "missing condition to check",
	MacIncompleteCondition:      "incomplete expression",
	MacExpectCommaBeforeMessage: "condition has to be followed by a comma, if a message is provided",

	ExpInfo:                  "expansion info",
	ExpUnsupportedExpression: "unsupported expression in assert condition",

	IoInfo:        "io info",
	IoReadFailed:  "failed to read file",
	IoWriteFailed: "failed to write file",

	PrjInfo:        "project info",
	PrjBadManifest: "invalid project manifest",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("MAC%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("EXP%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
