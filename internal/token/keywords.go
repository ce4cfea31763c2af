package token

var keywords = map[string]Kind{
	"let":      KwLet,
	"const":    KwConst,
	"mut":      KwMut,
	"if":       KwIf,
	"else":     KwElse,
	"match":    KwMatch,
	"unsafe":   KwUnsafe,
	"async":    KwAsync,
	"await":    KwAwait,
	"loop":     KwLoop,
	"while":    KwWhile,
	"for":      KwFor,
	"in":       KwIn,
	"break":    KwBreak,
	"continue": KwContinue,
	"return":   KwReturn,
	"as":       KwAs,
	"move":     KwMove,
	"true":     KwTrue,
	"false":    KwFalse,
}

// LookupKeyword returns the keyword kind for an identifier spelling, or
// (Invalid, false) when the spelling is not a keyword.
func LookupKeyword(s string) (Kind, bool) {
	k, ok := keywords[s]
	return k, ok
}
