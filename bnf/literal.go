package bnf

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

var escapes = map[byte]byte{
	'b': '\b',
	'f': '\f',
	'n': '\n',
	'r': '\r',
	't': '\t',
}

// Unescape decodes the body of a quoted BNF literal. \uHHHH yields that code
// point, \b \f \n \r \t yield control characters and any other escaped
// character yields itself. A \u not followed by four hex digits is kept
// verbatim. UTF-16 surrogate pairs combine; a lone surrogate yields U+FFFD.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			sb.WriteByte(c)
			continue
		}
		switch e := s[i+1]; e {
		case 'u':
			r, ok := hexRune(s[i+2:])
			if !ok {
				sb.WriteByte(c)
				continue
			}
			i += 5
			if utf16.IsSurrogate(r) {
				if low, ok := lowSurrogate(s[i+1:]); ok {
					if pair := utf16.DecodeRune(r, low); pair != utf8.RuneError {
						r = pair
						i += 6
					}
				}
				if utf16.IsSurrogate(r) {
					r = utf8.RuneError
				}
			}
			sb.WriteRune(r)
		default:
			if x, has := escapes[e]; has {
				e = x
			}
			sb.WriteByte(e)
			i++
		}
	}
	return sb.String()
}

func hexRune(s string) (rune, bool) {
	if len(s) < 4 {
		return 0, false
	}
	n, err := strconv.ParseUint(s[:4], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(n), true
}

func lowSurrogate(s string) (rune, bool) {
	if !strings.HasPrefix(s, `\u`) {
		return 0, false
	}
	return hexRune(s[2:])
}
