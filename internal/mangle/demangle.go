package mangle

import (
	"strconv"
	"strings"

	"github.com/tidwall/sjson"
)

// Demangle decodes a mangled name back to a JSON object `{"name":...,
// "type":...}` per spec.md §6. A name without the `_Q` prefix is not a
// QUIX-mangled name (it may be a C-ABI name, already readable) and is
// returned verbatim per spec.md §4.4.7. Demangling a malformed `_Q` name
// fails safely: it returns ("", false) rather than a partial result.
func Demangle(name string) (string, bool) {
	if !strings.HasPrefix(name, "_Q") {
		return name, true
	}
	rest := strings.TrimPrefix(name, "_Q")
	rest, ok := strings.CutSuffix(rest, ABIVersion)
	if !ok {
		return "", false
	}
	ns, rest, ok := decodeNSList(rest)
	if !ok {
		return "", false
	}
	typ, rest, ok := decodeType(rest)
	if !ok || rest != "" {
		return "", false
	}
	out, err := sjson.Set("{}", "name", strings.Join(ns, "::"))
	if err != nil {
		return "", false
	}
	out, err = sjson.Set(out, "type", typ)
	if err != nil {
		return "", false
	}
	return out, true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// decodeNSList consumes a run of <decimal-length><identifier>
// components. The boundary between the namespace-size-list and the
// following type-encoding is unambiguous: every type code starts with a
// letter, and every ns component starts with a digit, so decoding stops
// the moment the next byte is not a digit.
func decodeNSList(s string) (ns []string, rest string, ok bool) {
	for len(s) > 0 && isDigit(s[0]) {
		i := 0
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		n, err := strconv.Atoi(s[:i])
		if err != nil || n < 0 || i+n > len(s) {
			return nil, "", false
		}
		ns = append(ns, s[i:i+n])
		s = s[i+n:]
	}
	if len(ns) == 0 {
		return nil, "", false
	}
	return ns, s, true
}

// decodeType decodes one prefix-coded type per spec.md §4.4.7's grammar,
// returning a human-readable rendering (not a reconstructed IR node:
// §6 only promises a "human-readable type" string in the demangled
// JSON).
func decodeType(s string) (human string, rest string, ok bool) {
	if s == "" {
		return "", "", false
	}
	switch s[0] {
	case 'v':
		return "void", s[1:], true
	case 'b':
		return "u1", s[1:], true
	case 'h':
		return "u8", s[1:], true
	case 't':
		return "u16", s[1:], true
	case 'j':
		return "u32", s[1:], true
	case 'm':
		return "u64", s[1:], true
	case 'o':
		return "u128", s[1:], true
	case 'a':
		return "i8", s[1:], true
	case 's':
		return "i16", s[1:], true
	case 'i':
		return "i32", s[1:], true
	case 'l':
		return "i64", s[1:], true
	case 'n':
		return "i128", s[1:], true
	case 'D':
		if len(s) < 2 {
			return "", "", false
		}
		switch s[1] {
		case 'h':
			return "f16", s[2:], true
		case 'f':
			return "f32", s[2:], true
		case 'd':
			return "f64", s[2:], true
		case 'e':
			return "f128", s[2:], true
		}
		return "", "", false
	case 'P':
		inner, rest, ok := decodeType(s[1:])
		if !ok {
			return "", "", false
		}
		return "*" + inner, rest, true
	case 'N':
		ns, rest, ok := decodeNSList(s[1:])
		if !ok || rest == "" || rest[0] != 'E' {
			return "", "", false
		}
		return strings.Join(ns, "::"), rest[1:], true
	case 'c', 'u':
		kind := "struct"
		if s[0] == 'u' {
			kind = "union"
		}
		rest := s[1:]
		var fields []string
		for len(rest) > 0 && rest[0] != 'E' {
			var f string
			var decOk bool
			f, rest, decOk = decodeType(rest)
			if !decOk {
				return "", "", false
			}
			fields = append(fields, f)
		}
		if rest == "" {
			return "", "", false
		}
		return kind + "{" + strings.Join(fields, ",") + "}", rest[1:], true
	case 'A':
		rest := s[1:]
		i := 0
		for i < len(rest) && isDigit(rest[i]) {
			i++
		}
		if i == 0 {
			return "", "", false
		}
		count := rest[:i]
		rest = rest[i:]
		if rest == "" || rest[0] != '_' {
			return "", "", false
		}
		elem, rest2, ok := decodeType(rest[1:])
		if !ok {
			return "", "", false
		}
		return elem + "[" + count + "]", rest2, true
	case 'F':
		rest := s[1:]
		ret, rest, ok := decodeType(rest)
		if !ok {
			return "", "", false
		}
		var params []string
		variadic := false
		for len(rest) > 0 && rest[0] != 'E' {
			if rest[0] == '_' {
				variadic = true
				rest = rest[1:]
				continue
			}
			var p string
			var decOk bool
			p, rest, decOk = decodeType(rest)
			if !decOk {
				return "", "", false
			}
			params = append(params, p)
		}
		if rest == "" {
			return "", "", false
		}
		sig := "fn(" + strings.Join(params, ",") + ")"
		if variadic {
			sig += "..."
		}
		sig += "->" + ret
		return sig, rest[1:], true
	}
	return "", "", false
}
