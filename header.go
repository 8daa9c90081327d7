package hawk

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"text/scanner"
)

// scheme is the leading token of a Hawk Authorization/Server-Authorization
// header value, matched case-insensitively.
const scheme = "Hawk"

// extCarveOut pulls the ext="..." attribute out of a header string before
// generic tokenization runs. ext is the one field allowed to carry
// embedded, unescaped double quotes and newlines (observed in real
// traffic as the `key=""value""` shape), so it cannot be tokenized with
// the same quote-delimited scanner used for every other attribute. The
// capture is greedy up to the last `", mac="`, which is the conservative
// reading of the quirk: whatever's between ext="..." and the following
// mac attribute, quotes included, is the ext value.
var extCarveOut = regexp.MustCompile(`(?s),\s*ext="(.*)",\s*mac="`)

// parsedHeader is the set of attributes a Hawk header can carry, after
// parsing. Fields absent from the header are left as the zero value;
// HasHash/HasExt/HasApp/HasDlg distinguish "absent" from "present but
// empty" where that matters to a caller.
type parsedHeader struct {
	ID      string
	TS      string
	Nonce   string
	Hash    string
	Ext     string
	MAC     string
	App     string
	Dlg     string
	HasHash bool
	HasExt  bool
	HasApp  bool
	HasDlg  bool
}

// parseHeader parses a Hawk Authorization or Server-Authorization header
// value. Required attributes are id, ts, nonce, mac; their absence is a
// KindBadHeaderValue. Unknown attribute names are ignored rather than
// rejected, so a future protocol revision can add fields without breaking
// this parser.
func parseHeader(raw string) (parsedHeader, error) {
	raw = strings.TrimSpace(raw)
	fields := strings.Fields(raw)
	if len(fields) == 0 || !strings.EqualFold(fields[0], scheme) {
		return parsedHeader{}, newError(KindBadHeaderValue, "missing %q scheme", scheme)
	}
	rest := strings.TrimSpace(raw[len(fields[0]):])

	var ext string
	hasExt := false
	if m := extCarveOut.FindStringSubmatchIndex(rest); m != nil {
		ext = rest[m[2]:m[3]]
		hasExt = true
		// Splice the carved-out span back down to a plain ", mac=\"" so the
		// generic tokenizer below never sees the embedded quotes/newlines.
		rest = rest[:m[0]] + `, mac="` + rest[m[1]:]
	}

	attrs, err := tokenizeAttrs(rest)
	if err != nil {
		return parsedHeader{}, err
	}

	out := parsedHeader{Ext: ext, HasExt: hasExt}
	for k, v := range attrs {
		switch k {
		case "id":
			out.ID = v
		case "ts":
			out.TS = v
		case "nonce":
			out.Nonce = v
		case "hash":
			out.Hash, out.HasHash = v, true
		case "mac":
			out.MAC = v
		case "app":
			out.App, out.HasApp = v, true
		case "dlg":
			out.Dlg, out.HasDlg = v, true
		case "ext":
			if !hasExt {
				out.Ext, out.HasExt = v, true
			}
		}
	}

	if out.ID == "" || out.TS == "" || out.Nonce == "" || out.MAC == "" {
		return parsedHeader{}, newError(KindBadHeaderValue, "header missing one of id, ts, nonce, mac")
	}
	if out.HasDlg && !out.HasApp {
		return parsedHeader{}, newError(KindBadHeaderValue, "dlg present without app")
	}
	return out, nil
}

// tokenizeAttrs scans a comma-separated `key="value"` list using
// text/scanner, the same approach the signature.auth package uses for its
// Authorization: Signature header. Values handled here are assumed not to
// contain embedded quotes or newlines; the one field that can (ext) is
// carved out by the caller before this runs.
func tokenizeAttrs(src string) (map[string]string, error) {
	out := make(map[string]string)
	var s scanner.Scanner
	s.Init(strings.NewReader(src))
	s.Mode = scanner.ScanIdents | scanner.ScanStrings
	s.Whitespace ^= 1 << '\n' // let '\n' fall where it may; shouldn't appear here

	tok := s.Scan()
	for tok != scanner.EOF {
		if tok != scanner.Ident {
			return nil, newError(KindBadHeaderValue, "unexpected token at %s", s.Pos())
		}
		name := strings.ToLower(s.TokenText())

		tok = s.Scan()
		if tok != '=' {
			return nil, newError(KindBadHeaderValue, "expected '=' at %s", s.Pos())
		}

		tok = s.Scan()
		if tok != scanner.String {
			return nil, newError(KindBadHeaderValue, "expected quoted value at %s", s.Pos())
		}
		value, err := strconv.Unquote(s.TokenText())
		if err != nil {
			return nil, newError(KindBadHeaderValue, "malformed quoted value at %s", s.Pos())
		}
		out[name] = value

		tok = s.Scan()
		if tok == scanner.EOF {
			break
		}
		if tok != ',' {
			return nil, newError(KindBadHeaderValue, "expected ',' at %s", s.Pos())
		}
		tok = s.Scan()
	}
	return out, nil
}

// headerAttr is one key="value" pair in emission order.
type headerAttr struct {
	key   string
	value string
}

// buildHeader renders a Hawk header value from attrs in the order given,
// screening every value for forbidden characters first.
func buildHeader(attrs []headerAttr) (string, error) {
	var b strings.Builder
	b.WriteString(scheme)
	b.WriteByte(' ')
	for i, a := range attrs {
		if err := checkOpaque(a.key, a.value); err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, `%s="%s"`, a.key, a.value)
	}
	return b.String(), nil
}
