package css

import (
	"strings"

	"github.com/pkg/errors"
)

// Rule is a single CSS rule: one simple selector and a set of property values (raw strings).
type Rule struct {
	Selector string            // ".panel", "#menu" or a compound class selector ".mode-button.active"
	Props    map[string]string // e.g. "background" -> "#333"
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// Parse parses a primitive CSS file: class/id selectors, comma-separated selector groups and
// blocks of "key: value;". No combinators, no @rules; blocks with other selectors are skipped.
// An unterminated block is an error.
func Parse(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	content = stripComments(content)
	for {
		rules, rest, ok, err := parseOneBlock(content)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		sheet.Rules = append(sheet.Rules, rules...)
		content = rest
	}
	return sheet, nil
}

// MustParse is Parse for stylesheets compiled into the binary.
func MustParse(content string) *Stylesheet {
	s, err := Parse(content)
	if err != nil {
		panic(err)
	}
	return s
}

// Merge returns a stylesheet with the rules of s followed by the rules of other, so other wins.
func (s *Stylesheet) Merge(other *Stylesheet) *Stylesheet {
	out := &Stylesheet{}
	if s != nil {
		out.Rules = append(out.Rules, s.Rules...)
	}
	if other != nil {
		out.Rules = append(out.Rules, other.Rules...)
	}
	return out
}

func stripComments(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if i+1 < len(s) && s[i] == '/' && s[i+1] == '*' {
			j := i + 2
			for j+1 < len(s) && !(s[j] == '*' && s[j+1] == '/') {
				j++
			}
			i = j + 2
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// parseOneBlock finds the next "selectors { ... }" and returns one rule per supported selector.
func parseOneBlock(s string) ([]Rule, string, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, "", false, nil
	}
	open := strings.Index(s, "{")
	if open == -1 {
		return nil, "", false, errors.Errorf("css: expected '{' after %q", truncate(s))
	}
	end := findMatchingBrace(s, open)
	if end == -1 {
		return nil, "", false, errors.Errorf("css: unterminated block for %q", strings.TrimSpace(s[:open]))
	}
	props := parseDeclarations(strings.TrimSpace(s[open+1 : end]))
	rest := s[end+1:]

	var rules []Rule
	for _, sel := range strings.Split(s[:open], ",") {
		sel = strings.TrimSpace(sel)
		if !supportedSelector(sel) {
			continue
		}
		rules = append(rules, Rule{Selector: sel, Props: props})
	}
	if len(rules) == 0 {
		// Nothing we understand in this block; move on to the next one.
		return parseOneBlock(rest)
	}
	return rules, rest, true, nil
}

func supportedSelector(sel string) bool {
	if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
		return false
	}
	return !strings.ContainsAny(sel, " >+~:[")
}

func truncate(s string) string {
	if len(s) > 20 {
		return s[:20] + "..."
	}
	return s
}

func findMatchingBrace(s string, openIdx int) int {
	depth := 1
	for i := openIdx + 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		colon := strings.Index(part, ":")
		if colon == -1 {
			continue
		}
		k := strings.ToLower(strings.TrimSpace(part[:colon]))
		v := strings.TrimSpace(part[colon+1:])
		if k != "" {
			props[k] = v
		}
	}
	return props
}
