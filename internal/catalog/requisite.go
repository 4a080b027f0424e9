package catalog

import (
	"fmt"
	"strings"
)

// ParseRequisiteList turns the literal list text used in configuration
// ("['MATH101', 'MATH102']", "[]", "-") into course IDs. A bare
// comma-separated list without brackets is accepted too.
func ParseRequisiteList(text string) ([]string, error) {
	s := strings.TrimSpace(text)
	if s == "" || s == "-" {
		return nil, nil
	}

	if strings.HasPrefix(s, "[") || strings.HasSuffix(s, "]") {
		if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
			return nil, fmt.Errorf("unbalanced brackets in %q", text)
		}
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item, err := unquote(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("requisite list %q: %w", text, err)
		}
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func unquote(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	q := s[0]
	if q != '\'' && q != '"' {
		if strings.ContainsAny(s, `'"[]`) {
			return "", fmt.Errorf("malformed item %q", s)
		}
		return s, nil
	}
	if len(s) < 2 || s[len(s)-1] != q {
		return "", fmt.Errorf("unterminated quote in %q", s)
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if strings.ContainsAny(inner, `'"`) {
		return "", fmt.Errorf("malformed item %q", s)
	}
	return inner, nil
}
