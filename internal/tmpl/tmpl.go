package tmpl

import "strings"

// Expand replaces {key} placeholders in s with vars[key]. {Key}, with the
// first letter upper-cased, yields the title-cased value. Unknown
// placeholders are left as they are.
func Expand(s string, vars map[string]string) string {
	if !strings.Contains(s, "{") {
		return s
	}
	pairs := make([]string, 0, 4*len(vars))
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v, "{"+TitleCase(k)+"}", TitleCase(v))
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// TitleCase uppercases the first byte of s.
func TitleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
