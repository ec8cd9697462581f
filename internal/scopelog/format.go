package scopelog

import (
	"fmt"
	"strconv"
	"strings"
)

// Format substitutes positional placeholders in tmpl.
//
//	{0}        first argument, rendered with fmt.Sprint
//	{1:%.2f}   second argument, rendered with the given fmt verb
//	{{ and }}  literal braces
//
// A placeholder whose index has no matching argument, an unclosed brace or
// a stray closing brace yields an error wrapping ErrFormat.
func Format(tmpl string, args ...any) (string, error) {
	var sb strings.Builder
	sb.Grow(len(tmpl))
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				sb.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed '{' at offset %d", ErrFormat, i)
			}
			field := tmpl[i+1 : i+1+end]
			s, err := formatField(field, args)
			if err != nil {
				return "", fmt.Errorf("%w: %v at offset %d", ErrFormat, err, i)
			}
			sb.WriteString(s)
			i += end + 1
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				sb.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("%w: unmatched '}' at offset %d", ErrFormat, i)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), nil
}

func formatField(field string, args []any) (string, error) {
	index, verb, hasVerb := strings.Cut(field, ":")
	index = strings.TrimSpace(index)
	n, err := strconv.Atoi(index)
	if err != nil || n < 0 {
		return "", fmt.Errorf("invalid placeholder index %q", index)
	}
	if n >= len(args) {
		return "", fmt.Errorf("placeholder {%d} has no argument (%d supplied)", n, len(args))
	}
	if !hasVerb {
		return fmt.Sprint(args[n]), nil
	}
	if !strings.HasPrefix(verb, "%") {
		return "", fmt.Errorf("invalid format verb %q", verb)
	}
	return fmt.Sprintf(verb, args[n]), nil
}
