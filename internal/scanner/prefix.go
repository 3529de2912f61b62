package scanner

import (
	"strconv"
	"strings"

	"github.com/kendru/doccmd/internal/domain"
)

// ExpandPrefix resolves the small shortcut DSL accepted by --prefix:
//
//	"tab"                 -> a single ASCII tab
//	"0"                    -> the empty string
//	an integer N in 1..99  -> N spaces
//	anything containing \  -> backslash-escape expansion (\t, \n, \r, \\)
//	anything else          -> used verbatim
func ExpandPrefix(raw string) (string, error) {
	switch raw {
	case "", "0":
		return "", nil
	case "tab":
		return "\t", nil
	}

	if n, err := strconv.Atoi(raw); err == nil {
		if n < 1 || n > 99 {
			return "", domain.NewError("config", "", 0,
				"--prefix integer shortcut must be between 1 and 99", nil)
		}
		return strings.Repeat(" ", n), nil
	}

	if strings.Contains(raw, "\\") {
		return unescape(raw), nil
	}

	return raw, nil
}

// unescape expands a small set of backslash escapes. Unknown escape
// sequences are passed through with the backslash dropped, which is the
// most forgiving behavior for a prefix string typed on a shell command
// line.
func unescape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
