package tools

import (
	"regexp"
	"strconv"
	"strings"
)

// tesseract --version prints "tesseract 5.3.0" (or "tesseract v4.1.1-rc2")
// on its first line, followed by the leptonica and image library versions.
var (
	tesseractLineRe = regexp.MustCompile(`(?im)^tesseract\s+v?(\d+(?:\.\d+){1,2}[\w.-]*)`)
	anyVersionRe    = regexp.MustCompile(`\bv?(\d+\.\d+(?:\.\d+)?[\w.-]*)`)
)

// ParseVersion extracts the tesseract version from `tesseract --version`
// output. Library lines such as "leptonica-1.82.0" are only used when no
// tesseract line is present.
func ParseVersion(out string) string {
	if m := tesseractLineRe.FindStringSubmatch(out); m != nil {
		return m[1]
	}
	first, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	if m := anyVersionRe.FindStringSubmatch(first); m != nil {
		return m[1]
	}
	return ""
}

// release is a parsed major.minor.patch triple plus any suffix
// ("-rc2", "-beta", ".20190623").
type release struct {
	num [3]int
	pre bool
}

func parseRelease(v string) (release, bool) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if v == "" {
		return release{}, false
	}
	core, suffix, hasSuffix := strings.Cut(v, "-")
	var r release
	for i, part := range strings.SplitN(core, ".", 4) {
		if i == 3 {
			break
		}
		n, err := strconv.Atoi(leadingDigits(part))
		if err != nil {
			if i == 0 {
				return release{}, false
			}
			break
		}
		r.num[i] = n
	}
	r.pre = hasSuffix && suffix != ""
	return r, true
}

func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

// VersionLess reports whether a is an older release than b. Unparseable
// versions never compare as older. A pre-release sorts before its release.
func VersionLess(a, b string) bool {
	ra, okA := parseRelease(a)
	rb, okB := parseRelease(b)
	if !okA || !okB {
		return false
	}
	for i := range ra.num {
		if ra.num[i] != rb.num[i] {
			return ra.num[i] < rb.num[i]
		}
	}
	return ra.pre && !rb.pre
}
