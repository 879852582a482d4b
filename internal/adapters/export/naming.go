package export

import (
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/bft-labs/hexport/internal/domain"
)

// IDFunc returns a fresh unique identifier.
type IDFunc func() string

func newUUID() string {
	return uuid.NewString()
}

// FileName builds "<slug>-<id8>.<ext>" for user, e.g. "john-doe-1b4e28ba.csv".
func FileName(user domain.User, ext string, id IDFunc) string {
	suffix := strings.ReplaceAll(id(), "-", "")
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return slug(user.Name) + "-" + suffix + "." + ext
}

func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "user"
	}
	return s
}
