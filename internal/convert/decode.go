package convert

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// decode interprets converter output as UTF-8 when valid, otherwise as
// GB18030, the superset encoding the legacy Chinese documents were written
// in. Undecodable bytes degrade to replacement runes rather than errors.
func decode(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	if decoded, err := simplifiedchinese.GB18030.NewDecoder().Bytes(raw); err == nil {
		return string(decoded)
	}
	return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
}
