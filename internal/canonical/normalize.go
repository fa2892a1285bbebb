package canonical

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeString prepares a vendor-supplied display string for canonical
// storage: Unicode NFC composition, whitespace collapsed to single spaces,
// leading/trailing space trimmed. Vendors emit the same product name with
// different encodings and stray whitespace between feed exports; without this
// the diff engine would report phantom updates.
func NormalizeString(s string) string {
	composed := norm.NFC.String(s)
	return strings.Join(strings.Fields(composed), " ")
}

// NormalizeSlug lowercases and trims a vendor slug so lookups are
// case-insensitive.
func NormalizeSlug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

var sizeRunRe = regexp.MustCompile(`^([0-9]{2})\s*[-□]\s*([0-9]{2})\s*-\s*([0-9]{3})$`)

// ParseSizeLabel splits a legacy frame size triple like "46□24-145" into the
// lens width, bridge and temple measurements in millimeters. ok is false when
// the label does not match the printed-box form.
func ParseSizeLabel(label string) (lens, bridge, temple float64, ok bool) {
	m := sizeRunRe.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return 0, 0, 0, false
	}

	lens, _ = strconv.ParseFloat(m[1], 64)
	bridge, _ = strconv.ParseFloat(m[2], 64)
	temple, _ = strconv.ParseFloat(m[3], 64)
	return lens, bridge, temple, true
}
