package terms

import (
	"cmp"
	"slices"
	"strings"
)

// NormalizeKey removes all characters except ASCII letters and digits
// and lowercases the rest. The key is used for ordering only.
func NormalizeKey(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r + ('a' - 'A'))
		}
	}
	return sb.String()
}

type keyedRecord struct {
	key string
	rec Record
}

// Sort orders records by normalized synonym, then identifier, then
// species. Records with equal keys keep their relative order.
func Sort(records []Record) {
	keyed := make([]keyedRecord, len(records))
	for i, v := range records {
		keyed[i] = keyedRecord{key: NormalizeKey(v.Synonym), rec: v}
	}

	slices.SortStableFunc(keyed, func(a, b keyedRecord) int {
		return cmp.Or(
			strings.Compare(a.key, b.key),
			strings.Compare(a.rec.Identifier, b.rec.Identifier),
			strings.Compare(a.rec.Species, b.rec.Species),
		)
	})

	for i := range keyed {
		records[i] = keyed[i].rec
	}
}
