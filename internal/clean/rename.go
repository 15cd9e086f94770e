package clean

import (
	"log"
	"strings"

	"dataprep/internal/table"
)

// ParseRenameSpec parses a rename specification of the form
// "Original:New,Original2:New2". The left side of each pair is normalized
// with Name so it matches post-normalization headers; the right side is kept
// verbatim apart from trimming. Pairs without a colon are skipped with a
// warning. Empty input yields an empty mapping.
func ParseRenameSpec(spec string) map[string]string {
	mapping := map[string]string{}
	if strings.TrimSpace(spec) == "" {
		return mapping
	}
	for _, pair := range strings.Split(spec, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		old, new, found := strings.Cut(pair, ":")
		if !found {
			log.Printf("warning: ignoring invalid rename pair %q (expected OLD:NEW)", pair)
			continue
		}
		mapping[Name(old)] = strings.TrimSpace(new)
	}
	return mapping
}

// Rename applies user-supplied column renames. Only entries whose key is a
// current column are applied; the rest are logged and skipped. A rename whose
// target collides with another existing column is refused with a warning
// (keeping the header set unique) rather than guessing an overwrite policy.
type Rename struct {
	Mapping map[string]string
}

func (Rename) Name() string { return "rename_columns" }

func (s Rename) Apply(t *table.Table) {
	if len(s.Mapping) == 0 {
		return
	}
	applied := 0
	for old, new := range s.Mapping {
		if !t.HasColumn(old) {
			debugf("rename: column %q not present, skipping", old)
			continue
		}
		if old != new && t.HasColumn(new) {
			log.Printf("warning: rename %q -> %q collides with an existing column, skipping", old, new)
			continue
		}
		if t.RenameColumn(old, new) {
			applied++
		}
	}
	if applied == 0 {
		log.Printf("warning: no rename mappings matched existing columns")
		return
	}
	debugf("applied %d column renames", applied)
}
