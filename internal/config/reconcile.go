package config

import "github.com/hushd/hush/internal/rules"

// Reconcile removes rule records a freshly loaded document cannot honor:
// records with an unknown scope, and REGION-scoped records whose region no
// longer exists in the document. Both can only enter through hand edits of
// the configuration file.
//
// The document is pruned in place. The dropped records are returned so the
// caller can log them; a non-empty return means the document changed and
// should be re-saved.
func Reconcile(doc *Document) []RuleRecord {
	known := make(map[string]bool, len(doc.Regions))
	for _, rec := range doc.Regions {
		known[rec.Name] = true
	}

	var dropped []RuleRecord
	kept := doc.Rules[:0]
	for _, rec := range doc.Rules {
		scope, err := rules.ParseScope(rec.Scope)
		if err != nil {
			dropped = append(dropped, rec)
			continue
		}
		if scope == rules.ScopeRegion && !known[rec.Region] {
			dropped = append(dropped, rec)
			continue
		}
		kept = append(kept, rec)
	}
	doc.Rules = kept
	return dropped
}
