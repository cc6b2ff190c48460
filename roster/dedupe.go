package roster

// DedupeByIdentity collapses records to one per resolved identity, keeping
// the first occurrence and its position. Records for which no key path
// resolves are never merged with anything (that would be a false-positive
// dedup) and never dropped: they are appended, in order, after the
// identity-bearing set. Ten records where two share an id and one has no
// identity at all therefore come back as nine.
func DedupeByIdentity(records []map[string]interface{}, keyPaths []string) []map[string]interface{} {
	if len(records) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(records))
	deduped := make([]map[string]interface{}, 0, len(records))
	var anonymous []map[string]interface{}
	for _, record := range records {
		if record == nil {
			continue
		}
		identity := ExtractIdentity(record, keyPaths)
		if identity == nil {
			anonymous = append(anonymous, record)
			continue
		}
		// identity is already normalized, so the key always resolves
		key, _ := IdentityKey(identity)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, record)
	}
	return append(deduped, anonymous...)
}

func filterRecords(records []map[string]interface{}, keep func(map[string]interface{}) bool) []map[string]interface{} {
	var kept []map[string]interface{}
	for _, record := range records {
		if record != nil && keep(record) {
			kept = append(kept, record)
		}
	}
	return kept
}
