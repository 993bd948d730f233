package coerce

// coerceDict applies the key and value sub-schemas across a mapping input
// under the same strictness. Both the key and the value of each pair are
// coerced even when the key already failed, and traversal continues past
// failures so one call surfaces every issue (fail-slow aggregation).
//
// Key failures extend the location with [keyRepr, "[key]"]; value failures
// with [keyRepr], where keyRepr is the original pre-coercion key. When two
// distinct input keys coerce to the same output key, the later pair wins in
// input traversal order.
func coerceDict(s *Schema, v Value, mode Strictness) (any, Issues) {
	if v.kind != valueMapping {
		return nil, issueOf(KindDictType, v, nil)
	}
	out := make(map[any]any, len(v.pairs))
	var errs Issues
	for _, p := range v.pairs {
		keyItem := p.Key.locItem()
		ok := true
		outKey, keyIss := validateValue(s.key, p.Key, mode)
		for _, it := range keyIss {
			errs = AppendIssues(errs, it.withOuter(LocKey("[key]")).withOuter(keyItem))
			ok = false
		}
		outVal, valIss := validateValue(s.value, p.Value, mode)
		for _, it := range valIss {
			errs = AppendIssues(errs, it.withOuter(keyItem))
			ok = false
		}
		if ok {
			out[outKey] = outVal
		}
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}
