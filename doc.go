// Package coerce provides:
//
// - Schema-driven coercion of loosely-typed input (text, bytes, mappings)
//   into strongly-typed values (Validate/ValidateString/ValidateBytes)
// - A strict/lax policy switch threaded explicitly through every coercion
// - A stable error model via Issues (kind, location path, message, input echo)
//   with fail-slow aggregation across mapping entries
// - JSON and YAML boundary decoders that preserve mapping order
//   (ValidateJSON/ValidateYAML)
//
// Design policy:
// - Keep only public APIs in the root package; the ISO-8601 grammar lives in
//   isodate/ and messages in i18n/.
// - The schema variant set is closed: one coercion routine per variant,
//   dispatched by a single switch. New types are added by adding variants.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := coerce.Dict(coerce.Int(), coerce.Date())
//	out, err := coerce.ValidateJSON(ctx, s, data, coerce.Lax)
//	if iss, ok := coerce.AsIssues(err); ok {
//		for _, it := range iss {
//			log.Printf("%s at %s: %s", it.Kind, it.Loc, it.Message)
//		}
//	}
package coerce
