package laudo

// ParseKind maps a stored kind string to a Kind. Unknown values fall back
// to the precautionary kind so a record with a corrupt discriminator still
// renders with the default template.
func ParseKind(s string) Kind {
	switch Kind(s) {
	case KindPrecautionary, KindAccounting, KindExtrajudicial:
		return Kind(s)
	default:
		return KindPrecautionary
	}
}

// Normalize builds the type-tagged document model from loosely-typed input.
// Every recognized field missing from raw is defaulted to the empty string
// so the renderers can apply a single value-or-fallback rule without
// per-field nil checks. Unrecognized keys are retained untouched. The
// photo order is preserved verbatim; it is the sole pagination key.
// Normalize never fails.
func Normalize(kind string, raw map[string]string, photos []Photo, locationImage, logoImage string) Record {
	k := ParseKind(kind)

	fields := make(map[string]string, len(raw)+len(RecognizedFields(k)))
	for key, value := range raw {
		fields[key] = value
	}
	for _, key := range RecognizedFields(k) {
		if _, ok := fields[key]; !ok {
			fields[key] = ""
		}
	}

	out := make([]Photo, len(photos))
	copy(out, photos)

	return Record{
		Kind:          k,
		Fields:        fields,
		LocationImage: locationImage,
		LogoImage:     logoImage,
		Photos:        out,
	}
}
