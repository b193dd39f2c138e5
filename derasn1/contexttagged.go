package derasn1

// ContextTagged is an explicitly tagged, context-specific value (the `[0]`,
// `[1]`, ... style tags used e.g. by PKCS#1 OtherPrimeInfos and X.509
// extensions). Raw holds the already-encoded inner content octets; callers
// that need a typed inner value should decode Raw themselves with Decode.
type ContextTagged struct {
	Tag         int
	Constructed bool
	Raw         []byte
}

// NewContextTagged wraps inner (a fully encoded value, or the concatenation
// of several for a constructed tag) under an explicit context-specific tag.
func NewContextTagged(tag int, constructed bool, inner []byte) *ContextTagged {
	raw := make([]byte, len(inner))
	copy(raw, inner)
	return &ContextTagged{Tag: tag, Constructed: constructed, Raw: raw}
}

// Encode implements Value.
func (c *ContextTagged) Encode() []byte {
	out := make([]byte, 0, 2+len(c.Raw))
	out = append(out, encodeIDOctets(c.Tag, c.Constructed, ClassContextSpecific)...)
	out = append(out, encodeLengthOctets(len(c.Raw))...)
	out = append(out, c.Raw...)
	return out
}

// Inner decodes the wrapped content as a single ASN.1 value, as is typical
// for explicit tagging (where Raw holds exactly one encoded value).
func (c *ContextTagged) Inner() (Value, error) {
	v, _, err := Decode(c.Raw)
	return v, err
}
