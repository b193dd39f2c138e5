package derasn1

import (
	"fmt"
	"strconv"
	"strings"
)

// OID is an ASN.1 OBJECT IDENTIFIER, carried alongside a human-readable
// description for pretty-printing (the description is not encoded into
// DER — it exists purely so OIDs print as "1.2.840.113549.1.1.1
// (rsaEncryption)" instead of a bare dotted string).
type OID struct {
	Identifier  string
	Description string
}

// NewOID builds an OID from a dotted-decimal identifier and a description.
func NewOID(identifier, description string) *OID {
	return &OID{Identifier: identifier, Description: description}
}

// Subnode extends this OID by one more arc, e.g.
// NewOID("1.2.840.113549.1.1", "pkcs1").Subnode("1", "rsaEncryption").
func (o *OID) Subnode(appendIdentifier, appendDescription string) *OID {
	id := o.Identifier + "." + appendIdentifier
	desc := o.Description
	if appendDescription != "" {
		if desc != "" {
			desc += "/"
		}
		desc += appendDescription
	}
	return &OID{Identifier: id, Description: desc}
}

// ParentNode strips the last arc off this OID.
func (o *OID) ParentNode() *OID {
	id := o.Identifier
	if i := strings.LastIndex(id, "."); i >= 0 {
		id = id[:i]
	}
	desc := o.Description
	if i := strings.LastIndex(desc, "/"); i >= 0 {
		desc = desc[:i]
	}
	return &OID{Identifier: id, Description: desc}
}

func (o *OID) String() string {
	if o.Description == "" {
		return o.Identifier
	}
	return fmt.Sprintf("%s (%s)", o.Identifier, o.Description)
}

// Encode implements Value. The description is not part of the DER
// encoding; two OIDs with the same Identifier but different Description
// encode identically.
func (o *OID) Encode() []byte {
	arcs, err := parseArcs(o.Identifier)
	if err != nil {
		// Encode cannot return an error without breaking the Value
		// interface; malformed identifiers are a programmer error caught
		// well before an OID reaches the wire (construction helpers in
		// this package always produce valid dotted identifiers).
		panic(fmt.Errorf("%w: %v", ErrEncode, err))
	}
	content := encodeArcs(arcs)
	return tlv(TagOID, content)
}

func parseArcs(identifier string) ([]int64, error) {
	parts := strings.Split(identifier, ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("OID identifier %q needs at least two arcs", identifier)
	}
	arcs := make([]int64, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("OID identifier %q: arc %q is not an integer", identifier, p)
		}
		arcs[i] = n
	}
	return arcs, nil
}

func encodeArcs(arcs []int64) []byte {
	var out []byte
	out = append(out, encodeBase128(arcs[0]*40+arcs[1])...)
	for _, a := range arcs[2:] {
		out = append(out, encodeBase128(a)...)
	}
	return out
}

// encodeBase128 renders a single arc value as the base-128, continuation-bit
// encoded octets X.690 8.19.2 describes.
func encodeBase128(v int64) []byte {
	if v == 0 {
		return []byte{0x00}
	}
	var rev []byte
	for v > 0 {
		rev = append(rev, byte(v&0x7F))
		v >>= 7
	}
	out := make([]byte, len(rev))
	for i, b := range rev {
		out[len(rev)-1-i] = b
	}
	for i := 0; i < len(out)-1; i++ {
		out[i] |= 0x80
	}
	return out
}

func decodeOIDContent(content []byte) (*OID, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: OID content must be at least 1 byte", ErrDecode)
	}
	arcs, err := decodeBase128Arcs(content)
	if err != nil {
		return nil, err
	}
	if len(arcs) == 0 {
		return nil, fmt.Errorf("%w: OID has no arcs", ErrDecode)
	}
	first := arcs[0]
	var a, b int64
	switch {
	case first < 40:
		a, b = 0, first
	case first < 80:
		a, b = 1, first-40
	default:
		a, b = 2, first-80
	}
	out := append([]int64{a, b}, arcs[1:]...)
	parts := make([]string, len(out))
	for i, v := range out {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return &OID{Identifier: strings.Join(parts, "."), Description: ""}, nil
}

func decodeBase128Arcs(content []byte) ([]int64, error) {
	var arcs []int64
	var cur int64
	i := 0
	for i < len(content) {
		cur = (cur << 7) | int64(content[i]&0x7F)
		if content[i]&0x80 == 0 {
			arcs = append(arcs, cur)
			cur = 0
		}
		i++
	}
	if cur != 0 {
		return nil, fmt.Errorf("%w: OID arcs not properly encoded", ErrDecode)
	}
	return arcs, nil
}
