package derasn1

import (
	"fmt"
	"math/big"

	"github.com/weiz0823/cryptogo/octet"
)

// Null is ASN.1 NULL: an empty value with no payload.
type Null struct{}

// Encode implements Value.
func (Null) Encode() []byte {
	return []byte{TagNull, 0x00}
}

// Bool is ASN.1 BOOLEAN. DER requires the all-ones byte for true.
type Bool bool

// Encode implements Value.
func (b Bool) Encode() []byte {
	v := byte(0x00)
	if b {
		v = 0xFF
	}
	return []byte{TagBoolean, 0x01, v}
}

// EncodeBool is a free-function form of Bool.Encode, for callers that
// prefer not to convert their value to the Bool type first.
func EncodeBool(value bool) []byte {
	return Bool(value).Encode()
}

// DecodeBool decodes a DER BOOLEAN at the start of data, returning the
// value and the number of bytes consumed.
func DecodeBool(data []byte) (bool, int, error) {
	v, n, err := Decode(data)
	if err != nil {
		return false, 0, err
	}
	b, ok := v.(Bool)
	if !ok {
		return false, 0, fmt.Errorf("%w: not a BOOLEAN", ErrDecode)
	}
	return bool(b), n, nil
}

func decodeBoolContent(content []byte) (Bool, error) {
	if len(content) != 1 {
		return false, fmt.Errorf("%w: BOOLEAN content must be 1 byte, got %d", ErrDecode, len(content))
	}
	return content[0] != 0x00, nil
}

// Int is ASN.1 INTEGER, carried as an arbitrary-precision signed value.
type Int struct {
	*big.Int
}

// NewInt wraps a *big.Int as an encodable ASN.1 INTEGER.
func NewInt(v *big.Int) Int {
	return Int{v}
}

// Encode implements Value.
func (i Int) Encode() []byte {
	content := octet.I2OSP(i.Int)
	return tlv(TagInteger, content)
}

// OctetString is ASN.1 OCTET STRING in primitive form.
type OctetString []byte

// Encode implements Value.
func (s OctetString) Encode() []byte {
	return tlv(TagOctetString, s)
}

// UTF8String is ASN.1 UTF8String in primitive form.
type UTF8String string

// Encode implements Value.
func (s UTF8String) Encode() []byte {
	return tlv(TagUTF8String, []byte(s))
}

// tlv assembles identifier+length+content for a low-tag-number (<31),
// universal, primitive value.
func tlv(tag int, content []byte) []byte {
	out := make([]byte, 0, 2+len(content))
	out = append(out, encodeIDOctets(tag, false, ClassUniversal)...)
	out = append(out, encodeLengthOctets(len(content))...)
	out = append(out, content...)
	return out
}
