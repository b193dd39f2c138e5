// Package derasn1 implements a restricted subset of ASN.1 Distinguished
// Encoding Rules: just enough of the universal tag set (NULL, BOOLEAN,
// INTEGER, OCTET STRING, UTF8String, OBJECT IDENTIFIER, SEQUENCE) plus
// context-specific tagging to build and parse the PKCS#1/X.509 fragments
// this toolkit needs. It is not a general-purpose ASN.1 library: there is
// no BER indefinite-length decoding, no support for tags outside this set,
// and no reflection-based struct (un)marshaling.
package derasn1

import (
	"errors"
	"fmt"

	"github.com/weiz0823/cryptogo/octet"
)

// ErrEncode is wrapped by every encoding failure.
var ErrEncode = errors.New("derasn1: encode error")

// ErrDecode is wrapped by every decoding failure.
var ErrDecode = errors.New("derasn1: decode error")

// Universal class tag numbers this package knows how to encode and decode.
const (
	TagBoolean     = 0x01
	TagInteger     = 0x02
	TagOctetString = 0x04
	TagNull        = 0x05
	TagOID         = 0x06
	TagUTF8String  = 0x0C
	TagSequence    = 0x10
)

// Class bits for identifier octets, per X.690 8.1.2.2.
const (
	ClassUniversal       = 0
	ClassApplication     = 1
	ClassContextSpecific = 2
	ClassPrivate         = 3
)

// Value is anything this package can render to DER and recover from it.
type Value interface {
	// Encode renders the complete TLV (tag, length, value) encoding.
	Encode() []byte
}

// Encode dispatches to v.Encode. It exists so call sites that build a value
// generically (e.g. from a Sequence literal) don't need a type switch of
// their own.
func Encode(v Value) []byte {
	return v.Encode()
}

// Decode parses the single DER-encoded value at the start of data and
// returns it along with the number of bytes consumed. It dispatches on the
// identifier octets' class and tag number to produce one of Null, Bool,
// *Int, OctetString, UTF8String, *OID, Sequence, or *ContextTagged.
func Decode(data []byte) (Value, int, error) {
	tag, constructed, class, contentStart, length, end, err := decodeHeader(data)
	if err != nil {
		return nil, 0, err
	}
	content := data[contentStart:end]

	if class != ClassUniversal {
		return decodeContextTagged(tag, constructed, content, end)
	}

	switch tag {
	case TagNull:
		if length != 0 {
			return nil, 0, fmt.Errorf("%w: NULL must be empty, got %d bytes", ErrDecode, length)
		}
		return Null{}, end, nil
	case TagBoolean:
		v, err := decodeBoolContent(content)
		if err != nil {
			return nil, 0, err
		}
		return v, end, nil
	case TagInteger:
		return Int{octet.OS2IP(content)}, end, nil
	case TagOctetString:
		out := make(OctetString, len(content))
		copy(out, content)
		return out, end, nil
	case TagUTF8String:
		return UTF8String(content), end, nil
	case TagOID:
		oid, err := decodeOIDContent(content)
		if err != nil {
			return nil, 0, err
		}
		return oid, end, nil
	case TagSequence:
		seq, err := decodeSequenceContent(content)
		if err != nil {
			return nil, 0, err
		}
		return seq, end, nil
	default:
		return nil, 0, fmt.Errorf("%w: unsupported universal tag %d", ErrDecode, tag)
	}
}

// decodeHeader parses identifier and length octets and returns enough to
// slice out the content.
func decodeHeader(data []byte) (tag int, constructed bool, class int, contentStart, length, end int, err error) {
	t, isConstructed, classType, idEnd, derr := decodeIDOctets(data, 0)
	if derr != nil {
		return 0, false, 0, 0, 0, 0, derr
	}
	l, lenEnd, derr := decodeLengthOctets(data, idEnd)
	if derr != nil {
		return 0, false, 0, 0, 0, 0, derr
	}
	if l < 0 {
		return 0, false, 0, 0, 0, 0, fmt.Errorf("%w: indefinite-length encoding not supported", ErrDecode)
	}
	if lenEnd+l > len(data) {
		return 0, false, 0, 0, 0, 0, fmt.Errorf("%w: truncated content, need %d bytes, have %d", ErrDecode, l, len(data)-lenEnd)
	}
	return t, isConstructed, classType, lenEnd, l, lenEnd + l, nil
}

func decodeContextTagged(tag int, constructed bool, content []byte, end int) (Value, int, error) {
	raw := make([]byte, len(content))
	copy(raw, content)
	return &ContextTagged{Tag: tag, Constructed: constructed, Raw: raw}, end, nil
}
