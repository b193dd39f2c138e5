package derasn1

import "fmt"

// encodeIDOctets renders identifier octets for the given tag number,
// constructed flag and class. Tags below 31 use the short single-octet
// form; larger tags switch to the long form (base-128 arcs with the
// continuation bit set on every octet but the last).
func encodeIDOctets(tag int, constructed bool, class int) []byte {
	var out []byte
	if tag < 0x1F {
		out = []byte{byte(tag)}
	} else {
		var arcs []byte
		t := tag
		arcs = append(arcs, byte(t&0x7F))
		t >>= 7
		for t > 0 {
			arcs = append(arcs, byte(0x80|(t&0x7F)))
			t >>= 7
		}
		// arcs was built least-significant first; reverse it and prefix
		// the 0x1F "tag follows" marker.
		out = make([]byte, 0, len(arcs)+1)
		out = append(out, 0x1F)
		for i := len(arcs) - 1; i >= 0; i-- {
			out = append(out, arcs[i])
		}
	}
	if constructed {
		out[0] |= 0x20
	}
	out[0] |= byte(class << 6)
	return out
}

// decodeIDOctets parses identifier octets starting at index and returns the
// tag number, constructed flag, class, and the index just past them.
func decodeIDOctets(data []byte, index int) (tag int, constructed bool, class int, end int, err error) {
	if index >= len(data) {
		return 0, false, 0, 0, fmt.Errorf("%w: identifier octets truncated", ErrDecode)
	}
	class = int((data[index] & 0xC0) >> 6)
	constructed = data[index]&0x20 != 0
	tag = int(data[index] & 0x1F)
	end = index + 1
	if tag != 0x1F {
		return tag, constructed, class, end, nil
	}

	tag = 0
	i := index + 1
	for {
		if i >= len(data) {
			return 0, false, 0, 0, fmt.Errorf("%w: identifier octets truncated", ErrDecode)
		}
		if data[i]&0x80 == 0 {
			tag |= int(data[i])
			i++
			break
		}
		tag |= int(data[i] & 0x7F)
		tag <<= 7
		i++
	}
	if tag < 0x1F {
		return 0, false, 0, 0, fmt.Errorf("%w: long-form tag not minimally encoded", ErrDecode)
	}
	return tag, constructed, class, i, nil
}

// encodeLengthOctets renders length octets. length < 0 requests the
// indefinite form (a single 0x80 octet); 0 <= length < 0x80 uses the
// definite short form; larger lengths use the definite long form.
func encodeLengthOctets(length int) []byte {
	switch {
	case length < 0:
		return []byte{0x80}
	case length < 0x80:
		return []byte{byte(length)}
	default:
		var rev []byte
		l := length
		for l > 0 {
			rev = append(rev, byte(l&0xFF))
			l >>= 8
		}
		out := make([]byte, 0, len(rev)+1)
		out = append(out, 0x80|byte(len(rev)))
		for i := len(rev) - 1; i >= 0; i-- {
			out = append(out, rev[i])
		}
		return out
	}
}

// decodeLengthOctets parses length octets starting at index. It returns -1
// for the indefinite form (which this package's Decode rejects downstream),
// and rejects a long form whose value would have fit in the short form, per
// DER's minimal-encoding requirement.
func decodeLengthOctets(data []byte, index int) (length int, end int, err error) {
	if index >= len(data) {
		return 0, 0, fmt.Errorf("%w: length octets truncated", ErrDecode)
	}
	first := data[index]
	if first == 0x80 {
		return -1, index + 1, nil
	}
	if first&0x80 == 0 {
		return int(first), index + 1, nil
	}

	num := int(first & 0x7F)
	if index+num >= len(data) {
		return 0, 0, fmt.Errorf("%w: length octets truncated", ErrDecode)
	}
	length = 0
	for i := 0; i < num; i++ {
		length <<= 8
		length |= int(data[index+1+i])
	}
	if length < 0x80 {
		return 0, 0, fmt.Errorf("%w: length %d should use the short form", ErrDecode, length)
	}
	return length, index + 1 + num, nil
}
