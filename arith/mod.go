package arith

import "math/big"

// Mod is a modular residue: a value paired with the modulus it lives in, with
// the invariant 0 <= Value < Modulus and Modulus != 0. Every operation on a
// Mod returns a new Mod; none mutate their receiver or operands, so Mod
// values are safe to share.
type Mod struct {
	Value   *big.Int
	Modulus *big.Int
}

// NewMod returns Mod{value mod modulus, modulus}. It panics if modulus is
// zero, mirroring the Python source's ZeroDivisionError — constructing an
// invalid Mod is a programmer error, not a recoverable one, the same way
// big.Int.Mod with a zero modulus panics.
func NewMod(value, modulus *big.Int) *Mod {
	if modulus.Sign() == 0 {
		panic(ErrZeroModulus)
	}
	v := new(big.Int).Mod(value, modulus)
	return &Mod{Value: v, Modulus: new(big.Int).Set(modulus)}
}

func (m *Mod) String() string {
	return m.Value.String() + " (mod " + m.Modulus.String() + ")"
}

// sameModulus returns other's value as a plain *big.Int, requiring it to
// share m's modulus.
func (m *Mod) sameModulus(other *Mod) (*big.Int, error) {
	if m.Modulus.Sign() == 0 || other.Modulus.Sign() == 0 {
		return nil, ErrZeroModulus
	}
	if m.Modulus.Cmp(other.Modulus) != 0 {
		return nil, ErrModulusMismatch
	}
	return other.Value, nil
}

// Equal reports whether m and other carry the same value and modulus.
func (m *Mod) Equal(other *Mod) bool {
	return m.Modulus.Cmp(other.Modulus) == 0 && m.Value.Cmp(other.Value) == 0
}

// EqualInt reports whether m's value, taken mod m.Modulus, equals n mod
// m.Modulus.
func (m *Mod) EqualInt(n *big.Int) bool {
	return m.Value.Cmp(new(big.Int).Mod(n, m.Modulus)) == 0
}

// IsZero reports whether m's value is zero (the Go analogue of the Python
// source's Mod.__bool__, which — per spec.md's Open Questions — is treated
// as testing self.Value, not the out-of-scope free name the original used).
func (m *Mod) IsZero() bool {
	return m.Value.Sign() == 0
}

// Neg returns -m.
func (m *Mod) Neg() *Mod {
	return NewMod(new(big.Int).Neg(m.Value), m.Modulus)
}

// Add returns m + other (mod m.Modulus). other must share m's modulus.
func (m *Mod) Add(other *Mod) (*Mod, error) {
	v, err := m.sameModulus(other)
	if err != nil {
		return nil, err
	}
	return NewMod(new(big.Int).Add(m.Value, v), m.Modulus), nil
}

// AddInt returns m + n (mod m.Modulus) for a plain integer n.
func (m *Mod) AddInt(n *big.Int) *Mod {
	return NewMod(new(big.Int).Add(m.Value, n), m.Modulus)
}

// Sub returns m - other (mod m.Modulus). other must share m's modulus.
func (m *Mod) Sub(other *Mod) (*Mod, error) {
	v, err := m.sameModulus(other)
	if err != nil {
		return nil, err
	}
	return NewMod(new(big.Int).Sub(m.Value, v), m.Modulus), nil
}

// SubInt returns m - n (mod m.Modulus).
func (m *Mod) SubInt(n *big.Int) *Mod {
	return NewMod(new(big.Int).Sub(m.Value, n), m.Modulus)
}

// Mul returns m * other (mod m.Modulus). other must share m's modulus.
func (m *Mod) Mul(other *Mod) (*Mod, error) {
	v, err := m.sameModulus(other)
	if err != nil {
		return nil, err
	}
	return NewMod(new(big.Int).Mul(m.Value, v), m.Modulus), nil
}

// MulInt returns m * n (mod m.Modulus).
func (m *Mod) MulInt(n *big.Int) *Mod {
	return NewMod(new(big.Int).Mul(m.Value, n), m.Modulus)
}

// Invertible reports whether m has a multiplicative inverse, i.e.
// gcd(m.Value, m.Modulus) == 1.
func (m *Mod) Invertible() bool {
	g := new(big.Int).GCD(nil, nil, m.Value, m.Modulus)
	return g.Cmp(bigOne) == 0
}

// Inv returns the multiplicative inverse of m via the extended Euclidean
// algorithm, or ErrNotInvertible if gcd(m.Value, m.Modulus) != 1.
func (m *Mod) Inv() (*Mod, error) {
	d, x, _ := ExtGCD(m.Value, m.Modulus)
	if d.Cmp(bigOne) != 0 {
		return nil, ErrNotInvertible
	}
	return NewMod(x, m.Modulus), nil
}

// Div returns t such that m == n*t (mod some modulus), where n is other's
// value (or a plain int). Division a/b (mod n) is defined only when
// gcd(b, n) | a; let d = gcd(b, n). The result carries modulus n/d, which may
// be narrower than m.Modulus — callers must read the returned Mod's Modulus
// rather than assuming it matches the dividend's.
func (m *Mod) Div(otherValue *big.Int) (*Mod, error) {
	d := new(big.Int).GCD(nil, nil, otherValue, m.Modulus)
	q, r := new(big.Int).QuoRem(m.Value, d, new(big.Int))
	if r.Sign() != 0 {
		return nil, ErrNotInvertible
	}
	narrowedOther := NewMod(new(big.Int).Quo(otherValue, d), new(big.Int).Quo(m.Modulus, d))
	inv, err := narrowedOther.Inv()
	if err != nil {
		return nil, err
	}
	return inv.MulInt(q), nil
}

// DivMod is Div with a Mod divisor; the divisor must share m's modulus.
func (m *Mod) DivMod(other *Mod) (*Mod, error) {
	if _, err := m.sameModulus(other); err != nil {
		return nil, err
	}
	return m.Div(other.Value)
}

// Pow returns m raised to the signed integer exponent e. A negative exponent
// composes with Inv.
func (m *Mod) Pow(e *big.Int) (*Mod, error) {
	if e.Sign() >= 0 {
		return NewMod(new(big.Int).Exp(m.Value, e, m.Modulus), m.Modulus), nil
	}
	inv, err := m.Inv()
	if err != nil {
		return nil, err
	}
	return NewMod(new(big.Int).Exp(inv.Value, new(big.Int).Neg(e), m.Modulus), m.Modulus), nil
}

// Half returns r such that r+r == m: when Modulus is odd the result keeps
// the same modulus; when Modulus is even and Value is even, both are halved;
// when Modulus is even and Value is odd, ErrNotInvertible is returned (2 has
// no inverse in an even modulus, so "m/2" isn't computable).
func (m *Mod) Half() (*Mod, error) {
	if m.Modulus.Bit(0) == 1 {
		if m.Value.Bit(0) == 1 {
			sum := new(big.Int).Add(m.Value, m.Modulus)
			return NewMod(sum.Rsh(sum, 1), m.Modulus), nil
		}
		return NewMod(new(big.Int).Rsh(m.Value, 1), m.Modulus), nil
	}
	if m.Value.Bit(0) == 1 {
		return nil, ErrNotInvertible
	}
	return NewMod(new(big.Int).Rsh(m.Value, 1), new(big.Int).Rsh(m.Modulus, 1)), nil
}

// Jacobi returns the Jacobi symbol (Value/Modulus) for odd Modulus > 0: -1,
// 0, or 1. For Modulus == 1 it is 1; for Value == 0 it is 0. The symbol is
// undefined for even Modulus, and this returns 0 with that caveat rather
// than erroring, matching spec.md §3.
func (m *Mod) Jacobi() int {
	if m.Value.Cmp(bigOne) == 0 || m.Modulus.Cmp(bigOne) == 0 {
		return 1
	}
	if m.Value.Sign() == 0 {
		return 0
	}
	e := TrailingZeros(m.Value)
	a := new(big.Int).Rsh(m.Value, uint(e))
	t := new(big.Int).And(m.Modulus, big.NewInt(7)).Int64()
	var s int
	if e&1 == 0 {
		s = 1
	} else if t&1 == 0 {
		return 0 // undefined for even modulus
	} else if t == 1 || t == 7 {
		s = 1
	} else {
		s = -1
	}
	aMod4 := new(big.Int).And(a, big.NewInt(3)).Int64()
	if t&3 == 3 && aMod4 == 3 {
		s = -s
	}
	next := NewMod(m.Modulus, a)
	return s * next.Jacobi()
}

// CRT combines residues r1 (mod n1) and r2 (mod n2), with gcd(n1, n2) == 1,
// into the unique residue modulo n1*n2 congruent to both. n1inv, if non-nil,
// is the precomputed value n1^-1 mod n2; otherwise it is computed here.
func CRT(r1, r2 *Mod, n1inv *big.Int) (*Mod, error) {
	if n1inv == nil {
		inv, err := NewMod(r1.Modulus, r2.Modulus).Inv()
		if err != nil {
			return nil, ErrNotInvertible
		}
		n1inv = inv.Value
	}
	h := NewMod(r2.Value, r2.Modulus).SubInt(r1.Value).MulInt(n1inv)
	n := new(big.Int).Mul(r1.Modulus, r2.Modulus)
	val := new(big.Int).Mul(r1.Modulus, h.Value)
	val.Add(val, r1.Value)
	return NewMod(val, n), nil
}
