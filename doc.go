/*
Package cryptogo is a from-scratch RSA/DSA toolkit.

# Overview

cryptogo builds RSA and DSA on top of its own arbitrary-precision modular
arithmetic, its own probable/provable prime generation, and its own restricted
ASN.1 DER codec, rather than delegating any of that to crypto/rsa or
encoding/asn1. The layers are, leaves first:

	octet        — signed/unsigned big-integer <-> octet-string conversion
	arith        — gcd family, the Mod modular-residue type, CRT combine
	arith/primes — sieve, Miller-Rabin, Baillie-PSW, Shawe-Taylor provable primes
	derasn1      — DER identifier/length octets, the auto-dispatch encode/decode
	hashid       — a narrow hash-algorithm capability (OID, digest length, invoke)
	mgf          — MGF1 mask generation from a hashid.Algorithm
	rsaimpl      — RSA keys, RSAEP/RSADP/RSASP/RSAVP, keygen, PKCS#1 v1.5/OAEP/PSS
	dsa          — DSA domain/key generation, sign, verify
	randomart    — the drunken-bishop key fingerprint renderer
	seclog       — non-fatal security-warning advisories (weak keys, hash
	               domain-bound overruns, over-strength requests)

Each package is independently testable and imports only the layers beneath it;
see SPEC_FULL.md for the full component breakdown.

# Security

This module does not implement constant-time arithmetic beyond CRT
recombination and padding checks being independent of secret bytes (see
rsaimpl's OAEP decrypt, which always performs every padding check rather than
returning early on the first failure). It is not hardened against side
channels the way a production TLS stack would be, and does not implement
multi-prime RSA, X.509, or elliptic curves.

# Sources

	[1] RFC 8017 (PKCS #1 v2.2)
	[2] FIPS 186-4 Appendix C.6 (Shawe-Taylor provable primes)
	[3] FIPS 186-4 Appendix A (DSA domain/key generation)
*/
package cryptogo
