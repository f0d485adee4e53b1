package modmath

// ElementKind names the machine-word surrogate the engine performs NTT
// arithmetic over, per spec.md §6.3 ("three word sizes — 32-bit int,
// 64-bit long, 64-bit double as an integer surrogate"). Each kind binds
// its own prime triple, primitive roots and maximum transform length.
type ElementKind int

const (
	Int32Kind ElementKind = iota
	Int64Kind
	DoubleKind
)

func (k ElementKind) String() string {
	switch k {
	case Int32Kind:
		return "int32"
	case Int64Kind:
		return "int64"
	case DoubleKind:
		return "double"
	default:
		return "unknown"
	}
}

// PrimeTriple is the (p0, p1, p2, primitive-root) bundle for one
// ElementKind: three odd primes of the form k*2^m+1, each with a factor
// of three in k so that every supported transform length — power of two
// or three times a power of two — has an N-th root of unity, and each
// with a verified primitive root. MaxLog2Length is m: the largest power
// of two transform length the triple supports (2^MaxLog2Length); a
// factor-3 transform can additionally reach 3*2^MaxLog2Length.
type PrimeTriple struct {
	Kind          ElementKind
	Primes        [3]uint64
	PrimitiveRoot [3]uint64
	MaxLog2Length int

	// Base is the internal NTT limb base: the number being multiplied is
	// first split into base-Base limbs (independent of the user-facing
	// presentation radix, e.g. 10 for decimal printing) small enough
	// that spec.md §3's bound N*(Base-1)^2 < p0*p1*p2's smallest factor
	// holds for every length this kind's primes can host. A 32-bit word
	// kind does not mean 32-bit limbs: the limb width is whatever keeps
	// the pointwise product inside one machine word of headroom, the
	// same tradeoff the apfloat original makes per element type.
	Base uint64
}

// primeTriples holds one verified triple per ElementKind. Primality and
// primitive-root status were verified offline (Miller-Rabin plus full
// factorization of p-1's odd part), since the apfloat original this
// kernel is modeled on ships its own hard-coded constants that were not
// retrieved into the example pack.
var primeTriples = map[ElementKind]PrimeTriple{
	Int32Kind: {
		Kind:          Int32Kind,
		Primes:        [3]uint64{2113929217, 2013265921, 1811939329},
		PrimitiveRoot: [3]uint64{5, 31, 13},
		MaxLog2Length: 25,
		Base:          1 << 8,
	},
	Int64Kind: {
		Kind:          Int64Kind,
		Primes:        [3]uint64{4611686078556930049, 4611686123654086657, 4611686278272909313},
		PrimitiveRoot: [3]uint64{11, 5, 5},
		MaxLog2Length: 31,
		Base:          1 << 16,
	},
	DoubleKind: {
		Kind:          DoubleKind,
		Primes:        [3]uint64{562950523846657, 562950624509953, 562951027163137},
		PrimitiveRoot: [3]uint64{13, 10, 5},
		MaxLog2Length: 24,
		Base:          1 << 4,
	},
}

// Triple returns the verified prime triple for kind.
func Triple(kind ElementKind) PrimeTriple {
	return primeTriples[kind]
}

// MaxTransformLength returns the largest transform length (power of two,
// or three times a power of two) this element kind can host, the value
// spec.md §4.2 calls getMaxTransformLength. It is bounded both by the
// 2-adic order of the prime triple (2^MaxLog2Length, times 3 if a factor
// of three is used) and by the CRT-safety bound of spec.md §3:
// N*(Base-1)^2 < p0*p1*p2's smallest factor.
func (t PrimeTriple) MaxTransformLength() int64 {
	byOrder := int64(3) << uint(t.MaxLog2Length)

	minPrime := t.Primes[0]
	for _, p := range t.Primes[1:] {
		if p < minPrime {
			minPrime = p
		}
	}
	elemMax := t.Base - 1
	byRadix := int64(minPrime / (elemMax * elemMax))

	if byRadix < byOrder {
		return byRadix
	}
	return byOrder
}

// Moduli returns the three Modulus values for this triple.
func (t PrimeTriple) Moduli() [3]Modulus {
	return [3]Modulus{NewModulus(t.Primes[0]), NewModulus(t.Primes[1]), NewModulus(t.Primes[2])}
}
