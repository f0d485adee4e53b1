package convolve

import (
	"math/big"

	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
	"github.com/Eternal-Night-Archer/apfloat-10yo/storage"
)

// crtCoeffs holds the precomputed CRT reconstruction constants for one
// prime triple: P = p0*p1*p2 and the three coefficients c_k such that
// v = sum_k(r_k * c_k) mod P reconstructs the unique v in [0, P) with
// v ≡ r_k (mod p_k) for each k. Computed once per CarryCRT call, not once
// per digit position, per spec.md §4.5's "precomputed CRT coefficients".
type crtCoeffs struct {
	p     *big.Int
	coeff [3]*big.Int
}

func newCRTCoeffs(primes modmath.PrimeTriple) *crtCoeffs {
	p0 := new(big.Int).SetUint64(primes.Primes[0])
	p1 := new(big.Int).SetUint64(primes.Primes[1])
	p2 := new(big.Int).SetUint64(primes.Primes[2])
	p := new(big.Int).Mul(p0, p1)
	p.Mul(p, p2)

	ps := [3]*big.Int{p0, p1, p2}
	c := &crtCoeffs{p: p}
	for k := 0; k < 3; k++ {
		mk := new(big.Int).Div(p, ps[k])
		inv := new(big.Int).ModInverse(mk, ps[k])
		ck := new(big.Int).Mul(mk, inv)
		ck.Mod(ck, p)
		c.coeff[k] = ck
	}
	return c
}

// combine reconstructs v ≡ r0 (mod p0), r1 (mod p1), r2 (mod p2) into
// dst, reusing scratch as working space so no allocation happens per
// call.
func (c *crtCoeffs) combine(dst, scratch *big.Int, r0, r1, r2 uint64) {
	dst.SetUint64(r0)
	dst.Mul(dst, c.coeff[0])
	scratch.SetUint64(r1)
	scratch.Mul(scratch, c.coeff[1])
	dst.Add(dst, scratch)
	scratch.SetUint64(r2)
	scratch.Mul(scratch, c.coeff[2])
	dst.Add(dst, scratch)
	dst.Mod(dst, c.p)
}

// CarryCRT reconstructs a radix-base digit stream of length resultSize
// from three NTT-domain residue storages r0, r1, r2 of common length N
// over primes.Primes, per spec.md §4.5: processed least-significant
// position first, each position's three residues are CRT-recombined
// into a single P-bounded integer, folded into a running carry, and
// base-radix digits are peeled off the carry one at a time. A fixed set
// of big.Int values is reused across all positions, generalizing lattigo's
// ring.RNSRing.PolyToBigint (one big.Int kept per coefficient,
// materialized as a full slice) down to a true single pass.
//
// High-order positions beyond resultSize are still folded into the
// carry (dropping them early would corrupt the carry chain); only the
// digits written to dst are truncated, matching spec.md §4.5's "truncate
// or zero-pad to S output digits".
func CarryCRT(base uint64, primes modmath.PrimeTriple, r0, r1, r2 storage.DataStorage, resultSize int64, dst storage.DataStorage) error {
	coeffs := newCRTCoeffs(primes)
	n := r0.Size()

	it0, err := r0.Iterator(storage.Read, 0, n)
	if err != nil {
		return err
	}
	it1, err := r1.Iterator(storage.Read, 0, n)
	if err != nil {
		return err
	}
	it2, err := r2.Iterator(storage.Read, 0, n)
	if err != nil {
		return err
	}
	w, err := dst.Iterator(storage.Write, 0, resultSize)
	if err != nil {
		return err
	}

	v := new(big.Int)
	scratch := new(big.Int)
	carry := new(big.Int)
	baseBig := new(big.Int).SetUint64(base)
	q := new(big.Int)
	rem := new(big.Int)

	var out int64
	for i := int64(0); i < n; i++ {
		x0, err := it0.Get()
		if err != nil {
			return err
		}
		x1, err := it1.Get()
		if err != nil {
			return err
		}
		x2, err := it2.Get()
		if err != nil {
			return err
		}
		it0.Next()
		it1.Next()
		it2.Next()

		coeffs.combine(v, scratch, x0, x1, x2)
		carry.Add(carry, v)

		q.DivMod(carry, baseBig, rem)
		carry.Set(q)
		if out < resultSize {
			if err := w.Set(rem.Uint64()); err != nil {
				return err
			}
			w.Next()
			out++
		}
	}

	for out < resultSize && carry.Sign() != 0 {
		q.DivMod(carry, baseBig, rem)
		carry.Set(q)
		if err := w.Set(rem.Uint64()); err != nil {
			return err
		}
		w.Next()
		out++
	}
	for ; out < resultSize; out++ {
		if err := w.Set(0); err != nil {
			return err
		}
		w.Next()
	}
	return storage.Flush(w)
}
