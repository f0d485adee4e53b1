package ntt

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
)

// rootCacheSize bounds how many distinct (length, modulusIdx) twiddle
// tables stay resident. Each strategy owns its own cache (newTriple
// creates it), and Builder.Build constructs fresh strategies on every
// call, so a table is reused within one strategy's transforms (its three
// moduli, both directions, its row and column subtransforms) but not
// across Build calls.
const rootCacheSize = 64

type rootKey struct {
	length     int64
	modulusIdx int
	inverse    bool
}

// rootCache memoizes CreateWTable results per (length, modulus, direction)
// the way goXRPLd's LedgerCache memoizes repeated lookups keyed by a
// composite struct key: an LRU sized generously enough that the working
// set of transform lengths in a typical multiply-heavy session stays hot.
type rootCache struct {
	tables *lru.Cache[rootKey, []uint64]
}

func newRootCache() *rootCache {
	c, err := lru.New[rootKey, []uint64](rootCacheSize)
	if err != nil {
		// Only fails for a non-positive size, which rootCacheSize never is.
		panic(err)
	}
	return &rootCache{tables: c}
}

// wTable returns the forward or inverse twiddle table of the given
// length for modulus m, building and caching it on first use.
func (rc *rootCache) wTable(m modmath.Modulus, modulusIdx int, g uint64, length int64, inverse bool) []uint64 {
	key := rootKey{length: length, modulusIdx: modulusIdx, inverse: inverse}
	if table, ok := rc.tables.Get(key); ok {
		return table
	}

	var root uint64
	if inverse {
		root = m.GetInverseNthRoot(g, length)
	} else {
		root = m.GetForwardNthRoot(g, length)
	}
	table := m.CreateWTable(root, int(length))
	rc.tables.Add(key, table)
	return table
}
