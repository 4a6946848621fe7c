//    EcosystemLDA
//    Copyright: BIDS 2016-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corp

import (
	"fmt"

	"github.com/BIDS-projects/lda/internal/vv"
)

//
// DOCUMENT WEIGHTING
//

// WeightFn - a monotonically decreasing weighting over degrees of separation
type WeightFn func(degsep int) float64

// PowerLaw - the default weighting: documents fade with the square of their distance
func PowerLaw(degsep int) float64 {
	return 1.0 / float64(degsep*degsep)
}

// Replication - how many times a document's word list enters the matrix builder;
// a document at MAXDEGREE is inserted exactly once, nearer documents proportionally more often
func Replication(degsep int, fn WeightFn) (int, error) {
	if degsep < 1 {
		return 0, fmt.Errorf("degree of separation must be >= 1 (got %d)", degsep)
	}
	if degsep > vv.MAXDEGREE {
		degsep = vv.MAXDEGREE
	}
	return int(fn(degsep) / fn(vv.MAXDEGREE)), nil
}
