//    EcosystemLDA
//    Copyright: BIDS 2016-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corp

import (
	"testing"

	"github.com/BIDS-projects/lda/internal/vv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplicationIsPositiveAndNonIncreasing(t *testing.T) {
	prev := 0
	for d := vv.MAXDEGREE; d >= 1; d-- {
		n, err := Replication(d, PowerLaw)
		require.NoError(t, err)
		assert.Greater(t, n, 0, "degree %d", d)
		assert.GreaterOrEqual(t, n, prev, "degree %d must not be weighted below degree %d", d, d+1)
		prev = n
	}
}

func TestReplicationAtMaxDegreeIsOne(t *testing.T) {
	n, err := Replication(vv.MAXDEGREE, PowerLaw)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestReplicationCapsOversizedDegrees(t *testing.T) {
	over, err := Replication(vv.MAXDEGREE+5, PowerLaw)
	require.NoError(t, err)
	atmax, err := Replication(vv.MAXDEGREE, PowerLaw)
	require.NoError(t, err)
	assert.Equal(t, atmax, over)
}

func TestReplicationRejectsDegreesBelowOne(t *testing.T) {
	for _, d := range []int{0, -1, -10} {
		_, err := Replication(d, PowerLaw)
		assert.Error(t, err, "degree %d", d)
	}
}

func TestReplicationHonorsACustomWeighting(t *testing.T) {
	inverse := func(d int) float64 { return 1.0 / float64(d) }
	n, err := Replication(1, inverse)
	require.NoError(t, err)
	assert.Equal(t, vv.MAXDEGREE, n)
}
