//    EcosystemLDA
//    Copyright: BIDS 2016-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"testing"
	"time"

	"github.com/BIDS-projects/lda/internal/vv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectCtxBoundsOnlyTheDial(t *testing.T) {
	parent := context.Background()
	_, ok := parent.Deadline()
	require.False(t, ok, "corpus reads must run on an undeadlined context")

	ctx, cancel := ConnectCtx(parent)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(vv.MONGOTIMEOUT*time.Second), deadline, time.Second)
}
