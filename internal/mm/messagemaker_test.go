//    EcosystemLDA
//    Copyright: BIDS 2016-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	fn()
	require.NoError(t, w.Close())
	os.Stdout = old
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}

func TestEmitHonorsTheLogLevel(t *testing.T) {
	m := NewMessageMakerWithDefaults()
	m.BW = true

	m.LLvl = CRIT
	assert.Empty(t, capture(t, func() { m.TMI("hidden") }))
	assert.Contains(t, capture(t, func() { m.CRIT("urgent") }), "urgent")

	m.LLvl = TMI
	assert.Contains(t, capture(t, func() { m.TMI("chatty") }), "chatty")
}

func TestMandatoryMessagesAlwaysEmit(t *testing.T) {
	m := NewMessageMakerWithDefaults()
	m.BW = true
	m.LLvl = 0
	assert.Contains(t, capture(t, func() { m.MAND("banner") }), "banner")
}
