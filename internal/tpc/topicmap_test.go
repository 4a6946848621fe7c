//    EcosystemLDA
//    Copyright: BIDS 2016-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tpc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BIDS-projects/lda/internal/str"
	"github.com/BIDS-projects/lda/internal/vv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveTopicMapWritesAChartPage(t *testing.T) {
	// a near document yields enough weighted instances to embed sensibly
	docs := []str.Document{
		{BaseURL: "http://a.example.org", Words: strings.Fields("cat dog cat dog cat"), DegSep: 3},
		{BaseURL: "http://b.example.org", Words: strings.Fields("bird fish bird fish"), DegSep: vv.MAXDEGREE},
		{BaseURL: "http://c.example.org", Words: strings.Fields("cat fish dog bird"), DegSep: vv.MAXDEGREE},
	}

	tm := NewTopicModel(2)
	tm.Iterations = 50
	tm.Processes = 1
	require.NoError(t, tm.Fit(docs))

	out := filepath.Join(t.TempDir(), "topicmap.html")
	require.NoError(t, tm.SaveTopicMap(out))

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(page), "echarts")
	assert.Contains(t, string(page), "topic 0")
}
