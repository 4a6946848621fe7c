//    EcosystemLDA
//    Copyright: BIDS 2016-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dtm

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BIDS-projects/lda/internal/corp"
	"github.com/BIDS-projects/lda/internal/str"
	"github.com/BIDS-projects/lda/internal/vv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampledocs() []str.Document {
	return []str.Document{
		{BaseURL: "http://a.example.org", Words: strings.Fields("cat dog cat"), DegSep: 1},
		{BaseURL: "http://b.example.org", Words: strings.Fields("dog bird"), DegSep: vv.MAXDEGREE},
	}
}

func TestCreateDocTermMatReplicatesByDegree(t *testing.T) {
	m, err := CreateDocTermMat(sampledocs())
	require.NoError(t, err)

	r1, err := corp.Replication(1, corp.PowerLaw)
	require.NoError(t, err)

	rows, _ := m.Counts.Dims()
	assert.Equal(t, r1+1, rows)
	assert.Equal(t, []string{"http://a.example.org", "http://b.example.org"}, m.Titles)
	assert.Len(t, m.RowDoc, rows)
	assert.Equal(t, 0, m.RowDoc[0])
	assert.Equal(t, 1, m.RowDoc[rows-1])
}

func TestCreateDocTermMatDropsRareTerms(t *testing.T) {
	m, err := CreateDocTermMat(sampledocs())
	require.NoError(t, err)

	// "bird" shows up once in the whole weighted corpus and must be cut
	assert.Contains(t, m.Terms, "cat")
	assert.Contains(t, m.Terms, "dog")
	assert.NotContains(t, m.Terms, "bird")
}

func TestCreateDocTermMatCountsAreAligned(t *testing.T) {
	m, err := CreateDocTermMat(sampledocs())
	require.NoError(t, err)

	rows, _ := m.Counts.Dims()
	cat, dog := -1, -1
	for i, term := range m.Terms {
		switch term {
		case "cat":
			cat = i
		case "dog":
			dog = i
		}
	}
	require.NotEqual(t, -1, cat)
	require.NotEqual(t, -1, dog)

	// every replicated instance of the first document: "cat dog cat"
	assert.Equal(t, 2.0, m.Counts.At(0, cat))
	assert.Equal(t, 1.0, m.Counts.At(0, dog))

	// the single instance of the second document: "dog bird" minus the cut term
	assert.Equal(t, 0.0, m.Counts.At(rows-1, cat))
	assert.Equal(t, 1.0, m.Counts.At(rows-1, dog))
}

func TestCreateDocTermMatRefusesAnEmptyCorpus(t *testing.T) {
	_, err := CreateDocTermMat([]str.Document{})
	assert.Error(t, err)
}

func TestCreateDocTermMatRefusesBadDegrees(t *testing.T) {
	docs := []str.Document{
		{BaseURL: "http://a.example.org", Words: []string{"cat"}, DegSep: 0},
	}
	_, err := CreateDocTermMat(docs)
	assert.Error(t, err)
}

func TestCreateDocTermMatRefusesAnAllRareCorpus(t *testing.T) {
	docs := []str.Document{
		{BaseURL: "http://a.example.org", Words: []string{"cat"}, DegSep: vv.MAXDEGREE},
		{BaseURL: "http://b.example.org", Words: []string{"dog"}, DegSep: vv.MAXDEGREE},
	}
	_, err := CreateDocTermMat(docs)
	assert.Error(t, err)
}

func TestSaveToWritesHeaderAndEveryInstance(t *testing.T) {
	m, err := CreateDocTermMat(sampledocs())
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "matrix.csv")
	require.NoError(t, m.SaveTo(out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	rows, _ := m.Counts.Dims()
	require.Len(t, records, rows+1)
	assert.Equal(t, m.Terms, records[0])
	for _, rec := range records[1:] {
		assert.Len(t, rec, len(m.Terms))
	}
}
