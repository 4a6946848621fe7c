//    EcosystemLDA
//    Copyright: BIDS 2016-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dtm

import (
	"errors"
	"strings"

	"github.com/BIDS-projects/lda/internal/corp"
	"github.com/BIDS-projects/lda/internal/str"
	"github.com/BIDS-projects/lda/internal/vv"
	"github.com/james-bowman/nlp"
	"gonum.org/v1/gonum/mat"
)

//
// WEIGHTED DOCUMENT-TERM MATRIX
//

// DocTermMat - the weighted document-term frequency matrix plus its labels;
// Counts, Terms and Titles stay index-aligned for the life of the object
type DocTermMat struct {
	Counts *mat.Dense // weighted document instances x vocabulary terms
	Terms  []string   // ordered vocabulary
	Titles []string   // one per source document, in load order
	RowDoc []int      // matrix row -> position in Titles
}

// CreateDocTermMat - replicate each document per its weighting, vectorise the lot,
// and drop every term that occurs fewer than MINTERMCOUNT times corpus-wide
func CreateDocTermMat(docs []str.Document) (*DocTermMat, error) {
	const (
		FAIL1 = "refusing to build a matrix from an empty corpus"
		FAIL2 = "the corpus has no terms above the frequency cutoff"
	)

	var weighted []string
	var rowdoc []int
	titles := make([]string, 0, len(docs))

	for i, d := range docs {
		titles = append(titles, d.BaseURL)
		n, err := corp.Replication(d.DegSep, corp.PowerLaw)
		if err != nil {
			return nil, err
		}
		joined := strings.Join(d.Words, " ")
		for j := 0; j < n; j++ {
			weighted = append(weighted, joined)
			rowdoc = append(rowdoc, i)
		}
	}

	if len(weighted) == 0 {
		return nil, errors.New(FAIL1)
	}

	// the loader already stripped the stopwords; the vectoriser only has to count
	vectoriser := nlp.NewCountVectoriser()
	tdmat, err := vectoriser.FitTransform(weighted...)
	if err != nil {
		return nil, err
	}

	vocab := make([]string, len(vectoriser.Vocabulary))
	for w, i := range vectoriser.Vocabulary {
		vocab[i] = w
	}

	// nlp hands back terms x instances; find the terms worth keeping
	tr, tc := tdmat.Dims()
	var keep []int
	for t := 0; t < tr; t++ {
		total := 0.0
		for d := 0; d < tc; d++ {
			total += tdmat.At(t, d)
		}
		if int(total) >= vv.MINTERMCOUNT {
			keep = append(keep, t)
		}
	}

	if len(keep) == 0 {
		return nil, errors.New(FAIL2)
	}

	terms := make([]string, len(keep))
	counts := mat.NewDense(tc, len(keep), nil)
	for i, t := range keep {
		terms[i] = vocab[t]
		for d := 0; d < tc; d++ {
			counts.Set(d, i, tdmat.At(t, d))
		}
	}

	return &DocTermMat{
		Counts: counts,
		Terms:  terms,
		Titles: titles,
		RowDoc: rowdoc,
	}, nil
}
