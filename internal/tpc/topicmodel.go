//    EcosystemLDA
//    Copyright: BIDS 2016-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tpc

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/BIDS-projects/lda/internal/dtm"
	"github.com/BIDS-projects/lda/internal/str"
	"github.com/BIDS-projects/lda/internal/vv"
	"github.com/james-bowman/nlp"
	"gonum.org/v1/gonum/mat"
)

//
// LDA WRAPPER
//

// TopicModel - a fixed-topic-count LDA run over a weighted document collection;
// the fitted distributions stay index-aligned with Mat.Terms and Mat.Titles
type TopicModel struct {
	K          int
	Iterations int
	Alpha      float64
	Eta        float64
	Processes  int

	Mat   *dtm.DocTermMat
	lda   *nlp.LatentDirichletAllocation
	theta mat.Matrix // topics x weighted document instances
}

func NewTopicModel(k int) *TopicModel {
	return &TopicModel{
		K:          k,
		Iterations: vv.LDAITERATIONS,
		Alpha:      vv.LDAALPHA,
		Eta:        vv.LDAETA,
		Processes:  runtime.NumCPU(),
	}
}

// Fit - build the weighted matrix and hand it to the external fitting routine
func (tm *TopicModel) Fit(docs []str.Document) error {
	m, err := dtm.CreateDocTermMat(docs)
	if err != nil {
		return err
	}

	lda := nlp.NewLatentDirichletAllocation(tm.K)
	lda.Iterations = tm.Iterations
	lda.Alpha = tm.Alpha
	lda.Eta = tm.Eta
	lda.Processes = tm.Processes

	// nlp wants terms x documents
	theta, err := lda.FitTransform(m.Counts.T())
	if err != nil {
		return err
	}

	tm.Mat = m
	tm.lda = lda
	tm.theta = theta
	return nil
}

// Topics - the full vocabulary first, then per topic the n highest-weighted terms
func (tm *TopicModel) Topics(n int) []string {
	out := make([]string, 0, tm.K+1)
	out = append(out, strings.Join(tm.Mat.Terms, " "))

	components := tm.lda.Components() // topics x terms
	_, tc := components.Dims()
	if n > tc {
		n = tc
	}

	for topic := 0; topic < tm.K; topic++ {
		idx := make([]int, tc)
		for i := range idx {
			idx[i] = i
		}
		sort.Slice(idx, func(i, j int) bool {
			return components.At(topic, idx[i]) > components.At(topic, idx[j])
		})
		ww := make([]string, n)
		for i := 0; i < n; i++ {
			ww[i] = tm.Mat.Terms[idx[i]]
		}
		out = append(out, fmt.Sprintf("Topic %d: %s", topic, strings.Join(ww, " ")))
	}
	return out
}

// DocTopics - the dominant topic per source document, in title order;
// replicated instances of a document are averaged before the argmax
func (tm *TopicModel) DocTopics() []int {
	k, inst := tm.theta.Dims()
	nd := len(tm.Mat.Titles)

	sums := make([][]float64, nd)
	for i := range sums {
		sums[i] = make([]float64, k)
	}
	for d := 0; d < inst; d++ {
		doc := tm.Mat.RowDoc[d]
		for t := 0; t < k; t++ {
			sums[doc][t] += tm.theta.At(t, d)
		}
	}

	winners := make([]int, nd)
	for i := range sums {
		best := 0
		for t := 1; t < k; t++ {
			if sums[i][t] > sums[i][best] {
				best = t
			}
		}
		winners[i] = best
	}
	return winners
}

// PrintTopics - report the top n words for each topic
func (tm *TopicModel) PrintTopics(n int) {
	for _, line := range tm.Topics(n) {
		fmt.Println(line)
	}
}

// PrintDocTopics - report which topic each document is most likely under
func (tm *TopicModel) PrintDocTopics() {
	winners := tm.DocTopics()
	for i, title := range tm.Mat.Titles {
		fmt.Printf("%s (top topic: %d)\n", title, winners[i])
	}
}
