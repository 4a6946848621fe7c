//    EcosystemLDA
//    Copyright: BIDS 2016-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tpc

import (
	"fmt"
	"os"

	"github.com/BIDS-projects/lda/internal/vv"
	"github.com/danaugrs/go-tsne/tsne"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"
)

//
// TOPIC MAP GRAPHING
//

// SaveTopicMap - t-SNE embed the per-instance topic distributions into 2D and
// write an HTML scatter of them, one series per dominant topic
func (tm *TopicModel) SaveTopicMap(name string) error {
	const (
		SYMSIZE  = 12
		TITLESTR = "Documents over topics"
		SUBTTPL  = "%d topics, %d weighted document instances"
		SERIES   = "topic %d"
	)

	k, inst := tm.theta.Dims()

	// one row per weighted instance, one column per topic
	dd := make([]float64, 0, k*inst)
	for d := 0; d < inst; d++ {
		for t := 0; t < k; t++ {
			dd = append(dd, tm.theta.At(t, d))
		}
	}
	wv := mat.NewDense(inst, k, dd)

	// t-SNE wants perplexity well under the instance count
	perplex := float64(vv.TSNEPERPLEXITY)
	if m := float64(inst-1) / 3; m < perplex {
		perplex = m
	}

	ts := tsne.NewTSNE(2, perplex, vv.TSNELEARNRT, vv.TSNEMAXITER, false)
	y := ts.EmbedData(wv, nil)

	points := make(map[int][]opts.ScatterData)
	for d := 0; d < inst; d++ {
		winner := 0
		for t := 1; t < k; t++ {
			if tm.theta.At(t, d) > tm.theta.At(winner, d) {
				winner = t
			}
		}
		points[winner] = append(points[winner], opts.ScatterData{
			Name:       tm.Mat.Titles[tm.Mat.RowDoc[d]],
			Value:      []interface{}{y.At(d, 0), y.At(d, 1)},
			SymbolSize: SYMSIZE,
		})
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:     vv.CHRTWIDTH,
			Height:    vv.CHRTHEIGHT,
			PageTitle: vv.MYNAME,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    TITLESTR,
			Subtitle: fmt.Sprintf(SUBTTPL, k, inst),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Formatter: "{a}: {b}"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)

	for t := 0; t < k; t++ {
		sc.AddSeries(fmt.Sprintf(SERIES, t), points[t])
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	page := components.NewPage()
	page.AddCharts(sc)
	return page.Render(f)
}
