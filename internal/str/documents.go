//    EcosystemLDA
//    Copyright: BIDS 2016-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"github.com/BIDS-projects/lda/internal/vv"
)

// TextRecord - one row out of the crawler's text collection
type TextRecord struct {
	BaseURL string `bson:"base_url"`
	Text    string `bson:"text"`
	DegSep  int    `bson:"deg_sep"`
}

// Document - every record sharing a base_url folded into a single item
type Document struct {
	BaseURL string
	Words   []string
	DegSep  int
}

// AddWords - accumulate another record's word list
func (d *Document) AddWords(ww []string) {
	d.Words = append(d.Words, ww...)
}

// UpdateDegree - track the highest degree of separation reported for this identifier; the value is clamped into [1, MAXDEGREE]
func (d *Document) UpdateDegree(ds int) {
	if ds < 1 {
		ds = 1
	}
	if ds > vv.MAXDEGREE {
		ds = vv.MAXDEGREE
	}
	if ds > d.DegSep {
		d.DegSep = ds
	}
}
