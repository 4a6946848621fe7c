//    EcosystemLDA
//    Copyright: BIDS 2016-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"fmt"
	"sort"

	"github.com/BIDS-projects/lda/internal/corp"
	"github.com/BIDS-projects/lda/internal/lnch"
	"github.com/BIDS-projects/lda/internal/str"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetCorpus - enumerate the distinct base identifiers and fold every record sharing one into a single Document
func GetCorpus(ctx context.Context, coll *mongo.Collection, debug bool) ([]str.Document, error) {
	const (
		FAIL1 = "could not enumerate the base identifiers: %w"
		DBG   = "folding %d records into '%s'"
	)

	bases, err := coll.Distinct(ctx, "base_url", bson.D{})
	if err != nil {
		return nil, fmt.Errorf(FAIL1, err)
	}

	var ids []string
	for _, b := range bases {
		if s, ok := b.(string); ok {
			ids = append(ids, s)
		}
	}
	sort.Strings(ids)

	corpus := make([]str.Document, 0, len(ids))
	for _, id := range ids {
		item, err := foldrecords(ctx, coll, id)
		if err != nil {
			return nil, err
		}
		if debug {
			lnch.Msg.MAND(fmt.Sprintf(DBG, len(item.Words), id))
		}
		corpus = append(corpus, item)
	}
	return corpus, nil
}

// foldrecords - accumulate the word lists and the highest reported degree of separation for one base identifier
func foldrecords(ctx context.Context, coll *mongo.Collection, baseurl string) (str.Document, error) {
	const (
		FAIL1 = "'%s' yielded an unreadable record: %w"
		FAIL2 = "'%s': %w"
	)

	item := str.Document{BaseURL: baseurl}

	cur, err := coll.Find(ctx, bson.M{"base_url": baseurl})
	if err != nil {
		return item, fmt.Errorf(FAIL2, baseurl, err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var rec str.TextRecord
		if err := cur.Decode(&rec); err != nil {
			// a "text" field that is not a string lands here
			return item, fmt.Errorf(FAIL1, baseurl, err)
		}
		ww, err := corp.FilterWords(rec.Text)
		if err != nil {
			return item, fmt.Errorf(FAIL2, baseurl, err)
		}
		item.AddWords(ww)
		item.UpdateDegree(rec.DegSep)
	}
	if err := cur.Err(); err != nil {
		return item, fmt.Errorf(FAIL2, baseurl, err)
	}
	return item, nil
}
