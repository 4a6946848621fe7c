//    EcosystemLDA
//    Copyright: BIDS 2016-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/BIDS-projects/lda/internal/db"
	"github.com/BIDS-projects/lda/internal/lnch"
	"github.com/BIDS-projects/lda/internal/tpc"
	"github.com/BIDS-projects/lda/internal/vv"
)

// connect, load, transform, fit, print, exit: one pass and no feedback loop
func main() {
	lnch.ConfigAtLaunch()
	cfg := lnch.Config
	msg := lnch.Msg

	if !cfg.QuietStart {
		msg.MAND(fmt.Sprintf("%s (v.%s) [loglevel=%d]", vv.MYNAME, vv.VERSION, cfg.LogLevel))
	}

	start := time.Now()
	previous := time.Now()

	ctx := context.Background()

	// only the dial and ping get a deadline; a big crawl store can take its time below
	cctx, cancel := db.ConnectCtx(ctx)
	client, err := db.OpenMongo(cctx, cfg.Mongo)
	cancel()
	msg.EC(err)
	defer func() { msg.EC(client.Disconnect(ctx)) }()

	corpus, err := db.GetCorpus(ctx, db.TextCollection(client, cfg.Mongo), cfg.DbDebug)
	msg.EC(err)
	msg.Timer("A", fmt.Sprintf("%d documents loaded from '%s.%s'", len(corpus), cfg.Mongo.DBName, cfg.Mongo.Collection), start, previous)
	previous = time.Now()

	model := tpc.NewTopicModel(cfg.Topics)
	model.Processes = cfg.WorkerCount
	msg.EC(model.Fit(corpus))
	msg.Timer("B", fmt.Sprintf("%d topics fitted over %d terms", cfg.Topics, len(model.Mat.Terms)), start, previous)
	previous = time.Now()

	model.PrintTopics(cfg.TopWords)
	model.PrintDocTopics()

	if cfg.CSVFile != "" {
		msg.EC(model.Mat.SaveTo(cfg.CSVFile))
		msg.NOTE(fmt.Sprintf("wrote the document-term matrix to '%s'", cfg.CSVFile))
	}

	if cfg.TopicMapFile != "" {
		msg.EC(model.SaveTopicMap(cfg.TopicMapFile))
		msg.NOTE(fmt.Sprintf("wrote the topic map to '%s'", cfg.TopicMapFile))
	}

	msg.Timer("C", "done", start, previous)
}
