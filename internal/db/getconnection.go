//    EcosystemLDA
//    Copyright: BIDS 2016-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"fmt"
	"time"

	"github.com/BIDS-projects/lda/internal/lnch"
	"github.com/BIDS-projects/lda/internal/str"
	"github.com/BIDS-projects/lda/internal/vv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectCtx - a deadline for dialing and pinging the store only; corpus reads run unbounded
func ConnectCtx(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, vv.MONGOTIMEOUT*time.Second)
}

// OpenMongo - acquire a client for the crawler's document store; the caller owns the handle and must Disconnect() it
func OpenMongo(ctx context.Context, login str.MongoLogin) (*mongo.Client, error) {
	const (
		UTPL    = "mongodb://%s:%d"
		FAILRUN = "'%s:%d': the document store cannot be found; check that mongod is running and serving"
	)

	uri := fmt.Sprintf(UTPL, login.Host, login.Port)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf(FAILRUN, login.Host, login.Port)
	}

	lnch.Msg.TMI(fmt.Sprintf("connected to %s", uri))
	return client, nil
}

// TextCollection - the collection holding the crawler's per-page text records
func TextCollection(client *mongo.Client, login str.MongoLogin) *mongo.Collection {
	return client.Database(login.DBName).Collection(login.Collection)
}
