//    EcosystemLDA
//    Copyright: BIDS 2016-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// MongoLogin - how to reach the crawler's document store
type MongoLogin struct {
	Host       string
	Port       int
	DBName     string
	Collection string
}

// CurrentConfiguration - the runtime settings
type CurrentConfiguration struct {
	BlackAndWhite bool
	CSVFile       string
	DbDebug       bool
	LogLevel      int
	QuietStart    bool
	Topics        int
	TopicMapFile  string
	TopWords      int
	WorkerCount   int
	Mongo         MongoLogin
}
