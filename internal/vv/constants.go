//    EcosystemLDA
//    Copyright: BIDS 2016-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MYNAME    = "EcosystemLDA"
	SHORTNAME = "ELDA"
	VERSION   = "0.1.0"
	PROJURL   = "https://github.com/BIDS-projects/lda"

	// MAXDEGREE - the largest degree of separation any crawled site can report;
	// a document at MAXDEGREE gets a replication count of exactly 1
	// IMPORTANT: degrees of separation are always >= 1
	MAXDEGREE = 10

	// MINTERMCOUNT - a term must occur at least this often across the whole
	// weighted corpus to make it into the vocabulary
	MINTERMCOUNT = 2

	// model hyperparameters straight from the archived python modeler
	LDAITERATIONS = 1000
	LDAALPHA      = 0.05
	LDAETA        = 0.005
	LDATOPICS     = 5
	LDATOPWORDS   = 10

	// topic map embedding
	TSNEPERPLEXITY = 30
	TSNELEARNRT    = 100
	TSNEMAXITER    = 150
	CHRTWIDTH      = "1200px"
	CHRTHEIGHT     = "900px"

	DEFAULTMONGOHOST = "localhost"
	DEFAULTMONGOPORT = 27017
	DEFAULTMONGODB   = "ecosystem_mapping"
	DEFAULTMONGOCOLL = "text_collection"
	MONGOTIMEOUT     = 10 // seconds

	CONFIGLOCATION  = "."
	CONFIGNAME      = "elda-config.json"
	DEFAULTLOGLEVEL = 0

	WRITEPERMS = 0644
)

const HELPTEXT = `command line options:
   -bw        disable color in the terminal output
   -c  <file> read the configuration from <file> instead of '%s'
   -db        debug the document store: log every record as it is folded in
   -mg <json> document store credentials: "{\"Host\": \"127.0.0.1\", \"Port\": 27017, \"DBName\": \"ecosystem_mapping\", \"Collection\": \"text_collection\"}"
   -gl <num>  log level; 0 is silent; 5 is very talkative
   -h         print this help information
   -nt <num>  number of topics to model [default: %d]
   -nw <num>  number of words to print per topic [default: %d]
   -q         quieter startup
   -sv <file> save the document-term matrix to <file> as CSV
   -tm <file> embed the documents over topics and write an HTML topic map to <file>
   -wc <num>  worker count for the model fitting [default: number of cpus]
   -v         print version and exit
in the absence of a configuration file the loader expects mongodb at %s:%d
and reads '%s.%s'
`
