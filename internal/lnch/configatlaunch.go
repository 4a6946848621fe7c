//    EcosystemLDA
//    Copyright: BIDS 2016-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/BIDS-projects/lda/internal/mm"
	"github.com/BIDS-projects/lda/internal/str"
	"github.com/BIDS-projects/lda/internal/vv"
)

var (
	Config *str.CurrentConfiguration
	Msg    = mm.NewMessageMakerWithDefaults()
)

// ConfigAtLaunch - read the configuration values from JSON and/or the command line
func ConfigAtLaunch() {
	const (
		FAIL5 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
	)

	Config = BuildDefaultConfig()

	cf := fmt.Sprintf("%s/%s", vv.CONFIGLOCATION, vv.CONFIGNAME)

	args := os.Args[1:]

	// "-c" has to win before the file is read
	for i, a := range args {
		if a == "-c" && i+1 < len(args) {
			cf = args[i+1]
		}
	}

	loadconfigfile(cf)
	parseargs(args)

	Msg.LLvl = Config.LogLevel
	Msg.BW = Config.BlackAndWhite

	if Config.WorkerCount > runtime.NumCPU() {
		Msg.CRIT(fmt.Sprintf(FAIL5, Config.WorkerCount, runtime.NumCPU(), runtime.NumCPU()))
		Config.WorkerCount = runtime.NumCPU()
	}
}

// BuildDefaultConfig - a CurrentConfiguration filled out with the built-in values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.BlackAndWhite = false
	c.CSVFile = ""
	c.DbDebug = false
	c.LogLevel = vv.DEFAULTLOGLEVEL
	c.QuietStart = false
	c.Topics = vv.LDATOPICS
	c.TopicMapFile = ""
	c.TopWords = vv.LDATOPWORDS
	c.WorkerCount = runtime.NumCPU()
	c.Mongo = str.MongoLogin{
		Host:       vv.DEFAULTMONGOHOST,
		Port:       vv.DEFAULTMONGOPORT,
		DBName:     vv.DEFAULTMONGODB,
		Collection: vv.DEFAULTMONGOCOLL,
	}
	return &c
}

// loadconfigfile - overlay the defaults with whatever the JSON file provides
func loadconfigfile(cf string) {
	const (
		FAIL3 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		FAIL6 = "Could not open '%s'"
	)

	file, e := os.Open(cf)
	if e != nil {
		Msg.TMI(fmt.Sprintf(FAIL6, cf))
		return
	}

	decoder := json.NewDecoder(file)
	conf := str.CurrentConfiguration{}
	err := decoder.Decode(&conf)
	_ = file.Close()

	if err != nil {
		Msg.CRIT(fmt.Sprintf(FAIL3, cf))
		return
	}

	Config = &conf

	// an old or sparse file might zero knobs that have no sensible zero
	if Config.Topics == 0 {
		Config.Topics = vv.LDATOPICS
	}
	if Config.TopWords == 0 {
		Config.TopWords = vv.LDATOPWORDS
	}
	if Config.WorkerCount == 0 {
		Config.WorkerCount = runtime.NumCPU()
	}
	if Config.Mongo.Host == "" {
		Config.Mongo.Host = vv.DEFAULTMONGOHOST
	}
	if Config.Mongo.Port == 0 {
		Config.Mongo.Port = vv.DEFAULTMONGOPORT
	}
	if Config.Mongo.DBName == "" {
		Config.Mongo.DBName = vv.DEFAULTMONGODB
	}
	if Config.Mongo.Collection == "" {
		Config.Mongo.Collection = vv.DEFAULTMONGOCOLL
	}

	Msg.TMI(fmt.Sprintf("'%s' loaded", cf))
}

// parseargs - the command line switches win over both defaults and file values
func parseargs(args []string) {
	const (
		FAIL1 = "Could not parse your information as a valid collection of credentials. Use the following template:"
		FAIL2 = `"{\"Host\": \"127.0.0.1\", \"Port\": 27017, \"DBName\": \"ecosystem_mapping\", \"Collection\": \"text_collection\"}"`
		FAIL4 = "'%s' requires a value; ignoring it"
	)

	help := func() {
		fmt.Printf("%s (v.%s)\n\n", vv.MYNAME, vv.VERSION)
		fmt.Printf(vv.HELPTEXT, vv.CONFIGNAME, vv.LDATOPICS, vv.LDATOPWORDS,
			vv.DEFAULTMONGOHOST, vv.DEFAULTMONGOPORT, vv.DEFAULTMONGODB, vv.DEFAULTMONGOCOLL)
		os.Exit(0)
	}

	// a value-taking switch at the very end of the line has no value to take
	value := func(i int) (string, bool) {
		if i+1 < len(args) {
			return args[i+1], true
		}
		Msg.CRIT(fmt.Sprintf(FAIL4, args[i]))
		return "", false
	}

	for i, a := range args {
		switch a {
		case "-bw":
			Config.BlackAndWhite = true
		case "-c":
			// already handled
		case "-db":
			Config.DbDebug = true
		case "-gl":
			if v, ok := value(i); ok {
				ll, err := strconv.Atoi(v)
				Msg.EC(err)
				Config.LogLevel = ll
			}
		case "-h":
			help()
		case "-mg":
			v, ok := value(i)
			if !ok {
				continue
			}
			var ml str.MongoLogin
			err := json.Unmarshal([]byte(v), &ml)
			if err != nil {
				Msg.MAND(FAIL1)
				Msg.CRIT(FAIL2)
				Msg.ExitOrHang(0)
			}
			Config.Mongo = ml
		case "-nt":
			if v, ok := value(i); ok {
				nt, err := strconv.Atoi(v)
				Msg.EC(err)
				Config.Topics = nt
			}
		case "-nw":
			if v, ok := value(i); ok {
				nw, err := strconv.Atoi(v)
				Msg.EC(err)
				Config.TopWords = nw
			}
		case "-q":
			Config.QuietStart = true
		case "-sv":
			if v, ok := value(i); ok {
				Config.CSVFile = v
			}
		case "-tm":
			if v, ok := value(i); ok {
				Config.TopicMapFile = v
			}
		case "-v":
			fmt.Println(vv.VERSION)
			os.Exit(1)
		case "-wc":
			if v, ok := value(i); ok {
				wc, err := strconv.Atoi(v)
				Msg.EC(err)
				Config.WorkerCount = wc
			}
		default:
			// do nothing
		}
	}
}
