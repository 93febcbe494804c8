//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/e-gun/ToposGoServer/internal/stoplists"
)

var (
	Config CurrentConfiguration
)

type CurrentConfiguration struct {
	ArtifactDB    string
	BlackAndWhite bool
	CorpusDir     string
	EchoLog       int // 0: "none", 1: "terse", 2: "prolix"
	Gzip          bool
	HostIP        string
	HostPort      int
	LDAIterations int
	LogLevel      int
	MaxCorpusDocs int
	NumTopics     int
	PGEnabled     bool
	PGLogin       PostgresLogin
	QuietStart    bool
	SelfTest      bool
	WorkerCount   int
}

type PostgresLogin struct {
	Host   string
	Port   int
	User   string
	Pass   string
	DBName string
}

// configatlaunch - set the defaults, then apply the JSON config, then apply the command line
func configatlaunch() {
	const (
		FAIL1 = "could not parse '%s'; using default configuration values"
	)

	Config.ArtifactDB = ARTIFACTDB
	Config.BlackAndWhite = BLACKANDWHITE
	Config.CorpusDir = "."
	Config.EchoLog = 0
	Config.Gzip = USEGZIP
	Config.HostIP = SERVEDFROMHOST
	Config.HostPort = SERVEDFROMPORT
	Config.LDAIterations = LDAITER
	Config.LogLevel = MSGNOTE
	Config.MaxCorpusDocs = MAXCORPUSDOCS
	Config.NumTopics = LDATOPICS
	Config.QuietStart = false
	Config.SelfTest = false
	Config.WorkerCount = runtime.NumCPU()

	cf := fmt.Sprintf("%s/%s", CONFIGLOCATION, CONFIGBASIC)
	uh, _ := os.UserHomeDir()
	acf := fmt.Sprintf(CONFIGALTAPTH, uh) + CONFIGBASIC

	args := os.Args[1:]
	for i, a := range args {
		switch a {
		case "-v":
			fmt.Println(VERSION)
			os.Exit(0)
		case "-bw":
			Config.BlackAndWhite = true
		case "-cf":
			cf = args[i+1]
		case "-db":
			Config.ArtifactDB = args[i+1]
		case "-el":
			ll, e := strconv.Atoi(args[i+1])
			chke(e)
			Config.EchoLog = ll
		case "-gl":
			ll, e := strconv.Atoi(args[i+1])
			chke(e)
			Config.LogLevel = ll
		case "-gz":
			Config.Gzip = true
		case "-p":
			pp, e := strconv.Atoi(args[i+1])
			chke(e)
			Config.HostPort = pp
		case "-q":
			Config.QuietStart = true
		case "-sa":
			Config.HostIP = args[i+1]
		case "-st":
			Config.SelfTest = true
		case "-wc":
			ww, e := strconv.Atoi(args[i+1])
			chke(e)
			Config.WorkerCount = ww
		case "-h":
			printhelp()
			os.Exit(0)
		}
	}

	for _, f := range []string{cf, acf} {
		file, e := os.Open(f)
		if e != nil {
			continue
		}
		decoder := json.NewDecoder(file)
		conf := CurrentConfiguration{}
		if err := decoder.Decode(&conf); err != nil {
			msg(fmt.Sprintf(FAIL1, f), MSGCRIT)
		} else {
			Config.PGEnabled = conf.PGLogin.Host != ""
			Config.PGLogin = conf.PGLogin
			if conf.CorpusDir != "" {
				Config.CorpusDir = conf.CorpusDir
			}
		}
		_ = file.Close()
		break
	}
}

func printhelp() {
	const (
		HELP = `
	command line options:
	   -bw     black and white terminal output
	   -cf <f> read configuration from file <f> [default: ./%s]
	   -db <f> artifact store location [default: ./%s]
	   -el <n> echo logging level (0-2)
	   -gl <n> terminal logging level (0-5) [default: 2]
	   -gz     enable gzip on the server
	   -p  <n> serve from port <n> [default: %d]
	   -q      quiet launch
	   -sa <a> serve from address <a> [default: %s]
	   -st     run the self-test suite at launch
	   -v      print version and exit
	   -wc <n> worker count [default: %d]`
	)
	fmt.Printf(HELP+"\n", CONFIGBASIC, ARTIFACTDB, SERVEDFROMPORT, SERVEDFROMHOST, runtime.NumCPU())
}

// readstopconfig - read the stopword configuration file and return the stop set; write the defaults if the file does not exist
func readstopconfig() map[string]struct{} {
	const (
		ERR1 = "readstopconfig() cannot find UserHomeDir"
		ERR2 = "readstopconfig() failed to parse "
		MSG1 = "readstopconfig() wrote stopword configuration file: "
		MSG2 = "readstopconfig() read stopword configuration from: "
	)

	def := StringMapKeysIntoSlice(stoplists.English())

	h, e := os.UserHomeDir()
	if e != nil {
		msg(ERR1, MSGCRIT)
		return stoplists.ToSet(def)
	}

	scf := fmt.Sprintf(CONFIGALTAPTH, h) + CONFIGSTOPS

	if _, yes := os.Stat(scf); yes != nil {
		content, err := json.MarshalIndent(def, JSONINDENT, JSONINDENT)
		chke(err)
		err = os.WriteFile(scf, content, WRITEPERMS)
		chke(err)
		msg(MSG1+scf, MSGPEEK)
		return stoplists.ToSet(def)
	}

	loaded, _ := os.Open(scf)
	decoder := json.NewDecoder(loaded)
	var stops []string
	if err := decoder.Decode(&stops); err != nil {
		msg(ERR2+scf, MSGCRIT)
		stops = def
	}
	_ = loaded.Close()
	msg(MSG2+scf, MSGTMI)

	return stoplists.ToSet(stops)
}
