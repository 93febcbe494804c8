//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"time"
)

const (
	MYNAME    = "ToposGoServer"
	SHORTNAME = "TGS"
	VERSION   = "0.1.2"

	SERVEDFROMHOST = "127.0.0.1"
	SERVEDFROMPORT = 8000
	TIMEOUTRD      = 15 * time.Second
	TIMEOUTWR      = 120 * time.Second

	MAXECHOREQPERSECONDPERIP = 60
	USEGZIP                  = false
	BLACKANDWHITE            = false

	CONFIGLOCATION  = "."
	CONFIGALTAPTH   = "%s/.config/"
	CONFIGBASIC     = "tgs-conf.json"
	CONFIGSTOPS     = "tgs-stops.json"
	CONFIGVECTORW2V = "tgs-vector-conf-w2v.json"
	CONFIGVECTORGLV = "tgs-vector-conf-glove.json"
	CONFIGVECTORLXV = "tgs-vector-conf-lexvec.json"

	JSONINDENT = "  "
	WRITEPERMS = 0644

	// modeling defaults; these mirror the example parameters in the original survey scripts
	LDATOPICS      = 5
	LDAITER        = 60
	LDAXFORMPASSES = 30
	LDAMAXTOPICS   = 30
	LDATOPNWORDS   = 8
	LSADIMENSIONS  = 4

	TSNEPERPLEXITY = 40
	TSNELEARNRATE  = 100
	TSNEMAXITER    = 150

	VECTORNEIGHBORS    = 10
	VECTORNEIGHBORSMIN = 1
	VECTORNEIGHBORSMAX = 40

	ARTIFACTDB    = "tgs-artifacts.db"
	ARTIFACTTABLE = "artifacts"

	DEFAULTCORPUSID = "sample"
	MAXCORPUSDOCS   = 50000

	POLLEVERY = 400 * time.Millisecond
)
