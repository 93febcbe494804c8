//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	AllSessions = MakeSessionVault()
)

// ServerSession - the modeling preferences of one browser tab/client
type ServerSession struct {
	ID            string
	Corpus        string
	NumTopics     int
	LDAIterations int
	Modeler       string `json:"modeler"` // "w2v", "glove", "lexvec"
	NeighborCount int    `json:"neighborcount"`
	GraphExt      bool   `json:"graphext"`
	LDAGraph      bool   `json:"ldagraph"`
}

type SessionVault struct {
	SessionMap map[string]ServerSession
	mutex      sync.RWMutex
}

func MakeSessionVault() *SessionVault {
	return &SessionVault{
		SessionMap: make(map[string]ServerSession),
	}
}

func (sv *SessionVault) InsertSess(s ServerSession) {
	sv.mutex.Lock()
	defer sv.mutex.Unlock()
	sv.SessionMap[s.ID] = s
}

func (sv *SessionVault) Delete(id string) {
	sv.mutex.Lock()
	defer sv.mutex.Unlock()
	delete(sv.SessionMap, id)
}

func (sv *SessionVault) GetSess(id string) ServerSession {
	sv.mutex.Lock()
	defer sv.mutex.Unlock()
	s, e := sv.SessionMap[id]
	if !e {
		s = MakeDefaultSession(id)
		sv.SessionMap[id] = s
	}
	return s
}

// MakeDefaultSession - fill in the blanks when setting up a new session
func MakeDefaultSession(id string) ServerSession {
	// note that SessionMap clears every time the server restarts

	var s ServerSession
	s.ID = id
	s.Corpus = DEFAULTCORPUSID
	s.NumTopics = Config.NumTopics
	s.LDAIterations = Config.LDAIterations
	s.Modeler = "w2v"
	s.NeighborCount = VECTORNEIGHBORS
	s.GraphExt = false
	s.LDAGraph = true
	return s
}

// readUUIDCookie - find the ID of the client
func readUUIDCookie(c echo.Context) string {
	cookie, err := c.Cookie("ID")
	if err != nil {
		return writeUUIDCookie(c)
	}
	id := cookie.Value
	AllSessions.GetSess(id)
	return id
}

// writeUUIDCookie - set the ID of the client
func writeUUIDCookie(c echo.Context) string {
	cookie := new(http.Cookie)
	cookie.Name = "ID"
	cookie.Path = "/"
	cookie.Value = uuid.New().String()
	cookie.Expires = time.Now().Add(4800 * time.Hour)
	c.SetCookie(cookie)
	msg(fmt.Sprintf("writeUUIDCookie() - new ID set: %s", cookie.Value), MSGPEEK)
	return cookie.Value
}

//
// ROUTES
//

// RtResetSession - delete and thus reset the session
func RtResetSession(c echo.Context) error {
	user := readUUIDCookie(c)
	AllSessions.Delete(user)
	return c.Redirect(http.StatusFound, "/")
}

// RtSetOption - modify the session in light of the selection made: "/setoption/topics/7"
func RtSetOption(c echo.Context) error {
	const (
		FAIL = "RtSetOption() was given bad input: %s"
	)

	user := readUUIDCookie(c)
	s := AllSessions.GetSess(user)

	optandval := c.Param("opt")
	parsed := strings.Split(optandval, "/")

	if len(parsed) != 2 {
		msg(fmt.Sprintf(FAIL, optandval), MSGPEEK)
		return c.String(http.StatusOK, "")
	}

	opt := parsed[0]
	val := parsed[1]

	boolify := func(v string) bool {
		return v == "yes" || v == "true"
	}

	switch opt {
	case "corpus":
		if _, ok := AllCorpora.Get(val); ok {
			s.Corpus = val
		}
	case "modeler":
		switch val {
		case "w2v", "glove", "lexvec":
			s.Modeler = val
		}
	case "topics":
		n, e := strconv.Atoi(val)
		if e == nil && n > 0 && n <= LDAMAXTOPICS {
			s.NumTopics = n
		}
	case "iterations":
		n, e := strconv.Atoi(val)
		if e == nil && n > 0 {
			s.LDAIterations = n
		}
	case "neighbors":
		n, e := strconv.Atoi(val)
		if e == nil && n >= VECTORNEIGHBORSMIN && n <= VECTORNEIGHBORSMAX {
			s.NeighborCount = n
		}
	case "graphext":
		s.GraphExt = boolify(val)
	case "ldagraph":
		s.LDAGraph = boolify(val)
	default:
		msg(fmt.Sprintf(FAIL, optandval), MSGPEEK)
	}

	AllSessions.InsertSess(s)
	return c.String(http.StatusOK, "")
}

// RtGetJSSession - return the session values as JSON
func RtGetJSSession(c echo.Context) error {
	user := readUUIDCookie(c)
	s := AllSessions.GetSess(user)
	return JSONresponse(c, s)
}

// JSONresponse - send JSON back to the client with the standard indentation
func JSONresponse(c echo.Context, payload any) error {
	return c.JSONPretty(http.StatusOK, payload, JSONINDENT)
}
