//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var (
	Upgrader = websocket.Upgrader{}
)

// RtWebsocket - progress info for a model fit
func RtWebsocket(c echo.Context) error {
	// the client sends a job ID and this will output the status of the job
	// continuously while the job remains active

	const (
		FAILCON = "RtWebsocket(): ws connection failed"
		FAILRD  = "RtWebsocket(): ws failed to read: breaking"
		FAILWR  = "RtWebsocket(): ws failed to write: breaking"
	)

	type ReplyJS struct {
		Active  string `json:"active"`
		Iter    int    `json:"Iteration"`
		Total   int    `json:"Poolofwork"`
		Msg     string `json:"Statusmessage"`
		Elapsed string `json:"Elapsed"`
		ID      string `json:"ID"`
	}

	ws, err := Upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		msg(FAILCON, MSGNOTE)
		return nil
	}
	defer ws.Close()

	for {
		_, m, e := ws.ReadMessage()
		if e != nil {
			msg(FAILRD, MSGWARN)
			break
		}

		// will yield: websocket received: "205da19d..."
		// the bug-trap is the quotes around that string
		id := strings.Replace(string(m), `"`, "", -1)

		j, found := AllJobs.Get(id)
		if !found {
			continue
		}

		for j.IsActive {
			r := ReplyJS{
				Active:  "is_active",
				Iter:    j.Iteration,
				Total:   j.TotalIter,
				Msg:     j.Msg,
				Elapsed: fmt.Sprintf("%.1fs", time.Now().Sub(j.Launched).Seconds()),
				ID:      j.ID,
			}

			js, y := json.Marshal(r)
			chke(y)

			if er := ws.WriteMessage(websocket.TextMessage, js); er != nil {
				msg(FAILWR, MSGWARN)
				return nil
			}

			time.Sleep(POLLEVERY)
			j, found = AllJobs.Get(id)
			if !found {
				break
			}
		}
	}
	return nil
}
