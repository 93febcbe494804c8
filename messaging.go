//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"os"
	"runtime"
	"time"
)

//
// TERMINAL OUTPUT/MESSAGES
//

const (
	MSGMAND = -1
	MSGCRIT = 0
	MSGWARN = 1
	MSGNOTE = 2
	MSGFYI  = 3
	MSGPEEK = 4
	MSGTMI  = 5
	RESET   = "\033[0m"
	BLUE2   = "\033[38;5;68m"  // SteelBlue3
	CYAN2   = "\033[38;5;117m" // SkyBlue1
	GREEN   = "\033[38;5;70m"  // Chartreuse3
	RED1    = "\033[38;5;160m" // Red3
	YELLOW1 = "\033[38;5;178m" // Gold3
	YELLOW2 = "\033[38;5;143m" // DarkKhaki
	GREY3   = "\033[38;5;242m" // Grey42
	WHITE   = "\033[38;5;255m" // Grey93
	PANIC   = "[%s%s v.%s%s] %sUNRECOVERABLE ERROR%s\n"
	PANIC2  = "[%s%s v.%s%s] (%s%s%s) %sUNRECOVERABLE ERROR%s\n"
)

var (
	messenger = NewMessageMaker("")
)

// msg - send a message to the terminal; alias for "messenger.Emit(s, i)"
func msg(s string, i int) {
	messenger.Emit(s, i)
}

// chke - check an error; alias for messenger.Error(e)
func chke(e error) {
	messenger.Error(e)
}

func NewMessageMaker(caller string) *MessageMaker {
	w := false
	if runtime.GOOS == "windows" {
		w = true
	}
	return &MessageMaker{
		Caller:     caller,
		LaunchTime: time.Now(),
		Win:        w,
	}
}

type MessageMaker struct {
	Caller     string
	LaunchTime time.Time
	Win        bool
}

// Emit - send a message to the terminal, perhaps adding color and style to it
func (m *MessageMaker) Emit(message string, threshold int) {
	// sample output: "[TGS] runlda() fit 5 topics over 40 documents"

	if Config.LogLevel < threshold {
		return
	}

	if !m.Win && !Config.BlackAndWhite {
		var color string
		switch threshold {
		case MSGMAND:
			color = GREEN
		case MSGCRIT:
			color = RED1
		case MSGWARN:
			color = YELLOW2
		case MSGNOTE:
			color = YELLOW1
		case MSGFYI:
			color = CYAN2
		case MSGPEEK:
			color = BLUE2
		case MSGTMI:
			color = GREY3
		default:
			color = WHITE
		}
		fmt.Printf("[%s%s%s] %s%s%s\n", YELLOW1, SHORTNAME, RESET, color, message, RESET)
	} else {
		// terminal color codes are not windows' friend
		fmt.Printf("[%s] %s\n", SHORTNAME, message)
	}
}

// Error - report and die; launch-time plumbing failures only
func (m *MessageMaker) Error(err error) {
	if err != nil {
		if m.Caller == "" {
			fmt.Printf(PANIC, YELLOW2, MYNAME, VERSION, RESET, RED1, RESET)
		} else {
			fmt.Printf(PANIC2, YELLOW2, MYNAME, VERSION, RESET, CYAN2, m.Caller, RESET, RED1, RESET)
		}
		fmt.Println(err)
		os.Exit(1)
	}
}

// Timer - report how much time elapsed between A and B
func (m *MessageMaker) Timer(letter string, o string, start time.Time, previous time.Time) {
	d := fmt.Sprintf("[%s: %.3fs]", letter, time.Now().Sub(start).Seconds())
	o = fmt.Sprintf("%s[Δ: %.3fs] %s", d, time.Now().Sub(previous).Seconds(), o)
	msg(o, MSGFYI)
}

// timetracker - syntactic sugar for messenger.Timer()
func timetracker(letter string, o string, start time.Time, previous time.Time) {
	messenger.Timer(letter, o, start, previous)
}
