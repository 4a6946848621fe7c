//    EcosystemLDA
//    Copyright: BIDS 2016-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/BIDS-projects/lda/internal/vv"
)

//
// TERMINAL OUTPUT/MESSAGES
//

const (
	MAND  = -1
	CRIT  = 0
	WARN  = 1
	NOTE  = 2
	FYI   = 3
	TMI   = 5
	RESET = "\033[0m"
	GREEN = "\033[38;5;70m"  // Chartreuse3
	RED1  = "\033[38;5;160m" // Red3
	YLW1  = "\033[38;5;178m" // Gold3
	YLW2  = "\033[38;5;143m" // DarkKhaki
	CYAN  = "\033[38;5;117m" // SkyBlue1
	GREY  = "\033[38;5;242m" // Grey42
	WHITE = "\033[38;5;255m" // Grey93
	PANIC = "[%s%s v.%s%s] %sUNRECOVERABLE ERROR%s\n"
)

type MessageMaker struct {
	Lnc  time.Time
	BW   bool
	LLvl int
	LNm  string
	SNm  string
	Ver  string
	Win  bool
}

func NewMessageMakerWithDefaults() *MessageMaker {
	w := false
	if runtime.GOOS == "windows" {
		w = true
	}
	return &MessageMaker{
		Lnc:  time.Now(),
		BW:   false,
		LLvl: vv.DEFAULTLOGLEVEL,
		LNm:  vv.MYNAME,
		SNm:  vv.SHORTNAME,
		Ver:  vv.VERSION,
		Win:  w,
	}
}

// Emit - send a message to the terminal, perhaps adding color to it
func (m *MessageMaker) Emit(message string, threshold int) {
	// sample output: "[ELDA] 14 documents loaded from 'ecosystem_mapping.text_collection'"

	if m.LLvl < threshold {
		return
	}

	if !m.Win && !m.BW {
		var color string
		switch threshold {
		case MAND:
			color = GREEN
		case CRIT:
			color = RED1
		case WARN:
			color = YLW2
		case NOTE:
			color = YLW1
		case FYI:
			color = CYAN
		case TMI:
			color = GREY
		default:
			color = WHITE
		}
		fmt.Printf("[%s%s%s] %s%s%s\n", YLW1, m.SNm, RESET, color, message, RESET)
	} else {
		// terminal color codes are not windows' friend
		fmt.Printf("[%s] %s\n", m.SNm, message)
	}
}

func (m *MessageMaker) MAND(s string) { m.Emit(s, MAND) }
func (m *MessageMaker) CRIT(s string) { m.Emit(s, CRIT) }
func (m *MessageMaker) WARN(s string) { m.Emit(s, WARN) }
func (m *MessageMaker) NOTE(s string) { m.Emit(s, NOTE) }
func (m *MessageMaker) FYI(s string)  { m.Emit(s, FYI) }
func (m *MessageMaker) TMI(s string)  { m.Emit(s, TMI) }

// EC - check an error and die loudly if there is one
func (m *MessageMaker) EC(err error) {
	if err != nil {
		fmt.Printf(PANIC, YLW2, m.LNm, m.Ver, RESET, RED1, RESET)
		fmt.Println(err)
		m.ExitOrHang(1)
	}
}

// ExitOrHang - windows should hang to keep the error visible before the console window closes and hides it
func (m *MessageMaker) ExitOrHang(e int) {
	const (
		HANG = `Execution suspended. %s is now frozen. Note any errors above. Execution will halt after %d seconds.`
		SUSP = 60
	)
	if !m.Win {
		os.Exit(e)
	} else {
		m.Emit(fmt.Sprintf(HANG, m.LNm, SUSP), MAND)
		time.Sleep(SUSP * time.Second)
		os.Exit(e)
	}
}

// Timer - report how much time elapsed between A and B
func (m *MessageMaker) Timer(letter string, o string, start time.Time, previous time.Time) {
	// sample output: "[B: 1.031s][Δ: 0.892s] topic model fitted"
	d := fmt.Sprintf("[Δ: %.3fs] ", time.Since(previous).Seconds())
	o = fmt.Sprintf("[%s: %.3fs]", letter, time.Since(start).Seconds()) + d + o
	m.Emit(o, FYI)
}
