package spin

import (
	"github.com/loilo-inc/spincage/logger"
	"github.com/loilo-inc/spincage/types"
)

type cmdKind int

const (
	cmdMessage cmdKind = iota
	cmdDefer
)

type record struct {
	level logger.Level
	msg   string
	opts  *types.LogOpts
}

type command struct {
	kind cmdKind
	msg  string
	rec  *record
}

// loopState is owned by the run goroutine alone. Callers reach it only
// through the command channel.
type loopState struct {
	msg     string
	pending []*record
	quit    bool
	code    int
}

func (st *loopState) apply(c command) {
	switch c.kind {
	case cmdMessage:
		st.msg = c.msg
	case cmdDefer:
		st.pending = append(st.pending, c.rec)
		if c.rec.opts.Quit {
			st.quit = true
			st.code = c.rec.opts.Code
		}
	}
}

func (s *spinner) run() {
	defer close(s.done)
	p := s.printer()
	t := s.time()
	tick := s.timeout().SpinTick()
	frames := newFrames()
	st := &loopState{}
	for {
		timer := t.NewTimer(tick)
		select {
		case c := <-s.cmds:
			st.apply(c)
		case <-s.stopc:
			s.drain(st)
			st.msg = ""
			p.PrintOutf("\x1b[2K\r")
			s.flush(st.pending)
			if st.quit {
				// hard exit: no unwinding happens past this point
				s.term().Exit(st.code)
			}
			return
		case <-timer.C:
			// catch up on queued commands so the newest message wins
			s.drain(st)
			if st.msg != "" {
				p.PrintOutf("\x1b[2K\r%s %s", frames.Next(), st.msg)
			}
		}
	}
}

func (s *spinner) drain(st *loopState) {
	for {
		select {
		case c := <-s.cmds:
			st.apply(c)
		default:
			return
		}
	}
}

// flush forwards deferred records to the sink in the order they were
// logged. This is the only path by which warn and error messages ever
// reach the sink.
func (s *spinner) flush(pending []*record) {
	sink := s.sink()
	for _, r := range pending {
		switch r.level {
		case logger.LevelWarn:
			sink.Warn(r.msg, r.opts.Fields)
		default:
			sink.Error(r.msg, r.opts.Fields)
		}
	}
}

// send enqueues a command unless the spinner is already stopping.
// Commands sent after Stop are dropped, never flushed.
func (s *spinner) send(c command) bool {
	select {
	case <-s.stopc:
		return false
	default:
	}
	select {
	case s.cmds <- c:
		return true
	case <-s.stopc:
		return false
	}
}
