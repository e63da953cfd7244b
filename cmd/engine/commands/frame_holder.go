package commands

import (
	"sync"

	"github.com/battlesnakeio/decaysnake/rules"
)

type frameHolder struct {
	sync.RWMutex
	once   sync.Once
	frames []*rules.Frame
	ffc    chan *rules.Frame
	closed bool
}

func (fh *frameHolder) firstFrameChan() chan *rules.Frame {
	fh.once.Do(func() { fh.ffc = make(chan *rules.Frame, 1) })
	return fh.ffc
}

func (fh *frameHolder) append(frame *rules.Frame) {
	fh.Lock()
	defer fh.Unlock()

	if len(fh.frames) == 0 {
		ffc := fh.firstFrameChan()
		ffc <- frame
		close(ffc)
	}

	fh.frames = append(fh.frames, frame)
}

func (fh *frameHolder) get(index int) *rules.Frame {
	fh.RLock()
	defer fh.RUnlock()

	if index < 0 || index >= len(fh.frames) {
		return nil
	}

	return fh.frames[index]
}

func (fh *frameHolder) initialFrame() <-chan *rules.Frame {
	return fh.firstFrameChan()
}

func (fh *frameHolder) count() int {
	fh.RLock()
	defer fh.RUnlock()

	return len(fh.frames)
}

// finish marks the stream as ended, no more frames will arrive.
func (fh *frameHolder) finish() {
	fh.Lock()
	defer fh.Unlock()
	fh.closed = true
}

func (fh *frameHolder) finished() bool {
	fh.RLock()
	defer fh.RUnlock()
	return fh.closed
}
