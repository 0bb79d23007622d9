package occ

import "time"

// Reader routes character requests to the top of a stack of streams.
// Pushing a stream nests an input (the way #include does); popping
// returns to the enclosing one. Position queries address the top stream
// and panic when the stack is empty - that is a programmer error, not a
// runtime condition.
type Reader struct {
	pool    StringPool
	opts    *Option
	diag    Diag
	streams []*stream
	last    *stream
}

// NewReader creates an empty reader. opts, diag and pool may be nil; a
// nil pool gets a private one.
func NewReader(opts *Option, diag Diag, pool StringPool) *Reader {
	if pool == nil {
		pool = NewPool()
	}
	return &Reader{pool: pool, opts: opts, diag: diag}
}

// Push constructs a stream of the given type from spec (a path for
// StreamFile, source text for StreamString) and makes it current. On
// failure the reader is unchanged.
func (r *Reader) Push(typ StreamType, spec string) error {
	switch typ {
	case StreamFile:
		return r.PushFile(spec)
	case StreamString:
		r.PushString(spec)
		return nil
	}
	panic("occ: unknown stream type")
}

// PushFile reads the whole file into memory and pushes it. No file
// handle is kept past construction.
func (r *Reader) PushFile(path string) error {
	s, err := newFileStream(path, r.pool, r.opts, r.diag)
	if err != nil {
		return err
	}
	r.streams = append(r.streams, s)
	r.last = s
	return nil
}

// PushString pushes an in-memory source named "<string>".
func (r *Reader) PushString(src string) {
	s := newStringStream(src, r.pool, r.opts, r.diag)
	r.streams = append(r.streams, s)
	r.last = s
}

// Pop releases the current stream.
func (r *Reader) Pop() {
	if len(r.streams) == 0 {
		panic("occ: pop of empty reader")
	}
	r.streams = r.streams[:len(r.streams)-1]
	if len(r.streams) == 0 {
		r.last = nil
	} else {
		r.last = r.streams[len(r.streams)-1]
	}
}

// IsEmpty reports whether no stream is pushed.
func (r *Reader) IsEmpty() bool { return len(r.streams) == 0 }

// Depth reports how many streams are stacked.
func (r *Reader) Depth() int { return len(r.streams) }

// Get returns the next logical character of the current stream, or EOF
// when the reader is empty or the stream is exhausted.
func (r *Reader) Get() int {
	if r.last != nil {
		return r.last.next()
	}
	return EOF
}

// Peek returns what Get would return, consuming nothing.
func (r *Reader) Peek() int {
	if r.last != nil {
		return r.last.peek()
	}
	return EOF
}

// Unget pushes ch back onto the current stream.
func (r *Reader) Unget(ch int) {
	if r.last == nil {
		panic("occ: unget on empty reader")
	}
	r.last.unget(ch)
}

// Try consumes the next character iff it equals ch.
func (r *Reader) Try(ch int) bool {
	if r.Peek() == ch {
		r.Get()
		return true
	}
	return false
}

// Test reports whether the next character equals ch, consuming nothing.
func (r *Reader) Test(ch int) bool {
	return r.Peek() == ch
}

func (r *Reader) top() *stream {
	if r.last == nil {
		panic("occ: reader has no stream")
	}
	return r.last
}

// Line returns the current 1-based logical line.
func (r *Reader) Line() int { return r.top().line }

// Column returns the current 1-based column.
func (r *Reader) Column() int { return r.top().column }

// Filename returns the interned name of the current stream.
func (r *Reader) Filename() *string { return r.top().fn }

// Linenote anchors the first byte of the current physical line.
func (r *Reader) Linenote() LineNote { return r.top().note() }

// ModifyTime returns the mtime captured when the current stream was
// pushed; zero for string streams.
func (r *Reader) ModifyTime() time.Time { return r.top().modifyTime }

// ChangeTime returns the captured ctime.
func (r *Reader) ChangeTime() time.Time { return r.top().changeTime }

// AccessTime returns the captured atime.
func (r *Reader) AccessTime() time.Time { return r.top().accessTime }
