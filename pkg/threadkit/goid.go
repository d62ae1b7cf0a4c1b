package threadkit

import (
	"runtime"
	"strconv"
	"strings"
)

// callerID returns the runtime identity of the calling goroutine, parsed
// from the first line of its stack header ("goroutine N [running]:").
//
// The runtime never reuses goroutine ids within a process and ids start at
// 1, so 0 is free to mean "no identity". A thread's spawn identity is the
// id of its pinned goroutine, recorded by the trampoline before the work
// routine runs.
func callerID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	end := strings.IndexByte(header, ' ')
	if end <= 0 {
		return 0
	}
	id, err := strconv.ParseUint(header[:end], 10, 64)
	if err != nil {
		return 0
	}
	return id
}
