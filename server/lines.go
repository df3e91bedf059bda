package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"acpc-thunderdome/server/acpc"
)

type lineResult struct {
	Line  int
	Raw   string
	State *acpc.MatchState
	Err   error
}

// scanStates parses every non-blank line of r. Malformed lines are reported
// in their result, not as the returned error.
func scanStates(r io.Reader) ([]lineResult, error) {
	var out []lineResult
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		m, err := acpc.Parse(raw)
		out = append(out, lineResult{Line: n, Raw: raw, State: m, Err: err})
	}
	return out, sc.Err()
}

// openInput returns stdin for no args or "-".
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(args[0])
}

func countBad(res []lineResult) int {
	n := 0
	for _, r := range res {
		if r.Err != nil {
			n++
		}
	}
	return n
}
