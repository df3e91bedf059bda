package acpc

import (
	"fmt"
	"strconv"
)

type ActionKind byte

const (
	Fold  ActionKind = 'f'
	Call  ActionKind = 'c'
	Raise ActionKind = 'r'
)

func (k ActionKind) String() string {
	switch k {
	case Fold:
		return "fold"
	case Call:
		return "call"
	case Raise:
		return "raise"
	}
	return fmt.Sprintf("ActionKind(%d)", byte(k))
}

func (k ActionKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Action is one betting token. Amount is only meaningful when Sized is set,
// which happens for a raise written with digits ("r200"); a bare "r" is an
// unsized raise.
type Action struct {
	Kind   ActionKind `json:"action"`
	Amount int        `json:"amount,omitempty"`
	Sized  bool       `json:"sized,omitempty"`
}

func (a Action) String() string {
	if a.Kind == Raise && a.Sized {
		return "r" + strconv.Itoa(a.Amount)
	}
	return string(rune(a.Kind))
}

// scanRound splits one betting round into actions. Each "r" consumes every
// digit that follows it, so "r10r2" is two raises.
func scanRound(s string) ([]Action, error) {
	out := make([]Action, 0, len(s))
	for i := 0; i < len(s); {
		switch s[i] {
		case 'f':
			out = append(out, Action{Kind: Fold})
			i++
		case 'c':
			out = append(out, Action{Kind: Call})
			i++
		case 'r':
			j := i + 1
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			a := Action{Kind: Raise}
			if j > i+1 {
				n, err := strconv.Atoi(s[i+1 : j])
				if err != nil {
					return nil, fmt.Errorf("%w: raise amount %q: %v", ErrMalformedMessage, s[i+1:j], err)
				}
				a.Amount, a.Sized = n, true
			}
			out = append(out, a)
			i = j
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d in betting round %q", ErrMalformedMessage, s[i], i, s)
		}
	}
	return out, nil
}
