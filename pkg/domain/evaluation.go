package domain

import "fmt"

// Verdict classifies an input sequence.
type Verdict int

const (
	Reject Verdict = iota
	Accept
)

func (v Verdict) String() string {
	switch v {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Evaluation is the outcome of running an input: the verdict plus the state execution ended in.
type Evaluation struct {
	Verdict Verdict `json:"verdict"`
	State   State   `json:"state"`
}

// Accepted returns an accepting evaluation that ended in s.
func Accepted(s State) Evaluation {
	return Evaluation{Verdict: Accept, State: s}
}

// Rejected returns a rejecting evaluation that ended in s.
func Rejected(s State) Evaluation {
	return Evaluation{Verdict: Reject, State: s}
}

func (e Evaluation) IsAccept() bool { return e.Verdict == Accept }

func (e Evaluation) IsReject() bool { return e.Verdict == Reject }

func (e Evaluation) String() string {
	return fmt.Sprintf("%s(%s)", e.Verdict, e.State)
}

// MarshalText encodes the verdict as "accept" or "reject".
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText decodes "accept" or "reject".
func (v *Verdict) UnmarshalText(text []byte) error {
	switch string(text) {
	case "accept":
		*v = Accept
	case "reject":
		*v = Reject
	default:
		return fmt.Errorf("unknown verdict %q", text)
	}
	return nil
}
