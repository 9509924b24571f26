package tictactoe

import "fmt"

// Outcome summarises the state of a game. It is always derived from a board.
type Outcome uint8

const (
	NoWinnerYet Outcome = iota
	WinsX
	WinsO
	Draw
)

var outcomeNames = map[Outcome]string{
	NoWinnerYet: "ongoing",
	WinsX:       "x_wins",
	WinsO:       "o_wins",
	Draw:        "draw",
}

// Evaluate derives the outcome of b.
func Evaluate(b Board) Outcome {
	switch winner, _ := Winner(b); {
	case winner == MarkX:
		return WinsX
	case winner == MarkO:
		return WinsO
	case Terminal(b):
		return Draw
	default:
		return NoWinnerYet
	}
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", uint8(o))
}

func (o Outcome) MarshalText() ([]byte, error) {
	if _, ok := outcomeNames[o]; !ok {
		return nil, fmt.Errorf("unknown outcome %d", uint8(o))
	}
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	for outcome, name := range outcomeNames {
		if name == string(text) {
			*o = outcome
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", text)
}
