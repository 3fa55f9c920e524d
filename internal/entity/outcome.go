package entity

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusTie     = "tie"
)

// Outcome is the status of a round. Winner is set only when Status is StatusWon.
type Outcome struct {
	Status string `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func InProgress() Outcome {
	return Outcome{Status: StatusOngoing}
}

func WonBy(player Mark) Outcome {
	return Outcome{Status: StatusWon, Winner: player}
}

func Tie() Outcome {
	return Outcome{Status: StatusTie}
}

func (that Outcome) IsTerminal() bool {
	return that.Status == StatusWon || that.Status == StatusTie
}

func (that Outcome) IsTie() bool {
	return that.Status == StatusTie
}

// Statistics counts finished rounds until explicitly reset.
type Statistics struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Ties  int `json:"ties"`
}

// Record - counts a finished round. Non-terminal outcomes are ignored.
func (that *Statistics) Record(outcome Outcome) {
	switch {
	case outcome.IsTie():
		that.Ties++
	case outcome.Status == StatusWon && outcome.Winner == PlayerX:
		that.XWins++
	case outcome.Status == StatusWon && outcome.Winner == PlayerO:
		that.OWins++
	}
}

func (that Statistics) Total() int {
	return that.XWins + that.OWins + that.Ties
}

// Snapshot is a read-only copy of the engine state handed to the presentation layer.
type Snapshot struct {
	Board          Board      `json:"board"`
	CurrentPlayer  Mark       `json:"current_player"`
	StartingPlayer Mark       `json:"starting_player"`
	Outcome        Outcome    `json:"outcome"`
	FreeCells      int        `json:"free_cells"`
	Statistics     Statistics `json:"statistics"`
}
