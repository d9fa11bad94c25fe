// Package render draws solver transcripts as coloured tile rows.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/peter-ruse/wordle-solver/internal/play"
)

// Tile colours, the familiar green / yellow / grey.
var (
	ColorCorrect = lipgloss.Color("#6AAA64")
	ColorPresent = lipgloss.Color("#C9B458")
	ColorAbsent  = lipgloss.Color("#787C7E")
	ColorText    = lipgloss.Color("#FFFFFF")
)

var (
	tile = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Padding(0, 1)

	tiles = map[string]lipgloss.Style{
		"correct": tile.Background(ColorCorrect),
		"present": tile.Background(ColorPresent),
		"absent":  tile.Background(ColorAbsent),
	}

	muted = lipgloss.NewStyle().Faint(true)
	won   = lipgloss.NewStyle().Bold(true).Foreground(ColorCorrect)
	lost  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E74C3C"))
)

// Row renders one round: the guess as coloured tiles plus the pool size.
// Plain mode uses bracketed letters instead of colour.
func Row(r play.Round, plain bool) string {
	var b strings.Builder
	for i := 0; i < len(r.Guess); i++ {
		letter := strings.ToUpper(r.Guess[i : i+1])
		state := ""
		if i < len(r.Feedback) {
			state = r.Feedback[i]
		}
		if plain {
			b.WriteString(plainTile(letter, state))
			continue
		}
		style, ok := tiles[state]
		if !ok {
			style = tile
		}
		b.WriteString(style.Render(letter))
	}
	pool := fmt.Sprintf("  %d. from %d candidates", r.N, r.Candidates)
	if plain {
		return b.String() + pool
	}
	return b.String() + muted.Render(pool)
}

// plainTile marks correct as [X], present as (X), absent as  X .
func plainTile(letter, state string) string {
	switch state {
	case "correct":
		return "[" + letter + "]"
	case "present":
		return "(" + letter + ")"
	}
	return " " + letter + " "
}

// Transcript renders every round followed by a summary line.
func Transcript(res *play.Result, plain bool) string {
	var b strings.Builder
	for _, r := range res.Rounds {
		b.WriteString(Row(r, plain))
		b.WriteByte('\n')
	}
	b.WriteString(Summary(res, plain))
	return b.String()
}

// Summary is a one-line outcome.
func Summary(res *play.Result, plain bool) string {
	var msg string
	style := lost
	if res.Won {
		msg = fmt.Sprintf("solved in %d/6", res.Attempts())
		style = won
	} else {
		msg = "not solved in 6"
	}
	if plain {
		return msg
	}
	return style.Render(msg)
}
