package render

import (
	"checkers/game"
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

type Scheme int

const (
	RedBlack Scheme = iota
	WhiteRed
	WhiteBlack
)

var schemeNames = map[string]Scheme{
	"red-black":   RedBlack,
	"white-red":   WhiteRed,
	"white-black": WhiteBlack,
}

func ParseScheme(name string) (Scheme, error) {
	scheme, ok := schemeNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown colour scheme %q", name)
	}
	return scheme, nil
}

// palette holds the colours of the two square shades and the two teams.
type palette struct {
	lightSquare, darkSquare aurora.Color
	lightTeam, darkTeam     aurora.Color
}

var palettes = map[Scheme]palette{
	RedBlack:   {lightSquare: aurora.RedBg, darkSquare: aurora.BlackBg, lightTeam: aurora.RedFg, darkTeam: aurora.WhiteFg},
	WhiteRed:   {lightSquare: aurora.WhiteBg, darkSquare: aurora.RedBg, lightTeam: aurora.WhiteFg, darkTeam: aurora.BlackFg},
	WhiteBlack: {lightSquare: aurora.WhiteBg, darkSquare: aurora.BlackBg, lightTeam: aurora.WhiteFg, darkTeam: aurora.RedFg},
}

type Options struct {
	ASCII  bool // O@=# instead of ⛀⛁⛂⛃
	Scheme Scheme
	Colors bool
}

func icon(p game.Piece, ascii bool) string {
	icons := [2][2]string{{"⛀", "⛁"}, {"⛂", "⛃"}}
	if ascii {
		icons = [2][2]string{{"O", "@"}, {"=", "#"}}
	}
	team := 0
	if p.Team == game.Dark {
		team = 1
	}
	kind := 0
	if p.Type == game.King {
		kind = 1
	}
	return icons[team][kind]
}

// Board draws the board with file letters along the top and rank numbers
// down the side, Light at the bottom.
func Board(board game.Board, opts Options) string {
	au := aurora.NewAurora(opts.Colors)
	colors := palettes[opts.Scheme]

	var sb strings.Builder
	sb.WriteString("  ")
	for x := 0; x < game.Size; x++ {
		fmt.Fprintf(&sb, " %c", 'a'+x)
	}
	sb.WriteByte('\n')

	for y := 0; y < game.Size; y++ {
		fmt.Fprintf(&sb, "%d ", game.Size-y)
		for x := 0; x < game.Size; x++ {
			bg := colors.lightSquare
			if (x+y)%2 == 1 {
				bg = colors.darkSquare
			}
			cell := " "
			fg := aurora.Color(0)
			if p, ok := board.PieceAt(game.Square{X: x, Y: y}); ok {
				cell = icon(p, opts.ASCII)
				fg = colors.lightTeam
				if p.Team == game.Dark {
					fg = colors.darkTeam
				}
			}
			sb.WriteString(au.Colorize(" "+cell, fg|bg).String())
		}
		fmt.Fprintf(&sb, " %d\n", game.Size-y)
	}
	return sb.String()
}

// Status summarises the piece count of both teams.
func Status(board game.Board) string {
	return fmt.Sprintf("light %d, dark %d", board.PiecesAlive(game.Light), board.PiecesAlive(game.Dark))
}
