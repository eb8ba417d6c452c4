package agent

import (
	"bytes"
	"checkers/game"
	"checkers/searcher"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func square(t *testing.T, s string) game.Square {
	t.Helper()
	sq, err := game.ParseSquare(s)
	require.NoError(t, err)
	return sq
}

func place(t *testing.T, b *game.Board, s string, team game.Team, kind game.PieceType) {
	t.Helper()
	b.Place(square(t, s), game.Piece{Team: team, Type: kind})
}

// chainBoard gives Light a double jump from a1 over b2 and d4.
func chainBoard(t *testing.T) game.Board {
	b := game.EmptyBoard()
	place(t, &b, "a1", game.Light, game.Man)
	place(t, &b, "b2", game.Dark, game.Man)
	place(t, &b, "d4", game.Dark, game.Man)
	place(t, &b, "h8", game.Dark, game.Man)
	return b
}

func TestMinimaxAgent(t *testing.T) {
	t.Run("returns the searcher's turn", func(t *testing.T) {
		m := searcher.NewMinimax(searcher.WithDepth(2), searcher.WithMetrics())
		a := NewMinimaxAgent(m)

		turn, metric, err := a.FindTurn(context.Background(), game.NewBoard(), game.Dark)
		require.NoError(t, err)

		want, _ := m.ChooseTurn(game.NewBoard(), game.Dark)
		require.Equal(t, want, turn)
		require.Equal(t, 7, metric.RootTurns)
	})

	t.Run("stops on a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := NewMinimaxAgent(searcher.NewMinimax()).FindTurn(ctx, game.NewBoard(), game.Dark)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("plays legal turns", func(t *testing.T) {
		a := NewRandomAgent(1)
		b := chainBoard(t)

		for i := 0; i < 20; i++ {
			turn, metric, err := a.FindTurn(context.Background(), b, game.Light)
			require.NoError(t, err)
			require.NoError(t, turn.Validate(b, game.Light))
			require.Equal(t, 2, metric.RootTurns)
		}
	})

	t.Run("same seed, same choices", func(t *testing.T) {
		a1, a2 := NewRandomAgent(42), NewRandomAgent(42)
		for i := 0; i < 10; i++ {
			t1, _, _ := a1.FindTurn(context.Background(), game.NewBoard(), game.Dark)
			t2, _, _ := a2.FindTurn(context.Background(), game.NewBoard(), game.Dark)
			require.Equal(t, t1, t2)
		}
	})

	t.Run("empty turn without legal turns", func(t *testing.T) {
		b := game.EmptyBoard()
		place(t, &b, "a1", game.Light, game.Man)

		turn, _, err := NewRandomAgent(1).FindTurn(context.Background(), b, game.Dark)
		require.NoError(t, err)
		require.Empty(t, turn)
	})
}

func TestHumanAgent(t *testing.T) {
	t.Run("reads a step", func(t *testing.T) {
		var out bytes.Buffer
		a := NewHumanAgent(strings.NewReader("c3 d4\n"), &out)

		turn, _, err := a.FindTurn(context.Background(), game.NewBoard(), game.Light)

		require.NoError(t, err)
		require.Equal(t, "c3-d4", turn.String())
		require.Contains(t, out.String(), "light to move")
	})

	t.Run("re-prompts on bad input", func(t *testing.T) {
		var out bytes.Buffer
		input := "hello\nf6 e5\nc3 c4\nc3-b4\n"
		a := NewHumanAgent(strings.NewReader(input), &out)

		turn, _, err := a.FindTurn(context.Background(), game.NewBoard(), game.Light)

		require.NoError(t, err)
		require.Equal(t, "c3-b4", turn.String())
		require.Contains(t, out.String(), "expected two squares")
		require.Contains(t, out.String(), "no light piece on f6")
		require.Contains(t, out.String(), "c3-c4 is not a legal move")
	})

	t.Run("continues a jump chain", func(t *testing.T) {
		var out bytes.Buffer
		a := NewHumanAgent(strings.NewReader("a1xc3\ne5\n"), &out)
		b := chainBoard(t)

		turn, _, err := a.FindTurn(context.Background(), b, game.Light)

		require.NoError(t, err)
		require.Equal(t, "a1xc3xe5", turn.String())
		require.NoError(t, turn.Validate(b, game.Light))
		require.Contains(t, out.String(), "continue jumping from c3 to e5")
	})

	t.Run("stops a jump chain early", func(t *testing.T) {
		a := NewHumanAgent(strings.NewReader("a1 c3\n\n"), &bytes.Buffer{})

		turn, _, err := a.FindTurn(context.Background(), chainBoard(t), game.Light)

		require.NoError(t, err)
		require.Equal(t, "a1xc3", turn.String())
	})

	t.Run("rejects illegal continuations", func(t *testing.T) {
		var out bytes.Buffer
		a := NewHumanAgent(strings.NewReader("a1 c3\nc3 d4\nc3 e5\n"), &out)

		turn, _, err := a.FindTurn(context.Background(), chainBoard(t), game.Light)

		require.NoError(t, err)
		require.Equal(t, "a1xc3xe5", turn.String())
		require.Contains(t, out.String(), "c3-d4 is not a legal continuation")
	})

	t.Run("reports closed input", func(t *testing.T) {
		a := NewHumanAgent(strings.NewReader("zz\n"), &bytes.Buffer{})

		_, _, err := a.FindTurn(context.Background(), game.NewBoard(), game.Light)
		require.ErrorIs(t, err, ErrInputClosed)
	})

	t.Run("empty turn without legal turns", func(t *testing.T) {
		b := game.EmptyBoard()
		place(t, &b, "a1", game.Light, game.Man)
		place(t, &b, "b2", game.Dark, game.Man)
		place(t, &b, "c3", game.Dark, game.Man)

		turn, _, err := NewHumanAgent(strings.NewReader(""), &bytes.Buffer{}).FindTurn(context.Background(), b, game.Light)
		require.NoError(t, err)
		require.Empty(t, turn)
	})
}
