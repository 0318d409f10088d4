package rules

import (
	"math/rand"
	"testing"

	"github.com/battlesnakeio/termsnake/config"
	"github.com/battlesnakeio/termsnake/game"
	"github.com/prometheus/client_golang/prometheus/testutil"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func testEngine(cfg config.Config) (*Engine, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	return New(cfg, WithRand(rand.New(rand.NewSource(3))), WithLogger(logger)), hook
}

func TestNewEngine(t *testing.T) {
	e, _ := testEngine(config.Default())
	require.Equal(t, game.Point{X: 1, Y: 1}, e.Body().Head)
	require.Empty(t, e.Body().History)
	require.Equal(t, 3, e.Body().MaxLength)
	require.Equal(t, int64(0), e.Turn())
	require.Equal(t, 100, e.Board().Count(game.Empty))
}

func TestEngineStepScenario(t *testing.T) {
	e, _ := testEngine(config.Default())
	for _, d := range []game.Direction{game.Right, game.Right, game.Down} {
		require.NoError(t, e.Step(d))
	}

	require.Equal(t, game.Point{X: 3, Y: 2}, e.Body().Head)
	require.Equal(t, []game.Point{{X: 3, Y: 1}, {X: 2, Y: 1}}, e.Body().History)
	require.Equal(t, int64(3), e.Turn())
	require.Equal(t, 2, e.Score())

	board := e.Board()
	require.Equal(t, 3, board.Count(game.SnakeSegment))
	require.Equal(t, 1, board.Count(game.Food))
	require.Equal(t, game.SnakeSegment, board.Cell(game.Point{X: 3, Y: 2}))
	require.Equal(t, game.SnakeSegment, board.Cell(game.Point{X: 3, Y: 1}))
	require.Equal(t, game.SnakeSegment, board.Cell(game.Point{X: 2, Y: 1}))
}

func TestEngineHistoryNeverReachesMaxLength(t *testing.T) {
	e, _ := testEngine(config.Default())
	moves := []game.Direction{game.Up, game.Up, game.Left, game.Left, game.Down, game.Right, game.Right, game.Down}
	for _, m := range moves {
		require.NoError(t, e.Step(m))
		require.True(t, len(e.Body().History) < e.Body().MaxLength)
	}
}

func TestEngineSingleCellBoard(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 1, 1
	e, hook := testEngine(cfg)
	require.Equal(t, game.Point{X: 0, Y: 0}, e.Body().Head)

	for _, d := range []game.Direction{game.Up, game.Down, game.Left, game.Right} {
		err := e.Step(d)
		require.Error(t, err)
		require.True(t, IsBoardFull(err))
		require.Equal(t, game.Point{X: 0, Y: 0}, e.Body().Head)
		require.Equal(t, game.SnakeSegment, e.Board().Cell(game.Point{X: 0, Y: 0}))
	}
	require.Equal(t, log.WarnLevel, hook.LastEntry().Level)
}

func TestEngineInclusiveBounds(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 3, 3
	cfg.InclusiveBounds = true
	e, _ := testEngine(cfg)

	require.NoError(t, e.Step(game.Right))
	require.NoError(t, e.Step(game.Right))
	require.Equal(t, game.Point{X: 3, Y: 1}, e.Body().Head)
	require.Equal(t, game.Empty, e.Board().Cell(e.Body().Head))
	require.Equal(t, 2, e.Board().Count(game.SnakeSegment))

	require.NoError(t, e.Step(game.Right))
	require.Equal(t, game.Point{X: 3, Y: 1}, e.Body().Head)
}

func TestEngineGrowOnEat(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 2, 1
	cfg.MaxLength = 1
	cfg.GrowOnEat = true
	e, hook := testEngine(cfg)
	require.Equal(t, game.Point{X: 1, Y: 0}, e.Body().Head)

	require.NoError(t, e.Step(game.Left))
	food, ok := e.Board().Food()
	require.True(t, ok)
	require.Equal(t, game.Point{X: 1, Y: 0}, food)

	require.NoError(t, e.Step(game.Right))
	require.Equal(t, 2, e.Body().MaxLength)
	require.Equal(t, "snake ate", findEntry(hook, "snake ate").Message)

	err := e.Step(game.Left)
	require.True(t, IsBoardFull(err))
	require.Equal(t, 3, e.Body().MaxLength)
	require.Equal(t, []game.Point{{X: 1, Y: 0}}, e.Body().History)
}

func TestEngineWithoutGrowth(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 2, 1
	cfg.MaxLength = 1
	e, _ := testEngine(cfg)

	for _, d := range []game.Direction{game.Left, game.Right, game.Left, game.Right} {
		require.NoError(t, e.Step(d))
		require.Equal(t, 1, e.Body().MaxLength)
	}
}

func TestEngineExitDoesNotMove(t *testing.T) {
	e, _ := testEngine(config.Default())
	require.NoError(t, e.Step(game.Exit))
	require.Equal(t, game.Point{X: 1, Y: 1}, e.Body().Head)
	require.Equal(t, []game.Point{{X: 1, Y: 1}}, e.Body().History)
}

func TestEngineFrame(t *testing.T) {
	e, _ := testEngine(config.Default())
	require.NoError(t, e.Step(game.Down))

	f := e.Frame()
	require.Equal(t, int64(1), f.Turn)
	require.Equal(t, game.Down, f.Input)
	require.Equal(t, game.Point{X: 1, Y: 2}, f.Head)
	require.Equal(t, 1, f.Score())
	require.True(t, f.HasFood)
	require.Equal(t, game.Food, f.Rows[f.Food.Y][f.Food.X])

	// the frame must not follow later ticks
	require.NoError(t, e.Step(game.Down))
	require.Equal(t, game.Point{X: 1, Y: 2}, f.Head)
	require.Len(t, f.History, 1)
}

func TestInstrument(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 1, 1
	e, _ := testEngine(cfg)
	s := Instrument(e)

	turns := testutil.ToFloat64(turnsTotal)
	full := testutil.ToFloat64(boardFullTotal)

	err := s.Step(game.Up)
	require.True(t, IsBoardFull(err))
	require.Equal(t, turns+1, testutil.ToFloat64(turnsTotal))
	require.Equal(t, full+1, testutil.ToFloat64(boardFullTotal))
	require.Equal(t, float64(1), testutil.ToFloat64(score))
	require.Equal(t, e.Frame(), s.Frame())
}

func findEntry(hook *test.Hook, msg string) log.Entry {
	for _, entry := range hook.AllEntries() {
		if entry.Message == msg {
			return *entry
		}
	}
	return log.Entry{}
}
