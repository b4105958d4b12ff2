package tui

import (
	"context"
	"testing"
	"time"

	"github.com/edwinsyarief/monologue"
	"github.com/edwinsyarief/monologue/config"
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

func cellRune(screen tcell.SimulationScreen, x, y int) rune {
	cells, width, _ := screen.GetContents()
	cell := cells[y*width+x]
	if len(cell.Runes) == 0 {
		return ' '
	}
	return cell.Runes[0]
}

func TestKeyFromEvent(t *testing.T) {
	tests := []struct {
		name  string
		event *tcell.EventKey
		key   ebiten.Key
		ok    bool
	}{
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ebiten.KeySpace, true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ebiten.KeyEnter, true},
		{"lower letter", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ebiten.KeyZ, true},
		{"upper letter", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), ebiten.KeyQ, true},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone), ebiten.KeyDigit7, true},
		{"arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ebiten.KeyArrowDown, true},
		{"symbol", tcell.NewEventKey(tcell.KeyRune, '#', tcell.ModNone), 0, false},
		{"non ascii", tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := KeyFromEvent(tt.event)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.key, key)
			}
		})
	}
}

func TestKeyInputConsumesPresses(t *testing.T) {
	input := NewKeyInput()
	input.ReleaseDelay = 0
	assert.False(t, input.HandleEvent(tcell.NewEventResize(10, 10)))
	assert.True(t, input.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))

	assert.False(t, input.IsPressed(ebiten.KeyEnter))
	assert.True(t, input.IsPressed(ebiten.KeySpace))
	assert.False(t, input.IsPressed(ebiten.KeySpace))
}

func TestKeyInputHoldsRepeatedKey(t *testing.T) {
	now := time.Unix(0, 0)
	input := NewKeyInput()
	input.ReleaseDelay = 500 * time.Millisecond
	input.now = func() time.Time { return now }
	space := tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)

	input.HandleEvent(space)
	assert.True(t, input.IsPressed(ebiten.KeySpace))

	// auto-repeat keeps the key down
	for i := 0; i < 10; i++ {
		now = now.Add(400 * time.Millisecond)
		assert.True(t, input.IsPressed(ebiten.KeySpace))
		input.HandleEvent(space)
	}

	now = now.Add(500 * time.Millisecond)
	assert.False(t, input.IsPressed(ebiten.KeySpace))
	assert.False(t, input.IsPressed(ebiten.KeySpace))
}

func TestKeyInputHeldKeyAdvancesOnce(t *testing.T) {
	now := time.Unix(0, 0)
	input := NewKeyInput()
	input.now = func() time.Time { return now }

	cfg := config.Default()
	cfg.RevealInterval = config.InstantReveal
	presenter := monologue.NewPresenter(monologue.NewSettingsWithConfig(cfg, nil, nil, nil))
	presenter.SetInput(input)
	presenter.SetClock(fixedClock(16))
	require.NoError(t, presenter.SetPages([]string{"one", "two", "three"}))
	presenter.UpdateFrame()

	space := tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	for i := 0; i < 60; i++ { // one second of 30ms repeats
		input.HandleEvent(space)
		now = now.Add(30 * time.Millisecond)
		presenter.UpdateFrame()
		presenter.UpdateFrame()
	}
	assert.Equal(t, 1, presenter.CurrentSnapshot().Page)

	now = now.Add(DefaultReleaseDelay)
	presenter.UpdateFrame()
	input.HandleEvent(space)
	presenter.UpdateFrame()
	assert.Equal(t, 2, presenter.CurrentSnapshot().Page)
}

type fixedClock int

func (self fixedClock) ElapsedMillis() int { return int(self) }

func TestRendererDrawsBox(t *testing.T) {
	screen := newSimScreen(t, 30, 10)
	renderer := NewRenderer()

	renderer.Draw(screen, monologue.Snapshot{
		Text:         "Hello\nWorld",
		PageComplete: true,
		Active:       true,
		Pages:        1,
	})
	screen.Show()

	top := 10 - renderer.Height
	assert.Equal(t, tcell.RuneULCorner, cellRune(screen, 0, top))
	assert.Equal(t, tcell.RuneLRCorner, cellRune(screen, 29, 9))
	assert.Equal(t, 'H', cellRune(screen, 2, top+1))
	assert.Equal(t, 'o', cellRune(screen, 6, top+1))
	assert.Equal(t, 'W', cellRune(screen, 2, top+2))
	assert.Equal(t, renderer.Indicator, cellRune(screen, 27, 8))
}

func TestRendererHidesIndicatorWhileRevealing(t *testing.T) {
	screen := newSimScreen(t, 30, 10)
	renderer := NewRenderer()

	renderer.Draw(screen, monologue.Snapshot{Text: "Hel", Active: true, Pages: 1})
	screen.Show()
	assert.Equal(t, ' ', cellRune(screen, 27, 8))
}

func TestRendererClipsLongLines(t *testing.T) {
	screen := newSimScreen(t, 12, 6)
	renderer := NewRenderer()

	renderer.Draw(screen, monologue.Snapshot{Text: "abcdefghijklmnop", Active: true, Pages: 1})
	screen.Show()
	assert.Equal(t, 'h', cellRune(screen, 9, 1))
	assert.Equal(t, ' ', cellRune(screen, 10, 1))
	assert.Equal(t, tcell.RuneVLine, cellRune(screen, 11, 1))
}

func TestRendererSkipsInactive(t *testing.T) {
	screen := newSimScreen(t, 30, 10)
	NewRenderer().Draw(screen, monologue.Snapshot{})
	screen.Show()
	assert.Equal(t, ' ', cellRune(screen, 0, 4))
}

func TestWallClockStartsAtZero(t *testing.T) {
	clock := &WallClock{}
	assert.Equal(t, 0, clock.ElapsedMillis())
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, clock.ElapsedMillis(), 4)
}

func TestDriverRunsSessionToEnd(t *testing.T) {
	screen := newSimScreen(t, 40, 12)

	cfg := config.Default()
	cfg.RevealInterval = config.InstantReveal
	presenter := monologue.NewPresenter(monologue.NewSettingsWithConfig(cfg, nil, nil, nil))
	require.NoError(t, presenter.SetPages([]string{"first", "second"}))

	driver := NewDriver(screen, presenter)
	driver.FrameInterval = time.Millisecond
	driver.Input.ReleaseDelay = 0

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- driver.Run(ctx) }()

	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case err := <-done:
			require.NoError(t, err)
			assert.False(t, presenter.IsActive())
			return
		case <-ticker.C:
			screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
		}
	}
}

func TestDriverRunsSessionsBackToBack(t *testing.T) {
	screen := newSimScreen(t, 40, 12)

	cfg := config.Default()
	cfg.RevealInterval = config.InstantReveal
	presenter := monologue.NewPresenter(monologue.NewSettingsWithConfig(cfg, nil, nil, nil))

	driver := NewDriver(screen, presenter)
	driver.FrameInterval = time.Millisecond
	driver.Input.ReleaseDelay = 10 * time.Millisecond

	for round := 0; round < 4; round++ {
		require.NoError(t, presenter.SetPages([]string{"first", "second"}))

		done := make(chan error, 1)
		go func() { done <- driver.Run(context.Background()) }()

		// exactly one press per page, every one of them must arrive
		for press := 0; press < 2; press++ {
			time.Sleep(40 * time.Millisecond)
			screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
		}

		select {
		case err := <-done:
			require.NoError(t, err, "round %d", round)
		case <-time.After(2 * time.Second):
			t.Fatalf("round %d: session did not end, a key press was lost", round)
		}
		assert.False(t, presenter.IsActive())
	}
}

func TestDriverStopsOnContext(t *testing.T) {
	screen := newSimScreen(t, 40, 12)
	presenter := monologue.NewPresenter(monologue.NewSettings(nil, nil, nil))
	require.NoError(t, presenter.SetPages([]string{"never acknowledged"}))

	driver := NewDriver(screen, presenter)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := driver.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, presenter.IsActive())
}
