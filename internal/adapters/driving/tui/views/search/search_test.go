package search

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/messages"
	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/session"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
)

// fakeSearchService records queries and returns canned rules.
type fakeSearchService struct {
	queries []string
	opts    []domain.SearchOptions
	rules   []domain.Rule
	err     error
}

func (f *fakeSearchService) Search(
	_ context.Context, query string, opts domain.SearchOptions,
) ([]domain.Rule, error) {
	f.queries = append(f.queries, query)
	f.opts = append(f.opts, opts)
	return f.rules, f.err
}

func typeRune(v *View, r rune) (*View, tea.Cmd) {
	return v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func newTestView(svc *fakeSearchService) *View {
	v := NewView(nil, nil, svc, session.NewController(0))
	v.SetDimensions(80, 24)
	return v
}

func TestTypingSchedulesButDoesNotSearch(t *testing.T) {
	svc := &fakeSearchService{}
	v := newTestView(svc)

	v, cmd := typeRune(v, 'p')
	assert.NotNil(t, cmd)
	assert.Equal(t, session.StatePending, v.Session().State())

	// No search has run yet; only the settle timer was scheduled.
	assert.Empty(t, svc.queries)
}

func TestStaleTimerDoesNotSearch(t *testing.T) {
	svc := &fakeSearchService{}
	v := newTestView(svc)

	v, _ = typeRune(v, 'p')
	v, _ = typeRune(v, 'o')

	// A token from a superseded edit fires: nothing happens.
	v, cmd := v.Update(messages.SettleTimerFired{Token: uuid.New()})
	assert.Nil(t, cmd)
	assert.Empty(t, svc.queries)
	assert.Equal(t, session.StatePending, v.Session().State())
}

func TestCurrentTimerRunsSearch(t *testing.T) {
	svc := &fakeSearchService{rules: []domain.Rule{{
		Slug:    "power-bank-in-flight",
		Title:   "Power bank in flight",
		Verdict: domain.Verdict{Status: domain.VerdictAllowed, Summary: "Cabin only."},
	}}}
	v := newTestView(svc)

	v, _ = typeRune(v, 'p')
	v, _ = typeRune(v, 'o')

	// Re-register the settled query to obtain the live token, then fire it.
	timer, ok := v.Session().Input(v.Query())
	require.True(t, ok)

	v, cmd := v.Update(messages.SettleTimerFired{Token: timer.Token})
	require.NotNil(t, cmd)

	msg := cmd()
	completed, isCompleted := msg.(messages.SearchCompleted)
	require.True(t, isCompleted)
	assert.Equal(t, "po", completed.Query)
	require.Len(t, completed.Rules, 1)

	v, _ = v.Update(completed)
	assert.Len(t, v.Rules(), 1)
	assert.Equal(t, []string{"po"}, svc.queries)
	assert.Equal(t, session.StateSettled, v.Session().State())
}

func TestBlankQueryClearsImmediately(t *testing.T) {
	svc := &fakeSearchService{rules: []domain.Rule{{Slug: "r"}}}
	v := newTestView(svc)

	v, _ = typeRune(v, 'p')
	timer, _ := v.Session().Input(v.Query())
	v, cmd := v.Update(messages.SettleTimerFired{Token: timer.Token})
	v, _ = v.Update(cmd().(messages.SearchCompleted))
	require.Len(t, v.Rules(), 1)

	// Backspace to empty: results vanish without waiting for any timer.
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Empty(t, v.Rules())
	assert.Equal(t, session.StateIdle, v.Session().State())
}

func TestVerdictFilterCyclePassesOptions(t *testing.T) {
	svc := &fakeSearchService{}
	v := newTestView(svc)

	v, _ = typeRune(v, 'b')

	// Cycling the verdict filter reruns the query with the filter applied.
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	require.NotNil(t, cmd)
	cmd()

	require.Len(t, svc.opts, 1)
	assert.Equal(t, domain.VerdictAllowed, svc.opts[0].Verdict)
}

func TestSearchErrorShown(t *testing.T) {
	svc := &fakeSearchService{err: domain.ErrCatalogUnavailable}
	v := newTestView(svc)

	v, _ = typeRune(v, 'x')
	timer, _ := v.Session().Input(v.Query())
	v, cmd := v.Update(messages.SettleTimerFired{Token: timer.Token})
	v, _ = v.Update(cmd().(messages.SearchCompleted))

	assert.Error(t, v.Err())
}

func TestEscReturnsToMenu(t *testing.T) {
	v := newTestView(&fakeSearchService{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	msg := cmd()
	changed, ok := msg.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestReset(t *testing.T) {
	svc := &fakeSearchService{rules: []domain.Rule{{Slug: "r"}}}
	v := newTestView(svc)

	v, _ = typeRune(v, 'p')
	v.Reset()

	assert.Empty(t, v.Query())
	assert.Empty(t, v.Rules())
	assert.Equal(t, session.StateIdle, v.Session().State())
}
