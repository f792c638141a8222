package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/lexi/internal/dictionary"
	"github.com/at-ishikawa/lexi/internal/render"
	"github.com/at-ishikawa/lexi/internal/wordbook"
)

// View is the pane that is currently visible. Exactly one pane is visible
// after the first action; none is visible before it.
type View int

const (
	ViewNone View = iota
	ViewResults
	ViewHistory
	ViewFavorites
)

func (v View) String() string {
	switch v {
	case ViewResults:
		return "results"
	case ViewHistory:
		return "history"
	case ViewFavorites:
		return "favorites"
	default:
		return "none"
	}
}

var (
	ErrEmptyInput = errors.New("empty input")
	ErrNoSuchItem = errors.New("no such list item")
)

const (
	messageNotFound  = "Word not found"
	messageNetwork   = "Could not reach the dictionary service"
	messageMalformed = "Received an unreadable response from the dictionary service"
)

//go:generate mockgen -source=controller.go -destination=../mocks/cli/mock_controller.go -package=mock_cli Lookup,Screen

type Lookup interface {
	Lookup(ctx context.Context, word string) ([]dictionary.Entry, error)
}

// Screen draws what the controller decides to show.
type Screen interface {
	SetLoading(word string, loading bool) error
	ShowResults(display render.Display) error
	ShowWordList(list render.WordList) error
}

// Controller wires user actions to the lookup client, the word book and the
// renderer, and tracks which pane is visible.
type Controller struct {
	lookup  Lookup
	manager *wordbook.Manager
	screen  Screen
	logger  *slog.Logger

	view        View
	input       string
	loading     bool
	lastWord    string
	lastEntries []dictionary.Entry
	lastDisplay render.Display
}

func NewController(lookup Lookup, manager *wordbook.Manager, screen Screen, logger *slog.Logger) *Controller {
	return &Controller{
		lookup:  lookup,
		manager: manager,
		screen:  screen,
		logger:  logger.With("component", "controller"),
	}
}

// Submit looks word up and shows either its cards or an error panel in the
// results pane. Lookup failures end up on the screen, so the only errors
// returned are ErrEmptyInput and screen write failures.
func (c *Controller) Submit(ctx context.Context, word string) (err error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return ErrEmptyInput
	}
	c.input = word

	defer func() {
		if loadingErr := c.setLoading(word, false); err == nil {
			err = loadingErr
		}
	}()
	if err := c.setLoading(word, true); err != nil {
		return err
	}

	entries, lookupErr := c.lookup.Lookup(ctx, word)
	if lookupErr != nil {
		c.logger.DebugContext(ctx, "lookup failed", slog.String("word", word), slog.Any("error", lookupErr))
		c.lastWord = ""
		c.lastEntries = nil
		return c.showResults(render.RenderError(errorMessage(lookupErr)))
	}

	if err := c.manager.RecordSearch(ctx, word); err != nil {
		c.logger.DebugContext(ctx, "search history is kept for this session only", slog.Any("error", err))
	}
	c.lastWord = wordbook.Normalize(word)
	c.lastEntries = entries
	return c.showResults(render.Render(entries, c.manager.Favorites()))
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, dictionary.ErrNetwork):
		return messageNetwork
	case errors.Is(err, dictionary.ErrMalformedResponse):
		return messageMalformed
	default:
		return messageNotFound
	}
}

func (c *Controller) setLoading(word string, loading bool) error {
	c.loading = loading
	if err := c.screen.SetLoading(word, loading); err != nil {
		return fmt.Errorf("screen.SetLoading() > %w", err)
	}
	return nil
}

func (c *Controller) showResults(display render.Display) error {
	c.view = ViewResults
	c.lastDisplay = display
	if err := c.screen.ShowResults(display); err != nil {
		return fmt.Errorf("screen.ShowResults() > %w", err)
	}
	return nil
}

func (c *Controller) SelectHistoryTab() error {
	return c.showWordList(ViewHistory)
}

func (c *Controller) SelectFavoritesTab() error {
	return c.showWordList(ViewFavorites)
}

func (c *Controller) showWordList(view View) error {
	var list render.WordList
	switch view {
	case ViewHistory:
		list = render.RenderHistory(c.manager.History())
	case ViewFavorites:
		list = render.RenderFavorites(c.manager.Favorites())
	default:
		return fmt.Errorf("%s is not a word list", view)
	}

	c.view = view
	if err := c.screen.ShowWordList(list); err != nil {
		return fmt.Errorf("screen.ShowWordList(%s) > %w", view, err)
	}
	return nil
}

// ReSearch submits a word picked from the history or favorites pane.
func (c *Controller) ReSearch(ctx context.Context, word string) error {
	return c.Submit(ctx, word)
}

// ReSearchItem submits the n-th word (1-based) of the visible word list.
func (c *Controller) ReSearchItem(ctx context.Context, n int) error {
	var words []string
	switch c.view {
	case ViewHistory:
		words = c.manager.History()
	case ViewFavorites:
		words = c.manager.Favorites()
	default:
		return fmt.Errorf("%w: no word list is shown", ErrNoSuchItem)
	}
	if n < 1 || n > len(words) {
		return fmt.Errorf("%w: %d is out of 1..%d", ErrNoSuchItem, n, len(words))
	}
	return c.ReSearch(ctx, words[n-1])
}

// ToggleFavoriteFromCard flips the favorite state of word and refreshes the
// visible pane. The results pane is re-rendered from the entries of the last
// search, without another lookup. An empty word means the last looked up word.
func (c *Controller) ToggleFavoriteFromCard(ctx context.Context, word string) (bool, error) {
	if strings.TrimSpace(word) == "" {
		word = c.lastWord
	}
	if word == "" {
		return false, ErrEmptyInput
	}

	isFavorite, err := c.manager.ToggleFavorite(ctx, word)
	if err != nil {
		c.logger.DebugContext(ctx, "favorites are kept for this session only", slog.Any("error", err))
	}

	switch c.view {
	case ViewResults:
		if c.lastEntries == nil {
			break
		}
		if err := c.showResults(render.Render(c.lastEntries, c.manager.Favorites())); err != nil {
			return isFavorite, err
		}
	case ViewFavorites:
		if err := c.showWordList(ViewFavorites); err != nil {
			return isFavorite, err
		}
	}
	return isFavorite, nil
}

func (c *Controller) ActiveView() View {
	return c.view
}

// Input is the word currently in the search input.
func (c *Controller) Input() string {
	return c.input
}

func (c *Controller) Loading() bool {
	return c.loading
}

// LastWord is the normalized word of the last successful lookup.
func (c *Controller) LastWord() string {
	return c.lastWord
}

// LastDisplay is what the results pane shows now.
func (c *Controller) LastDisplay() render.Display {
	return c.lastDisplay
}

// IsFavorite reports whether word is currently a favorite.
func (c *Controller) IsFavorite(word string) bool {
	return c.manager.IsFavorite(word)
}
