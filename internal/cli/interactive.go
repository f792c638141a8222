package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/lexi/internal/quote"
	"github.com/at-ishikawa/lexi/internal/render"
	"github.com/at-ishikawa/lexi/internal/wordbook"
)

var errEnd = errors.New("end of session")

const helpText = `Commands:
  <word>            look up a word
  /search <word>    look up a word
  /history          show the search history
  /favorites        show the favorite words
  /again <n>        look up the n-th word of the shown list again
  /fav [word]       add or remove a favorite (default: the last result)
  /quote            show the quote of the day
  /help             show this help
  /quit             end the session`

//go:generate mockgen -source=interactive.go -destination=../mocks/cli/mock_session.go -package=mock_cli Session,QuoteSource

type Session interface {
	Session(ctx context.Context) error
}

type QuoteSource interface {
	Daily(ctx context.Context) quote.Quote
}

// InteractiveCLI reads one command per line and drives the controller.
type InteractiveCLI struct {
	controller   *Controller
	quotes       QuoteSource
	terminal     *render.Terminal
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	notice       *color.Color
}

func NewInteractiveCLI(
	controller *Controller,
	quotes QuoteSource,
	terminal *render.Terminal,
	stdin io.Reader,
	stdout io.Writer,
) *InteractiveCLI {
	return &InteractiveCLI{
		controller:   controller,
		quotes:       quotes,
		terminal:     terminal,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		notice:       color.New(color.FgYellow),
	}
}

// DisableColor makes the session's own messages plain.
func (cli *InteractiveCLI) DisableColor() {
	cli.bold.DisableColor()
	cli.notice.DisableColor()
}

// Run repeats session until it ends, fails or an interrupt arrives.
func (cli *InteractiveCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// Session handles a single line of input.
func (cli *InteractiveCLI) Session(ctx context.Context) error {
	if _, err := cli.bold.Fprint(cli.stdoutWriter, "> "); err != nil {
		return err
	}
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return fmt.Errorf("stdinReader.ReadString() > %w", err)
		}
		if strings.TrimSpace(line) == "" {
			return errEnd
		}
	}
	return cli.execute(ctx, strings.TrimSpace(line))
}

func (cli *InteractiveCLI) execute(ctx context.Context, line string) error {
	if line == "" {
		return nil
	}
	if !strings.HasPrefix(line, "/") {
		return cli.submit(ctx, line)
	}

	command, argument, _ := strings.Cut(line, " ")
	argument = strings.TrimSpace(argument)
	switch command {
	case "/quit", "/exit":
		return errEnd
	case "/help":
		return cli.println(helpText)
	case "/search":
		return cli.submit(ctx, argument)
	case "/history":
		return cli.controller.SelectHistoryTab()
	case "/favorites":
		return cli.controller.SelectFavoritesTab()
	case "/again":
		return cli.again(ctx, argument)
	case "/fav":
		return cli.toggleFavorite(ctx, argument)
	case "/quote":
		return cli.terminal.WriteQuote(cli.quotes.Daily(ctx))
	default:
		return cli.printNotice(fmt.Sprintf("Unknown command %s. Type /help to see the commands.", command))
	}
}

func (cli *InteractiveCLI) submit(ctx context.Context, word string) error {
	err := cli.controller.Submit(ctx, word)
	if errors.Is(err, ErrEmptyInput) {
		return cli.printNotice("Please enter a word.")
	}
	return err
}

func (cli *InteractiveCLI) again(ctx context.Context, argument string) error {
	n, err := strconv.Atoi(argument)
	if err != nil {
		return cli.printNotice("Usage: /again <n>")
	}

	err = cli.controller.ReSearchItem(ctx, n)
	if errors.Is(err, ErrNoSuchItem) {
		return cli.printNotice("Show /history or /favorites and pick one of the numbered words.")
	}
	return err
}

func (cli *InteractiveCLI) toggleFavorite(ctx context.Context, word string) error {
	if word == "" {
		word = cli.controller.LastWord()
	}
	isFavorite, err := cli.controller.ToggleFavoriteFromCard(ctx, word)
	if errors.Is(err, ErrEmptyInput) {
		return cli.printNotice("Look up a word first or give one: /fav <word>")
	}
	if err != nil {
		return err
	}

	word = wordbook.Normalize(word)
	if isFavorite {
		return cli.printNotice(fmt.Sprintf("Added %s to your favorites.", word))
	}
	return cli.printNotice(fmt.Sprintf("Removed %s from your favorites.", word))
}

func (cli *InteractiveCLI) println(text string) error {
	_, err := fmt.Fprintln(cli.stdoutWriter, text)
	return err
}

func (cli *InteractiveCLI) printNotice(text string) error {
	_, err := cli.notice.Fprintln(cli.stdoutWriter, text)
	return err
}
