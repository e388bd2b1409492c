package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/locale"
	"github.com/admin/jyotish/vedic-client/internal/usecases/conversation"
)

// LineReader построчный ввод; *readline.Instance удовлетворяет интерфейсу
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vedic-history")
}

func newReadline(historyFile string, in io.Reader, out io.Writer) (*readline.Instance, error) {
	var stdin io.ReadCloser
	if f, ok := in.(*os.File); ok && f == os.Stdin {
		stdin = readline.NewCancelableStdin(os.Stdin)
	} else {
		stdin = io.NopCloser(in)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "> ",
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "/quit",
		HistorySearchFold: true,
		UniqueEditLine:    true,
		Stdin:             stdin,
		Stdout:            out,
		Stderr:            os.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return rl, nil
}

// REPL интерактивный чат с астрологом.
//
// Команды: /lang переключает язык, /history печатает стенограмму,
// /session печатает идентификатор, /quit завершает работу.
type REPL struct {
	session  *conversation.Session
	switcher *locale.Switcher
	in       LineReader
	out      io.Writer
}

func NewREPL(session *conversation.Session, switcher *locale.Switcher, in LineReader, out io.Writer) *REPL {
	return &REPL{session: session, switcher: switcher, in: in, out: out}
}

func (r *REPL) prompt() string {
	return r.switcher.Context().T("you") + "> "
}

func (r *REPL) Run(ctx context.Context) error {
	lc := r.switcher.Context()
	fmt.Fprintln(r.out, styleSystem.Render(lc.T("chatWelcome")))
	fmt.Fprintln(r.out, styleSystem.Render("session: "+r.session.ID()))
	fmt.Fprintln(r.out, styleSystem.Render(lc.T("disclaimer")))
	r.printHistory()
	r.in.SetPrompt(r.prompt())

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := r.in.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/lang":
			lang := r.switcher.Toggle()
			r.in.SetPrompt(r.prompt())
			fmt.Fprintln(r.out, styleSystem.Render("language: "+string(lang)))
			continue
		case "/history":
			r.printHistory()
			continue
		case "/session":
			fmt.Fprintln(r.out, r.session.ID())
			continue
		}

		r.send(ctx, line)
	}
}

func (r *REPL) send(ctx context.Context, text string) {
	lc := r.switcher.Context()
	fmt.Fprintln(r.out, styleSystem.Render(lc.T("consulting")))

	reply, err := r.session.Send(ctx, text)
	if err != nil {
		fmt.Fprintln(r.out, styleError.Render(lc.T("chatFailed")+": "+err.Error()))
		return
	}
	fmt.Fprint(r.out, RenderTurn(lc, domain.ConversationTurn{Role: domain.RoleAssistant, Content: reply}))
}

func (r *REPL) printHistory() {
	lc := r.switcher.Context()
	for _, turn := range r.session.Turns() {
		fmt.Fprint(r.out, RenderTurn(lc, turn))
	}
}
