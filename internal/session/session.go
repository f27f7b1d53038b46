package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jorge-barreto/dpsheet/internal/docs"
	"github.com/jorge-barreto/dpsheet/internal/export"
	"github.com/jorge-barreto/dpsheet/internal/store"
	"github.com/jorge-barreto/dpsheet/internal/ux"
	"github.com/jorge-barreto/dpsheet/internal/worksheet"
	"github.com/peterh/liner"
)

// Session is the interactive tabbed editor over a Store.
type Session struct {
	Store         *store.Store
	Clipboard     export.Clipboard
	Indicator     *export.Indicator
	OutputDir     string
	DefaultFormat string
	Logger        *slog.Logger
	Out           io.Writer
}

const helpText = `Commands:
  tabs                     list worksheets
  new                      add a worksheet and switch to it
  tab <n>                  switch to worksheet n
  delete [n]               delete worksheet n (default: current)
  show                     show the current worksheet
  fields                   list editable fields
  set <field> <value>      edit a field; choices accept a number
  toggle <type|n>          toggle a problem type
  export [json|md|xlsx]    save all worksheets to the output dir
  save                     save the current worksheet as <name>.json
  copy                     copy the current worksheet as JSON
  guide [chapter]          read the How to Solve reference
  quit                     leave (nothing is kept)
`

// Run reads commands until quit, EOF or Ctrl-C.
func (s *Session) Run(ctx context.Context) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	defer s.Indicator.Stop()

	fmt.Fprintf(s.Out, "%sdpsheet%s — structured thinking for DP/greedy problems. Type 'help'.\n", ux.Bold, ux.Reset)
	ux.RenderTabs(s.Out, s.Store.Worksheets(), s.Store.ActiveIndex())

	for {
		if ctx.Err() != nil {
			return nil
		}
		idx := s.Store.ActiveIndex()
		prompt := ux.Prompt(idx, s.Store.Len(), s.Store.Active().Label(idx), s.Indicator.Copied())
		input, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				return nil
			}
			return err
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		if s.Exec(input) {
			return nil
		}
	}
}

// Exec runs one command line and reports whether the session should end.
// Command errors are printed; they never end the session.
func (s *Session) Exec(input string) (quit bool) {
	cmd, rest := splitWord(input)
	var err error
	switch strings.ToLower(cmd) {
	case "":
	case "help", "?":
		fmt.Fprint(s.Out, helpText)
	case "quit", "exit":
		return true
	case "tabs":
		s.renderTabs()
	case "new":
		idx := s.Store.Create()
		s.Logger.Debug("worksheet created", "index", idx, "id", s.Store.Active().ID)
		s.renderTabs()
	case "tab":
		err = s.selectTab(rest)
	case "delete":
		err = s.deleteTab(rest)
	case "show":
		ux.RenderWorksheet(s.Out, s.Store.ActiveIndex(), s.Store.Active())
	case "fields":
		ux.RenderFields(s.Out)
	case "set":
		err = s.set(rest)
	case "toggle":
		err = s.toggle(rest)
	case "export":
		err = s.export(rest)
	case "save":
		err = s.save()
	case "copy":
		err = s.copy()
	case "guide":
		err = s.guide(rest)
	default:
		err = fmt.Errorf("unknown command %q — type 'help'", cmd)
	}
	if err != nil {
		ux.Error(s.Out, err)
	}
	return false
}

func (s *Session) renderTabs() {
	ux.RenderTabs(s.Out, s.Store.Worksheets(), s.Store.ActiveIndex())
}

// tabIndex parses a 1-based tab number.
func (s *Session) tabIndex(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("expected a tab number, got %q", arg)
	}
	if n < 1 || n > s.Store.Len() {
		return 0, fmt.Errorf("tab %d out of range (1-%d)", n, s.Store.Len())
	}
	return n - 1, nil
}

func (s *Session) selectTab(arg string) error {
	idx, err := s.tabIndex(arg)
	if err != nil {
		return err
	}
	s.Store.Select(idx)
	s.renderTabs()
	return nil
}

func (s *Session) deleteTab(arg string) error {
	idx := s.Store.ActiveIndex()
	if strings.TrimSpace(arg) != "" {
		var err error
		if idx, err = s.tabIndex(arg); err != nil {
			return err
		}
	}
	if s.Store.Delete(idx) {
		s.Logger.Debug("worksheet deleted", "index", idx)
	}
	s.renderTabs()
	return nil
}

func (s *Session) set(arg string) error {
	path, value := splitWord(arg)
	if path == "" {
		return fmt.Errorf("usage: set <field> <value> — run 'fields' to list fields")
	}
	p, err := worksheet.ParsePatch(path, value)
	if err != nil {
		return err
	}
	s.Store.Update(p)
	s.Logger.Debug("worksheet updated", "index", s.Store.ActiveIndex(), "field", path)
	return nil
}

func (s *Session) toggle(arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return fmt.Errorf("usage: toggle <type|n> — types: %s", strings.Join(worksheet.ProblemTypes, ", "))
	}
	tag := worksheet.ResolveOption(worksheet.ProblemTypes, arg)
	s.Store.ToggleProblemType(tag)
	state := "off"
	if s.Store.Active().HasProblemType(tag) {
		state = "on"
	}
	s.Logger.Debug("problem type toggled", "tag", tag, "state", state)
	fmt.Fprintf(s.Out, "  %s: %s\n", tag, state)
	return nil
}

func (s *Session) export(arg string) error {
	format := strings.TrimSpace(arg)
	if format == "" {
		format = s.DefaultFormat
	}
	a, err := export.Render(format, s.Store.Worksheets())
	if err != nil {
		return err
	}
	return s.download(a)
}

func (s *Session) save() error {
	idx := s.Store.ActiveIndex()
	a, err := export.RenderWorksheet(idx, s.Store.Active())
	if err != nil {
		return err
	}
	return s.download(a)
}

func (s *Session) download(a export.Artifact) error {
	path, err := export.Download(s.OutputDir, a)
	if err != nil {
		s.Logger.Warn("export failed", "file", a.Filename, "err", err)
		return err
	}
	s.Logger.Info("exported", "path", path, "mime", a.MIMEType, "bytes", len(a.Content))
	ux.Saved(s.Out, path)
	return nil
}

func (s *Session) copy() error {
	if err := export.Copy(s.Clipboard, s.Indicator, s.Store.Active()); err != nil {
		s.Logger.Warn("clipboard copy failed", "err", err)
		return err
	}
	ux.Copied(s.Out)
	return nil
}

func (s *Session) guide(arg string) error {
	name := strings.TrimSpace(arg)
	if name == "" {
		ux.RenderChapters(s.Out)
		return nil
	}
	c, err := docs.Get(name)
	if err != nil {
		return err
	}
	fmt.Fprint(s.Out, c.Content)
	return nil
}

// splitWord returns the first whitespace-delimited word of s and everything
// after the single separator that follows it, untrimmed, so field values
// keep their spacing.
func splitWord(s string) (string, string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return s[:i], s[i+size:]
}
