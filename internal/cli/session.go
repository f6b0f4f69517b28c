package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/happy/internal/command"
	"github.com/idilsaglam/happy/internal/logging"
	"github.com/idilsaglam/happy/internal/model"
	"github.com/idilsaglam/happy/internal/store/memstore"
	"github.com/idilsaglam/happy/internal/ui"
)

// State is the interpreter state after a command.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithTheme sets glyphs and colors.
func WithTheme(t ui.Theme) Option {
	return func(s *Session) {
		s.presenter = ui.NewPresenter(t)
		s.painter = ui.NewPainter(t, s.color)
	}
}

// WithColor enables styled output.
func WithColor(enabled bool) Option {
	return func(s *Session) {
		s.color = enabled
		s.painter = ui.NewPainter(s.presenter.Theme(), enabled)
	}
}

// Session interprets command lines against its own task list.
// A Session is not safe for concurrent use.
type Session struct {
	store     *memstore.Store
	presenter ui.Presenter
	painter   ui.Painter
	color     bool
	out       io.Writer
	logger    *log.Logger
}

// NewSession creates a session with an empty task list writing to out.
func NewSession(out io.Writer, opts ...Option) *Session {
	theme := ui.ThemeByName("classic")
	s := &Session{
		store:     memstore.New(),
		presenter: ui.NewPresenter(theme),
		painter:   ui.NewPainter(theme, false),
		out:       out,
		logger:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Presenter() ui.Presenter { return s.presenter }

// Emit writes m to the session output.
func (s *Session) Emit(m ui.Message) error {
	if err := s.painter.Write(s.out, m); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Stats returns done and pending counts.
func (s *Session) Stats() (done, pending int) {
	for _, t := range s.store.All() {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

// Execute handles one raw input line. It returns Stopped only for a
// well-formed bye. Unknown commands yield ErrUnrecognizedCommand and print
// nothing; malformed known commands are reported inline with a nil error.
func (s *Session) Execute(line string) (State, error) {
	parsed := command.Parse(line)
	kw, ok := command.Lookup(parsed.Name)
	if !ok {
		s.logger.Warn("unrecognized command", "input", line)
		return Running, ErrUnrecognizedCommand
	}
	s.logger.Debug("dispatch", "command", kw, "args", len(parsed.Args))

	state := Running
	var (
		msg ui.Message
		err error
	)
	switch kw {
	case command.Todo:
		msg, err = s.add(kw, model.Todo, parsed.Args)
	case command.Deadline:
		msg, err = s.add(kw, model.Deadline, parsed.Args)
	case command.Event:
		msg, err = s.add(kw, model.Event, parsed.Args)
	case command.List:
		msg, err = s.list(parsed.Args)
	case command.Done:
		msg, err = s.complete(parsed.Args)
	case command.Delete:
		msg, err = s.delete(parsed.Args)
	case command.Find:
		msg, err = s.find(parsed.Args)
	case command.Search:
		msg, err = s.search(parsed.Args)
	case command.Help:
		msg, err = s.help(parsed.Args)
	case command.Bye:
		msg, err = s.bye(parsed.Args)
		if err == nil {
			state = Stopped
		}
	}

	var ie *InputError
	if errors.As(err, &ie) {
		s.logger.Info("rejected input", "command", kw, "kind", ie.Kind, "err", ie.Err)
		msg = s.errorMessage(ie)
	} else if err != nil {
		return Running, err
	}
	if err := s.Emit(msg); err != nil {
		return Running, err
	}
	return state, nil
}

func (s *Session) add(kw command.Keyword, kind model.Kind, args []string) (ui.Message, error) {
	description, when, err := splitTaskArgs(kw, kind, args)
	if err != nil {
		return ui.Message{}, err
	}
	task, err := model.NewTask(kind, description, when)
	if err != nil {
		if errors.Is(err, model.ErrEmptyDescription) {
			return ui.Message{}, inputErr(EmptyDescription, kw, err)
		}
		return ui.Message{}, inputErr(MalformedKeywordSplit, kw, err)
	}
	pos, total := s.store.Add(task)
	if stored, err := s.store.Get(pos - 1); err == nil {
		task = stored
	}
	s.logger.Debug("task added", "id", task.ID, "kind", kind, "total", total)
	return s.presenter.Added(task, total), nil
}

// splitTaskArgs separates description and date tokens. Dated kinds need
// their separator somewhere after the first token and before the last.
func splitTaskArgs(kw command.Keyword, kind model.Kind, args []string) (description, when string, err error) {
	if len(args) == 0 {
		return "", "", inputErr(EmptyDescription, kw, nil)
	}
	if !kind.Dated() {
		return strings.Join(args, " "), "", nil
	}

	sep := separator(kind)
	before, after, found := command.SplitAt(args, sep)
	switch {
	case !found:
		return "", "", inputErr(MalformedKeywordSplit, kw, fmt.Errorf("missing %s", sep))
	case len(before) == 0:
		return "", "", inputErr(EmptyDescription, kw, nil)
	case len(after) == 0:
		return "", "", inputErr(MalformedKeywordSplit, kw, fmt.Errorf("nothing after %s", sep))
	}
	return strings.Join(before, " "), strings.Join(after, " "), nil
}

func separator(kind model.Kind) string {
	if kind == model.Event {
		return "/at"
	}
	return "/by"
}

func (s *Session) list(args []string) (ui.Message, error) {
	if len(args) != 0 {
		return ui.Message{}, inputErr(ArityError, command.List, nil)
	}
	return s.presenter.List(s.store.All()), nil
}

func (s *Session) complete(args []string) (ui.Message, error) {
	i, err := parseIndex(command.Done, args)
	if err != nil {
		return ui.Message{}, err
	}
	task, err := s.store.Complete(i)
	if err != nil {
		return ui.Message{}, inputErr(BoundsError, command.Done, err)
	}
	s.logger.Debug("task completed", "id", task.ID)
	return s.presenter.Completed(task), nil
}

func (s *Session) delete(args []string) (ui.Message, error) {
	i, err := parseIndex(command.Delete, args)
	if err != nil {
		return ui.Message{}, err
	}
	task, total, err := s.store.Delete(i)
	if err != nil {
		return ui.Message{}, inputErr(BoundsError, command.Delete, err)
	}
	s.logger.Debug("task deleted", "id", task.ID, "total", total)
	return s.presenter.Removed(task, total), nil
}

// parseIndex converts a single 1-based argument to a 0-based index.
// Range checking is left to the store.
func parseIndex(kw command.Keyword, args []string) (int, error) {
	if len(args) != 1 {
		return 0, inputErr(ArityError, kw, nil)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, inputErr(TypeError, kw, err)
	}
	return n - 1, nil
}

func (s *Session) find(args []string) (ui.Message, error) {
	if len(args) != 1 {
		return ui.Message{}, inputErr(ArityError, command.Find, nil)
	}
	return s.presenter.Matches(s.store.Find(args[0])), nil
}

func (s *Session) search(args []string) (ui.Message, error) {
	if len(args) != 1 {
		return ui.Message{}, inputErr(ArityError, command.Search, nil)
	}
	return s.presenter.OnDate(args[0], s.store.SearchByDate(args[0])), nil
}

func (s *Session) help(args []string) (ui.Message, error) {
	if len(args) != 0 {
		return ui.Message{}, inputErr(ArityError, command.Help, nil)
	}
	usages := make([]string, 0, len(command.Keywords()))
	for _, kw := range command.Keywords() {
		usages = append(usages, Usage(kw))
	}
	return s.presenter.Help(usages), nil
}

func (s *Session) bye(args []string) (ui.Message, error) {
	if len(args) != 0 {
		return ui.Message{}, inputErr(ArityError, command.Bye, nil)
	}
	return s.presenter.Goodbye(), nil
}

func (s *Session) errorMessage(e *InputError) ui.Message {
	cmd := e.Command.String()
	switch e.Kind {
	case TypeError:
		return s.presenter.IntegerOnly(cmd)
	case BoundsError:
		return s.presenter.OutOfBounds()
	case MalformedKeywordSplit:
		return s.presenter.KeywordSplit()
	case EmptyDescription:
		return s.presenter.EmptyDescription()
	}
	switch e.Command {
	case command.Done, command.Delete:
		return s.presenter.IntegerRequired(cmd)
	case command.Find:
		return s.presenter.KeywordRequired(cmd)
	case command.Search:
		return s.presenter.DateRequired(cmd)
	default:
		return s.presenter.NoArgument(cmd)
	}
}

// Usage returns the one-line usage for kw.
func Usage(kw command.Keyword) string {
	switch kw {
	case command.Todo:
		return "todo <description>"
	case command.Deadline:
		return "deadline <description> /by <date>"
	case command.Event:
		return "event <description> /at <date>"
	case command.List:
		return "list"
	case command.Done:
		return "done <index>"
	case command.Delete:
		return "delete <index>"
	case command.Find:
		return "find <keyword>"
	case command.Search:
		return "search <date>"
	case command.Help:
		return "help"
	case command.Bye:
		return "bye"
	}
	return kw.String()
}
