package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"reservoirs/cmd/reservoirs/ui"
	"reservoirs/internal/messages"
	"reservoirs/internal/reservoir"
)

var (
	// errInputClosed ends the session when the input reaches EOF.
	errInputClosed = errors.New("input closed")
	// errInvalidNumber is returned for input that does not parse as a number.
	errInvalidNumber = errors.New("invalid number")
	// errLineTooLong is returned for an answer longer than maxLineBytes. The
	// rest of the line is discarded.
	errLineTooLong = fmt.Errorf("%w: input line: %w", reservoir.ErrInvalidRecord, reservoir.ErrNameTooLong)
)

// maxLineBytes caps a single answer.
const maxLineBytes = 1 << 20

// Console is the line-oriented menu loop over one Collection.
type Console struct {
	in      *bufio.Reader
	maxLine int
	out     io.Writer
	coll    *reservoir.Collection
	msg     *messages.Catalog
	styles  ui.Styles
	logger  *zap.Logger
	session string
}

// NewConsole wires a console to its input, output and collection. A nil
// logger is replaced by a no-op logger.
func NewConsole(in io.Reader, out io.Writer, coll *reservoir.Collection, msg *messages.Catalog, styles ui.Styles, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	session := uuid.NewString()
	return &Console{
		in:      bufio.NewReader(in),
		maxLine: maxLineBytes,
		out:     out,
		coll:    coll,
		msg:     msg,
		styles:  styles,
		logger:  logger.With(zap.String("session", session)),
		session: session,
	}
}

// Run shows the menu until the user picks exit or the input ends. Only a
// failing input stream is returned as an error.
func (c *Console) Run() error {
	c.logger.Info("session started",
		zap.String("lang", c.msg.Tag.String()),
		zap.Int("capacity", c.coll.Capacity()))
	c.println(c.styles.Title, c.msg.Title)

	for {
		c.showMenu()
		line, err := c.readLine(c.msg.MenuPrompt)
		if errors.Is(err, errLineTooLong) {
			c.println(c.styles.Error, c.msg.InvalidChoice)
			continue
		}
		if err != nil {
			return c.finish(err)
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			c.println(c.styles.Error, c.msg.InvalidChoice)
			continue
		}
		c.logger.Debug("menu choice", zap.Int("choice", choice))

		if choice == 0 {
			return c.finish(nil)
		}
		if err := c.dispatch(choice); err != nil {
			if errors.Is(err, errInputClosed) || !isReported(err) {
				return c.finish(err)
			}
			c.reportError(err)
		}
	}
}

// finish ends the session. Exit and EOF say goodbye; anything else is
// returned.
func (c *Console) finish(err error) error {
	if err == nil || errors.Is(err, errInputClosed) {
		c.println(c.styles.Body, c.msg.Goodbye)
		c.logger.Info("session ended", zap.Int("size", c.coll.Len()))
		return nil
	}
	c.logger.Error("session aborted", zap.Error(err))
	return err
}

func (c *Console) dispatch(choice int) error {
	switch choice {
	case 1:
		return c.add()
	case 2:
		return c.remove()
	case 3:
		return c.coll.ListAll(c.out, c.msg.Labels)
	case 4:
		return c.find()
	case 5:
		return c.compare()
	case 6:
		return c.duplicate()
	case 7:
		c.println(c.styles.Title, c.msg.TextReportTitle)
		return c.coll.Report(reservoir.ReportText, c.out, c.msg.Labels)
	case 8:
		c.println(c.styles.Title, c.msg.BinaryReportTitle)
		c.println(c.styles.Info, c.msg.BinaryReportNote)
		return c.coll.Report(reservoir.ReportBinary, c.out, c.msg.Labels)
	default:
		c.println(c.styles.Error, c.msg.InvalidChoice)
		return nil
	}
}

func (c *Console) showMenu() {
	fmt.Fprintln(c.out)
	c.println(c.styles.Title, c.msg.MenuTitle)
	for _, item := range c.msg.Menu {
		c.println(c.styles.MenuItem, fmt.Sprintf("%d. %s", item.Choice, item.Text))
	}
}

func (c *Console) add() error {
	name, err := c.readLine(c.msg.PromptName)
	if err != nil {
		return err
	}
	kind, err := c.readLine(c.msg.PromptKind)
	if err != nil {
		return err
	}
	if kind == "" {
		kind = c.msg.DefaultKind
	}
	width, err := c.readFloat(c.msg.PromptWidth)
	if err != nil {
		return err
	}
	length, err := c.readFloat(c.msg.PromptLength)
	if err != nil {
		return err
	}
	depth, err := c.readFloat(c.msg.PromptDepth)
	if err != nil {
		return err
	}

	r, err := c.coll.Limits().NewRecord(name,
		reservoir.WithKind(kind),
		reservoir.WithDimensions(width, length, depth))
	if err != nil {
		return err
	}
	if err := c.coll.Add(r); err != nil {
		return err
	}
	c.println(c.styles.Success, c.msg.Added)
	return nil
}

func (c *Console) remove() error {
	pos, err := c.readPosition(fmt.Sprintf(c.msg.PromptRemove, c.coll.Len()))
	if err != nil {
		return err
	}
	if _, err := c.coll.RemoveAt(pos); err != nil {
		return err
	}
	c.println(c.styles.Success, c.msg.Removed)
	return nil
}

func (c *Console) find() error {
	kind, err := c.readLine(c.msg.PromptSearchKind)
	if err != nil {
		return err
	}
	matches, err := c.coll.FindAllByType(kind)
	if err != nil {
		return err
	}
	c.println(c.styles.Title, fmt.Sprintf(c.msg.SearchHeader, kind))
	for _, m := range matches {
		fmt.Fprintf(c.out, "\n%d. %s", m.Position+1, m.Record.Describe(c.msg.Labels))
	}
	return nil
}

func (c *Console) compare() error {
	a, err := c.readPosition(c.msg.PromptFirst)
	if err != nil {
		return err
	}
	b, err := c.readPosition(c.msg.PromptSecond)
	if err != nil {
		return err
	}

	cmp, err := c.coll.Compare(a, b)
	if err != nil && !errors.Is(err, reservoir.ErrTypeMismatch) {
		var ie *reservoir.IndexError
		if errors.As(err, &ie) {
			c.println(c.styles.Error, c.msg.InvalidIndexes)
			return nil
		}
		return err
	}

	fmt.Fprint(c.out, ui.ComparisonView(c.msg.CompareHeader, c.msg.CompareColumns, cmp, c.styles))

	switch cmp.Result {
	case reservoir.Greater:
		c.println(c.styles.Success, c.msg.FirstLarger)
	case reservoir.Less:
		c.println(c.styles.Success, c.msg.SecondLarger)
	case reservoir.Equal:
		c.println(c.styles.Success, c.msg.EqualArea)
	default:
		c.println(c.styles.Warning, c.msg.NotComparable)
	}
	return nil
}

func (c *Console) duplicate() error {
	src, err := c.readPosition(c.msg.PromptCopySource)
	if err != nil {
		return err
	}
	if _, err := c.coll.Get(src); err != nil {
		return err
	}
	name, err := c.readLine(c.msg.PromptCopyName)
	if err != nil {
		return err
	}
	if _, err := c.coll.Duplicate(src, name); err != nil {
		return err
	}
	c.println(c.styles.Success, c.msg.Added)
	return nil
}

// isReported reports whether err maps to a catalog message rather than an
// I/O failure.
func isReported(err error) bool {
	for _, target := range []error{
		errInvalidNumber,
		reservoir.ErrIndexOutOfRange,
		reservoir.ErrCollectionFull,
		reservoir.ErrTypeMismatch,
		reservoir.ErrNotFound,
		reservoir.ErrInvalidRecord,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (c *Console) reportError(err error) {
	c.logger.Debug("operation rejected", zap.Error(err))

	var text string
	switch {
	case errors.Is(err, errInvalidNumber):
		text = c.msg.InvalidNumber
	case errors.Is(err, reservoir.ErrIndexOutOfRange):
		text = c.msg.InvalidIndex
	case errors.Is(err, reservoir.ErrCollectionFull):
		text = c.msg.Full
	case errors.Is(err, reservoir.ErrTypeMismatch):
		text = c.msg.NotComparable
	case errors.Is(err, reservoir.ErrNotFound):
		text = c.msg.NotFound
	case errors.Is(err, reservoir.ErrEmptyName):
		text = c.msg.InvalidRecord + ": " + c.msg.EmptyName
	case errors.Is(err, reservoir.ErrNameTooLong):
		text = c.msg.InvalidRecord + ": " + fmt.Sprintf(c.msg.NameTooLong, c.coll.Limits().MaxNameLength)
	case errors.Is(err, reservoir.ErrInvalidDimension):
		text = c.msg.InvalidRecord + ": " + c.msg.BadDimension
	default:
		text = c.msg.InvalidRecord
	}
	c.println(c.styles.Error, text)
}

func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, c.styles.Prompt.Render(prompt))

	var (
		line    []byte
		tooLong bool
	)
	for {
		chunk, more, err := c.in.ReadLine()
		if err != nil {
			if len(line) > 0 || tooLong {
				break
			}
			if errors.Is(err, io.EOF) {
				return "", errInputClosed
			}
			return "", fmt.Errorf("read input: %w", err)
		}
		if len(line)+len(chunk) > c.maxLine {
			tooLong = true
		} else if !tooLong {
			line = append(line, chunk...)
		}
		if !more {
			break
		}
	}
	if tooLong {
		c.logger.Debug("input line discarded", zap.Int("limit", c.maxLine))
		return "", errLineTooLong
	}
	return strings.TrimSpace(string(line)), nil
}

// readFloat accepts both '.' and ',' as the decimal separator.
func (c *Console) readFloat(prompt string) (float64, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(line, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidNumber, line)
	}
	return v, nil
}

// readPosition reads a 1-based position and returns it 0-based.
func (c *Console) readPosition(prompt string) (int, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidNumber, line)
	}
	return n - 1, nil
}

func (c *Console) println(style lipgloss.Style, s string) {
	fmt.Fprintln(c.out, style.Render(s))
}

// SessionID identifies this console run in log entries.
func (c *Console) SessionID() string { return c.session }
