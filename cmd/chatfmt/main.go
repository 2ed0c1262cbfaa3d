package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/chatfmt"
	"pkt.systems/version"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

// Formats that take operands other than free text.
var operandFormats = []string{
	"channel",
	"email",
	"emoji",
	"guild-navigation",
	"header",
	"link",
	"no-embed-link",
	"phone",
	"role",
	"timestamp",
	"user",
}

func init() {
	version.SetDefaultModule("pkt.systems/chatfmt")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	policy   string
	level    int
	language string
	style    string
	animated bool
	inputs   []string
	wrap     int
	max      int
	stdin    io.Reader
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		opts         options
		listFormats  bool
		listPolicies bool
		printVersion bool
	)

	flags := pflag.NewFlagSet("chatfmt", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.policy, "policy", "p", chatfmt.DefaultPolicy().Name(), "Escape policy: extended|minimal")
	flags.IntVarP(&opts.level, "level", "l", 1, "Header level (1-3) for the header format")
	flags.StringVar(&opts.language, "language", "", "Language for the code-block format")
	flags.StringVarP(&opts.style, "style", "s", string(chatfmt.ShortDateTime), "Timestamp style code or name (t,T,d,D,f,F,R)")
	flags.BoolVarP(&opts.animated, "animated", "a", false, "Format an animated emoji")
	flags.StringArrayVarP(&opts.inputs, "input", "i", nil, "Read text from a file or http(s) URL (repeatable)")
	flags.IntVarP(&opts.wrap, "wrap", "w", 0, "Word-wrap input text at this many columns (0 disables)")
	flags.IntVarP(&opts.max, "max", "m", 0, "Cut the source text so the output fits this many cells (0 disables)")
	flags.BoolVar(&listFormats, "list-formats", false, "List available formats")
	flags.BoolVar(&listPolicies, "list-policies", false, "List available escape policies")
	flags.BoolVar(&printVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: chatfmt [flags] <format> [text...]\n")
		fmt.Fprintln(stderr, "\nWithout text operands, text is read from --input sources or stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	switch {
	case printVersion:
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return exitOK
	case listFormats:
		for _, name := range formatNames() {
			fmt.Fprintln(stdout, name)
		}
		return exitOK
	case listPolicies:
		for _, name := range chatfmt.AvailablePolicies() {
			fmt.Fprintln(stdout, name)
		}
		return exitOK
	}

	operands := flags.Args()
	if len(operands) == 0 {
		flags.Usage()
		return exitUsage
	}
	opts.stdin = stdin

	f, err := chatfmt.NewWithPolicyName(opts.policy)
	if err != nil {
		fmt.Fprintf(stderr, "policy: %v\n", err)
		return exitUsage
	}

	r, err := format(f, operands[0], operands[1:], opts)
	if err == nil {
		var out string
		out, err = fit(r, opts.max)
		if err == nil {
			fmt.Fprintln(stdout, out)
			return exitOK
		}
	}
	fmt.Fprintf(stderr, "%s: %v\n", operands[0], err)
	if errors.Is(err, errUsage) || errors.Is(err, chatfmt.ErrValidation) {
		return exitUsage
	}
	return exitError
}

func formatNames() []string {
	names := append(chatfmt.TextFormats(), operandFormats...)
	sort.Strings(names)
	return names
}

// rendering produces a format's output from its source text cut to n cells.
// width is the display width of the uncut source; it is 0 for formats whose
// output does not depend on free text.
type rendering struct {
	width  int
	render func(n int) (string, error)
}

func fixed(out string, err error) (rendering, error) {
	if err != nil {
		return rendering{}, err
	}
	return rendering{render: func(int) (string, error) { return out, nil }}, nil
}

func textRendering(text string, fn func(string) (string, error)) rendering {
	return rendering{
		width: ansi.PrintableRuneWidth(text),
		render: func(n int) (string, error) {
			return fn(chatfmt.Truncate(text, n))
		},
	}
}

func listRendering(items []string, fn func(...string) string) rendering {
	width := 0
	for _, item := range items {
		width += ansi.PrintableRuneWidth(item)
	}
	return rendering{
		width: width,
		render: func(n int) (string, error) {
			return fn(cutItems(items, n)...), nil
		},
	}
}

// cutItems keeps items while their total width fits in n cells, truncating
// the item that crosses the limit and dropping the rest.
func cutItems(items []string, n int) []string {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		w := ansi.PrintableRuneWidth(item)
		if w <= n {
			kept = append(kept, item)
			n -= w
			continue
		}
		if n > 0 {
			kept = append(kept, chatfmt.Truncate(item, n))
		}
		break
	}
	return kept
}

// fit renders r in full, or with the longest source cut whose output fits
// in limit cells. Output that cannot fit even with a single cell of source
// text is a usage error.
func fit(r rendering, limit int) (string, error) {
	out, err := r.render(r.width)
	if err != nil {
		return "", err
	}
	if limit <= 0 || ansi.PrintableRuneWidth(out) <= limit {
		return out, nil
	}
	best, found := "", false
	lo, hi := 1, r.width-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		cand, err := r.render(mid)
		if err != nil {
			return "", err
		}
		if ansi.PrintableRuneWidth(cand) <= limit {
			best, found = cand, true
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if !found {
		return "", usageErrorf("output does not fit in --max %d cells", limit)
	}
	return best, nil
}

func format(f *chatfmt.Formatter, name string, operands []string, opts options) (rendering, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "list", "numbered-list":
		items := operands
		if len(items) == 0 {
			text, err := readText(operands, opts)
			if err != nil {
				return rendering{}, err
			}
			items = splitItems(text)
		}
		wrapped := make([]string, len(items))
		for i, item := range items {
			wrapped[i] = wrapText(item, opts.wrap)
		}
		if name == "list" {
			return listRendering(wrapped, f.List), nil
		}
		return listRendering(wrapped, f.NumberedList), nil
	case "code-block":
		text, err := readWrapped(operands, opts)
		if err != nil {
			return rendering{}, err
		}
		return textRendering(text, func(s string) (string, error) {
			return f.CodeBlock(s, opts.language), nil
		}), nil
	case "header":
		text, err := readWrapped(operands, opts)
		if err != nil {
			return rendering{}, err
		}
		return textRendering(text, func(s string) (string, error) {
			return f.Header(s, opts.level)
		}), nil
	case "link":
		if len(operands) == 0 {
			return rendering{}, usageErrorf("expected <url> [text...]")
		}
		text, err := readWrapped(operands[1:], opts)
		if err != nil {
			return rendering{}, err
		}
		target := operands[0]
		return textRendering(text, func(s string) (string, error) {
			return f.Link(s, target), nil
		}), nil
	case "no-embed-link":
		op, err := single(operands, "<url>")
		if err != nil {
			return rendering{}, err
		}
		return fixed(chatfmt.NoEmbedLink(op), nil)
	case "email":
		op, err := single(operands, "<address>")
		if err != nil {
			return rendering{}, err
		}
		return fixed(chatfmt.Email(op), nil)
	case "phone":
		op, err := single(operands, "<number>")
		if err != nil {
			return rendering{}, err
		}
		return fixed(chatfmt.Phone(op), nil)
	case "user", "channel", "role":
		op, err := single(operands, "<id>")
		if err != nil {
			return rendering{}, err
		}
		id, err := parseID(op)
		if err != nil {
			return rendering{}, err
		}
		switch name {
		case "user":
			return fixed(chatfmt.User(id), nil)
		case "channel":
			return fixed(chatfmt.Channel(id), nil)
		}
		return fixed(chatfmt.Role(id), nil)
	case "emoji":
		if len(operands) != 2 {
			return rendering{}, usageErrorf("expected <name> <id>")
		}
		id, err := parseID(operands[1])
		if err != nil {
			return rendering{}, err
		}
		return fixed(chatfmt.Emoji(operands[0], id, opts.animated), nil)
	case "guild-navigation":
		op, err := single(operands, "<target>")
		if err != nil {
			return rendering{}, err
		}
		target, err := chatfmt.ParseGuildNavigation(op)
		if err != nil {
			return rendering{}, err
		}
		return fixed(chatfmt.GuildNavigationLink(target))
	case "timestamp":
		op, err := single(operands, "<epoch>|now")
		if err != nil {
			return rendering{}, err
		}
		style, err := chatfmt.ParseTimestampStyle(opts.style)
		if err != nil {
			return rendering{}, err
		}
		if op == "now" {
			return fixed(chatfmt.TimestampTime(time.Now(), style))
		}
		epoch, ok := new(big.Int).SetString(op, 10)
		if !ok {
			return rendering{}, usageErrorf("invalid epoch %q", op)
		}
		return fixed(chatfmt.Timestamp(epoch.String(), style))
	}

	fn, ok := f.TextFormat(name)
	if !ok {
		return rendering{}, usageErrorf("unknown format %q (see --list-formats)", name)
	}
	text, err := readWrapped(operands, opts)
	if err != nil {
		return rendering{}, err
	}
	return textRendering(text, func(s string) (string, error) {
		return fn(s), nil
	}), nil
}

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

func single(operands []string, want string) (string, error) {
	if len(operands) != 1 {
		return "", usageErrorf("expected %s", want)
	}
	return operands[0], nil
}

// parseID normalizes a decimal snowflake, dropping leading zeros.
func parseID(raw string) (*big.Int, error) {
	id, ok := new(big.Int).SetString(strings.TrimSpace(raw), 10)
	if !ok || id.Sign() < 0 {
		return nil, usageErrorf("invalid id %q", raw)
	}
	return id, nil
}

// readText joins operands with spaces, or reads --input sources or stdin
// when there are none. A single trailing line break is dropped.
func readText(operands []string, opts options) (string, error) {
	if len(operands) > 0 {
		return strings.Join(operands, " "), nil
	}
	var reader io.Reader
	if len(opts.inputs) > 0 {
		r, closer, err := openInputs(opts.inputs)
		if err != nil {
			return "", fmt.Errorf("open input: %w", err)
		}
		if closer != nil {
			defer func() { _ = closer.Close() }()
		}
		reader = r
	} else {
		if isTerminal(opts.stdin) {
			return "", usageErrorf("no text given and stdin is a terminal")
		}
		reader = opts.stdin
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if err := chatfmt.ValidateInput(data); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	text := string(data)
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	return text, nil
}

func readWrapped(operands []string, opts options) (string, error) {
	text, err := readText(operands, opts)
	if err != nil {
		return "", err
	}
	return wrapText(text, opts.wrap), nil
}

// splitItems takes one list item per line. Empty text has no items.
func splitItems(text string) []string {
	if text == "" {
		return nil
	}
	items := strings.Split(text, "\n")
	for i, item := range items {
		items[i] = strings.TrimSuffix(item, "\r")
	}
	return items
}

func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

// openInputs concatenates the named sources in order. Sources are opened
// lazily as the reader reaches them.
func openInputs(args []string) (io.Reader, io.Closer, error) {
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
