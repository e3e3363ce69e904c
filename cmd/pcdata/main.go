/*
Command pcdata applies text transformations to strings with inline markup.

Usage:

    pcdata [flags] [inputs...]

Every line of input is transformed separately. If no input is provided, text
is read from stdin. With --interactive, lines are read from a prompt and all
transformations are shown for each line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/muesli/reflow/wordwrap"
	"github.com/npillmayer/pcdata/core"
	"github.com/npillmayer/pcdata/core/locate/resources"
	"github.com/npillmayer/pcdata/core/parameters"
	"github.com/npillmayer/pcdata/engine/text/casing"
	"github.com/npillmayer/pcdata/engine/text/hyphenate"
	"github.com/npillmayer/pcdata/engine/text/pcdata"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const defaultWidth = 80

// tracer traces with key 'pcdata.text'
func tracer() tracing.Trace {
	return tracing.Select("pcdata.text")
}

func main() {
	var (
		transform   string
		lang        string
		casingName  string
		patterns    string
		patternDirs []string
		wrap        bool
		widthFlag   int
		outPath     string
		tlevel      string
		visible     bool
		interactive bool
	)
	flags := pflag.NewFlagSet("pcdata", pflag.ExitOnError)
	flags.StringVarP(&transform, "transform", "t", "ligaturize", "Transformation: ligaturize|capitalize|hyphenate|upper|lower")
	flags.StringVarP(&lang, "lang", "l", "", "Language (BCP 47), default en-US")
	flags.StringVar(&casingName, "casing", "", "Casing backend: auto|unicode|ascii")
	flags.StringVarP(&patterns, "patterns", "p", "", "TeX hyphenation pattern file")
	flags.StringSliceVar(&patternDirs, "pattern-dir", nil, "Folders to search for hyph-<lang>.tex pattern files")
	flags.BoolVar(&wrap, "wrap", false, "Wrap output at break opportunities")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Wrap width (0 uses terminal width if available)")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVar(&tlevel, "trace", "Error", "Trace level [Debug|Info|Error]")
	flags.BoolVarP(&visible, "visible", "v", false, "Show soft hyphens as '-' and zero-width spaces as '|'")
	flags.BoolVarP(&interactive, "interactive", "i", false, "Read lines from a prompt and show all transformations")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pcdata [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, text is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if err := setupTracing(tlevel); err != nil {
		fmt.Fprintf(os.Stderr, "error configuring tracing: %v\n", err)
		os.Exit(1)
	}
	conf := configuration(lang, casingName, patternDirs)
	regs := parameters.FromConfiguration(conf)
	tr, err := pcdata.FromRegisters(regs)
	if err != nil {
		core.UserError(err)
		os.Exit(2)
	}
	var hyph pcdata.Hyphenator
	if interactive || isHyphenation(transform) {
		dict, err := loadDictionary(patterns, regs)
		if err != nil {
			if !interactive {
				core.UserError(err)
				os.Exit(1)
			}
			tracer().Infof("hyphenation disabled: %s", core.UserMessage(err))
		} else {
			hyph = dict
		}
	}

	if interactive {
		initDisplay()
		if err := repl(tr, hyph, visible); err != nil {
			tracer().Errorf("interactive mode: %v", err)
			os.Exit(3)
		}
		return
	}

	fn, err := selectTransform(transform, tr, hyph)
	if err != nil {
		core.UserError(err)
		os.Exit(2)
	}
	reader, closer, err := openInputs(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}
	width := 0
	if wrap {
		width = resolveWidth(widthFlag)
	}
	if err := transformLines(reader, writer, fn, visible, width); err != nil {
		fmt.Fprintf(os.Stderr, "transform: %v\n", err)
		os.Exit(1)
	}
}

// setupTracing installs Go's log package as tracing backend.
func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.pcdata.text":      level,
		"trace.pcdata.hyphenate": level,
		"trace.pcdata.resources": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().SetTraceLevel(tracing.TraceLevelFromString(level))
	return nil
}

// configuration collects the flags which are set into a configuration for
// the transformation registers.
func configuration(lang, casingName string, patternDirs []string) testconfig.Conf {
	conf := testconfig.Conf{}
	if lang != "" {
		conf[parameters.KeyLanguage] = lang
	}
	if casingName != "" {
		conf[parameters.KeyCasing] = casingName
	}
	if len(patternDirs) > 0 {
		conf[parameters.KeyPatterns] = strings.Join(patternDirs, string(filepath.ListSeparator))
	}
	return conf
}

// We use pterm for moderately fancy output in interactive mode.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " ¶  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// --- Transformations -------------------------------------------------------

type transformFunc func(string) string

func isHyphenation(name string) bool {
	return strings.EqualFold(name, "hyphenate")
}

func selectTransform(name string, tr *pcdata.Transformer, h pcdata.Hyphenator) (transformFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ligaturize", "ligatures":
		return tr.Ligaturize, nil
	case "capitalize", "capitalize_words":
		return tr.CapitalizeWords, nil
	case "hyphenate":
		if h == nil {
			return nil, core.Error(core.EMISSING, "hyphenation needs a pattern dictionary")
		}
		return func(s string) string { return tr.Hyphenate(s, h) }, nil
	case "upper", "uppercase":
		return tr.Uppercase, nil
	case "lower", "lowercase":
		return tr.Lowercase, nil
	}
	return nil, core.Error(core.EINVALID, "unknown transformation %q", name)
}

// loadDictionary loads the patterns from file patterns or, if patterns is
// empty, resolves the patterns for the language in regs. The dictionary gets
// the hyphenation limits of regs.
func loadDictionary(patterns string, regs *parameters.Registers) (*hyphenate.Dictionary, error) {
	lang, err := casing.ParseLanguage(regs.S(parameters.P_LANGUAGE))
	if err != nil {
		return nil, err
	}
	var dict *hyphenate.Dictionary
	if patterns != "" {
		f, err := os.Open(patterns)
		if err != nil {
			return nil, core.WrapError(err, core.EMISSING, "cannot open pattern file %s", patterns)
		}
		defer f.Close()
		if dict, err = hyphenate.LoadPatterns(lang.String(), f); err != nil {
			return nil, err
		}
		resources.RegisterDictionary(lang, dict)
	} else {
		promise := resources.ResolveDictionary(lang, regs.L(parameters.P_PATTERNDIRS))
		if dict, err = promise.Dictionary(); err != nil {
			return nil, err
		}
	}
	return dict.Limits(
		regs.N(parameters.P_MINHYPHENLENGTH),
		regs.N(parameters.P_HYPHENMINLEFT),
		regs.N(parameters.P_HYPHENMINRIGHT),
	), nil
}

// transformLines applies fn to every line of r. If width is positive, the
// output is wrapped at white space and at break opportunities.
func transformLines(r io.Reader, w io.Writer, fn transformFunc, visible bool, width int) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	var out io.Writer = w
	var ww *wordwrap.WordWrap
	if width > 0 {
		ww = wordwrap.NewWriter(width)
		if visible {
			ww.Breakpoints = []rune{'-', '|'}
		} else {
			ww.Breakpoints = []rune{'-', pcdata.SoftHyphen, pcdata.ZeroWidthSpace}
		}
		out = ww
	}
	for scanner.Scan() {
		line := fn(scanner.Text())
		if visible {
			line = makeVisible(line)
		}
		if _, err := io.WriteString(out, line+"\n"); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if ww != nil {
		if err := ww.Close(); err != nil {
			return err
		}
		_, err := w.Write(ww.Bytes())
		return err
	}
	return nil
}

var visibleMarkers = strings.NewReplacer(
	string(pcdata.SoftHyphen), "-",
	string(pcdata.ZeroWidthSpace), "|",
)

func makeVisible(s string) string {
	return visibleMarkers.Replace(s)
}

// --- Interactive mode ------------------------------------------------------

// showAll returns every transformation of line, in a fixed order.
func showAll(line string, tr *pcdata.Transformer, h pcdata.Hyphenator, visible bool) [][2]string {
	results := [][2]string{
		{"ligaturize", tr.Ligaturize(line)},
		{"capitalize", tr.CapitalizeWords(line)},
		{"upper", tr.Uppercase(line)},
		{"lower", tr.Lowercase(line)},
	}
	if h != nil {
		results = append(results, [2]string{"hyphenate", tr.Hyphenate(line, h)})
	}
	if visible {
		for i := range results {
			results[i][1] = makeVisible(results[i][1])
		}
	}
	return results
}

func repl(tr *pcdata.Transformer, h pcdata.Hyphenator, visible bool) error {
	rl, err := readline.New("pcdata > ")
	if err != nil {
		return err
	}
	defer rl.Close()
	pterm.Info.Println("Quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		for _, r := range showAll(line, tr, h, visible) {
			fmt.Printf("%-12s %s\n", r[0], r[1])
		}
	}
	return nil
}

// --- Input and output ------------------------------------------------------

type multiCloser []io.Closer

func (mc multiCloser) Close() error {
	var first error
	for _, c := range mc {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// openInputs opens all files named in args and concatenates them. No args
// or a single "-" means stdin.
func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		return os.Stdin, nil, nil
	}
	readers := make([]io.Reader, 0, len(args))
	closers := make(multiCloser, 0, len(args))
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			_ = closers.Close()
			return nil, nil, err
		}
		readers = append(readers, f)
		closers = append(closers, f)
	}
	return io.MultiReader(readers...), closers, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if path == "" || path == "-" {
		return os.Stdout, nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}
