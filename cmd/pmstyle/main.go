// Command pmstyle analyzes the font sizes of an editor document.
//
// It reads a document in the editor's JSON format and prints a JSON report
// holding the font-size histogram and the most used size. Optionally the
// report also holds the font size resolved at a position and the steps of an
// editing command run there.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/shodgson/prosemirror-fontsize/commands"
	"github.com/shodgson/prosemirror-fontsize/fontsize"
	"github.com/shodgson/prosemirror-fontsize/internal/config"
	"github.com/shodgson/prosemirror-fontsize/measure"
	"github.com/shodgson/prosemirror-fontsize/model"
	"github.com/shodgson/prosemirror-fontsize/style"
	"github.com/shodgson/prosemirror-fontsize/transform"
)

// Version information (set via ldflags during build).
var version = "dev"

var traceKeys = []string{
	"pmstyle.model",
	"pmstyle.style",
	"pmstyle.fontsize",
	"pmstyle.transform",
	"pmstyle.commands",
	"pmstyle.measure",
}

type options struct {
	ConfigPath string
	CSSPath    string
	Trace      string
	Pos        int
	To         int
	Command    string
	Tree       bool
	HTML       bool
	File       string
}

func main() {
	os.Exit(run(parseFlags(), os.Stdout, os.Stderr))
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.CSSPath, "css", "", "Editor stylesheet used to measure unstyled positions")
	flag.StringVar(&opts.Trace, "trace", "", "Trace level (error, info, debug)")
	flag.IntVar(&opts.Pos, "pos", -1, "Position to resolve the font size at")
	flag.IntVar(&opts.To, "to", -1, "End of the selection starting at -pos")
	flag.StringVar(&opts.Command, "cmd", "", "Command to run at -pos: indent, outdent, align=<top|middle|bottom|none>, select, size=<px>")
	flag.BoolVar(&opts.Tree, "tree", false, "Print the document tree")
	flag.BoolVar(&opts.HTML, "html", false, "Print the rendered document (requires -css)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pmstyle - font size analysis for editor documents\n\n")
		fmt.Fprintf(os.Stderr, "Usage: pmstyle [options] <document.json | ->\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pmstyle doc.json                   Print the size histogram\n")
		fmt.Fprintf(os.Stderr, "  pmstyle -pos 12 -css ed.css doc.json  Resolve the size at 12\n")
		fmt.Fprintf(os.Stderr, "  pmstyle -pos 3 -to 9 -cmd size=18 doc.json\n")
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("pmstyle %s\n", version)
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.File = flag.Arg(0)
	return opts
}

func run(opts options, stdout, stderr io.Writer) int {
	if err := analyze(opts, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// report is the JSON document printed by pmstyle.
type report struct {
	Characters int             `json:"characters"`
	Histogram  []sizeCount     `json:"histogram"`
	MostUsed   *int            `json:"mostUsed"`
	Tree       string          `json:"tree,omitempty"`
	HTML       string          `json:"html,omitempty"`
	Resolution *resolution     `json:"resolution,omitempty"`
	Command    *commandOutcome `json:"command,omitempty"`
}

type sizeCount struct {
	Size  int `json:"size"`
	Count int `json:"count"`
}

type resolution struct {
	Pos      int    `json:"pos"`
	Detected bool   `json:"detected"`
	Size     int    `json:"size,omitempty"`
	Source   string `json:"source"`
	Detail   string `json:"detail,omitempty"`
}

type commandOutcome struct {
	Name    string                   `json:"name"`
	Applied bool                     `json:"applied"`
	Steps   []map[string]interface{} `json:"steps,omitempty"`
	Doc     map[string]interface{}   `json:"doc,omitempty"`
}

func analyze(opts options, out io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Trace != "" {
		cfg.Trace = opts.Trace
	}
	if opts.CSSPath != "" {
		cfg.Stylesheet = opts.CSSPath
	}
	level, err := cfg.TraceLevel()
	if err != nil {
		return err
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	if opts.Pos < 0 && opts.Command != "" {
		return errors.New("-cmd requires -pos")
	}

	doc, err := readDocument(opts.File)
	if err != nil {
		return err
	}
	resolver := fontsize.NewResolver(cfg.Sizes)

	var rep report
	if opts.Tree {
		rep.Tree = doc.Dump()
	}
	hist := resolver.Aggregate(doc)
	rep.Characters = hist.Total()
	rep.Histogram = []sizeCount{}
	for _, e := range hist.Entries() {
		rep.Histogram = append(rep.Histogram, sizeCount{Size: e.Size, Count: e.Count})
	}
	if size, ok := hist.MostUsed(); ok {
		rep.MostUsed = &size
	}

	var measurer *measure.StylesheetMeasurer
	if cfg.Stylesheet != "" {
		css, err := os.ReadFile(cfg.Stylesheet)
		if err != nil {
			return fmt.Errorf("reading stylesheet: %w", err)
		}
		if measurer, err = measure.NewStylesheetMeasurer(doc, string(css)); err != nil {
			return err
		}
		if opts.HTML {
			rep.HTML = measurer.HTML()
		}
	}

	if opts.Pos < 0 {
		return writeJSON(out, rep)
	}
	sel := model.Cursor(opts.Pos)
	if opts.To >= 0 {
		sel.Head = opts.To
	}
	var m fontsize.Measurer
	if measurer != nil {
		m = measurer
	}
	res := resolver.ResolveSelection(doc, sel, m)
	rep.Resolution = &resolution{
		Pos:      sel.From(),
		Detected: res.Detected,
		Size:     res.Size,
		Source:   res.Source.String(),
		Detail:   res.Detail,
	}

	if opts.Command != "" {
		steps, err := command(doc, sel, opts.Command)
		if err != nil {
			return err
		}
		outcome := &commandOutcome{Name: opts.Command}
		if len(steps) > 0 {
			tr, ok := commands.Run(doc, steps...)
			if !ok {
				return fmt.Errorf("%s: cannot apply", opts.Command)
			}
			outcome.Applied = true
			outcome.Steps = tr.StepsJSON()
			outcome.Doc = tr.Doc.ToJSON()
		}
		rep.Command = outcome
	}
	return writeJSON(out, rep)
}

func readDocument(path string) (*model.Node, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	doc, err := model.NodeFromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return doc, nil
}

// command maps a command name to the steps it produces. A command that does
// not apply at the selection yields no steps.
func command(doc *model.Node, sel model.Selection, name string) ([]transform.Step, error) {
	name, arg, _ := strings.Cut(name, "=")
	single := func(step *transform.SetAttrsStep, ok bool) ([]transform.Step, error) {
		if !ok {
			return nil, nil
		}
		return []transform.Step{step}, nil
	}
	switch name {
	case "indent":
		return single(commands.Indent(doc, sel.From()))
	case "outdent":
		return single(commands.Outdent(doc, sel.From()))
	case "select":
		return single(commands.SetCellSelected(doc, sel.From(), true))
	case "align":
		align, ok := style.ParseVerticalAlign(arg)
		if !ok && arg != "none" {
			return nil, fmt.Errorf("invalid alignment %q", arg)
		}
		return single(commands.SetCellVerticalAlign(doc, sel.From(), align))
	case "size":
		px, err := strconv.Atoi(arg)
		if err != nil || !fontsize.IsOption(px) {
			return nil, fmt.Errorf("invalid font size %q (must be one of %v)", arg, fontsize.Options())
		}
		steps, _ := commands.SetFontSize(doc, sel, px)
		return steps, nil
	}
	return nil, fmt.Errorf("unknown command %q", name)
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
