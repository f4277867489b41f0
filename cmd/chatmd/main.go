package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/chatmd/internal/app"
	"github.com/kk-code-lab/chatmd/internal/fs"
	"github.com/kk-code-lab/chatmd/internal/markdown"
	"github.com/kk-code-lab/chatmd/internal/ui/render"
	"golang.org/x/term"
)

func printHelp(w io.Writer) {
	fmt.Fprint(w, `chatmd - Terminal viewer for chat-style Markdown messages

USAGE:
    chatmd [OPTIONS] [FILE...]

Reads FILE, or standard input when FILE is omitted or "-". Several files
are parsed in parallel and need --plain, --dump or --check.

OPTIONS:
    -h, --help        Show this help message and exit
    -p, --plain       Print the rendered message instead of opening the viewer
    -d, --dump        Print the parsed blocks and spans
    -c, --check       Validate document invariants and exit non-zero on failure
    -r, --rich        Resolve italic, links and highlights, in headings and table cells too
    -w, --width=N     Wrap rendered output to N columns
        --no-urls     Hide link targets
        --nfc         Normalize input to Unicode NFC before parsing
`)
}

type mode int

const (
	modeView mode = iota
	modePlain
	modeDump
	modeCheck
)

type cliOptions struct {
	mode   mode
	help   bool
	rich   bool
	width  int
	noURLs bool
	nfc    bool
	paths  []string
}

var errUsage = errors.New("usage")

func parseArgs(args []string) (cliOptions, error) {
	var opts cliOptions
	setMode := func(m mode) error {
		if opts.mode != modeView && opts.mode != m {
			return fmt.Errorf("%w: --plain, --dump and --check are mutually exclusive", errUsage)
		}
		opts.mode = m
		return nil
	}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		var err error
		switch {
		case arg == "-h" || arg == "--help":
			opts.help = true
		case arg == "-p" || arg == "--plain":
			err = setMode(modePlain)
		case arg == "-d" || arg == "--dump":
			err = setMode(modeDump)
		case arg == "-c" || arg == "--check":
			err = setMode(modeCheck)
		case arg == "-r" || arg == "--rich":
			opts.rich = true
		case arg == "--no-urls":
			opts.noURLs = true
		case arg == "--nfc":
			opts.nfc = true
		case arg == "-w" || arg == "--width":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%w: %s needs a value", errUsage, arg)
			}
			i++
			opts.width, err = parseWidth(args[i])
		case strings.HasPrefix(arg, "--width="):
			opts.width, err = parseWidth(strings.TrimPrefix(arg, "--width="))
		case arg == "-":
			opts.paths = append(opts.paths, "")
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			return opts, fmt.Errorf("%w: unknown option %s", errUsage, arg)
		default:
			opts.paths = append(opts.paths, arg)
		}
		if err != nil {
			return opts, err
		}
	}
	if len(opts.paths) > 1 && opts.mode == modeView {
		return opts, fmt.Errorf("%w: several FILEs need --plain, --dump or --check", errUsage)
	}
	stdinCount := 0
	for _, p := range opts.paths {
		if p == "" {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return opts, fmt.Errorf("%w: stdin given more than once", errUsage)
	}
	return opts, nil
}

func parseWidth(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: invalid width %q", errUsage, value)
	}
	return n, nil
}

func (o cliOptions) buildOptions() markdown.Options {
	if o.rich {
		return markdown.Options{Resolver: markdown.ResolveRich, Headings: true, Cells: true}
	}
	return markdown.DefaultOptions()
}

func (o cliOptions) renderOptions() render.Options {
	ro := render.DefaultOptions()
	ro.MaxWidth = o.width
	ro.ShowLinkURLs = !o.noURLs
	return ro
}

func (o cliOptions) inputs() []string {
	if len(o.paths) == 0 {
		return []string{""}
	}
	return o.paths
}

// readInputs reads every input in order; "" stands for stdin.
func readInputs(o cliOptions, stdin io.Reader) ([]string, error) {
	decode := fs.DefaultDecodeOptions()
	decode.NormalizeNFC = o.nfc
	inputs := o.inputs()
	texts := make([]string, len(inputs))
	for i, path := range inputs {
		var err error
		if path == "" {
			texts[i], err = fs.ReadMessage(stdin, decode)
			if err != nil {
				err = fmt.Errorf("stdin: %w", err)
			}
		} else {
			texts[i], err = fs.ReadMessageFile(path, decode)
		}
		if err != nil {
			return nil, err
		}
	}
	return texts, nil
}

func displayName(path string) string {
	if path == "" {
		return "stdin"
	}
	return filepath.Base(path)
}

// run executes every non-interactive mode and returns the process exit code.
// With several documents each output is preceded by a header line.
func run(o cliOptions, docs []markdown.Document, stdout, stderr io.Writer) int {
	inputs := o.inputs()
	code := 0
	for i, doc := range docs {
		name := displayName(inputs[i])
		if len(docs) > 1 && o.mode != modeCheck {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			fmt.Fprintf(stdout, "==> %s <==\n", name)
		}
		switch o.mode {
		case modeDump:
			fmt.Fprint(stdout, markdown.Dump(doc))
		case modeCheck:
			if err := markdown.Validate(doc); err != nil {
				fmt.Fprintf(stderr, "Error: %s: %v\n", name, err)
				code = 1
				continue
			}
			fmt.Fprintf(stdout, "ok: %s: %d blocks\n", name, len(doc.Nodes))
		default:
			fmt.Fprint(stdout, render.PlainText(render.Lines(doc, o.renderOptions())))
		}
	}
	return code
}

func main() {
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		printHelp(os.Stderr)
		os.Exit(2)
	}
	if opts.help {
		printHelp(os.Stdout)
		os.Exit(0)
	}
	for _, path := range opts.inputs() {
		if path == "" && term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: no input; pass FILE or pipe a message on stdin")
			os.Exit(2)
		}
	}

	texts, err := readInputs(opts, os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	docs := markdown.BuildAllWith(texts, opts.buildOptions(), 0)
	apppkg.Debugf("parsed %d inputs", len(docs))

	stdoutFd := int(os.Stdout.Fd())
	interactive := term.IsTerminal(stdoutFd)
	if opts.mode == modeView && !interactive {
		opts.mode = modePlain
	}
	if opts.mode == modePlain && opts.width == 0 && interactive {
		if w, _, err := term.GetSize(stdoutFd); err == nil {
			opts.width = w
		}
	}
	if opts.mode != modeView {
		os.Exit(run(opts, docs, os.Stdout, os.Stderr))
	}

	app, err := apppkg.NewApplication(docs[0], opts.renderOptions(), displayName(opts.inputs()[0]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing viewer: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
}
