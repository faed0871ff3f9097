// Command gffconv converts and validates GFF files.
//
// Inputs may be plain, gzip or xz compressed; "-" reads standard input.
//
//	gffconv convert --to 2 annotations.gff3.gz > annotations.gff2
//	gffconv convert -o annotations.gtf annotations.gff3
//	gffconv validate --skip-blank *.gff3
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/simonhull/gff"
	"github.com/simonhull/gff/internal/input"
	"github.com/simonhull/gff/internal/logger"
)

// ErrInvalidLines is returned by validate when any input line fails to parse.
var ErrInvalidLines = errors.New("input contains invalid lines")

// CLI defines the command-line interface for gffconv.
var CLI struct {
	LogLevel string `name:"log-level" default:"info" enum:"debug,info,warn,error" env:"GFF_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`
	Pretty   bool   `help:"Human-readable log output on stderr"`
	Caller   bool   `help:"Add source file and line to log entries"`

	Convert  ConvertCmd  `cmd:"" help:"Re-serialize GFF lines in another dialect"`
	Validate ValidateCmd `cmd:"" help:"Check that every line of the inputs parses"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// runEnv carries process-wide dependencies into command Run methods.
type runEnv struct {
	ctx    context.Context
	log    *logger.Logger
	stdout io.Writer
}

// ParseFlags are the parsing switches shared by convert and validate.
type ParseFlags struct {
	SkipBlank    bool `name:"skip-blank" help:"Ignore empty lines"`
	DropComments bool `name:"drop-comments" help:"Leave comment lines out"`
	Concurrency  int  `short:"j" default:"0" help:"Worker goroutines (0 = number of CPUs)"`
}

func (f ParseFlags) options() []gff.Option {
	opts := []gff.Option{gff.WithConcurrency(f.Concurrency)}
	if f.SkipBlank {
		opts = append(opts, gff.WithSkipBlank())
	}
	if f.DropComments {
		opts = append(opts, gff.WithDropComments())
	}
	return opts
}

// ConvertCmd reads GFF lines and writes them back in the chosen dialect.
type ConvertCmd struct {
	ParseFlags

	Input       string `arg:"" optional:"" default:"-" help:"Input file (plain, .gz or .xz; - for stdin)"`
	To          string `name:"to" short:"t" env:"GFF_VERSION" help:"Output dialect (2, 3, gff2, gff3); defaults from the -o extension, else 3"`
	Out         string `short:"o" default:"-" help:"Output file (- for stdout)"`
	SkipInvalid bool   `name:"skip-invalid" help:"Drop unparseable lines with a warning instead of failing"`
}

// outputVersion resolves the output dialect. An explicit --to wins;
// otherwise the output file extension decides, and GFF3 is the fallback.
func (c *ConvertCmd) outputVersion() (gff.Version, error) {
	if c.To != "" {
		return gff.ParseVersion(c.To)
	}
	ext := strings.ToLower(filepath.Ext(c.Out))
	for _, v := range []gff.Version{gff.V3, gff.V2} {
		if slices.Contains(v.Extensions(), ext) {
			return v, nil
		}
	}
	return gff.V3, nil
}

func (c *ConvertCmd) Run(env *runEnv) error {
	version, err := c.outputVersion()
	if err != nil {
		return err
	}
	log := env.log.Component("convert")
	if version == gff.V2 {
		log.Warn().Msg("GFF2 output is write-only; it will not parse back into the same records")
	}

	start := time.Now()
	lines, err := input.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.Input, err)
	}
	log.Debug().Str("path", c.Input).Int("lines", len(lines)).Dur("read_ms", time.Since(start)).Msg("input read")

	opts := c.options()
	if c.SkipInvalid {
		opts = append(opts, gff.WithSkipInvalid())
	}
	doc, err := gff.ParseLines(env.ctx, lines, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", c.Input, err)
	}
	for _, w := range doc.Warnings {
		log.LogRejectedLine(c.Input, w.Line, w.Err)
	}

	out, err := gff.SerializeItems(env.ctx, doc.Items, version, gff.WithConcurrency(c.Concurrency))
	if err != nil {
		return err
	}
	if err := writeLines(c.Out, env.stdout, out); err != nil {
		return err
	}

	log.LogFileDone(c.Input, len(lines), len(doc.Records()), len(doc.Comments()), len(doc.Warnings), time.Since(start))
	return nil
}

// ValidateCmd checks inputs and reports every invalid line.
type ValidateCmd struct {
	ParseFlags

	Inputs []string `arg:"" help:"Input files (plain, .gz or .xz; - for stdin)"`
}

func (c *ValidateCmd) Run(env *runEnv) error {
	log := env.log.Component("validate")
	opts := append(c.options(), gff.WithSkipInvalid())

	var rejected int
	for _, path := range c.Inputs {
		start := time.Now()
		lines, err := input.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		log.Debug().Str("path", path).Int("lines", len(lines)).Dur("read_ms", time.Since(start)).Msg("input read")
		doc, err := gff.ParseLines(env.ctx, lines, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for _, w := range doc.Warnings {
			log.LogRejectedLine(path, w.Line, w.Err)
			fmt.Fprintf(env.stdout, "%s:%d: %v\n", path, w.Line, w.Err)
		}
		rejected += len(doc.Warnings)
		log.LogFileDone(path, len(lines), len(doc.Records()), len(doc.Comments()), len(doc.Warnings), time.Since(start))
	}

	if rejected > 0 {
		return fmt.Errorf("%w: %d rejected", ErrInvalidLines, rejected)
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(env *runEnv) error {
	info := gff.GetVersionInfo()
	fmt.Fprintf(env.stdout, "gffconv version %s (commit %s, built %s, %s)\n",
		info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
	return nil
}

// createFile opens the -o target; replaced in tests.
var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func writeLines(path string, stdout io.Writer, lines []string) (err error) {
	w := stdout
	if path != "-" && path != "" {
		f, openErr := createFile(path)
		if openErr != nil {
			return fmt.Errorf("create %s: %w", path, openErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close %s: %w", path, cerr)
			}
		}()
		w = f
	}

	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("gffconv"),
		kong.Description("Convert and validate GFF2/GFF3 annotation files"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env := &runEnv{
		ctx:    ctx,
		log:    logger.New(logger.Config{Level: CLI.LogLevel, Pretty: CLI.Pretty, WithCaller: CLI.Caller}),
		stdout: os.Stdout,
	}
	err := kctx.Run(env)
	if err != nil {
		env.log.Error().Err(err).Str("command", kctx.Command()).Msg("command failed")
	}
	kctx.FatalIfErrorf(err)
}
