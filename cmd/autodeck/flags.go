package main

import (
	"io"

	flag "github.com/spf13/pflag"

	autodeck "github.com/alnah/go-autodeck"
)

// Dry-run output formats.
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// defaultEnvFile is loaded when present; a missing default is not an error.
const defaultEnvFile = ".env"

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// searchFlags holds web search flags.
type searchFlags struct {
	maxResults  int
	noWeb       bool
	webOptional bool
}

// modelFlags holds language model flags.
type modelFlags struct {
	provider string
	model    string
}

// outputFlags holds output destination and artifact flags.
type outputFlags struct {
	outfile   string
	outputDir string
	html      bool
	pdf       bool
	dryRun    bool
	format    string
}

// renderFlags holds rendering flags.
type renderFlags struct {
	seed      uint64
	timeout   string
	assetPath string
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common  commonFlags
	topic   string
	envFile string
	search  searchFlags
	model   modelFlags
	output  outputFlags
	render  renderFlags

	// Flags whose zero value is meaningful, so layering needs to know
	// whether they were given.
	maxResultsSet bool
	seedSet       bool
	envFileSet    bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show every pipeline stage")
}

// addSearchFlags adds web search flags to a FlagSet.
func addSearchFlags(fs *flag.FlagSet, f *searchFlags) {
	fs.IntVar(&f.maxResults, "max-results", autodeck.DefaultMaxResults, "web search results to use as context")
	fs.BoolVar(&f.noWeb, "no-web", false, "skip web search")
	fs.BoolVar(&f.webOptional, "web-optional", false, "continue without context when search fails")
}

// addModelFlags adds language model flags to a FlagSet.
func addModelFlags(fs *flag.FlagSet, f *modelFlags) {
	fs.StringVar(&f.provider, "provider", "", "model provider: openai, gemini")
	fs.StringVar(&f.model, "model", "", "model name (default: provider default)")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVar(&f.outfile, "outfile", "", "output .pptx filename (default: from topic)")
	fs.StringVarP(&f.outputDir, "output-dir", "o", "", "directory for derived filenames")
	fs.BoolVar(&f.html, "html", false, "also write an HTML preview")
	fs.BoolVar(&f.pdf, "pdf", false, "also write a PDF handout (needs Chrome)")
	fs.BoolVar(&f.dryRun, "dry-run", false, "print the slide content and write nothing")
	fs.StringVar(&f.format, "format", formatJSON, "dry-run output format: json, yaml")
}

// addRenderFlags adds rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.Uint64Var(&f.seed, "seed", 0, "seed for reproducible backgrounds")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF handout timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// parseGenerateFlags parses generate command flags and returns positional args.
// Usage is printed to usageOut on parse errors and for --help.
func parseGenerateFlags(args []string, usageOut io.Writer) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(usageOut)
	f := &generateFlags{}

	fs.StringVar(&f.topic, "topic", "", "presentation topic")
	fs.StringVar(&f.envFile, "env-file", defaultEnvFile, "dotenv file with API keys")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addSearchFlags(fs, &f.search)
	addModelFlags(fs, &f.model)
	addOutputFlags(fs, &f.output)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printGenerateUsage(usageOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.maxResultsSet = fs.Changed("max-results")
	f.seedSet = fs.Changed("seed")
	f.envFileSet = fs.Changed("env-file")

	return f, fs.Args(), nil
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	json    bool
	envFile string
}

// parseDoctorFlags parses doctor command flags.
func parseDoctorFlags(args []string, usageOut io.Writer) (*doctorFlags, error) {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(usageOut)
	f := &doctorFlags{}

	fs.BoolVar(&f.json, "json", false, "output results as JSON")
	fs.StringVar(&f.envFile, "env-file", defaultEnvFile, "dotenv file with API keys")

	fs.Usage = func() { printDoctorUsage(usageOut) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
