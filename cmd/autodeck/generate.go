package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	autodeck "github.com/alnah/go-autodeck"
	"github.com/alnah/go-autodeck/internal/config"
	"github.com/alnah/go-autodeck/internal/hints"
	"github.com/alnah/go-autodeck/internal/llm"
	"github.com/alnah/go-autodeck/internal/yamlutil"
)

// Sentinel errors for the generate command.
var (
	ErrUnknownProvider   = errors.New("unknown provider")
	ErrInvalidFormat     = errors.New("invalid output format")
	ErrInvalidTimeout    = errors.New("invalid timeout")
	ErrInvalidMaxResults = errors.New("invalid max results")
)

// defaultHandoutTimeout applies when no flag, env var or config sets one.
const defaultHandoutTimeout = 30 * time.Second

// topicPrompt is shown when no topic was given on the command line.
const topicPrompt = "Enter presentation topic: "

// runState records what a run resolved, for error hints.
type runState struct {
	model         string
	credentialEnv string
	envFileLoaded bool
}

// runGenerateCmd executes the generate command and returns an exit code.
func runGenerateCmd(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseGenerateFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}

	log := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	defer func() { _ = log.Sync() }()

	state := &runState{}
	if err := runGenerate(ctx, flags, positional, env, log, state); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, state))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runGenerate resolves settings, runs the builder and reports the result.
func runGenerate(ctx context.Context, flags *generateFlags, positional []string, env *Environment, log *zap.Logger, state *runState) error {
	if err := validateFormat(flags.output.format); err != nil {
		return err
	}

	dotenv, err := loadDotEnv(flags.envFile, flags.envFileSet)
	if err != nil {
		return err
	}
	state.envFileLoaded = dotenv.loaded
	getenv := dotenv.lookup(env.Getenv)
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ(), dotenv.vars)
	}

	envCfg := loadEnvConfig(getenv)
	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	if err := mergeFlags(flags, cfg); err != nil {
		return err
	}
	if !llm.IsKnownProvider(cfg.Provider.Name) {
		return fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider.Name)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.render.timeout, envCfg.Timeout, cfg.Render.Timeout)
	if err != nil {
		return err
	}

	topic, err := resolveTopic(flags.topic, positional, env.Stdin, env.Stderr)
	if err != nil {
		return err
	}

	settings := llm.Settings{
		Provider: strings.ToLower(cfg.Provider.Name),
		Model:    resolveModel(flags.model.model, envCfg.Model, cfg.Provider),
		BaseURL:  cfg.Provider.BaseURL,
	}
	state.credentialEnv = llm.CredentialEnv(settings.Provider)
	settings.APIKey = getenv(state.credentialEnv)

	gen, err := env.NewGenerator(ctx, settings)
	if err != nil {
		return err
	}
	state.model = gen.Model()
	log.Debug("generator ready", zap.String("provider", settings.Provider), zap.String("model", state.model))

	opts := []autodeck.Option{
		autodeck.WithGenerator(gen),
		autodeck.WithSearcher(env.NewSearcher(config.Duration(cfg.Search.Timeout, 0))),
		autodeck.WithLogger(log),
		autodeck.WithRetryPolicy(retryPolicy(cfg.Retry)),
		autodeck.WithTimeout(timeout),
		autodeck.WithAssetPath(cfg.Assets.BasePath),
	}
	if cfg.Render.Seed != nil {
		opts = append(opts, autodeck.WithSeed(*cfg.Render.Seed))
	}

	builder, err := autodeck.NewBuilder(opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := builder.Close(); cerr != nil {
			log.Warn("closing browser", zap.Error(cerr))
		}
	}()

	res, err := builder.Build(ctx, autodeck.Input{
		Topic:       topic,
		MaxResults:  cfg.Search.MaxResults,
		SkipWeb:     cfg.Search.Skip,
		WebOptional: cfg.Search.Optional,
		DryRun:      flags.output.dryRun,
		OutFile:     flags.output.outfile,
		OutputDir:   cfg.Output.DefaultDir,
		HTML:        cfg.Output.HTML,
		PDF:         cfg.Output.PDF,
	})
	if err != nil {
		return err
	}

	if flags.output.dryRun {
		return printDeck(env.Stdout, res.Deck, flags.output.format)
	}
	printResult(env.Stdout, res, flags.common.quiet)
	return nil
}

// loadConfig loads the named config, the flag taking precedence over
// AUTODECK_CONFIG. With neither set, defaults are used.
func loadConfig(flagValue, envValue string) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(name)
}

// mergeFlags applies CLI flags over config values. Boolean flags can only
// switch a feature on.
func mergeFlags(flags *generateFlags, cfg *config.Config) error {
	if flags.model.provider != "" {
		cfg.Provider.Name = flags.model.provider
	}
	if flags.maxResultsSet {
		if flags.search.maxResults < 1 || flags.search.maxResults > config.MaxMaxResults {
			return fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidMaxResults, flags.search.maxResults, config.MaxMaxResults)
		}
		cfg.Search.MaxResults = flags.search.maxResults
	}
	if flags.search.noWeb {
		cfg.Search.Skip = true
	}
	if flags.search.webOptional {
		cfg.Search.Optional = true
	}
	if flags.output.outputDir != "" {
		cfg.Output.DefaultDir = flags.output.outputDir
	}
	if flags.output.html {
		cfg.Output.HTML = true
	}
	if flags.output.pdf {
		cfg.Output.PDF = true
	}
	if flags.seedSet {
		seed := flags.render.seed
		cfg.Render.Seed = &seed
	}
	if flags.render.assetPath != "" {
		cfg.Assets.BasePath = flags.render.assetPath
	}
	return nil
}

// resolveTimeout picks the handout timeout: flag > env > config > default.
func resolveTimeout(flagValue string, envValue time.Duration, configValue string) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a duration", ErrInvalidTimeout, flagValue)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: must be positive, got %s", ErrInvalidTimeout, flagValue)
		}
		return d, nil
	}
	if envValue > 0 {
		return envValue, nil
	}
	return config.Duration(configValue, defaultHandoutTimeout), nil
}

// resolveModel picks the model: flag > OAI_MODEL (OpenAI only) > config.
// Empty lets the provider choose its default.
func resolveModel(flagValue, envValue string, p config.ProviderConfig) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue != "" && strings.EqualFold(p.Name, llm.ProviderOpenAI) {
		return envValue
	}
	return p.Model
}

// resolveTopic returns the topic from --topic, then positional args, then
// a single line read from in after prompting on prompt.
func resolveTopic(flagValue string, positional []string, in io.Reader, prompt io.Writer) (string, error) {
	if topic := strings.TrimSpace(flagValue); topic != "" {
		return topic, nil
	}
	if topic := strings.TrimSpace(strings.Join(positional, " ")); topic != "" {
		return topic, nil
	}
	if in == nil {
		return "", autodeck.ErrEmptyTopic
	}

	fmt.Fprint(prompt, topicPrompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading topic: %w", err)
	}
	topic := strings.TrimSpace(line)
	if topic == "" {
		return "", autodeck.ErrEmptyTopic
	}
	return topic, nil
}

// retryPolicy overlays configured retry values on the default policy.
func retryPolicy(rc config.RetryConfig) autodeck.RetryPolicy {
	p := autodeck.DefaultRetryPolicy()
	if rc.MaxAttempts > 0 {
		p.MaxAttempts = rc.MaxAttempts
	}
	p.InitialDelay = config.Duration(rc.InitialDelay, p.InitialDelay)
	p.MaxDelay = config.Duration(rc.MaxDelay, p.MaxDelay)
	return p
}

func validateFormat(format string) error {
	switch format {
	case formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidFormat, format, formatJSON, formatYAML)
}

// printDeck writes the normalized deck for a dry run.
func printDeck(w io.Writer, deck autodeck.Deck, format string) error {
	var (
		data []byte
		err  error
	)
	if format == formatYAML {
		data, err = yamlutil.MarshalIndent(deck)
	} else {
		data, err = json.MarshalIndent(deck, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("encoding deck: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// printResult reports written files. Quiet prints bare paths for scripts.
func printResult(w io.Writer, res *autodeck.Result, quiet bool) {
	lines := []struct{ label, path string }{
		{"Saved presentation", res.Path},
		{"Saved preview", res.HTMLPath},
		{"Saved handout", res.PDFPath},
	}
	for _, l := range lines {
		if l.path == "" {
			continue
		}
		if quiet {
			fmt.Fprintln(w, l.path)
		} else {
			fmt.Fprintf(w, "%s: %s\n", l.label, l.path)
		}
	}
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, state *runState) string {
	switch {
	case errors.Is(err, autodeck.ErrMissingCredential):
		return hints.ForMissingCredential(state.credentialEnv, state.envFileLoaded)
	case errors.Is(err, ErrUnknownProvider):
		return hints.ForAvailableProviders(config.Providers)
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(triedPaths(err))
	case errors.Is(err, autodeck.ErrSearchUnavailable):
		return hints.ForSearchUnavailable()
	case errors.Is(err, autodeck.ErrGeneration), errors.Is(err, autodeck.ErrSchema):
		return hints.ForGeneration(state.model)
	case errors.Is(err, autodeck.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, autodeck.ErrPDFGeneration) && strings.Contains(err.Error(), "timed out"):
		return hints.ForTimeout()
	case errors.Is(err, autodeck.ErrWriteDeck):
		return hints.ForOutputDirectory()
	}
	return ""
}

// triedPaths extracts the searched locations from a config-not-found error.
func triedPaths(err error) []string {
	_, list, ok := strings.Cut(err.Error(), "tried ")
	if !ok {
		return nil
	}
	return strings.Split(list, ", ")
}
