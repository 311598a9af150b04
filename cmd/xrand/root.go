package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cute-angelia/go-xrand/components/iclient"
	"github.com/cute-angelia/go-xrand/components/iregistry"
	"github.com/cute-angelia/go-xrand/syntax/irandom"
	"github.com/cute-angelia/go-xrand/syntax/ijson"
	"github.com/cute-angelia/go-xrand/syntax/isource"
	"github.com/cute-angelia/go-xrand/utils/conf"
	"github.com/cute-angelia/go-xrand/utils/ilog"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// standalone 不需要 backend 的命令
var standalone = map[string]bool{
	"serve":   true,
	"letters": true,
	"version": true,
	"uuid":    true,
	"orderid": true,
}

// backend 本地生成或通过 --server 调用远程服务
type backend interface {
	Int(ctx context.Context, min, max int) (int, error)
	Pattern(ctx context.Context, size int, alphabets ...string) (string, error)
	Unique(ctx context.Context, count, size int, alphabets []string, opt iclient.UniqueOptions) ([]string, error)
	Mint(ctx context.Context, ns string, count, size int, alphabets []string) ([]string, error)
	Count(ctx context.Context, ns string) (int64, error)
}

type app struct {
	configFile string
	server     string
	output     string
	seed       string
	kind       string
	verbose    bool

	cfg     *conf.AppConfig
	backend backend
	reg     *iregistry.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "xrand",
		Short: "Unbiased random integers and strings",
		Long: `xrand draws uniformly distributed integers, alphabet-constrained strings
and unique string batches. It runs locally by default; --server sends the
requests to a running "xrand serve" instead.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.reg != nil {
				return a.reg.Close()
			}
			return nil
		},
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "Config file (yaml/json/toml), env XRAND_*")
	pf.StringVar(&a.server, "server", "", "Remote xrand server URL")
	pf.StringVarP(&a.output, "output", "o", outputText, "Output format: text, json")
	pf.StringVar(&a.kind, "source", "", "Local source kind: crypto, fast, chacha20 (default from config)")
	pf.StringVar(&a.seed, "seed", "", "Seed a deterministic chacha20 source")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Debug logging")

	root.AddCommand(newIntCmd(a))
	root.AddCommand(newStringCmd(a))
	root.AddCommand(newUniqueCmd(a))
	root.AddCommand(newMintCmd(a))
	root.AddCommand(newCountCmd(a))
	root.AddCommand(newLettersCmd(a))
	root.AddCommand(newUUIDCmd(a))
	root.AddCommand(newOrderIDCmd(a))
	root.AddCommand(newVersionCmd(a))
	root.AddCommand(newServeCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := conf.LoadConfigFile(conf.New(), a.configFile)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if _, err := ilog.SetupWriter(cmd.ErrOrStderr(), cfg.Log); err != nil {
		return err
	}
	if a.kind != "" {
		cfg.Source.Kind = a.kind
	}
	a.cfg = cfg

	switch {
	case a.output != outputText && a.output != outputJSON:
		return errors.Errorf("unknown output %q", a.output)
	case standalone[cmd.Name()]:
		return nil
	case a.server != "":
		a.backend = iclient.New(a.server, iclient.WithRetry(2), iclient.WithDebug(a.verbose))
		return nil
	}

	src, err := a.source()
	if err != nil {
		return err
	}
	store, err := iregistry.Open(cmd.Context(), cfg.Registry)
	if err != nil {
		return err
	}
	a.reg = iregistry.New(store)
	a.backend = &local{rnd: irandom.New(src), reg: a.reg}
	return nil
}

// source 本地命令共用一个源，--seed 时输出可复现
func (a *app) source() (isource.Source, error) {
	if a.seed != "" {
		return isource.NewChaCha20FromSeed(a.seed), nil
	}
	newSource, err := isource.Factory(a.cfg.Source.Kind, a.cfg.Source.Batch)
	if err != nil {
		return nil, err
	}
	return newSource(), nil
}

func (a *app) print(w io.Writer, v any) error {
	if a.output == outputJSON {
		return ijson.Fprint(w, v, false)
	}
	switch t := v.(type) {
	case []string:
		_, err := fmt.Fprintln(w, strings.Join(t, "\n"))
		return err
	default:
		_, err := fmt.Fprintln(w, t)
		return err
	}
}

// resolveAlphabets 名称换成内置字母表，其余原样使用；为空时用 LetterAll
func resolveAlphabets(in []string) []string {
	if len(in) == 0 {
		return []string{irandom.LetterAll.String()}
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = irandom.LookupLetter(s)
	}
	return out
}

type local struct {
	rnd *irandom.Rand
	reg *iregistry.Registry
}

func (l *local) Int(_ context.Context, min, max int) (int, error) {
	return l.rnd.Range(min, max)
}

func (l *local) Pattern(_ context.Context, size int, alphabets ...string) (string, error) {
	return l.rnd.Pattern(size, alphabets...)
}

func (l *local) Unique(ctx context.Context, count, size int, alphabets []string, opt iclient.UniqueOptions) ([]string, error) {
	exclude := opt.Exclude
	if opt.Namespace != "" {
		minted, err := l.reg.Exclusion(ctx, opt.Namespace)
		if err != nil {
			return nil, err
		}
		exclude = append(minted, exclude...)
	}
	return l.rnd.UniquePatterns(count, size, alphabets, exclude...)
}

func (l *local) Mint(ctx context.Context, ns string, count, size int, alphabets []string) ([]string, error) {
	return l.reg.Mint(ctx, ns, l.rnd.Source(), count, size, alphabets)
}

func (l *local) Count(ctx context.Context, ns string) (int64, error) {
	return l.reg.Count(ctx, ns)
}
