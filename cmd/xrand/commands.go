package main

import (
	"os/signal"
	"sort"
	"strconv"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cute-angelia/go-xrand/components/iclient"
	"github.com/cute-angelia/go-xrand/components/iregistry"
	"github.com/cute-angelia/go-xrand/components/iserver"
	"github.com/cute-angelia/go-xrand/syntax/irandom"
	"github.com/cute-angelia/go-xrand/syntax/isource"
	"github.com/cute-angelia/go-xrand/syntax/iuuid"
	"github.com/cute-angelia/go-xrand/utils/generator/orderId"
	"github.com/cute-angelia/go-xrand/utils/ibininfo"
)

func newIntCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "int MIN MAX",
		Short: "Draw an integer in [MIN, MAX]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrap(err, "MIN")
			}
			hi, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.Wrap(err, "MAX")
			}
			v, err := a.backend.Int(cmd.Context(), lo, hi)
			if err != nil {
				return err
			}
			if a.output == outputJSON {
				return a.print(cmd.OutOrStdout(), iserver.IntResponse{Value: v})
			}
			return a.print(cmd.OutOrStdout(), v)
		},
	}
}

func newStringCmd(a *app) *cobra.Command {
	var (
		size      int
		alphabets []string
	)
	cmd := &cobra.Command{
		Use:   "string",
		Short: "Draw a string with at least one character from each alphabet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.backend.Pattern(cmd.Context(), size, resolveAlphabets(alphabets)...)
			if err != nil {
				return err
			}
			if a.output == outputJSON {
				return a.print(cmd.OutOrStdout(), iserver.PatternResponse{Value: v})
			}
			return a.print(cmd.OutOrStdout(), v)
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 16, "String length")
	cmd.Flags().StringArrayVarP(&alphabets, "alphabet", "a", nil, "Alphabet or letter name (repeatable, see \"xrand letters\")")
	return cmd
}

func newUniqueCmd(a *app) *cobra.Command {
	var (
		count, size int
		alphabets   []string
		opt         iclient.UniqueOptions
	)
	cmd := &cobra.Command{
		Use:   "unique",
		Short: "Draw COUNT distinct strings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.backend.Unique(cmd.Context(), count, size, resolveAlphabets(alphabets), opt)
			if err != nil {
				return err
			}
			if a.output == outputJSON {
				return a.print(cmd.OutOrStdout(), iserver.ValuesResponse{Values: values})
			}
			return a.print(cmd.OutOrStdout(), values)
		},
	}
	cmd.Flags().IntVar(&count, "count", 10, "Number of values")
	cmd.Flags().IntVarP(&size, "size", "n", 16, "String length")
	cmd.Flags().StringArrayVarP(&alphabets, "alphabet", "a", nil, "Alphabet or letter name (repeatable)")
	cmd.Flags().StringSliceVar(&opt.Exclude, "exclude", nil, "Values that must not be returned")
	cmd.Flags().StringVar(&opt.Namespace, "ns", "", "Also exclude values minted in this namespace")
	return cmd
}

func newMintCmd(a *app) *cobra.Command {
	var (
		count, size int
		alphabets   []string
	)
	cmd := &cobra.Command{
		Use:   "mint NAMESPACE",
		Short: "Draw COUNT values never minted before in NAMESPACE and record them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.backend.Mint(cmd.Context(), args[0], count, size, resolveAlphabets(alphabets))
			if err != nil {
				return err
			}
			if a.output == outputJSON {
				return a.print(cmd.OutOrStdout(), iserver.ValuesResponse{Values: values})
			}
			return a.print(cmd.OutOrStdout(), values)
		},
	}
	cmd.Flags().IntVar(&count, "count", 1, "Number of values")
	cmd.Flags().IntVarP(&size, "size", "n", 16, "String length")
	cmd.Flags().StringArrayVarP(&alphabets, "alphabet", "a", nil, "Alphabet or letter name (repeatable)")
	return cmd
}

func newCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count NAMESPACE",
		Short: "Number of values minted in NAMESPACE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.backend.Count(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if a.output == outputJSON {
				return a.print(cmd.OutOrStdout(), iserver.CountResponse{Namespace: args[0], Count: n})
			}
			return a.print(cmd.OutOrStdout(), n)
		},
	}
}

func newLettersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "letters",
		Short: "List the built-in alphabets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			letters := irandom.Letters()
			out := make([]iserver.LetterResponse, 0, len(letters))
			for name, l := range letters {
				out = append(out, iserver.LetterResponse{Name: name, Alphabet: l.String()})
			}
			sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
			if a.output == outputJSON {
				return a.print(cmd.OutOrStdout(), out)
			}
			lines := make([]string, len(out))
			for i, l := range out {
				lines[i] = l.Name + "\t" + l.Alphabet
			}
			return a.print(cmd.OutOrStdout(), lines)
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}
			newSource, err := isource.Factory(cfg.Source.Kind, cfg.Source.Batch)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			store, err := iregistry.Open(ctx, cfg.Registry)
			if err != nil {
				return err
			}
			a.reg = iregistry.New(store)

			srv := iserver.New(a.reg, newSource,
				iserver.WithRate(cfg.Server.Rate, cfg.Server.Burst),
				iserver.WithCacheTTL(cfg.Server.CacheTTL),
				iserver.WithTimeout(cfg.Server.Timeout),
			)
			return srv.ListenAndServe(ctx, cfg.Server.Addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}

func newUUIDCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Draw RFC 4122 version 4 UUIDs from the local source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.source()
			if err != nil {
				return err
			}
			ids := make([]string, count)
			for i := range ids {
				if ids[i], err = iuuid.V4(src); err != nil {
					return err
				}
			}
			return a.print(cmd.OutOrStdout(), ids)
		},
	}
	cmd.Flags().IntVar(&count, "count", 1, "Number of UUIDs")
	return cmd
}

func newOrderIDCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "orderid",
		Short: "Draw distinct order ids: yyyyMMddHHmmss + 6 random digits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.source()
			if err != nil {
				return err
			}
			ids, err := orderId.GenerateBatch(src, time.Now(), count)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), ids)
		},
	}
	cmd.Flags().IntVar(&count, "count", 1, "Number of ids")
	return cmd
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := ibininfo.Get()
			if a.output == outputJSON {
				return a.print(cmd.OutOrStdout(), info)
			}
			return a.print(cmd.OutOrStdout(), info.String())
		},
	}
}
