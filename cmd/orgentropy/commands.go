package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/orgentropy/codec"
	"github.com/katalvlaran/orgentropy/concordance"
	"github.com/katalvlaran/orgentropy/dice"
	"github.com/katalvlaran/orgentropy/entropy"
	"github.com/katalvlaran/orgentropy/hierarchy"
	"github.com/katalvlaran/orgentropy/matrix"
	"github.com/katalvlaran/orgentropy/ranking"
	"github.com/katalvlaran/orgentropy/relsets"
)

// app carries the resolved configuration into every subcommand.
type app struct {
	configPath string
	cfg        Config
	logger     *slog.Logger
}

// newRootCmd assembles the command tree. Each call returns an independent
// tree, so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig()}
	root := &cobra.Command{
		Use:   "orgentropy",
		Short: "Entropy of organizational hierarchies and related exercises",
		Long: `orgentropy counts management and subordination relations in a
hierarchy, evaluates its structural entropy, and runs the companion
exercises on relation sets, dice, ranking merge and expert concordance.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn or error")
	pf.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "log format: text or json")
	pf.StringVarP(&a.cfg.Format, "format", "f", a.cfg.Format, "output format: text, json or yaml")
	pf.IntVar(&a.cfg.Precision, "precision", a.cfg.Precision, "decimals in text output")

	root.AddCommand(
		a.treeCmd(),
		a.tableCmd(),
		a.convertCmd(),
		a.relsetsCmd(),
		a.diceCmd(),
		a.mergeCmd(),
		a.concordanceCmd(),
	)

	return root
}

// setup resolves the configuration: defaults, then the config file, then
// flags the user set explicitly.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.configPath != "" {
		fromFlags := a.cfg
		cfg, err := LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("log-level") {
			cfg.LogLevel = fromFlags.LogLevel
		}
		if flags.Changed("log-format") {
			cfg.LogFormat = fromFlags.LogFormat
		}
		if flags.Changed("format") {
			cfg.Format = fromFlags.Format
		}
		if flags.Changed("precision") {
			cfg.Precision = fromFlags.Precision
		}
		a.cfg = cfg
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.logger = newLogger(cmd.ErrOrStderr(), a.cfg)
	a.logger.Debug("run", "command", cmd.Name(), "args", args, "format", a.cfg.Format)

	return nil
}

// readInput returns the content of path, or of stdin for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	return os.ReadFile(path)
}

// loadTree reads a hierarchy from path. JSON and YAML documents keep their
// stored relations; anything else is parsed as an edge list and finalized.
func (a *app) loadTree(cmd *cobra.Command, path string) (*hierarchy.Tree, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	if f, ferr := codec.FormatOf(path); ferr == nil {
		a.logger.Debug("decoding document", "path", path, "format", f)
		return codec.Decode(data, f)
	}
	a.logger.Debug("parsing edge list", "path", path)

	return hierarchy.BuildTreeFromEdgeListText(string(data))
}

// nodeReport is one row of the tree report.
type nodeReport struct {
	Label    string  `json:"label" yaml:"label"`
	Parent   string  `json:"parent,omitempty" yaml:"parent,omitempty"`
	Relation [5]int  `json:"relation" yaml:"relation,flow"`
	Entropy  float64 `json:"entropy" yaml:"entropy"`
}

// treeReport is the output of the tree command.
type treeReport struct {
	Nodes       []nodeReport `json:"nodes" yaml:"nodes"`
	Entropy     float64      `json:"entropy" yaml:"entropy"`
	Fingerprint string       `json:"fingerprint" yaml:"fingerprint"`
}

func (a *app) treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file>",
		Short: "Print relations and full entropy of a hierarchy",
		Long: `Reads a hierarchy from an edge list ("parent,child" per line, "-" for
stdin) or from a .json/.yaml document, then prints every node's relation
counts and self-entropy followed by the full entropy of the tree.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runTree,
	}
}

func (a *app) runTree(cmd *cobra.Command, args []string) error {
	tree, err := a.loadTree(cmd, args[0])
	if err != nil {
		return err
	}

	var report treeReport
	err = tree.Walk(func(n *hierarchy.Node) error {
		h, err := entropy.SelfEntropy(tree, n)
		if err != nil {
			return err
		}
		row := nodeReport{Label: n.Label, Relation: n.Relation.Row(), Entropy: h}
		if p := tree.Parent(n); p != nil {
			row.Parent = p.Label
		}
		report.Nodes = append(report.Nodes, row)
		report.Entropy += h

		return nil
	})
	if err != nil {
		return err
	}
	table, err := codec.ToTable(tree)
	if err != nil {
		return err
	}
	if report.Fingerprint, err = matrix.Fingerprint(table); err != nil {
		return err
	}
	a.logger.Info("tree evaluated", "nodes", tree.Len(), "entropy", report.Entropy)

	return render(cmd.OutOrStdout(), a.cfg.Format, report, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "label\tparent\trelation\tentropy")
		for _, n := range report.Nodes {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", n.Label, n.Parent, joinInts(n.Relation[:]), fixed(n.Entropy, a.cfg.Precision))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "full entropy: %s\nfingerprint: %s\n", fixed(report.Entropy, a.cfg.Precision), report.Fingerprint)

		return err
	})
}

// tableReport is the output of the table command.
type tableReport struct {
	Rows        int     `json:"rows" yaml:"rows"`
	Entropy     float64 `json:"entropy" yaml:"entropy"`
	Fingerprint string  `json:"fingerprint" yaml:"fingerprint"`
}

func (a *app) tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table <file>",
		Short: "Evaluate full entropy from a relation table",
		Long: `Reads a relation table (one row of five non-negative counts per node,
comma separated, "-" for stdin) and prints the full entropy together with
a fingerprint of the normalized table text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			table, err := codec.FromTable(string(data))
			if err != nil {
				return err
			}
			h, err := entropy.FromTable(table)
			if err != nil {
				return err
			}
			fp, err := matrix.Fingerprint(table)
			if err != nil {
				return err
			}
			report := tableReport{Rows: table.Rows(), Entropy: h, Fingerprint: fp}
			a.logger.Info("table evaluated", "rows", report.Rows, "entropy", h)

			return render(cmd.OutOrStdout(), a.cfg.Format, report, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "rows: %d\nfull entropy: %s\nfingerprint: %s\n",
					report.Rows, fixed(h, a.cfg.Precision), fp)
				return err
			})
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a hierarchy between edge list, JSON and YAML",
		Long: `Loads a hierarchy (edge list, .json or .yaml) and saves it as a
document whose format follows the extension of <out>.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.loadTree(cmd, args[0])
			if err != nil {
				return err
			}
			if err = codec.Save(args[1], tree); err != nil {
				return err
			}
			a.logger.Info("converted", "in", args[0], "out", args[1], "nodes", tree.Len())
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d nodes\n", args[1], tree.Len())

			return err
		},
	}
}

func (a *app) relsetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "relsets <adjacency-json>",
		Short:   "List the nodes taking part in each relation kind",
		Example: `  orgentropy relsets '[[1,2,3],[4,5],[6],[7],[],[],[],[]]'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := relsets.ComputeText(args[0])
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), a.cfg.Format, sets, func(w io.Writer) error {
				names := []string{
					"direct_management",
					"direct_subordination",
					"indirect_management",
					"indirect_subordination",
					"subordination",
				}
				for i, list := range sets.Lists() {
					if _, err := fmt.Fprintf(w, "%s: %s\n", names[i], joinInts(list)); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func (a *app) diceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dice [faces...]",
		Short: "Information the sum of two dice carries about their product",
		Long: `Throws two fair dice with the given faces (1..6 by default) and prints
H(AB), H(A), H(B), H_A(B) and I(A,B) for A = sum and B = product.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			faces := dice.StandardFaces
			if len(args) > 0 {
				faces = make([]int, len(args))
				for i, arg := range args {
					v, err := strconv.Atoi(arg)
					if err != nil {
						return fmt.Errorf("face %q: %w", arg, err)
					}
					faces[i] = v
				}
			}
			report, err := dice.Analyze(faces)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), a.cfg.Format, report, func(w io.Writer) error {
				names := []string{"H(AB)", "H(A)", "H(B)", "H_A(B)", "I(A,B)"}
				for i, v := range report.Values() {
					if _, err := fmt.Fprintf(w, "%s = %s\n", names[i], fixed(v, a.cfg.Precision)); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func (a *app) mergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "merge <ranking-a> <ranking-b>",
		Short:   "Merge two rankings and report controversial pairs",
		Example: `  orgentropy merge '["1",["2","3"],"4"]' '[["1","2"],"3","4"]'`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ra, err := ranking.Parse(args[0])
			if err != nil {
				return fmt.Errorf("first ranking: %w", err)
			}
			rb, err := ranking.Parse(args[1])
			if err != nil {
				return fmt.Errorf("second ranking: %w", err)
			}
			res, err := ranking.Merge(ra, rb)
			if err != nil {
				return err
			}
			a.logger.Debug("merged", "labels", len(ra.Labels()), "controversies", len(res.Controversies))

			return render(cmd.OutOrStdout(), a.cfg.Format, res, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "ranking: %s\ncontroversies: %v\n", res.Ranking, res.Controversies)
				return err
			})
		},
	}
}

// concordanceReport is the output of the concordance command.
type concordanceReport struct {
	Keys []string `json:"keys" yaml:"keys,flow"`
	W    float64  `json:"w" yaml:"w"`
}

func (a *app) concordanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "concordance <order>...",
		Short:   "Kendall's coefficient of concordance of expert orders",
		Example: `  orgentropy concordance '[2,3,1]' '[1,2,3]' '[3,1,2]'`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := concordance.Parse(args...)
			if err != nil {
				return err
			}
			ranks, keys, err := concordance.RankMatrix(orders)
			if err != nil {
				return err
			}
			w, err := concordance.KendallW(ranks)
			if err != nil {
				return err
			}
			a.logger.Debug("concordance", "experts", len(orders), "objects", len(keys))
			report := concordanceReport{Keys: keys, W: w}

			return render(cmd.OutOrStdout(), a.cfg.Format, report, func(out io.Writer) error {
				_, err := fmt.Fprintf(out, "W = %s\n", fixed(w, a.cfg.Precision))
				return err
			})
		},
	}
}
