package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"deresnet/cmd/rez/app"
	"deresnet/cmd/rez/ui"
	"deresnet/internal/bridge"
	"deresnet/internal/config"
	"deresnet/internal/dao"
	"deresnet/internal/library"
	"deresnet/internal/logging"
	"deresnet/internal/research"
)

const version = "0.1.0"

var (
	// Global flags
	debug bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "rez",
	Short: "DeResNet - decentralized research network client",
	Long: `rez is the terminal client for the DeResNet platform mockup.

It provides the full dashboard experience: the paper library, paper
submission, DAO governance voting, the AI research assistant, and the
multi-chain token bridge. All data is static fixtures and every
transaction is simulated client-side; nothing leaves your terminal.

Run without arguments to start the interactive dashboard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.Dir()
		if err != nil {
			dir = "."
		}
		logger, err = logging.New(dir, debug)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// papersCmd lists the paper library non-interactively.
var papersCmd = &cobra.Command{
	Use:   "papers",
	Short: "List research papers",
	Long: `Searches and lists the paper library.

Example:
  rez papers --query quantum --sort citations`,
	RunE: runPapers,
}

// proposalsCmd lists DAO proposals by status.
var proposalsCmd = &cobra.Command{
	Use:   "proposals",
	Short: "List DAO governance proposals",
	RunE:  runProposals,
}

// quoteCmd prices a bridge conversion.
var quoteCmd = &cobra.Command{
	Use:   "quote [amount] [from-token] [to-token]",
	Short: "Quote a cross-chain token conversion",
	Long: `Computes the destination amount for a bridge conversion using the
platform rate table. Unlisted pairs convert 1:1.

Example:
  rez quote 2 ETH REZ`,
	Args: cobra.ExactArgs(3),
	RunE: runQuote,
}

// versionCmd prints the client version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the client version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rez %s\n", version)
	},
}

var (
	papersQuery string
	papersTag   string
	papersSort  string

	proposalsStatus string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging to the state dir")

	papersCmd.Flags().StringVarP(&papersQuery, "query", "q", "", "search title, abstract, and authors")
	papersCmd.Flags().StringVarP(&papersTag, "tag", "t", library.TagAll, "filter by tag")
	papersCmd.Flags().StringVarP(&papersSort, "sort", "s", string(library.SortRecent), "sort order: recent, citations, downloads")

	proposalsCmd.Flags().StringVarP(&proposalsStatus, "status", "s", "", "filter by status: active, passed, rejected")

	rootCmd.AddCommand(papersCmd)
	rootCmd.AddCommand(proposalsCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(versionCmd)
}

func runInteractive() error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	mgr := config.NewManager(dir)
	if err := mgr.Load(); err != nil {
		logger.Warn("loading config", zap.Error(err))
	}
	return app.Run(app.Options{Config: mgr, Logger: logger})
}

func runPapers(cmd *cobra.Command, args []string) error {
	key := library.SortKey(papersSort)
	valid := false
	for _, k := range library.SortKeys {
		if k == key {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown sort key %q", papersSort)
	}

	results := library.Search(research.Papers(), papersQuery, papersTag, key)
	fmt.Printf("Showing %d papers\n\n", len(results))
	for _, p := range results {
		fmt.Printf("%s [%s]\n", p.Title, p.Status)
		fmt.Printf("  %s · %s · %s\n", strings.Join(p.Authors, ", "), p.PublishedDate, p.Institution)
		fmt.Printf("  %d citations · %d downloads", p.Citations, p.Downloads)
		if p.DOI != "" {
			fmt.Printf(" · DOI: %s", p.DOI)
		}
		fmt.Printf("\n  tags: %s\n\n", strings.Join(p.Tags, ", "))
	}
	return nil
}

func runProposals(cmd *cobra.Command, args []string) error {
	proposals := research.Proposals()

	statuses := dao.Statuses
	if proposalsStatus != "" {
		statuses = []research.ProposalStatus{research.ProposalStatus(proposalsStatus)}
	}

	buckets := dao.Partition(proposals)
	for _, st := range statuses {
		fmt.Printf("%s (%d)\n", st, len(buckets[st]))
		for _, p := range buckets[st] {
			fmt.Printf("  %s [%s]\n", p.Title, p.Type)
			fmt.Printf("    %s for · %s against · %.0f%% support · ends %s\n",
				ui.FormatInt(p.VotesFor), ui.FormatInt(p.VotesAgainst), p.Support()*100, p.EndDate)
		}
		fmt.Println()
	}
	return nil
}

func runQuote(cmd *cobra.Command, args []string) error {
	amount, from, to := args[0], args[1], args[2]
	out, err := bridge.Quote(amount, from, to)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s = %s %s (rate %v)\n", amount, from, out, to, bridge.Rate(from, to))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
