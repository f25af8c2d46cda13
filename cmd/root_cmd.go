package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/moesys/tq/parse/toml"
	"github.com/moesys/tq/pkg"
	"github.com/spf13/cobra"
)

const version = "v0.1"

type QueryParams struct {
	Eval string `json:"eval"` // pattern supplied inline
	File string `json:"file"` // input file path, empty means stdin
}

var params *QueryParams

var rootCmd = &cobra.Command{
	Use:     "tq [flags] [PATTERN]",
	Short:   "Tq is a command line TOML processor.",
	Long:    "Tq reads a TOML document from a file or standard input, looks up the value at a dot-separated path, and prints it in a shell-safe form.",
	Args:    cobra.MaximumNArgs(1),
	Version: version,
	Run:     queryRun,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Tq",
	Long:  `All software has versions. This is Tq's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Tq " + version + " -- HEAD")
	},
}

func init() {
	params = &QueryParams{}
	rootCmd.Flags().StringVarP(&params.Eval, "eval", "e", "", "pattern to evaluate, overrides the positional PATTERN")
	rootCmd.Flags().StringVarP(&params.File, "file", "f", "", "TOML file to read, defaults to standard input")
	rootCmd.Flags().BoolP("version", "V", false, "print the version number of Tq")
	rootCmd.AddCommand(versionCmd)
}

func queryRun(cmd *cobra.Command, args []string) {
	evalSet := cmd.Flags().Changed("eval")
	if !evalSet && len(args) == 0 {
		cmd.Help()
		return
	}

	pattern := params.Eval
	if !evalSet {
		pattern = args[0]
	}

	if params.File != "" {
		exist, err := pkg.CheckFileExist(params.File)
		if err != nil {
			fmt.Fprintln(os.Stderr, "check file exist error:", err)
			os.Exit(1)
		}
		if !exist {
			fmt.Fprintln(os.Stderr, "input file not exist:", params.File)
			os.Exit(1)
		}
	}

	in, closeIn, err := pkg.OpenInput(params.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open input error:", err)
		os.Exit(1)
	}
	defer closeIn()

	if err := runQuery(in, pattern, cmd.OutOrStdout()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runQuery is the whole pipeline: parse, resolve, render, print. It is
// split out so tests can drive it without a process.
func runQuery(in io.Reader, pattern string, out io.Writer) error {
	root, err := toml.Parse(in)
	if err != nil {
		return fmt.Errorf("parse toml: %w", err)
	}
	node, err := toml.Resolve(root, pattern)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, toml.Render(node))
	return err
}
