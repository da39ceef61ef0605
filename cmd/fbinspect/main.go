// Command fbinspect builds and verifies flatbuffers-encoded metadata
// buffers from the command line, mostly as a smoke test for the library
// during development.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	env "github.com/xyproto/env/v2"

	"github.com/blastbao/flatgo/example/metadata"
	"github.com/blastbao/flatgo/flatbuffers"
	"github.com/blastbao/flatgo/verify"
)

// initialCapacityEnv overrides the builder's starting arena size, useful
// when inspecting whether growth behaves as expected for large inputs.
const initialCapacityEnv = "FBINSPECT_INITIAL_CAPACITY"

var (
	outPath string
	inPath  string
	pairs   []string
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	root := &cobra.Command{
		Use:   "fbinspect",
		Short: "Build and verify flatbuffers metadata buffers",
	}

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Encode key=value pairs into a metadata buffer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(logger)
		},
	}
	buildCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (required)")
	buildCmd.Flags().StringArrayVarP(&pairs, "set", "s", nil, "key=value pair, repeatable")
	_ = buildCmd.MarkFlagRequired("out")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Structurally verify a buffer and print its metadata",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(logger)
		},
	}
	verifyCmd.Flags().StringVarP(&inPath, "in", "i", "", "input file (required)")
	_ = verifyCmd.MarkFlagRequired("in")

	root.AddCommand(buildCmd, verifyCmd)

	if err := root.Execute(); err != nil {
		logger.Error("fbinspect failed", "error", err)
		os.Exit(1)
	}
}

func runBuild(logger *slog.Logger) error {
	initialCapacity := env.Int(initialCapacityEnv, 1024)
	logger.Info("building buffer", "initial_capacity", initialCapacity, "pairs", len(pairs))

	keys := make([]string, 0, len(pairs))
	values := make([]string, 0, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q: expected key=value", p)
		}
		keys = append(keys, k)
		values = append(values, v)
	}

	b := flatbuffers.NewBuilder(initialCapacity)
	root := metadata.CreateMetadata(b, keys, values)
	b.Finish(root)

	if err := os.WriteFile(outPath, b.FinishedBytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	logger.Info("wrote buffer", "path", outPath, "bytes", len(b.FinishedBytes()))
	return nil
}

func runVerify(logger *slog.Logger) error {
	buf, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inPath, err)
	}

	if err := verify.Buffer(buf); err != nil {
		return fmt.Errorf("buffer failed verification: %w", err)
	}
	logger.Info("buffer verified ok", "bytes", len(buf))

	m := metadata.GetRootAsMetadata(buf, 0)
	n := m.KeysLength()
	for i := 0; i < n; i++ {
		fmt.Printf("%s=%s\n", m.Keys(i), m.Values(i))
	}
	return nil
}
