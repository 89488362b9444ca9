/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020 Leandro Motta Barros                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/teris-io/cli"

	"github.com/stackedboxes/sixc/internal/config"
	"github.com/stackedboxes/sixc/internal/pipeline"
)

const defaultSourceFile = "testdata/test_basic.sx"

var description = strings.ReplaceAll(`
sixc compiles a small imperative language, with variables, branching,
pre/post-tested loops and bounded built-in I/O calls, into 6502 assembly
text in DASM syntax. Stop early with --stage to inspect an intermediate
artifact instead of the final assembly.
`, "\n", " ")

var sixc = cli.New(description).
	WithArg(cli.NewArg("file", "Source file to compile").
		AsOptional().WithType(cli.TypeString)).
	WithOption(cli.NewOption("stage", "Stage to stop after: lexer, parser, semantics, or assembly").
		WithType(cli.TypeString)).
	WithOption(cli.NewOption("target", "Codegen target: generic or py65mon").
		WithType(cli.TypeString)).
	WithOption(cli.NewOption("config", "Path to an optional YAML config file").
		WithType(cli.TypeString)).
	WithAction(handler)

func handler(args []string, options map[string]string) int {
	cfg := &config.Config{}
	if path, ok := options["config"]; ok {
		loaded, err := config.Load(path)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			return 1
		}
		cfg = loaded
	}

	file := config.Override(cfg.File, defaultSourceFile)
	if len(args) > 0 && args[0] != "" {
		file = args[0]
	}

	stage := config.Override(options["stage"], config.Override(cfg.Stage, pipeline.StageAssembly))
	target := config.Override(options["target"], config.Override(cfg.Target, "py65mon"))

	source, err := os.ReadFile(file)
	if err != nil {
		fmt.Printf("ERROR: unable to read %s: %s\n", file, err)
		return 1
	}

	result, err := pipeline.Run(string(source), stage, target)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return 1
	}

	fmt.Printf("--- %s ---\n", result.Stage)
	fmt.Print(result.Artifact)
	fmt.Printf("--- end %s ---\n", result.Stage)

	if result.Stage == pipeline.StageAssembly {
		asmPath := asmPathFor(file)
		if err := os.WriteFile(asmPath, []byte(result.Artifact), 0o644); err != nil {
			fmt.Printf("ERROR: unable to write %s: %s\n", asmPath, err)
			return 1
		}
	}

	return 0
}

// asmPathFor swaps source's extension for .asm, the way the assembly stage
// names its output file.
func asmPathFor(source string) string {
	if idx := strings.LastIndexByte(source, '.'); idx >= 0 {
		return source[:idx] + ".asm"
	}
	return source + ".asm"
}

func main() { os.Exit(sixc.Run(os.Args, os.Stdout)) }
