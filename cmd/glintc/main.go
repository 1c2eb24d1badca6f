/*
 * glint
 *
 * Copyright 2026 The glint Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
glintc is the out-of-scope CLI collaborator spec.md §1/§6 assumes exists
around the core: a byte-input/JSON-output wrapper around compiler.Compile.
It is not part of the core front end itself.
*/
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/glint-lang/glint/ast"
	"github.com/glint-lang/glint/compiler"
	"github.com/glint-lang/glint/glintutil"
	"github.com/spf13/cobra"
)

func main() {
	var (
		copyInput      bool
		noIndentTokens bool
		asJSON         bool
	)

	rootCmd := &cobra.Command{
		Use:   "glintc",
		Short: "glintc compiles glint source into an AST",
	}

	compileCmd := &cobra.Command{
		Use:   "compile <file>",
		Short: "Lex and parse a single glint source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(args[0], copyInput, noIndentTokens, asJSON)
		},
	}

	compileCmd.Flags().BoolVar(&copyInput, "copy-input", false,
		"copy the input buffer before lexing (spec.md §6 copy-input flag)")
	compileCmd.Flags().BoolVar(&noIndentTokens, "no-indent-tokens", false,
		"disable indent-token emission")
	compileCmd.Flags().BoolVar(&asJSON, "json", false,
		"print the AST as a JSON tree instead of the indented text form")

	rootCmd.AddCommand(compileCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "glintc: %v\n", err)
		os.Exit(1)
	}
}

func runCompile(path string, copyInput, noIndentTokens, asJSON bool) error {
	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := compiler.NewConfig(map[string]interface{}{
		compiler.CopyInput:    copyInput,
		compiler.TrackIndents: !noIndentTokens,
	})

	result, err := compiler.Compile(input, compiler.Options{Config: cfg})
	if err != nil {
		return fmt.Errorf("compiling %s: %w", path, err)
	}
	defer result.Free()

	logger := glintutil.NewBufferLogger(os.Stderr)
	for _, d := range result.Diagnostics {
		logger.LogError(d)
	}

	if asJSON {
		obj := map[string]interface{}{}
		if result.Root != nil {
			obj = result.Root.ToJSONObject()
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(obj)
	}

	var root *ast.Node = result.Root
	if root == nil {
		fmt.Println("<empty>")
		return nil
	}
	fmt.Print(root.String())
	return nil
}
