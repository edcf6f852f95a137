package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/snipstorm/internal/editor"
	"github.com/dshills/snipstorm/internal/lifecycle"
	"github.com/dshills/snipstorm/internal/snippet"
)

func expandCmd() *cobra.Command {
	var (
		trigger string
		options string
		body    string
		before  string
	)

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Expand a snippet against sample text and print the buffer",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(before)
			if err != nil {
				return err
			}
			defer env.Script.Close()

			def, err := snippet.New(0, trigger, strings.ReplaceAll(body, `\n`, "\n"), "", options, nil, "<cli>", "", nil)
			if err != nil {
				return err
			}

			res, err := def.Matches(env, before, nil)
			if err != nil {
				return err
			}
			if !res.Matched {
				fmt.Println("no match")
				return nil
			}

			// Replace the matched text at the end of the line.
			end := env.Host.Cursor()
			start := editor.Position{Line: end.Line, Col: end.Col - len(res.Text)}

			ctrl := lifecycle.NewController()
			inst, err := ctrl.Expand(env, def, before[:start.Col], nil, start, end)
			if err != nil {
				return err
			}

			for _, line := range env.Host.Lines() {
				fmt.Println(line)
			}
			fmt.Printf("-- instance range %v..%v, %d tabstop(s)\n", inst.Start(), inst.End(), len(inst.Tabstops()))
			return nil
		},
	}

	cmd.Flags().StringVar(&trigger, "trigger", "", "trigger text or pattern")
	cmd.Flags().StringVar(&options, "options", "", "option flags (rwibtm)")
	cmd.Flags().StringVar(&body, "body", "", `snippet body (use \n for line breaks, leading tabs for indent)`)
	cmd.Flags().StringVar(&before, "before", "", "text before the cursor")
	_ = cmd.MarkFlagRequired("trigger")
	_ = cmd.MarkFlagRequired("body")
	return cmd
}
