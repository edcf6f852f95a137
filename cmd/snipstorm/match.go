package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/snipstorm/internal/editor"
	"github.com/dshills/snipstorm/internal/indent"
	"github.com/dshills/snipstorm/internal/script"
	"github.com/dshills/snipstorm/internal/snippet"
)

func matchCmd() *cobra.Command {
	var (
		trigger string
		options string
		before  string
		partial bool
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Test whether a trigger matches the text before the cursor",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(before)
			if err != nil {
				return err
			}
			defer env.Script.Close()

			def, err := snippet.New(0, trigger, "", "", options, nil, "<cli>", "", nil)
			if err != nil {
				return err
			}

			var res snippet.MatchResult
			if partial {
				res, err = def.CouldMatch(env, before)
			} else {
				res, err = def.Matches(env, before, nil)
			}
			if err != nil {
				return err
			}

			fmt.Printf("matched: %v\n", res.Matched)
			if res.Matched {
				fmt.Printf("text: %q\n", res.Text)
			}
			if res.Capture != nil {
				fmt.Printf("groups: %q\n", res.Capture.Groups())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&trigger, "trigger", "", "trigger text or pattern")
	cmd.Flags().StringVar(&options, "options", "", "option flags (rwibtm)")
	cmd.Flags().StringVar(&before, "before", "", "text before the cursor")
	cmd.Flags().BoolVar(&partial, "could", false, "test partial (incremental) matching instead")
	_ = cmd.MarkFlagRequired("trigger")
	return cmd
}

// buildEnv assembles a one-line in-memory editor with the cursor at the end
// of the typed text.
func buildEnv(before string) (*snippet.Env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	engine, err := script.NewEngine(cfg.Sandbox)
	if err != nil {
		return nil, err
	}
	host := editor.NewMemory([]string{before})
	host.SetCursor(editor.Position{Line: 0, Col: len(before)})
	return &snippet.Env{
		Host:   host,
		Script: engine,
		Indent: indent.NewUtil(cfg.Indent),
	}, nil
}
