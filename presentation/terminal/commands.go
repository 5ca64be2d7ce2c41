package terminal

import (
	"fmt"
	"time"

	"ui_automation/application/scenario"
	"ui_automation/infrastructure/config"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the ui_automation command tree
func NewRootCommand(opts ...Option) *cobra.Command {
	term := NewTerminalInterface(opts...)

	root := &cobra.Command{
		Use:           "ui_automation",
		Short:         "Run page-object UI scenarios in a real browser",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCommand(term), newValidateCommand(term), newActionsCommand(term))
	return root
}

func newRunCommand(term *TerminalInterface) *cobra.Command {
	var (
		driver   string
		baseURL  string
		headless bool
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>...",
		Short: "Execute scenarios and write reports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(term.console)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("driver") {
				cfg.Driver = driver
			}
			if flags.Changed("base-url") {
				cfg.BaseURL = baseURL
			}
			if flags.Changed("headless") {
				cfg.Headless = headless
			}
			if flags.Changed("timeout") {
				cfg.WaitTimeout = timeout
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			term.out = cmd.OutOrStdout()
			return term.Run(cmd.Context(), cfg, args)
		},
	}

	cmd.Flags().StringVar(&driver, "driver", config.DriverPlaywright, "browser backend (playwright or selenium)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "base URL for relative scenario URLs")
	cmd.Flags().BoolVar(&headless, "headless", true, "run the browser without a window")
	cmd.Flags().DurationVar(&timeout, "timeout", config.DefaultWaitTimeout, "element wait timeout")
	return cmd
}

func newValidateCommand(term *TerminalInterface) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <scenario.yaml>...",
		Short: "Check scenario files without opening a browser",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term.out = cmd.OutOrStdout()
			return term.Validate(args)
		},
	}
}

func newActionsCommand(term *TerminalInterface) *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List the step actions scenarios can use",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, action := range scenario.Actions() {
				fmt.Fprintln(cmd.OutOrStdout(), action)
			}
		},
	}
}
