package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/nameform/internal/form"
	"github.com/idilsaglam/nameform/internal/model"
	"github.com/idilsaglam/nameform/internal/prompt"
	"github.com/idilsaglam/nameform/internal/tui"
	"github.com/idilsaglam/nameform/internal/ui"
	"github.com/idilsaglam/nameform/internal/web"
)

func (a *app) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Fill in the form in a full-screen terminal UI",
		Args:  noArgs,
		RunE:  a.runTUI,
	}
}

func (a *app) runTUI(cmd *cobra.Command, _ []string) error {
	log, err := a.logger(true)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	c, err := tui.Run(cmd.Context(), form.New(form.WithLogger(log)), tui.Options{
		CharLimit: a.cfg.CharLimit,
		Logger:    log,
	})
	if err != nil {
		return err
	}
	if name := c.FullName(); name != "" {
		ui.OK(a.stdout, form.FullNamePrefix+name)
	}
	return nil
}

func (a *app) checkCmd() *cobra.Command {
	var first, last string
	cmd := &cobra.Command{
		Use:   "check [first last]",
		Short: "Validate a name pair and print the full name",
		Example: `  nameform check John Doe
  nameform check --first "Mary-Jane" --last "O'Connor"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return usageError{fmt.Errorf("check takes 0 or 2 arguments, got %d", len(args))}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				first, last = args[0], args[1]
			}
			return a.check(first, last)
		},
	}
	cmd.Flags().StringVar(&first, "first", "", "first name")
	cmd.Flags().StringVar(&last, "last", "", "last name")
	return cmd
}

func (a *app) check(first, last string) error {
	log, err := a.logger(false)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	c := form.New(form.WithLogger(log))
	c.Change(model.First, first)
	c.Change(model.Last, last)
	if c.Submit(&form.DefaultPrevented{}) {
		ui.OK(a.stdout, c.View().FullNameText())
		return nil
	}
	v := c.View()
	for _, f := range model.Fields {
		if fv := v.Field(f); fv.ShowError() {
			ui.Fail(a.stderr, fv.Label+": "+fv.Error)
		}
	}
	return errInvalid
}

func (a *app) askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask",
		Short: "Ask for the names one prompt at a time",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := a.logger(true)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			name, err := prompt.Ask(cmd.Context(), prompt.SurveyDriver{}, form.New(form.WithLogger(log)))
			if errors.Is(err, prompt.ErrAborted) {
				return errors.New("aborted")
			}
			if err != nil {
				return err
			}
			ui.OK(a.stdout, form.FullNamePrefix+name)
			return nil
		},
	}
}

func (a *app) serveCmd() *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the form over HTTP",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listen == "" {
				listen = a.cfg.Listen
			}
			log, err := a.logger(false)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			if !a.verbose {
				gin.SetMode(gin.ReleaseMode)
			}
			return web.Serve(cmd.Context(), listen, log)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default from config)")
	return cmd
}

func (a *app) initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective settings to the config file",
		Long: `init writes the built-in defaults, with any .env and environment
overrides applied, to the path given by --config.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(a.cfgPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", a.cfgPath)
			}
			if err := a.cfg.Save(a.cfgPath); err != nil {
				return err
			}
			ui.OK(a.stdout, "wrote "+a.cfgPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError{fmt.Errorf("%s takes no arguments", cmd.Name())}
	}
	return nil
}
