package main

import (
	"fmt"
	"log/slog"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	checkfields "github.com/iofields/checkfields"
	"github.com/iofields/checkfields/i18n"
	"github.com/iofields/checkfields/internal/logging"
	"github.com/iofields/checkfields/loader"
	"github.com/iofields/checkfields/middleware"
)

// validationFailed marks a run whose record was already written to stderr.
type validationFailed struct{ rec *checkfields.Record }

func (e *validationFailed) Error() string { return e.rec.Error() }

type validateFlags struct {
	schema     string
	input      string
	errors     string
	lang       string
	maxDepth   int
	rejectDups bool
}

func newValidateCmd() *cobra.Command {
	var f validateFlags
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an input document against a schema",
		Long: `Loads the schema and input (JSON or YAML, chosen by file extension) and
checks them. On failure the error record is printed to stderr as JSON and the
command exits with status 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbosity, _ := cmd.Flags().GetCount("verbose")
			log := logging.New(cmd.ErrOrStderr(), logging.LevelFor(verbosity))
			return runValidate(cmd, log, f)
		},
	}
	cmd.Flags().StringVar(&f.schema, "schema", "", "schema file (.json, .yaml, .yml)")
	cmd.Flags().StringVar(&f.input, "input", "", "input document file")
	cmd.Flags().StringVar(&f.errors, "errors", "", "optional error override file")
	cmd.Flags().StringVar(&f.lang, "lang", "en", "message language (en, ja)")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", 0, "maximum nesting depth (0 = unlimited)")
	cmd.Flags().BoolVar(&f.rejectDups, "reject-duplicate-keys", false, "fail JSON documents that repeat an object key")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runValidate(cmd *cobra.Command, log *slog.Logger, f validateFlags) error {
	lopt := loader.Options{RejectDuplicateKeys: f.rejectDups}

	schema, err := loader.LoadSchemaFile(f.schema, lopt)
	if err != nil {
		return err
	}
	log.Debug("schema loaded", "path", f.schema, "fields", len(schema))

	input, err := loader.LoadInputFile(f.input, lopt)
	if err != nil {
		return err
	}
	log.Debug("input loaded", "path", f.input)

	opts := []checkfields.Option{
		checkfields.WithTranslator(i18n.NewDictionary(f.lang)),
		checkfields.WithMaxDepth(f.maxDepth),
	}
	if f.errors != "" {
		cfg, err := loader.LoadErrorConfigFile(f.errors, lopt)
		if err != nil {
			return err
		}
		log.Debug("error overrides loaded", "path", f.errors, "slots", len(cfg))
		opts = append(opts, checkfields.WithErrors(cfg))
	}

	err = checkfields.Validate(input, schema, opts...)
	if err == nil {
		log.Info("valid", "input", f.input, "schema", f.schema)
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	}
	rec, ok := checkfields.AsRecord(err)
	if !ok {
		return err
	}
	log.Info("invalid", "input", f.input, "kind", rec.Kind, "path", rec.Path)
	enc := json.NewEncoder(cmd.ErrOrStderr())
	enc.SetIndent("", "  ")
	if err := enc.Encode(middleware.ErrorPayload(rec)); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return &validationFailed{rec: rec}
}
