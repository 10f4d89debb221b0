package cli

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
	"github.com/spf13/cobra"
)

//go:embed schema.cue
var schemaCUE string

// ValidationIssue is one problem found in the configuration document.
type ValidationIssue struct {
	Message string `json:"message"`
}

// validationResult holds validate command output.
type validationResult struct {
	Valid  bool              `json:"valid"`
	Issues []ValidationIssue `json:"issues,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration document against its schema",
		Long: `Check the configuration document for structural problems: wrong field
types, unknown scopes, malformed coordinates. Unknown fields are allowed -
validation is never stricter than loading, which ignores them.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	data, err := os.ReadFile(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read configuration", err)
	}
	formatter.VerboseLog("validating %s (%d bytes)", opts.ConfigPath, len(data))

	issues := validateDocument(opts.ConfigPath, data)
	if len(issues) > 0 {
		if formatter.Format == "json" {
			if err := formatter.Success(validationResult{Valid: false, Issues: issues}); err != nil {
				return err
			}
		} else {
			for _, issue := range issues {
				fmt.Fprintln(cmd.OutOrStdout(), issue.Message)
			}
		}
		return NewExitError(ExitFailure, fmt.Sprintf("%d validation issue(s)", len(issues)))
	}

	if formatter.Format == "json" {
		return formatter.Success(validationResult{Valid: true})
	}
	return formatter.Success("configuration is valid")
}

// validateDocument vets the raw YAML document against the embedded CUE
// schema and returns every issue found.
func validateDocument(filename string, data []byte) []ValidationIssue {
	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return issuesFromError(err)
	}

	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return issuesFromError(err)
	}

	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return issuesFromError(err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Document")).Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return issuesFromError(err)
	}
	return nil
}

// issuesFromError expands a CUE error into one issue per underlying
// problem, so the operator sees every failure in one pass.
func issuesFromError(err error) []ValidationIssue {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return []ValidationIssue{{Message: err.Error()}}
	}
	issues := make([]ValidationIssue, 0, len(errs))
	for _, e := range errs {
		issues = append(issues, ValidationIssue{Message: e.Error()})
	}
	return issues
}
