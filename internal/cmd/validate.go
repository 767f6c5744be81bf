package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dosanma1/packforge/internal/config"
	"github.com/dosanma1/packforge/internal/project"
	"github.com/dosanma1/packforge/internal/ui"
	"github.com/dosanma1/packforge/pkg/webpack"
)

var validateCmd = &cobra.Command{
	Use:   "validate [project-file...]",
	Short: "Validate project files",
	Long: `Validates project files against the packforge JSON Schema, then builds each
configuration to check that all entries share one source alias.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	p := printer(cmd)

	files, err := projectFiles(args)
	if err != nil {
		return err
	}

	var failed int
	for _, file := range files {
		if !validateFile(p, file) {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("validation failed for %d of %d project files", failed, len(files))
	}
	return nil
}

// validateFile reports the problems of one project file and returns whether
// it is valid.
func validateFile(p *ui.Printer, file string) bool {
	p.Info("Validating %s...", relPath(file))

	_, err := buildProject(file, config.Overrides{})
	if err == nil {
		p.Success("%s is valid!", relPath(file))
		return true
	}

	var schemaErr *project.SchemaError
	var aliasErr *webpack.AmbiguousAliasError
	switch {
	case errors.As(err, &schemaErr):
		p.Error("Validation failed with the following errors:")
		for i, problem := range schemaErr.Problems {
			fmt.Fprintf(p.Err(), "%d. %s\n", i+1, problem.Description)
			fmt.Fprintf(p.Err(), "   Field: %s\n", problem.Field)
			fmt.Fprintf(p.Err(), "   Type: %s\n\n", problem.Type)
		}
	case errors.As(err, &aliasErr):
		p.Error("Entries do not share a source directory, so alias %q is ambiguous:", webpack.AliasPrefix)
		for _, dir := range aliasErr.Dirs {
			fmt.Fprintf(p.Err(), "   - %s\n", relPath(dir))
		}
		fmt.Fprintln(p.Err(), "   Move the entry modules into one directory.")
	default:
		p.Error("%v", err)
	}
	return false
}
