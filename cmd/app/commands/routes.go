package commands

import (
	"fmt"
	"io"

	apphttp "github.com/allisson/authgate/internal/http"
)

// RunRoutes prints the API operations with their parameter declarations, after the
// authentication token has been declared on each. Text format prints one line per
// parameter; JSON format includes the parameter schema of each operation.
func RunRoutes(writer io.Writer, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	operations := apphttp.Operations()

	if format == FormatJSON {
		return writeJSON(writer, apphttp.DescribeOperations(operations))
	}

	for _, op := range operations {
		_, _ = fmt.Fprintf(writer, "%s %s\n", op.Method, op.Path)
		for _, p := range op.Params {
			_, _ = fmt.Fprintf(writer, "  %s (%s, required=%t): %s\n", p.Name, p.Type, p.Required, p.Description)
		}
	}
	return nil
}
