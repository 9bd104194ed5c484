package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

func validateOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case "", constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedOutputFormat, format)
	}
}

// writeOutput renders data in the selected output format. renderTable is
// only called for the table format.
func writeOutput(cmd *cobra.Command, data interface{}, renderTable func(w io.Writer) error) error {
	w := cmd.OutOrStdout()

	switch strings.ToLower(viper.GetString(keyOutput)) {
	case constants.FormatJSON:
		return StandardJSONRenderer(w, data)
	case constants.FormatYAML:
		return StandardYAMLRenderer(w, data)
	default:
		return renderTable(w)
	}
}

// StandardJSONRenderer writes data as indented JSON.
func StandardJSONRenderer(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", strings.Repeat(" ", constants.IndentSize))

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML.
func StandardYAMLRenderer(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(constants.IndentSize)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// renderProperties renders a two column Property/Value table.
func renderProperties(w io.Writer, title string, rows [][]string) error {
	if title != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", title)
	}

	return renderTable(w, []string{"Property", "Value"}, rows)
}

// renderList renders rows under header, or empty when there are none.
func renderList(w io.Writer, header []string, rows [][]string, empty string) error {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, empty)

		return nil
	}

	return renderTable(w, header, rows)
}

func renderTable(w io.Writer, header []string, rows [][]string) error {
	columns := make([]interface{}, len(header))
	for i, column := range header {
		columns[i] = column
	}

	table := tablewriter.NewWriter(w)
	table.Header(columns...)

	for _, row := range rows {
		err := table.Append(row)
		if err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// writeAction reports a call whose response carries only metadata.
func writeAction(cmd *cobra.Command, resp interface{ Meta() *mgmt.ResponseMeta }, action, resource, id string) error {
	return writeOutput(cmd, resp, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s %s %s (request id: %s)\n",
			cases.Title(language.English).String(action), resource, id, orNotAvailable(resp.Meta().RequestID))

		return err
	})
}

func orNotAvailable(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func formatBool(value bool) string {
	return strconv.FormatBool(value)
}

func formatIntPtr(value *int) string {
	if value == nil {
		return constants.NotAvailable
	}

	return strconv.Itoa(*value)
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return constants.None
	}

	return strings.Join(values, ", ")
}
