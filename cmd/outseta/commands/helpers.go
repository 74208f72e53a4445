package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/fivetwenty-io/outseta-client/internal/constants"
	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	defaultJSONIndent = 2
	dateFormat        = "2006-01-02"
)

// column renders one table column for items of type T.
type column[T any] struct {
	Header string
	Value  func(T) string
}

// outputFormat returns the validated --output value.
func outputFormat() (string, error) {
	format := strings.ToLower(viper.GetString("output"))

	switch format {
	case "", constants.FormatTable:
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidFormat, format)
	}
}

// StandardJSONRenderer writes data as indented JSON.
func StandardJSONRenderer[T any](out io.Writer, data T) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML.
func StandardYAMLRenderer[T any](out io.Writer, data T) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(defaultJSONIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// renderItems writes items in the selected output format.
func renderItems[T any](out io.Writer, items []T, columns []column[T], metadata outseta.Metadata, all bool) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatJSON:
		return StandardJSONRenderer(out, items)
	case constants.FormatYAML:
		return StandardYAMLRenderer(out, items)
	}

	if len(items) == 0 {
		_, _ = io.WriteString(out, "No results found\n")

		return nil
	}

	table := tablewriter.NewWriter(out)
	table.Header(headers(columns)...)

	for _, item := range items {
		row := make([]string, 0, len(columns))
		for _, col := range columns {
			row = append(row, col.Value(item))
		}

		_ = table.Append(row)
	}

	err = table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if !all && metadata.Total > len(items) {
		_, _ = fmt.Fprintf(out, "\nShowing %d of %d. Use --all to fetch every page.\n", len(items), metadata.Total)
	}

	return nil
}

// renderDetails writes a single item as a property table or as JSON/YAML.
func renderDetails[T any](out io.Writer, item *T, rows func(*T) [][]string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatJSON:
		return StandardJSONRenderer(out, item)
	case constants.FormatYAML:
		return StandardYAMLRenderer(out, item)
	}

	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")

	for _, row := range rows(item) {
		_ = table.Append(row)
	}

	err = table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func headers[T any](columns []column[T]) []any {
	out := make([]any, 0, len(columns))
	for _, col := range columns {
		out = append(out, col.Header)
	}

	return out
}

// enumLabel turns an enum name such as "TrialExpired" into "Trial Expired".
func enumLabel(value fmt.Stringer) string {
	if value == nil {
		return constants.NotAvailable
	}

	name := value.String()

	var builder strings.Builder

	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			builder.WriteRune(' ')
		}

		builder.WriteRune(r)
	}

	return cases.Title(language.English).String(strings.ToLower(builder.String()))
}

// parseEnum resolves a flag value to one of candidates by number or by name,
// ignoring case, spaces, dashes and underscores.
func parseEnum[K interface {
	~int
	fmt.Stringer
}](flag, value string, candidates ...K) (K, error) {
	if number, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
		return K(number), nil
	}

	wanted := normalizeName(value)
	for _, candidate := range candidates {
		if normalizeName(candidate.String()) == wanted {
			return candidate, nil
		}
	}

	return 0, fmt.Errorf("%w for --%s: %q", constants.ErrInvalidEnumName, flag, value)
}

func normalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		default:
			return unicode.ToLower(r)
		}
	}, name)
}

func formatTimestamp(ts *outseta.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return constants.NotAvailable
	}

	return ts.Format(dateFormat)
}

func formatInt(value *int) string {
	if value == nil {
		return constants.NotAvailable
	}

	return strconv.Itoa(*value)
}

func formatFloat(value *float64) string {
	if value == nil {
		return constants.NotAvailable
	}

	return strconv.FormatFloat(*value, 'f', 2, 64)
}

func formatBool(value *bool) string {
	if value == nil {
		return constants.NotAvailable
	}

	return strconv.FormatBool(*value)
}

func orNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

// listFlags holds the pagination and filter flags shared by list commands.
type listFlags struct {
	page     int
	pageSize int
	all      bool
	orderBy  string
	desc     bool
	filter   string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 0, "zero-based page number")
	cmd.Flags().IntVar(&f.pageSize, "page-size", constants.DefaultPageSize, "results per page (max 25)")
	cmd.Flags().BoolVar(&f.all, "all", false, "fetch all pages")
	cmd.Flags().StringVar(&f.orderBy, "order-by", "", "field to sort by")
	cmd.Flags().BoolVar(&f.desc, "desc", false, "sort descending")
	cmd.Flags().StringVarP(&f.filter, "filter", "f", "", "filter expression evaluated against each item")
}

// request builds the first page request, letting extra add endpoint filters.
func (f *listFlags) request(extra func(*outseta.PageRequestBuilder)) (*outseta.PageRequest, error) {
	builder := outseta.NewPageRequest().Page(f.page).PageSize(f.pageSize)

	if f.orderBy != "" {
		builder.OrderBy(f.orderBy)

		if f.desc {
			builder.Sort(outseta.SortDesc)
		}
	}

	if extra != nil {
		extra(builder)
	}

	request, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid paging flags: %w", err)
	}

	return request, nil
}

type listFunc[T any] func(ctx context.Context, page *outseta.PageRequest) (*outseta.ItemPage[T], error)

// collectPages fetches the first page and, when all is set, follows
// NextPageRequest until the reported total has been read.
func collectPages[T any](ctx context.Context, list listFunc[T], first *outseta.PageRequest, all bool) ([]T, outseta.Metadata, error) {
	page, err := list(ctx, first)
	if err != nil {
		return nil, outseta.Metadata{}, err
	}

	items := page.Items
	metadata := page.Metadata
	request := first

	for fetched := 1; all && len(page.Items) > 0 && page.HasMore(len(items)) && fetched < constants.MaxAllPages; fetched++ {
		request = request.NextPageRequest()

		page, err = list(ctx, request)
		if err != nil {
			return nil, outseta.Metadata{}, fmt.Errorf("failed to fetch page %d: %w", fetched+1, err)
		}

		items = append(items, page.Items...)
	}

	return items, metadata, nil
}

// runList is the shared body of every list command.
func runList[T any](cmd *cobra.Command, flags *listFlags, list listFunc[T], columns []column[T], extra func(*outseta.PageRequestBuilder)) error {
	filter, err := compileFilter(flags.filter)
	if err != nil {
		return err
	}

	request, err := flags.request(extra)
	if err != nil {
		return err
	}

	items, metadata, err := collectPages(cmd.Context(), list, request, flags.all)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", cmd.Parent().Name(), err)
	}

	items, err = applyFilter(filter, items)
	if err != nil {
		return err
	}

	return renderItems(cmd.OutOrStdout(), items, columns, metadata, flags.all || filter != nil)
}

// newListCommand builds a "list" subcommand around list.
func newListCommand[T any](short string, list func() (listFunc[T], error), columns []column[T]) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fn, err := list()
			if err != nil {
				return err
			}

			return runList(cmd, flags, fn, columns, nil)
		},
	}

	flags.register(cmd)

	return cmd
}

// newGetCommand builds a "get ID" subcommand around get.
func newGetCommand[T any](use, short string, get func() (func(context.Context, string) (*T, error), error), rows func(*T) [][]string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := get()
			if err != nil {
				return err
			}

			item, err := fn(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get %s: %w", args[0], err)
			}

			return renderDetails(cmd.OutOrStdout(), item, rows)
		},
	}
}

// newDeleteCommand builds a "delete ID" subcommand around remove.
func newDeleteCommand(short string, remove func() (func(context.Context, string) error, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := remove()
			if err != nil {
				return err
			}

			err = fn(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete %s: %w", args[0], err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])

			return nil
		},
	}
}

func entityRows(entity outseta.Entity) [][]string {
	return [][]string{
		{"UID", orNA(entity.UID)},
		{"Created", formatTimestamp(entity.Created)},
		{"Updated", formatTimestamp(entity.Updated)},
	}
}

// enumValue labels an optional enum field.
func enumValue[K fmt.Stringer](value *K) string {
	if value == nil {
		return constants.NotAvailable
	}

	return enumLabel(*value)
}
