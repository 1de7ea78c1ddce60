// Package cli holds the pieces shared by list commands: flag binding and
// the search, filter, sort, paginate and export pipeline.
package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hostkiosk/kioskctl/internal/api"
	"github.com/hostkiosk/kioskctl/internal/config"
	"github.com/hostkiosk/kioskctl/internal/export"
	"github.com/hostkiosk/kioskctl/internal/format"
	"github.com/hostkiosk/kioskctl/internal/listing"
	"github.com/hostkiosk/kioskctl/internal/models"
	"github.com/hostkiosk/kioskctl/internal/notify"
)

// ListFlags are the flags every list command accepts
type ListFlags struct {
	Search   string
	Filters  []string
	Sort     string
	Page     int
	PageSize int
	Export   string
}

// AddListFlags registers the list flags on cmd
func AddListFlags(cmd *cobra.Command) *ListFlags {
	f := &ListFlags{}
	cmd.Flags().StringVarP(&f.Search, "search", "s", "", "free-text search")
	cmd.Flags().StringArrayVarP(&f.Filters, "filter", "f", nil, "filter as key=v1,v2 (repeatable)")
	cmd.Flags().StringVar(&f.Sort, "sort", "", "sort as field[:asc|desc]")
	cmd.Flags().IntVar(&f.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&f.PageSize, "page-size", 0, "rows per page (default from format.page_size)")
	cmd.Flags().StringVar(&f.Export, "export", "", "also write every matching row to this CSV file")
	return f
}

// Options returns the server-side part of the query
func (f *ListFlags) Options() (api.ListOptions, error) {
	filters, err := listing.ParseFilters(f.Filters)
	if err != nil {
		return api.ListOptions{}, err
	}
	return api.ListOptions{Search: f.Search, Filters: filters}, nil
}

// View builds a listing view over rows with the flag state applied
func View[T models.Searchable](f *ListFlags, rows []T) (*listing.View[T], error) {
	pageSize := f.PageSize
	if pageSize == 0 {
		pageSize = config.Get().Format.PageSize
	}
	view := listing.NewView(rows, models.SearchFieldsOf[T](), pageSize)

	filters, err := listing.ParseFilters(f.Filters)
	if err != nil {
		return nil, err
	}
	view.SetSearch(f.Search)
	view.SetFilters(filters)

	if f.Sort != "" {
		spec, err := listing.ParseSort(f.Sort)
		if err != nil {
			return nil, err
		}
		view.SetSort(spec)
	}
	view.GoTo(f.Page)
	return view, nil
}

// Render applies the flags to rows, exports when asked and prints the page
func Render[T models.Searchable](f *ListFlags, rows []T, columns []export.Column) error {
	view, err := View(f, rows)
	if err != nil {
		return err
	}

	if f.Export != "" {
		if _, err := Export(f.Export, view.Rows(), columns); err != nil {
			return err
		}
	}

	page := view.Page()
	if page.Clamped {
		notify.Default().Warning("Page out of range", fmt.Sprintf("showing page %d of %d", page.Meta.Page, page.Meta.TotalPages))
	}
	return format.Print(format.FromPage(columns, page))
}

// RenderTo is Render for an explicit writer and format, used by watch mode
func RenderTo[T models.Searchable](w io.Writer, outputFormat string, f *ListFlags, rows []T, columns []export.Column) error {
	view, err := View(f, rows)
	if err != nil {
		return err
	}
	formatter, err := format.NewFormatter(outputFormat, w, config.Get().Format.Colors)
	if err != nil {
		return err
	}
	return formatter.Format(format.FromPage(columns, view.Page()))
}

// Export writes rows to path. A bare file name lands in format.export_dir.
func Export[T models.Record](path string, rows []T, columns []export.Column) (string, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = config.Get().Format.ExportDir
	}
	written, err := export.ExportFile(dir, name, rows, columns)
	if err != nil {
		notify.Default().Error("Export failed", err.Error())
		return "", err
	}
	notify.Default().Success("Export complete", fmt.Sprintf("%d rows written to %s", len(rows), written))
	return written, nil
}

// Fetch lists a resource with the server-side part of the flags applied
func Fetch[T models.Searchable](ctx context.Context, client *api.Client, resource string, f *ListFlags) ([]T, error) {
	opts, err := f.Options()
	if err != nil {
		return nil, err
	}
	rows, err := api.ListAs[T](ctx, client, resource, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", resource, err)
	}
	return rows, nil
}

// AddExportFlags registers the search, filter and sort flags used by
// export commands, which always write every matching row
func AddExportFlags(cmd *cobra.Command) *ListFlags {
	f := &ListFlags{Page: 1}
	cmd.Flags().StringVarP(&f.Search, "search", "s", "", "free-text search")
	cmd.Flags().StringArrayVarP(&f.Filters, "filter", "f", nil, "filter as key=v1,v2 (repeatable)")
	cmd.Flags().StringVar(&f.Sort, "sort", "", "sort as field[:asc|desc]")
	return f
}
