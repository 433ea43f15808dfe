// Command salesctl inspects a backup document offline: it validates the file and prints
// the same revenue figures the dashboard shows.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"livesales/internal/domain/analytics"
	"livesales/internal/domain/service"
	"livesales/internal/errors"
	"livesales/internal/infra/backup"
	"livesales/internal/util"
)

const usage = `usage: salesctl <command> [flags]

commands:
  validate -file FILE                    check that FILE is a readable backup
  summary  -file FILE [-period P] [-tz TZ] [-from DATE -to DATE]
                                         revenue figures for a period
  top      -file FILE [-limit N]         best selling products
`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(os.Args[1:], os.Stdout, time.Now()); err != nil {
		logger.Error("salesctl failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, now time.Time) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)

		return errors.New("missing command")
	}

	switch args[0] {
	case "validate":
		return runValidate(args[1:], out)
	case "summary":
		return runSummary(args[1:], out, now)
	case "top":
		return runTop(args[1:], out)
	case "help", "-h", "--help":
		fmt.Fprint(out, usage)

		return nil
	default:
		fmt.Fprint(out, usage)

		return errors.Errorf("unknown command %q", args[0])
	}
}

func runValidate(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(out)
	file := fs.String("file", "", "backup document to read")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := readFile(*file)
	if err != nil {
		return err
	}
	decoded, err := backup.NewCodec("").Deserialize(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "file: %s, sha256 %s\n", util.FormatBytes(int64(len(data))), util.Checksum(data))
	fmt.Fprintf(out, "ok: %d orders, %d catalogs, %d platforms, exported %s\n",
		len(decoded.Orders), len(decoded.Catalogs), len(decoded.Platforms),
		decoded.ExportedAt.UTC().Format(time.RFC3339))
	if decoded.AppVersion != "" {
		fmt.Fprintf(out, "app version: %s\n", decoded.AppVersion)
	}

	return nil
}

func runSummary(args []string, out io.Writer, now time.Time) error {
	fs := flag.NewFlagSet("summary", flag.ContinueOnError)
	fs.SetOutput(out)
	file := fs.String("file", "", "backup document to read")
	periodFlag := fs.String("period", "all", "today, week, month, custom or all")
	tz := fs.String("tz", "UTC", "IANA timezone for calendar days")
	from := fs.String("from", "", "first day of a custom period (YYYY-MM-DD)")
	to := fs.String("to", "", "last day of a custom period (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	loc, err := time.LoadLocation(*tz)
	if err != nil {
		return errors.Wrapf(err, "invalid timezone %q", *tz)
	}
	period, err := analytics.ParsePeriod(*periodFlag)
	if err != nil {
		return err
	}

	var custom *analytics.DateRange
	if *from != "" || *to != "" {
		custom, err = parseRange(*from, *to, loc)
		if err != nil {
			return err
		}
		if *periodFlag == "all" {
			period = analytics.PeriodCustom
		}
	}

	decoded, err := readBackup(*file)
	if err != nil {
		return err
	}

	d := analytics.Summarize(decoded.Orders, analytics.Query{
		Period: period,
		Range:  custom,
		Now:    now.In(loc),
	})

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "period\t%s\n", d.Period)
	fmt.Fprintf(w, "revenue\t%s\n", d.Summary.Revenue.StringFixed(2))
	fmt.Fprintf(w, "orders\t%d\n", d.Summary.OrderCount)
	fmt.Fprintf(w, "average order\t%s\n", d.Summary.AverageOrderValue.StringFixed(2))
	fmt.Fprintf(w, "outstanding\t%s\n", d.Outstanding.StringFixed(2))
	fmt.Fprintf(w, "fulfilled\t%d\n", d.Fulfilled)
	fmt.Fprintf(w, "unfulfilled\t%d\n", d.Unfulfilled)
	for _, p := range d.Platforms {
		fmt.Fprintf(w, "platform %s\t%s (%d)\n", p.Platform.Name, p.Revenue.StringFixed(2), p.OrderCount)
	}
	for _, s := range d.Sources {
		fmt.Fprintf(w, "source %s\t%d (%.1f%%)\n", s.Source, s.Count, s.Percent)
	}
	if d.BestDay != nil {
		fmt.Fprintf(w, "best day this month\t%s %s\n", d.BestDay.Day.Format(time.DateOnly), d.BestDay.Revenue.StringFixed(2))
	}

	return w.Flush()
}

func runTop(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("top", flag.ContinueOnError)
	fs.SetOutput(out)
	file := fs.String("file", "", "backup document to read")
	limit := fs.Int("limit", analytics.DefaultTopProductsLimit, "number of products to list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	decoded, err := readBackup(*file)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tPRODUCT\tQTY\tREVENUE")
	for i, p := range analytics.TopProducts(decoded.Orders, *limit) {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", i+1, p.ProductName, p.QuantitySold, p.Revenue.StringFixed(2))
	}

	return w.Flush()
}

func readFile(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("-file is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	return data, nil
}

func readBackup(path string) (*service.DecodedBackup, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	return backup.NewCodec("").Deserialize(data)
}

func parseRange(from, to string, loc *time.Location) (*analytics.DateRange, error) {
	if from == "" || to == "" {
		return nil, errors.New("-from and -to must be given together")
	}

	start, err := time.ParseInLocation(time.DateOnly, from, loc)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid -from %q", from)
	}
	end, err := time.ParseInLocation(time.DateOnly, to, loc)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid -to %q", to)
	}
	if start.After(end) {
		return nil, errors.New("-from must not be after -to")
	}

	return &analytics.DateRange{Start: start, End: end.AddDate(0, 0, 1).Add(-time.Nanosecond)}, nil
}
