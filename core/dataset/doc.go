// Package dataset provides the in-memory tabular structure consumed by the
// table renderer and the report summarizer.
//
// A Dataset is an ordered set of uniquely named columns of equal length.
// Cell values are heterogeneous (numbers, strings, times) and are only
// stringified at render time.
//
// # Basic Usage
//
//	ds, err := dataset.New([]string{"name", "amount"},
//		[]any{"alice", 1000},
//		[]any{"bob", 2500},
//	)
//	if err != nil {
//		return err
//	}
//
//	ds.Shape() // dataset.Shape{Rows: 2, Columns: 2}
//
// # Number Formatting
//
// FormatNumbers rewrites designated columns into locale-formatted strings.
// It never mutates its input:
//
//	formatted, err := dataset.FormatNumbers(ds,
//		dataset.WithCurrencyColumns("amount"),
//		dataset.WithLocale("nl_NL"),
//	)
//	// formatted.Column("amount") -> ["€ 1.000,00", "€ 2.500,00"]
//
// Date columns accept time.Time values and date strings; ambiguous numeric
// dates follow the locale's day/month order:
//
//	formatted, err := dataset.FormatNumbers(ds,
//		dataset.WithDateColumns("", "due"),
//		dataset.WithLocale("de_DE"),
//	)
//	// "2024-03-05" -> "5 März 2024"
//
// Designated columns missing from the dataset are skipped by default.
// Use WithMissingColumns(dataset.MissingFail) to turn them into
// ErrColumnNotFound.
//
// # Arrow and Parquet
//
// Query results exported as Arrow record batches or Parquet files can be
// loaded directly. Numbers, decimals and timestamps keep their Go types so
// they can still be localized:
//
//	ds, err := dataset.ReadParquet(ctx, f) // f is an *os.File
//	ds, err = dataset.FromArrowTable(tbl)
package dataset
