package dataset

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/goodsign/monday"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

const (
	// DefaultLocale is used when no locale is configured.
	DefaultLocale = "nl_NL"
	// DefaultDateLayout is used by WithDateColumns when the layout is empty.
	DefaultDateLayout = "2 January 2006"
)

// MissingColumnPolicy controls what FormatNumbers does when a designated
// column is absent from the dataset.
type MissingColumnPolicy int

const (
	// MissingSkip ignores designated columns that do not exist.
	MissingSkip MissingColumnPolicy = iota
	// MissingFail returns ErrColumnNotFound for designated columns that do not exist.
	MissingFail
)

// numberFormat holds the separators and currency layout of one locale.
type numberFormat struct {
	decimal       string
	group         string
	symbolAfter   bool
	symbolSpacing string
	monthFirst    bool
}

var (
	supportedLocales = []language.Tag{
		language.MustParse("nl-NL"),
		language.MustParse("en-US"),
		language.MustParse("en-GB"),
		language.MustParse("de-DE"),
		language.MustParse("fr-FR"),
		language.MustParse("nl-BE"),
	}
	localeFormats = []numberFormat{
		{decimal: ",", group: ".", symbolSpacing: " "},
		{decimal: ".", group: ",", monthFirst: true},
		{decimal: ".", group: ","},
		{decimal: ",", group: ".", symbolAfter: true, symbolSpacing: " "},
		{decimal: ",", group: " ", symbolAfter: true, symbolSpacing: " "},
		{decimal: ",", group: ".", symbolSpacing: " "},
	}
	dateLocales = []monday.Locale{
		monday.LocaleNlNL,
		monday.LocaleEnUS,
		monday.LocaleEnGB,
		monday.LocaleDeDE,
		monday.LocaleFrFR,
		monday.LocaleNlBE,
	}
	localeMatcher = language.NewMatcher(supportedLocales)

	currencySymbols = map[string]string{
		"EUR": "€",
		"USD": "$",
		"GBP": "£",
		"JPY": "¥",
		"CHF": "CHF",
	}
)

// Locale resolves locale identifiers such as "nl_NL" or "en-US" into the
// formatting rules used by FormatNumbers.
type Locale struct {
	tag      language.Tag
	format   numberFormat
	dates    monday.Locale
	currency string
	symbol   string
}

// ParseLocale resolves a POSIX ("nl_NL") or BCP 47 ("nl-NL") locale identifier.
func ParseLocale(id string) (Locale, error) {
	tag, err := language.Parse(strings.ReplaceAll(id, "_", "-"))
	if err != nil {
		return Locale{}, fmt.Errorf("%w: %q: %v", ErrUnknownLocale, id, err)
	}

	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return Locale{}, fmt.Errorf("%w: %q", ErrUnknownLocale, id)
	}

	matched := supportedLocales[idx]
	unit, _ := currency.FromTag(matched)
	code := unit.String()
	symbol, ok := currencySymbols[code]
	if !ok {
		symbol = code
	}

	return Locale{
		tag:      matched,
		format:   localeFormats[idx],
		dates:    dateLocales[idx],
		currency: code,
		symbol:   symbol,
	}, nil
}

// Tag returns the matched language tag.
func (l Locale) Tag() language.Tag { return l.tag }

// Currency returns the ISO 4217 code of the locale's currency.
func (l Locale) Currency() string { return l.currency }

// FormatCurrency formats an amount with two decimals and the currency symbol.
func (l Locale) FormatCurrency(d decimal.Decimal) string {
	d = d.Round(2)
	sign, digits := "", l.digits(d.Abs().StringFixed(2))
	if d.IsNegative() {
		sign = "-"
	}
	if l.format.symbolAfter {
		return sign + digits + l.format.symbolSpacing + l.symbol
	}
	return sign + l.symbol + l.format.symbolSpacing + digits
}

// FormatNumber formats a number with at most two decimals and locale separators.
func (l Locale) FormatNumber(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + l.digits(d.Abs().String())
}

// FormatDate formats t with a Go layout, translating month and day names.
func (l Locale) FormatDate(t time.Time, layout string) string {
	return monday.Format(t, layout, l.dates)
}

// ParseDate reads a date written in any common notation. Ambiguous
// numeric dates such as "03/05/2024" follow the locale's day/month order.
func (l Locale) ParseDate(s string) (time.Time, error) {
	return dateparse.ParseIn(strings.TrimSpace(s), time.UTC, dateparse.PreferMonthFirst(l.format.monthFirst))
}

// digits rewrites a plain "1234.5" string with the locale separators.
func (l Locale) digits(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(l.format.group)
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteString(l.format.decimal)
		b.WriteString(frac)
	}
	return b.String()
}

type formatOptions struct {
	currencyColumns []string
	numberColumns   []string
	dateColumns     []string
	dateLayouts     map[string]string
	locale          string
	missing         MissingColumnPolicy
}

// FormatOption configures FormatNumbers.
type FormatOption func(*formatOptions)

// WithCurrencyColumns designates columns rendered as currency amounts.
func WithCurrencyColumns(names ...string) FormatOption {
	return func(o *formatOptions) {
		o.currencyColumns = append(o.currencyColumns, names...)
	}
}

// WithNumberColumns designates columns rendered as plain grouped numbers.
func WithNumberColumns(names ...string) FormatOption {
	return func(o *formatOptions) {
		o.numberColumns = append(o.numberColumns, names...)
	}
}

// WithDateColumns designates columns holding dates rendered with layout and
// localized month and day names. Cells may be time.Time values or strings
// understood by Locale.ParseDate. An empty layout selects DefaultDateLayout.
// Each call keeps its own layout; a column named again takes the later one.
func WithDateColumns(layout string, names ...string) FormatOption {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return func(o *formatOptions) {
		if o.dateLayouts == nil {
			o.dateLayouts = make(map[string]string, len(names))
		}
		for _, name := range names {
			if _, seen := o.dateLayouts[name]; !seen {
				o.dateColumns = append(o.dateColumns, name)
			}
			o.dateLayouts[name] = layout
		}
	}
}

// WithLocale selects the locale, e.g. "nl_NL" or "en_US".
func WithLocale(id string) FormatOption {
	return func(o *formatOptions) {
		o.locale = id
	}
}

// WithMissingColumns sets the policy for designated columns that are absent.
func WithMissingColumns(p MissingColumnPolicy) FormatOption {
	return func(o *formatOptions) {
		o.missing = p
	}
}

// FormatNumbers returns a copy of ds where the designated columns hold
// locale-formatted strings. Values that cannot be read as numbers or dates,
// including nil, NaN and zero times, are left untouched. ds itself is never
// modified.
func FormatNumbers(ds *Dataset, opts ...FormatOption) (*Dataset, error) {
	o := formatOptions{locale: DefaultLocale}
	for _, opt := range opts {
		opt(&o)
	}

	loc, err := ParseLocale(o.locale)
	if err != nil {
		return nil, err
	}

	out := ds.Clone()
	apply := func(names []string, format func(any) (string, bool)) error {
		for _, name := range names {
			idx, ok := out.index[name]
			if !ok {
				if o.missing == MissingFail {
					return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
				}
				continue
			}
			col := out.values[idx]
			formatted := make([]any, len(col))
			for i, v := range col {
				if text, ok := format(v); ok {
					formatted[i] = text
				} else {
					formatted[i] = v
				}
			}
			out.setColumn(idx, formatted)
		}
		return nil
	}
	numeric := func(f func(decimal.Decimal) string) func(any) (string, bool) {
		return func(v any) (string, bool) {
			d, ok := toDecimal(v)
			if !ok {
				return "", false
			}
			return f(d), true
		}
	}
	dates := func(layout string) func(any) (string, bool) {
		return func(v any) (string, bool) {
			t, ok := toTime(v, loc)
			if !ok {
				return "", false
			}
			return loc.FormatDate(t, layout), true
		}
	}

	if err := apply(o.currencyColumns, numeric(loc.FormatCurrency)); err != nil {
		return nil, err
	}
	if err := apply(o.numberColumns, numeric(loc.FormatNumber)); err != nil {
		return nil, err
	}
	for _, name := range o.dateColumns {
		if err := apply([]string{name}, dates(o.dateLayouts[name])); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int8:
		return decimal.NewFromInt(int64(n)), true
	case int16:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt32(n), true
	case int64:
		return decimal.NewFromInt(n), true
	case uint:
		return fromUint64(uint64(n)), true
	case uint8:
		return fromUint64(uint64(n)), true
	case uint16:
		return fromUint64(uint64(n)), true
	case uint32:
		return fromUint64(uint64(n)), true
	case uint64:
		return fromUint64(n), true
	case float32:
		if math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat32(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(n), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		return d, err == nil
	default:
		return decimal.Decimal{}, false
	}
}

func fromUint64(n uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0)
}

func toTime(v any, loc Locale) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return *t, true
	case string:
		parsed, err := loc.ParseDate(t)
		return parsed, err == nil
	default:
		return time.Time{}, false
	}
}
