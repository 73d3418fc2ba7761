// Package format renders calculator results for display.
//
// Rounding here is cosmetic; calculators always return full precision.
// Results are usually shown with 2 decimals, base and scientific conversions
// with 4 or 8, trailing zeros stripped.
package format

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/goodsign/monday"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultPlaces is the decimal count used when a tool does not specify one.
const DefaultPlaces = 2

// Decimal formats x with at most places decimals, stripping trailing zeros
// and a trailing dot. Negative zero renders as "0".
func Decimal(x float64, places int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	s := strconv.FormatFloat(x, 'f', places, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// Number formats x with locale-specific grouping and decimal separators,
// e.g. 1234567.5 is "1,234,567.5" in en and "1.234.567,5" in de.
func Number(locale string, x float64, places int) string {
	p := message.NewPrinter(tag(locale))
	return p.Sprintf("%v", number.Decimal(x, number.MaxFractionDigits(places)))
}

// Date formats t with a Go layout, translating month and day names for
// locale ("de", "fr_FR").
func Date(t time.Time, layout, locale string) string {
	return monday.Format(t, layout, mondayLocale(locale))
}

// Bytes renders a byte count in IEC units ("1.5 MiB").
func Bytes(n float64) string {
	if n < 0 || math.IsNaN(n) || n > math.MaxUint64 {
		return Decimal(n, DefaultPlaces) + " B"
	}
	return humanize.IBytes(uint64(n))
}

func tag(locale string) language.Tag {
	t, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.English
	}
	return t
}

func mondayLocale(locale string) monday.Locale {
	switch strings.ToLower(strings.ReplaceAll(locale, "-", "_")) {
	case "en_gb":
		return monday.LocaleEnGB
	case "de", "de_de", "de_at", "de_ch":
		return monday.LocaleDeDE
	case "fr", "fr_fr", "fr_be":
		return monday.LocaleFrFR
	case "fr_ca":
		return monday.LocaleFrCA
	case "es", "es_es", "es_mx":
		return monday.LocaleEsES
	case "it", "it_it":
		return monday.LocaleItIT
	case "pt", "pt_pt":
		return monday.LocalePtPT
	case "pt_br":
		return monday.LocalePtBR
	case "nl", "nl_nl":
		return monday.LocaleNlNL
	case "ru", "ru_ru":
		return monday.LocaleRuRU
	case "pl", "pl_pl":
		return monday.LocalePlPL
	case "sv", "sv_se":
		return monday.LocaleSvSE
	}
	return monday.LocaleEnUS
}
