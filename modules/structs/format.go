// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package structs

// NumberFormat is a numeral.js style pattern for numbers
type NumberFormat string

const (
	NumberFormatAuto                          NumberFormat = "auto"
	NumberFormatThousandsWithOptionalDecimals NumberFormat = "0,0.[00]"
	NumberFormatInteger                       NumberFormat = "0"
	NumberFormatOneDecimal                    NumberFormat = "0.0"
	NumberFormatTwoDecimals                   NumberFormat = "0.00"
	NumberFormatThreeDecimals                 NumberFormat = "0.000"
	NumberFormatUpToOneDecimal                NumberFormat = "0.[0]"
	NumberFormatUpToTwoDecimals               NumberFormat = "0.[00]"

	NumberFormatPercentInteger         NumberFormat = "0%"
	NumberFormatPercentOneDecimal      NumberFormat = "0.0%"
	NumberFormatPercentTwoDecimals     NumberFormat = "0.00%"
	NumberFormatPercentUpToOneDecimal  NumberFormat = "0.[0]%"
	NumberFormatPercentUpToTwoDecimals NumberFormat = "0.[00]%"

	NumberFormatThousandsSeparator NumberFormat = "0,0"
	NumberFormatOrdinal            NumberFormat = "0o"

	NumberFormatAbbreviated               NumberFormat = "0a"
	NumberFormatAbbreviatedOneDecimal     NumberFormat = "0.[0]a"
	NumberFormatAbbreviatedTwoDecimals    NumberFormat = "0.[00]a"
	NumberFormatAbbreviatedThreeDecimals  NumberFormat = "0.[000] a"
	NumberFormatPlusSign                  NumberFormat = "+0"
	NumberFormatPlusSignPercent           NumberFormat = "+0%"
	NumberFormatCurrencyAbbreviatedPlus   NumberFormat = "+$0.[00]a"
	NumberFormatCurrencyAbbreviated       NumberFormat = "$0.[00]a"
	NumberFormatCurrencyOptionalDecimals  NumberFormat = "$0.[00]"
	NumberFormatZeroPadded                NumberFormat = "0000"
	NumberFormatParenthesesForNegatives   NumberFormat = "(0,0.00)"
	NumberFormatLeadingDecimal            NumberFormat = ".000"
	NumberFormatScientificNotation        NumberFormat = "0,0e+0"
	NumberFormatScientificNotationDecimal NumberFormat = "0.[00]e+0"
	NumberFormatAbsoluteValue             NumberFormat = "|0.0|"
)

var numberFormats = newVocabulary(
	NumberFormatAuto, NumberFormatThousandsWithOptionalDecimals, NumberFormatInteger,
	NumberFormatOneDecimal, NumberFormatTwoDecimals, NumberFormatThreeDecimals,
	NumberFormatUpToOneDecimal, NumberFormatUpToTwoDecimals,
	NumberFormatPercentInteger, NumberFormatPercentOneDecimal, NumberFormatPercentTwoDecimals,
	NumberFormatPercentUpToOneDecimal, NumberFormatPercentUpToTwoDecimals,
	NumberFormatThousandsSeparator, NumberFormatOrdinal,
	NumberFormatAbbreviated, NumberFormatAbbreviatedOneDecimal, NumberFormatAbbreviatedTwoDecimals,
	NumberFormatAbbreviatedThreeDecimals, NumberFormatPlusSign, NumberFormatPlusSignPercent,
	NumberFormatCurrencyAbbreviatedPlus, NumberFormatCurrencyAbbreviated, NumberFormatCurrencyOptionalDecimals,
	NumberFormatZeroPadded, NumberFormatParenthesesForNegatives, NumberFormatLeadingDecimal,
	NumberFormatScientificNotation, NumberFormatScientificNotationDecimal, NumberFormatAbsoluteValue,
)

func NumberFormatValues() []NumberFormat { return numberFormats.values() }
func (f NumberFormat) IsKnown() bool     { return numberFormats.has(f) }
func (f NumberFormat) Wire() any         { return string(f) }

// DateFormat is a moment.js style pattern for dates
type DateFormat string

const (
	DateFormatAuto DateFormat = "auto"

	DateFormatYearFull            DateFormat = "YYYY"
	DateFormatYearTwoDigit        DateFormat = "YY"
	DateFormatYearAbbreviated     DateFormat = "'YY"
	DateFormatYearAbbreviatedLead DateFormat = "YYYY~~'YY"

	DateFormatQuarter              DateFormat = "Q"
	DateFormatYearQuarter          DateFormat = "YYYY [Q]Q"
	DateFormatYearQuarterMultiline DateFormat = "YYYY|[Q]Q"

	DateFormatMonthFull                DateFormat = "MMMM"
	DateFormatMonthAbbreviated         DateFormat = "MMM"
	DateFormatMonthNumberPadded        DateFormat = "MM"
	DateFormatMonthNumber              DateFormat = "M"
	DateFormatMonthAbbreviatedWithYear DateFormat = "MMM 'YY"
	DateFormatYearMonthMultiline       DateFormat = "YYYY|MMM"

	DateFormatWeekOfYearPadded  DateFormat = "ww"
	DateFormatWeekOfYear        DateFormat = "w"
	DateFormatWeekOfYearOrdinal DateFormat = "wo"

	DateFormatDayPadded             DateFormat = "DD"
	DateFormatDay                   DateFormat = "D"
	DateFormatDayOrdinal            DateFormat = "Do"
	DateFormatMonthDayMultiline     DateFormat = "MMM|DD"
	DateFormatMonthDayYearFull      DateFormat = "MMMM D, YYYY"
	DateFormatDayOfWeekFull         DateFormat = "dddd"
	DateFormatDayOfWeekShort        DateFormat = "ddd"
	DateFormatDayOfWeekMin          DateFormat = "dd"
	DateFormatDayOfWeekNumber       DateFormat = "d"
	DateFormatSportSeasonFull       DateFormat = "BB"
	DateFormatSportSeasonShort      DateFormat = "B"
	DateFormatHour24Padded          DateFormat = "HH"
	DateFormatHour24                DateFormat = "H"
	DateFormatHour12Padded          DateFormat = "hh"
	DateFormatHour12                DateFormat = "h"
	DateFormatHour24AltPadded       DateFormat = "kk"
	DateFormatHour24Alt             DateFormat = "k"
	DateFormatMinutePadded          DateFormat = "mm"
	DateFormatMinute                DateFormat = "m"
	DateFormatSecondPadded          DateFormat = "ss"
	DateFormatSecond                DateFormat = "s"
	DateFormatMillisecond           DateFormat = "SSS"
	DateFormatAmPmUpper             DateFormat = "A"
	DateFormatAmPmLower             DateFormat = "a"
	DateFormatTimezoneOffset        DateFormat = "Z"
	DateFormatTimezoneOffsetNoColon DateFormat = "ZZ"
	DateFormatUnixSeconds           DateFormat = "X"
	DateFormatUnixMilliseconds      DateFormat = "x"
	DateFormatLocaleDateShort       DateFormat = "L"
	DateFormatLocaleDateLong        DateFormat = "LL"
	DateFormatLocaleDatetimeShort   DateFormat = "LLL"
	DateFormatLocaleDatetimeLong    DateFormat = "LLLL"
	DateFormatLocaleTime            DateFormat = "LT"
)

var dateFormats = newVocabulary(
	DateFormatAuto,
	DateFormatYearFull, DateFormatYearTwoDigit, DateFormatYearAbbreviated, DateFormatYearAbbreviatedLead,
	DateFormatQuarter, DateFormatYearQuarter, DateFormatYearQuarterMultiline,
	DateFormatMonthFull, DateFormatMonthAbbreviated, DateFormatMonthNumberPadded, DateFormatMonthNumber,
	DateFormatMonthAbbreviatedWithYear, DateFormatYearMonthMultiline,
	DateFormatWeekOfYearPadded, DateFormatWeekOfYear, DateFormatWeekOfYearOrdinal,
	DateFormatDayPadded, DateFormatDay, DateFormatDayOrdinal, DateFormatMonthDayMultiline, DateFormatMonthDayYearFull,
	DateFormatDayOfWeekFull, DateFormatDayOfWeekShort, DateFormatDayOfWeekMin, DateFormatDayOfWeekNumber,
	DateFormatSportSeasonFull, DateFormatSportSeasonShort,
	DateFormatHour24Padded, DateFormatHour24, DateFormatHour12Padded, DateFormatHour12,
	DateFormatHour24AltPadded, DateFormatHour24Alt, DateFormatMinutePadded, DateFormatMinute,
	DateFormatSecondPadded, DateFormatSecond, DateFormatMillisecond, DateFormatAmPmUpper, DateFormatAmPmLower,
	DateFormatTimezoneOffset, DateFormatTimezoneOffsetNoColon, DateFormatUnixSeconds, DateFormatUnixMilliseconds,
	DateFormatLocaleDateShort, DateFormatLocaleDateLong, DateFormatLocaleDatetimeShort,
	DateFormatLocaleDatetimeLong, DateFormatLocaleTime,
)

func DateFormatValues() []DateFormat { return dateFormats.values() }
func (f DateFormat) IsKnown() bool   { return dateFormats.has(f) }
func (f DateFormat) Wire() any       { return string(f) }

// FormatKind tells which vocabulary a Format belongs to
type FormatKind string

const (
	FormatKindNumber FormatKind = "number"
	FormatKindDate   FormatKind = "date"
	FormatKindCustom FormatKind = "custom"
)

// Format is used by fields that accept a number format, a date format or a
// custom pattern. Convert with Format(NumberFormatOneDecimal).
type Format string

// Kind reports the vocabulary the literal belongs to. "auto" is reported as a
// number format.
func (f Format) Kind() FormatKind {
	switch {
	case NumberFormat(f).IsKnown():
		return FormatKindNumber
	case DateFormat(f).IsKnown():
		return FormatKindDate
	}
	return FormatKindCustom
}

func (f Format) IsKnown() bool { return f.Kind() != FormatKindCustom }
func (f Format) Wire() any     { return string(f) }
