package template

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var dateTemplateNames = map[string]bool{
	"birth date": true, "birth date and age": true,
	"death date and age": true, "date": true,
	"start date": true, "end date": true,
}

func isDateTemplateName(name string) bool {
	return dateTemplateNames[name]
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// expandDateTemplate implements the date and age template family:
// df=y/yes formats "D Month YYYY", anything else "Month D, YYYY"; the
// "and age" variants append the computed age.
func expandDateTemplate(name string, p Params) string {
	y, _ := strconv.Atoi(p.Pos(1))
	m, _ := strconv.Atoi(p.Pos(2))
	d, _ := strconv.Atoi(p.Pos(3))
	dateStr := formatYMD(y, m, d, p.Get("df", ""))

	if !strings.HasSuffix(name, "and age") {
		return dateStr
	}

	age := yearsBetween(y, m, d, time.Now())
	return fmt.Sprintf("%s (age %d)", dateStr, age)
}

func formatYMD(y, m, d int, df string) string {
	month := ""
	if m >= 1 && m <= 12 {
		month = monthNames[m-1]
	}
	dmy := df == "y" || df == "yes" || df == "dmy"
	switch {
	case month == "" || y == 0:
		return strings.TrimSpace(fmt.Sprintf("%s %d", month, y))
	case dmy:
		return fmt.Sprintf("%d %s %d", d, month, y)
	default:
		return fmt.Sprintf("%s %d, %d", month, d, y)
	}
}

// yearsBetween computes a birthday-aware age in whole years, adjusting
// down by one when the reference date falls before this year's
// birthday.
func yearsBetween(birthYear, birthMonth, birthDay int, ref time.Time) int {
	age := ref.Year() - birthYear
	refMonth := int(ref.Month())
	if refMonth < birthMonth || (refMonth == birthMonth && ref.Day() < birthDay) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}

var unitConversions = map[string]struct {
	target string
	factor float64
}{
	"mi":  {"km", 1.60934},
	"km":  {"mi", 0.621371},
	"ft":  {"m", 0.3048},
	"m":   {"ft", 3.28084},
	"lb":  {"kg", 0.453592},
	"kg":  {"lb", 2.20462},
	"mph": {"km/h", 1.60934},
}

// convert implements the `{{convert|A|unit}}` family: "A unit (B unit2)",
// with a direct Celsius/Fahrenheit special case.
func convert(p Params) string {
	amountStr := p.Pos(1)
	unit := p.Pos(2)
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return strings.Join([]string{amountStr, unit}, " ")
	}

	if unit == "C" || unit == "F" {
		return convertTemperature(amount, unit)
	}

	conv, ok := unitConversions[unit]
	if !ok {
		return fmt.Sprintf("%s %s", amountStr, unit)
	}
	converted := amount * conv.factor
	return fmt.Sprintf("%s %s (%s %s)", formatNumber(amount), unit, formatNumber(roundTo(converted, 2)), conv.target)
}

func convertTemperature(amount float64, unit string) string {
	if unit == "C" {
		f := amount*9/5 + 32
		return fmt.Sprintf("%s°C (%s°F)", formatNumber(amount), formatNumber(roundTo(f, 1)))
	}
	c := (amount - 32) * 5 / 9
	return fmt.Sprintf("%s°F (%s°C)", formatNumber(amount), formatNumber(roundTo(c, 1)))
}

func roundTo(v float64, places int) float64 {
	scale := 1.0
	for i := 0; i < places; i++ {
		scale *= 10
	}
	return float64(int64(v*scale+0.5)) / scale
}
