package datecalc

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

var weekdays = [...]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"}

var weekdaysShort = [...]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"}

var months = [...]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"}

// LongDate renders t as "segunda-feira, 05 de maio de 2025"
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %02d de %s de %d", weekdays[t.Weekday()], t.Day(), months[t.Month()-1], t.Year())
}

// WeekdayName is the capitalized full weekday, e.g. "Segunda-feira"
func WeekdayName(t time.Time) string {
	return capitalize(weekdays[t.Weekday()])
}

// WeekdayShort is the capitalized abbreviation, e.g. "Seg"
func WeekdayShort(t time.Time) string {
	return capitalize(weekdaysShort[t.Weekday()])
}

// MonthName is the lowercase Portuguese month name
func MonthName(m time.Month) string {
	return months[m-1]
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
