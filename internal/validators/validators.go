// Package validators holds the pure input checks used by the step
// handlers. Every check returns a Result whose Reason is shown to the
// user verbatim in the re-prompt, so the strings stay in the bot's voice.
package validators

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Result is the outcome of a validation check.
type Result struct {
	Valid  bool
	Reason string
}

func ok() Result {
	return Result{Valid: true}
}

func fail(reason string) Result {
	return Result{Valid: false, Reason: reason}
}

const maxMessageLength = 500

var (
	dateRegex = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	nameRegex = regexp.MustCompile(`^[A-Za-zÀ-ÿ\s']+$`)
)

// ValidateMessage checks free-text input: non-empty after trimming and at
// most 500 characters.
func ValidateMessage(message string) Result {
	clean := strings.TrimSpace(message)
	if clean == "" {
		return fail("❌ Mensagem vazia.")
	}
	if len([]rune(clean)) > maxMessageLength {
		return fail("❌ Mensagem muito longa (máx. 500 caracteres).")
	}
	return ok()
}

// ValidateName checks a full name: at least 4 characters, only letters,
// accented letters, spaces and apostrophes, and at least two words.
func ValidateName(name string) Result {
	if result := ValidateMessage(name); !result.Valid {
		return fail("❌ Nome vazio ou inválido.")
	}

	clean := strings.TrimSpace(name)
	if len([]rune(clean)) < 4 {
		return fail("❌ Nome muito curto. Mínimo 4 letras.")
	}
	if !nameRegex.MatchString(clean) {
		return fail("❌ Use apenas letras, espaços e apóstrofos.")
	}
	if len(strings.Fields(clean)) < 2 {
		return fail("❌ Digite nome e sobrenome completos.")
	}
	return ok()
}

// ValidateDate checks a DD/MM/YYYY date between 1900 and the current year
// that exists on the calendar.
func ValidateDate(dateStr string) Result {
	return validateDateAt(dateStr, time.Now())
}

func validateDateAt(dateStr string, now time.Time) Result {
	clean := strings.TrimSpace(dateStr)
	if clean == "" {
		return fail("❌ Data vazia ou inválida.")
	}

	match := dateRegex.FindStringSubmatch(clean)
	if match == nil {
		return fail("❌ Use DD/MM/AAAA (ex: 15/08/1990)")
	}

	day, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	year, _ := strconv.Atoi(match[3])

	if month < 1 || month > 12 {
		return fail("❌ Mês inválido (01-12).")
	}
	if day < 1 || day > 31 {
		return fail("❌ Dia inválido (01-31).")
	}
	if year < 1900 || year > now.Year() {
		return fail("❌ Ano inválido (1900-ano atual).")
	}

	// time.Date normalizes overflow (31/02 becomes 02/03 or 03/03), so a
	// round-trip mismatch means the date does not exist.
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return fail("❌ Data inexistente.")
	}
	return ok()
}

// ValidateFutureDate checks a DD/MM/YYYY date from today up to three
// months ahead (date-only comparison, boundaries inclusive).
func ValidateFutureDate(dateStr string) Result {
	return validateFutureDateAt(dateStr, time.Now())
}

func validateFutureDateAt(dateStr string, now time.Time) Result {
	// The 3-month window means the year may be next year; validate the
	// calendar shape against a horizon that admits it.
	if result := validateDateAt(dateStr, now.AddDate(0, 3, 0)); !result.Valid {
		return result
	}

	clean := strings.TrimSpace(dateStr)
	match := dateRegex.FindStringSubmatch(clean)
	day, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	year, _ := strconv.Atoi(match[3])

	input := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if input.Before(today) {
		return fail("❌ Data passada. Use uma data futura.")
	}
	if input.After(today.AddDate(0, 3, 0)) {
		return fail("❌ Data muito distante (máx. 3 meses).")
	}
	return ok()
}

// ValidateMenuOption checks that the input is an integer within the
// inclusive [min, max] range.
func ValidateMenuOption(option string, min, max int) Result {
	num, err := strconv.Atoi(strings.TrimSpace(option))
	if err != nil {
		return fail(fmt.Sprintf("❌ Opção inválida. Digite um número de %d a %d.", min, max))
	}
	if num < min || num > max {
		return fail(fmt.Sprintf("❌ Opção fora do menu. Digite um número de %d a %d.", min, max))
	}
	return ok()
}
