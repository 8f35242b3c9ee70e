package validators

import (
	"strconv"
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

const (
	MaxPhoneDigits    = 11
	BirthdayDigits    = 4
	MaxNameLength     = 120
	MaxServiceNameLen = 80
)

// Name trims and requires a non-empty value.
func Name(s string, code string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", httperr.Validation(code, "nome é obrigatório")
	}
	if len([]rune(s)) > MaxNameLength {
		return "", httperr.Validation(code, "nome muito longo")
	}
	return s, nil
}

// Phone keeps digits only; up to 11 (DDD + 9 digits).
func Phone(s string) (string, error) {
	d := calendar.Digits(s)
	if len(d) > MaxPhoneDigits {
		return "", httperr.Validation("invalid_phone", "telefone deve ter no máximo 11 dígitos")
	}
	return d, nil
}

// Birthday keeps up to four DDMM digits. A complete value must be a
// plausible day and month.
func Birthday(s string) (string, error) {
	d := calendar.Digits(s)
	if len(d) > BirthdayDigits {
		return "", httperr.Validation("invalid_birthday", "aniversário deve estar no formato DD/MM")
	}
	if len(d) == BirthdayDigits {
		day, _ := strconv.Atoi(d[:2])
		month, _ := strconv.Atoi(d[2:])
		if day < 1 || day > 31 || month < 1 || month > 12 {
			return "", httperr.Validation("invalid_birthday", "aniversário inválido")
		}
	}
	return d, nil
}
