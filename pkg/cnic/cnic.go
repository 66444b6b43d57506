// Package cnic нормализация и проверка формата CNIC (XXXXX-XXXXXXX-X)
package cnic

import (
	"regexp"
	"strings"
)

// pattern итоговый формат: 5 цифр, дефис, 7 цифр, дефис, 1 цифра
var pattern = regexp.MustCompile(`^\d{5}-\d{7}-\d{1}$`)

// IsValid проверяет, что строка соответствует формату CNIC
func IsValid(s string) bool {
	return pattern.MatchString(s)
}

// Format нормализует сырой ввод: убирает все нецифровые символы,
// расставляет дефисы после 5-й и 12-й цифры и обрезает до 13 значащих цифр.
// Используется как маска ввода; итоговую строку проверяет IsValid.
func Format(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	if len(d) > 13 {
		d = d[:13]
	}

	switch {
	case len(d) <= 5:
		return d
	case len(d) <= 12:
		return d[:5] + "-" + d[5:]
	default:
		return d[:5] + "-" + d[5:12] + "-" + d[12:]
	}
}
