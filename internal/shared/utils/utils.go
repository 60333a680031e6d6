// Утилитарные функции общего назначения
package utils

import "strings"

func Ptr[T any](v T) *T {
	return &v
}

// Deref возвращает значение по указателю или zero-value для nil.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// Trimmed обрезает пробелы у всех переданных строк по месту.
func Trimmed(ss ...*string) {
	for _, s := range ss {
		*s = strings.TrimSpace(*s)
	}
}
