package model

import "strings"

// NormalizeISBN strips hyphens and spaces and upper-cases the check digit.
func NormalizeISBN(isbn string) string {
	replacer := strings.NewReplacer("-", "", " ", "")
	return strings.ToUpper(replacer.Replace(isbn))
}

// IsValidISBN checks the ISBN-10 or ISBN-13 checksum of a normalized ISBN.
func IsValidISBN(isbn string) bool {
	switch len(isbn) {
	case 10:
		return isValidISBN10(isbn)
	case 13:
		return isValidISBN13(isbn)
	}
	return false
}

func isValidISBN10(isbn string) bool {
	sum := 0
	for i, r := range isbn {
		var digit int
		switch {
		case r >= '0' && r <= '9':
			digit = int(r - '0')
		case r == 'X' && i == 9:
			digit = 10
		default:
			return false
		}
		sum += (10 - i) * digit
	}
	return sum%11 == 0
}

func isValidISBN13(isbn string) bool {
	sum := 0
	for i, r := range isbn {
		if r < '0' || r > '9' {
			return false
		}
		digit := int(r - '0')
		if i%2 == 1 {
			digit *= 3
		}
		sum += digit
	}
	return sum%10 == 0
}
