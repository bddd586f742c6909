package models

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CompareNatural orders strings the way a person reads file names: embedded digit
// runs compare by numeric value and letters compare case-insensitively, so "img2"
// sorts before "IMG10". Strings that are equal under those rules fall back to a
// byte-wise comparison, which keeps the ordering total.
func CompareNatural(a, b string) int {
	if c := compareFolded(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// SortNatural sorts paths in place using natural order
func SortNatural(paths []string) {
	slices.SortFunc(paths, CompareNatural)
}

func compareFolded(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			ai := digitRunEnd(a, i)
			bj := digitRunEnd(b, j)
			if c := compareDigits(a[i:ai], b[j:bj]); c != 0 {
				return c
			}
			i, j = ai, bj
			continue
		}

		ra, sa := utf8.DecodeRuneInString(a[i:])
		rb, sb := utf8.DecodeRuneInString(b[j:])
		la, lb := unicode.ToLower(ra), unicode.ToLower(rb)
		if la != lb {
			if la < lb {
				return -1
			}
			return 1
		}
		i += sa
		j += sb
	}

	switch {
	case len(a)-i < len(b)-j:
		return -1
	case len(a)-i > len(b)-j:
		return 1
	default:
		return 0
	}
}

// compareDigits compares two digit runs by value without parsing them, so runs
// longer than an int can hold still order correctly.
func compareDigits(x, y string) int {
	x = strings.TrimLeft(x, "0")
	y = strings.TrimLeft(y, "0")
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	return strings.Compare(x, y)
}

func digitRunEnd(s string, start int) int {
	end := start
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	return end
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
