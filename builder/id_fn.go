// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFn maps a zero-based vertex index to a vertex ID.
type IDFn func(idx int) string

// DefaultIDFn returns decimal IDs: "0", "1", ….
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns "A"…"Z". Panics outside [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns "A", …, "Z", "AA", "AB", …. Panics on idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	var i, j int
	for i = idx; i >= 0; i = i/26 - 1 { // 26 alphabet size
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// HexIDFn returns lowercase hexadecimal IDs. Panics on idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// SymbolNumberIDFn returns prefix followed by the decimal index.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// IDSchemeByName resolves "decimal", "symbol", "excel" or "hex".
func IDSchemeByName(name string) (IDFn, error) {
	switch strings.ToLower(name) {
	case "", "decimal":
		return DefaultIDFn, nil
	case "symbol":
		return SymbolIDFn, nil
	case "excel":
		return ExcelColumnIDFn, nil
	case "hex":
		return HexIDFn, nil
	default:
		return nil, fmt.Errorf("IDSchemeByName(%q): %w", name, ErrUnknownIDScheme)
	}
}
