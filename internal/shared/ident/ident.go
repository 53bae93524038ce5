// Package ident converts external identifier strings into store keys.
package ident

import (
	"strconv"
	"strings"
)

// Parse は外部から渡されたID文字列を数値IDに変換します。
// 数値として解釈できない値はどの行にも一致しないため、ok=false を返します。
func Parse(raw string) (id uint, ok bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

// Format は数値IDを外部表現の文字列に変換します。
func Format(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
