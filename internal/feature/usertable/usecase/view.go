package usecase

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"user_directory/internal/feature/usertable/domain/entity"
)

// PageSize は1ページに表示する行数です。
const PageSize = 10

// Column はソート可能な列です。
type Column string

const (
	ColumnID      Column = "id"
	ColumnName    Column = "name"
	ColumnEmail   Column = "email"
	ColumnCompany Column = "company"
	ColumnSalary  Column = "salary"
)

// ParseColumn は列名を解釈します。未知の列はソートなしとして扱います。
func ParseColumn(s string) (Column, bool) {
	switch c := Column(strings.ToLower(s)); c {
	case ColumnID, ColumnName, ColumnEmail, ColumnCompany, ColumnSalary:
		return c, true
	default:
		return "", false
	}
}

// FilterByName は名前に needle を含む行を返します（大文字小文字を区別しない部分一致）。
// needle が空の場合は rows をそのまま返します。
func FilterByName(rows []entity.Row, needle string) []entity.Row {
	if needle == "" {
		return rows
	}
	n := strings.ToLower(needle)
	out := make([]entity.Row, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.Name), n) {
			out = append(out, r)
		}
	}
	return out
}

// SortRows は col で安定ソートした新しいスライスを返します。
// idとsalaryは数値順、それ以外は文字列順で、nullは先頭に並びます。
func SortRows(rows []entity.Row, col Column, desc bool) []entity.Row {
	out := make([]entity.Row, len(rows))
	copy(out, rows)
	if col == "" {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j], col)
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compare(a, b entity.Row, col Column) int {
	switch col {
	case ColumnID:
		ai, aerr := strconv.ParseFloat(a.ID, 64)
		bi, berr := strconv.ParseFloat(b.ID, 64)
		if aerr == nil && berr == nil {
			return compareFloat(ai, bi)
		}
		return strings.Compare(a.ID, b.ID)
	case ColumnName:
		return strings.Compare(a.Name, b.Name)
	case ColumnEmail:
		return strings.Compare(a.Email, b.Email)
	case ColumnCompany:
		return compareNullable(a.Company, b.Company, strings.Compare)
	case ColumnSalary:
		return compareNullable(a.Salary, b.Salary, compareFloat)
	default:
		return 0
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareNullable[T any](a, b *T, cmp func(T, T) int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return cmp(*a, *b)
	}
}

// Paginate は page（1始まり）の行を返します。範囲外のページは最終ページに丸めます。
func Paginate(rows []entity.Row, page int) (out []entity.Row, current, pages int) {
	pages = (len(rows) + PageSize - 1) / PageSize
	if pages == 0 {
		pages = 1
	}
	current = page
	if current < 1 {
		current = 1
	}
	if current > pages {
		current = pages
	}

	start := (current - 1) * PageSize
	end := start + PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], current, pages
}

// CoerceSalary は保存時の給与入力を変換します。
// 空欄はnull、数値として解釈できない値（NaN・無限大を含む）は0になります。
func CoerceSalary(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	return &f
}

// CoerceCompany は会社名の入力を変換します。空欄はnullになります。
func CoerceCompany(raw string) *string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return &raw
}
