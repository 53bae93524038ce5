package entity

import "strings"

// Search はIDとNameの検索入力です。
// IDが指定されている間はIDによる単一取得となり、Nameによる絞り込みは無効になります。
type Search struct {
	ID   string
	Name string
}

// ByID はIDによる単一取得モードかを返します。
func (s Search) ByID() bool {
	return strings.TrimSpace(s.ID) != ""
}

// NameFilterEnabled はNameによる絞り込みが有効かを返します。
func (s Search) NameFilterEnabled() bool {
	return !s.ByID()
}
