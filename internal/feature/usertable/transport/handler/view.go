package handler

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"user_directory/internal/feature/usertable/domain/entity"
	"user_directory/internal/feature/usertable/usecase"
)

// viewParams はURLクエリで持ち回す表示条件です。
type viewParams struct {
	Search entity.Search
	Sort   usecase.Column
	Desc   bool
	Page   int
}

func parseViewParams(c *gin.Context) viewParams {
	p := viewParams{
		Search: entity.Search{ID: strings.TrimSpace(c.Query("id")), Name: c.Query("name")},
		Desc:   c.Query("dir") == "desc",
		Page:   1,
	}
	if col, ok := usecase.ParseColumn(c.Query("sort")); ok {
		p.Sort = col
	}
	if n, err := strconv.Atoi(c.Query("page")); err == nil {
		p.Page = n
	}
	return p
}

func (p viewParams) query() usecase.Query {
	return usecase.Query{Search: p.Search, Sort: p.Sort, Desc: p.Desc, Page: p.Page}
}

// values は表示条件をURLクエリに戻します。既定値は省略します。
func (p viewParams) values() url.Values {
	v := url.Values{}
	if p.Search.ByID() {
		v.Set("id", p.Search.ID)
	} else if p.Search.Name != "" {
		v.Set("name", p.Search.Name)
	}
	if p.Sort != "" {
		v.Set("sort", string(p.Sort))
		if p.Desc {
			v.Set("dir", "desc")
		}
	}
	if p.Page > 1 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	return v
}

func (p viewParams) url(path string) string {
	if q := p.values().Encode(); q != "" {
		return path + "?" + q
	}
	return path
}

type columnView struct {
	Label   string
	SortURL string
	Arrow   string
}

type rowView struct {
	ID      string
	Name    string
	Email   string
	Company string
	Salary  string
	EditURL string
	Editing bool
	Saving  bool
	Draft   entity.Draft
	SaveURL string
}

type tableView struct {
	Search      entity.Search
	NameEnabled bool
	Columns     []columnView
	Rows        []rowView
	Total       int
	CurrentPage int
	Pages       int
	PrevURL     string
	NextURL     string
	Error       string
}

var columnLabels = []struct {
	col   usecase.Column
	label string
}{
	{usecase.ColumnID, "ID"},
	{usecase.ColumnName, "Name"},
	{usecase.ColumnEmail, "Email"},
	{usecase.ColumnCompany, "Company"},
	{usecase.ColumnSalary, "Salary"},
}

func buildView(p viewParams, page *usecase.Page, state entity.EditState) tableView {
	v := tableView{
		Search:      p.Search,
		NameEnabled: p.Search.NameFilterEnabled(),
		CurrentPage: 1,
		Pages:       1,
	}

	for _, cl := range columnLabels {
		next := p
		next.Page = 1
		next.Sort = cl.col
		next.Desc = p.Sort == cl.col && !p.Desc
		cv := columnView{Label: cl.label, SortURL: next.url("/")}
		if p.Sort == cl.col {
			cv.Arrow = "▲"
			if p.Desc {
				cv.Arrow = "▼"
			}
		}
		v.Columns = append(v.Columns, cv)
	}

	if page == nil {
		return v
	}

	v.Total = page.Total
	v.CurrentPage = page.CurrentPage
	v.Pages = page.Pages
	if page.CurrentPage > 1 {
		prev := p
		prev.Page = page.CurrentPage - 1
		v.PrevURL = prev.url("/")
	}
	if page.CurrentPage < page.Pages {
		next := p
		next.Page = page.CurrentPage + 1
		v.NextURL = next.url("/")
	}

	current := p
	current.Page = page.CurrentPage
	for _, r := range page.Rows {
		rv := rowView{
			ID:      r.ID,
			Name:    r.Name,
			Email:   r.Email,
			Company: entity.DraftFromRow(r).Company,
			Salary:  entity.DraftFromRow(r).Salary,
			SaveURL: current.url("/users/" + url.PathEscape(r.ID)),
		}
		edit := current.values()
		edit.Set("edit", r.ID)
		rv.EditURL = "/?" + edit.Encode()
		if state.IsEditing(r.ID) {
			rv.Editing = true
			rv.Saving = state.Phase == entity.PhaseSaving
			rv.Draft = state.Draft
		}
		v.Rows = append(v.Rows, rv)
	}
	return v
}
