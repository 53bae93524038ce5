// Package handler serves the user table UI.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"user_directory/internal/feature/usertable/domain/entity"
	"user_directory/internal/feature/usertable/usecase"
)

const tableTemplate = "table.html"

// TableUsecase はテーブル画面のユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type TableUsecase interface {
	Load(ctx context.Context, q usecase.Query) (*usecase.Page, error)
	Save(ctx context.Context, id string, d entity.Draft) (*entity.Row, error)
}

// TableHandler はユーザーテーブル画面のHTTPリクエストを処理します。
type TableHandler struct {
	uc    TableUsecase
	saves *saveTracker
}

// NewTableHandler は新しい TableHandler を作成します。
func NewTableHandler(uc TableUsecase) *TableHandler {
	return &TableHandler{uc: uc, saves: newSaveTracker()}
}

// Index はテーブルを表示します。クエリパラメータ edit で指定された行は編集状態で表示し、
// その行の保存が進行中であれば保存中として表示します。
// APIの呼び出しに失敗した場合は502とエラーメッセージを返します。
func (h *TableHandler) Index(c *gin.Context) {
	p := parseViewParams(c)
	state := entity.Viewing()

	page, err := h.uc.Load(c.Request.Context(), p.query())
	if err != nil {
		h.render(c, http.StatusBadGateway, p, nil, state, err)
		return
	}

	if editID := c.Query("edit"); editID != "" {
		if saving := h.saves.get(editID); saving.Phase == entity.PhaseSaving {
			h.render(c, http.StatusOK, p, page, saving, nil)
			return
		}
		for _, r := range page.Rows {
			if r.ID == editID {
				state, _ = state.BeginEdit(r)
				break
			}
		}
	}
	h.render(c, http.StatusOK, p, page, state, nil)
}

// Save は編集中の行を保存し、成功した場合はテーブルを再取得するためリダイレクトします。
// action=cancel の場合は保存せずに入力を破棄します。
// 保存に失敗した場合は入力を保持したまま編集状態で再表示します。
func (h *TableHandler) Save(c *gin.Context) {
	p := parseViewParams(c)
	id := c.Param("id")
	draft := entity.Draft{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Company: c.PostForm("company"),
		Salary:  c.PostForm("salary"),
	}

	cancel := c.PostForm("action") == "cancel"
	state, err := h.saves.transition(id, func(s entity.EditState) (entity.EditState, error) {
		s, err := s.BeginEdit(entity.Row{ID: id})
		if err != nil {
			return s, err
		}
		if s, err = s.SetDraft(id, draft); err != nil {
			return s, err
		}
		if cancel {
			return s.Cancel()
		}
		return s.StartSave()
	})
	if err != nil {
		// 同じ行の保存が進行中
		c.String(http.StatusConflict, err.Error())
		return
	}
	if cancel {
		c.Redirect(http.StatusSeeOther, p.url("/"))
		return
	}

	if _, err := h.uc.Save(c.Request.Context(), id, draft); err != nil {
		slog.WarnContext(c.Request.Context(), "failed to save user", "user_id", id, "error", err)
		state, _ = h.saves.transition(id, func(s entity.EditState) (entity.EditState, error) {
			return s.SaveFailed(), nil
		})
		page, loadErr := h.uc.Load(c.Request.Context(), p.query())
		if loadErr != nil {
			page = nil
		}
		h.render(c, http.StatusBadGateway, p, page, state, err)
		return
	}

	_, _ = h.saves.transition(id, func(s entity.EditState) (entity.EditState, error) {
		return s.SaveSucceeded(), nil
	})
	c.Redirect(http.StatusSeeOther, p.url("/"))
}

func (h *TableHandler) render(c *gin.Context, status int, p viewParams, page *usecase.Page, state entity.EditState, err error) {
	v := buildView(p, page, state)
	if err != nil {
		v.Error = err.Error()
	}
	c.HTML(status, tableTemplate, v)
}
