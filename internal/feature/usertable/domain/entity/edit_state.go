package entity

import "errors"

// Phase は行の編集状態です。
type Phase string

const (
	PhaseViewing Phase = "viewing"
	PhaseEditing Phase = "editing"
	PhaseSaving  Phase = "saving"
)

var (
	// ErrSaveInProgress は保存中に別の操作を行おうとした場合に返されます。
	ErrSaveInProgress = errors.New("a save is already in progress")
	// ErrNotEditing は編集中でない行を保存・変更しようとした場合に返されます。
	ErrNotEditing = errors.New("row is not being edited")
)

// EditState はテーブル内で編集中の行を1つだけ保持します。
// viewing → editing → saving → viewing（成功）/ editing（失敗、入力は保持）と遷移します。
type EditState struct {
	Phase     Phase
	RowID     string
	Draft     Draft
	Displayed Draft
}

// Viewing は編集中の行がない状態を返します。
func Viewing() EditState {
	return EditState{Phase: PhaseViewing}
}

// BeginEdit は row の編集を開始します。別の行を編集中の場合はその入力を破棄して切り替えます。
func (s EditState) BeginEdit(row Row) (EditState, error) {
	if s.Phase == PhaseSaving {
		return s, ErrSaveInProgress
	}
	d := DraftFromRow(row)
	return EditState{Phase: PhaseEditing, RowID: row.ID, Draft: d, Displayed: d}, nil
}

// SetDraft は編集中の入力値を更新します。
func (s EditState) SetDraft(id string, d Draft) (EditState, error) {
	if s.Phase == PhaseSaving {
		return s, ErrSaveInProgress
	}
	if s.Phase != PhaseEditing || s.RowID != id {
		return s, ErrNotEditing
	}
	s.Draft = d
	return s, nil
}

// StartSave は保存を開始します。保存中は二重に開始できません。
func (s EditState) StartSave() (EditState, error) {
	switch s.Phase {
	case PhaseSaving:
		return s, ErrSaveInProgress
	case PhaseEditing:
		s.Phase = PhaseSaving
		return s, nil
	default:
		return s, ErrNotEditing
	}
}

// SaveSucceeded は保存成功後に閲覧状態へ戻します。
func (s EditState) SaveSucceeded() EditState {
	return Viewing()
}

// SaveFailed は保存失敗後に編集状態へ戻します。未保存の入力は保持されます。
func (s EditState) SaveFailed() EditState {
	if s.Phase != PhaseSaving {
		return s
	}
	s.Phase = PhaseEditing
	return s
}

// Cancel は入力を破棄し、表示中だった値のまま閲覧状態へ戻します。
func (s EditState) Cancel() (EditState, error) {
	if s.Phase == PhaseSaving {
		return s, ErrSaveInProgress
	}
	return Viewing(), nil
}

// IsEditing は id の行が編集中または保存中かを返します。
func (s EditState) IsEditing(id string) bool {
	return s.Phase != PhaseViewing && s.RowID == id
}
