package handler

import (
	"sync"

	"user_directory/internal/feature/usertable/domain/entity"
)

// saveTracker は保存中の行の状態をリクエストをまたいで保持します。
// saving 以外に遷移した行は保持しません。
type saveTracker struct {
	mu     sync.Mutex
	states map[string]entity.EditState
}

func newSaveTracker() *saveTracker {
	return &saveTracker{states: make(map[string]entity.EditState)}
}

// get は id の現在の状態を返します。保存中でなければ閲覧状態です。
func (t *saveTracker) get(id string) entity.EditState {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.states[id]; ok {
		return s
	}
	return entity.Viewing()
}

// transition は id の状態に fn を適用し、成功した場合のみ結果を保存します。
func (t *saveTracker) transition(id string, fn func(entity.EditState) (entity.EditState, error)) (entity.EditState, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cur, ok := t.states[id]
	if !ok {
		cur = entity.Viewing()
	}
	next, err := fn(cur)
	if err != nil {
		return cur, err
	}
	if next.Phase == entity.PhaseSaving {
		t.states[id] = next
	} else {
		delete(t.states, id)
	}
	return next, nil
}
