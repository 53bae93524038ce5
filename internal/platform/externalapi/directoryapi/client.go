package directoryapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"user_directory/internal/feature/usertable/domain/entity"
	"user_directory/internal/feature/usertable/usecase"
	"user_directory/internal/platform/externalapi/directoryapi/dto"
	"user_directory/internal/shared/ratelimiter"
)

const (
	listUsersQuery = `query GetUsers {
  users { id name email company salary }
}`
	getUserQuery = `query GetUser($id: ID!) {
  user(id: $id) { id name email company salary }
}`
	updateUserMutation = `mutation UpdateUser($id: ID!, $name: String!, $email: String!, $company: String, $salary: Float) {
  updateUser(id: $id, name: $name, email: $email, company: $company, salary: $salary) { id name email company salary }
}`
)

// Client はGraphQL APIを呼び出すDirectoryClient実装です。
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.Limiter
}

// ClientがDirectoryClientを実装していることをコンパイル時に検証します。
var _ usecase.DirectoryClient = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientを生成します。
// limiter がnilの場合は呼び出し頻度を制限しません。
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.Limiter) *Client {
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

// ListUsers は全ユーザーの結合行を取得します。
func (c *Client) ListUsers(ctx context.Context) ([]entity.Row, error) {
	var data dto.UsersData
	if err := c.do(ctx, listUsersQuery, nil, &data); err != nil {
		return nil, err
	}
	rows := make([]entity.Row, 0, len(data.Users))
	for _, u := range data.Users {
		rows = append(rows, toRow(u))
	}
	return rows, nil
}

// GetUser は指定IDの結合行を取得します。該当行がない場合は nil, nil を返します。
func (c *Client) GetUser(ctx context.Context, id string) (*entity.Row, error) {
	var data dto.UserData
	if err := c.do(ctx, getUserQuery, map[string]interface{}{"id": id}, &data); err != nil {
		return nil, err
	}
	if data.User == nil {
		return nil, nil
	}
	row := toRow(*data.User)
	return &row, nil
}

// UpdateUser は updateUser ミューテーションを実行し、再読込された行を返します。
// 更新対象がない場合は nil, nil を返します。
func (c *Client) UpdateUser(ctx context.Context, in entity.UpdateInput) (*entity.Row, error) {
	vars := map[string]interface{}{
		"id":      in.ID,
		"name":    in.Name,
		"email":   in.Email,
		"company": in.Company,
		"salary":  in.Salary,
	}
	var data dto.UpdateUserData
	if err := c.do(ctx, updateUserMutation, vars, &data); err != nil {
		return nil, err
	}
	if data.UpdateUser == nil {
		return nil, nil
	}
	row := toRow(*data.UpdateUser)
	return &row, nil
}

func (c *Client) do(ctx context.Context, query string, vars map[string]interface{}, out interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.WaitIfNeeded(ctx); err != nil {
			return err
		}
	}

	body, err := json.Marshal(dto.Request{Query: query, Variables: vars})
	if err != nil {
		return err
	}

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// リクエストを実行
	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	var gr dto.Response
	if err := json.NewDecoder(res.Body).Decode(&gr); err != nil {
		if res.StatusCode >= 400 {
			return fmt.Errorf("directoryapi http %d", res.StatusCode)
		}
		return fmt.Errorf("decode response: %w", err)
	}
	if len(gr.Errors) > 0 {
		return errors.New(gr.Errors[0].Message)
	}
	if res.StatusCode >= 400 {
		return fmt.Errorf("directoryapi http %d", res.StatusCode)
	}
	if len(gr.Data) == 0 || string(gr.Data) == "null" {
		return errors.New("directoryapi: empty response")
	}
	return json.Unmarshal(gr.Data, out)
}

func toRow(u dto.User) entity.Row {
	return entity.Row{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Company: u.Company,
		Salary:  u.Salary,
	}
}
