package gqlserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
)

// OperationRecorder はGraphQL操作の結果を記録する先です。
// operation には操作の種類（query / mutation）を渡します。特定できない場合は空文字です。
type OperationRecorder interface {
	RecordOperation(operation string, ok bool, duration time.Duration)
}

// Request はGraphQL over HTTPのリクエストボディです。
type Request struct {
	Query         string                 `json:"query" form:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName" form:"operationName"`
}

// Handler は単一エンドポイントでクエリとミューテーションを処理します。
type Handler struct {
	schema graphql.Schema
	rec    OperationRecorder
}

// NewHandler は新しい Handler を作成します。rec がnilの場合はメトリクスを記録しません。
func NewHandler(schema graphql.Schema, rec OperationRecorder) *Handler {
	return &Handler{schema: schema, rec: rec}
}

// Serve は POST（JSONボディ）と GET（クエリパラメータ）の両方を受け付けます。
// ミューテーションはPOSTでのみ実行できます。
func (h *Handler) Serve(c *gin.Context) {
	req, err := bindRequest(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Query == "" {
		writeError(c, http.StatusBadRequest, "Must provide query string.")
		return
	}

	opType, opName := describeOperation(req.Query, req.OperationName)
	if c.Request.Method == http.MethodGet && opType == ast.OperationTypeMutation {
		c.Header("Allow", http.MethodPost)
		writeError(c, http.StatusMethodNotAllowed, "Can only perform a mutation operation from a POST request.")
		return
	}

	start := time.Now()
	res := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request.Context(),
	})
	if h.rec != nil {
		h.rec.RecordOperation(opType, !res.HasErrors(), time.Since(start))
	}

	if res.HasErrors() {
		for _, e := range res.Errors {
			slog.WarnContext(c.Request.Context(), "graphql error", "operation", opName, "error", e.Message)
		}
	}

	status := http.StatusOK
	if res.Data == nil && res.HasErrors() {
		// 構文・検証エラーで実行に至らなかった場合
		status = http.StatusBadRequest
	}
	c.JSON(status, res)
}

func bindRequest(c *gin.Context) (Request, error) {
	var req Request
	if c.Request.Method == http.MethodGet {
		req.Query = c.Query("query")
		req.OperationName = c.Query("operationName")
		if raw := c.Query("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				return req, errVariables
			}
		}
		return req, nil
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errBody
	}
	return req, nil
}

// describeOperation は実行される操作の種類とログ用の名前を返します。
// パースに失敗した場合や operationName に一致する操作がない場合は種類を空で返し、
// エラー報告は実行側に任せます。
func describeOperation(query, operationName string) (opType, name string) {
	doc, err := parser.Parse(parser.ParseParams{Source: query})
	if err != nil {
		return "", operationName
	}
	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		opName := ""
		if op.Name != nil {
			opName = op.Name.Value
		}
		if operationName != "" && opName != operationName {
			continue
		}
		if opName == "" {
			opName = op.Operation
		}
		return op.Operation, opName
	}
	return "", operationName
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"errors": []gin.H{{"message": msg}}})
}
