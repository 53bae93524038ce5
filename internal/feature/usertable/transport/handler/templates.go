package handler

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// LoadTemplates はテーブル画面のテンプレートを読み込みます。
// 戻り値は gin.Engine.SetHTMLTemplate に渡します。
func LoadTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
