package view

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"inventory-service/internal/model"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var templateFS embed.FS

// Renderer implements echo.Renderer over the embedded page templates.
// Template names are paths relative to the templates root, e.g. "brands/list.html".
type Renderer struct {
	templates *template.Template
}

// funcs are the helpers available inside page templates.
var funcs = template.FuncMap{
	// containsID reports whether the submitted multi-select values include id.
	"containsID": func(ids []string, id uint) bool {
		s := strconv.FormatUint(uint64(id), 10)
		for _, v := range ids {
			if v == s {
				return true
			}
		}
		return false
	},
	// lineLabel resolves a product line code to its display name.
	"lineLabel": func(code string) string {
		if label, ok := model.LineLabels[code]; ok {
			return label
		}
		return code
	},
}

// New parses the embedded templates into a Renderer.
func New() (*Renderer, error) {
	root := template.New("").Funcs(funcs)

	err := fs.WalkDir(templateFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := templateFS.ReadFile(path)
		if err != nil {
			return err
		}

		name := strings.TrimPrefix(path, "templates/")
		_, err = root.New(name).Parse(string(content))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Renderer{templates: root}, nil
}

// Render writes the named template with the given data.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
