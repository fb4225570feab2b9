package render

import (
	"embed"
	"html/template"
	"io/fs"
	"strconv"

	"github.com/okian/veloplot/internal/domain/chart"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Assets exposes the page stylesheet and hover script, rooted at static/.
var Assets fs.FS = func() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return staticFS
	}
	return sub
}()

var templates = template.Must(template.New("render").Funcs(template.FuncMap{
	"num":       num,
	"translate": translate,
	"tickAt":    tickAt,
	"isBottom":  func(a chart.Axis) bool { return a.Orient == chart.OrientBottom },
	"asset":     asset,
}).ParseFS(templateFS, "templates/*.tmpl"))

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func translate(p chart.Point) string {
	return "translate(" + num(p.X) + "," + num(p.Y) + ")"
}

// tickAt places a tick group along its axis.
func tickAt(a chart.Axis, t chart.Tick) string {
	if a.Orient == chart.OrientBottom {
		return translate(chart.Point{X: t.Offset})
	}
	return translate(chart.Point{Y: t.Offset})
}

// asset returns an embedded asset for inlining. Assets are trusted content
// shipped with the binary.
func asset(name string) (any, error) {
	b, err := fs.ReadFile(Assets, name)
	if err != nil {
		return nil, err
	}
	switch name {
	case "chart.css":
		return template.CSS(b), nil
	case "tooltip.js":
		return template.JS(b), nil
	}
	return string(b), nil
}
