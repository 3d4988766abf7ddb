// Package view renders event pages and the fragments htmx swaps into them.
//
// Markup lives in embedded html/template files. Each named template is
// adapted with templ.FromGoHTML, and pages are composed from those parts
// with templ.Join inside a layout that renders its children.
package view

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var templates = template.Must(template.New("site").Funcs(template.FuncMap{
	"lower": strings.ToLower,
	// Transforms come from ui.Transform.CSS, never from request input.
	"css": func(s string) template.CSS { return template.CSS(s) },
	// Content links pass templ's scheme allowlist.
	"safeURL": func(s string) template.URL { return template.URL(templ.URL(s)) },
}).ParseFS(templateFS, "templates/*.html"))

// Static returns the stylesheet and script assets served under /static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func component(name string, data any) templ.Component {
	t := templates.Lookup(name)
	if t == nil {
		return templ.ComponentFunc(func(context.Context, io.Writer) error {
			return fmt.Errorf("view: no template %q", name)
		})
	}
	return templ.FromGoHTML(t, data)
}

type layoutData struct {
	Title     string
	BodyClass string
	Scripts   bool
}

// layout renders the document shell around the children set on ctx with
// templ.WithChildren.
func layout(d layoutData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := component("layout_head", d).Render(ctx, w); err != nil {
			return err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		return component("layout_tail", d).Render(ctx, w)
	})
}

// withChildren renders parent with children as its body.
func withChildren(parent, children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return parent.Render(templ.WithChildren(ctx, children), w)
	})
}

func Page(m PageModel) templ.Component {
	parts := []templ.Component{component("nav", m.Nav)}
	if m.Notice != "" {
		parts = append(parts, component("page_notice", m))
	}
	parts = append(parts, component("main", m))
	if m.Checkout != nil {
		parts = append(parts, CheckoutFragment(m.Checkout))
	}
	parts = append(parts, component("footer", m))
	return withChildren(layout(layoutData{Title: m.Title, Scripts: true}), templ.Join(parts...))
}

func GalleryFragment(m GalleryModel) templ.Component {
	return component("gallery", m)
}

func ScheduleFragment(m ScheduleModel) templ.Component {
	return component("schedule", m)
}

func CheckoutFragment(m *CheckoutModel) templ.Component {
	return component("checkout", m)
}

func NewsletterFragment(m NewsletterModel) templ.Component {
	return component("newsletter", m)
}

// NoticeFragment is the confirmation banner swapped in after a successful
// htmx form post.
func NoticeFragment(message string) templ.Component {
	return component("notice", message)
}

// ErrorPage is shown for unknown events and server failures.
func ErrorPage(status int, message string) templ.Component {
	body := component("error", struct {
		Status  int
		Message string
	}{status, message})
	return withChildren(layout(layoutData{Title: strconv.Itoa(status), BodyClass: "error-page"}), body)
}
