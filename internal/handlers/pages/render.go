package pages

import (
	"bytes"
	"embed"
	"encore/shared/logger"
	"encore/transport/http/response"
	"fmt"
	"html/template"
	"net/http"
)

const (
	pageHome          = "home"
	pageAbout         = "about"
	pageBooking       = "booking"
	pageBookingStatus = "booking_status"
	pageVerifyEmail   = "verify_email"
	pageAdmin         = "admin"
	pageManageBooking = "manage_booking"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"inc": func(n int) int { return n + 1 },
	"dec": func(n int) int { return n - 1 },
}

// each page is parsed with its own copy of the layout so "content" never collides.
var templates = func() map[string]*template.Template {
	set := map[string]*template.Template{}

	for _, name := range []string{pageHome, pageAbout, pageBooking, pageBookingStatus, pageVerifyEmail, pageAdmin, pageManageBooking} {
		set[name] = template.Must(template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html"))
	}

	return set
}()

var alert = template.Must(template.ParseFS(templateFS, "templates/layout.html")).Lookup("alert")

type page struct {
	App     string
	Title   string
	Error   string
	Session bool
	Data    any
}

func render(w http.ResponseWriter, code int, name string, data page) {
	var buf bytes.Buffer

	tmpl, ok := templates[name]
	if !ok {
		logger.ErrorWithStack(fmt.Errorf("unknown page %q", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.ErrorWithStack(fmt.Errorf("failed to render page %s: %w", name, err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	response.WithHTML(w, code, buf.Bytes())
}
