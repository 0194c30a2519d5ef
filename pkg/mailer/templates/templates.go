package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	htmpl "html/template"
	"reflect"
	"strings"
	"sync"
	texttpl "text/template"
	"time"
)

//go:embed *.tmpl
var FS embed.FS

// Template names
const (
	Welcome           = "welcome"
	LoginNotification = "login_notification"
)

var ErrUnknownTemplate = errors.New("unknown email template")

// EmailData defines the fields account templates may use.
type EmailData struct {
	Name           string `json:"Name"`
	Email          string `json:"Email"`
	RecipientEmail string `json:"RecipientEmail"`
	Type           string `json:"Type"`

	AppName string `json:"AppName"`
	AppURL  string `json:"AppURL"`

	IP        string    `json:"IP"`
	UserAgent string    `json:"UserAgent"`
	Time      string    `json:"Time"`
	TimeAt    time.Time `json:"TimeAt"`
}

// ToMap flattens d into the shape queued on EmailJob.Data.
func ToMap(d EmailData) map[string]any {
	b, _ := json.Marshal(d)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}

// fallback backs the pipe form {{ .AppName | default "Notes" }}.
func fallback(def, value any) any {
	if s, ok := value.(string); ok {
		if strings.TrimSpace(s) == "" {
			return def
		}
		return s
	}
	if rv := reflect.ValueOf(value); !rv.IsValid() || rv.IsZero() {
		return def
	}
	return value
}

var funcs = map[string]any{
	"upper":   strings.ToUpper,
	"default": fallback,
}

// set is one email: a subject and plain text body plus an HTML body.
type set struct {
	subject *texttpl.Template
	text    *texttpl.Template
	html    *htmpl.Template
}

var loadAll = sync.OnceValues(func() (map[string]set, error) {
	out := make(map[string]set, 2)
	for _, name := range []string{Welcome, LoginNotification} {
		s, err := parseSet(name)
		if err != nil {
			return nil, err
		}
		out[name] = s
	}
	return out, nil
})

// parseSet reads <name>.subject.tmpl, <name>.text.tmpl and <name>.html.tmpl.
func parseSet(name string) (set, error) {
	var s set
	var err error
	if s.subject, err = texttpl.New(name + ".subject.tmpl").Funcs(funcs).ParseFS(FS, name+".subject.tmpl"); err != nil {
		return set{}, fmt.Errorf("parse %s subject: %w", name, err)
	}
	if s.text, err = texttpl.New(name + ".text.tmpl").Funcs(funcs).ParseFS(FS, name+".text.tmpl"); err != nil {
		return set{}, fmt.Errorf("parse %s text: %w", name, err)
	}
	if s.html, err = htmpl.New(name + ".html.tmpl").Funcs(funcs).ParseFS(FS, name+".html.tmpl"); err != nil {
		return set{}, fmt.Errorf("parse %s html: %w", name, err)
	}
	return s, nil
}

func exec(run func(*bytes.Buffer) error) (string, error) {
	var buf bytes.Buffer
	if err := run(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Render executes the named email with data. The subject is trimmed.
func Render(name string, data any) (subject, text, html string, err error) {
	all, err := loadAll()
	if err != nil {
		return "", "", "", err
	}
	s, ok := all[name]
	if !ok {
		return "", "", "", fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}

	if subject, err = exec(func(b *bytes.Buffer) error { return s.subject.Execute(b, data) }); err != nil {
		return "", "", "", fmt.Errorf("render %s subject: %w", name, err)
	}
	if text, err = exec(func(b *bytes.Buffer) error { return s.text.Execute(b, data) }); err != nil {
		return "", "", "", fmt.Errorf("render %s text: %w", name, err)
	}
	if html, err = exec(func(b *bytes.Buffer) error { return s.html.Execute(b, data) }); err != nil {
		return "", "", "", fmt.Errorf("render %s html: %w", name, err)
	}
	return strings.TrimSpace(subject), text, html, nil
}
