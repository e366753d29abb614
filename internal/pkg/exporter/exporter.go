// Package exporter turns a normalized report record into a downloadable
// document artifact. Both targets consume a single pagination plan so the
// exported file matches the on-screen preview page for page.
package exporter

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v2/log"

	"github.com/vistorialabs/laudoforge/internal/pkg/laudo"
)

// Target selects the output document format.
type Target string

const (
	TargetPDF  Target = "pdf"
	TargetWord Target = "docx"
)

// ErrExportContainer marks a failure to construct or serialize the output
// container itself. It is fatal to the single export operation and is the
// only error this package surfaces; per-image and per-field failures are
// absorbed lower down.
var ErrExportContainer = errors.New("exporter: building output container failed")

// Result is a finished export artifact.
type Result struct {
	Filename    string
	ContentType string
	Data        []byte
}

const wordContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Export plans the record once and renders it for the requested target.
// The in-memory record is never mutated.
func Export(r laudo.Record, target Target) (*Result, error) {
	plan := laudo.BuildPlan(r)

	switch target {
	case TargetPDF:
		data, err := buildPDF(r, plan)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExportContainer, err)
		}
		return &Result{
			Filename:    Filename(r, "pdf"),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	case TargetWord:
		data, err := buildDocx(r, plan)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExportContainer, err)
		}
		return &Result{
			Filename:    Filename(r, "docx"),
			ContentType: wordContentType,
			Data:        data,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown target %q", ErrExportContainer, target)
	}
}

// Filename derives the download filename from the report title, falling
// back to the kind when the title is empty. The reference application
// always saved to one fixed literal name; deriving it from the record is
// the corrected behavior.
func Filename(r laudo.Record, ext string) string {
	base := slugify(r.Field(laudo.FieldTitle))
	if base == "" {
		base = "laudo-" + string(r.Kind)
	}
	name := base + "." + ext
	log.Info(fmt.Sprintf("[Exporter] export filename: %s", name))
	return name
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case unicode.IsLetter(r):
			if folded := foldAccent(r); folded != 0 {
				b.WriteRune(folded)
				lastDash = false
			}
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// foldAccent maps the Latin-1 accented letters common in Portuguese
// titles to their base ASCII letter. Anything else is dropped.
func foldAccent(r rune) rune {
	switch r {
	case 'á', 'à', 'â', 'ã', 'ä':
		return 'a'
	case 'é', 'è', 'ê', 'ë':
		return 'e'
	case 'í', 'ì', 'î', 'ï':
		return 'i'
	case 'ó', 'ò', 'ô', 'õ', 'ö':
		return 'o'
	case 'ú', 'ù', 'û', 'ü':
		return 'u'
	case 'ç':
		return 'c'
	case 'ñ':
		return 'n'
	default:
		return 0
	}
}
