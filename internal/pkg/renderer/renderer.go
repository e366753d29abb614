// Package renderer builds the presentational page models consumed by the
// on-screen preview. It shares the pagination plan and the fallback rules
// with the export renderers so the preview and the exported artifact stay
// structurally identical.
package renderer

import (
	"github.com/vistorialabs/laudoforge/internal/pkg/laudo"
)

// LabelValue is one rendered row of the data-sheet page. Value is never
// empty; absent fields carry the fallback.
type LabelValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CoverView is the cover page model. Layout space for the logo is
// reserved even when HasLogo is false so later pages align.
type CoverView struct {
	Title          string `json:"title"`
	LogoSource     string `json:"logoSource,omitempty"`
	HasLogo        bool   `json:"hasLogo"`
	LocationSource string `json:"locationSource,omitempty"`
	HasLocation    bool   `json:"hasLocation"`
	Caption        string `json:"caption"`
	Placeholder    string `json:"placeholder"`
}

// DataSheetView is the data-sheet page model.
type DataSheetView struct {
	Heading           string       `json:"heading"`
	Rows              []LabelValue `json:"rows"`
	ObservationsLabel string       `json:"observationsLabel"`
	Observations      string       `json:"observations"`
	DateLabel         string       `json:"dateLabel"`
	Date              string       `json:"date"`
}

// TechnicalView is the technical-summary page model.
type TechnicalView struct {
	Heading      string `json:"heading"`
	Text         string `json:"text"`
	Engineer     string `json:"engineer"`
	Registration string `json:"registration"`
}

// PhotoSlot is one photo+caption block of a photo-pair page. When
// Placeholder is true the slot renders the fixed "not available" box with
// the same dimensions, so the layout never shifts.
type PhotoSlot struct {
	Caption         string `json:"caption"`
	Source          string `json:"source,omitempty"`
	Placeholder     bool   `json:"placeholder"`
	PlaceholderText string `json:"placeholderText,omitempty"`
}

// PhotoPairView is the photo-pair page model, holding 1 or 2 slots.
type PhotoPairView struct {
	Slots []PhotoSlot `json:"slots"`
}

// Page is one rendered preview page. Exactly one of the view fields is
// set, matching Type.
type Page struct {
	Number        int            `json:"pageNumber"`
	Type          laudo.PageType `json:"pageType"`
	FooterContact string         `json:"footerContact"`
	Cover         *CoverView     `json:"cover,omitempty"`
	DataSheet     *DataSheetView `json:"dataSheet,omitempty"`
	Technical     *TechnicalView `json:"technical,omitempty"`
	PhotoPair     *PhotoPairView `json:"photoPair,omitempty"`
}

// Document is the full preview model for a record.
type Document struct {
	TotalPages int    `json:"totalPages"`
	Pages      []Page `json:"pages"`
}

// BuildDocument plans the record and renders every page for the screen
// target.
func BuildDocument(r laudo.Record) Document {
	return BuildDocumentFromPlan(r, laudo.BuildPlan(r))
}

// BuildDocumentFromPlan renders an existing plan. Export call sites use
// this form so a single plan feeds both the preview and the artifact.
func BuildDocumentFromPlan(r laudo.Record, plan laudo.Plan) Document {
	pages := make([]Page, 0, len(plan.Pages))
	for _, descriptor := range plan.Pages {
		pages = append(pages, buildPage(r, descriptor))
	}
	return Document{TotalPages: plan.TotalPages, Pages: pages}
}

func buildPage(r laudo.Record, d laudo.PageDescriptor) Page {
	page := Page{
		Number:        d.PageNumber,
		Type:          d.Type,
		FooterContact: laudo.FooterContact,
	}

	switch d.Type {
	case laudo.PageCover:
		page.Cover = &CoverView{
			Title:          r.FieldOr(laudo.FieldTitle, laudo.FallbackTitle),
			LogoSource:     r.LogoImage,
			HasLogo:        r.LogoImage != "",
			LocationSource: r.LocationImage,
			HasLocation:    r.LocationImage != "",
			Caption:        laudo.LocationCaption,
			Placeholder:    laudo.PlaceholderLocationText,
		}
	case laudo.PageDataSheet:
		rows := laudo.DataSheetRows(r.Kind)
		view := &DataSheetView{
			Heading:           laudo.DataSheetHeading(r.Kind),
			Rows:              make([]LabelValue, 0, len(rows)),
			ObservationsLabel: laudo.ObservationsLabel,
			Observations:      r.FieldOr(laudo.FieldObservations, laudo.FallbackValue),
			DateLabel:         laudo.DateLabel(r.Kind),
			Date:              r.FieldOr(laudo.FieldDate, laudo.FallbackValue),
		}
		for _, row := range rows {
			view.Rows = append(view.Rows, LabelValue{
				Label: row.Label,
				Value: r.FieldOr(row.Field, laudo.FallbackValue),
			})
		}
		page.DataSheet = view
	case laudo.PageTechnicalSummary:
		page.Technical = &TechnicalView{
			Heading:      laudo.TechnicalHeading,
			Text:         r.FieldOr(laudo.FieldTechnicalInfo, laudo.FallbackTechnicalInfo),
			Engineer:     r.FieldOr(laudo.FieldEngineer, laudo.FallbackEngineer),
			Registration: r.FieldOr(laudo.FieldRegistration, laudo.FallbackRegistration),
		}
	case laudo.PagePhotoPair:
		view := &PhotoPairView{Slots: make([]PhotoSlot, 0, len(d.Photos))}
		for _, photo := range d.Photos {
			slot := PhotoSlot{
				Caption: photo.Caption,
				Source:  photo.Source,
			}
			if slot.Caption == "" {
				slot.Caption = laudo.FallbackCaption
			}
			if photo.Source == "" {
				slot.Placeholder = true
				slot.PlaceholderText = laudo.PlaceholderImageText
			}
			view.Slots = append(view.Slots, slot)
		}
		page.PhotoPair = view
	}

	return page
}
