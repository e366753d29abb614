package exporter

import (
	"bytes"
	"fmt"

	"github.com/lvillar/gofpdf"

	"github.com/vistorialabs/laudoforge/internal/pkg/imagepipeline"
	"github.com/vistorialabs/laudoforge/internal/pkg/laudo"
)

// Fixed A4 layout in millimeters, mirroring the preview geometry.
const (
	pdfLogoX, pdfLogoY, pdfLogoW, pdfLogoH             = 20.0, 20.0, 40.0, 20.0
	pdfTitleY                                          = 70.0
	pdfContentX, pdfContentW                           = 20.0, 170.0
	pdfLocationX, pdfLocationY                         = 30.0, 100.0
	pdfLocationW, pdfLocationH                         = 150.0, 100.0
	pdfLocationCaptionY                                = 210.0
	pdfHeadingY                                        = 50.0
	pdfRowStartY, pdfRowStep                           = 65.0, 10.0
	pdfObservationsY, pdfObservationsTextY             = 140.0, 150.0
	pdfDateY                                           = 170.0
	pdfSignatureY                                      = 240.0
	pdfPhotoX, pdfPhotoW, pdfPhotoH                    = 30.0, 150.0, 90.0
	pdfPhotoTopCaptionY, pdfPhotoTopY                  = 50.0, 60.0
	pdfPhotoBottomCaptionY, pdfPhotoBottomY            = 170.0, 180.0
	pdfFooterLineY, pdfFooterTextY                     = 280.0, 287.0
	pdfFooterLeftX, pdfFooterRightX                    = 20.0, 190.0
)

type pdfImage struct {
	imageType string
	width     int
	height    int
}

type pdfRenderer struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	record laudo.Record
	images map[string]pdfImage
}

// buildPDF renders every planned page as absolute-positioned draw calls
// on an A4 canvas. Per-image failures degrade to placeholder boxes; only
// a container-level failure is returned.
func buildPDF(r laudo.Record, plan laudo.Plan) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(r.FieldOr(laudo.FieldTitle, laudo.FallbackTitle), true)

	p := &pdfRenderer{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		record: r,
		images: make(map[string]pdfImage),
	}

	for _, page := range plan.Pages {
		pdf.AddPage()
		switch page.Type {
		case laudo.PageCover:
			p.coverPage()
		case laudo.PageDataSheet:
			p.dataSheetPage()
		case laudo.PageTechnicalSummary:
			p.technicalPage()
		case laudo.PagePhotoPair:
			p.photoPage(page)
		}
		p.footer(page.PageNumber)
	}

	if pdf.Err() {
		return nil, pdf.Error()
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *pdfRenderer) coverPage() {
	p.logo()

	p.pdf.SetTextColor(0, 0, 0)
	p.pdf.SetFont("Times", "B", 14)
	title := p.record.FieldOr(laudo.FieldTitle, laudo.FallbackTitle)
	y := pdfTitleY
	for _, line := range p.pdf.SplitText(p.tr(title), pdfContentW) {
		p.pdf.SetXY(pdfContentX, y-5)
		p.pdf.CellFormat(pdfContentW, 7, line, "", 0, "C", false, 0, "")
		y += 7
	}

	p.placeImage("location", p.record.LocationImage, imagepipeline.PhotoProfile,
		pdfLocationX, pdfLocationY, pdfLocationW, pdfLocationH, laudo.PlaceholderLocationText)

	p.pdf.SetFont("Times", "", 11)
	p.pdf.SetXY(pdfContentX, pdfLocationCaptionY-3)
	p.pdf.CellFormat(pdfContentW, 6, p.tr(laudo.LocationCaption), "", 0, "C", false, 0, "")
}

func (p *pdfRenderer) dataSheetPage() {
	p.logo()

	p.pdf.SetFont("Times", "B", 14)
	p.pdf.Text(pdfContentX, pdfHeadingY, p.tr(laudo.DataSheetHeading(p.record.Kind)))

	y := pdfRowStartY
	for _, row := range laudo.DataSheetRows(p.record.Kind) {
		p.pdf.SetFont("Times", "B", 12)
		label := p.tr(row.Label)
		p.pdf.Text(pdfContentX, y, label)

		// long labels push the value column out, as on the reference sheet
		valueX := 70.0
		if p.pdf.GetStringWidth(label) > 48 {
			valueX = 100.0
		}
		p.pdf.SetFont("Times", "", 12)
		p.pdf.Text(valueX, y, p.tr(p.record.FieldOr(row.Field, laudo.FallbackValue)))
		y += pdfRowStep
	}

	p.pdf.SetFont("Times", "B", 12)
	p.pdf.Text(pdfContentX, pdfObservationsY, p.tr(laudo.ObservationsLabel))
	p.pdf.SetFont("Times", "", 12)
	observations := p.record.FieldOr(laudo.FieldObservations, laudo.FallbackValue)
	lines := p.pdf.SplitText(p.tr(observations), pdfContentW)
	if len(lines) > 3 {
		lines = lines[:3]
	}
	for i, line := range lines {
		p.pdf.Text(pdfContentX, pdfObservationsTextY+float64(i)*5, line)
	}

	p.pdf.SetFont("Times", "B", 12)
	p.pdf.Text(pdfContentX, pdfDateY, p.tr(laudo.DateLabel(p.record.Kind)))
	p.pdf.SetFont("Times", "", 12)
	p.pdf.Text(70, pdfDateY, p.tr(p.record.FieldOr(laudo.FieldDate, laudo.FallbackValue)))
}

func (p *pdfRenderer) technicalPage() {
	p.logo()

	p.pdf.SetFont("Times", "B", 14)
	p.pdf.Text(pdfContentX, pdfHeadingY, p.tr(laudo.TechnicalHeading))

	p.pdf.SetFont("Times", "", 12)
	text := p.record.FieldOr(laudo.FieldTechnicalInfo, laudo.FallbackTechnicalInfo)
	lines := p.pdf.SplitText(p.tr(text), pdfContentW)
	y := pdfRowStartY
	for _, line := range lines {
		if y > pdfSignatureY-15 {
			break
		}
		p.pdf.Text(pdfContentX, y, line)
		y += 5.5
	}

	p.pdf.SetFont("Times", "", 12)
	p.pdf.SetXY(pdfContentX, pdfSignatureY-3)
	p.pdf.CellFormat(pdfContentW, 6, p.tr(p.record.FieldOr(laudo.FieldEngineer, laudo.FallbackEngineer)), "", 0, "C", false, 0, "")
	p.pdf.SetXY(pdfContentX, pdfSignatureY+7)
	p.pdf.CellFormat(pdfContentW, 6, p.tr(p.record.FieldOr(laudo.FieldRegistration, laudo.FallbackRegistration)), "", 0, "C", false, 0, "")
}

func (p *pdfRenderer) photoPage(page laudo.PageDescriptor) {
	p.logo()

	for i, photo := range page.Photos {
		captionY, imageY := pdfPhotoTopCaptionY, pdfPhotoTopY
		if i == 1 {
			captionY, imageY = pdfPhotoBottomCaptionY, pdfPhotoBottomY
		}

		caption := photo.Caption
		if caption == "" {
			caption = laudo.FallbackCaption
		}
		p.pdf.SetFont("Times", "", 11)
		p.pdf.SetXY(pdfPhotoX, captionY-4)
		p.pdf.CellFormat(pdfPhotoW, 5, p.tr(caption), "", 0, "C", false, 0, "")

		name := fmt.Sprintf("photo-%s", photo.ID)
		p.placeImage(name, photo.Source, imagepipeline.PhotoProfile,
			pdfPhotoX, imageY, pdfPhotoW, pdfPhotoH, laudo.PlaceholderImageText)
	}
}

func (p *pdfRenderer) footer(pageNumber int) {
	p.pdf.SetFont("Times", "", 10)
	p.pdf.Line(pdfFooterLeftX, pdfFooterLineY, pdfFooterRightX, pdfFooterLineY)
	p.pdf.Text(pdfFooterLeftX, pdfFooterTextY, p.tr(laudo.FooterContact))

	num := fmt.Sprintf("%d", pageNumber)
	p.pdf.Text(pdfFooterRightX-p.pdf.GetStringWidth(num), pdfFooterTextY, num)
}

// logo draws the report logo at its fixed slot. An absent or undecodable
// logo leaves the slot empty; the slot space stays reserved so every page
// keeps the same content origin.
func (p *pdfRenderer) logo() {
	if p.record.LogoImage == "" {
		return
	}
	img, ok := p.register("logo", p.record.LogoImage, imagepipeline.LogoProfile)
	if !ok {
		return
	}
	p.draw("logo", img, pdfLogoX, pdfLogoY, pdfLogoW, pdfLogoH)
}

// placeImage draws source fitted into the given box, substituting the
// fixed placeholder box when the source is absent or cannot be decoded.
// The box footprint is identical in both cases.
func (p *pdfRenderer) placeImage(name, source string, profile imagepipeline.Profile, x, y, w, h float64, placeholder string) {
	if source == "" {
		p.placeholderBox(x, y, w, h, placeholder)
		return
	}
	img, ok := p.register(name, source, profile)
	if !ok {
		p.placeholderBox(x, y, w, h, placeholder)
		return
	}
	p.draw(name, img, x, y, w, h)
}

// register re-encodes and registers an image with the document once,
// keyed by name. Subsequent pages reuse the registered bitmap.
func (p *pdfRenderer) register(name, source string, profile imagepipeline.Profile) (pdfImage, bool) {
	if img, seen := p.images[name]; seen {
		return img, img.imageType != ""
	}

	enc, err := imagepipeline.Reencode(source, profile)
	if err != nil {
		// remember the failure so retries on later pages are skipped
		p.images[name] = pdfImage{}
		return pdfImage{}, false
	}

	imageType := "JPEG"
	if enc.Format == "png" {
		imageType = "PNG"
	}
	p.pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(enc.Data))

	img := pdfImage{imageType: imageType, width: enc.Width, height: enc.Height}
	p.images[name] = img
	return img, true
}

// draw places a registered image centered in the box, scaled to fit with
// the aspect ratio preserved.
func (p *pdfRenderer) draw(name string, img pdfImage, x, y, w, h float64) {
	drawW, drawH := w, h
	if img.width > 0 && img.height > 0 {
		scaleW := w / float64(img.width)
		scaleH := h / float64(img.height)
		scale := scaleW
		if scaleH < scale {
			scale = scaleH
		}
		drawW = float64(img.width) * scale
		drawH = float64(img.height) * scale
	}
	offsetX := x + (w-drawW)/2
	offsetY := y + (h-drawH)/2

	p.pdf.ImageOptions(name, offsetX, offsetY, drawW, drawH, false,
		gofpdf.ImageOptions{ImageType: img.imageType}, 0, "")
}

func (p *pdfRenderer) placeholderBox(x, y, w, h float64, text string) {
	p.pdf.SetFillColor(240, 240, 240)
	p.pdf.Rect(x, y, w, h, "F")
	p.pdf.SetFont("Times", "", 12)
	p.pdf.SetXY(x, y+h/2-3)
	p.pdf.CellFormat(w, 6, p.tr(text), "", 0, "C", false, 0, "")
}
