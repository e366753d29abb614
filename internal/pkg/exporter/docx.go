package exporter

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/vistorialabs/laudoforge/internal/pkg/imagepipeline"
	"github.com/vistorialabs/laudoforge/internal/pkg/laudo"
)

const (
	docxFontFamily = "Times New Roman"

	// half-points
	docxBodySize    = "24"
	docxTitleSize   = "28"
	docxHeadingSize = "26"
	docxCaptionSize = "22"
	docxFooterSize  = "20"

	// A4 geometry in twips
	docxPageW     = 11906
	docxPageH     = 16838
	docxMargin    = 1440
	docxRightTab  = docxPageW - 2*docxMargin
	docxTableW    = 5000 // pct units
	docxLabelColW = 1500
	docxValueColW = 3500

	// content boxes in pixels, matching the reference flow layout
	docxImageBoxW, docxImageBoxH = 400, 250
	docxLogoBoxW, docxLogoBoxH   = 100, 50
)

type docxMedia struct {
	filename string
	data     []byte
}

type docxBuilder struct {
	content   []any
	media     []docxMedia
	rels      []docxRel
	drawingID int
}

// buildDocx renders the plan as a flow document: one content block per
// page with explicit page-break runs between pages, a running footer with
// the contact line and page number, and inline images re-encoded by the
// image pipeline. Undecodable images are embedded as placeholder bitmaps
// of the same box so the flow never shifts.
func buildDocx(r laudo.Record, plan laudo.Plan) ([]byte, error) {
	b := &docxBuilder{
		rels: []docxRel{{ID: "rId1", Type: relTypeFooter, Target: "footer1.xml"}},
	}

	for i, page := range plan.Pages {
		if i > 0 {
			b.pageBreak()
		}
		switch page.Type {
		case laudo.PageCover:
			b.coverSection(r)
		case laudo.PageDataSheet:
			b.dataSheetSection(r)
		case laudo.PageTechnicalSummary:
			b.technicalSection(r)
		case laudo.PagePhotoPair:
			b.photoSection(page)
		}
	}

	return b.pack()
}

func (b *docxBuilder) add(node any) {
	b.content = append(b.content, node)
}

func (b *docxBuilder) pageBreak() {
	b.add(docxP{Runs: []docxR{{Break: &docxBr{Type: "page"}}}})
}

type textOpts struct {
	bold    bool
	size    string
	align   string
	spacing *docxSpacing
}

func textRun(text string, bold bool, size string) docxR {
	props := &docxRPr{
		Fonts: &docxFonts{ASCII: docxFontFamily, HAnsi: docxFontFamily},
		Size:  &docxVal{Val: size},
		SzCs:  &docxVal{Val: size},
	}
	if bold {
		props.Bold = &docxEmpty{}
	}
	return docxR{
		Props: props,
		Text:  &docxText{Value: text, Space: "preserve"},
	}
}

func paragraph(text string, opts textOpts) docxP {
	size := opts.size
	if size == "" {
		size = docxBodySize
	}
	p := docxP{Runs: []docxR{textRun(text, opts.bold, size)}}
	if opts.align != "" || opts.spacing != nil {
		p.Props = &docxPPr{Spacing: opts.spacing}
		if opts.align != "" {
			p.Props.Jc = &docxVal{Val: opts.align}
		}
	}
	return p
}

func (b *docxBuilder) coverSection(r laudo.Record) {
	if r.LogoImage != "" {
		if logo, err := imagepipeline.Reencode(r.LogoImage, imagepipeline.LogoProfile); err == nil {
			b.add(b.imageParagraph(logo, docxLogoBoxW, docxLogoBoxH, "left"))
		} else {
			b.add(docxP{})
		}
	} else {
		// keep the logo slot so the title lands at the same offset
		b.add(docxP{})
	}

	b.add(paragraph(r.FieldOr(laudo.FieldTitle, laudo.FallbackTitle), textOpts{
		bold:    true,
		size:    docxTitleSize,
		align:   "center",
		spacing: &docxSpacing{After: 400},
	}))

	location := imagepipeline.MustReencode(r.LocationImage, imagepipeline.PhotoProfile, laudo.PlaceholderLocationText)
	b.add(b.imageParagraph(location, docxImageBoxW, docxImageBoxH, "center"))

	b.add(paragraph(laudo.LocationCaption, textOpts{
		align:   "center",
		spacing: &docxSpacing{After: 400},
	}))
}

func (b *docxBuilder) dataSheetSection(r laudo.Record) {
	b.add(paragraph(laudo.DataSheetHeading(r.Kind), textOpts{
		bold:    true,
		size:    docxHeadingSize,
		spacing: &docxSpacing{After: 200},
	}))

	border := docxBorder{Val: "single", Size: 4, Color: "000000"}
	table := docxTbl{
		Props: docxTblPr{
			Width: docxTblW{W: docxTableW, Type: "pct"},
			Borders: &docxTblBorders{
				Top: border, Left: border, Bottom: border,
				Right: border, InsideH: border, InsideV: border,
			},
		},
		Grid: docxTblGrid{Cols: []docxGridCol{{W: 3000}, {W: 6000}}},
	}

	addRow := func(label, value string) {
		table.Rows = append(table.Rows, docxTr{
			Cells: []docxTc{
				{
					Props:      docxTcPr{Width: docxTblW{W: docxLabelColW, Type: "pct"}},
					Paragraphs: []docxP{paragraph(label, textOpts{bold: true})},
				},
				{
					Props:      docxTcPr{Width: docxTblW{W: docxValueColW, Type: "pct"}},
					Paragraphs: []docxP{paragraph(value, textOpts{})},
				},
			},
		})
	}

	for _, row := range laudo.DataSheetRows(r.Kind) {
		addRow(row.Label, r.FieldOr(row.Field, laudo.FallbackValue))
	}
	addRow(laudo.ObservationsLabel, r.FieldOr(laudo.FieldObservations, laudo.FallbackValue))
	addRow(laudo.DateLabel(r.Kind), r.FieldOr(laudo.FieldDate, laudo.FallbackValue))

	b.add(table)
}

func (b *docxBuilder) technicalSection(r laudo.Record) {
	b.add(paragraph(laudo.TechnicalHeading, textOpts{
		bold:    true,
		size:    docxHeadingSize,
		spacing: &docxSpacing{After: 200},
	}))
	b.add(paragraph(r.FieldOr(laudo.FieldTechnicalInfo, laudo.FallbackTechnicalInfo), textOpts{
		spacing: &docxSpacing{After: 400},
	}))
	b.add(paragraph(r.FieldOr(laudo.FieldEngineer, laudo.FallbackEngineer), textOpts{
		align:   "center",
		spacing: &docxSpacing{Before: 400, After: 100},
	}))
	b.add(paragraph(r.FieldOr(laudo.FieldRegistration, laudo.FallbackRegistration), textOpts{
		align:   "center",
		spacing: &docxSpacing{After: 400},
	}))
}

func (b *docxBuilder) photoSection(page laudo.PageDescriptor) {
	for _, photo := range page.Photos {
		caption := photo.Caption
		if caption == "" {
			caption = laudo.FallbackCaption
		}
		b.add(paragraph(caption, textOpts{
			size:    docxCaptionSize,
			align:   "center",
			spacing: &docxSpacing{Before: 200, After: 100},
		}))

		img := imagepipeline.MustReencode(photo.Source, imagepipeline.PhotoProfile, laudo.PlaceholderImageText)
		b.add(b.imageParagraph(img, docxImageBoxW, docxImageBoxH, "center"))
	}
}

// imageParagraph registers the encoded image as a media part and returns
// a paragraph with the inline drawing scaled to fit the box, aspect
// ratio preserved.
func (b *docxBuilder) imageParagraph(enc *imagepipeline.Encoded, boxW, boxH int, align string) docxP {
	b.drawingID++
	ext := "jpeg"
	if enc.Format == "png" {
		ext = "png"
	}
	filename := fmt.Sprintf("image%d.%s", b.drawingID, ext)
	relID := fmt.Sprintf("rId%d", len(b.rels)+1)

	b.media = append(b.media, docxMedia{filename: filename, data: enc.Data})
	b.rels = append(b.rels, docxRel{ID: relID, Type: relTypeImage, Target: "media/" + filename})

	width, height := fitBox(enc.Width, enc.Height, boxW, boxH)
	cx := int64(width) * emusPerPixel
	cy := int64(height) * emusPerPixel

	name := fmt.Sprintf("Imagem %d", b.drawingID)
	drawing := &docxDrawing{
		Inline: docxInline{
			Extent: docxExtent{CX: cx, CY: cy},
			DocPr:  docxDocPr{ID: b.drawingID, Name: name},
			Graphic: docxGraphic{
				NsA: nsDrawingMain,
				Data: docxGraphicData{
					URI: nsDrawingPicture,
					Pic: docxPic{
						NsPic: nsDrawingPicture,
						NvPicPr: docxNvPicPr{
							CNvPr: docxDocPr{ID: b.drawingID, Name: name},
						},
						BlipFill: docxBlipFill{Blip: docxBlip{Embed: relID}},
						SpPr: docxSpPr{
							Xfrm: docxXfrm{Ext: docxExtent{CX: cx, CY: cy}},
							Geom: docxPrstGeom{Prst: "rect"},
						},
					},
				},
			},
		},
	}

	p := docxP{Runs: []docxR{{Drawing: drawing}}}
	if align != "" {
		p.Props = &docxPPr{
			Jc:      &docxVal{Val: align},
			Spacing: &docxSpacing{After: 200},
		}
	}
	return p
}

func fitBox(width, height, boxW, boxH int) (int, int) {
	if width <= 0 || height <= 0 {
		return boxW, boxH
	}
	scale := 1.0
	if s := float64(boxW) / float64(width); s < scale {
		scale = s
	}
	if s := float64(boxH) / float64(height); s < scale {
		scale = s
	}
	return int(float64(width) * scale), int(float64(height) * scale)
}

func footerPart() docxFooterPart {
	runProps := func() *docxRPr {
		return &docxRPr{
			Fonts: &docxFonts{ASCII: docxFontFamily, HAnsi: docxFontFamily},
			Size:  &docxVal{Val: docxFooterSize},
			SzCs:  &docxVal{Val: docxFooterSize},
		}
	}

	return docxFooterPart{
		NsW: nsWordMain,
		NsR: nsRelationships,
		Paragraphs: []docxP{{
			Props: &docxPPr{
				Borders: &docxPBdr{Top: docxBorder{Val: "single", Size: 4, Color: "000000"}},
				Tabs:    &docxTabs{Tabs: []docxTab{{Val: "right", Pos: docxRightTab}}},
			},
			Runs: []docxR{
				{Props: runProps(), Text: &docxText{Value: laudo.FooterContact, Space: "preserve"}},
				{Props: runProps(), Tab: &docxEmpty{}},
				{Props: runProps(), Text: &docxText{Value: "Página ", Space: "preserve"}},
				{Props: runProps(), FldChar: &docxFldChar{Type: "begin"}},
				{Props: runProps(), InstrText: &docxInstrText{Value: " PAGE ", Space: "preserve"}},
				{Props: runProps(), FldChar: &docxFldChar{Type: "end"}},
			},
		}},
	}
}

const docxContentTypes = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Default Extension="png" ContentType="image/png"/><Default Extension="jpeg" ContentType="image/jpeg"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/><Override PartName="/word/footer1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"/></Types>`

const docxRootRels = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

// pack assembles the OPC zip container.
func (b *docxBuilder) pack() ([]byte, error) {
	document := docxDocument{
		NsW:   nsWordMain,
		NsR:   nsRelationships,
		NsWP:  nsWordDrawing,
		NsA:   nsDrawingMain,
		NsPic: nsDrawingPicture,
		Body: docxBody{
			Content: b.content,
			SectPr: docxSectPr{
				FooterRef: docxFooterRef{Type: "default", ID: "rId1"},
				PgSz:      docxPgSz{W: docxPageW, H: docxPageH},
				PgMar: docxPgMar{
					Top: docxMargin, Right: docxMargin,
					Bottom: docxMargin, Left: docxMargin,
					Header: 720, Footer: 720,
				},
			},
		},
	}

	documentXML, err := xml.Marshal(document)
	if err != nil {
		return nil, fmt.Errorf("marshaling document.xml: %w", err)
	}
	footerXML, err := xml.Marshal(footerPart())
	if err != nil {
		return nil, fmt.Errorf("marshaling footer1.xml: %w", err)
	}
	relsXML, err := xml.Marshal(docxRelationships{
		Ns:   "http://schemas.openxmlformats.org/package/2006/relationships",
		Rels: b.rels,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling document relationships: %w", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(docxContentTypes)},
		{"_rels/.rels", []byte(docxRootRels)},
		{"word/document.xml", append([]byte(xml.Header), documentXML...)},
		{"word/_rels/document.xml.rels", append([]byte(xml.Header), relsXML...)},
		{"word/footer1.xml", append([]byte(xml.Header), footerXML...)},
	}
	for _, media := range b.media {
		parts = append(parts, struct {
			name string
			data []byte
		}{"word/media/" + media.filename, media.data})
	}

	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("creating zip entry %s: %w", part.name, err)
		}
		if _, err := w.Write(part.data); err != nil {
			return nil, fmt.Errorf("writing zip entry %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing container: %w", err)
	}
	return buf.Bytes(), nil
}
