package exporter

// WordprocessingML serialization types for the Word target. Only the
// subset the report document needs is modeled: paragraphs, runs, the
// two-column data table, inline drawings, page breaks and the footer
// with its page-number field. Element order inside each struct follows
// the CT_* schema sequences.

import "encoding/xml"

const (
	nsWordMain       = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRelationships  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsWordDrawing    = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsDrawingMain    = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsDrawingPicture = "http://schemas.openxmlformats.org/drawingml/2006/picture"

	relTypeFooter = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer"
	relTypeImage  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"

	emusPerPixel = 9525
)

type docxDocument struct {
	XMLName xml.Name `xml:"w:document"`
	NsW     string   `xml:"xmlns:w,attr"`
	NsR     string   `xml:"xmlns:r,attr"`
	NsWP    string   `xml:"xmlns:wp,attr"`
	NsA     string   `xml:"xmlns:a,attr"`
	NsPic   string   `xml:"xmlns:pic,attr"`
	Body    docxBody `xml:"w:body"`
}

type docxBody struct {
	Content []any
	SectPr  docxSectPr
}

type docxP struct {
	XMLName xml.Name `xml:"w:p"`
	Props   *docxPPr `xml:"w:pPr,omitempty"`
	Runs    []docxR
}

type docxPPr struct {
	Borders *docxPBdr    `xml:"w:pBdr,omitempty"`
	Tabs    *docxTabs    `xml:"w:tabs,omitempty"`
	Spacing *docxSpacing `xml:"w:spacing,omitempty"`
	Jc      *docxVal     `xml:"w:jc,omitempty"`
	RunPr   *docxRPr     `xml:"w:rPr,omitempty"`
}

type docxPBdr struct {
	Top docxBorder `xml:"w:top"`
}

type docxBorder struct {
	Val   string `xml:"w:val,attr"`
	Size  int    `xml:"w:sz,attr"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

type docxTabs struct {
	Tabs []docxTab `xml:"w:tab"`
}

type docxTab struct {
	Val string `xml:"w:val,attr"`
	Pos int    `xml:"w:pos,attr"`
}

type docxSpacing struct {
	Before int `xml:"w:before,attr,omitempty"`
	After  int `xml:"w:after,attr,omitempty"`
}

type docxVal struct {
	Val string `xml:"w:val,attr"`
}

type docxR struct {
	XMLName   xml.Name       `xml:"w:r"`
	Props     *docxRPr       `xml:"w:rPr,omitempty"`
	Break     *docxBr        `xml:"w:br,omitempty"`
	Tab       *docxEmpty     `xml:"w:tab,omitempty"`
	FldChar   *docxFldChar   `xml:"w:fldChar,omitempty"`
	InstrText *docxInstrText `xml:"w:instrText,omitempty"`
	Drawing   *docxDrawing   `xml:"w:drawing,omitempty"`
	Text      *docxText      `xml:"w:t,omitempty"`
}

type docxEmpty struct{}

type docxRPr struct {
	Bold  *docxEmpty `xml:"w:b,omitempty"`
	Fonts *docxFonts `xml:"w:rFonts,omitempty"`
	Size  *docxVal   `xml:"w:sz,omitempty"`
	SzCs  *docxVal   `xml:"w:szCs,omitempty"`
}

type docxFonts struct {
	ASCII string `xml:"w:ascii,attr"`
	HAnsi string `xml:"w:hAnsi,attr"`
}

type docxBr struct {
	Type string `xml:"w:type,attr,omitempty"`
}

type docxFldChar struct {
	Type string `xml:"w:fldCharType,attr"`
}

type docxInstrText struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

type docxText struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Value   string   `xml:",chardata"`
}

type docxTbl struct {
	XMLName xml.Name    `xml:"w:tbl"`
	Props   docxTblPr   `xml:"w:tblPr"`
	Grid    docxTblGrid `xml:"w:tblGrid"`
	Rows    []docxTr
}

type docxTblPr struct {
	Width   docxTblW        `xml:"w:tblW"`
	Borders *docxTblBorders `xml:"w:tblBorders,omitempty"`
}

type docxTblW struct {
	W    int    `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type docxTblBorders struct {
	Top     docxBorder `xml:"w:top"`
	Left    docxBorder `xml:"w:left"`
	Bottom  docxBorder `xml:"w:bottom"`
	Right   docxBorder `xml:"w:right"`
	InsideH docxBorder `xml:"w:insideH"`
	InsideV docxBorder `xml:"w:insideV"`
}

type docxTblGrid struct {
	Cols []docxGridCol `xml:"w:gridCol"`
}

type docxGridCol struct {
	W int `xml:"w:w,attr"`
}

type docxTr struct {
	XMLName xml.Name `xml:"w:tr"`
	Cells   []docxTc
}

type docxTc struct {
	XMLName    xml.Name `xml:"w:tc"`
	Props      docxTcPr `xml:"w:tcPr"`
	Paragraphs []docxP
}

type docxTcPr struct {
	Width docxTblW `xml:"w:tcW"`
}

type docxDrawing struct {
	Inline docxInline `xml:"wp:inline"`
}

type docxInline struct {
	DistT   int         `xml:"distT,attr"`
	DistB   int         `xml:"distB,attr"`
	DistL   int         `xml:"distL,attr"`
	DistR   int         `xml:"distR,attr"`
	Extent  docxExtent  `xml:"wp:extent"`
	DocPr   docxDocPr   `xml:"wp:docPr"`
	Graphic docxGraphic `xml:"a:graphic"`
}

type docxExtent struct {
	CX int64 `xml:"cx,attr"`
	CY int64 `xml:"cy,attr"`
}

type docxDocPr struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type docxGraphic struct {
	NsA  string          `xml:"xmlns:a,attr"`
	Data docxGraphicData `xml:"a:graphicData"`
}

type docxGraphicData struct {
	URI string  `xml:"uri,attr"`
	Pic docxPic `xml:"pic:pic"`
}

type docxPic struct {
	NsPic    string       `xml:"xmlns:pic,attr"`
	NvPicPr  docxNvPicPr  `xml:"pic:nvPicPr"`
	BlipFill docxBlipFill `xml:"pic:blipFill"`
	SpPr     docxSpPr     `xml:"pic:spPr"`
}

type docxNvPicPr struct {
	CNvPr    docxDocPr `xml:"pic:cNvPr"`
	CNvPicPr docxEmpty `xml:"pic:cNvPicPr"`
}

type docxBlipFill struct {
	Blip    docxBlip    `xml:"a:blip"`
	Stretch docxStretch `xml:"a:stretch"`
}

type docxBlip struct {
	Embed string `xml:"r:embed,attr"`
}

type docxStretch struct {
	FillRect docxEmpty `xml:"a:fillRect"`
}

type docxSpPr struct {
	Xfrm docxXfrm     `xml:"a:xfrm"`
	Geom docxPrstGeom `xml:"a:prstGeom"`
}

type docxXfrm struct {
	Off docxOff    `xml:"a:off"`
	Ext docxExtent `xml:"a:ext"`
}

type docxOff struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type docxPrstGeom struct {
	Prst  string    `xml:"prst,attr"`
	AvLst docxEmpty `xml:"a:avLst"`
}

type docxSectPr struct {
	XMLName   xml.Name      `xml:"w:sectPr"`
	FooterRef docxFooterRef `xml:"w:footerReference"`
	PgSz      docxPgSz      `xml:"w:pgSz"`
	PgMar     docxPgMar     `xml:"w:pgMar"`
}

type docxFooterRef struct {
	Type string `xml:"w:type,attr"`
	ID   string `xml:"r:id,attr"`
}

// A4 page in twentieths of a point.
type docxPgSz struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type docxPgMar struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
}

type docxFooterPart struct {
	XMLName    xml.Name `xml:"w:ftr"`
	NsW        string   `xml:"xmlns:w,attr"`
	NsR        string   `xml:"xmlns:r,attr"`
	Paragraphs []docxP
}

type docxRelationships struct {
	XMLName xml.Name  `xml:"Relationships"`
	Ns      string    `xml:"xmlns,attr"`
	Rels    []docxRel `xml:"Relationship"`
}

type docxRel struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}
