// Package laudo holds the report domain model, the normalizer and the
// pagination planner shared by the preview and export renderers.
package laudo

// Kind selects which field subset and document template apply to a report.
type Kind string

const (
	KindPrecautionary Kind = "precautionary"
	KindAccounting    Kind = "accounting"
	KindExtrajudicial Kind = "extrajudicial"
)

// Field keys shared by every report kind.
const (
	FieldTitle         = "title"
	FieldObservations  = "observations"
	FieldDate          = "date"
	FieldTechnicalInfo = "technicalInfo"
	FieldEngineer      = "engineer"
	FieldRegistration  = "registration"
)

// Field keys of the precautionary (vistoria cautelar) kind.
const (
	FieldAddress              = "address"
	FieldOccupant             = "occupant"
	FieldInspector            = "inspector"
	FieldUsage                = "usage"
	FieldAge                  = "age"
	FieldBuildingType         = "buildingType"
	FieldConservationState    = "conservationState"
	FieldConstructionStandard = "constructionStandard"
)

// Field keys of the accounting kind.
const (
	FieldCompany          = "company"
	FieldCNPJ             = "cnpj"
	FieldPeriod           = "period"
	FieldAccountant       = "accountant"
	FieldTaxRegime        = "taxRegime"
	FieldRevenue          = "revenue"
	FieldFinancialSummary = "financialSummary"
)

// Field keys of the extrajudicial kind.
const (
	FieldProcessNumber = "processNumber"
	FieldPlaintiff     = "plaintiff"
	FieldDefendant     = "defendant"
	FieldCourt         = "court"
	FieldSubject       = "subject"
)

// Photo is one attached image within a report. Source is either a base64
// data URL or an http(s) URL; the image pipeline resolves it at render time.
type Photo struct {
	ID      string `json:"id"`
	Source  string `json:"url"`
	Caption string `json:"caption"`
}

// Record is the normalized, type-tagged document model consumed by the
// planner and the renderers. Fields always contains every recognized key
// for the kind (possibly empty), plus any unrecognized keys the caller
// supplied, which are preserved but never rendered.
type Record struct {
	Kind          Kind
	Fields        map[string]string
	LocationImage string
	LogoImage     string
	Photos        []Photo
}

// Field returns the value for key, or "" when absent.
func (r Record) Field(key string) string {
	return r.Fields[key]
}

// FieldOr returns the value for key, or fallback when the value is empty.
func (r Record) FieldOr(key, fallback string) string {
	if v := r.Fields[key]; v != "" {
		return v
	}
	return fallback
}

// Row is one label/value line of the data-sheet page. Field names the
// record field the value is read from.
type Row struct {
	Label string
	Field string
}

var precautionaryRows = []Row{
	{"Ocupante / telefone:", FieldOccupant},
	{"Vistoriador:", FieldInspector},
	{"Uso do Imóvel:", FieldUsage},
	{"Idade real ou estimada / aparente:", FieldAge},
	{"Tipo de edificação:", FieldBuildingType},
	{"Estado de conservação:", FieldConservationState},
	{"Padrão construtivo:", FieldConstructionStandard},
}

var accountingRows = []Row{
	{"Empresa:", FieldCompany},
	{"CNPJ:", FieldCNPJ},
	{"Período analisado:", FieldPeriod},
	{"Responsável contábil:", FieldAccountant},
	{"Regime tributário:", FieldTaxRegime},
	{"Faturamento no período:", FieldRevenue},
	{"Resumo financeiro:", FieldFinancialSummary},
}

var extrajudicialRows = []Row{
	{"Número do processo:", FieldProcessNumber},
	{"Requerente:", FieldPlaintiff},
	{"Requerido:", FieldDefendant},
	{"Comarca:", FieldCourt},
	{"Objeto da perícia:", FieldSubject},
	{"Endereço da diligência:", FieldAddress},
	{"Perito responsável:", FieldInspector},
}

// DataSheetRows returns the fixed ordered label/value rows of the
// data-sheet page for the given kind. The ordering is identical across
// kinds; only the label set and source fields differ.
func DataSheetRows(k Kind) []Row {
	switch k {
	case KindAccounting:
		return accountingRows
	case KindExtrajudicial:
		return extrajudicialRows
	default:
		return precautionaryRows
	}
}

// DataSheetHeading returns the section heading of the data-sheet page.
func DataSheetHeading(k Kind) string {
	switch k {
	case KindAccounting:
		return "Ficha com dados da empresa e do período analisado:"
	case KindExtrajudicial:
		return "Ficha com dados do processo e das partes:"
	default:
		return "Ficha com dados da construção e seus ocupantes:"
	}
}

// DateLabel returns the label of the inspection-date line.
func DateLabel(k Kind) string {
	if k == KindAccounting {
		return "Data da Análise:"
	}
	return "Data da Diligência:"
}

// RecognizedFields returns the full field set read by the renderers for
// the given kind. Keys outside this set are carried on the record but
// never rendered.
func RecognizedFields(k Kind) []string {
	common := []string{
		FieldTitle, FieldObservations, FieldDate,
		FieldTechnicalInfo, FieldEngineer, FieldRegistration,
	}
	switch k {
	case KindAccounting:
		return append(common,
			FieldCompany, FieldCNPJ, FieldPeriod, FieldAccountant,
			FieldTaxRegime, FieldRevenue, FieldFinancialSummary)
	case KindExtrajudicial:
		return append(common,
			FieldProcessNumber, FieldPlaintiff, FieldDefendant,
			FieldCourt, FieldSubject, FieldAddress, FieldInspector)
	default:
		return append(common,
			FieldAddress, FieldOccupant, FieldInspector, FieldUsage,
			FieldAge, FieldBuildingType, FieldConservationState,
			FieldConstructionStandard)
	}
}

// DefaultFields returns the kind-specific starting field values applied
// when a new report is created.
func DefaultFields(k Kind) map[string]string {
	fields := make(map[string]string, len(RecognizedFields(k)))
	for _, key := range RecognizedFields(k) {
		fields[key] = ""
	}
	switch k {
	case KindAccounting:
		fields[FieldTaxRegime] = "Simples Nacional"
	case KindExtrajudicial:
		fields[FieldSubject] = "Vistoria técnica"
	default:
		fields[FieldUsage] = "Residencial"
		fields[FieldBuildingType] = "Alvenaria"
	}
	return fields
}
