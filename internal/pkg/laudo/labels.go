package laudo

// Fallback strings applied at render time. A missing or empty field never
// reaches the output; it is substituted with one of these.
const (
	FallbackValue         = "N/A"
	FallbackTitle         = "VISTORIA 3: RUA BENEDITO DOS SANTOS, 44 – PARQUE SÃO JORGE – SP"
	FallbackTechnicalInfo = "Nenhuma informação técnica disponível."
	FallbackEngineer      = "Engenheiro Responsável"
	FallbackRegistration  = "Registro Profissional"
	FallbackCaption       = "Sem legenda"
)

// Fixed literals shared by all render targets.
const (
	PlaceholderImageText    = "Imagem não disponível"
	PlaceholderLocationText = "Imagem de Localização"
	LocationCaption         = "Localização esquemática do imóvel"
	ObservationsLabel       = "Observações gerais:"
	TechnicalHeading        = "Informações técnicas"
	PhotosHeading           = "Fotos do Imóvel"
	FooterContact           = "Rua Fernão Albernaz 332 - apto 14 - Vila Nova Savoia – Contato: 11 97413-4386"
)
