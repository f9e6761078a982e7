package entities

// TemplateType classifica um modelo de documento
type TemplateType string

const (
	TemplateContract  TemplateType = "CTR" // contrato de locação
	TemplateAgreement TemplateType = "ACD" // acordo / aditivo
	TemplateVisit     TemplateType = "VST" // vistoria
)

// IsValid verifica se o tipo é um dos valores conhecidos
func (t TemplateType) IsValid() bool {
	switch t {
	case TemplateContract, TemplateAgreement, TemplateVisit:
		return true
	}
	return false
}

// ContractTemplate é um modelo de documento estático; o catálogo é
// imutável e vive em memória, sem persistência.
type ContractTemplate struct {
	ID          string
	Name        string
	Type        TemplateType
	Description string
	Body        string
}
