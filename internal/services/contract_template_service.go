package services

import (
	"github.com/imovelhub/imovelhub-backend/internal/domain/entities"
	"github.com/imovelhub/imovelhub-backend/internal/domain/errors"
)

// catalog é a lista estática de modelos de documento.
// Não há persistência nem mutação; o conteúdo vive no binário.
var catalog = []entities.ContractTemplate{
	{
		ID:          "ctr-locacao-residencial",
		Name:        "Contrato de Locação Residencial",
		Type:        entities.TemplateContract,
		Description: "Contrato padrão de locação de imóvel residencial",
		Body:        "CONTRATO DE LOCAÇÃO RESIDENCIAL\n\nLocador: {{locador}}\nLocatário: {{locatario}}\nImóvel: {{endereco}}\nPrazo: {{prazo}} meses\nAluguel mensal: R$ {{valor}}",
	},
	{
		ID:          "ctr-locacao-comercial",
		Name:        "Contrato de Locação Comercial",
		Type:        entities.TemplateContract,
		Description: "Contrato padrão de locação de imóvel comercial",
		Body:        "CONTRATO DE LOCAÇÃO COMERCIAL\n\nLocador: {{locador}}\nLocatário: {{locatario}}\nImóvel: {{endereco}}\nPrazo: {{prazo}} meses\nAluguel mensal: R$ {{valor}}",
	},
	{
		ID:          "acd-aditivo-prazo",
		Name:        "Aditivo de Prorrogação de Prazo",
		Type:        entities.TemplateAgreement,
		Description: "Aditivo contratual para prorrogação do prazo de locação",
		Body:        "ADITIVO CONTRATUAL\n\nContrato original: {{contrato}}\nNovo prazo: {{prazo}} meses",
	},
	{
		ID:          "acd-rescisao",
		Name:        "Acordo de Rescisão",
		Type:        entities.TemplateAgreement,
		Description: "Acordo de rescisão amigável de contrato de locação",
		Body:        "ACORDO DE RESCISÃO\n\nContrato: {{contrato}}\nData de desocupação: {{data}}",
	},
	{
		ID:          "vst-entrada",
		Name:        "Laudo de Vistoria de Entrada",
		Type:        entities.TemplateVisit,
		Description: "Laudo de vistoria na entrega das chaves",
		Body:        "LAUDO DE VISTORIA DE ENTRADA\n\nImóvel: {{endereco}}\nData: {{data}}\nEstado geral: {{estado}}",
	},
	{
		ID:          "vst-saida",
		Name:        "Laudo de Vistoria de Saída",
		Type:        entities.TemplateVisit,
		Description: "Laudo de vistoria na devolução das chaves",
		Body:        "LAUDO DE VISTORIA DE SAÍDA\n\nImóvel: {{endereco}}\nData: {{data}}\nEstado geral: {{estado}}",
	},
}

// ContractTemplateService expõe o catálogo imutável de modelos
type ContractTemplateService struct{}

// NewContractTemplateService cria um novo ContractTemplateService
func NewContractTemplateService() *ContractTemplateService {
	return &ContractTemplateService{}
}

// List retorna todos os modelos
func (s *ContractTemplateService) List() []entities.ContractTemplate {
	templates := make([]entities.ContractTemplate, len(catalog))
	copy(templates, catalog)
	return templates
}

// GetByID busca um modelo pelo id único
func (s *ContractTemplateService) GetByID(id string) (*entities.ContractTemplate, error) {
	for i := range catalog {
		if catalog[i].ID == id {
			template := catalog[i]
			return &template, nil
		}
	}
	return nil, errors.ErrTemplateNotFound
}

// ListByType filtra por tipo; tipo desconhecido é erro de validação
func (s *ContractTemplateService) ListByType(templateType entities.TemplateType) ([]entities.ContractTemplate, error) {
	if !templateType.IsValid() {
		return nil, errors.ErrInvalidTemplateType
	}

	templates := make([]entities.ContractTemplate, 0)
	for _, template := range catalog {
		if template.Type == templateType {
			templates = append(templates, template)
		}
	}
	return templates, nil
}
