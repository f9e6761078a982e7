package dto

import "github.com/imovelhub/imovelhub-backend/internal/domain/entities"

// ContractTemplateResponse representa um modelo de documento
type ContractTemplateResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Body        string `json:"body"`
}

// ToContractTemplateResponse converte uma entidade ContractTemplate
func ToContractTemplateResponse(template *entities.ContractTemplate) ContractTemplateResponse {
	return ContractTemplateResponse{
		ID:          template.ID,
		Name:        template.Name,
		Type:        string(template.Type),
		Description: template.Description,
		Body:        template.Body,
	}
}

// ToContractTemplateResponses converte a lista de modelos
func ToContractTemplateResponses(templates []entities.ContractTemplate) []ContractTemplateResponse {
	responses := make([]ContractTemplateResponse, len(templates))
	for i := range templates {
		responses[i] = ToContractTemplateResponse(&templates[i])
	}
	return responses
}
