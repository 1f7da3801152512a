package usecases

import (
	"context"
	"strings"

	"github.com/caions/lead/internal/domain/entities"
	"github.com/caions/lead/internal/domain/repositories"
	"github.com/caions/lead/internal/utils"
)

type LeadUseCase struct {
	leadRepo repositories.ILeadRepository
}

func NewLeadUseCase(leadRepo repositories.ILeadRepository) *LeadUseCase {
	return &LeadUseCase{
		leadRepo: leadRepo,
	}
}

// CreateLead valida a submissão pública e persiste o lead normalizado.
// Nenhum efeito parcial: ou todas as regras passam e o lead é gravado,
// ou o mapa de erros volta intacto para o formulário.
func (uc *LeadUseCase) CreateLead(ctx context.Context, input CreateLeadInput) (*entities.Lead, error) {
	lead, errs := ValidateCreateLead(input)
	if errs != nil {
		return nil, errs
	}

	if err := uc.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	return lead, nil
}

func (uc *LeadUseCase) GetLead(ctx context.Context, id string) (*entities.Lead, error) {
	return uc.leadRepo.FindByID(ctx, id)
}

func (uc *LeadUseCase) GetLeads(ctx context.Context, filter repositories.LeadFilter) ([]entities.Lead, int64, error) {
	return uc.leadRepo.FindAll(ctx, filter)
}

// UpdateLead mescla apenas os campos mutáveis no registro existente.
// Campos de atribuição (utm_*, gclid, fbclid) nunca mudam após a criação.
func (uc *LeadUseCase) UpdateLead(ctx context.Context, id string, input UpdateLeadInput) (*entities.Lead, error) {
	clean, errs := ValidateUpdateLead(input)
	if errs != nil {
		return nil, errs
	}

	lead, err := uc.leadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if clean.Nome != nil {
		lead.Nome = *clean.Nome
	}
	if clean.Email != nil {
		lead.Email = *clean.Email
	}
	if clean.Telefone != nil {
		lead.Telefone = *clean.Telefone
	}
	if clean.Cargo != nil {
		lead.Cargo = *clean.Cargo
	}
	if clean.DataNascimento != nil {
		parsed, err := utils.ParseDate(strings.TrimSpace(*clean.DataNascimento))
		if err != nil {
			return nil, ValidationErrors{{Field: "data_nascimento", Message: "Data de nascimento deve ser uma data válida"}}
		}
		lead.DataNascimento = parsed
	}
	if clean.Mensagem != nil {
		lead.Mensagem = *clean.Mensagem
	}

	if err := uc.leadRepo.Update(ctx, lead); err != nil {
		return nil, err
	}

	return lead, nil
}

func (uc *LeadUseCase) DeleteLead(ctx context.Context, id string) error {
	return uc.leadRepo.Delete(ctx, id)
}
