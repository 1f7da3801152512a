package repositories

import (
	"context"
	"errors"

	"github.com/caions/lead/internal/domain/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrLeadNotFound indica que nenhum lead existe com o id informado.
	ErrLeadNotFound = errors.New("lead não encontrado")
	// ErrDuplicateEmail indica violação da unicidade de email entre leads.
	ErrDuplicateEmail = errors.New("email já está sendo usado por outro lead")
)

type ILeadRepository interface {
	Create(ctx context.Context, lead *entities.Lead) error
	FindByID(ctx context.Context, id string) (*entities.Lead, error)
	FindAll(ctx context.Context, filter LeadFilter) ([]entities.Lead, int64, error)
	FindAllForExport(ctx context.Context) ([]entities.Lead, error)
	Update(ctx context.Context, lead *entities.Lead) error
	Delete(ctx context.Context, id string) error
}

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{
		db: db,
	}
}

// Create persiste um novo lead, gerando o id. A corrida entre dois creates
// com o mesmo email é resolvida pelo índice único: o perdedor recebe
// ErrDuplicateEmail.
func (r *LeadRepository) Create(ctx context.Context, lead *entities.Lead) error {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}

	if err := r.db.WithContext(ctx).Create(lead).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}

	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entities.Lead, error) {
	var lead entities.Lead
	if err := r.db.WithContext(ctx).First(&lead, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return &lead, nil
}

// FindAll aplica os filtros opcionais e retorna a página pedida junto com a
// contagem total. Ordenação é sempre created_at DESC.
func (r *LeadRepository) FindAll(ctx context.Context, filter LeadFilter) ([]entities.Lead, int64, error) {
	var leads []entities.Lead
	var total int64

	filter.Normalize()

	query := r.db.WithContext(ctx).Model(&entities.Lead{})

	if filter.Nome != "" {
		query = query.Where("nome ILIKE ?", "%"+filter.Nome+"%")
	}
	if filter.Email != "" {
		query = query.Where("email ILIKE ?", "%"+filter.Email+"%")
	}
	if filter.Cargo != "" {
		query = query.Where("cargo ILIKE ?", "%"+filter.Cargo+"%")
	}
	if filter.HasDateRange() {
		query = query.Where("created_at BETWEEN ? AND ?", filter.DataInicio, filter.DataFim)
	}
	if filter.UtmSource != "" {
		query = query.Where("utm_source = ?", filter.UtmSource)
	}
	if filter.UtmMedium != "" {
		query = query.Where("utm_medium = ?", filter.UtmMedium)
	}
	if filter.UtmCampaign != "" {
		query = query.Where("utm_campaign = ?", filter.UtmCampaign)
	}

	// Contagem em consulta separada antes de aplicar a janela de paginação
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&leads).Error
	if err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

// FindAllForExport retorna a base inteira, sem filtro nem paginação,
// na ordem cronológica inversa usada pelo CSV.
func (r *LeadRepository) FindAllForExport(ctx context.Context) ([]entities.Lead, error) {
	var leads []entities.Lead
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&leads).Error
	if err != nil {
		return nil, err
	}
	return leads, nil
}

// Update grava o lead já mesclado pelo caso de uso. updated_at é renovado
// pelo GORM; um email que colida com outro registro vira ErrDuplicateEmail.
func (r *LeadRepository) Update(ctx context.Context, lead *entities.Lead) error {
	if err := r.db.WithContext(ctx).Save(lead).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// Delete remove o lead em definitivo. Não há soft-delete.
func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&entities.Lead{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLeadNotFound
	}
	return nil
}
