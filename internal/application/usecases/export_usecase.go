package usecases

import (
	"context"
	"strings"

	"github.com/caions/lead/internal/domain/entities"
	"github.com/caions/lead/internal/domain/repositories"
	"github.com/caions/lead/internal/utils"
)

// csvHeaders define as 16 colunas do arquivo exportado, nesta ordem exata.
var csvHeaders = []string{
	"ID",
	"Nome",
	"Email",
	"Telefone",
	"Cargo",
	"Data Nascimento",
	"Mensagem",
	"UTM Source",
	"UTM Medium",
	"UTM Campaign",
	"UTM Term",
	"UTM Content",
	"GCLID",
	"FBCLID",
	"Data Cadastro",
	"Data Atualização",
}

type ExportUseCase struct {
	leadRepo repositories.ILeadRepository
}

func NewExportUseCase(leadRepo repositories.ILeadRepository) *ExportUseCase {
	return &ExportUseCase{
		leadRepo: leadRepo,
	}
}

// ExportCSV serializa a base inteira de leads, em ordem cronológica inversa,
// para um único blob CSV.
func (uc *ExportUseCase) ExportCSV(ctx context.Context) (string, error) {
	leads, err := uc.leadRepo.FindAllForExport(ctx)
	if err != nil {
		return "", err
	}
	return BuildLeadsCSV(leads), nil
}

// BuildLeadsCSV monta o texto CSV. Campos de texto livre são sempre
// envolvidos em aspas duplas, com aspas internas dobradas; id, datas e
// timestamps nunca são citados. Datas inválidas viram string vazia em vez
// de erro.
func BuildLeadsCSV(leads []entities.Lead) string {
	rows := make([]string, 0, len(leads)+1)
	rows = append(rows, strings.Join(csvHeaders, ","))

	for _, lead := range leads {
		fields := []string{
			lead.ID,
			quoteCSV(lead.Nome),
			quoteCSV(lead.Email),
			quoteCSV(lead.Telefone),
			quoteCSV(lead.Cargo),
			utils.FormatDateOnly(lead.DataNascimento),
			quoteCSV(lead.Mensagem),
			quoteCSV(lead.UtmSource),
			quoteCSV(lead.UtmMedium),
			quoteCSV(lead.UtmCampaign),
			quoteCSV(lead.UtmTerm),
			quoteCSV(lead.UtmContent),
			quoteCSV(lead.Gclid),
			quoteCSV(lead.Fbclid),
			utils.FormatTimestamp(lead.CreatedAt),
			utils.FormatTimestamp(lead.UpdatedAt),
		}
		rows = append(rows, strings.Join(fields, ","))
	}

	return strings.Join(rows, "\n")
}

func quoteCSV(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
