package repositories

import "time"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// LeadFilter agrupa os critérios opcionais de listagem de leads.
// Critérios ausentes não impõem restrição; os presentes são combinados com AND.
type LeadFilter struct {
	Nome        string
	Email       string
	Cargo       string
	DataInicio  time.Time
	DataFim     time.Time
	UtmSource   string
	UtmMedium   string
	UtmCampaign string
	Page        int
	Limit       int
}

// Normalize garante que página e limite sejam inteiros positivos,
// degradando para os padrões em vez de falhar.
func (f *LeadFilter) Normalize() {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
}

// HasDateRange indica se o intervalo de created_at deve ser aplicado.
// Um limite sem o outro é ignorado: o par é atômico.
func (f LeadFilter) HasDateRange() bool {
	return !f.DataInicio.IsZero() && !f.DataFim.IsZero()
}

// Offset calcula o deslocamento da paginação (página 1-indexada).
func (f LeadFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
