package usecases

// CreateLeadInput é o payload bruto do formulário público, antes de
// qualquer normalização.
type CreateLeadInput struct {
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	Telefone       string `json:"telefone"`
	Cargo          string `json:"cargo"`
	DataNascimento string `json:"data_nascimento"`
	Mensagem       string `json:"mensagem"`
	UtmSource      string `json:"utm_source"`
	UtmMedium      string `json:"utm_medium"`
	UtmCampaign    string `json:"utm_campaign"`
	UtmTerm        string `json:"utm_term"`
	UtmContent     string `json:"utm_content"`
	Gclid          string `json:"gclid"`
	Fbclid         string `json:"fbclid"`
}

// UpdateLeadInput carrega apenas os campos mutáveis de um lead. Campos nil
// não são alterados. Os campos de atribuição são imutáveis após a criação
// e por isso não aparecem aqui.
type UpdateLeadInput struct {
	Nome           *string `json:"nome"`
	Email          *string `json:"email"`
	Telefone       *string `json:"telefone"`
	Cargo          *string `json:"cargo"`
	DataNascimento *string `json:"data_nascimento"`
	Mensagem       *string `json:"mensagem"`
}

// LoginInput são as credenciais do painel administrativo.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
