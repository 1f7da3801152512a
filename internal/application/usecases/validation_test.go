package usecases

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validInput() CreateLeadInput {
	return CreateLeadInput{
		Nome:           "João Silva",
		Email:          "joao.silva@email.com",
		Telefone:       "(11) 99988-7766",
		Cargo:          "Desenvolvedor",
		DataNascimento: "1990-05-15",
		Mensagem:       "Gostaria de saber mais sobre os produtos da empresa.",
		UtmSource:      "google",
		UtmMedium:      "cpc",
		UtmCampaign:    "produtos_2024",
	}
}

func TestValidateCreateLead_Valid(t *testing.T) {
	lead, errs := ValidateCreateLead(validInput())

	assert.Nil(t, errs)
	assert.NotNil(t, lead)
	assert.Equal(t, "João Silva", lead.Nome)
	assert.Equal(t, "11999887766", lead.Telefone)
	assert.Equal(t, time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC), lead.DataNascimento)
	assert.Equal(t, "google", lead.UtmSource)
}

func TestValidateCreateLead_TrimsTextFields(t *testing.T) {
	input := validInput()
	input.Nome = "  Maria Santos  "
	input.Cargo = " Gerente "
	input.Mensagem = "  Mensagem com espaços nas bordas.  "
	input.UtmSource = " facebook "

	lead, errs := ValidateCreateLead(input)

	assert.Nil(t, errs)
	assert.Equal(t, "Maria Santos", lead.Nome)
	assert.Equal(t, "Gerente", lead.Cargo)
	assert.Equal(t, "Mensagem com espaços nas bordas.", lead.Mensagem)
	assert.Equal(t, "facebook", lead.UtmSource)
}

func TestValidateCreateLead_MissingRequiredFieldReportsOnlyThatField(t *testing.T) {
	cases := []struct {
		field string
		mut   func(*CreateLeadInput)
	}{
		{"nome", func(i *CreateLeadInput) { i.Nome = "" }},
		{"email", func(i *CreateLeadInput) { i.Email = "" }},
		{"telefone", func(i *CreateLeadInput) { i.Telefone = "" }},
		{"cargo", func(i *CreateLeadInput) { i.Cargo = "" }},
		{"data_nascimento", func(i *CreateLeadInput) { i.DataNascimento = "" }},
		{"mensagem", func(i *CreateLeadInput) { i.Mensagem = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			input := validInput()
			tc.mut(&input)

			lead, errs := ValidateCreateLead(input)

			assert.Nil(t, lead)
			assert.Len(t, errs, 1)
			assert.Equal(t, tc.field, errs[0].Field)
		})
	}
}

func TestValidateCreateLead_CollectsAllViolations(t *testing.T) {
	input := CreateLeadInput{}

	lead, errs := ValidateCreateLead(input)

	assert.Nil(t, lead)
	byField := errs.ByField()
	for _, field := range []string{"nome", "email", "telefone", "cargo", "data_nascimento", "mensagem"} {
		assert.Contains(t, byField, field)
	}
}

func TestValidateCreateLead_EmailShape(t *testing.T) {
	for _, email := range []string{"semarroba", "a@b", "a b@c.com", "@dominio.com"} {
		input := validInput()
		input.Email = email

		_, errs := ValidateCreateLead(input)

		assert.NotNil(t, errs, "email %q deveria ser rejeitado", email)
		assert.Equal(t, "email", errs[0].Field)
	}

	input := validInput()
	input.Email = "pessoa@dominio.com.br"
	_, errs := ValidateCreateLead(input)
	assert.Nil(t, errs)
}

func TestValidateCreateLead_TelefoneDigitCount(t *testing.T) {
	input := validInput()
	input.Telefone = "(11) 9988-776"

	_, errs := ValidateCreateLead(input)

	assert.NotNil(t, errs)
	assert.Equal(t, "telefone", errs[0].Field)
	assert.Equal(t, "Telefone deve ter 10 ou 11 dígitos", errs[0].Message)

	// 10 dígitos (fixo) também é aceito
	input.Telefone = "11 3322-1100"
	lead, errs := ValidateCreateLead(input)
	assert.Nil(t, errs)
	assert.Equal(t, "1133221100", lead.Telefone)
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	once := NormalizePhone("(11) 99988-7766")
	twice := NormalizePhone(once)

	assert.Equal(t, "11999887766", once)
	assert.Equal(t, once, twice)
}

func TestValidateCreateLead_AgeBounds(t *testing.T) {
	now := time.Now()

	tooYoung := now.AddDate(-15, 0, 0)
	input := validInput()
	input.DataNascimento = tooYoung.Format("2006-01-02")
	_, errs := ValidateCreateLead(input)
	assert.NotNil(t, errs)
	assert.Equal(t, "data_nascimento", errs[0].Field)

	tooOld := now.AddDate(-101, 0, 0)
	input.DataNascimento = tooOld.Format("2006-01-02")
	_, errs = ValidateCreateLead(input)
	assert.NotNil(t, errs)
	assert.Equal(t, "data_nascimento", errs[0].Field)

	adult := now.AddDate(-30, 0, 0)
	input.DataNascimento = adult.Format("2006-01-02")
	_, errs = ValidateCreateLead(input)
	assert.Nil(t, errs)
}

func TestValidateCreateLead_InvalidDate(t *testing.T) {
	input := validInput()
	input.DataNascimento = "15/05/1990"

	_, errs := ValidateCreateLead(input)

	assert.NotNil(t, errs)
	assert.Equal(t, "data_nascimento", errs[0].Field)
	assert.Equal(t, "Data de nascimento deve ser uma data válida", errs[0].Message)
}

func TestValidateCreateLead_MensagemLength(t *testing.T) {
	input := validInput()
	input.Mensagem = "curta"
	_, errs := ValidateCreateLead(input)
	assert.NotNil(t, errs)
	assert.Equal(t, "mensagem", errs[0].Field)

	input.Mensagem = strings.Repeat("a", 1001)
	_, errs = ValidateCreateLead(input)
	assert.NotNil(t, errs)
	assert.Equal(t, "mensagem", errs[0].Field)
}

func TestValidateCreateLead_TrackingFieldsOptionalButBounded(t *testing.T) {
	input := validInput()
	input.UtmSource = ""
	input.UtmMedium = ""
	input.UtmCampaign = ""
	_, errs := ValidateCreateLead(input)
	assert.Nil(t, errs)

	input.Gclid = strings.Repeat("x", 256)
	_, errs = ValidateCreateLead(input)
	assert.NotNil(t, errs)
	assert.Equal(t, "gclid", errs[0].Field)
	assert.Equal(t, "GCLID deve ter no máximo 255 caracteres", errs[0].Message)
}

func TestValidateUpdateLead_OnlyProvidedFields(t *testing.T) {
	nome := "  Novo Nome  "
	input := UpdateLeadInput{Nome: &nome}

	clean, errs := ValidateUpdateLead(input)

	assert.Nil(t, errs)
	assert.Equal(t, "Novo Nome", *clean.Nome)
	assert.Nil(t, clean.Email)
	assert.Nil(t, clean.Telefone)
}

func TestValidateUpdateLead_InvalidProvidedField(t *testing.T) {
	email := "inválido"
	input := UpdateLeadInput{Email: &email}

	_, errs := ValidateUpdateLead(input)

	assert.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
}

func TestValidateUpdateLead_NormalizesTelefone(t *testing.T) {
	telefone := "(21) 98877-6655"
	input := UpdateLeadInput{Telefone: &telefone}

	clean, errs := ValidateUpdateLead(input)

	assert.Nil(t, errs)
	assert.Equal(t, "21988776655", *clean.Telefone)
}

func TestValidationErrors_ByFieldKeepsFirstMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "nome", Message: "primeira"},
		{Field: "nome", Message: "segunda"},
		{Field: "email", Message: "outra"},
	}

	byField := errs.ByField()

	assert.Equal(t, "primeira", byField["nome"])
	assert.Equal(t, "outra", byField["email"])
	assert.Contains(t, errs.Error(), "nome: primeira")
}
