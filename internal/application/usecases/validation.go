package usecases

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/caions/lead/internal/domain/entities"
	"github.com/caions/lead/internal/utils"
)

// ValidationError descreve a violação de uma regra de um campo.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors acumula todas as violações encontradas, não apenas a
// primeira. O handler converte em um mapa campo→mensagem para o cliente.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

// ByField retorna a primeira mensagem de cada campo inválido.
func (e ValidationErrors) ByField() map[string]string {
	out := make(map[string]string, len(e))
	for _, v := range e {
		if _, ok := out[v.Field]; !ok {
			out[v.Field] = v.Message
		}
	}
	return out
}

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitRegex = regexp.MustCompile(`\D`)
)

const (
	minAge = 16
	maxAge = 100
)

// ValidateCreateLead valida o payload bruto do formulário e, quando todas as
// regras passam, devolve o lead normalizado: campos de texto aparados e
// telefone reduzido a dígitos. É pura: nenhum acesso a rede ou armazenamento.
func ValidateCreateLead(input CreateLeadInput) (*entities.Lead, ValidationErrors) {
	var errs ValidationErrors

	nome := strings.TrimSpace(input.Nome)
	if nome == "" {
		errs = append(errs, ValidationError{"nome", "Nome é obrigatório"})
	} else if utf8.RuneCountInString(nome) < 2 {
		errs = append(errs, ValidationError{"nome", "Nome deve ter pelo menos 2 caracteres"})
	} else if utf8.RuneCountInString(nome) > 255 {
		errs = append(errs, ValidationError{"nome", "Nome deve ter no máximo 255 caracteres"})
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		errs = append(errs, ValidationError{"email", "Email é obrigatório"})
	} else if !emailRegex.MatchString(email) {
		errs = append(errs, ValidationError{"email", "Email deve ter um formato válido"})
	} else if utf8.RuneCountInString(email) > 255 {
		errs = append(errs, ValidationError{"email", "Email deve ter no máximo 255 caracteres"})
	}

	telefone := NormalizePhone(input.Telefone)
	if strings.TrimSpace(input.Telefone) == "" {
		errs = append(errs, ValidationError{"telefone", "Telefone é obrigatório"})
	} else if len(telefone) < 10 || len(telefone) > 11 {
		errs = append(errs, ValidationError{"telefone", "Telefone deve ter 10 ou 11 dígitos"})
	}

	cargo := strings.TrimSpace(input.Cargo)
	if cargo == "" {
		errs = append(errs, ValidationError{"cargo", "Cargo é obrigatório"})
	} else if utf8.RuneCountInString(cargo) < 2 {
		errs = append(errs, ValidationError{"cargo", "Cargo deve ter pelo menos 2 caracteres"})
	} else if utf8.RuneCountInString(cargo) > 255 {
		errs = append(errs, ValidationError{"cargo", "Cargo deve ter no máximo 255 caracteres"})
	}

	var dataNascimento time.Time
	if strings.TrimSpace(input.DataNascimento) == "" {
		errs = append(errs, ValidationError{"data_nascimento", "Data de nascimento é obrigatória"})
	} else {
		parsed, err := utils.ParseDate(strings.TrimSpace(input.DataNascimento))
		if err != nil {
			errs = append(errs, ValidationError{"data_nascimento", "Data de nascimento deve ser uma data válida"})
		} else if err := validateAge(parsed); err != nil {
			errs = append(errs, ValidationError{"data_nascimento", err.Error()})
		} else {
			dataNascimento = parsed
		}
	}

	mensagem := strings.TrimSpace(input.Mensagem)
	if mensagem == "" {
		errs = append(errs, ValidationError{"mensagem", "Mensagem é obrigatória"})
	} else if utf8.RuneCountInString(mensagem) < 10 {
		errs = append(errs, ValidationError{"mensagem", "Mensagem deve ter pelo menos 10 caracteres"})
	} else if utf8.RuneCountInString(mensagem) > 1000 {
		errs = append(errs, ValidationError{"mensagem", "Mensagem deve ter no máximo 1000 caracteres"})
	}

	tracking := map[string]string{
		"utm_source":   input.UtmSource,
		"utm_medium":   input.UtmMedium,
		"utm_campaign": input.UtmCampaign,
		"utm_term":     input.UtmTerm,
		"utm_content":  input.UtmContent,
		"gclid":        input.Gclid,
		"fbclid":       input.Fbclid,
	}
	labels := map[string]string{
		"utm_source":   "UTM Source",
		"utm_medium":   "UTM Medium",
		"utm_campaign": "UTM Campaign",
		"utm_term":     "UTM Term",
		"utm_content":  "UTM Content",
		"gclid":        "GCLID",
		"fbclid":       "FBCLID",
	}
	for _, field := range []string{"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content", "gclid", "fbclid"} {
		if utf8.RuneCountInString(strings.TrimSpace(tracking[field])) > 255 {
			errs = append(errs, ValidationError{field, fmt.Sprintf("%s deve ter no máximo 255 caracteres", labels[field])})
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &entities.Lead{
		Nome:           nome,
		Email:          email,
		Telefone:       telefone,
		Cargo:          cargo,
		DataNascimento: dataNascimento,
		Mensagem:       mensagem,
		UtmSource:      strings.TrimSpace(input.UtmSource),
		UtmMedium:      strings.TrimSpace(input.UtmMedium),
		UtmCampaign:    strings.TrimSpace(input.UtmCampaign),
		UtmTerm:        strings.TrimSpace(input.UtmTerm),
		UtmContent:     strings.TrimSpace(input.UtmContent),
		Gclid:          strings.TrimSpace(input.Gclid),
		Fbclid:         strings.TrimSpace(input.Fbclid),
	}, nil
}

// ValidateUpdateLead aplica as mesmas regras do cadastro, mas somente aos
// campos presentes. Retorna o input já normalizado, pronto para mesclar no
// registro persistido. O mesmo motor atende criação e edição, evitando que
// as duas cópias de regras divirjam.
func ValidateUpdateLead(input UpdateLeadInput) (UpdateLeadInput, ValidationErrors) {
	var errs ValidationErrors
	out := UpdateLeadInput{}

	if input.Nome != nil {
		nome := strings.TrimSpace(*input.Nome)
		switch {
		case nome == "":
			errs = append(errs, ValidationError{"nome", "Nome é obrigatório"})
		case utf8.RuneCountInString(nome) < 2:
			errs = append(errs, ValidationError{"nome", "Nome deve ter pelo menos 2 caracteres"})
		case utf8.RuneCountInString(nome) > 255:
			errs = append(errs, ValidationError{"nome", "Nome deve ter no máximo 255 caracteres"})
		default:
			out.Nome = &nome
		}
	}

	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		switch {
		case email == "":
			errs = append(errs, ValidationError{"email", "Email é obrigatório"})
		case !emailRegex.MatchString(email):
			errs = append(errs, ValidationError{"email", "Email deve ter um formato válido"})
		case utf8.RuneCountInString(email) > 255:
			errs = append(errs, ValidationError{"email", "Email deve ter no máximo 255 caracteres"})
		default:
			out.Email = &email
		}
	}

	if input.Telefone != nil {
		telefone := NormalizePhone(*input.Telefone)
		if len(telefone) < 10 || len(telefone) > 11 {
			errs = append(errs, ValidationError{"telefone", "Telefone deve ter 10 ou 11 dígitos"})
		} else {
			out.Telefone = &telefone
		}
	}

	if input.Cargo != nil {
		cargo := strings.TrimSpace(*input.Cargo)
		switch {
		case cargo == "":
			errs = append(errs, ValidationError{"cargo", "Cargo é obrigatório"})
		case utf8.RuneCountInString(cargo) < 2:
			errs = append(errs, ValidationError{"cargo", "Cargo deve ter pelo menos 2 caracteres"})
		case utf8.RuneCountInString(cargo) > 255:
			errs = append(errs, ValidationError{"cargo", "Cargo deve ter no máximo 255 caracteres"})
		default:
			out.Cargo = &cargo
		}
	}

	if input.DataNascimento != nil {
		raw := strings.TrimSpace(*input.DataNascimento)
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			errs = append(errs, ValidationError{"data_nascimento", "Data de nascimento deve ser uma data válida"})
		} else if err := validateAge(parsed); err != nil {
			errs = append(errs, ValidationError{"data_nascimento", err.Error()})
		} else {
			out.DataNascimento = &raw
		}
	}

	if input.Mensagem != nil {
		mensagem := strings.TrimSpace(*input.Mensagem)
		switch {
		case mensagem == "":
			errs = append(errs, ValidationError{"mensagem", "Mensagem é obrigatória"})
		case utf8.RuneCountInString(mensagem) < 10:
			errs = append(errs, ValidationError{"mensagem", "Mensagem deve ter pelo menos 10 caracteres"})
		case utf8.RuneCountInString(mensagem) > 1000:
			errs = append(errs, ValidationError{"mensagem", "Mensagem deve ter no máximo 1000 caracteres"})
		default:
			out.Mensagem = &mensagem
		}
	}

	if len(errs) > 0 {
		return UpdateLeadInput{}, errs
	}
	return out, nil
}

// NormalizePhone remove tudo que não é dígito. Idempotente: aplicar duas
// vezes produz o mesmo resultado.
func NormalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// validateAge confere o limite de idade contra a data corrente. A fronteira
// é móvel: uma data válida hoje pode deixar de ser amanhã.
func validateAge(birth time.Time) error {
	now := time.Now()
	age := now.Year() - birth.Year()
	if now.YearDay() < birth.YearDay() {
		age--
	}
	if age < minAge {
		return fmt.Errorf("Você deve ter pelo menos %d anos", minAge)
	}
	if age > maxAge {
		return fmt.Errorf("Data de nascimento inválida")
	}
	return nil
}
