package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cfcpush/chatbot-backend/internal/models"
	"github.com/cfcpush/chatbot-backend/internal/validators"
)

// Membership submenu: new-member registration, transfer from another
// church, member data update and the rights/duties leaf.

// The phone number is not updatable here: it is the key the profile and
// the active session are looked up by.
var updateFieldOptions = map[string]string{
	"1": "name",
	"2": "address",
	"3": "profession",
	"4": "maritalStatus",
}

var updateFieldNames = map[string]string{
	"name":          "Nome",
	"address":       "Endereço",
	"profession":    "Profissão",
	"maritalStatus": "Estado Civil",
}

const updateFieldPrompt = "[1] Nome\n[2] Endereço\n[3] Profissão\n[4] Estado Civil"

func (c *ConversationService) handleMembroMenu(input, phone string) *models.Response {
	choice, matched := matchChoice(input, models.MembershipChoices())
	if !matched {
		return membershipMenuResponse()
	}

	switch choice {
	case "Novo Membro":
		c.setStep(phone, models.StepCadastroNome, nil)
		return &models.Response{
			Text: "📝 *CADASTRO DE NOVO MEMBRO*\n\nVamos começar! Digite seu *nome completo*:",
		}
	case "Transferência":
		c.setStep(phone, models.StepTransferenciaIgrejaOrigem, nil)
		return &models.Response{
			Text: "🔄 *TRANSFERÊNCIA DE IGREJA*\n\nDigite o nome da sua *igreja de origem*:",
		}
	case "Atualizar Dados":
		c.setStep(phone, models.StepAtualizacaoDadosTipo, nil)
		return &models.Response{
			Text: fmt.Sprintf("✏️ *ATUALIZAÇÃO DE DADOS*\n\nQual campo deseja atualizar?\n\n%s", updateFieldPrompt),
		}
	case "Direitos e Deveres":
		c.resetSession(phone)
		return &models.Response{Text: membershipRightsDutiesText}
	default:
		return c.handleWelcome("", phone)
	}
}

func (c *ConversationService) handleTransferenciaIgrejaOrigem(input, phone string) *models.Response {
	church := trimmed(input)
	if result := validators.ValidateMessage(church); !result.Valid {
		return &models.Response{Text: "❌ Nome vazio. Digite o nome da sua igreja de origem:"}
	}

	c.setStep(phone, models.StepTransferenciaMotivo, models.SessionData{"previousChurch": church})
	return &models.Response{
		Text: fmt.Sprintf("✅ Igreja de origem registada: *%s*\n\nQual o *motivo da transferência*?", church),
	}
}

func (c *ConversationService) handleTransferenciaMotivo(input, phone string) *models.Response {
	reason := trimmed(input)
	if result := validators.ValidateMessage(reason); !result.Valid {
		return &models.Response{Text: "❌ Motivo vazio. Digite o motivo da transferência:"}
	}

	data := c.sessionData(phone)

	request := &models.TransferRequest{
		UserPhone:      phone,
		UserName:       c.userDisplayName(phone, "A confirmar"),
		PreviousChurch: data["previousChurch"],
		Reason:         reason,
		Status:         models.StatusPendente,
	}

	if err := c.store.CreateTransferRequest(request); err != nil {
		log.Printf("❌ Erro ao processar transferência de %s: %v", phone, err)
		c.resetSession(phone)
		return &models.Response{Text: "❌ Erro ao processar sua solicitação. Tente novamente."}
	}

	log.Printf("🔄 Transferência solicitada: %s - %s - %s", request.UserName, request.PreviousChurch, reason)
	c.resetSession(phone)

	return &models.Response{
		Text: fmt.Sprintf("✅ *SOLICITAÇÃO DE TRANSFERÊNCIA ENVIADA!*\n\n*Igreja de origem:* %s\n*Motivo:* %s\n\n📞 Nossa equipe entrará em contato para completar o processo de transferência e integração.\n\n*Bem-vindo(a) à família CFC PUSH!* 🙏\n\nDigite [#] para menu principal.",
			request.PreviousChurch, reason),
	}
}

func (c *ConversationService) handleAtualizacaoDadosTipo(input, phone string) *models.Response {
	field, found := updateFieldOptions[trimmed(input)]
	if !found {
		return &models.Response{
			Text: fmt.Sprintf("❌ Opção inválida. Digite o campo que deseja atualizar:\n%s", updateFieldPrompt),
		}
	}

	c.setStep(phone, models.StepAtualizacaoDadosNovoValor, models.SessionData{"updateField": field})
	return &models.Response{
		Text: fmt.Sprintf("✅ Campo selecionado: *%s*\n\nDigite o *novo valor* para %s:",
			updateFieldNames[field], strings.ToLower(updateFieldNames[field])),
	}
}

func (c *ConversationService) handleAtualizacaoDadosNovoValor(input, phone string) *models.Response {
	value := trimmed(input)
	if result := validators.ValidateMessage(value); !result.Valid {
		return &models.Response{Text: "❌ Valor vazio. Digite o novo valor:"}
	}

	data := c.sessionData(phone)
	field := data["updateField"]
	if field == "" {
		field = "name"
	}

	if user, err := c.store.GetUserByPhone(phone); err == nil {
		switch field {
		case "name":
			user.Name = value
		case "address":
			user.Address = value
		case "profession":
			user.Profession = value
		case "maritalStatus":
			user.MaritalStatus = value
		}
		user.LastInteraction = time.Now()

		if err := c.store.SaveUser(user); err != nil {
			log.Printf("❌ Erro ao atualizar dados de %s: %v", phone, err)
			c.resetSession(phone)
			return &models.Response{Text: "❌ Erro ao atualizar seus dados. Tente novamente."}
		}
		log.Printf("✏️ Dados atualizados: %s - %s: %s", phone, field, value)
	} else {
		log.Printf("❌ Usuário %s não encontrado para atualização: %v", phone, err)
	}

	c.resetSession(phone)

	return &models.Response{
		Text: fmt.Sprintf("✅ *DADOS ATUALIZADOS COM SUCESSO!*\n\n*Campo:* %s\n*Novo valor:* %s\n\nSeus dados foram atualizados em nosso sistema.\n\nDigite [#] para menu principal.",
			updateFieldNames[field], value),
	}
}
