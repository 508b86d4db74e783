package services

import (
	"fmt"
	"log"

	"github.com/cfcpush/chatbot-backend/internal/models"
	"github.com/cfcpush/chatbot-backend/internal/validators"
)

// Social assistance flow: category, free-text description, then one
// AssistanceRequest record with a derived triage priority.

var assistanceTypeSlugs = map[string]string{
	"Alimentar": models.AssistanceTypeAlimentar,
	"Médica":    models.AssistanceTypeMedica,
	"Jurídica":  models.AssistanceTypeJuridica,
	"Outra":     models.AssistanceTypeOutra,
}

func (c *ConversationService) handleAssistenciaTipo(input, phone string) *models.Response {
	choice, matched := matchChoice(input, models.AssistanceTypeChoices())
	if !matched {
		return assistanceTypeMenuResponse()
	}
	if choice == "#" {
		return c.handleWelcome("", phone)
	}

	c.setStep(phone, models.StepAssistenciaDetalhe, models.SessionData{
		"assistanceType": assistanceTypeSlugs[choice],
	})
	return &models.Response{
		Text: fmt.Sprintf("✅ *Assistência %s* selecionada!\n\n*Descreva sua necessidade:*\n\nPor favor, forneça detalhes sobre sua situação para podermos ajudá-lo da melhor forma:", choice),
	}
}

func (c *ConversationService) handleAssistenciaDetalhe(input, phone string) *models.Response {
	description := trimmed(input)
	if result := validators.ValidateMessage(description); !result.Valid || len([]rune(description)) < 10 {
		return &models.Response{
			Text: "❌ Descrição muito curta. Descreva melhor sua necessidade (mín. 10 caracteres):",
		}
	}

	data := c.sessionData(phone)
	assistanceType := data["assistanceType"]
	if assistanceType == "" {
		assistanceType = models.AssistanceTypeOutra
	}

	request := &models.AssistanceRequest{
		UserPhone:   phone,
		UserName:    c.userDisplayName(phone, "Anónimo"),
		Type:        assistanceType,
		Description: description,
		Status:      models.StatusPendente,
		Priority:    models.PriorityForAssistanceType(assistanceType),
	}

	if err := c.store.CreateAssistanceRequest(request); err != nil {
		log.Printf("❌ Erro ao salvar assistência de %s: %v", phone, err)
		c.resetSession(phone)
		return &models.Response{Text: "❌ Erro ao processar sua solicitação. Tente novamente."}
	}

	log.Printf("🤝 Assistência solicitada: %s - %s", request.UserName, assistanceType)
	c.resetSession(phone)

	return &models.Response{
		Text: fmt.Sprintf("✅ *SOLICITAÇÃO DE ASSISTÊNCIA ENVIADA!*\n\n*Tipo:* %s\n*Descrição:* %s\n\n📞 Nossa equipe social entrará em contato em até 48 horas para avaliar sua situação e fornecer o apoio necessário.\n\n*CFC PUSH - Servindo com Amor!* ❤️\n\nDigite [#] para menu principal.",
			assistanceType, description),
	}
}
