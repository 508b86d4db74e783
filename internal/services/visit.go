package services

import (
	"fmt"
	"log"

	"github.com/cfcpush/chatbot-backend/internal/models"
	"github.com/cfcpush/chatbot-backend/internal/validators"
)

// Pastoral visit flow: preferred date (today up to three months ahead),
// reason, then one VisitRequest record.

func (c *ConversationService) handleVisitaData(input, phone string) *models.Response {
	if result := validators.ValidateFutureDate(input); !result.Valid {
		return &models.Response{
			Text: fmt.Sprintf("%s\n\n*Digite a data novamente:* (ex: 25/12/2024)", result.Reason),
		}
	}

	date := trimmed(input)
	c.setStep(phone, models.StepVisitaMotivo, models.SessionData{"visitDate": date})
	return &models.Response{
		Text: fmt.Sprintf("✅ Data válida: *%s*\n\nQual o *motivo da visita pastoral*?", date),
	}
}

func (c *ConversationService) handleVisitaMotivo(input, phone string) *models.Response {
	reason := trimmed(input)
	if result := validators.ValidateMessage(reason); !result.Valid || len([]rune(reason)) < 5 {
		return &models.Response{
			Text: "❌ Motivo muito curto. Descreva melhor o motivo (mín. 5 caracteres):",
		}
	}

	data := c.sessionData(phone)

	request := &models.VisitRequest{
		UserPhone: phone,
		UserName:  c.userDisplayName(phone, "A confirmar"),
		VisitDate: data["visitDate"],
		Reason:    reason,
		Status:    models.StatusPendente,
	}

	if err := c.store.CreateVisitRequest(request); err != nil {
		log.Printf("❌ Erro ao salvar visita de %s: %v", phone, err)
		c.resetSession(phone)
		return &models.Response{Text: "❌ Erro ao processar sua solicitação. Tente novamente."}
	}

	log.Printf("🏠 Visita solicitada: %s - %s - %s", request.UserName, request.VisitDate, reason)
	c.resetSession(phone)

	return &models.Response{
		Text: fmt.Sprintf("✅ *VISITA PASTORAL SOLICITADA!*\n\n*Data preferida:* %s\n*Motivo:* %s\n\n📞 Nossa equipe pastoral entrará em contato em até 24 horas para confirmar a visita e combinar os detalhes.\n\n*Deus abençoe seu lar!* 🏠✨\n\nDigite [#] para menu principal.",
			request.VisitDate, reason),
	}
}
