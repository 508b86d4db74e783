package services

import (
	"fmt"
	"log"

	"github.com/cfcpush/chatbot-backend/internal/models"
	"github.com/cfcpush/chatbot-backend/internal/validators"
)

// Prayer flow: category, optional family member, description, anonymity
// choice, then one PrayerRequest record.

var prayerTypeSlugs = map[string]string{
	"Saúde":    models.PrayerTypeSaude,
	"Família":  models.PrayerTypeFamilia,
	"Finanças": models.PrayerTypeFinancas,
	"Outros":   models.PrayerTypeOutros,
}

func (c *ConversationService) handleOracaoTipo(input, phone string) *models.Response {
	choice, matched := matchChoice(input, models.PrayerTypeChoices())
	if !matched {
		return prayerTypeMenuResponse()
	}
	if choice == "#" {
		return c.handleWelcome("", phone)
	}

	slug := prayerTypeSlugs[choice]

	// Family prayers collect the family member's name first.
	if choice == "Família" {
		c.setStep(phone, models.StepOracaoNomeFamilia, models.SessionData{"prayerType": slug})
		return &models.Response{
			Text: "✅ *Oração pela Família* selecionada!\n\n*Digite o nome do membro da família* pelo qual deseja oração:\n(ex: Meu filho João, Minha esposa Maria, etc.)",
		}
	}

	// Clear any family name left by an abandoned family-prayer flow; the
	// merge-on-write session semantics would otherwise carry it into this
	// request.
	c.setStep(phone, models.StepOracaoDetalhe, models.SessionData{
		"prayerType":       slug,
		"prayerFamilyName": "",
	})
	return &models.Response{
		Text: fmt.Sprintf("✅ *%s* selecionado!\n\n*Agora descreva seu pedido de oração:*\n\nPor favor, escreva detalhadamente sua necessidade:", choice),
	}
}

func (c *ConversationService) handleOracaoNomeFamilia(input, phone string) *models.Response {
	name := trimmed(input)
	if result := validators.ValidateMessage(name); !result.Valid {
		return &models.Response{Text: "❌ Nome vazio. Digite o nome do membro da família:"}
	}

	c.setStep(phone, models.StepOracaoDetalhe, models.SessionData{"prayerFamilyName": name})
	return &models.Response{
		Text: fmt.Sprintf("✅ Nome registado: *%s*\n\n*Agora descreva o pedido de oração para %s:*", name, name),
	}
}

func (c *ConversationService) handleOracaoDetalhe(input, phone string) *models.Response {
	detail := trimmed(input)
	if result := validators.ValidateMessage(detail); !result.Valid || len([]rune(detail)) < 5 {
		return &models.Response{
			Text: "❌ Pedido muito curto. Descreva melhor sua necessidade (mín. 5 caracteres):",
		}
	}

	c.setStep(phone, models.StepOracaoAnonimato, models.SessionData{"prayerDetail": detail})
	return &models.Response{
		Text: "✅ Pedido registado!\n\n*Deseja permanecer anónimo?*\n\n[1] Sim - Seu nome não será compartilhado\n[2] Não - Podemos usar seu nome no pedido\n\nEscolha uma opção:",
	}
}

// handleOracaoAnonimato is the terminal step: anything other than an
// explicit "2" keeps the request anonymous.
func (c *ConversationService) handleOracaoAnonimato(input, phone string) *models.Response {
	data := c.sessionData(phone)

	userName := "Anónimo"
	isAnonymous := true
	if trimmed(input) == "2" {
		userName = c.userDisplayName(phone, "Irmão/Irmã")
		isAnonymous = false
	}

	prayerType := data["prayerType"]
	if prayerType == "" {
		prayerType = models.PrayerTypeOutros
	}

	request := &models.PrayerRequest{
		UserPhone:        phone,
		UserName:         userName,
		Type:             prayerType,
		Description:      data["prayerDetail"],
		FamilyMemberName: data["prayerFamilyName"],
		Status:           models.StatusPendente,
		IsAnonymous:      isAnonymous,
	}

	if err := c.store.CreatePrayerRequest(request); err != nil {
		log.Printf("❌ Erro ao salvar pedido de oração de %s: %v", phone, err)
		c.resetSession(phone)
		return &models.Response{Text: "❌ Erro ao processar seu pedido. Tente novamente."}
	}

	log.Printf("🙏 Pedido de oração salvo: %s - %s", userName, prayerType)
	c.resetSession(phone)

	forLine := ""
	if request.FamilyMemberName != "" {
		forLine = fmt.Sprintf("• Para: %s\n", request.FamilyMemberName)
	}

	return &models.Response{
		Text: fmt.Sprintf("✅ *PEDIDO DE ORAÇÃO ENVIADO!*\n\n*Irmão(ã) %s*, nosso time de intercessão já está orando por você!\n\n*Detalhes do pedido:*\n• Tipo: %s\n%s• Seu pedido: \"%s\"\n\n🙏 *Deus te abençoe e guarde!*\n\nVocê receberá atualizações sobre seu pedido.\n\nDigite [#] para menu principal.",
			userName, prayerType, forLine, request.Description),
	}
}
