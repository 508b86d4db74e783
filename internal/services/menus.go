package services

import (
	"fmt"
	"strings"

	"github.com/cfcpush/chatbot-backend/internal/models"
)

// Selection-only flows: núcleos, ministérios and the PUSH Invest menu.
// These collect one choice, answer with fixed copy and return to the
// main menu; nothing is persisted.

func (c *ConversationService) handleNucleoRegiao(input, phone string) *models.Response {
	choice, matched := matchChoice(input, models.NucleoRegionChoices())
	if !matched {
		return nucleoRegionMenuResponse()
	}
	if choice == "#" {
		return c.handleWelcome("", phone)
	}

	c.resetSession(phone)
	return &models.Response{
		Text: fmt.Sprintf("%s\n\n📍 *Como Participar:*\nEntre em contato com o responsável ou compareça a uma reunião!\n\nDigite [#] para menu principal.", nucleoInfo[choice]),
	}
}

func (c *ConversationService) handleMinisterioTipo(input, phone string) *models.Response {
	choice, matched := matchChoice(input, models.MinistryChoices())
	if !matched {
		return ministryMenuResponse()
	}
	if choice == "#" {
		return c.handleWelcome("", phone)
	}

	c.resetSession(phone)
	return &models.Response{
		Text: fmt.Sprintf("%s\n\n📍 *Como Participar:*\nEntre em contato com o responsável ou compareça a uma reunião para conhecer o ministério!\n\nDigite [#] para menu principal.", ministryInfo[choice]),
	}
}

func (c *ConversationService) handlePushInvestMenu(input, phone string) *models.Response {
	clean := trimmed(input)
	if strings.EqualFold(clean, "voltar") || clean == "#" {
		return c.handleWelcome("", phone)
	}

	choice, matched := matchChoice(clean, models.PushInvestChoices())
	if !matched {
		return pushInvestMenuResponse()
	}

	switch choice {
	case "Projetos":
		c.setStep(phone, models.StepPushInvestProjetos, nil)
		return &models.Response{Text: pushInvestProjetosTeaserText}
	case "Investir":
		c.setStep(phone, models.StepPushInvestInvestir, nil)
		return &models.Response{Text: pushInvestInvestirTeaserText}
	case "Contato":
		c.setStep(phone, models.StepPushInvestContato, nil)
		return &models.Response{Text: pushInvestContatoTeaserText}
	default:
		return c.handleWelcome("", phone)
	}
}

func (c *ConversationService) handlePushInvestProjetos(_, phone string) *models.Response {
	c.resetSession(phone)
	return &models.Response{Text: pushInvestProjetosText}
}

func (c *ConversationService) handlePushInvestInvestir(_, phone string) *models.Response {
	c.resetSession(phone)
	return &models.Response{Text: pushInvestInvestirText}
}

func (c *ConversationService) handlePushInvestContato(_, phone string) *models.Response {
	c.resetSession(phone)
	return &models.Response{Text: pushInvestContatoText}
}
