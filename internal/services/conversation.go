package services

import (
	"log"
	"strconv"
	"strings"

	"github.com/cfcpush/chatbot-backend/internal/models"
	"github.com/cfcpush/chatbot-backend/internal/storage"
	"github.com/cfcpush/chatbot-backend/internal/validators"
)

const mainMenuSize = 15

// stepHandler processes one inbound message for one conversation step.
type stepHandler func(input, phone string) *models.Response

// Greeting words reroute to the welcome prompt from the menu-bearing
// steps, so "bom dia" never reads as a failed menu selection.
var greetingWords = map[string]bool{
	"shalom":    true,
	"bom dia":   true,
	"boa tarde": true,
	"boa noite": true,
	"olá":       true,
	"ola":       true,
	"salve":     true,
	"oi":        true,
	"hi":        true,
	"hello":     true,
}

// Text aliases for the main menu, so button labels echoed back as text
// land on the same option as the number would.
var mainMenuAliases = map[string]string{
	"ser membro":    "1",
	"oração":        "2",
	"oracao":        "2",
	"pastor":        "3",
	"cultos":        "4",
	"contribuir":    "5",
	"visita":        "6",
	"assistência":   "7",
	"assistencia":   "7",
	"núcleos":       "8",
	"nucleos":       "8",
	"ministérios":   "9",
	"ministerios":   "9",
	"evangelização": "10",
	"evangelizacao": "10",
	"servos":        "11",
	"loja":          "12",
	"localização":   "13",
	"localizacao":   "13",
	"push invest":   "14",
	"encerrar":      "15",
}

// ConversationService is the step dispatcher: it resolves the sender's
// current step, routes the message to that step's handler and returns
// the single response descriptor per invocation.
type ConversationService struct {
	store    storage.Store
	sessions *SessionService
	handlers map[models.Step]stepHandler
}

// NewConversationService creates the engine with its full handler
// registry. The registry covers every declared Step; dispatch falls back
// to the welcome handler only for step values not in the map (unknown or
// legacy values read back from storage).
func NewConversationService(store storage.Store) *ConversationService {
	c := &ConversationService{
		store:    store,
		sessions: NewSessionService(store),
	}

	c.handlers = map[models.Step]stepHandler{
		models.StepWelcome:  c.handleWelcome,
		models.StepMainMenu: c.handleMainMenu,

		models.StepCadastroNome:           c.handleCadastroNome,
		models.StepCadastroDataNascimento: c.handleCadastroDataNascimento,
		models.StepCadastroEstadoCivil:    c.handleCadastroEstadoCivil,
		models.StepCadastroEndereco:       c.handleCadastroEndereco,
		models.StepCadastroProfissao:      c.handleCadastroProfissao,
		models.StepCadastroComoConheceu:   c.handleCadastroComoConheceu,

		models.StepOracaoTipo:        c.handleOracaoTipo,
		models.StepOracaoNomeFamilia: c.handleOracaoNomeFamilia,
		models.StepOracaoDetalhe:     c.handleOracaoDetalhe,
		models.StepOracaoAnonimato:   c.handleOracaoAnonimato,

		models.StepAssistenciaTipo:    c.handleAssistenciaTipo,
		models.StepAssistenciaDetalhe: c.handleAssistenciaDetalhe,

		models.StepVisitaData:   c.handleVisitaData,
		models.StepVisitaMotivo: c.handleVisitaMotivo,

		models.StepNucleoRegiao:   c.handleNucleoRegiao,
		models.StepMinisterioTipo: c.handleMinisterioTipo,

		models.StepPushInvestMenu:     c.handlePushInvestMenu,
		models.StepPushInvestProjetos: c.handlePushInvestProjetos,
		models.StepPushInvestInvestir: c.handlePushInvestInvestir,
		models.StepPushInvestContato:  c.handlePushInvestContato,

		models.StepMembroMenu:                c.handleMembroMenu,
		models.StepTransferenciaIgrejaOrigem: c.handleTransferenciaIgrejaOrigem,
		models.StepTransferenciaMotivo:       c.handleTransferenciaMotivo,
		models.StepAtualizacaoDadosTipo:      c.handleAtualizacaoDadosTipo,
		models.StepAtualizacaoDadosNovoValor: c.handleAtualizacaoDadosNovoValor,
	}

	return c
}

// Sessions exposes the session service for monitoring endpoints.
func (c *ConversationService) Sessions() *SessionService {
	return c.sessions
}

// ProcessMessage handles one inbound message and returns the reply to
// send. "#" escapes to the main menu from every step.
func (c *ConversationService) ProcessMessage(phone, message string) *models.Response {
	input := strings.TrimSpace(message)

	if input == "#" {
		return c.handleMainMenu("", phone)
	}

	step := models.StepWelcome
	if session := c.sessions.Get(phone); session != nil {
		step = session.Step
	}

	handler, registered := c.handlers[step]
	if !registered {
		handler = c.handleWelcome
	}
	return handler(input, phone)
}

// handleWelcome greets the sender and opens the main menu.
func (c *ConversationService) handleWelcome(_, phone string) *models.Response {
	c.setStep(phone, models.StepMainMenu, nil)

	return &models.Response{
		Text:    welcomeText,
		Choices: models.MainMenuChoices(),
	}
}

// handleMainMenu interprets a main-menu selection: number, label alias
// or greeting.
func (c *ConversationService) handleMainMenu(input, phone string) *models.Response {
	normalized := strings.ToLower(strings.TrimSpace(input))

	if normalized == "" || normalized == "#" || greetingWords[normalized] {
		return c.handleWelcome("", phone)
	}

	if result := validators.ValidateMenuOption(normalized, 1, mainMenuSize); result.Valid {
		num, _ := strconv.Atoi(normalized)
		return c.handleMainMenuOption(strconv.Itoa(num), phone)
	}

	if option, found := mainMenuAliases[normalized]; found {
		return c.handleMainMenuOption(option, phone)
	}

	return &models.Response{
		Text: "❌ Opção não reconhecida. Digite \"#\" para ver o menu principal.",
	}
}

func (c *ConversationService) handleMainMenuOption(option, phone string) *models.Response {
	switch option {
	case "1":
		c.setStep(phone, models.StepMembroMenu, nil)
		return membershipMenuResponse()
	case "2":
		c.setStep(phone, models.StepOracaoTipo, nil)
		return prayerTypeMenuResponse()
	case "3":
		return &models.Response{Text: pastorInfoText}
	case "4":
		return &models.Response{Text: serviceTimesText}
	case "5":
		return &models.Response{Text: contributionInfoText}
	case "6":
		c.setStep(phone, models.StepVisitaData, nil)
		return &models.Response{
			Text: "🏠 *VISITA PASTORAL*\n\nQual a melhor *data* para visita? (ex: 25/12/2024)\n\n*Formato:* DD/MM/AAAA",
		}
	case "7":
		c.setStep(phone, models.StepAssistenciaTipo, nil)
		return assistanceTypeMenuResponse()
	case "8":
		c.setStep(phone, models.StepNucleoRegiao, nil)
		return nucleoRegionMenuResponse()
	case "9":
		c.setStep(phone, models.StepMinisterioTipo, nil)
		return ministryMenuResponse()
	case "10":
		return &models.Response{Text: evangelizationInfoText}
	case "11":
		return &models.Response{Text: servantsInfoText}
	case "12":
		return &models.Response{Text: storeInfoText}
	case "13":
		return &models.Response{Text: locationInfoText}
	case "14":
		c.setStep(phone, models.StepPushInvestMenu, nil)
		return pushInvestMenuResponse()
	case "15":
		if err := c.sessions.Delete(phone); err != nil {
			log.Printf("❌ Failed to delete session for %s: %v", phone, err)
		}
		return &models.Response{Text: farewellText}
	default:
		return &models.Response{
			Text: "❌ Opção em desenvolvimento. Digite \"#\" para menu principal.",
		}
	}
}

// setStep persists the step change, logging (not propagating) storage
// faults so the conversation degrades instead of breaking.
func (c *ConversationService) setStep(phone string, step models.Step, data models.SessionData) bool {
	if _, err := c.sessions.Set(phone, step, data); err != nil {
		log.Printf("❌ Failed to persist step %s for %s: %v", step, phone, err)
		return false
	}
	return true
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

// sessionData returns the sender's current data bag, empty when no
// session exists.
func (c *ConversationService) sessionData(phone string) models.SessionData {
	if session := c.sessions.Get(phone); session != nil {
		return session.Data
	}
	return models.SessionData{}
}

// resetSession returns the sender to the main menu with a clean bag.
// Storage faults are logged inside the session service.
func (c *ConversationService) resetSession(phone string) {
	_ = c.sessions.ResetToMainMenu(phone)
}

// matchChoice resolves a reply against a choice list: the canonical ID
// (case-insensitive) or the position in the numbered rendering.
func matchChoice(input string, choices []models.Choice) (string, bool) {
	clean := strings.TrimSpace(input)
	if clean == "" {
		return "", false
	}

	for _, choice := range choices {
		if strings.EqualFold(clean, choice.ID) {
			return choice.ID, true
		}
	}

	if num, err := strconv.Atoi(clean); err == nil && num >= 1 && num <= len(choices) {
		return choices[num-1].ID, true
	}
	return "", false
}

// userDisplayName looks up the registered name for a phone, falling back
// to a generic treatment for known-but-unnamed users and to the
// anonymous placeholder when nothing is registered.
func (c *ConversationService) userDisplayName(phone, fallback string) string {
	user, err := c.store.GetUserByPhone(phone)
	if err != nil {
		return fallback
	}
	if user.Name == "" {
		return "Irmão/Irmã"
	}
	return user.Name
}
