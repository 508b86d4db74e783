package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Step identifies the user's current position in the conversation graph.
type Step string

const (
	StepWelcome  Step = "WELCOME"
	StepMainMenu Step = "MAIN_MENU"

	// Cadastro de novo membro
	StepCadastroNome           Step = "CADASTRO_NOME"
	StepCadastroDataNascimento Step = "CADASTRO_DATA_NASCIMENTO"
	StepCadastroEstadoCivil    Step = "CADASTRO_ESTADO_CIVIL"
	StepCadastroEndereco       Step = "CADASTRO_ENDERECO"
	StepCadastroProfissao      Step = "CADASTRO_PROFISSAO"
	StepCadastroComoConheceu   Step = "CADASTRO_COMO_CONHECEU"

	// Pedido de oração
	StepOracaoTipo        Step = "ORACAO_TIPO"
	StepOracaoNomeFamilia Step = "ORACAO_NOME_FAMILIA"
	StepOracaoDetalhe     Step = "ORACAO_DETALHE"
	StepOracaoAnonimato   Step = "ORACAO_ANONIMATO"

	// Assistência social
	StepAssistenciaTipo    Step = "ASSISTENCIA_TIPO"
	StepAssistenciaDetalhe Step = "ASSISTENCIA_DETALHE"

	// Visita pastoral
	StepVisitaData   Step = "VISITA_DATA"
	StepVisitaMotivo Step = "VISITA_MOTIVO"

	// Seleções de um passo só
	StepNucleoRegiao   Step = "NUCLEO_REGIAO"
	StepMinisterioTipo Step = "MINISTERIO_TIPO"

	// PUSH Invest
	StepPushInvestMenu     Step = "PUSH_INVEST_MENU"
	StepPushInvestProjetos Step = "PUSH_INVEST_PROJETOS"
	StepPushInvestInvestir Step = "PUSH_INVEST_INVESTIR"
	StepPushInvestContato  Step = "PUSH_INVEST_CONTATO"

	// Ser membro (submenu e fluxos derivados)
	StepMembroMenu                Step = "MEMBRO_MENU"
	StepTransferenciaIgrejaOrigem Step = "TRANSFERENCIA_IGREJA_ORIGEM"
	StepTransferenciaMotivo       Step = "TRANSFERENCIA_MOTIVO"
	StepAtualizacaoDadosTipo      Step = "ATUALIZACAO_DADOS_TIPO"
	StepAtualizacaoDadosNovoValor Step = "ATUALIZACAO_DADOS_NOVO_VALOR"
)

// SessionData is the free-form key/value bag accumulated across the steps
// of a flow. Keys in use, by flow:
//
//	cadastro:      name, dateOfBirth, maritalStatus, address, profession
//	oração:        prayerType, prayerFamilyName, prayerDetail
//	assistência:   assistanceType
//	visita:        visitDate
//	transferência: previousChurch
//	atualização:   updateField
//
// Each step reads only keys written by earlier steps of its own flow; the
// bag is cleared when the session resets to the main menu.
type SessionData map[string]string

// Value implements driver.Valuer so the bag is stored as a JSON column.
func (d SessionData) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan implements sql.Scanner for reading the JSON column back.
func (d *SessionData) Scan(value interface{}) error {
	if value == nil {
		*d = SessionData{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported session data type %T", value)
	}

	if len(raw) == 0 {
		*d = SessionData{}
		return nil
	}
	return json.Unmarshal(raw, d)
}

// UserSession stores the conversation state for one sender.
type UserSession struct {
	gorm.Model
	Phone           string      `json:"phone" gorm:"uniqueIndex;not null"`
	Step            Step        `json:"step" gorm:"not null;default:'WELCOME'"`
	Data            SessionData `json:"data" gorm:"type:text"`
	PreviousStep    Step        `json:"previous_step,omitempty"`
	LastInteraction time.Time   `json:"last_interaction"`
	ExpiresAt       time.Time   `json:"expires_at" gorm:"index"`
}

// Expired reports whether the session should no longer be served.
func (s *UserSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
