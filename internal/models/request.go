package models

import (
	"gorm.io/gorm"
)

// Prayer request categories (slugs stored in the session data bag and in
// the request records).
const (
	PrayerTypeSaude    = "saude"
	PrayerTypeFamilia  = "familia"
	PrayerTypeFinancas = "financas"
	PrayerTypeOutros   = "outros"
)

// Assistance request categories.
const (
	AssistanceTypeAlimentar = "assistencia_alimentar"
	AssistanceTypeMedica    = "assistencia_medica"
	AssistanceTypeJuridica  = "assistencia_juridica"
	AssistanceTypeOutra     = "assistencia_outra"
)

// Request lifecycle statuses. Every record is created as "pendente"; the
// other values exist for the teams that triage requests outside the bot.
const (
	StatusPendente  = "pendente"
	StatusEmOracao  = "em_oracao"
	StatusEmAnalise = "em_analise"
	StatusAtendido  = "atendido"
	StatusRejeitado = "rejeitado"
)

// Assistance priorities.
const (
	PriorityBaixa   = "baixa"
	PriorityMedia   = "media"
	PriorityAlta    = "alta"
	PriorityUrgente = "urgente"
)

// PriorityForAssistanceType derives the triage priority from the category.
func PriorityForAssistanceType(assistanceType string) string {
	switch assistanceType {
	case AssistanceTypeMedica, AssistanceTypeAlimentar:
		return PriorityAlta
	default:
		return PriorityMedia
	}
}

// PrayerRequest is the append-only record created at the end of the
// prayer flow.
type PrayerRequest struct {
	gorm.Model
	UserPhone        string `json:"user_phone" gorm:"index;not null"`
	UserName         string `json:"user_name" gorm:"not null"`
	Type             string `json:"type" gorm:"not null"`
	Description      string `json:"description" gorm:"not null"`
	FamilyMemberName string `json:"family_member_name,omitempty"`
	Status           string `json:"status" gorm:"default:'pendente';index"`
	IsAnonymous      bool   `json:"is_anonymous" gorm:"default:false"`
	PrayerCount      int    `json:"prayer_count" gorm:"default:0"`
}

func (p *PrayerRequest) BeforeCreate(tx *gorm.DB) error {
	if p.Status == "" {
		p.Status = StatusPendente
	}
	if p.Type == "" {
		p.Type = PrayerTypeOutros
	}
	return nil
}

// AssistanceRequest is the append-only record created at the end of the
// social assistance flow.
type AssistanceRequest struct {
	gorm.Model
	UserPhone   string `json:"user_phone" gorm:"index;not null"`
	UserName    string `json:"user_name" gorm:"not null"`
	Type        string `json:"type" gorm:"not null"`
	Description string `json:"description" gorm:"not null"`
	Status      string `json:"status" gorm:"default:'pendente';index"`
	Priority    string `json:"priority" gorm:"default:'media';index"`
}

func (a *AssistanceRequest) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPendente
	}
	if a.Priority == "" {
		a.Priority = PriorityForAssistanceType(a.Type)
	}
	return nil
}

// VisitRequest records a pastoral visit ask: preferred date plus reason.
type VisitRequest struct {
	gorm.Model
	UserPhone string `json:"user_phone" gorm:"index;not null"`
	UserName  string `json:"user_name"`
	VisitDate string `json:"visit_date" gorm:"not null"`
	Reason    string `json:"reason" gorm:"not null"`
	Status    string `json:"status" gorm:"default:'pendente';index"`
}

func (v *VisitRequest) BeforeCreate(tx *gorm.DB) error {
	if v.Status == "" {
		v.Status = StatusPendente
	}
	return nil
}

// TransferRequest records a membership transfer from another church.
type TransferRequest struct {
	gorm.Model
	UserPhone      string `json:"user_phone" gorm:"index;not null"`
	UserName       string `json:"user_name"`
	PreviousChurch string `json:"previous_church" gorm:"not null"`
	Reason         string `json:"reason" gorm:"not null"`
	Status         string `json:"status" gorm:"default:'pendente';index"`
}

func (t *TransferRequest) BeforeCreate(tx *gorm.DB) error {
	if t.Status == "" {
		t.Status = StatusPendente
	}
	return nil
}
