package services

import (
	"fmt"
	"log"
	"time"

	"github.com/cfcpush/chatbot-backend/internal/models"
	"github.com/cfcpush/chatbot-backend/internal/validators"
)

// New-member registration: name, birth date, marital status, address,
// profession and how the person found the church. Each answer is merged
// into the session data bag; the user record is only written at the end.

var maritalStatusOptions = map[string]string{
	"1": "Solteiro(a)",
	"2": "Casado(a)",
	"3": "Divorciado(a)",
	"4": "Viúvo(a)",
	"5": "União de Facto",
}

var howFoundChurchOptions = map[string]string{
	"1": "Amigo/Familiar",
	"2": "Rede Social",
	"3": "Visita/Evento",
	"4": "Propaganda",
	"5": "Outro",
}

const maritalStatusPrompt = "[1] Solteiro(a)\n[2] Casado(a)\n[3] Divorciado(a)\n[4] Viúvo(a)\n[5] União de Facto"

const howFoundChurchPrompt = "[1] Amigo/Familiar\n[2] Rede Social\n[3] Visita/Evento\n[4] Propaganda\n[5] Outro"

func (c *ConversationService) handleCadastroNome(input, phone string) *models.Response {
	if result := validators.ValidateName(input); !result.Valid {
		return &models.Response{
			Text: fmt.Sprintf("%s\n\n*Digite seu nome completo novamente:*", result.Reason),
		}
	}

	name := trimmed(input)
	c.setStep(phone, models.StepCadastroDataNascimento, models.SessionData{"name": name})
	return &models.Response{
		Text: fmt.Sprintf("✅ Nome válido: *%s*\n\nAgora digite sua *data de nascimento*:\n(ex: 15/08/1990)", name),
	}
}

func (c *ConversationService) handleCadastroDataNascimento(input, phone string) *models.Response {
	if result := validators.ValidateDate(input); !result.Valid {
		return &models.Response{
			Text: fmt.Sprintf("%s\n\n*Digite sua data de nascimento novamente:*", result.Reason),
		}
	}

	c.setStep(phone, models.StepCadastroEstadoCivil, models.SessionData{"dateOfBirth": trimmed(input)})
	return &models.Response{
		Text: fmt.Sprintf("✅ Data válida!\n\nQual seu *estado civil*?\n\n%s", maritalStatusPrompt),
	}
}

func (c *ConversationService) handleCadastroEstadoCivil(input, phone string) *models.Response {
	status, found := maritalStatusOptions[trimmed(input)]
	if !found {
		return &models.Response{
			Text: fmt.Sprintf("❌ Opção inválida. Digite o número do estado civil:\n%s", maritalStatusPrompt),
		}
	}

	c.setStep(phone, models.StepCadastroEndereco, models.SessionData{"maritalStatus": status})
	return &models.Response{
		Text: fmt.Sprintf("✅ Estado civil registado: *%s*\n\nAgora digite seu *endereço completo*:\n(ex: Av. Principal, 123 - Bairro, Cidade)", status),
	}
}

func (c *ConversationService) handleCadastroEndereco(input, phone string) *models.Response {
	address := trimmed(input)
	if result := validators.ValidateMessage(address); !result.Valid || len([]rune(address)) < 10 {
		return &models.Response{
			Text: "❌ Endereço muito curto. Digite um endereço completo (mín. 10 caracteres):\n(ex: Av. 25 de Setembro, 1234 - Maputo)",
		}
	}

	c.setStep(phone, models.StepCadastroProfissao, models.SessionData{"address": address})
	return &models.Response{
		Text: "✅ Endereço registado!\n\nQual sua *profissão* ou *ocupação*?",
	}
}

func (c *ConversationService) handleCadastroProfissao(input, phone string) *models.Response {
	profession := trimmed(input)
	if result := validators.ValidateMessage(profession); !result.Valid {
		return &models.Response{Text: "❌ Profissão vazia. Digite sua profissão:"}
	}

	c.setStep(phone, models.StepCadastroComoConheceu, models.SessionData{"profession": profession})
	return &models.Response{
		Text: fmt.Sprintf("✅ Profissão registada: *%s*\n\n*Como conheceu a CFC PUSH?*\n\n%s", profession, howFoundChurchPrompt),
	}
}

// handleCadastroComoConheceu is the terminal step: the accumulated data
// bag becomes a member record, then the session resets to the main menu.
func (c *ConversationService) handleCadastroComoConheceu(input, phone string) *models.Response {
	howFound, found := howFoundChurchOptions[trimmed(input)]
	if !found {
		return &models.Response{
			Text: fmt.Sprintf("❌ Opção inválida. Digite como conheceu a igreja:\n%s", howFoundChurchPrompt),
		}
	}

	data := c.sessionData(phone)

	now := time.Now()
	user, err := c.store.GetUserByPhone(phone)
	if err != nil {
		user = &models.User{Phone: phone}
	}
	user.Name = data["name"]
	user.MaritalStatus = data["maritalStatus"]
	user.Address = data["address"]
	user.Profession = data["profession"]
	user.HowFoundChurch = howFound
	user.IsMember = true
	user.RegistrationDate = now
	user.LastInteraction = now
	if birth, parseErr := time.Parse("02/01/2006", data["dateOfBirth"]); parseErr == nil {
		user.DateOfBirth = &birth
	}

	if err := c.store.SaveUser(user); err != nil {
		log.Printf("❌ Erro ao salvar cadastro de %s: %v", phone, err)
		c.resetSession(phone)
		return &models.Response{Text: "❌ Erro ao processar seu cadastro. Tente novamente."}
	}

	log.Printf("✅ Novo membro cadastrado: %s (%s)", user.Name, phone)
	c.resetSession(phone)

	return &models.Response{
		Text: fmt.Sprintf("🎉 *CADASTRO CONCLUÍDO!*\n\n*Irmão(ã) %s*, seu cadastro foi realizado com sucesso!\n\n*Dados registados:*\n• Nome: %s\n• Data Nasc.: %s\n• Estado Civil: %s\n• Profissão: %s\n• Como conheceu: %s\n\n📞 Nossa equipe entrará em contato para boas-vindas e integração!\n\n*Bem-vindo(a) à família CFC PUSH!* 🙏\n\nDigite [#] para menu principal.",
			user.Name, user.Name, data["dateOfBirth"], user.MaritalStatus, user.Profession, howFound),
	}
}
