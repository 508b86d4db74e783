package services

import (
	"strings"
	"testing"
	"time"

	"github.com/cfcpush/chatbot-backend/internal/models"
	"github.com/cfcpush/chatbot-backend/internal/storage"
)

func newTestConversation() (*ConversationService, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	return NewConversationService(store), store
}

func stepOf(t *testing.T, c *ConversationService, phone string) models.Step {
	t.Helper()
	session := c.sessions.Get(phone)
	if session == nil {
		t.Fatal("expected a live session")
	}
	return session.Step
}

func TestFirstContactShowsWelcomeMenu(t *testing.T) {
	c, _ := newTestConversation()
	phone := "+258842000001"

	response := c.ProcessMessage(phone, "shalom")
	if !strings.Contains(response.Text, "CFC PUSH") {
		t.Errorf("welcome text missing: %q", response.Text)
	}
	if len(response.Choices) != 15 {
		t.Errorf("main menu has %d choices, want 15", len(response.Choices))
	}
	if step := stepOf(t, c, phone); step != models.StepMainMenu {
		t.Errorf("step = %s, want %s", step, models.StepMainMenu)
	}
}

func TestUnknownInputAtMenuIsIdempotent(t *testing.T) {
	c, _ := newTestConversation()
	phone := "+258842000002"

	c.ProcessMessage(phone, "olá")

	first := c.ProcessMessage(phone, "xyzzy")
	second := c.ProcessMessage(phone, "xyzzy")
	if first.Text != second.Text {
		t.Errorf("fallback should not vary: %q vs %q", first.Text, second.Text)
	}
	if !strings.Contains(first.Text, "Opção não reconhecida") {
		t.Errorf("unexpected fallback text: %q", first.Text)
	}
	if step := stepOf(t, c, phone); step != models.StepMainMenu {
		t.Errorf("garbage input moved step to %s", step)
	}
}

func TestHashEscapesFromAnyStep(t *testing.T) {
	c, _ := newTestConversation()
	phone := "+258842000003"

	// Get deep into the registration flow.
	c.ProcessMessage(phone, "oi")
	c.ProcessMessage(phone, "1")
	c.ProcessMessage(phone, "Novo Membro")
	c.ProcessMessage(phone, "João Silva")
	if step := stepOf(t, c, phone); step != models.StepCadastroDataNascimento {
		t.Fatalf("setup failed, step = %s", step)
	}

	response := c.ProcessMessage(phone, "#")
	if len(response.Choices) != 15 {
		t.Errorf("expected the main menu after #, got %d choices", len(response.Choices))
	}
	if step := stepOf(t, c, phone); step != models.StepMainMenu {
		t.Errorf("step after # = %s, want %s", step, models.StepMainMenu)
	}
}

func TestPrayerFlowForFamilyMember(t *testing.T) {
	c, store := newTestConversation()
	phone := "+258842000004"

	c.ProcessMessage(phone, "bom dia")

	response := c.ProcessMessage(phone, "2")
	if len(response.Choices) != 5 {
		t.Fatalf("prayer menu has %d choices, want 5", len(response.Choices))
	}
	if step := stepOf(t, c, phone); step != models.StepOracaoTipo {
		t.Fatalf("step = %s, want %s", step, models.StepOracaoTipo)
	}

	c.ProcessMessage(phone, "Família")
	session := c.sessions.Get(phone)
	if session.Step != models.StepOracaoNomeFamilia {
		t.Fatalf("step = %s, want %s", session.Step, models.StepOracaoNomeFamilia)
	}
	if session.Data["prayerType"] != models.PrayerTypeFamilia {
		t.Errorf("prayerType = %q, want %q", session.Data["prayerType"], models.PrayerTypeFamilia)
	}

	c.ProcessMessage(phone, "Maria")
	if step := stepOf(t, c, phone); step != models.StepOracaoDetalhe {
		t.Fatalf("step = %s, want %s", step, models.StepOracaoDetalhe)
	}

	c.ProcessMessage(phone, "Pela recuperação da saúde dela")
	if step := stepOf(t, c, phone); step != models.StepOracaoAnonimato {
		t.Fatalf("step = %s, want %s", step, models.StepOracaoAnonimato)
	}

	response = c.ProcessMessage(phone, "1")
	if !strings.Contains(response.Text, "PEDIDO DE ORAÇÃO ENVIADO") {
		t.Errorf("unexpected confirmation: %q", response.Text)
	}

	requests, err := store.GetRecentPrayerRequests(10)
	if err != nil {
		t.Fatalf("GetRecentPrayerRequests: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("got %d prayer requests, want 1", len(requests))
	}
	request := requests[0]
	if !request.IsAnonymous || request.UserName != "Anónimo" {
		t.Errorf("expected anonymous request, got name %q anonymous=%v", request.UserName, request.IsAnonymous)
	}
	if request.FamilyMemberName != "Maria" {
		t.Errorf("familyMemberName = %q, want Maria", request.FamilyMemberName)
	}
	if request.Type != models.PrayerTypeFamilia {
		t.Errorf("type = %q, want %q", request.Type, models.PrayerTypeFamilia)
	}
	if request.Status != models.StatusPendente {
		t.Errorf("status = %q, want %q", request.Status, models.StatusPendente)
	}

	// Terminal step resets the conversation with a clean bag.
	session = c.sessions.Get(phone)
	if session.Step != models.StepMainMenu {
		t.Errorf("step after finish = %s, want %s", session.Step, models.StepMainMenu)
	}
	if len(session.Data) != 0 {
		t.Errorf("data bag not cleared: %v", session.Data)
	}
}

func TestPrayerMenuAcceptsPositionalNumber(t *testing.T) {
	c, _ := newTestConversation()
	phone := "+258842000005"

	c.ProcessMessage(phone, "oi")
	c.ProcessMessage(phone, "2")

	// "1" is the first rendered option: Saúde.
	c.ProcessMessage(phone, "1")
	session := c.sessions.Get(phone)
	if session.Step != models.StepOracaoDetalhe {
		t.Fatalf("step = %s, want %s", session.Step, models.StepOracaoDetalhe)
	}
	if session.Data["prayerType"] != models.PrayerTypeSaude {
		t.Errorf("prayerType = %q, want %q", session.Data["prayerType"], models.PrayerTypeSaude)
	}
}

func TestRegistrationRejectionKeepsStep(t *testing.T) {
	c, _ := newTestConversation()
	phone := "+258842000006"

	c.ProcessMessage(phone, "oi")
	c.ProcessMessage(phone, "1")
	c.ProcessMessage(phone, "Novo Membro")

	response := c.ProcessMessage(phone, "Jo")
	if !strings.Contains(response.Text, "❌") {
		t.Errorf("expected a validation error, got %q", response.Text)
	}
	if step := stepOf(t, c, phone); step != models.StepCadastroNome {
		t.Errorf("rejected input advanced step to %s", step)
	}

	c.ProcessMessage(phone, "João Silva")
	session := c.sessions.Get(phone)
	if session.Step != models.StepCadastroDataNascimento {
		t.Errorf("step = %s, want %s", session.Step, models.StepCadastroDataNascimento)
	}
	if session.Data["name"] != "João Silva" {
		t.Errorf("name = %q, want João Silva", session.Data["name"])
	}
}

func TestRegistrationEndToEnd(t *testing.T) {
	c, store := newTestConversation()
	phone := "+258842000007"

	c.ProcessMessage(phone, "oi")
	c.ProcessMessage(phone, "1")
	c.ProcessMessage(phone, "Novo Membro")
	c.ProcessMessage(phone, "João Silva")
	c.ProcessMessage(phone, "15/08/1990")
	c.ProcessMessage(phone, "2")
	c.ProcessMessage(phone, "Av. 25 de Setembro, 1234 - Maputo")
	c.ProcessMessage(phone, "Professor")
	response := c.ProcessMessage(phone, "1")

	if !strings.Contains(response.Text, "CADASTRO CONCLUÍDO") {
		t.Fatalf("unexpected confirmation: %q", response.Text)
	}

	user, err := store.GetUserByPhone(phone)
	if err != nil {
		t.Fatalf("GetUserByPhone: %v", err)
	}
	if user.Name != "João Silva" || !user.IsMember {
		t.Errorf("unexpected user record: %+v", user)
	}
	if user.MaritalStatus != "Casado(a)" {
		t.Errorf("maritalStatus = %q, want Casado(a)", user.MaritalStatus)
	}
	if user.HowFoundChurch != "Amigo/Familiar" {
		t.Errorf("howFoundChurch = %q, want Amigo/Familiar", user.HowFoundChurch)
	}
	if user.DateOfBirth == nil || user.DateOfBirth.Year() != 1990 {
		t.Errorf("dateOfBirth not parsed: %v", user.DateOfBirth)
	}

	session := c.sessions.Get(phone)
	if session.Step != models.StepMainMenu || len(session.Data) != 0 {
		t.Errorf("session not reset after registration: step=%s data=%v", session.Step, session.Data)
	}
}

func TestAssistanceFlowDerivesPriority(t *testing.T) {
	c, store := newTestConversation()
	phone := "+258842000008"

	c.ProcessMessage(phone, "oi")
	c.ProcessMessage(phone, "7")
	c.ProcessMessage(phone, "Médica")

	// Under ten characters gets re-prompted.
	response := c.ProcessMessage(phone, "ajuda")
	if !strings.Contains(response.Text, "muito curta") {
		t.Errorf("expected short-description rejection, got %q", response.Text)
	}

	response = c.ProcessMessage(phone, "Preciso de ajuda com consultas e medicamentos")
	if !strings.Contains(response.Text, "SOLICITAÇÃO DE ASSISTÊNCIA ENVIADA") {
		t.Fatalf("unexpected confirmation: %q", response.Text)
	}

	requests, err := store.GetRecentAssistanceRequests(10)
	if err != nil {
		t.Fatalf("GetRecentAssistanceRequests: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("got %d assistance requests, want 1", len(requests))
	}
	if requests[0].Type != models.AssistanceTypeMedica {
		t.Errorf("type = %q, want %q", requests[0].Type, models.AssistanceTypeMedica)
	}
	if requests[0].Priority != models.PriorityAlta {
		t.Errorf("priority = %q, want %q", requests[0].Priority, models.PriorityAlta)
	}
}

func TestFarewellDeletesSession(t *testing.T) {
	c, _ := newTestConversation()
	phone := "+258842000009"

	c.ProcessMessage(phone, "oi")
	response := c.ProcessMessage(phone, "15")
	if !strings.Contains(response.Text, "ATENDIMENTO ENCERRADO") {
		t.Errorf("unexpected farewell: %q", response.Text)
	}
	if c.sessions.Get(phone) != nil {
		t.Error("session should be deleted after farewell")
	}

	// Any new message restarts from the welcome.
	response = c.ProcessMessage(phone, "qualquer coisa")
	if len(response.Choices) != 15 {
		t.Errorf("expected welcome menu on restart, got %d choices", len(response.Choices))
	}
}

func TestVisitFlowRejectsPastDate(t *testing.T) {
	c, _ := newTestConversation()
	phone := "+258842000010"

	c.ProcessMessage(phone, "oi")
	c.ProcessMessage(phone, "6")
	if step := stepOf(t, c, phone); step != models.StepVisitaData {
		t.Fatalf("step = %s, want %s", step, models.StepVisitaData)
	}

	response := c.ProcessMessage(phone, "01/01/2020")
	if !strings.Contains(response.Text, "Data passada") {
		t.Errorf("expected past-date rejection, got %q", response.Text)
	}
	if step := stepOf(t, c, phone); step != models.StepVisitaData {
		t.Errorf("rejected date advanced step to %s", step)
	}
}

func TestInfoLeavesStayAtMainMenu(t *testing.T) {
	c, _ := newTestConversation()
	phone := "+258842000011"

	c.ProcessMessage(phone, "oi")
	response := c.ProcessMessage(phone, "4")
	if !strings.Contains(response.Text, "CULTOS E HORÁRIOS") {
		t.Errorf("unexpected service times text: %q", response.Text)
	}
	if step := stepOf(t, c, phone); step != models.StepMainMenu {
		t.Errorf("info leaf moved step to %s", step)
	}

	// Still able to pick another option right away.
	response = c.ProcessMessage(phone, "13")
	if !strings.Contains(response.Text, "LOCALIZAÇÃO") {
		t.Errorf("unexpected location text: %q", response.Text)
	}
}

func TestMembershipRightsAndDuties(t *testing.T) {
	c, _ := newTestConversation()
	phone := "+258842000012"

	c.ProcessMessage(phone, "oi")
	c.ProcessMessage(phone, "1")
	response := c.ProcessMessage(phone, "Direitos e Deveres")
	if !strings.Contains(response.Text, "DIREITOS E DEVERES") {
		t.Errorf("unexpected rights/duties text: %q", response.Text)
	}
	if step := stepOf(t, c, phone); step != models.StepMainMenu {
		t.Errorf("leaf did not reset to main menu, step = %s", step)
	}
}

func TestAbandonedFamilyPrayerDoesNotLeakName(t *testing.T) {
	c, store := newTestConversation()
	phone := "+258842000013"

	// Start a family prayer, give the name, then abandon with #.
	c.ProcessMessage(phone, "oi")
	c.ProcessMessage(phone, "2")
	c.ProcessMessage(phone, "Família")
	c.ProcessMessage(phone, "Maria")
	c.ProcessMessage(phone, "#")

	// A fresh Saúde prayer must not carry the old family name.
	c.ProcessMessage(phone, "2")
	c.ProcessMessage(phone, "Saúde")
	c.ProcessMessage(phone, "Pela minha recuperação")
	response := c.ProcessMessage(phone, "1")
	if !strings.Contains(response.Text, "PEDIDO DE ORAÇÃO ENVIADO") {
		t.Fatalf("unexpected confirmation: %q", response.Text)
	}

	requests, err := store.GetRecentPrayerRequests(10)
	if err != nil {
		t.Fatalf("GetRecentPrayerRequests: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("got %d prayer requests, want 1", len(requests))
	}
	if requests[0].Type != models.PrayerTypeSaude {
		t.Errorf("type = %q, want %q", requests[0].Type, models.PrayerTypeSaude)
	}
	if requests[0].FamilyMemberName != "" {
		t.Errorf("familyMemberName = %q, want empty", requests[0].FamilyMemberName)
	}
}

func TestVisitFlowEndToEnd(t *testing.T) {
	c, store := newTestConversation()
	phone := "+258842000014"

	date := time.Now().AddDate(0, 0, 14).Format("02/01/2006")

	c.ProcessMessage(phone, "oi")
	c.ProcessMessage(phone, "6")
	c.ProcessMessage(phone, date)
	if step := stepOf(t, c, phone); step != models.StepVisitaMotivo {
		t.Fatalf("step = %s, want %s", step, models.StepVisitaMotivo)
	}

	response := c.ProcessMessage(phone, "Oração pela família e dedicação da casa")
	if !strings.Contains(response.Text, "VISITA PASTORAL SOLICITADA") {
		t.Fatalf("unexpected confirmation: %q", response.Text)
	}

	visits, err := store.GetRecentVisitRequests(10)
	if err != nil {
		t.Fatalf("GetRecentVisitRequests: %v", err)
	}
	if len(visits) != 1 {
		t.Fatalf("got %d visit requests, want 1", len(visits))
	}
	if visits[0].VisitDate != date {
		t.Errorf("visitDate = %q, want %q", visits[0].VisitDate, date)
	}
	if visits[0].UserPhone != phone {
		t.Errorf("userPhone = %q, want %q", visits[0].UserPhone, phone)
	}
	if visits[0].Status != models.StatusPendente {
		t.Errorf("status = %q, want %q", visits[0].Status, models.StatusPendente)
	}

	session := c.sessions.Get(phone)
	if session.Step != models.StepMainMenu || len(session.Data) != 0 {
		t.Errorf("session not reset after visit request: step=%s data=%v", session.Step, session.Data)
	}
}

func TestTransferFlowEndToEnd(t *testing.T) {
	c, store := newTestConversation()
	phone := "+258842000015"

	c.ProcessMessage(phone, "oi")
	c.ProcessMessage(phone, "1")
	c.ProcessMessage(phone, "Transferência")
	if step := stepOf(t, c, phone); step != models.StepTransferenciaIgrejaOrigem {
		t.Fatalf("step = %s, want %s", step, models.StepTransferenciaIgrejaOrigem)
	}

	c.ProcessMessage(phone, "Igreja Batista Central")
	response := c.ProcessMessage(phone, "Mudança de cidade")
	if !strings.Contains(response.Text, "SOLICITAÇÃO DE TRANSFERÊNCIA ENVIADA") {
		t.Fatalf("unexpected confirmation: %q", response.Text)
	}

	transfers, err := store.GetRecentTransferRequests(10)
	if err != nil {
		t.Fatalf("GetRecentTransferRequests: %v", err)
	}
	if len(transfers) != 1 {
		t.Fatalf("got %d transfer requests, want 1", len(transfers))
	}
	if transfers[0].PreviousChurch != "Igreja Batista Central" {
		t.Errorf("previousChurch = %q", transfers[0].PreviousChurch)
	}
	if transfers[0].Reason != "Mudança de cidade" {
		t.Errorf("reason = %q", transfers[0].Reason)
	}
	if transfers[0].Status != models.StatusPendente {
		t.Errorf("status = %q, want %q", transfers[0].Status, models.StatusPendente)
	}

	session := c.sessions.Get(phone)
	if session.Step != models.StepMainMenu || len(session.Data) != 0 {
		t.Errorf("session not reset after transfer request: step=%s data=%v", session.Step, session.Data)
	}
}

func TestDataUpdateFlowEndToEnd(t *testing.T) {
	c, store := newTestConversation()
	phone := "+258842000016"

	if err := store.SaveUser(&models.User{
		Phone:    phone,
		Name:     "João Silva",
		IsMember: true,
	}); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}

	c.ProcessMessage(phone, "oi")
	c.ProcessMessage(phone, "1")
	response := c.ProcessMessage(phone, "Atualizar Dados")
	if strings.Contains(response.Text, "Telefone") {
		t.Errorf("phone must not be offered as an updatable field: %q", response.Text)
	}

	// Option 3 selects Profissão.
	response = c.ProcessMessage(phone, "3")
	if !strings.Contains(response.Text, "Profissão") {
		t.Fatalf("option 3 did not select profession: %q", response.Text)
	}

	response = c.ProcessMessage(phone, "Engenheiro")
	if !strings.Contains(response.Text, "DADOS ATUALIZADOS COM SUCESSO") {
		t.Fatalf("unexpected confirmation: %q", response.Text)
	}

	user, err := store.GetUserByPhone(phone)
	if err != nil {
		t.Fatalf("GetUserByPhone: %v", err)
	}
	if user.Profession != "Engenheiro" {
		t.Errorf("profession = %q, want Engenheiro", user.Profession)
	}
	if user.Phone != phone {
		t.Errorf("phone changed to %q", user.Phone)
	}

	session := c.sessions.Get(phone)
	if session.Step != models.StepMainMenu || len(session.Data) != 0 {
		t.Errorf("session not reset after update: step=%s data=%v", session.Step, session.Data)
	}
}

func TestRenderResponseTextNumbersChoices(t *testing.T) {
	response := &models.Response{
		Text: "Escolha:",
		Choices: []models.Choice{
			{ID: "Saúde", Label: "❤️ Saúde"},
			{ID: "#", Label: "🏠 Menu Principal"},
		},
	}

	rendered := RenderResponseText(response)
	if !strings.Contains(rendered, "1. ❤️ Saúde") || !strings.Contains(rendered, "2. 🏠 Menu Principal") {
		t.Errorf("choices not numbered: %q", rendered)
	}
	if !strings.Contains(rendered, "Responda com o número da opção") {
		t.Errorf("reply instruction missing: %q", rendered)
	}
}
