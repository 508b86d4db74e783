package services

import "github.com/cfcpush/chatbot-backend/internal/models"

// Fixed message copy for the informational leaves. Handlers return these
// verbatim; the conversation stays at the main menu.

const welcomeText = "🏛️ *CFC PUSH - Igreja da Família Cristã*\n\nShalom! 👋 Agradecemos por entrar em contato connosco. Somos a Igreja da Família Cristã - CFC PUSH - *Onde Oramos Até Algo Acontecer!*\n\n*Para continuar, selecione uma das opções abaixo:*\n\n💡 *Navegação rápida:*\nDigite [#] para voltar ao menu principal"

const farewellText = "👋 *ATENDIMENTO ENCERRADO!*\n\nObrigado por contactar a *CFC PUSH - Igreja da Família Cristã*! 🙏\n\nQue Deus te abençoe ricamente e estamos sempre aqui para servir!\n\n*Shalom!* ✨\n\nPara reiniciar, digite qualquer mensagem."

const pastorInfoText = "👨‍💼 *FALAR COM PASTOR*\n\n*Contatos Diretos:*\n📞 Telefone: +258 84 123 4567\n✉️ E-mail: pastor@cfcpush.org\n\n*Horários de Atendimento:*\nSegunda a Sexta: 14h-18h\nSábado: 9h-12h\n\n*Local:* Gabinete Pastoral - Sede CFC PUSH\n\nDigite [#] para menu principal"

const serviceTimesText = "⏰ *CULTOS E HORÁRIOS*\n\n*Horários Regulares:*\n\n📅 *DOMINGO*\n8h30 - Culto de Celebração Principal\n\n📅 *QUARTA-FEIRA*\n18h00 - Oração e Estudo Bíblico\n\n📅 *SEXTA-FEIRA*\n18h00 - CFC PUSH Jovens\n\n📅 *SÁBADO*\n16h00 - Escola Bíblica e Discipulado\n\n*Eventos Especiais:*\n• Vigílias Mensais\n• Conferências Trimestrais\n• Batismos (consulte datas)\n\n*Transmissão Online:*\nDisponível em nosso site\n\nDigite [#] para menu principal"

const contributionInfoText = "💝 *CONTRIBUIÇÕES E DOAÇÕES*\n\n*Agradecemos sua generosidade!*\n\n*Métodos de Contribuição:*\n\n🏦 *Transferência Bancária:*\nBanco: BCI\nConta: 123456789012\nNIB: 0008000123456789012\n\n📱 *Mobile Money (M-Pesa):*\nNúmero: +258 84 500 6000\nNome: CFC PUSH Igreja\n\n💵 *Coleta nos Cultos:*\nDurante os cultos presenciais\n\n*Transparência:*\nRelatórios financeiros disponíveis mensalmente\n\nDigite [#] para menu principal"

const evangelizationInfoText = "🎯 *CAMPANHAS DE EVANGELIZAÇÃO*\n\n*Próximos Eventos:*\n\n🔹 *Evangelismo de Rua*\nSábado, 15h00 - Centro da Cidade\n\n🔹 *Visitação Hospitalar*\nQuintas, 10h00 - Hospital Central\n\n🔹 *Campanha Jovens*\nSextas, 18h00 - Sede CFC PUSH\n\n*Como Participar:*\nCompareça aos treinamentos ou entre em contato com o Ministério de Evangelização\n\n📞 Contato: +258 84 700 8000\n\nDigite [#] para menu principal"

const servantsInfoText = "🤝 *SERVIÇO E VOLUNTARIADO*\n\n*Áreas de Serviço Disponíveis:*\n\n• Recepção e Acolhimento\n• Limpeza e Manutenção\n• Mídia e Tecnologia\n• Intercessão e Oração\n• Evangelismo e Missões\n• Ação Social\n\n*Treinamentos:*\nPrimeiro Sábado de cada mês, 14h00\n\n*Contato:*\n📞 +258 84 900 1000\n✉️ servos@cfcpush.org\n\nDigite [#] para menu principal"

const storeInfoText = "🛍️ *CENTRAL STORE CFC PUSH*\n\n*Produtos Disponíveis:*\n\n📚 *Livros e Bíblias:*\n• Bíblias de Estudo\n• Livros Cristãos\n• Devocionais\n\n🎵 *Mídia e Música:*\n• CDs de Louvor\n• DVDs de Pregações\n• Mensagens em Áudio\n\n👕 *Produtos Personalizados:*\n• Camisetas CFC PUSH\n• Canecas e Acessórios\n• Material de Escola Bíblica\n\n*Encomendas:*\n📞 +258 84 600 7000\n✉️ store@cfcpush.org\n\n*Local:* Sede CFC PUSH - Loja\n\nDigite [#] para menu principal"

const locationInfoText = "📍 *LOCALIZAÇÃO E CONTATO*\n\n*Endereço da Sede:*\n🏛️ CFC PUSH - Igreja da Família Cristã\nAv. 25 de Setembro, 1234\nMaputo, Moçambique\n\n*Coordenadas GPS:*\n-25.9689, 32.5695\n\n*Como Chegar:*\n🚌 *Transporte Público:*\n• Chapas: Linhas 25, 32, 44\n• Paragem: Av. 25 de Setembro\n\n🚗 *Estacionamento:*\nGratuito disponível no local\n\n*Contatos Gerais:*\n📞 +258 84 300 4000\n✉️ info@cfcpush.org\n🌐 www.cfcpush.org\n\nDigite [#] para menu principal"

const membershipRightsDutiesText = "📋 *DIREITOS E DEVERES DOS MEMBROS*\n\n*DIREITOS:*\n• Participar dos cultos e atividades\n• Votar em assembleias\n• Receber visita pastoral\n• Usufruir dos benefícios espirituais\n• Participar dos ministérios\n• Receber aconselhamento pastoral\n\n*DEVERES:*\n• Frequência aos cultos\n• Contribuição financeira\n• Participação ativa\n• Testemunho cristão\n• Respeito à liderança\n• Compromisso com a doutrina\n\n*CFC PUSH - Uma família em Cristo!* 🙏\n\nDigite [#] para menu principal."

// PUSH Invest copy: the short texts on menu selection, the fuller ones
// when the sub-state replies.

const pushInvestProjetosTeaserText = "💰 *PUSH INVEST - PROJETOS*\n\n*Em Breve!* 🚧\n\nEstamos preparando projetos incríveis de investimento e desenvolvimento para nossa comunidade.\n\n*Fique atento às novidades!*\n\nEm breve teremos:\n• Projetos imobiliários\n• Investimentos comunitários\n• Programas de desenvolvimento\n\nDigite [#] para voltar ao menu principal."

const pushInvestInvestirTeaserText = "💰 *PUSH INVEST - COMO INVESTIR*\n\n*Informação em Desenvolvimento* 📈\n\nNossa equipe está trabalhando nas melhores oportunidades de investimento para você.\n\n*Volte em breve para conhecer:*\n• Modalidades de investimento\n• Retornos esperados\n• Processo de participação\n\nDigite [#] para voltar ao menu principal."

const pushInvestContatoTeaserText = "💰 *PUSH INVEST - CONTATO*\n\n*Equipe Especializada* 👨‍💼\n\nPara informações sobre investimentos, entre em contato com nossa equipe:\n\n📞 *Telefone:* +258 84 500 6000\n✉️ *Email:* invest@cfcpush.org\n🏛️ *Escritório:* Sede CFC PUSH\n\n*Horário de Atendimento:*\nSegunda a Sexta: 9h-17h\nSábado: 9h-12h\n\nDigite [#] para voltar ao menu principal."

const pushInvestProjetosText = "💰 *PUSH INVEST - PROJETOS*\n\n*Em Desenvolvimento* 🚧\n\nEstamos criando oportunidades de investimento que beneficiem nossa comunidade e glorifiquem a Deus.\n\n*Áreas de Atuação Futura:*\n• Desenvolvimento imobiliário\n• Projetos comunitários\n• Investimentos sustentáveis\n• Programas de microcrédito\n\n📞 *Para mais informações:*\n+258 84 500 6000\ninvest@cfcpush.org\n\n*Volte em breve para novidades!*\n\nDigite [#] para menu principal."

const pushInvestInvestirText = "💰 *PUSH INVEST - COMO INVESTIR*\n\n*Informações em Desenvolvimento* 📈\n\nEstamos estruturando as melhores opções de investimento para nossos membros e parceiros.\n\n*Em Breve Ofereceremos:*\n• Diversas modalidades\n• Planos de investimento\n• Acompanhamento profissional\n• Transparência total\n\n💼 *Contato para Investidores:*\n📞 +258 84 500 6000\n✉️ invest@cfcpush.org\n\n*Deus abençoe seus investimentos!*\n\nDigite [#] para menu principal."

const pushInvestContatoText = "💰 *PUSH INVEST - CONTATO*\n\n*Fale com Nossa Equipe* 👨‍💼\n\n*Coordenação PUSH Invest:*\nIrmão João Investimentos\n\n📞 *Telefone:* +258 84 500 6000\n✉️ *Email:* invest@cfcpush.org\n🏛️ *Endereço:* Sede CFC PUSH\nAv. 25 de Setembro, 1234\nMaputo\n\n*Horário de Atendimento:*\nSegunda a Sexta: 9h-17h\nSábado: 9h-12h\n\n*Estamos aqui para ajudar!*\n\nDigite [#] para menu principal."

// Per-region núcleo details, keyed by the canonical choice ID.
var nucleoInfo = map[string]string{
	"Zona Norte": "🔔 *NÚCLEO ZONA NORTE*\n\n*Responsável:* Irmão João\n📞 +258 84 123 4567\n\n*Local de Reunião:*\nCentro Comunitário do Bairro\nAv. Norte, 567\n\n*Horários:*\nQuintas: 18h00 - Estudo Bíblico\nDomingos: 16h00 - Celebração",
	"Zona Sul":   "🔔 *NÚCLEO ZONA SUL*\n\n*Responsável:* Irmã Maria\n📞 +258 84 234 5678\n\n*Local de Reunião:*\nCasa de Família\nRua Sul, 890\n\n*Horários:*\nTerças: 18h00 - Oração\nSábados: 17h00 - Comunhão",
	"Zona Leste": "🔔 *NÚCLEO ZONA LESTE*\n\n*Responsável:* Irmão Pedro\n📞 +258 84 345 6789\n\n*Local de Reunião:*\nEscola Primária\nAv. Leste, 123\n\n*Horários:*\nQuartas: 17h30 - Estudo\nDomingos: 15h00 - Culto",
	"Zona Oeste": "🔔 *NÚCLEO ZONA OESTE*\n\n*Responsável:* Irmã Ana\n📞 +258 84 456 7890\n\n*Local de Reunião:*\nSalão Paroquial\nRua Oeste, 456\n\n*Horários:*\nSegundas: 18h00 - Intercessão\nSextas: 17h00 - Jovens",
	"Centro":     "🔔 *NÚCLEO CENTRO*\n\n*Responsável:* Irmão Carlos\n📞 +258 84 567 8901\n\n*Local de Reunião:*\nSede CFC PUSH\nAv. 25 de Setembro, 1234\n\n*Horários:*\nDiariamente - Programação Principal\nConsulte horários dos cultos",
}

// Per-ministry details, keyed by the canonical choice ID.
var ministryInfo = map[string]string{
	"Louvor e Adoração": "🎵 *MINISTÉRIO DE LOUVOR E ADORAÇÃO*\n\n*Responsável:* Irmão João Silva\n📞 +258 84 123 4567\n✉️ louvor@cfcpush.org\n\n*Descrição:*\nMinistério dedicado à música, canto e adoração através das artes. Preparamos os momentos de louvor dos cultos e eventos especiais.\n\n*Requisitos:*\n• Habilidade musical ou vocal\n• Compromisso com ensaios\n• Vida de adoração\n\n*Horários:*\nEnsaios: Quintas 19h00\nApresentações: Domingos e eventos",
	"Intercessão":       "🙏 *MINISTÉRIO DE INTERCESSÃO*\n\n*Responsável:* Irmã Maria Santos\n📞 +258 84 234 5678\n✉️ intercessao@cfcpush.org\n\n*Descrição:*\nGrupo de oração que intercede pela igreja, liderança, membros e necessidades específicas. Vigílias e cadeias de oração.\n\n*Requisitos:*\n• Vida de oração\n• Compromisso com horários\n• Discrição e fé\n\n*Horários:*\nReuniões: Segundas 18h00\nVigílias: Último Sábado do mês",
	"CFC Youth":         "🔥 *CFC YOUTH - MINISTÉRIO JOVEM*\n\n*Responsável:* Irmão Pedro Mondlane\n📞 +258 84 345 6789\n✉️ youth@cfcpush.org\n\n*Descrição:*\nMinistério para jovens de 15-30 anos. Encontros, estudos, eventos sociais e projetos missionários.\n\n*Requisitos:*\n• Idade: 15-30 anos\n• Vontade de servir\n• Participação ativa\n\n*Horários:*\nCulto Jovem: Sextas 18h00\nEncontros: Sábados 15h00",
	"CFC Kids":          "👶 *CFC KIDS - MINISTÉRIO INFANTIL*\n\n*Responsável:* Irmã Ana Pereira\n📞 +258 84 456 7890\n✉️ kids@cfcpush.org\n\n*Descrição:*\nMinistério para crianças de 3-12 anos. Escola Bíblica Infantil, atividades lúdicas e ensino cristão adaptado.\n\n*Requisitos para voluntários:*\n• Amor por crianças\n• Paciência e criatividade\n• Check-up de segurança\n\n*Horários:*\nDomingos: 9h00-12h00\nAtividades: Sábados 10h00",
	"Social":            "🤝 *MINISTÉRIO DE AÇÃO SOCIAL*\n\n*Responsável:* Irmão Carlos Nhaca\n📞 +258 84 567 8901\n✉️ social@cfcpush.org\n\n*Descrição:*\nAções sociais na comunidade: distribuição de alimentos, visitas a hospitais, apoio a famílias carentes e projetos de desenvolvimento.\n\n*Requisitos:*\n• Compaixão e serviço\n• Disponibilidade para visitas\n• Trabalho em equipe\n\n*Horários:*\nReuniões: Terças 17h00\nAções: Sábados 8h00-12h00",
}

// Menu prompt builders, paired with the choice tables in models.

func membershipMenuResponse() *models.Response {
	return &models.Response{
		Text:    "🎯 *SER MEMBRO CFC PUSH*\n\n*Como podemos ajudá-lo?*\n\nClique na opção desejada:",
		Choices: models.MembershipChoices(),
	}
}

func prayerTypeMenuResponse() *models.Response {
	return &models.Response{
		Text:    "🙏 *PEDIDO DE ORAÇÃO*\n\n*Para qual área você precisa de oração?*\n\nClique no tipo correspondente:\n\nNossa equipe de intercessão está pronta para orar por você!",
		Choices: models.PrayerTypeChoices(),
	}
}

func assistanceTypeMenuResponse() *models.Response {
	return &models.Response{
		Text:    "🤝 *ASSISTÊNCIA SOCIAL CFC PUSH*\n\n*Que tipo de assistência você precisa?*\n\nClique na opção correspondente:\n\nEstamos aqui para ajudar você e sua família!",
		Choices: models.AssistanceTypeChoices(),
	}
}

func nucleoRegionMenuResponse() *models.Response {
	return &models.Response{
		Text:    "🔔 *REDE DE NÚCLEOS CFC PUSH*\n\nEm qual *região* você mora? *Clique no botão da sua região:*\n\nEncontre o núcleo mais próximo de você!",
		Choices: models.NucleoRegionChoices(),
	}
}

func ministryMenuResponse() *models.Response {
	return &models.Response{
		Text:    "🎵 *MINISTÉRIOS CFC PUSH*\n\n*Clique no ministério de seu interesse:*\n\nEnvolva-se no serviço à Deus e à comunidade! Cada ministério tem seu propósito único.",
		Choices: models.MinistryChoices(),
	}
}

func pushInvestMenuResponse() *models.Response {
	return &models.Response{
		Text:    "💰 *PUSH INVEST - INVESTIMENTOS CFC*\n\n*Crescimento com Propósito* 🌱\n\nBem-vindo ao PUSH Invest - nosso departamento de investimentos e desenvolvimento financeiro.\n\n*O que você gostaria de saber?*\n\n💡 *Navegação:* Digite [#] para menu principal",
		Choices: models.PushInvestChoices(),
	}
}
