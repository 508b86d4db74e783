package models

// Choice tables for the menu-bearing steps. IDs are what the engine
// matches the reply against; labels are what the user sees.

func MainMenuChoices() []Choice {
	return []Choice{
		{ID: "1", Label: "📝 Ser Membro"},
		{ID: "2", Label: "🙏 Oração"},
		{ID: "3", Label: "👨‍💼 Pastor"},
		{ID: "4", Label: "⏰ Cultos"},
		{ID: "5", Label: "💝 Contribuir"},
		{ID: "6", Label: "🏠 Visita"},
		{ID: "7", Label: "🤝 Assistência"},
		{ID: "8", Label: "🔔 Núcleos"},
		{ID: "9", Label: "🎵 Ministérios"},
		{ID: "10", Label: "🎯 Evangelização"},
		{ID: "11", Label: "🤝 Servos"},
		{ID: "12", Label: "🛍️ Loja"},
		{ID: "13", Label: "📍 Localização"},
		{ID: "14", Label: "💰 PUSH Invest"},
		{ID: "15", Label: "❌ Encerrar"},
	}
}

func MembershipChoices() []Choice {
	return []Choice{
		{ID: "Novo Membro", Label: "📝 Novo Membro"},
		{ID: "Transferência", Label: "🔄 Transferência"},
		{ID: "Atualizar Dados", Label: "✏️ Atualizar Dados"},
		{ID: "Direitos e Deveres", Label: "📋 Direitos/Deveres"},
		{ID: "#", Label: "🏠 Menu Principal"},
	}
}

func PrayerTypeChoices() []Choice {
	return []Choice{
		{ID: "Saúde", Label: "❤️ Saúde"},
		{ID: "Família", Label: "👨‍👩‍👧‍👦 Família"},
		{ID: "Finanças", Label: "💰 Finanças"},
		{ID: "Outros", Label: "📝 Outros"},
		{ID: "#", Label: "🏠 Menu Principal"},
	}
}

func AssistanceTypeChoices() []Choice {
	return []Choice{
		{ID: "Alimentar", Label: "🛒 Alimentar"},
		{ID: "Médica", Label: "🏥 Médica"},
		{ID: "Jurídica", Label: "⚖️ Jurídica"},
		{ID: "Outra", Label: "📝 Outra"},
		{ID: "#", Label: "🏠 Menu Principal"},
	}
}

func NucleoRegionChoices() []Choice {
	return []Choice{
		{ID: "Zona Norte", Label: "📍 Zona Norte"},
		{ID: "Zona Sul", Label: "📍 Zona Sul"},
		{ID: "Zona Leste", Label: "📍 Zona Leste"},
		{ID: "Zona Oeste", Label: "📍 Zona Oeste"},
		{ID: "Centro", Label: "📍 Centro"},
		{ID: "#", Label: "🏠 Menu Principal"},
	}
}

func MinistryChoices() []Choice {
	return []Choice{
		{ID: "Louvor e Adoração", Label: "🎵 Louvor"},
		{ID: "Intercessão", Label: "🙏 Intercessão"},
		{ID: "CFC Youth", Label: "🔥 Juventude"},
		{ID: "CFC Kids", Label: "👶 Infantil"},
		{ID: "Social", Label: "🤝 Social"},
		{ID: "#", Label: "🏠 Menu Principal"},
	}
}

func PushInvestChoices() []Choice {
	return []Choice{
		{ID: "Projetos", Label: "📊 Projetos"},
		{ID: "Investir", Label: "💵 Investir"},
		{ID: "Contato", Label: "📞 Contato"},
		{ID: "Voltar", Label: "↩️ Voltar"},
	}
}
