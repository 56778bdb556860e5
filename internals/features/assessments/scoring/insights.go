// file: internals/features/assessments/scoring/insights.go
package scoring

import "discprofile_backend/internals/features/assessments/catalog"

/* =============================================================================
   Insights de vendas: cascade de regra única avaliado em ordem fixa
   D, I, S, C. O primeiro fator com score natural ≥ 24 define o bundle;
   sem nenhum acima do limiar, cai no bundle genérico de versatilidade.
   A ordem importa: um candidato pode passar do limiar em mais de um fator
   e D é checado primeiro.
============================================================================= */

type insightRule struct {
	factor catalog.Factor
	bundle SalesInsights
}

var insightRules = []insightRule{
	{factor: catalog.FactorD, bundle: SalesInsights{
		Profile: "Diretor",
		Strengths: []string{
			"Fecha negócios com rapidez e objetividade",
			"Mantém o foco em metas e resultados",
			"Não se intimida com objeções duras",
		},
		Weaknesses: []string{
			"Pode atropelar o ritmo do cliente",
			"Tende a ouvir menos do que deveria",
		},
		IdealCustomer: "Decisores diretos, que valorizam agilidade e vão direto ao ponto",
		SalesApproach: "Apresente resultados e números logo no início, ofereça opções claras e conduza para o fechamento sem rodeios.",
	}},
	{factor: catalog.FactorI, bundle: SalesInsights{
		Profile: "Comunicador",
		Strengths: []string{
			"Cria vínculo e confiança com facilidade",
			"Conta histórias que dão vida ao produto",
			"Mantém a energia alta em negociações longas",
		},
		Weaknesses: []string{
			"Pode perder o fio do processo comercial",
			"Promete além do combinado no entusiasmo",
		},
		IdealCustomer: "Clientes relacionais, que compram de quem gostam e confiam",
		SalesApproach: "Invista na conversa e no relacionamento, use casos reais e entusiasmo, mas registre por escrito cada compromisso.",
	}},
	{factor: catalog.FactorS, bundle: SalesInsights{
		Profile: "Planejador",
		Strengths: []string{
			"Constrói relações comerciais duradouras",
			"Acompanha o pós-venda com consistência",
			"Transmite calma e segurança ao cliente",
		},
		Weaknesses: []string{
			"Evita confrontar objeções de frente",
			"Demora a pedir o fechamento",
		},
		IdealCustomer: "Clientes fiéis, que preferem continuidade e atendimento próximo",
		SalesApproach: "Trabalhe a venda em etapas previsíveis, sem pressão, e use o histórico de confiança como principal argumento.",
	}},
	{factor: catalog.FactorC, bundle: SalesInsights{
		Profile: "Analista",
		Strengths: []string{
			"Domina as especificações do que vende",
			"Prepara propostas precisas e bem fundamentadas",
			"Antecipa riscos que o cliente ainda não viu",
		},
		Weaknesses: []string{
			"Excesso de detalhe pode esfriar a negociação",
			"Perfeccionismo atrasa o envio de propostas",
		},
		IdealCustomer: "Compradores técnicos, que decidem por critérios e comparativos",
		SalesApproach: "Leve dados, comparativos e documentação completa; responda objeções com evidências, não com entusiasmo.",
	}},
}

var genericInsights = SalesInsights{
	Profile: "Versátil",
	Strengths: []string{
		"Adapta o estilo de venda ao perfil do cliente",
		"Transita bem entre negociação rápida e consultiva",
	},
	Weaknesses: []string{
		"Sem um traço dominante, pode faltar assinatura própria na abordagem",
	},
	IdealCustomer: "Carteiras variadas, com perfis de compra diferentes entre si",
	SalesApproach: "Leia o estilo do cliente no início da conversa e espelhe o ritmo dele: objetivo com os diretos, detalhado com os técnicos.",
}

func salesInsights(natural DiscVector) SalesInsights {
	for _, rule := range insightRules {
		if natural.Get(rule.factor) >= salesInsightThreshold {
			return rule.bundle
		}
	}
	return genericInsights
}
