// file: internals/features/assessments/catalog/groups_values.go
package catalog

/* =============================================================================
   Grupos de valores motivacionais (10 grupos × 6 frases)
   Cada grupo carrega exatamente uma frase por fator:
   theoretical, economic, aesthetic, social, political, spiritual.
============================================================================= */

var valuesGroups = [GroupsPerStage][]Item{
	{
		{Text: "Aprender algo novo todos os dias", Factor: FactorTheoretical},
		{Text: "Obter retorno financeiro do meu esforço", Factor: FactorEconomic},
		{Text: "Trabalhar em um ambiente bonito e harmonioso", Factor: FactorAesthetic},
		{Text: "Ajudar as pessoas ao meu redor", Factor: FactorSocial},
		{Text: "Liderar e influenciar decisões", Factor: FactorPolitical},
		{Text: "Viver de acordo com meus princípios", Factor: FactorSpiritual},
	},
	{
		{Text: "Entender como as coisas funcionam", Factor: FactorTheoretical},
		{Text: "Acumular patrimônio e segurança material", Factor: FactorEconomic},
		{Text: "Expressar criatividade no que faço", Factor: FactorAesthetic},
		{Text: "Contribuir para o bem-estar da equipe", Factor: FactorSocial},
		{Text: "Ter autoridade para definir o rumo das coisas", Factor: FactorPolitical},
		{Text: "Encontrar propósito no meu trabalho", Factor: FactorSpiritual},
	},
	{
		{Text: "Dominar profundamente um assunto", Factor: FactorTheoretical},
		{Text: "Ser recompensado pelos resultados que entrego", Factor: FactorEconomic},
		{Text: "Buscar equilíbrio entre forma e função", Factor: FactorAesthetic},
		{Text: "Apoiar quem está passando por dificuldades", Factor: FactorSocial},
		{Text: "Conquistar posições de destaque", Factor: FactorPolitical},
		{Text: "Agir com fé no futuro", Factor: FactorSpiritual},
	},
	{
		{Text: "Basear decisões em dados e evidências", Factor: FactorTheoretical},
		{Text: "Negociar boas condições em tudo", Factor: FactorEconomic},
		{Text: "Cuidar da estética do que apresento", Factor: FactorAesthetic},
		{Text: "Fazer parte de uma comunidade unida", Factor: FactorSocial},
		{Text: "Competir para vencer", Factor: FactorPolitical},
		{Text: "Preservar minhas crenças mesmo sob pressão", Factor: FactorSpiritual},
	},
	{
		{Text: "Pesquisar antes de formar opinião", Factor: FactorTheoretical},
		{Text: "Transformar oportunidades em lucro", Factor: FactorEconomic},
		{Text: "Valorizar experiências sensoriais e culturais", Factor: FactorAesthetic},
		{Text: "Colocar as pessoas antes dos processos", Factor: FactorSocial},
		{Text: "Assumir o comando em momentos críticos", Factor: FactorPolitical},
		{Text: "Dedicar tempo à reflexão e à gratidão", Factor: FactorSpiritual},
	},
	{
		{Text: "Questionar verdades estabelecidas", Factor: FactorTheoretical},
		{Text: "Medir o sucesso pelo que construí", Factor: FactorEconomic},
		{Text: "Criar ambientes agradáveis para conviver", Factor: FactorAesthetic},
		{Text: "Ser lembrado pela generosidade", Factor: FactorSocial},
		{Text: "Expandir minha rede de influência", Factor: FactorPolitical},
		{Text: "Servir a algo maior do que eu", Factor: FactorSpiritual},
	},
	{
		{Text: "Estudar teorias e conceitos novos", Factor: FactorTheoretical},
		{Text: "Garantir estabilidade financeira para a família", Factor: FactorEconomic},
		{Text: "Apreciar arte, música e design", Factor: FactorAesthetic},
		{Text: "Ensinar o que sei a outras pessoas", Factor: FactorSocial},
		{Text: "Ser reconhecido como referência", Factor: FactorPolitical},
		{Text: "Manter coerência entre discurso e prática", Factor: FactorSpiritual},
	},
	{
		{Text: "Analisar problemas por todos os ângulos", Factor: FactorTheoretical},
		{Text: "Investir com visão de longo prazo", Factor: FactorEconomic},
		{Text: "Dar acabamento impecável ao que produzo", Factor: FactorAesthetic},
		{Text: "Construir relações de confiança", Factor: FactorSocial},
		{Text: "Disputar espaços de decisão", Factor: FactorPolitical},
		{Text: "Cultivar paz interior", Factor: FactorSpiritual},
	},
	{
		{Text: "Ler e me atualizar constantemente", Factor: FactorTheoretical},
		{Text: "Ganhar mais do que a média do mercado", Factor: FactorEconomic},
		{Text: "Transformar ideias em algo belo", Factor: FactorAesthetic},
		{Text: "Trabalhar por causas sociais", Factor: FactorSocial},
		{Text: "Mobilizar pessoas em torno de um objetivo", Factor: FactorPolitical},
		{Text: "Honrar meus valores em cada escolha", Factor: FactorSpiritual},
	},
	{
		{Text: "Resolver enigmas e problemas complexos", Factor: FactorTheoretical},
		{Text: "Fechar negócios vantajosos", Factor: FactorEconomic},
		{Text: "Encontrar beleza nas pequenas coisas", Factor: FactorAesthetic},
		{Text: "Promover harmonia entre as pessoas", Factor: FactorSocial},
		{Text: "Deixar um legado de conquistas", Factor: FactorPolitical},
		{Text: "Viver com propósito e significado", Factor: FactorSpiritual},
	},
}
