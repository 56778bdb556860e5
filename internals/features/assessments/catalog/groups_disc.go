// file: internals/features/assessments/catalog/groups_disc.go
package catalog

/* =============================================================================
   Grupos DISC (10 grupos × 4 adjetivos)
   Cada grupo carrega exatamente um adjetivo por fator (D, I, S, C).
   Usados nos estágios natural e adapted.
============================================================================= */

var discGroups = [GroupsPerStage][]Item{
	{
		{Text: "Decidido", Factor: FactorD},
		{Text: "Comunicativo", Factor: FactorI},
		{Text: "Paciente", Factor: FactorS},
		{Text: "Preciso", Factor: FactorC},
	},
	{
		{Text: "Competitivo", Factor: FactorD},
		{Text: "Entusiasmado", Factor: FactorI},
		{Text: "Leal", Factor: FactorS},
		{Text: "Analítico", Factor: FactorC},
	},
	{
		{Text: "Direto", Factor: FactorD},
		{Text: "Persuasivo", Factor: FactorI},
		{Text: "Calmo", Factor: FactorS},
		{Text: "Cauteloso", Factor: FactorC},
	},
	{
		{Text: "Audacioso", Factor: FactorD},
		{Text: "Sociável", Factor: FactorI},
		{Text: "Constante", Factor: FactorS},
		{Text: "Organizado", Factor: FactorC},
	},
	{
		{Text: "Determinado", Factor: FactorD},
		{Text: "Otimista", Factor: FactorI},
		{Text: "Prestativo", Factor: FactorS},
		{Text: "Detalhista", Factor: FactorC},
	},
	{
		{Text: "Enérgico", Factor: FactorD},
		{Text: "Expressivo", Factor: FactorI},
		{Text: "Tranquilo", Factor: FactorS},
		{Text: "Metódico", Factor: FactorC},
	},
	{
		{Text: "Exigente", Factor: FactorD},
		{Text: "Extrovertido", Factor: FactorI},
		{Text: "Estável", Factor: FactorS},
		{Text: "Criterioso", Factor: FactorC},
	},
	{
		{Text: "Corajoso", Factor: FactorD},
		{Text: "Envolvente", Factor: FactorI},
		{Text: "Acolhedor", Factor: FactorS},
		{Text: "Disciplinado", Factor: FactorC},
	},
	{
		{Text: "Firme", Factor: FactorD},
		{Text: "Animado", Factor: FactorI},
		{Text: "Ponderado", Factor: FactorS},
		{Text: "Perfeccionista", Factor: FactorC},
	},
	{
		{Text: "Dominante", Factor: FactorD},
		{Text: "Influente", Factor: FactorI},
		{Text: "Conciliador", Factor: FactorS},
		{Text: "Lógico", Factor: FactorC},
	},
}
