package scoring

// Recommendation is one remediation advice row of the vendor report.
type Recommendation struct {
	Priority    string `json:"priorita"`
	Area        string `json:"area"`
	Title       string `json:"titolo"`
	Description string `json:"descrizione"`
	Owner       string `json:"owner"`
	Horizon     string `json:"orizzonte"`
}

// areaThreshold is the single cut-off below which an area collects its
// remediation block.
const areaThreshold = 60

var managementRecommendations = []Recommendation{
	{
		Priority:    "Alta",
		Area:        "Gestione Sicurezza",
		Title:       "Governance e policy",
		Description: "Formalizzare policy di sicurezza, ruoli e responsabilita; prevedere approvazione e revisione periodica.",
		Owner:       "DPO / Compliance",
		Horizon:     "30-60 gg",
	},
	{
		Priority:    "Alta",
		Area:        "Gestione Sicurezza",
		Title:       "Gestione terze parti",
		Description: "Introdurre un processo di vendor risk management con SLA, requisiti minimi e due diligence.",
		Owner:       "Procurement",
		Horizon:     "60 gg",
	},
	{
		Priority:    "Media",
		Area:        "Gestione Sicurezza",
		Title:       "Risk assessment",
		Description: "Attivare un processo strutturato di valutazione e trattamento dei rischi con evidenze documentali.",
		Owner:       "Risk Manager",
		Horizon:     "90 gg",
	},
	{
		Priority:    "Media",
		Area:        "Gestione Sicurezza",
		Title:       "Formazione e awareness",
		Description: "Pianificare formazione annuale e campagne di sensibilizzazione con tracciamento delle presenze.",
		Owner:       "HR / Security",
		Horizon:     "90 gg",
	},
}

var itRecommendations = []Recommendation{
	{
		Priority:    "Alta",
		Area:        "Sicurezza IT",
		Title:       "Identita e accessi",
		Description: "Abilitare MFA, revisione periodica degli accessi e principio del minimo privilegio.",
		Owner:       "IT Security",
		Horizon:     "30-60 gg",
	},
	{
		Priority:    "Alta",
		Area:        "Sicurezza IT",
		Title:       "Backup e recovery",
		Description: "Verificare backup offsite, test periodici di restore e RPO/RTO documentati.",
		Owner:       "IT Operations",
		Horizon:     "60 gg",
	},
	{
		Priority:    "Media",
		Area:        "Sicurezza IT",
		Title:       "Vulnerability management",
		Description: "Pianificare vulnerability assessment e patching con metriche di copertura e tempi di remediation.",
		Owner:       "IT Security",
		Horizon:     "90 gg",
	},
	{
		Priority:    "Media",
		Area:        "Sicurezza IT",
		Title:       "Logging e monitoraggio",
		Description: "Centralizzare log critici e definire regole di alerting per eventi anomali.",
		Owner:       "SOC / IT Security",
		Horizon:     "90 gg",
	},
}

var physicalRecommendations = []Recommendation{
	{
		Priority:    "Media",
		Area:        "Sicurezza Fisica",
		Title:       "Accessi ai locali",
		Description: "Rafforzare i controlli di accesso e i registri di ingresso nei locali critici.",
		Owner:       "Facility",
		Horizon:     "90 gg",
	},
	{
		Priority:    "Media",
		Area:        "Sicurezza Fisica",
		Title:       "Controllo visitatori",
		Description: "Formalizzare procedure di registrazione e accompagnamento dei visitatori.",
		Owner:       "Facility",
		Horizon:     "90 gg",
	},
	{
		Priority:    "Bassa",
		Area:        "Sicurezza Fisica",
		Title:       "Videosorveglianza e log",
		Description: "Verificare copertura e conservazione log, con procedure di revisione periodica.",
		Owner:       "Facility / Security",
		Horizon:     "120 gg",
	},
	{
		Priority:    "Bassa",
		Area:        "Sicurezza Fisica",
		Title:       "Protezione ambientale",
		Description: "Valutare sensori ambientali e piani di continuita per eventi fisici.",
		Owner:       "Facility",
		Horizon:     "120 gg",
	},
}

var overallRecommendations = map[string]Recommendation{
	"low": {
		Priority:    "Alta",
		Area:        "Generale",
		Title:       "Piano di miglioramento",
		Description: "Definire un piano di remediation con owner, tempi e priorita condivise.",
		Owner:       "Compliance",
		Horizon:     "30-60 gg",
	},
	"mid": {
		Priority:    "Media",
		Area:        "Generale",
		Title:       "Rafforzamento controlli",
		Description: "Consolidare i controlli esistenti e misurare periodicamente l efficacia.",
		Owner:       "Compliance",
		Horizon:     "90 gg",
	},
	"high": {
		Priority:    "Bassa",
		Area:        "Generale",
		Title:       "Monitoraggio continuo",
		Description: "Mantenere le pratiche in essere con verifiche periodiche e audit annuali.",
		Owner:       "Security",
		Horizon:     "120 gg",
	},
}

// BuildRecommendations assembles the remediation list for a vendor score
// report. The output order is fixed: management, IT, physical blocks for
// every area below 60, then exactly one overall record chosen by the
// GENERALE score band (below 60, below 85, 85 and above).
func BuildRecommendations(results map[Area]float64) []Recommendation {
	var recs []Recommendation

	if results[AreaManagement] < areaThreshold {
		recs = append(recs, managementRecommendations...)
	}
	if results[AreaIT] < areaThreshold {
		recs = append(recs, itRecommendations...)
	}
	if results[AreaPhysical] < areaThreshold {
		recs = append(recs, physicalRecommendations...)
	}

	overall := results[AreaOverall]
	switch {
	case overall < 60:
		recs = append(recs, overallRecommendations["low"])
	case overall < 85:
		recs = append(recs, overallRecommendations["mid"])
	default:
		recs = append(recs, overallRecommendations["high"])
	}

	return recs
}
