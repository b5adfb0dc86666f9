package tan

// The types below mirror the upstream JSON field for field. The client
// performs no renaming, filtering or unit conversion; unknown upstream
// fields are ignored on decode so schema additions do not break callers.

// Stop is one entry of an arrets.json response. Distance is only present
// for proximity queries and is a display string such as "112 m".
type Stop struct {
	CodeLieu string     `json:"codeLieu"`
	Libelle  string     `json:"libelle"`
	Distance string     `json:"distance,omitempty"`
	Ligne    []StopLine `json:"ligne"`
}

// StopLine is a line serving a stop.
type StopLine struct {
	NumLigne string `json:"numLigne"`
}

// WaitTime is one predicted passage from tempsattente.json or
// tempsattentelieu.json. Temps is the upstream display string ("5mn",
// "Proche", ...); TempsReel and DernierDepart are upstream string booleans.
type WaitTime struct {
	Sens          int          `json:"sens"`
	Terminus      string       `json:"terminus"`
	Infotrafic    bool         `json:"infotrafic"`
	Temps         string       `json:"temps"`
	DernierDepart string       `json:"dernierDepart"`
	TempsReel     string       `json:"tempsReel"`
	Ligne         WaitTimeLine `json:"ligne"`
	Arret         WaitTimeStop `json:"arret"`
}

// WaitTimeLine is the line of a predicted passage.
type WaitTimeLine struct {
	NumLigne  string `json:"numLigne"`
	TypeLigne int    `json:"typeLigne"`
}

// WaitTimeStop is the stop of a predicted passage.
type WaitTimeStop struct {
	CodeArret string `json:"codeArret"`
}

// StopSchedule is a horairesarret.json response: the timetable document
// for one stop, line and direction. A date outside the service horizon
// yields a document with empty Horaires, not an error.
type StopSchedule struct {
	Ligne             ScheduleLine    `json:"ligne"`
	Arret             ScheduleStop    `json:"arret"`
	CodeCouleur       string          `json:"codeCouleur"`
	PlageDeService    string          `json:"plageDeService"`
	ProchainsHoraires []TimetableHour `json:"prochainsHoraires"`
	Horaires          []TimetableHour `json:"horaires"`
	Notes             []ScheduleNote  `json:"notes"`
}

// ScheduleLine describes the line of a timetable, including the terminus
// labels of both directions.
type ScheduleLine struct {
	NumLigne       string `json:"numLigne"`
	DirectionSens1 string `json:"directionSens1"`
	DirectionSens2 string `json:"directionSens2"`
}

// ScheduleStop describes the stop of a timetable.
type ScheduleStop struct {
	CodeArret string `json:"codeArret"`
	Libelle   string `json:"libelle"`
}

// TimetableHour groups the scheduled passages of one hour, minutes only
// ("02", "32"). Passage entries may carry a note suffix.
type TimetableHour struct {
	Heure    string   `json:"heure"`
	Passages []string `json:"passages"`
}

// ScheduleNote is a footnote referenced from timetable passages.
type ScheduleNote struct {
	Code    int    `json:"code"`
	Libelle string `json:"libelle"`
}
