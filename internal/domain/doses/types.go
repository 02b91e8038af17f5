package doses

type DoseType string

const (
	DoseTaken   DoseType = "TAKEN"
	DoseSkipped DoseType = "SKIPPED"
	DoseMissed  DoseType = "MISSED"
)

type Source string

const (
	SourceManual   Source = "manual"
	SourceRollover Source = "rollover"
)

type DoseStatus string

const (
	DoseStatusActive DoseStatus = "active"
	DoseStatusVoided DoseStatus = "voided"
)
