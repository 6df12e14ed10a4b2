package readings

type Source string

const (
	SourceRouteTech Source = "route_tech"
	SourceSensor    Source = "sensor"
	SourceImport    Source = "import"
)

type Status string

const (
	StatusActive Status = "active"
	StatusVoided Status = "voided"
)
