package entity

import "time"

// PCB representa una tarjeta del maestro de PCBs.
type PCB struct {
	ID        string
	PartCode  string // código de parte único (identidad externa)
	Status    string // texto libre del maestro (ej. "Active", "EOL")
	CreatedAt time.Time
	UpdatedAt time.Time
}
