package entities

import "time"

// Agency representa uma imobiliária; referenciada por User.AgencyID
type Agency struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Company representa o grupo empresarial dono de uma ou mais imobiliárias
type Company struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
