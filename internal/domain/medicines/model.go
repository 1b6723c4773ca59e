package medicines

import "vetsoft/internal/domain/records"

type Medicine struct {
	records.Base

	Name        string
	Description string
	Dose        int // entre 1 y 10
}
