package pets

import "vetsoft/internal/domain/records"

type Repository = records.Repository[Pet]
