package medicines

import "vetsoft/internal/domain/records"

type Repository = records.Repository[Medicine]
