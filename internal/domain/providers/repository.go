package providers

import "vetsoft/internal/domain/records"

type Repository = records.Repository[Provider]
