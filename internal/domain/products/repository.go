package products

import "vetsoft/internal/domain/records"

type Repository = records.Repository[Product]
