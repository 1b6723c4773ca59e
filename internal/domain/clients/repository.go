package clients

import "vetsoft/internal/domain/records"

type Repository = records.Repository[Client]
