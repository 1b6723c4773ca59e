package vets

import "vetsoft/internal/domain/records"

type Repository = records.Repository[Vet]
