package memory

import (
	"vetsoft/internal/domain/clients"
	"vetsoft/internal/domain/medicines"
	"vetsoft/internal/domain/pets"
	"vetsoft/internal/domain/products"
	"vetsoft/internal/domain/providers"
	"vetsoft/internal/domain/vets"
)

func NewClientRepo() clients.Repository { return NewTable[clients.Client]() }

func NewVetRepo() vets.Repository { return NewTable[vets.Vet]() }

func NewPetRepo() pets.Repository { return NewTable[pets.Pet]() }

func NewMedicineRepo() medicines.Repository { return NewTable[medicines.Medicine]() }

func NewProductRepo() products.Repository { return NewTable[products.Product]() }

func NewProviderRepo() providers.Repository { return NewTable[providers.Provider]() }
