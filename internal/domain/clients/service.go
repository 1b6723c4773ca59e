package clients

import (
	"vetsoft/internal/domain/records"
	"vetsoft/internal/platform/logger"
)

type Service = records.Service[Client]

func NewService(repo Repository, log logger.Logger) *Service {
	return records.NewService(repo, Schema, log)
}
