package service

import (
	"github.com/MKhiriev/asimov-account/internal/adapter"
	"github.com/MKhiriev/asimov-account/internal/crypto"
	"github.com/MKhiriev/asimov-account/internal/logger"
	"github.com/MKhiriev/asimov-account/internal/store"
)

type Services struct {
	Accounts AccountService
}

func NewServices(storages *store.Storages, networkAdapter adapter.NetworkAdapter, keyService crypto.KeyService, report Reporter, logger *logger.Logger) *Services {
	return &Services{
		Accounts: NewAccountService(storages, networkAdapter, keyService, report, logger),
	}
}
