package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Aryan1591/TravelBuddy-Notification-Service/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}
