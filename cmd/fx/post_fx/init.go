package post_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Aryan1591/TravelBuddy-Notification-Service/internal/repositories"
)

var Module = fx.Provide(providePostRepo)

func providePostRepo(db *gorm.DB) repositories.PostRepository {
	return repositories.NewPostRepository(db)
}
