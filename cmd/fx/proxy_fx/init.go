package proxy_fx

import (
	"go.uber.org/fx"

	"github.com/Aryan1591/TravelBuddy-Notification-Service/internal/services"
)

var Module = fx.Provide(providePostStatusClient, provideUserDirectoryClient)

func providePostStatusClient() services.PostStatusClient {
	return services.NewHTTPPostStatusClient()
}

func provideUserDirectoryClient() services.UserDirectoryClient {
	return services.NewHTTPUserDirectoryClient()
}
