package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/service"
)

type RouterDeps struct {
	Env      string
	AuthSvc  *service.AuthService
	Auth     *AuthHandler
	Quotes   *QuoteHandler
	Bookings *BookingHandler
	Catalog  *CatalogHandler
	Packages *PackageHandler
	WS       *WSHandler
}

// NewRouter wires the public storefront API and the bearer-protected
// admin API.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP", "env": deps.Env})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/cities", deps.Catalog.ListLocations)
		api.GET("/cabs", deps.Catalog.ListCabs)
		api.GET("/quotes", deps.Quotes.List)
		api.POST("/fare/estimate", deps.Quotes.Estimate)
		api.POST("/bookings", deps.Bookings.Create)
		api.GET("/bookings/:id", deps.Bookings.Get)

		api.POST("/admin/login", deps.Auth.Login)

		admin := api.Group("/admin", AuthMiddleware(deps.AuthSvc))
		{
			admin.GET("/bookings", deps.Bookings.List)
			admin.PATCH("/bookings/:id/status", deps.Bookings.UpdateStatus)

			admin.POST("/locations", deps.Catalog.CreateLocation)
			admin.PUT("/locations/:id", deps.Catalog.UpdateLocation)
			admin.DELETE("/locations/:id", deps.Catalog.DeleteLocation)

			admin.POST("/cabs", deps.Catalog.CreateCab)
			admin.PUT("/cabs/:id", deps.Catalog.UpdateCab)
			admin.DELETE("/cabs/:id", deps.Catalog.DeleteCab)

			admin.GET("/oneway-packages", deps.Packages.ListOneWay)
			admin.POST("/oneway-packages", deps.Packages.CreateOneWay)
			admin.PUT("/oneway-packages/:id", deps.Packages.UpdateOneWay)
			admin.DELETE("/oneway-packages/:id", deps.Packages.DeleteOneWay)

			admin.GET("/local-packages", deps.Packages.ListLocal)
			admin.POST("/local-packages", deps.Packages.CreateLocal)
			admin.PUT("/local-packages/:id", deps.Packages.UpdateLocal)
			admin.DELETE("/local-packages/:id", deps.Packages.DeleteLocal)

			admin.GET("/roundtrip-rates", deps.Packages.ListRoundTripRates)
			admin.POST("/roundtrip-rates", deps.Packages.CreateRoundTripRate)
			admin.PUT("/roundtrip-rates/:id", deps.Packages.UpdateRoundTripRate)
			admin.DELETE("/roundtrip-rates/:id", deps.Packages.DeleteRoundTripRate)
		}

		// The websocket feed authenticates via query token inside the
		// handler rather than the header middleware.
		api.GET("/admin/feed", deps.WS.Feed)
	}

	return r
}
