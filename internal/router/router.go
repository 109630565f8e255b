package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetMe(c *ginext.Context)
	ListCaravans(c *ginext.Context)
	ListMyCaravans(c *ginext.Context)
	ListLikedCaravans(c *ginext.Context)
	CreateCaravan(c *ginext.Context)
	GetCaravan(c *ginext.Context)
	DeleteCaravan(c *ginext.Context)
	ToggleLike(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	ListMyReservations(c *ginext.Context)
	ConfirmReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
}

func InitRouter(mode string, h Handler, authMW ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		// Users
		api.GET("/users", h.ListUsers)

		// Caravans
		api.GET("/caravans", h.ListCaravans)
		api.GET("/caravans/:id", h.GetCaravan)

		protected := api.Group("", authMW)
		{
			protected.GET("/users/me", h.GetMe)
			protected.GET("/users/me/caravans", h.ListMyCaravans)
			protected.GET("/users/me/likes", h.ListLikedCaravans)

			protected.POST("/caravans", h.CreateCaravan)
			protected.DELETE("/caravans/:id", h.DeleteCaravan)
			protected.POST("/caravans/:id/like", h.ToggleLike)

			// Reservations
			protected.POST("/reservations", h.CreateReservation)
			protected.GET("/reservations", h.ListMyReservations)
			protected.POST("/reservations/:id/confirm", h.ConfirmReservation)
			protected.POST("/reservations/:id/cancel", h.CancelReservation)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
