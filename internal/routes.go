package internal

import (
	"net/http"

	"github.com/go-chi/cors"

	"dashd/internal/controllers"
	"dashd/internal/providers"
	"dashd/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, boardController *controllers.BoardController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	// Dashboards are served from arbitrary origins; the statistics
	// surface is read-only, so wildcard CORS with GET is safe.
	statsCORS := cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		MaxAge:         300,
	})

	routers.Group(func(r providers.RouterProviderInterface) {
		r.Get("/api/v1/statistics/types", apiController.GetTypes)
		r.Get("/api/v1/statistics/{type}/{date}", apiController.GetDocument)
		r.Get("/api/v1/statistics/{type}/{date}/latest", apiController.GetLatest)
	}, statsCORS)

	if conf.Board.Enabled {
		origin := conf.Board.AllowedOrigin
		if origin == "" {
			origin = "*"
		}

		// The board mutates, so its CORS policy is scoped to the one
		// configured frontend origin.
		boardCORS := cors.Handler(cors.Options{
			AllowedOrigins: []string{origin},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         300,
		})

		routers.Group(func(r providers.RouterProviderInterface) {
			r.Get("/api/v1/board/posts", boardController.ListPosts)
			r.Post("/api/v1/board/posts", boardController.CreatePost)
			r.Get("/api/v1/board/posts/{id}", boardController.GetPost)
			r.Put("/api/v1/board/posts/{id}", boardController.UpdatePost)
			r.Delete("/api/v1/board/posts/{id}", boardController.DeletePost)
		}, boardCORS)
	}

	return routers
}
