package routes

import (
	"assetconsole/handler"
	"assetconsole/models"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(h *handler.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/test", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("connection established..."))
	})

	authenticated := h.AuthMiddleware.JWTAuthMiddleware()
	adminOnly := h.AuthMiddleware.RequireRole(models.AdminRole)

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/login", h.Login)
			ar.Post("/register", h.Register)
			ar.With(authenticated).Get("/me", h.Me)
		})

		api.Route("/assets", func(ar chi.Router) {
			ar.Get("/images/{name}", h.GetImage)

			ar.Group(func(protected chi.Router) {
				protected.Use(authenticated)
				protected.Get("/", h.GetAssets)
				protected.Get("/{id}", h.GetAsset)

				protected.Group(func(admin chi.Router) {
					admin.Use(adminOnly)
					admin.Post("/", h.CreateAsset)
					admin.Put("/{id}", h.UpdateAsset)
					admin.Patch("/{id}/status", h.UpdateAssetStatus)
					admin.Delete("/{id}", h.DeleteAsset)
				})
			})
		})

		api.Route("/asset-requests", func(rr chi.Router) {
			rr.Use(authenticated)
			rr.Get("/self", h.GetMyAssetRequests)
			rr.Post("/", h.CreateAssetRequest)

			rr.Group(func(admin chi.Router) {
				admin.Use(adminOnly)
				admin.Get("/", h.GetAssetRequests)
				admin.Put("/{id}", h.UpdateAssetRequest)
			})
		})

		api.Route("/users", func(ur chi.Router) {
			ur.Use(authenticated)
			ur.With(adminOnly).Get("/", h.GetUsers)
			ur.Get("/{id}", h.GetUser)
			ur.Put("/{id}", h.UpdateUser)
			ur.Post("/{id}/profile-image", h.UploadProfileImage)
			ur.Delete("/{id}/profile-image", h.DeleteProfileImage)
		})

		api.Route("/categories", func(cr chi.Router) {
			cr.Use(authenticated)
			cr.Get("/", h.GetCategories)
			cr.Get("/{id}", h.GetCategory)

			cr.Group(func(admin chi.Router) {
				admin.Use(adminOnly)
				admin.Get("/all", h.GetAllCategories)
				admin.Post("/", h.CreateCategory)
				admin.Put("/{id}", h.UpdateCategory)
				admin.Delete("/{id}", h.DeleteCategory)
				admin.Patch("/{id}/status", h.ToggleCategoryStatus)
			})
		})
	})

	return r
}
