package handlers

import (
	"os"

	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.Route("/v1", func(r chi.Router) {

		// public routes here
		r.Get("/health", h.HealthHandler)

		// Secure routes
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))
			r.Use(jwtauth.Authenticator)

			r.Get("/clubs/search", h.SearchClubsHandler)
			r.Get("/clubs/{clubID}/courses", h.ListClubCoursesHandler)
			r.Get("/courses/{courseID}", h.GetCourseHandler)
			r.Get("/courses/{courseID}/pars", h.GetCourseParsHandler)
			r.Get("/courses/{courseID}/tees", h.ListCourseTeesHandler)

			r.Get("/rounds", h.ListRoundsHandler)
			r.Post("/rounds", h.CreateRoundHandler)
			r.Get("/rounds/{roundID}", h.GetRoundHandler)
			r.Patch("/rounds/{roundID}/scores", h.UpdateScoreHandler)
			r.Delete("/rounds/{roundID}/participants", h.DeleteParticipantScoresHandler)

			r.Get("/friends", h.ListFriendsHandler)
			r.Get("/friends/requests", h.ListFriendRequestsHandler)
			r.Post("/friends/requests", h.SendFriendRequestHandler)
			r.Post("/friends/requests/{requestID}/accept", h.AcceptFriendRequestHandler)

			r.Get("/guests", h.ListGuestsHandler)
			r.Post("/guests", h.CreateGuestHandler)
			r.Delete("/guests/{guestID}", h.DeleteGuestHandler)

			r.Get("/profiles/search", h.SearchProfilesHandler)
		})
	})
}

func (h *Handler) InitAuth() {
	var jwtKey = os.Getenv("JWT_SECRET_KEY")
	h.tokenAuth = jwtauth.New("HS256", []byte(jwtKey), nil)
}
