package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Feghellere/memoreasy/internal/aiquiz"
	"github.com/Feghellere/memoreasy/internal/auth"
	"github.com/Feghellere/memoreasy/internal/middlewares"
	"github.com/Feghellere/memoreasy/internal/quiz"
)

type RouterConfig struct {
	AIQuizHandler *aiquiz.Handler
	QuizHandler   *quiz.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/gerar-quiz", func(r chi.Router) {
		r.Mount("/", aiquiz.Routes(cfg.AIQuizHandler))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
	})
	return r
}
