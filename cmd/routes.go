package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"corretoraBack/internal/handlers"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders)
	sessionMiddleware := standardMiddleware.Append(app.loadSession)
	apiMiddleware := sessionMiddleware.Append(makeResponseJSON)

	mux := pat.New()

	mux.Get("/health", standardMiddleware.ThenFunc(handlers.Health))

	// Page
	mux.Get("/listings/new", sessionMiddleware.ThenFunc(app.pageHandler.OpenDialog))
	mux.Post("/listings/draft", sessionMiddleware.ThenFunc(app.pageHandler.SubmitDraft))

	// Session
	mux.Post("/session/end", sessionMiddleware.ThenFunc(app.sessionHandler.EndSession))
	mux.Get("/images/:id", sessionMiddleware.ThenFunc(app.sessionHandler.ServeImage))

	// API
	mux.Get("/api/properties", apiMiddleware.ThenFunc(app.apiHandler.GetProperties))
	mux.Get("/api/draft", apiMiddleware.ThenFunc(app.apiHandler.GetDraft))
	mux.Post("/api/draft/fields", apiMiddleware.ThenFunc(app.apiHandler.SetFields))
	mux.Post("/api/draft/features", apiMiddleware.ThenFunc(app.apiHandler.AddFeature))
	mux.Del("/api/draft/features/:index", apiMiddleware.ThenFunc(app.apiHandler.RemoveFeature))
	mux.Post("/api/draft/image", apiMiddleware.ThenFunc(app.apiHandler.AttachImage))
	mux.Post("/api/draft/commit", apiMiddleware.ThenFunc(app.apiHandler.Commit))
	mux.Post("/api/draft/reset", apiMiddleware.ThenFunc(app.apiHandler.ResetDraft))

	// pat treats "/" as a prefix, so it goes last.
	mux.Get("/", sessionMiddleware.ThenFunc(app.pageHandler.ShowPage))

	return mux
}
