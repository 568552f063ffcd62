package main

import (
	"log"

	"corretoraBack/internal/config"
	"corretoraBack/internal/handlers"
	"corretoraBack/internal/services"
	"corretoraBack/internal/view"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	cfg      config.Config

	sessions        *services.SessionService
	propertyService *services.PropertyService

	pageHandler    *handlers.ListingPageHandler
	apiHandler     *handlers.PropertyAPIHandler
	sessionHandler *handlers.SessionHandler
}

func initializeApp(cfg config.Config, errorLog, infoLog *log.Logger) (*application, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}

	// Services
	sessions := services.NewSessionService(cfg.Session.TTL)
	propertyService := services.NewPropertyService(
		cfg.Listing.AllowZeroPrice,
		cfg.Images.DefaultURL,
		cfg.Images.MaxUploadBytes,
	)

	// Handlers
	pageHandler := &handlers.ListingPageHandler{
		Service:  propertyService,
		Renderer: renderer,
		Site:     cfg.Site,
	}
	apiHandler := &handlers.PropertyAPIHandler{Service: propertyService}
	sessionHandler := &handlers.SessionHandler{
		Sessions:   sessions,
		CookieName: cfg.Session.CookieName,
	}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		cfg:             cfg,
		sessions:        sessions,
		propertyService: propertyService,
		pageHandler:     pageHandler,
		apiHandler:      apiHandler,
		sessionHandler:  sessionHandler,
	}, nil
}
