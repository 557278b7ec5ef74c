package api

import (
	"github.com/botthef/personal-site-backend/content"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(service content.Service) *routeHandlers {
	return &routeHandlers{
		contentHandler: newContentHandler(service),
	}
}
