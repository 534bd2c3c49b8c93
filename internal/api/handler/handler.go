package handler

import (
	"civigo/backend/internal/catalog"
	"civigo/backend/internal/geo"
	"civigo/backend/internal/mapfeed"
	"civigo/backend/internal/notify"
	"civigo/backend/internal/prefs"
	"civigo/backend/internal/store"
)

// Handler carries the dependencies the HTTP layer acts on. All complaint
// state changes go through Store; Hub only hears about them afterwards.
type Handler struct {
	Store      *store.Store
	Hub        *mapfeed.ManagerService
	Prefs      prefs.Store
	Notifier   notify.Notifier
	Catalog    *catalog.Catalog
	Geo        geo.Provider
	AdminToken string
}

func NewHandler(s *store.Store, hub *mapfeed.ManagerService, p prefs.Store, n notify.Notifier, cat *catalog.Catalog, g geo.Provider, adminToken string) *Handler {
	return &Handler{
		Store:      s,
		Hub:        hub,
		Prefs:      p,
		Notifier:   n,
		Catalog:    cat,
		Geo:        g,
		AdminToken: adminToken,
	}
}
