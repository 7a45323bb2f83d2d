package rest

import "net/http"

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Activity  *ActivityHandler
	Dashboard *DashboardHandler
	Inventory *InventoryHandler
	Drive     *DriveHandler
	Backup    *BackupHandler
	Shopping  *ShoppingHandler
}

// Guards wrap route groups. Protect is applied to every route that needs
// a user; Throttle additionally wraps the backup routes.
type Guards struct {
	Protect  func(http.Handler) http.Handler
	Throttle func(http.Handler) http.Handler
}

// NewRouter registers every REST route on mux. Probes and the OAuth
// callback are public.
func NewRouter(mux *http.ServeMux, h Handlers, g Guards) {
	protect := func(f http.HandlerFunc) http.Handler { return g.Protect(f) }
	throttled := func(f http.HandlerFunc) http.Handler { return g.Protect(g.Throttle(f)) }

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("GET /activity/recent", protect(h.Activity.Recent))
	mux.Handle("GET /activity/summary", protect(h.Activity.Summary))
	mux.Handle("GET /activity/calendar", protect(h.Activity.Calendar))
	mux.Handle("GET /activity/export", protect(h.Activity.Export))

	mux.Handle("GET /dashboard/stats", protect(h.Dashboard.Stats))
	mux.Handle("GET /dashboard/recent-projects", protect(h.Dashboard.RecentProjects))
	mux.Handle("GET /dashboard/yarn-usage", protect(h.Dashboard.YarnUsage))
	mux.Handle("GET /dashboard/upcoming-deadlines", protect(h.Dashboard.UpcomingDeadlines))
	mux.Handle("GET /dashboard/completion-rate", protect(h.Dashboard.CompletionRate))

	mux.Handle("GET /yarn", protect(h.Inventory.ListYarn))
	mux.Handle("POST /yarn", protect(h.Inventory.CreateYarn))
	mux.Handle("GET /yarn/{id}", protect(h.Inventory.GetYarn))
	mux.Handle("PUT /yarn/{id}", protect(h.Inventory.UpdateYarn))
	mux.Handle("DELETE /yarn/{id}", protect(h.Inventory.DeleteYarn))

	mux.Handle("GET /patterns", protect(h.Inventory.ListPatterns))
	mux.Handle("POST /patterns", protect(h.Inventory.CreatePattern))
	mux.Handle("GET /patterns/{id}", protect(h.Inventory.GetPattern))
	mux.Handle("PUT /patterns/{id}", protect(h.Inventory.UpdatePattern))
	mux.Handle("DELETE /patterns/{id}", protect(h.Inventory.DeletePattern))

	mux.Handle("GET /projects", protect(h.Inventory.ListProjects))
	mux.Handle("POST /projects", protect(h.Inventory.CreateProject))
	mux.Handle("GET /projects/{id}", protect(h.Inventory.GetProject))
	mux.Handle("PUT /projects/{id}", protect(h.Inventory.UpdateProject))
	mux.Handle("DELETE /projects/{id}", protect(h.Inventory.DeleteProject))
	mux.Handle("PATCH /projects/{id}/status", protect(h.Inventory.UpdateProjectStatus))
	mux.Handle("GET /projects/{id}/progress", protect(h.Inventory.ListProgress))
	mux.Handle("POST /projects/{id}/progress", protect(h.Inventory.AddProgress))

	mux.Handle("POST /drive/connect", protect(h.Drive.Connect))
	mux.HandleFunc("GET /drive/callback", h.Drive.Callback)
	mux.Handle("DELETE /drive/disconnect", protect(h.Drive.Disconnect))
	mux.Handle("GET /drive/status", protect(h.Drive.Status))
	mux.Handle("POST /drive/upload", protect(h.Drive.Upload))
	mux.Handle("GET /drive/download/{fileId}", protect(h.Drive.Download))
	mux.Handle("DELETE /drive/delete/{fileId}", protect(h.Drive.Delete))
	mux.Handle("POST /drive/folders", protect(h.Drive.CreateFolder))
	mux.Handle("GET /drive/folders", protect(h.Drive.ListFolders))
	mux.Handle("GET /drive/sync-log", protect(h.Drive.SyncLog))

	mux.Handle("POST /drive/backup/full", throttled(h.Backup.Full))
	mux.Handle("POST /drive/backup/patterns", throttled(h.Backup.Patterns))
	mux.Handle("GET /drive/backup/snapshot", throttled(h.Backup.Snapshot))
	mux.Handle("GET /drive/backups", protect(h.Backup.List))
	mux.Handle("DELETE /drive/backups/cleanup", throttled(h.Backup.Cleanup))

	mux.Handle("GET /shopping-lists", protect(h.Shopping.List))
	mux.Handle("POST /shopping-lists", protect(h.Shopping.Create))
	mux.Handle("GET /shopping-lists/active", protect(h.Shopping.Active))
	mux.Handle("GET /shopping-lists/{id}", protect(h.Shopping.Get))
	mux.Handle("PUT /shopping-lists/{id}", protect(h.Shopping.Update))
	mux.Handle("DELETE /shopping-lists/{id}", protect(h.Shopping.Delete))
	mux.Handle("POST /shopping-lists/{id}/items", protect(h.Shopping.AddItem))
	mux.Handle("PUT /shopping-lists/{id}/items/{itemId}", protect(h.Shopping.UpdateItem))
	mux.Handle("DELETE /shopping-lists/{id}/items/{itemId}", protect(h.Shopping.RemoveItem))
	mux.Handle("POST /shopping-lists/{id}/items/{itemId}/purchase", protect(h.Shopping.Purchase))
	mux.Handle("GET /shopping-lists/{id}/export", protect(h.Shopping.Export))
}
