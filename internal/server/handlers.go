package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/seanodell/vscode-terminal-menu/internal/provider"
	"github.com/seanodell/vscode-terminal-menu/pkg/types"
)

// ProviderInfo describes a registered provider.
type ProviderInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Files       []string `json:"files"`
	Enabled     bool     `json:"enabled"`
}

// MenuResponse is the discovery result for one folder.
type MenuResponse struct {
	types.FolderMenu
	Diagnostics []DiagnosticInfo `json:"diagnostics,omitempty"`
}

// DiagnosticInfo reports a provider that failed.
type DiagnosticInfo struct {
	ProviderID string `json:"providerID"`
	Message    string `json:"message"`
}

func (s *Server) listProviders(w http.ResponseWriter, r *http.Request) {
	enabled := make(map[string]bool)
	for _, p := range s.registry.Enabled(s.enabledFor(r)) {
		enabled[p.ID()] = true
	}

	infos := []ProviderInfo{}
	for _, p := range s.registry.List() {
		infos = append(infos, ProviderInfo{
			ID:          p.ID(),
			Name:        p.Name(),
			Description: p.Description(),
			Files:       p.Files(),
			Enabled:     enabled[p.ID()],
		})
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) getMenu(w http.ResponseWriter, r *http.Request) {
	folder := r.URL.Query().Get("folder")
	if folder == "" {
		folder = s.config.Directory
	} else if !filepath.IsAbs(folder) {
		folder = filepath.Join(s.config.Directory, folder)
	}

	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		writeError(w, http.StatusNotFound, ErrCodeNotFound, "folder not found: "+folder)
		return
	}

	d := s.registry.Discover(r.Context(), folder, s.enabledFor(r))
	writeJSON(w, http.StatusOK, toMenuResponse(d))
}

func (s *Server) getFolders(w http.ResponseWriter, r *http.Request) {
	folders := append([]string{s.config.Directory}, s.config.Folders...)

	results := s.registry.DiscoverFolders(r.Context(), folders, s.enabledFor(r))
	out := make([]MenuResponse, len(results))
	for i, d := range results {
		out[i] = toMenuResponse(d)
	}
	writeJSON(w, http.StatusOK, out)
}

// enabledFor returns the enabled set from ?enabled=a,b or the server default.
func (s *Server) enabledFor(r *http.Request) []string {
	q, ok := r.URL.Query()["enabled"]
	if !ok {
		return s.config.Enabled
	}
	var ids []string
	for _, v := range q {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func toMenuResponse(d *provider.Discovery) MenuResponse {
	resp := MenuResponse{FolderMenu: types.FolderMenu{Folder: d.Folder, Items: d.Items}}
	for _, diag := range d.Diagnostics {
		resp.Diagnostics = append(resp.Diagnostics, DiagnosticInfo{
			ProviderID: diag.ProviderID,
			Message:    diag.Err.Error(),
		})
	}
	return resp
}
