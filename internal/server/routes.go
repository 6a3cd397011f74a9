package server

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	r := s.router

	r.Get("/providers", s.listProviders)
	r.Get("/menu", s.getMenu)
	r.Get("/folders", s.getFolders)
}
