package httpapi

import (
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/diary/internal/common"
	"github.com/dmitrijs2005/diary/internal/server/services"
	"github.com/gorilla/mux"
)

// Handler builds the router for the JSON API.
func (s *HTTPServer) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.loggingMiddleware)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/ping", s.ping).Methods(http.MethodGet)
	api.HandleFunc("/auth/register", s.register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.login).Methods(http.MethodPost)

	protected := func(h http.HandlerFunc) http.Handler { return s.accessTokenMiddleware(h) }
	api.Handle("/posts", protected(s.listEntries)).Methods(http.MethodGet)
	api.Handle("/posts", protected(s.createEntry)).Methods(http.MethodPost)
	api.Handle("/posts/export", protected(s.exportEntries)).Methods(http.MethodPost)
	api.Handle("/posts/{id:[0-9]+}", protected(s.getEntry)).Methods(http.MethodGet)
	api.Handle("/posts/{id:[0-9]+}", protected(s.updateEntry)).Methods(http.MethodPut)
	api.Handle("/posts/{id:[0-9]+}", protected(s.deleteEntry)).Methods(http.MethodDelete)

	return r
}

func (s *HTTPServer) ping(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *HTTPServer) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerRequest
	if !s.decode(w, r, &req) {
		return
	}
	if fe := req.validate(); len(fe) > 0 {
		s.writeJSON(ctx, w, http.StatusBadRequest, validationResponse{Errors: fe})
		return
	}

	bundle, err := s.users.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		s.writeServiceError(ctx, w, err)
		return
	}

	s.logger.Info(ctx, "Registered", "username", bundle.Username)
	s.writeJSON(ctx, w, http.StatusOK, bundle)
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if !s.decode(w, r, &req) {
		return
	}
	if fe := req.validate(); len(fe) > 0 {
		s.writeJSON(ctx, w, http.StatusBadRequest, validationResponse{Errors: fe})
		return
	}

	bundle, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.writeServiceError(ctx, w, err)
		return
	}
	s.writeJSON(ctx, w, http.StatusOK, bundle)
}

// queryInt returns the named query value, or def when it is absent or not a number.
func queryInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return def
	}
	return v
}

func (s *HTTPServer) listEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := s.owner(w, r)
	if !ok {
		return
	}

	page := queryInt(r, "page", services.DefaultPage)
	pageSize := queryInt(r, "pageSize", services.DefaultPageSize)

	result, err := s.entries.List(ctx, userID, page, pageSize)
	if err != nil {
		s.writeServiceError(ctx, w, err)
		return
	}
	s.writeJSON(ctx, w, http.StatusOK, result)
}

// entryID parses the {id} path variable. Ids out of int64 range cannot
// exist, so they are reported the same way as a missing entry.
func (s *HTTPServer) entryID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		s.writeServiceError(r.Context(), w, common.ErrEntryNotFound)
		return 0, false
	}
	return id, true
}

func (s *HTTPServer) getEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := s.owner(w, r)
	if !ok {
		return
	}
	id, ok := s.entryID(w, r)
	if !ok {
		return
	}

	entry, err := s.entries.Get(ctx, id, userID)
	if err != nil {
		s.writeServiceError(ctx, w, err)
		return
	}
	s.writeJSON(ctx, w, http.StatusOK, entry)
}

func (s *HTTPServer) createEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := s.owner(w, r)
	if !ok {
		return
	}

	var req entryRequest
	if !s.decode(w, r, &req) {
		return
	}
	if fe := req.validate(); len(fe) > 0 {
		s.writeJSON(ctx, w, http.StatusBadRequest, validationResponse{Errors: fe})
		return
	}

	entry, err := s.entries.Create(ctx, userID, req.Title, req.Content, req.Mood)
	if err != nil {
		s.writeServiceError(ctx, w, err)
		return
	}

	w.Header().Set("Location", "/api/posts/"+strconv.FormatInt(entry.ID, 10))
	s.writeJSON(ctx, w, http.StatusCreated, entry)
}

func (s *HTTPServer) updateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := s.owner(w, r)
	if !ok {
		return
	}
	id, ok := s.entryID(w, r)
	if !ok {
		return
	}

	var req entryRequest
	if !s.decode(w, r, &req) {
		return
	}
	if fe := req.validate(); len(fe) > 0 {
		s.writeJSON(ctx, w, http.StatusBadRequest, validationResponse{Errors: fe})
		return
	}

	entry, err := s.entries.Update(ctx, id, userID, req.Title, req.Content, req.Mood)
	if err != nil {
		s.writeServiceError(ctx, w, err)
		return
	}
	s.writeJSON(ctx, w, http.StatusOK, entry)
}

func (s *HTTPServer) deleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := s.owner(w, r)
	if !ok {
		return
	}
	id, ok := s.entryID(w, r)
	if !ok {
		return
	}

	if err := s.entries.Delete(ctx, id, userID); err != nil {
		s.writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) exportEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := s.owner(w, r)
	if !ok {
		return
	}

	result, err := s.exports.Export(ctx, userID)
	if err != nil {
		s.writeServiceError(ctx, w, err)
		return
	}
	s.logger.Info(ctx, "Exported entries", "key", result.Key)
	s.writeJSON(ctx, w, http.StatusOK, result)
}
