package explorer

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fieldwork-labs/fieldwork/record"
	"github.com/fieldwork-labs/fieldwork/schema"
)

// resolveRequest is the payload for POST /api/resolve: an ad-hoc record of
// the given type, and the field to read from it.
type resolveRequest struct {
	Type       string         `json:"type"`
	Attributes map[string]any `json:"attributes"`
	Field      string         `json:"field"`
}

type resolveResponse struct {
	Type  string `json:"type"`
	Field string `json:"field"`
	Value any    `json:"value"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleListSchemas(w http.ResponseWriter, r *http.Request) {
	all := s.schemas.All()
	schemas := make([]*schema.ResourceSchema, 0, len(all))
	for _, name := range s.schemas.List() {
		schemas = append(schemas, all[name])
	}
	s.writeJSON(w, http.StatusOK, schema.DocumentFor(schemas...))
}

func (s *Server) handleGetSchema(w http.ResponseWriter, r *http.Request) {
	typeName := chi.URLParam(r, "type")

	sch, ok := s.schemas.Get(typeName)
	if !ok {
		err := &schema.SchemaNotFoundError{Type: typeName}
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	doc := schema.DocumentFor(sch)
	s.writeJSON(w, http.StatusOK, doc.Resources[0])
}

func (s *Server) handleListDerivations(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string][]string{
		"derivations": s.derivations.Names(),
	})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Type == "" || req.Field == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "type and field are required"})
		return
	}

	rec, err := s.resolver.New(req.Type, req.Attributes)
	if err != nil {
		var snf *schema.SchemaNotFoundError
		if errors.As(err, &snf) {
			s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	value, err := rec.Get(req.Field)
	if err != nil {
		var dnf *record.DerivationNotFoundError
		switch {
		case errors.As(err, &dnf), errors.Is(err, schema.ErrFieldNotFound):
			s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		default:
			s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		return
	}

	s.writeJSON(w, http.StatusOK, resolveResponse{
		Type:  req.Type,
		Field: req.Field,
		Value: value,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}
