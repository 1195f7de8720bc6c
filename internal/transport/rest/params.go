package rest

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
)

// pathUUID parses a chi URL parameter. Malformed ids are treated as unknown.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, domain.ErrNotFound
	}
	return id, nil
}

// queryParser collects every malformed query parameter before failing.
type queryParser struct {
	q    url.Values
	errs []domain.FieldError
}

func newQueryParser(r *http.Request) *queryParser {
	return &queryParser{q: r.URL.Query()}
}

func (p *queryParser) fail(name, msg string) {
	p.errs = append(p.errs, domain.FieldError{Field: name, Message: msg})
}

func (p *queryParser) String(name string) *string {
	if !p.q.Has(name) {
		return nil
	}
	v := p.q.Get(name)
	return &v
}

func (p *queryParser) Int(name string, def int) int {
	raw := p.q.Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(name, "must be an integer")
		return def
	}
	return n
}

func (p *queryParser) Int64(name string) *int64 {
	raw := p.q.Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.fail(name, "must be an integer")
		return nil
	}
	return &n
}

func (p *queryParser) UUID(name string) *uuid.UUID {
	raw := p.q.Get(name)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		p.fail(name, "must be a UUID")
		return nil
	}
	return &id
}

func (p *queryParser) Status(name string) *domain.DispatchStatus {
	raw := p.q.Get(name)
	if raw == "" {
		return nil
	}
	s := domain.DispatchStatus(raw)
	return &s
}

func (p *queryParser) Err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(p.errs)
}
