package iserver

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi"

	"github.com/cute-angelia/go-xrand/syntax/irandom"
	"github.com/cute-angelia/go-xrand/utils/http/apiV3"
	"github.com/cute-angelia/go-xrand/utils/ibininfo"
)

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	apiV3.NewApi(w, r, s.apiOpts...).Success(HealthResponse{Status: "ok", Build: ibininfo.Get()})
}

// GET /v1/int?min=&max=，闭区间
func (s *Server) intHandler(w http.ResponseWriter, r *http.Request) {
	a := apiV3.NewApi(w, r, s.apiOpts...)
	lo, err := apiV3.RequireQueryInt(r, "min")
	if err != nil {
		a.Error(err)
		return
	}
	hi, err := apiV3.RequireQueryInt(r, "max")
	if err != nil {
		a.Error(err)
		return
	}

	v, err := s.rand().Range(lo, hi)
	if err != nil {
		a.Error(toApiError(err))
		return
	}
	a.Success(IntResponse{Value: v})
}

func (s *Server) patternHandler(w http.ResponseWriter, r *http.Request) {
	a := apiV3.NewApi(w, r, s.apiOpts...)
	var req patternRequest
	if err := a.Decode(&req); err != nil {
		a.Error(err)
		return
	}
	if err := req.Validate(); err != nil {
		a.Error(toApiError(err))
		return
	}

	v, err := s.rand().Pattern(req.Size, req.Alphabets...)
	if err != nil {
		a.Error(toApiError(err))
		return
	}
	a.Success(PatternResponse{Value: v})
}

func (s *Server) uniqueHandler(w http.ResponseWriter, r *http.Request) {
	a := apiV3.NewApi(w, r, s.apiOpts...)
	var req uniqueRequest
	if err := a.Decode(&req); err != nil {
		a.Error(err)
		return
	}
	if err := req.Validate(); err != nil {
		a.Error(toApiError(err))
		return
	}

	exclude := req.Exclude
	if req.Namespace != "" {
		minted, err := s.reg.Exclusion(r.Context(), req.Namespace)
		if err != nil {
			a.Error(toApiError(err))
			return
		}
		exclude = append(minted, exclude...)
	}

	values, err := s.rand().UniquePatterns(req.Count, req.Size, req.Alphabets, exclude...)
	if err != nil {
		a.Error(toApiError(err))
		return
	}
	a.Success(ValuesResponse{Values: values})
}

func (s *Server) mintHandler(w http.ResponseWriter, r *http.Request) {
	a := apiV3.NewApi(w, r, s.apiOpts...)
	var req mintRequest
	if err := a.Decode(&req); err != nil {
		a.Error(err)
		return
	}
	if err := req.Validate(); err != nil {
		a.Error(toApiError(err))
		return
	}

	values, err := s.reg.Mint(r.Context(), chi.URLParam(r, "ns"), s.newSource(), req.Count, req.Size, req.Alphabets)
	if err != nil {
		a.Error(toApiError(err))
		return
	}
	a.Success(ValuesResponse{Values: values})
}

func (s *Server) countHandler(w http.ResponseWriter, r *http.Request) {
	a := apiV3.NewApi(w, r, s.apiOpts...)
	ns := chi.URLParam(r, "ns")
	n, err := s.reg.Count(r.Context(), ns)
	if err != nil {
		a.Error(toApiError(err))
		return
	}
	a.Success(CountResponse{Namespace: ns, Count: n})
}

func (s *Server) lettersHandler(w http.ResponseWriter, r *http.Request) {
	letters := irandom.Letters()
	out := make([]LetterResponse, 0, len(letters))
	for name, l := range letters {
		out = append(out, LetterResponse{Name: name, Alphabet: l.String()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	apiV3.NewApi(w, r, s.apiOpts...).Success(out)
}
