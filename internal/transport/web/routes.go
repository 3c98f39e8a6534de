package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/avstrong/resortrates/internal/catalog"
	"github.com/avstrong/resortrates/internal/pricing"
)

type quoteRequest struct {
	Resort   string              `json:"resort"`
	CheckIn  string              `json:"check_in"`
	Stays    []pricing.StayInput `json:"stays"`
	Adults   int                 `json:"adults"`
	Children int                 `json:"children"`
	Rooms    int                 `json:"rooms"`
}

type errorResponse struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields,omitempty"`
}

type seasonView struct {
	Start      string                   `json:"start"`
	End        string                   `json:"end"`
	RoomRates  map[string]catalog.Money `json:"room_rates"`
	ExtraAdult catalog.Money            `json:"extra_adult"`
	ExtraChild catalog.Money            `json:"extra_child"`
}

type resortView struct {
	Name             string        `json:"name"`
	Currency         string        `json:"currency"`
	RoomTypes        []string      `json:"room_types"`
	MinStay          int           `json:"min_stay"`
	AdultOnly        bool          `json:"adult_only"`
	GreenTax         catalog.Money `json:"green_tax"`
	ExtraNightCharge catalog.Money `json:"extra_night_charge"`
	Seasons          []seasonView  `json:"seasons"`
	Note             string        `json:"note,omitempty"`
}

func newResortView(r *catalog.Resort) resortView {
	seasons := make([]seasonView, 0, len(r.Seasons))
	for _, s := range r.Seasons {
		seasons = append(seasons, seasonView{
			Start:      s.Start.Format(catalog.DateLayout),
			End:        s.End.Format(catalog.DateLayout),
			RoomRates:  s.RoomRates,
			ExtraAdult: s.ExtraAdult,
			ExtraChild: s.ExtraChild,
		})
	}

	return resortView{
		Name:             r.Name,
		Currency:         r.Currency,
		RoomTypes:        r.RoomTypes,
		MinStay:          r.MinStay,
		AdultOnly:        r.AdultOnly,
		GreenTax:         r.GreenTax,
		ExtraNightCharge: r.ExtraNightCharge,
		Seasons:          seasons,
		Note:             r.Note,
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.l.LogErrorf("Could not encode response: %v", err.Error())
	}
}

func (s *Server) decodeQuoteRequest(w http.ResponseWriter, r *http.Request) (*pricing.Request, bool) {
	var body quoteRequest

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: http.StatusText(http.StatusBadRequest)})

		return nil, false
	}

	req := &pricing.Request{
		Resort: body.Resort,
		Stays:  body.Stays,
		Guests: pricing.Guests{Adults: body.Adults, Children: body.Children},
		Rooms:  body.Rooms,
	}

	if body.CheckIn != "" {
		checkIn, err := catalog.ParseDate(body.CheckIn)
		if err != nil {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:  "invalid input",
				Fields: map[string][]string{"check_in": {fmt.Sprintf("use %s", catalog.DateLayout)}},
			})

			return nil, false
		}

		req.CheckIn = checkIn
	}

	return req, true
}

func (s *Server) createQuoteHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeQuoteRequest(w, r)
	if !ok {
		return
	}

	out, err := s.engine.Quote(r.Context(), req)
	if inputErr := pricing.IsInputError(err); inputErr != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid input", Fields: inputErr.Fields()})

		return
	}

	if unknown := pricing.IsUnknownResortError(err); unknown != nil {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: unknown.Error()})

		return
	}

	if minStay := pricing.IsMinStayViolationError(err); minStay != nil {
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: minStay.Error()})

		return
	}

	if noSeason := pricing.IsNoSeasonError(err); noSeason != nil {
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: noSeason.Error()})

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not create a quote: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusCreated, out)
}

func (s *Server) listResortsHandler(w http.ResponseWriter, r *http.Request) {
	resorts, err := s.resorts.Resorts(r.Context())
	if err != nil {
		s.l.LogErrorf("Could not list resorts: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	views := make([]resortView, 0, len(resorts))
	for _, resort := range resorts {
		views = append(views, newResortView(resort))
	}

	s.writeJSON(w, http.StatusOK, views)
}

func (s *Server) getResortHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	resort, err := s.resorts.GetResort(r.Context(), name)
	if errors.Is(err, catalog.ErrResortNotFound) {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("unknown resort %q", name)})

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not get resort %q: %v", name, err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusOK, newResortView(resort))
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addRoutes(r *http.ServeMux) {
	r.Handle(
		"POST /api/quotes/v1",
		s.applyMiddlewares(
			http.HandlerFunc(s.createQuoteHandler),
			s.requestIDMiddleware(),
			s.loggerMiddleware("quotes.create"),
			s.recoverMiddleware(),
		),
	)
	r.Handle(
		"GET /api/resorts/v1",
		s.applyMiddlewares(http.HandlerFunc(s.listResortsHandler), s.loggerMiddleware("resorts.list"), s.recoverMiddleware()),
	)
	r.Handle(
		"GET /api/resorts/v1/{name}",
		s.applyMiddlewares(http.HandlerFunc(s.getResortHandler), s.loggerMiddleware("resorts.get"), s.recoverMiddleware()),
	)
	r.Handle(
		fmt.Sprintf("GET %s", s.conf.LivenessEndpoint),
		s.applyMiddlewares(http.HandlerFunc(s.livenessHandler), s.loggerMiddleware("liveness"), s.recoverMiddleware()),
	)
}
