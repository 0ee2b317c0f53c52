package dashboard

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PendemixAI/vax-tracker/internal/charts"
	"github.com/PendemixAI/vax-tracker/internal/dataset"
	"github.com/PendemixAI/vax-tracker/internal/export"
	"github.com/PendemixAI/vax-tracker/internal/geo"
	"github.com/PendemixAI/vax-tracker/internal/logging"
	"github.com/PendemixAI/vax-tracker/internal/metrics"
	"github.com/PendemixAI/vax-tracker/internal/session"
	"github.com/PendemixAI/vax-tracker/internal/utils"
	"github.com/PendemixAI/vax-tracker/internal/view"
	"github.com/go-chi/chi/v5"
)

// FallbackChart is where the map handler points when the choropleth fails.
const FallbackChart = "/dashboard/charts/scatter.png"

// NoChartData answers chart kinds that are not about the selected country.
const NoChartData = "No data to chart"

// load returns the caller's session and its dataset.
func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*session.Session, *dataset.Table, bool) {
	s, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Session not found", http.StatusInternalServerError)
		return nil, nil, false
	}

	start := time.Now()
	table, err := h.sessions.Dataset(r.Context(), s)
	if err != nil {
		logging.LogError(h.log, "load dataset", err)
		http.Error(w, "Failed to load dataset", http.StatusInternalServerError)
		return nil, nil, false
	}
	addServerTiming(w, "dataset", time.Since(start))
	return s, table, true
}

// state parses the view state from the query on top of the session's last
// view.
func (h *Handler) state(w http.ResponseWriter, r *http.Request, s *session.Session, table *dataset.Table) (view.ViewState, bool) {
	st, err := view.Parse(r.URL.Query(), s.LastView.State(), table, h.regions)
	if err != nil {
		if isBadRequest(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		} else {
			http.Error(w, "Invalid view state", http.StatusInternalServerError)
		}
		return view.ViewState{}, false
	}
	return st, true
}

func (h *Handler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	s, table, ok := h.load(w, r)
	if !ok {
		return
	}
	st, ok := h.state(w, r, s, table)
	if !ok {
		return
	}

	d, err := view.Render(table, h.regions, st)
	if err != nil {
		if isBadRequest(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logging.LogError(h.log, "render dashboard", err)
		http.Error(w, "Failed to render dashboard", http.StatusInternalServerError)
		return
	}

	if err := h.sessions.SaveView(r.Context(), s, st); err != nil {
		logging.LogError(h.log, "save view", err)
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Handler) CountriesHandler(w http.ResponseWriter, r *http.Request) {
	_, table, ok := h.load(w, r)
	if !ok {
		return
	}
	countries := table.Countries()
	writeJSON(w, http.StatusOK, CountriesResponse{Total: len(countries), Countries: countries})
}

func (h *Handler) RegionsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RegionsResponse{Options: h.regions.Options(), Regions: h.regions.All()})
}

func (h *Handler) CountryHandler(w http.ResponseWriter, r *http.Request) {
	s, table, ok := h.load(w, r)
	if !ok {
		return
	}
	st, ok := h.state(w, r, s, table)
	if !ok {
		return
	}

	country := chi.URLParam(r, "country")
	if unescaped, err := url.PathUnescape(country); err == nil {
		country = unescaped
	}
	country = strings.ToUpper(strings.TrimSpace(country))

	scope, err := view.Scope(table, h.regions, st.Region)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	summary, found := scope.CountrySummary(country)
	if !found {
		http.Error(w, view.NoDataMessage(country), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, CountryResponse{
		Country: country,
		Summary: summary,
		Records: scope.Country(country),
	})
}

func (h *Handler) ChartHandler(w http.ResponseWriter, r *http.Request) {
	s, table, ok := h.load(w, r)
	if !ok {
		return
	}
	st, ok := h.state(w, r, s, table)
	if !ok {
		return
	}

	kind := chi.URLParam(r, "kind")
	format, err := charts.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	scope, err := view.Scope(table, h.regions, st.Region)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var c charts.Renderable
	switch kind {
	case "totals":
		c, err = charts.CountryTotals(st.Country, scope.Country(st.Country))
	case "daily":
		c, err = charts.DailyArea(st.Country, scope.Country(st.Country))
	case "top-total":
		c, err = charts.TopBars(table.TopN(st.TopN, dataset.ByTotal), dataset.ByTotal)
	case "top-rate":
		c, err = charts.TopBars(table.TopN(st.TopN, dataset.ByRate), dataset.ByRate)
	case "top":
		by, perr := dataset.ParseMetric(r.URL.Query().Get("metric"))
		if perr != nil {
			http.Error(w, perr.Error(), http.StatusBadRequest)
			return
		}
		c, err = charts.TopBars(table.TopN(st.TopN, by), by)
	case "compare":
		c, err = charts.Comparison(table, st.Compare)
	case "scatter":
		c, err = charts.RateScatter(table.Latest())
	default:
		http.Error(w, "Unknown chart: "+kind, http.StatusNotFound)
		return
	}
	if errors.Is(err, charts.ErrNoData) {
		metrics.ObserveChart(kind, err)
		msg := NoChartData
		if kind == "totals" || kind == "daily" {
			msg = view.NoDataMessage(st.Country)
		}
		http.Error(w, msg, http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	if err == nil {
		err = charts.Render(&buf, c, format)
	}
	metrics.ObserveChart(kind, err)
	if err != nil {
		logging.LogError(h.log, "render chart "+kind, err)
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Write(buf.Bytes())
}

func (h *Handler) MapHandler(w http.ResponseWriter, r *http.Request) {
	_, table, ok := h.load(w, r)
	if !ok {
		return
	}

	fig, err := geo.Choropleth(table.Latest(), h.locations)
	if err != nil {
		logging.LogFallback(h.log, err)
		metrics.ObserveMapFallback()
		w.Header().Set("X-Map-Fallback", "true")
		writeJSON(w, http.StatusOK, MapResponse{
			Message:  "Map error: " + err.Error(),
			Fallback: true,
			ChartURL: FallbackChart,
		})
		return
	}

	writeJSON(w, http.StatusOK, MapResponse{
		Figure:  &fig,
		Message: fmt.Sprintf("World map showing %d countries", len(fig.Points)),
	})
}

func (h *Handler) DownloadHandler(w http.ResponseWriter, r *http.Request) {
	s, table, ok := h.load(w, r)
	if !ok {
		return
	}
	st, ok := h.state(w, r, s, table)
	if !ok {
		return
	}

	scope, err := view.Scope(table, h.regions, st.Region)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rows, err := export.Select(table, scope, st.Download, st.Country)
	if err != nil {
		if isBadRequest(err) || errors.Is(err, export.ErrNoCountry) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to select rows", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rows); err != nil {
		logging.LogError(h.log, "write csv", err)
		http.Error(w, "Failed to write CSV", http.StatusInternalServerError)
		return
	}

	filename := export.FileName(st.Download, st.Country)
	metrics.ObserveExport(string(st.Download))
	logging.LogExport(h.log, string(st.Download), filename, len(rows))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(buf.Bytes())
}
