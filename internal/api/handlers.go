/**
 * @description
 * This file contains the HTTP handlers for the deposit-service's web UI.
 * Handlers parse the incoming order form, call the deposit service, and
 * render the order page with the reconciliation result. They act as the
 * bridge between the web layer and the business logic layer.
 *
 * @dependencies
 * - embed, html/template, log, net/http: Standard Go libraries.
 * - internal/app, internal/domain: For service logic and models.
 */

package api

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/dave-evans-pawapay/deposit-service/internal/app"
	"github.com/dave-evans-pawapay/deposit-service/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var orderTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// defaultCountry preselects the first market in the order form.
const defaultCountry = "BEN"

// DepositHandlers holds the application service that handlers will use.
type DepositHandlers struct {
	service *app.Service
}

// NewDepositHandlers creates the handler set for the deposit UI.
func NewDepositHandlers(service *app.Service) *DepositHandlers {
	return &DepositHandlers{service: service}
}

// orderView is the data handed to the order template. Result is nil when
// rendering the empty form.
type orderView struct {
	Countries []domain.CountryOption
	Country   string
	Result    *domain.DepositResult
}

// DepositFormHandler renders the empty order form.
func (h *DepositHandlers) DepositFormHandler(w http.ResponseWriter, r *http.Request) {
	h.render(w, orderView{
		Countries: domain.Countries(),
		Country:   defaultCountry,
	})
}

// CreateDepositHandler reads the order form, runs the deposit flow to its
// terminal outcome, and re-renders the page with the result. The request
// blocks while the reconciliation loop runs; closing the connection cancels
// the run through the request context.
func (h *DepositHandlers) CreateDepositHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("level=warn component=api handler=create_deposit msg=\"form parse failed\" err=%v", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	country := r.FormValue("country")
	input := domain.DepositInput{
		Msisdn:        r.FormValue("msisdn"),
		Amount:        r.FormValue("amount"),
		Description:   r.FormValue("description"),
		Country:       country,
		Correspondent: r.FormValue("MNO_" + country),
	}

	result := h.service.CreateDeposit(r.Context(), input)

	view := orderView{
		Countries: domain.Countries(),
		Country:   country,
		Result:    result,
	}
	if view.Country == "" {
		view.Country = defaultCountry
	}
	h.render(w, view)
}

func (h *DepositHandlers) render(w http.ResponseWriter, view orderView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := orderTemplate.ExecuteTemplate(w, "order.html", view); err != nil {
		log.Printf("level=error component=api msg=\"template render failed\" err=%v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
