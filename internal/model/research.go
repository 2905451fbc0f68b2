// Package model defines the request and response types for the research API.
// In Go, we use structs instead of classes. Struct tags (the `json:"..."`
// annotations) tell encoding/json how to map fields.
package model

// Kind identifies which of the three research variants a request is.
// Go doesn't have enums — we use typed string constants.
type Kind string

const (
	KindCompany Kind = "company"
	KindPerson  Kind = "person"
	KindMarket  Kind = "market"
)

// Request is the tagged union of the three research variants. Only the types
// in this package implement it (the unexported method seals the interface),
// so a type switch over CompanyRequest, PersonRequest and MarketRequest
// covers every case.
type Request interface {
	Kind() Kind
	isRequest()
}

// CompanyRequest asks for a company analysis.
type CompanyRequest struct {
	Company string
}

// PersonRequest asks for a professional profile of someone at a company.
type PersonRequest struct {
	Person  string
	Company string
}

// MarketRequest asks for a market analysis.
type MarketRequest struct {
	Market string
}

func (CompanyRequest) Kind() Kind { return KindCompany }
func (PersonRequest) Kind() Kind  { return KindPerson }
func (MarketRequest) Kind() Kind  { return KindMarket }

func (CompanyRequest) isRequest() {}
func (PersonRequest) isRequest()  {}
func (MarketRequest) isRequest()  {}

// CompanyResponse is the 200 envelope for company research.
type CompanyResponse struct {
	Company  string `json:"company"`
	Research string `json:"research"`
}

// PersonResponse is the 200 envelope for person research.
type PersonResponse struct {
	Person   string `json:"person"`
	Company  string `json:"company"`
	Research string `json:"research"`
}

// MarketResponse is the 200 envelope for market research.
type MarketResponse struct {
	Market   string `json:"market"`
	Research string `json:"research"`
}

// ErrorResponse is the body of every 400 and 500 response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewResponse wraps a research result in the envelope matching the request.
// Identifying fields are echoed back exactly as received.
func NewResponse(req Request, research string) any {
	switch r := req.(type) {
	case CompanyRequest:
		return CompanyResponse{Company: r.Company, Research: research}
	case PersonRequest:
		return PersonResponse{Person: r.Person, Company: r.Company, Research: research}
	case MarketRequest:
		return MarketResponse{Market: r.Market, Research: research}
	default:
		return ErrorResponse{Error: "unknown request kind"}
	}
}
