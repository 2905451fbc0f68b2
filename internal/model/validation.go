package model

const (
	MsgCompanyRequired = "Company name is required"
	MsgPersonRequired  = "Person name and company name are required"
	MsgMarketRequired  = "Market name is required"
)

// ValidationError is returned when a request body lacks a required field.
// Its message is the static, client-facing text for the endpoint.
type ValidationError struct {
	Kind    Kind
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ParseCompanyRequest validates a decoded JSON object as a company request.
// A nil fields map means the body was missing or was not a JSON object.
func ParseCompanyRequest(fields map[string]any) (CompanyRequest, error) {
	values, ok := requireStrings(fields, "company")
	if !ok {
		return CompanyRequest{}, &ValidationError{Kind: KindCompany, Message: MsgCompanyRequired}
	}
	return CompanyRequest{Company: values[0]}, nil
}

// ParsePersonRequest validates a decoded JSON object as a person request.
// Both "person" and "company" are required.
func ParsePersonRequest(fields map[string]any) (PersonRequest, error) {
	values, ok := requireStrings(fields, "person", "company")
	if !ok {
		return PersonRequest{}, &ValidationError{Kind: KindPerson, Message: MsgPersonRequired}
	}
	return PersonRequest{Person: values[0], Company: values[1]}, nil
}

// ParseMarketRequest validates a decoded JSON object as a market request.
func ParseMarketRequest(fields map[string]any) (MarketRequest, error) {
	values, ok := requireStrings(fields, "market")
	if !ok {
		return MarketRequest{}, &ValidationError{Kind: KindMarket, Message: MsgMarketRequired}
	}
	return MarketRequest{Market: values[0]}, nil
}

// ParseRequest dispatches to the parser for kind. On failure the returned
// Request is nil and the error is a *ValidationError.
func ParseRequest(kind Kind, fields map[string]any) (Request, error) {
	var (
		req Request
		err error
	)
	switch kind {
	case KindCompany:
		req, err = ParseCompanyRequest(fields)
	case KindPerson:
		req, err = ParsePersonRequest(fields)
	case KindMarket:
		req, err = ParseMarketRequest(fields)
	default:
		return nil, &ValidationError{Kind: kind, Message: "unknown research kind: " + string(kind)}
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

// requireStrings returns the values of keys in order. Every key must be
// present with a non-empty string value; values are not trimmed.
func requireStrings(fields map[string]any, keys ...string) ([]string, bool) {
	if len(fields) == 0 {
		return nil, false
	}

	values := make([]string, 0, len(keys))
	for _, key := range keys {
		s, ok := fields[key].(string)
		if !ok || s == "" {
			return nil, false
		}
		values = append(values, s)
	}
	return values, true
}
