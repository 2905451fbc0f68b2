package model

import (
	"errors"
	"testing"
)

// Table-driven tests are the idiomatic Go way to cover many inputs:
// a slice of anonymous structs, one t.Run subtest per case.

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		fields  map[string]any
		want    Request
		wantMsg string
	}{
		{
			name:   "company ok",
			kind:   KindCompany,
			fields: map[string]any{"company": "Acme"},
			want:   CompanyRequest{Company: "Acme"},
		},
		{
			name:    "company nil body",
			kind:    KindCompany,
			fields:  nil,
			wantMsg: MsgCompanyRequired,
		},
		{
			name:    "company empty object",
			kind:    KindCompany,
			fields:  map[string]any{},
			wantMsg: MsgCompanyRequired,
		},
		{
			name:    "company empty string",
			kind:    KindCompany,
			fields:  map[string]any{"company": ""},
			wantMsg: MsgCompanyRequired,
		},
		{
			name:    "company not a string",
			kind:    KindCompany,
			fields:  map[string]any{"company": 42.0},
			wantMsg: MsgCompanyRequired,
		},
		{
			name:   "company untrimmed",
			kind:   KindCompany,
			fields: map[string]any{"company": "  Acme  "},
			want:   CompanyRequest{Company: "  Acme  "},
		},
		{
			name:   "person ok with extra fields",
			kind:   KindPerson,
			fields: map[string]any{"person": "Jane Doe", "company": "Acme", "extra": true},
			want:   PersonRequest{Person: "Jane Doe", Company: "Acme"},
		},
		{
			name:    "person missing company",
			kind:    KindPerson,
			fields:  map[string]any{"person": "Jane Doe"},
			wantMsg: MsgPersonRequired,
		},
		{
			name:    "person missing person",
			kind:    KindPerson,
			fields:  map[string]any{"company": "Acme"},
			wantMsg: MsgPersonRequired,
		},
		{
			name:   "market ok",
			kind:   KindMarket,
			fields: map[string]any{"market": "Electric Vehicles"},
			want:   MarketRequest{Market: "Electric Vehicles"},
		},
		{
			name:    "market wrong key",
			kind:    KindMarket,
			fields:  map[string]any{"company": "Acme"},
			wantMsg: MsgMarketRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRequest(tt.kind, tt.fields)

			if tt.wantMsg != "" {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected *ValidationError, got %v", err)
				}
				if verr.Message != tt.wantMsg {
					t.Errorf("expected message %q, got %q", tt.wantMsg, verr.Message)
				}
				if verr.Kind != tt.kind {
					t.Errorf("expected kind %s, got %s", tt.kind, verr.Kind)
				}
				if got != nil {
					t.Errorf("expected nil request on error, got %#v", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %#v, got %#v", tt.want, got)
			}
			if got.Kind() != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, got.Kind())
			}
		})
	}
}

func TestParseRequest_UnknownKind(t *testing.T) {
	if _, err := ParseRequest(Kind("weather"), map[string]any{"weather": "sunny"}); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestNewResponse(t *testing.T) {
	got := NewResponse(PersonRequest{Person: "Jane Doe", Company: "Acme"}, "report")

	resp, ok := got.(PersonResponse)
	if !ok {
		t.Fatalf("expected PersonResponse, got %T", got)
	}
	if resp.Person != "Jane Doe" || resp.Company != "Acme" || resp.Research != "report" {
		t.Errorf("unexpected envelope: %+v", resp)
	}

	if _, ok := NewResponse(MarketRequest{Market: "EV"}, "x").(MarketResponse); !ok {
		t.Error("expected MarketResponse for market request")
	}
	if _, ok := NewResponse(CompanyRequest{Company: "Acme"}, "x").(CompanyResponse); !ok {
		t.Error("expected CompanyResponse for company request")
	}
}
