package prompt

import (
	"strings"
	"testing"

	"github.com/fleveque/research-service/internal/model"
)

func TestCompany(t *testing.T) {
	got := Company("Acme Corp")

	want := []string{
		"Conduct a comprehensive analysis of Acme Corp.",
		"# Acme Corp - Company Analysis",
		"## 1. Executive Summary",
		"## 2. Business Model & Revenue Streams",
		"## 3. Market Analysis",
		"## 4. Financial Performance",
		"## 5. Technology & Innovation",
		"## 6. Operational Strengths & Challenges",
		"## 7. Strategic Initiatives",
		"## 8. Risks & Opportunities",
		"## 9. Future Outlook",
		"- Tables (|) for structured data if applicable",
	}
	for _, s := range want {
		if !strings.Contains(got, s) {
			t.Errorf("company prompt missing %q", s)
		}
	}

	if strings.Count(got, "\n## ") != 9 {
		t.Errorf("expected 9 H2 sections, got %d", strings.Count(got, "\n## "))
	}
}

func TestPerson(t *testing.T) {
	got := Person("Jane Doe", "Acme Corp")

	want := []string{
		"Research Jane Doe who works at Acme Corp.",
		"# Jane Doe - Professional Profile",
		"## Current Position",
		"- Title: [Current job title]",
		"- Company: Acme Corp",
		"- Location: [City, State/Country]",
		"## Contact Information",
		"- Email: [Email address if available]",
		"- Phone: [Phone number if available]",
		`mark it as "Unknown"`,
		"Focus on publicly available information only.",
	}
	for _, s := range want {
		if !strings.Contains(got, s) {
			t.Errorf("person prompt missing %q", s)
		}
	}
}

func TestMarket(t *testing.T) {
	got := Market("Electric Vehicles")

	want := []string{
		"Conduct a comprehensive analysis of the Electric Vehicles market.",
		"# Electric Vehicles Market Analysis",
		"## 1. Market Overview",
		"## 2. Market Drivers",
		"## 3. Market Challenges",
		"## 4. Key Players",
		"## 5. Technology Landscape",
		"## 6. Market Opportunities",
		"## 7. Future Outlook",
		"## 8. Investment Landscape",
		"- H1 (#) for the title",
	}
	for _, s := range want {
		if !strings.Contains(got, s) {
			t.Errorf("market prompt missing %q", s)
		}
	}

	if strings.Count(got, "\n## ") != 8 {
		t.Errorf("expected 8 H2 sections, got %d", strings.Count(got, "\n## "))
	}
}

func TestPrompts_Deterministic(t *testing.T) {
	if Company("Acme") != Company("Acme") {
		t.Error("company prompt is not deterministic")
	}
	if Person("Jane", "Acme") != Person("Jane", "Acme") {
		t.Error("person prompt is not deterministic")
	}
	if Market("EV") != Market("EV") {
		t.Error("market prompt is not deterministic")
	}
	if Company("Acme") == Company("Globex") {
		t.Error("company prompt ignores its input")
	}
}

func TestPrompts_NameWithPercentSign(t *testing.T) {
	got := Company("100% Juice Co")
	if !strings.Contains(got, "# 100% Juice Co - Company Analysis") {
		t.Error("expected name to be inserted verbatim")
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		req  model.Request
		want string
	}{
		{model.CompanyRequest{Company: "Acme"}, Company("Acme")},
		{model.PersonRequest{Person: "Jane", Company: "Acme"}, Person("Jane", "Acme")},
		{model.MarketRequest{Market: "EV"}, Market("EV")},
	}

	for _, tt := range tests {
		got, err := Render(tt.req)
		if err != nil {
			t.Fatalf("rendering %s: %v", tt.req.Kind(), err)
		}
		if got != tt.want {
			t.Errorf("%s: Render differs from direct call", tt.req.Kind())
		}
	}
}
