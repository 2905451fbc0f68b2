// Package prompt renders the research prompts sent to the language model.
//
// The templates are part of the API contract: the markdown structure of the
// model's answer (headings, numbered sections, tables) follows them, and the
// frontend renders that markdown as-is. Edit them deliberately.
package prompt

import (
	"fmt"

	"github.com/fleveque/research-service/internal/model"
)

// formattingInstructions closes the company and market prompts.
const formattingInstructions = `Please provide specific data points, metrics, and recent developments where available.
Use proper markdown formatting with:
- H1 (#) for the title
- H2 (##) for main sections
- H3 (###) for subsections if needed
- Bullet points (-) for lists
- Bold (**) for emphasis on key points
- Tables (|) for structured data if applicable`

// %[1]s is the company name.
const companyTemplate = `Conduct a comprehensive analysis of %[1]s. Please provide a detailed analysis in the following format, using proper markdown syntax:

# %[1]s - Company Analysis

## 1. Executive Summary
- Brief overview of the company
- Key business lines
- Notable achievements
- Current market position

## 2. Business Model & Revenue Streams
- Primary revenue sources
- Business model evolution
- Key partnerships
- Distribution channels

## 3. Market Analysis
- Market size and growth potential
- Market share in key segments
- Target customer demographics
- Geographic presence
- Competitive advantages

## 4. Financial Performance
- Recent revenue trends
- Profitability metrics
- Key financial ratios
- Cash flow analysis
- Investment and R&D spending

## 5. Technology & Innovation
- Core technologies
- R&D capabilities
- Intellectual property
- Innovation pipeline
- Digital transformation initiatives

## 6. Operational Strengths & Challenges
- Supply chain management
- Manufacturing capabilities
- Quality control
- Operational efficiency
- Risk management

## 7. Strategic Initiatives
- Growth strategies
- Market expansion plans
- Product development roadmap
- M&A activities
- Strategic partnerships

## 8. Risks & Opportunities
- Market risks
- Regulatory challenges
- Technological risks
- Growth opportunities
- Industry trends

## 9. Future Outlook
- Growth projections
- Industry trends
- Technological advancements
- Market opportunities
- Potential challenges

`

// %[1]s is the person, %[2]s the company.
const personTemplate = `Research %[1]s who works at %[2]s. Please provide information in the following format:

# %[1]s - Professional Profile

## Current Position
- Title: [Current job title]
- Company: %[2]s
- Location: [City, State/Country]

## Contact Information
- Email: [Email address if available]
- Phone: [Phone number if available]

Please note: If any information is not available, mark it as "Unknown". Focus on publicly available information only.`

// %[1]s is the market name.
const marketTemplate = `Conduct a comprehensive analysis of the %[1]s market. Please provide a detailed analysis in the following format, using proper markdown syntax:

# %[1]s Market Analysis

## 1. Market Overview
- Market size and growth rate
- Key market segments
- Geographic distribution
- Market maturity stage

## 2. Market Drivers
- Key growth drivers
- Technological factors
- Regulatory environment
- Economic factors
- Social and demographic trends

## 3. Market Challenges
- Major barriers to entry
- Regulatory challenges
- Technological limitations
- Economic constraints
- Competitive pressures

## 4. Key Players
- Market leaders
- Emerging players
- Market share distribution
- Strategic alliances
- M&A activities

## 5. Technology Landscape
- Key technologies
- Innovation trends
- R&D focus areas
- Digital transformation
- Future technological developments

## 6. Market Opportunities
- Growth opportunities
- Emerging segments
- Untapped markets
- Innovation potential
- Strategic opportunities

## 7. Future Outlook
- Market projections
- Growth forecasts
- Industry trends
- Technological advancements
- Regulatory changes

## 8. Investment Landscape
- Investment trends
- Funding patterns
- Venture capital activity
- Public market performance
- Investment opportunities

`

// Company renders the nine-section company analysis prompt.
func Company(company string) string {
	return fmt.Sprintf(companyTemplate, company) + formattingInstructions
}

// Person renders the professional profile prompt.
func Person(person, company string) string {
	return fmt.Sprintf(personTemplate, person, company)
}

// Market renders the eight-section market analysis prompt.
func Market(market string) string {
	return fmt.Sprintf(marketTemplate, market) + formattingInstructions
}

// Render returns the prompt for any request variant.
func Render(req model.Request) (string, error) {
	switch r := req.(type) {
	case model.CompanyRequest:
		return Company(r.Company), nil
	case model.PersonRequest:
		return Person(r.Person, r.Company), nil
	case model.MarketRequest:
		return Market(r.Market), nil
	default:
		return "", fmt.Errorf("no prompt template for %T", req)
	}
}
