package agent

import (
	"context"
	"fmt"

	"github.com/etnz/domainfolio"
	"github.com/etnz/domainfolio/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// LoadLedger is how the agent reads the user's portfolio. The CLI wires it
// to the configured store before starting the session.
var LoadLedger func() (*domainfolio.Ledger, error)

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his domain-name portfolio: what it cost him,
			what it earned him, and what renewals are coming up.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request.

			The user will assume that you know his domain names, check the portfolio first to
			understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewBroker creates the market-knowledge expert, grounded with search.
func NewBroker() *Expert {
	return &Expert{
		Name: "Broker",
		Description: `This is an expert domain broker,
		very well aware of the aftermarket, the marketplaces (Afternic, Sedo, Dan, GoDaddy, Namecheap),
		registrar pricing, and recent comparable sales.
		Ask the Broker whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in the domain-name aftermarket. You can search and find anything
			related to registrars, marketplaces, TLD pricing and comparable sales. You leverage
			Google Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewBookkeeper creates the portfolio-ledger expert with the report tools.
func NewBookkeeper() *Expert {
	lib := []Function{Summary, Performance, Renewals}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's domain portfolio ledger.
		He can compute the relevant figures about the user's holdings: cost basis, revenue, ROI,
		and the upcoming renewals.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's domain portfolio ledger.
				You know how to use the Tools to extract relevant information about the portfolio.
				You are part of a team of experts, yours is everything recorded in the ledger.
				They might ask you questions in approximative language, figure out what they meant.

				Use the available tools to get information about the user's portfolio:
				  - the overall summary
				  - per-domain performance
				  - upcoming renewals and their forecast
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func failure(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

func success(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": output},
	}
}

func parseDate(args map[string]any) (domainfolio.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return domainfolio.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return domainfolio.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}
	date, err := domainfolio.ParseDate(sdate)
	if err != nil {
		return domainfolio.Today(), fmt.Errorf("argument 'date' must be a YYYY-MM-DD date, got %q", sdate)
	}
	return date, nil
}

var dateParam = &genai.Schema{
	Type:        genai.TypeString,
	Description: "The date on which to compute the report, in YYYY-MM-DD format. Today is the default.",
}

var Summary = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Summary",
		Description: `Summary computes the portfolio at a glance: number of domains per status,
		total cost basis, recognized revenue, profit, ROI and the yearly renewal budget.`,
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{"date": dateParam},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted summary of the portfolio.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		date, err := parseDate(args)
		if err != nil {
			return failure(id, "Summary", err)
		}
		ledger, err := LoadLedger()
		if err != nil {
			return failure(id, "Summary", err)
		}
		stats := domainfolio.NewDerivedStats(ledger, date)
		return success(id, "Summary", renderer.SummaryMarkdown(stats, date))
	},
}

var Performance = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Performance",
		Description: `Performance ranks every domain by return on investment, with its cost basis,
		recognized revenue and profit.`,
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{"date": dateParam},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table of domains ranked by ROI.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		date, err := parseDate(args)
		if err != nil {
			return failure(id, "Performance", err)
		}
		ledger, err := LoadLedger()
		if err != nil {
			return failure(id, "Performance", err)
		}
		ranked := domainfolio.RankByROI(domainfolio.Returns(ledger, date))
		return success(id, "Performance", renderer.ROIMarkdown(ranked, date))
	},
}

var Renewals = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Renewals",
		Description: `Renewals lists the upcoming renewal reminders and the twelve-month
		renewal spend forecast.`,
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{"date": dateParam},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted renewals report: reminders then the monthly forecast.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		date, err := parseDate(args)
		if err != nil {
			return failure(id, "Renewals", err)
		}
		ledger, err := LoadLedger()
		if err != nil {
			return failure(id, "Renewals", err)
		}
		reminders := domainfolio.Reminders(ledger, date, nil)
		forecast := domainfolio.RenewalForecast(ledger, date)
		out := renderer.RenewalsMarkdown(reminders, date) + "\n" + renderer.ForecastMarkdown(forecast, date)
		return success(id, "Renewals", out)
	},
}
