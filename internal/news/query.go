package news

import (
	"fmt"
	"strings"
)

// companyNames maps B3 tickers to the name newsrooms actually print.
var companyNames = map[string]string{
	"PETR4": "Petrobras",
	"PETR3": "Petrobras",
	"VALE3": "Vale",
	"VALE5": "Vale",
	"ITUB4": "Itaú Unibanco",
	"ITUB3": "Itaú",
	"BBDC4": "Bradesco",
	"BBDC3": "Bradesco",
	"BBAS3": "Banco do Brasil",
	"WEGE3": "WEG",
	"B3SA3": "B3 Bolsa Balcão",
	"ABEV3": "Ambev",
	"MGLU3": "Magazine Luiza",
	"VIIA3": "Via",
}

const marketQuery = `mercado financeiro OR Ibovespa "ações"`

// CompanyName returns the known company name for ticker, or the ticker itself.
func CompanyName(ticker string) string {
	if name, ok := companyNames[strings.ToUpper(ticker)]; ok {
		return name
	}
	return strings.ToUpper(ticker)
}

// BuildQuery turns a ticker into a search query. An empty ticker asks for
// general market headlines.
func BuildQuery(ticker string) string {
	if ticker == "" {
		return marketQuery
	}
	t := strings.ToUpper(ticker)
	return fmt.Sprintf(`%s OR %s "ações" OR "resultados" OR "dividendos"`, CompanyName(t), t)
}
