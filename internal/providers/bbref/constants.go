package bbref

import "time"

const (
	// ProviderName labels logs and metrics for this scraper.
	ProviderName = "bbref"

	defaultBaseURL     = "https://www.basketball-reference.com"
	dailyLeadersPath   = "/friv/dailyleaders.cgi"
	defaultHTTPTimeout = 30 * time.Second
	maxBodyBytes       = 16 << 20

	// Pages shorter than this are almost always a block or error page.
	suspiciousBodyBytes = 1000
	maxLoggedRowErrors  = 5
	maxLoggedTables     = 5

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Column positions in the daily leaders table.
const (
	colName = iota + 1
	colTeam
	colLocation
	colOpponent
	colOutcome
	colMinutes
	colFGM
	colFGA
	_
	col3PM
	col3PA
	_
	colFTM
	colFTA
	_
	colORB
	colDRB
	_
	colAST
	colSTL
	colBLK
	colTOV
	colPF
	colPTS
	colPlusMinus

	minCells = colPlusMinus
)

var browserHeaders = map[string]string{
	"User-Agent":                userAgent,
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.5",
	"DNT":                       "1",
	"Upgrade-Insecure-Requests": "1",
}

var blockIndicators = []string{"Access Denied", "403 Forbidden", "cf-browser-verification"}
