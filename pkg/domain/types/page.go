package types

// PageID identifies one of the dashboard layouts
type PageID string

const (
	PageRegionalTable    PageID = "regional-table"
	PageLocalAuthority   PageID = "local-authority"
	PageRegionalAnalysis PageID = "regional-analysis"
)

// Page paths served by the frontend
const (
	PathRegionalTable    = "/"
	PathLocalAuthority   = "/local-authority"
	PathRegionalAnalysis = "/regional-analysis"
)

// String returns the string representation
func (p PageID) String() string {
	return string(p)
}

// IsValid checks if the page ID is a known layout
func (p PageID) IsValid() bool {
	switch p {
	case PageRegionalTable, PageLocalAuthority, PageRegionalAnalysis:
		return true
	default:
		return false
	}
}

// Path returns the URL path the page is routed from
func (p PageID) Path() string {
	switch p {
	case PageLocalAuthority:
		return PathLocalAuthority
	case PageRegionalAnalysis:
		return PathRegionalAnalysis
	default:
		return PathRegionalTable
	}
}

// ResolvePage maps a URL path to the layout it renders. Unknown paths fall back to the regional table.
func ResolvePage(path string) PageID {
	switch path {
	case PathLocalAuthority:
		return PageLocalAuthority
	case PathRegionalAnalysis:
		return PageRegionalAnalysis
	default:
		return PageRegionalTable
	}
}
