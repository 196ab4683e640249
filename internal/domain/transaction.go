package domain

// PageData is the nested page counter block used by the transactions
// and prices endpoints.
type PageData struct {
	PageNumber int
	PageSize   int
	TotalPages int
}

// PageMetadata is the {pageData, size} metadata shape. It is distinct
// from ActivityPaging on purpose: the upstream endpoints do not share a
// metadata schema.
type PageMetadata struct {
	PageData PageData
	Size     int
}

// Transaction is one entry of the transaction history.
type Transaction struct {
	Date            string
	DateUTC         string
	OpenDateUTC     string
	InstrumentName  string
	Period          string
	ProfitAndLoss   string
	TransactionType string
	Reference       string
	OpenLevel       string
	CloseLevel      string
	Size            string
	Currency        string
	CashTransaction bool
}

// TransactionPage is one page of transaction history.
type TransactionPage struct {
	Transactions []Transaction
	Metadata     PageMetadata
}
