package zohodomain

// Envelope são os campos comuns a toda resposta da API.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ReportNode é o formato cru de um nó de relatório. Os filhos vêm em account_transactions.
type ReportNode struct {
	Name                string       `json:"name"`
	Total               Amount       `json:"total"`
	CurrencyCode        string       `json:"currency_code"`
	AccountTransactions []ReportNode `json:"account_transactions"`
}

// CashFlowSection é uma seção da demonstração de fluxo de caixa.
type CashFlowSection struct {
	SectionName         string       `json:"section_name"`
	Name                string       `json:"name"`
	Total               Amount       `json:"total"`
	AccountTransactions []ReportNode `json:"account_transactions"`
}

// Campos raiz dos relatórios hierárquicos.
const (
	RootProfitAndLoss = "profit_and_loss"
	RootBalanceSheet  = "balance_sheet"
	RootCashFlow      = "cash_flow"
	RootBillsAging    = "bills_aging"
)
