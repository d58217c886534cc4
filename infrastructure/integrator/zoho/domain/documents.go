package zohodomain

// PageContext controla a paginação das listagens.
type PageContext struct {
	Page        int  `json:"page"`
	PerPage     int  `json:"per_page"`
	HasMorePage bool `json:"has_more_page"`
}

type Invoice struct {
	InvoiceID     string  `json:"invoice_id"`
	InvoiceNumber string  `json:"invoice_number"`
	CustomerName  string  `json:"customer_name"`
	Status        string  `json:"status"`
	Date          string  `json:"date"`
	DueDate       string  `json:"due_date"`
	CurrencyCode  string  `json:"currency_code"`
	Total         Amount  `json:"total"`
	Balance       *Amount `json:"balance"`
	AmountPaid    *Amount `json:"amount_paid"`
	PaymentMade   *Amount `json:"payment_made"`
}

// Paid devolve amount_paid, ou payment_made quando a listagem só traz esse campo.
func (i Invoice) Paid() *Amount {
	return firstAmount(i.AmountPaid, i.PaymentMade)
}

type Bill struct {
	BillID       string  `json:"bill_id"`
	BillNumber   string  `json:"bill_number"`
	VendorName   string  `json:"vendor_name"`
	Status       string  `json:"status"`
	Date         string  `json:"date"`
	DueDate      string  `json:"due_date"`
	CurrencyCode string  `json:"currency_code"`
	Total        Amount  `json:"total"`
	Balance      *Amount `json:"balance"`
	AmountPaid   *Amount `json:"amount_paid"`
	PaymentMade  *Amount `json:"payment_made"`
}

// Paid devolve amount_paid, ou payment_made quando a listagem só traz esse campo.
func (b Bill) Paid() *Amount {
	return firstAmount(b.AmountPaid, b.PaymentMade)
}

func firstAmount(amounts ...*Amount) *Amount {
	for _, a := range amounts {
		if a != nil {
			return a
		}
	}
	return nil
}

type CustomerPayment struct {
	PaymentID    string `json:"payment_id"`
	CustomerName string `json:"customer_name"`
	PaymentMode  string `json:"payment_mode"`
	Description  string `json:"description"`
	Date         string `json:"date"`
	Amount       Amount `json:"amount"`
}

type VendorPayment struct {
	PaymentID   string `json:"payment_id"`
	VendorName  string `json:"vendor_name"`
	PaymentMode string `json:"payment_mode"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Amount      Amount `json:"amount"`
}

type Expense struct {
	ExpenseID   string `json:"expense_id"`
	AccountName string `json:"account_name"`
	VendorName  string `json:"vendor_name"`
	PayeeName   string `json:"payee_name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Date        string `json:"date"`
	Total       Amount `json:"total"`
	Amount      Amount `json:"amount"`
}

type BankAccount struct {
	AccountID    string `json:"account_id"`
	AccountName  string `json:"account_name"`
	AccountType  string `json:"account_type"`
	CurrencyCode string `json:"currency_code"`
	Balance      Amount `json:"balance"`
	IsActive     bool   `json:"is_active"`
}

type BankTransaction struct {
	TransactionID   string `json:"transaction_id"`
	TransactionType string `json:"transaction_type"`
	DebitOrCredit   string `json:"debit_or_credit"`
	Description     string `json:"description"`
	Payee           string `json:"payee"`
	AccountID       string `json:"account_id"`
	AccountName     string `json:"account_name"`
	Date            string `json:"date"`
	Amount          Amount `json:"amount"`
}

type Contact struct {
	ContactID                   string `json:"contact_id"`
	ContactName                 string `json:"contact_name"`
	ContactType                 string `json:"contact_type"`
	Status                      string `json:"status"`
	CurrencyCode                string `json:"currency_code"`
	OutstandingReceivableAmount Amount `json:"outstanding_receivable_amount"`
	OutstandingPayableAmount    Amount `json:"outstanding_payable_amount"`
}

// Campos raiz das listagens.
const (
	ListInvoices         = "invoices"
	ListBills            = "bills"
	ListCustomerPayments = "customerpayments"
	ListVendorPayments   = "vendorpayments"
	ListExpenses         = "expenses"
	ListBankAccounts     = "bankaccounts"
	ListBankTransactions = "banktransactions"
	ListContacts         = "contacts"
)
