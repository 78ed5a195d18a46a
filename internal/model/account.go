package model

// AccountType classifies accounts in the catalog.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Nature says on which side an account type increases.
type Nature string

const (
	NatureDebit  Nature = "debit"  // increases on the debit (Debe) side
	NatureCredit Nature = "credit" // increases on the credit (Haber) side
)

// NatureOf derives the nature from the account type. It is never stored:
// Asset/Expense increase on debit, Liability/Equity/Revenue on credit.
func NatureOf(t AccountType) Nature {
	switch t {
	case AccountTypeAsset, AccountTypeExpense:
		return NatureDebit
	default:
		return NatureCredit
	}
}

// Category groups account types for presentation and month-close handling.
type Category string

const (
	CategoryReal    Category = "real"    // Asset, Liability, Equity
	CategoryNominal Category = "nominal" // Revenue, Expense; zeroed at month close
)

// CategoryOf derives the category from the account type.
func CategoryOf(t AccountType) Category {
	switch t {
	case AccountTypeRevenue, AccountTypeExpense:
		return CategoryNominal
	default:
		return CategoryReal
	}
}
