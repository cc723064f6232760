package types

type AccountType string

const (
	AccountTypeCash       AccountType = "cash"
	AccountTypeDebit      AccountType = "debit"
	AccountTypeCreditCard AccountType = "credit_card"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeSaving     AccountType = "saving"
	AccountTypeInvestment AccountType = "investment"
)

func AccountTypes() []AccountType {
	return []AccountType{
		AccountTypeCash,
		AccountTypeDebit,
		AccountTypeCreditCard,
		AccountTypeLoan,
		AccountTypeSaving,
		AccountTypeInvestment,
	}
}

type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeExpense    TransactionType = "expense"
	TypePayment    TransactionType = "payment"
)

type TransactionCategory string

const (
	CategoryGroceries     TransactionCategory = "groceries"
	CategoryDining        TransactionCategory = "dining"
	CategoryTransport     TransactionCategory = "transport"
	CategoryUtilities     TransactionCategory = "utilities"
	CategoryRent          TransactionCategory = "rent"
	CategoryHealthcare    TransactionCategory = "healthcare"
	CategoryEntertainment TransactionCategory = "entertainment"
	CategoryShopping      TransactionCategory = "shopping"
	CategorySubscriptions TransactionCategory = "subscriptions"
	CategoryGames         TransactionCategory = "games"
	CategoryTravel        TransactionCategory = "travel"
	CategoryEducation     TransactionCategory = "education"
	CategoryFitness       TransactionCategory = "fitness"
	CategoryPersonal      TransactionCategory = "personal"
	CategoryGifts         TransactionCategory = "gifts"
	CategoryIncome        TransactionCategory = "income"
	CategoryTransfer      TransactionCategory = "transfer"
	CategoryOther         TransactionCategory = "other"
)

func TransactionCategories() []TransactionCategory {
	return []TransactionCategory{
		CategoryGroceries,
		CategoryDining,
		CategoryTransport,
		CategoryUtilities,
		CategoryRent,
		CategoryHealthcare,
		CategoryEntertainment,
		CategoryShopping,
		CategorySubscriptions,
		CategoryGames,
		CategoryTravel,
		CategoryEducation,
		CategoryFitness,
		CategoryPersonal,
		CategoryGifts,
		CategoryIncome,
		CategoryTransfer,
		CategoryOther,
	}
}

type OrderBy = string

var (
	OrderByAsc  OrderBy = "asc"
	OrderByDesc OrderBy = "desc"
)
