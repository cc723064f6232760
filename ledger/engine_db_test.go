package ledger

import (
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/monetra/monetra/config"
	"github.com/monetra/monetra/models"
	"github.com/monetra/monetra/types"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	if len(os.Getenv("DATABASE_HOST")) == 0 {
		t.Skip("DATABASE_HOST not set, skipping database tests")
	}

	config.NewLoggerService()
	if err := config.LoadApp(); err != nil {
		t.Fatalf("load app config: %v", err)
	}

	db, err := config.NewDatabase()
	if err != nil {
		t.Fatalf("connect database: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DataBase = db

	return db
}

func testMember(t *testing.T, db *gorm.DB) *models.Member {
	t.Helper()

	member := &models.Member{UID: uuid.NewString(), Email: "test@monetra.dev", State: "active"}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("create member: %v", err)
	}

	return member
}

func testAccount(t *testing.T, db *gorm.DB, memberID int64, accountType types.AccountType, currency string, balance string) *models.Account {
	t.Helper()

	account := &models.Account{
		MemberID: memberID,
		Name:     string(accountType) + " test",
		Type:     accountType,
		Currency: currency,
	}
	account.SetActiveBalance(decimal.RequireFromString(balance))

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("create account: %v", err)
	}

	return account
}

func reloadAccount(t *testing.T, db *gorm.DB, id int64) *models.Account {
	t.Helper()

	var account models.Account
	if err := db.First(&account, "id = ?", id).Error; err != nil {
		t.Fatalf("reload account: %v", err)
	}

	return &account
}

func countTransactions(t *testing.T, db *gorm.DB, accountID int64) int64 {
	t.Helper()

	var total int64
	db.Model(&models.Transaction{}).Where("account_id = ?", accountID).Count(&total)

	return total
}

type fakeRates struct {
	rate decimal.Decimal
	err  error
}

func (f fakeRates) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}

	return amount.Mul(f.rate), nil
}

func TestApplyDeposit(t *testing.T) {
	db := testDB(t)
	member := testMember(t, db)
	account := testAccount(t, db, member.ID, types.AccountTypeCash, "USD", "100.00")

	engine := NewEngine(db, fakeRates{}, types.CategoryOther)

	entry, err := engine.Apply(member.ID, account.ID, types.TypeDeposit, decimal.RequireFromString("50.00"), "paycheck", types.CategoryIncome)
	if err != nil {
		t.Fatalf("apply deposit: %v", err)
	}

	if !entry.BalanceAfter.Equal(decimal.RequireFromString("150.00")) {
		t.Errorf("balance_after = %s, want 150.00", entry.BalanceAfter)
	}

	stored := reloadAccount(t, db, account.ID)
	if !stored.ActiveBalance().Equal(entry.BalanceAfter) {
		t.Errorf("stored balance %s does not match balance_after %s", stored.ActiveBalance(), entry.BalanceAfter)
	}
}

func TestApplyCreditCardExpense(t *testing.T) {
	db := testDB(t)
	member := testMember(t, db)
	account := testAccount(t, db, member.ID, types.AccountTypeCreditCard, "USD", "200.00")

	engine := NewEngine(db, fakeRates{}, types.CategoryOther)

	entry, err := engine.Apply(member.ID, account.ID, types.TypeExpense, decimal.RequireFromString("75.00"), "dinner", types.CategoryDining)
	if err != nil {
		t.Fatalf("apply expense: %v", err)
	}

	if !entry.BalanceAfter.Equal(decimal.RequireFromString("275.00")) {
		t.Errorf("credit_owed after = %s, want 275.00", entry.BalanceAfter)
	}

	stored := reloadAccount(t, db, account.ID)
	if !stored.CreditOwed.Valid || !stored.CreditOwed.Decimal.Equal(decimal.RequireFromString("275.00")) {
		t.Errorf("stored credit_owed = %+v, want 275.00", stored.CreditOwed)
	}
}

func TestApplyInvalidTypeLeavesStateUntouched(t *testing.T) {
	db := testDB(t)
	member := testMember(t, db)
	account := testAccount(t, db, member.ID, types.AccountTypeCash, "USD", "100.00")

	engine := NewEngine(db, fakeRates{}, types.CategoryOther)

	_, err := engine.Apply(member.ID, account.ID, types.TypeExpense, decimal.NewFromInt(10), "", "")
	if !errors.Is(err, ErrInvalidTransactionType) {
		t.Fatalf("expected ErrInvalidTransactionType, got %v", err)
	}

	if n := countTransactions(t, db, account.ID); n != 0 {
		t.Errorf("expected no transaction rows, found %d", n)
	}
	if stored := reloadAccount(t, db, account.ID); !stored.ActiveBalance().Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("balance changed to %s on rejected transaction", stored.ActiveBalance())
	}
}

func TestApplyOwnershipEnforced(t *testing.T) {
	db := testDB(t)
	owner := testMember(t, db)
	intruder := testMember(t, db)
	account := testAccount(t, db, owner.ID, types.AccountTypeCash, "USD", "100.00")

	engine := NewEngine(db, fakeRates{}, types.CategoryOther)

	if _, err := engine.Apply(intruder.ID, account.ID, types.TypeDeposit, decimal.NewFromInt(10), "", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign account, got %v", err)
	}
}

func TestTransferSameCurrency(t *testing.T) {
	db := testDB(t)
	member := testMember(t, db)
	from := testAccount(t, db, member.ID, types.AccountTypeDebit, "USD", "1000.00")
	to := testAccount(t, db, member.ID, types.AccountTypeSaving, "USD", "0.00")

	engine := NewEngine(db, fakeRates{}, types.CategoryOther)

	result, err := engine.Transfer(member.ID, from.ID, to.ID, decimal.RequireFromString("100.00"), "stash")
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}

	if result.Converted {
		t.Error("same-currency transfer reported a conversion")
	}
	if !result.DestAmount.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("dest amount = %s, want 100.00", result.DestAmount)
	}

	if !result.Source.LinkedTransactionID.Valid || result.Source.LinkedTransactionID.Int64 != result.Destination.ID {
		t.Error("source leg does not link to destination leg")
	}
	if !result.Destination.LinkedTransactionID.Valid || result.Destination.LinkedTransactionID.Int64 != result.Source.ID {
		t.Error("destination leg does not link back to source leg")
	}

	if stored := reloadAccount(t, db, from.ID); !stored.ActiveBalance().Equal(decimal.RequireFromString("900.00")) {
		t.Errorf("source balance = %s, want 900.00", stored.ActiveBalance())
	}
	if stored := reloadAccount(t, db, to.ID); !stored.ActiveBalance().Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("destination balance = %s, want 100.00", stored.ActiveBalance())
	}
}

func TestTransferCrossCurrency(t *testing.T) {
	db := testDB(t)
	member := testMember(t, db)
	from := testAccount(t, db, member.ID, types.AccountTypeDebit, "USD", "1000.00")
	to := testAccount(t, db, member.ID, types.AccountTypeSaving, "EUR", "0.00")

	engine := NewEngine(db, fakeRates{rate: decimal.RequireFromString("0.92")}, types.CategoryOther)

	result, err := engine.Transfer(member.ID, from.ID, to.ID, decimal.RequireFromString("100.00"), "")
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}

	if !result.Converted || result.DestCurrency != "EUR" {
		t.Errorf("expected conversion into EUR, got %+v", result)
	}
	if !result.DestAmount.Equal(decimal.RequireFromString("92.00")) {
		t.Errorf("dest amount = %s, want 92.00", result.DestAmount)
	}

	if stored := reloadAccount(t, db, from.ID); !stored.ActiveBalance().Equal(decimal.RequireFromString("900.00")) {
		t.Errorf("source balance = %s, want 900.00", stored.ActiveBalance())
	}
	if stored := reloadAccount(t, db, to.ID); !stored.ActiveBalance().Equal(decimal.RequireFromString("92.00")) {
		t.Errorf("destination balance = %s, want 92.00", stored.ActiveBalance())
	}
}

func TestTransferIntoLoanIsPayment(t *testing.T) {
	db := testDB(t)
	member := testMember(t, db)
	from := testAccount(t, db, member.ID, types.AccountTypeCash, "USD", "1000.00")
	loan := testAccount(t, db, member.ID, types.AccountTypeLoan, "USD", "500.00")

	engine := NewEngine(db, fakeRates{}, types.CategoryOther)

	result, err := engine.Transfer(member.ID, from.ID, loan.ID, decimal.RequireFromString("200.00"), "loan payment")
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}

	if result.Destination.Type != types.TypePayment {
		t.Errorf("destination leg type = %s, want payment", result.Destination.Type)
	}
	if stored := reloadAccount(t, db, loan.ID); !stored.ActiveBalance().Equal(decimal.RequireFromString("300.00")) {
		t.Errorf("loan owed = %s, want 300.00", stored.ActiveBalance())
	}
}

func TestTransferInvalidDirection(t *testing.T) {
	db := testDB(t)
	member := testMember(t, db)
	card := testAccount(t, db, member.ID, types.AccountTypeCreditCard, "USD", "200.00")
	to := testAccount(t, db, member.ID, types.AccountTypeCash, "USD", "50.00")

	engine := NewEngine(db, fakeRates{}, types.CategoryOther)

	_, err := engine.Transfer(member.ID, card.ID, to.ID, decimal.NewFromInt(10), "")
	if !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}

	if n := countTransactions(t, db, card.ID) + countTransactions(t, db, to.ID); n != 0 {
		t.Errorf("expected no rows after rejected transfer, found %d", n)
	}
	if stored := reloadAccount(t, db, card.ID); !stored.ActiveBalance().Equal(decimal.RequireFromString("200.00")) {
		t.Errorf("source owed changed to %s", stored.ActiveBalance())
	}
	if stored := reloadAccount(t, db, to.ID); !stored.ActiveBalance().Equal(decimal.RequireFromString("50.00")) {
		t.Errorf("destination balance changed to %s", stored.ActiveBalance())
	}
}

func TestTransferConversionUnavailableWritesNothing(t *testing.T) {
	db := testDB(t)
	member := testMember(t, db)
	from := testAccount(t, db, member.ID, types.AccountTypeDebit, "USD", "1000.00")
	to := testAccount(t, db, member.ID, types.AccountTypeSaving, "JPY", "0.00")

	engine := NewEngine(db, fakeRates{err: errors.New("exchange rate not found: USD->JPY")}, types.CategoryOther)

	_, err := engine.Transfer(member.ID, from.ID, to.ID, decimal.NewFromInt(50), "")
	if !errors.Is(err, ErrConversionUnavailable) {
		t.Fatalf("expected ErrConversionUnavailable, got %v", err)
	}

	if n := countTransactions(t, db, from.ID) + countTransactions(t, db, to.ID); n != 0 {
		t.Errorf("expected no rows, found %d", n)
	}
	if stored := reloadAccount(t, db, from.ID); !stored.ActiveBalance().Equal(decimal.RequireFromString("1000.00")) {
		t.Errorf("source balance changed to %s", stored.ActiveBalance())
	}
}

func TestConcurrentDepositsDoNotLoseUpdates(t *testing.T) {
	db := testDB(t)
	member := testMember(t, db)
	account := testAccount(t, db, member.ID, types.AccountTypeCash, "USD", "0.00")

	engine := NewEngine(db, fakeRates{}, types.CategoryOther)

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := engine.Apply(member.ID, account.ID, types.TypeDeposit, decimal.NewFromInt(1), "", ""); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent deposit failed: %v", err)
	}

	if stored := reloadAccount(t, db, account.ID); !stored.ActiveBalance().Equal(decimal.NewFromInt(n)) {
		t.Errorf("final balance = %s, want %d", stored.ActiveBalance(), n)
	}
	if total := countTransactions(t, db, account.ID); total != n {
		t.Errorf("transaction rows = %d, want %d", total, n)
	}
}
