package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contada-dev/contada/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func card(name string, typ model.AccountType, value string) model.Card {
	return model.Card{ID: name, Name: name, Type: typ, Value: dec(value)}
}

func cash(value string) model.Card {
	return card("Caja", model.AccountTypeAsset, value)
}

func revenue(value string) model.Card {
	c := card("Venta Servicios", model.AccountTypeRevenue, value)
	c.RequiresIVA = true
	return c
}

func TestValidate_Balanced(t *testing.T) {
	out, rej := Validate([]model.Card{cash("500")}, []model.Card{revenue("500")}, nil, 3)
	require.Nil(t, rej)
	require.NotNil(t, out)
	assert.False(t, out.NeedsConfirmation)
	assert.False(t, out.MissionSatisfied)
}

func TestValidate_Exhausted(t *testing.T) {
	// Action points run out before anything else is looked at, even a
	// perfectly balanced entry.
	_, rej := Validate([]model.Card{cash("500")}, []model.Card{revenue("500")}, nil, 0)
	require.NotNil(t, rej)
	assert.Equal(t, RejectExhausted, rej.Code)
}

func TestValidate_Empty(t *testing.T) {
	_, rej := Validate(nil, nil, nil, 3)
	require.NotNil(t, rej)
	assert.Equal(t, RejectEmpty, rej.Code)
}

func TestValidate_Unbalanced(t *testing.T) {
	_, rej := Validate([]model.Card{cash("500")}, []model.Card{revenue("400")}, nil, 3)
	require.NotNil(t, rej)
	assert.Equal(t, RejectUnbalanced, rej.Code)
	assert.True(t, rej.Diff.Equal(dec("100")), "signed difference, got %s", rej.Diff)
}

func TestValidate_UnbalancedNegativeDiff(t *testing.T) {
	_, rej := Validate([]model.Card{cash("300")}, []model.Card{revenue("400")}, nil, 3)
	require.NotNil(t, rej)
	assert.True(t, rej.Diff.Equal(dec("-100")))
}

func missionVenta() *model.MarketEvent {
	return &model.MarketEvent{
		ID:     "m1",
		Title:  "Venta de servicios",
		Kind:   model.KindSale,
		Amount: dec("500"),
		Effect: model.Effect{Debe: []string{"Caja"}, Haber: []string{"Venta Servicios"}},
	}
}

func TestValidate_MissionAmountMismatch(t *testing.T) {
	_, rej := Validate([]model.Card{cash("400")}, []model.Card{revenue("400")}, missionVenta(), 3)
	require.NotNil(t, rej)
	assert.Equal(t, RejectMissionAmount, rej.Code)
	assert.True(t, rej.Expected.Equal(dec("500")))
}

func TestValidate_MissionAccountsMissing(t *testing.T) {
	// Right amount, but the revenue account is absent from the credit side.
	banco := card("Banco", model.AccountTypeAsset, "500")
	_, rej := Validate([]model.Card{cash("500")}, []model.Card{banco}, missionVenta(), 3)
	require.NotNil(t, rej)
	assert.Equal(t, RejectMissionAccounts, rej.Code)
	assert.Equal(t, []string{"Venta Servicios"}, rej.Missing)
}

func TestValidate_MissionWrongSideCounts(t *testing.T) {
	// The required name sitting on the wrong side is still missing.
	mission := missionVenta()
	_, rej := Validate([]model.Card{revenue("500")}, []model.Card{cash("500")}, mission, 3)
	require.NotNil(t, rej)
	assert.Equal(t, RejectMissionAccounts, rej.Code)
	assert.Contains(t, rej.Missing, "Caja")
	assert.Contains(t, rej.Missing, "Venta Servicios")
}

func TestValidate_MissionSatisfied(t *testing.T) {
	out, rej := Validate([]model.Card{cash("500")}, []model.Card{revenue("500")}, missionVenta(), 3)
	require.Nil(t, rej)
	assert.True(t, out.MissionSatisfied)
}

func TestValidate_MissionCheckedBeforeBalance(t *testing.T) {
	// An entry that is both off-mission and unbalanced reports the
	// mission mismatch first.
	_, rej := Validate([]model.Card{cash("400")}, []model.Card{revenue("500")}, missionVenta(), 3)
	require.NotNil(t, rej)
	assert.Equal(t, RejectMissionAmount, rej.Code)
}

func TestValidate_PersonalNeedsConfirmation(t *testing.T) {
	personal := card("Gastos Personales", model.AccountTypeExpense, "50")
	personal.IsPersonal = true

	out, rej := Validate([]model.Card{personal}, []model.Card{revenue("50")}, nil, 3)
	require.Nil(t, rej)
	assert.True(t, out.NeedsConfirmation)

	out.ConfirmPersonal()
	assert.False(t, out.NeedsConfirmation)
}

func TestRejectErrorMessages(t *testing.T) {
	rej := &RejectError{Code: RejectMissionAccounts, Missing: []string{"Caja", "Banco"}}
	assert.Contains(t, rej.Error(), "Caja, Banco")

	rej = &RejectError{Code: RejectUnbalanced, Diff: dec("100")}
	assert.Contains(t, rej.Error(), "100.00")
}
